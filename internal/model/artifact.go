package model

import "strings"

const (
	// ArchiveExtZip is the archive extension used for Windows builds.
	ArchiveExtZip = ".zip"
	// ArchiveExtTarGz is the archive extension used for every other platform.
	ArchiveExtTarGz = ".tar.gz"
	// ExecutableExtWindows is the executable extension on Windows.
	ExecutableExtWindows = ".exe"
)

// Scheme is the release asset naming scheme an artifact was resolved with.
type Scheme string

const (
	// SchemeLegacy names archives after a human readable platform label and
	// a bit width, ex. "hugo_0.45.1_Linux-64bit.tar.gz", and ships a version
	// qualified executable name.
	SchemeLegacy Scheme = "legacy"
	// SchemeModern names archives after the lowercase platform and arch, ex.
	// "hugo_0.104.3_linux-amd64.tar.gz", and ships a plain "hugo" executable.
	SchemeModern Scheme = "modern"
)

// Artifact represents the release asset resolved for a version request and
// a target. Tag is the upstream release tag without its "v" prefix.
type Artifact struct {
	ArchiveName         string
	DownloadLink        string
	ExecutableName      string
	ExecutableExtension string
	Scheme              Scheme
	Tag                 string
	Request             VersionRequest
	Target              Target
}

// ArchiveBase returns the archive name without its extension. Modern
// artifacts are extracted into a directory with this name.
func (a Artifact) ArchiveBase() string {
	for _, ext := range []string{ArchiveExtTarGz, ArchiveExtZip} {
		if base, ok := strings.CutSuffix(a.ArchiveName, ext); ok {
			return base
		}
	}

	return a.ArchiveName
}

// UnversionedExecutableName returns the executable name shipped inside the
// upstream archives, ex. "hugo" or "hugo.exe".
func (a Artifact) UnversionedExecutableName() string {
	return "hugo" + a.ExecutableExtension
}
