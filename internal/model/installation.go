package model

import (
	"regexp"
	"strings"
)

var (
	// legacyExecutablePattern matches legacy executable names, ex.
	// "hugo_extended_0.45.1_linux_amd64".
	legacyExecutablePattern = regexp.MustCompile(
		`^hugo_(extended_)?(\d+\.\d+(?:\.\d+)?)_([a-z]+)_([a-z0-9]+)(\.exe)?$`,
	)
	// modernDirPattern matches modern extraction directories, ex.
	// "hugo_extended_0.104.3_linux-amd64".
	modernDirPattern = regexp.MustCompile(
		`^hugo_(extended_)?(\d+\.\d+\.\d+)_([a-z]+)-([a-z0-9]+)$`,
	)
)

// Installation represents a Hugo executable found in the install directory.
type Installation struct {
	Name     string
	Path     string
	Version  string
	Extended bool
	Platform string
	Arch     string
	Scheme   Scheme
}

// ParseLegacyInstallation parses a legacy executable name. It returns false
// if the name does not follow the legacy executable naming.
func ParseLegacyInstallation(name string) (Installation, bool) {
	matches := legacyExecutablePattern.FindStringSubmatch(name)
	if matches == nil {
		return Installation{}, false
	}

	return Installation{
		Name:     name,
		Version:  matches[2],
		Extended: matches[1] != "",
		Platform: matches[3],
		Arch:     matches[4],
		Scheme:   SchemeLegacy,
	}, true
}

// ParseModernInstallation parses a modern extraction directory name. It
// returns false if the name does not follow the modern archive naming.
func ParseModernInstallation(dirName string) (Installation, bool) {
	matches := modernDirPattern.FindStringSubmatch(dirName)
	if matches == nil {
		return Installation{}, false
	}

	return Installation{
		Name:     dirName,
		Version:  matches[2],
		Extended: matches[1] != "",
		Platform: matches[3],
		Arch:     matches[4],
		Scheme:   SchemeModern,
	}, true
}

// Request returns the version request string matching the installation, ex.
// "extended_0.104.3".
func (i Installation) Request() string {
	if i.Extended {
		return extendedPrefix + i.Version
	}

	return i.Version
}

// Variant returns the build variant name.
func (i Installation) Variant() string {
	if i.Extended {
		return "extended"
	}

	return "standard"
}

// Label returns a short label for the installation, ex.
// "hugo 0.104.3 (extended, linux-amd64)".
func (i Installation) Label() string {
	var b strings.Builder
	b.WriteString("hugo ")
	b.WriteString(i.Version)
	b.WriteString(" (")
	b.WriteString(i.Variant())
	b.WriteString(", ")
	b.WriteString(i.Platform)
	b.WriteString("-")
	b.WriteString(i.Arch)
	b.WriteString(")")
	return b.String()
}
