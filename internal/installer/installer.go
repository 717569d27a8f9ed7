package installer

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"slices"

	"github.com/brunoribeiro127/hugo-cli/internal/archive"
	"github.com/brunoribeiro127/hugo-cli/internal/console"
	"github.com/brunoribeiro127/hugo-cli/internal/fetch"
	"github.com/brunoribeiro127/hugo-cli/internal/model"
	"github.com/brunoribeiro127/hugo-cli/internal/system"
)

const (
	// installDirMode is the permission of the install directory.
	installDirMode os.FileMode = 0o755
	// lockExt is appended to the archive name to get its lock file name.
	lockExt = ".lock"
	// stripComponents is the number of leading components removed from
	// archive entries. Upstream archives may wrap their contents in a
	// version named folder.
	stripComponents = 1
)

// Installer is an interface for installing Hugo release artifacts.
type Installer interface {
	// EnsureInstalled installs the artifact unless it is already installed
	// and returns the executable path.
	EnsureInstalled(
		ctx context.Context,
		artifact model.Artifact,
	) (string, error)
	// ExecutablePath returns where the executable of the artifact lives once
	// installed.
	ExecutablePath(
		artifact model.Artifact,
	) string
	// IsInstalled checks if the executable of the artifact exists.
	IsInstalled(
		artifact model.Artifact,
	) bool
	// ListInstalled lists the installed executables.
	ListInstalled() ([]model.Installation, error)
	// Uninstall removes the executable and the archive of the artifact.
	Uninstall(
		artifact model.Artifact,
	) error
}

// Config is the configuration of an ArchiveInstaller.
type Config struct {
	InstallDir string
	Offline    bool
}

// ArchiveInstaller installs Hugo by downloading and extracting upstream
// release archives into an install directory.
type ArchiveInstaller struct {
	config     Config
	downloader fetch.Downloader
	extractor  archive.Extractor
	fs         system.FileSystem
	locker     system.Locker
	reporter   console.Reporter
}

// NewArchiveInstaller creates a new ArchiveInstaller.
func NewArchiveInstaller(
	config Config,
	downloader fetch.Downloader,
	extractor archive.Extractor,
	fs system.FileSystem,
	locker system.Locker,
	reporter console.Reporter,
) *ArchiveInstaller {
	return &ArchiveInstaller{
		config:     config,
		downloader: downloader,
		extractor:  extractor,
		fs:         fs,
		locker:     locker,
		reporter:   reporter,
	}
}

// EnsureInstalled installs the artifact unless it is already installed and
// returns the executable path. An installed artifact returns immediately
// without locking or downloading. Otherwise the install directory is created,
// a per-archive lock is acquired, the archive is downloaded and extracted
// and the executable is verified. Any failing stage aborts the rest. It
// returns ErrOffline in offline mode, *DownloadError, *ExtractError or
// *MissingExecutableError when the matching stage fails.
func (i *ArchiveInstaller) EnsureInstalled(
	ctx context.Context,
	artifact model.Artifact,
) (string, error) {
	path := i.ExecutablePath(artifact)
	logger := slog.Default().With("archive", artifact.ArchiveName, "path", path)

	if i.IsInstalled(artifact) {
		logger.DebugContext(ctx, "hugo already installed")
		return path, nil
	}

	if i.config.Offline {
		err := fmt.Errorf("%w: %s", ErrOffline, artifact.Request)
		logger.ErrorContext(ctx, "error while installing hugo", "err", err)
		return "", err
	}

	if err := i.fs.CreateDir(i.config.InstallDir, installDirMode); err != nil {
		logger.ErrorContext(ctx, "error while creating install directory", "err", err)
		return "", err
	}

	unlock, err := i.locker.Lock(ctx, filepath.Join(i.config.InstallDir, artifact.ArchiveName+lockExt))
	if err != nil {
		return "", err
	}
	defer func() {
		_ = unlock()
	}()

	if i.IsInstalled(artifact) {
		logger.DebugContext(ctx, "hugo installed while waiting for lock")
		return path, nil
	}

	i.reporter.Step("hugo %s not downloaded yet, installing it", artifact.Request)

	archivePath := filepath.Join(i.config.InstallDir, artifact.ArchiveName)

	done := i.reporter.Task("downloading %s", artifact.DownloadLink)
	err = i.downloader.Download(ctx, artifact.DownloadLink, archivePath)
	done(err)
	if err != nil {
		return "", &DownloadError{URL: artifact.DownloadLink, Err: err}
	}

	done = i.reporter.Task("extracting %s", artifact.ArchiveName)
	err = i.extractor.Extract(ctx, archivePath, i.extractDir(artifact), extractOptions(artifact))
	done(err)
	if err != nil {
		return "", &ExtractError{Archive: archivePath, Err: err}
	}

	if !i.IsInstalled(artifact) {
		err = &MissingExecutableError{Path: path, Archive: archivePath}
		logger.ErrorContext(ctx, "error while verifying installation", "err", err)
		return "", err
	}

	return path, nil
}

// ExecutablePath returns where the executable of the artifact lives once
// installed. Legacy executables are version qualified and share the install
// directory. Modern executables are all named "hugo" and live in a directory
// named after their archive.
func (i *ArchiveInstaller) ExecutablePath(artifact model.Artifact) string {
	return filepath.Join(i.extractDir(artifact), artifact.ExecutableName)
}

// IsInstalled checks if the executable of the artifact exists. A corrupt
// archive left by an interrupted install does not count as installed.
func (i *ArchiveInstaller) IsInstalled(artifact model.Artifact) bool {
	exists, err := i.fs.Exists(i.ExecutablePath(artifact))
	return err == nil && exists
}

// ListInstalled lists the executables in the install directory, ordered by
// version. A missing install directory yields an empty list.
func (i *ArchiveInstaller) ListInstalled() ([]model.Installation, error) {
	exists, err := i.fs.Exists(i.config.InstallDir)
	if err != nil || !exists {
		return nil, err
	}

	names, err := i.fs.ListDir(i.config.InstallDir)
	if err != nil {
		return nil, err
	}

	installations := make([]model.Installation, 0, len(names))
	for _, name := range names {
		if inst, ok := model.ParseLegacyInstallation(name); ok {
			inst.Path = filepath.Join(i.config.InstallDir, name)
			if i.fs.IsExecutable(inst.Path) {
				installations = append(installations, inst)
			}
			continue
		}

		if inst, ok := model.ParseModernInstallation(name); ok {
			inst.Path = filepath.Join(i.config.InstallDir, name, modernExecutableName(inst))
			if i.fs.IsExecutable(inst.Path) {
				installations = append(installations, inst)
			}
		}
	}

	slices.SortFunc(installations, compareInstallations)

	return installations, nil
}

// Uninstall removes the executable and the archive of the artifact. It
// returns os.ErrNotExist if the artifact is not installed.
func (i *ArchiveInstaller) Uninstall(artifact model.Artifact) error {
	path := i.ExecutablePath(artifact)
	logger := slog.Default().With("archive", artifact.ArchiveName, "path", path)

	if !i.IsInstalled(artifact) {
		return fmt.Errorf("%w: %s", os.ErrNotExist, path)
	}

	var err error
	if artifact.Scheme == model.SchemeModern {
		err = i.fs.RemoveAll(i.extractDir(artifact))
	} else {
		err = i.fs.Remove(path)
	}
	if err != nil {
		logger.Error("error while removing executable", "err", err)
		return err
	}

	for _, leftover := range []string{artifact.ArchiveName, artifact.ArchiveName + lockExt} {
		rmErr := i.fs.Remove(filepath.Join(i.config.InstallDir, leftover))
		if rmErr != nil && !errors.Is(rmErr, os.ErrNotExist) {
			logger.Error("error while removing leftover", "file", leftover, "err", rmErr)
			return rmErr
		}
	}

	return nil
}

// extractDir returns the directory the artifact is extracted into.
func (i *ArchiveInstaller) extractDir(artifact model.Artifact) string {
	if artifact.Scheme == model.SchemeModern {
		return filepath.Join(i.config.InstallDir, artifact.ArchiveBase())
	}

	return i.config.InstallDir
}

// extractOptions returns the extraction options for the artifact. Legacy
// archives ship a plain "hugo" executable which is renamed to the version
// qualified name so versions can share the install directory.
func extractOptions(artifact model.Artifact) archive.Options {
	opts := archive.Options{StripComponents: stripComponents}
	if artifact.Scheme == model.SchemeLegacy {
		opts.Rename = map[string]string{
			artifact.UnversionedExecutableName(): artifact.ExecutableName,
		}
	}

	return opts
}

// modernExecutableName returns the executable name inside a modern
// extraction directory.
func modernExecutableName(inst model.Installation) string {
	if inst.Platform == string(model.PlatformWindows) {
		return "hugo" + model.ExecutableExtWindows
	}

	return "hugo"
}

// compareInstallations orders installations by version, standard builds
// first.
func compareInstallations(a, b model.Installation) int {
	va, _ := model.ParseVersionRequest(a.Version)
	vb, _ := model.ParseVersionRequest(b.Version)

	if c := va.Numeric.Compare(vb.Numeric); c != 0 {
		return c
	}

	if a.Extended != b.Extended {
		if a.Extended {
			return 1
		}
		return -1
	}

	return cmp.Compare(a.Name, b.Name)
}
