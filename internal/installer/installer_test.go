package installer_test

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brunoribeiro127/hugo-cli/internal/archive"
	archivemocks "github.com/brunoribeiro127/hugo-cli/internal/archive/mocks"
	"github.com/brunoribeiro127/hugo-cli/internal/console"
	fetchmocks "github.com/brunoribeiro127/hugo-cli/internal/fetch/mocks"
	"github.com/brunoribeiro127/hugo-cli/internal/installer"
	"github.com/brunoribeiro127/hugo-cli/internal/model"
	"github.com/brunoribeiro127/hugo-cli/internal/resolver"
	"github.com/brunoribeiro127/hugo-cli/internal/system"
	systemmocks "github.com/brunoribeiro127/hugo-cli/internal/system/mocks"
)

var installDir = filepath.Join("home", "user", ".cache", "hugo-cli")

func mustResolve(t *testing.T, version, platform, arch string) model.Artifact {
	t.Helper()

	artifact, err := resolver.NewResolver("").GetDetails(version, model.NewTarget(platform, arch))
	require.NoError(t, err)

	return artifact
}

func TestArchiveInstaller_ExecutablePath(t *testing.T) {
	cases := map[string]struct {
		artifact     model.Artifact
		expectedPath string
	}{
		"legacy": {
			artifact:     mustResolve(t, "0.45.1", "linux", "x64"),
			expectedPath: filepath.Join(installDir, "hugo_0.45.1_linux_amd64"),
		},
		"legacy-windows": {
			artifact:     mustResolve(t, "0.45.1", "win32", "x32"),
			expectedPath: filepath.Join(installDir, "hugo_0.45.1_windows_386.exe"),
		},
		"modern": {
			artifact:     mustResolve(t, "0.104.3", "linux", "arm64"),
			expectedPath: filepath.Join(installDir, "hugo_0.104.3_linux-arm64", "hugo"),
		},
		"modern-extended-windows": {
			artifact:     mustResolve(t, "extended_0.104.3", "win32", "x64"),
			expectedPath: filepath.Join(installDir, "hugo_extended_0.104.3_windows-amd64", "hugo.exe"),
		},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			inst := installer.NewArchiveInstaller(
				installer.Config{InstallDir: installDir}, nil, nil, nil, nil, nil,
			)
			assert.Equal(t, tc.expectedPath, inst.ExecutablePath(tc.artifact))
		})
	}
}

func TestArchiveInstaller_IsInstalled(t *testing.T) {
	cases := map[string]struct {
		mockExists    bool
		mockExistsErr error
		expected      bool
	}{
		"installed": {
			mockExists: true,
			expected:   true,
		},
		"not-installed": {
			mockExists: false,
			expected:   false,
		},
		"stat-error": {
			mockExistsErr: errors.New("permission denied"),
			expected:      false,
		},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			artifact := mustResolve(t, "0.45.1", "linux", "x64")
			fs := systemmocks.NewFileSystem(t)

			fs.EXPECT().Exists(filepath.Join(installDir, "hugo_0.45.1_linux_amd64")).
				Return(tc.mockExists, tc.mockExistsErr).
				Once()

			inst := installer.NewArchiveInstaller(
				installer.Config{InstallDir: installDir}, nil, nil, fs, nil, nil,
			)
			assert.Equal(t, tc.expected, inst.IsInstalled(artifact))
		})
	}
}

func TestArchiveInstaller_EnsureInstalled(t *testing.T) {
	legacy := mustResolve(t, "0.45.1", "linux", "x64")
	modern := mustResolve(t, "0.104.3", "linux", "arm64")

	legacyPath := filepath.Join(installDir, "hugo_0.45.1_linux_amd64")
	modernPath := filepath.Join(installDir, "hugo_0.104.3_linux-arm64", "hugo")

	cases := map[string]struct {
		artifact          model.Artifact
		offline           bool
		mockExists        []bool
		callCreateDir     bool
		mockCreateDirErr  error
		callLock          bool
		mockLockErr       error
		callDownload      bool
		mockDownloadErr   error
		callExtract       bool
		expectedExtractTo string
		expectedOpts      archive.Options
		mockExtractErr    error
		expectedPath      string
		expectedErr       error
	}{
		"success-already-installed": {
			artifact:     legacy,
			mockExists:   []bool{true},
			expectedPath: legacyPath,
		},
		"success-already-installed-offline": {
			artifact:     legacy,
			offline:      true,
			mockExists:   []bool{true},
			expectedPath: legacyPath,
		},
		"success-legacy": {
			artifact:          legacy,
			mockExists:        []bool{false, false, true},
			callCreateDir:     true,
			callLock:          true,
			callDownload:      true,
			callExtract:       true,
			expectedExtractTo: installDir,
			expectedOpts: archive.Options{
				StripComponents: 1,
				Rename:          map[string]string{"hugo": "hugo_0.45.1_linux_amd64"},
			},
			expectedPath: legacyPath,
		},
		"success-modern": {
			artifact:          modern,
			mockExists:        []bool{false, false, true},
			callCreateDir:     true,
			callLock:          true,
			callDownload:      true,
			callExtract:       true,
			expectedExtractTo: filepath.Join(installDir, "hugo_0.104.3_linux-arm64"),
			expectedOpts:      archive.Options{StripComponents: 1},
			expectedPath:      modernPath,
		},
		"success-installed-while-waiting-for-lock": {
			artifact:      modern,
			mockExists:    []bool{false, true},
			callCreateDir: true,
			callLock:      true,
			expectedPath:  modernPath,
		},
		"error-offline": {
			artifact:    legacy,
			offline:     true,
			mockExists:  []bool{false},
			expectedErr: fmt.Errorf("%w: %s", installer.ErrOffline, "0.45.1"),
		},
		"error-create-dir": {
			artifact:         legacy,
			mockExists:       []bool{false},
			callCreateDir:    true,
			mockCreateDirErr: errors.New("permission denied"),
			expectedErr:      errors.New("permission denied"),
		},
		"error-lock-timeout": {
			artifact:      legacy,
			mockExists:    []bool{false},
			callCreateDir: true,
			callLock:      true,
			mockLockErr:   system.ErrLockTimeout,
			expectedErr:   system.ErrLockTimeout,
		},
		"error-download": {
			artifact:        legacy,
			mockExists:      []bool{false, false},
			callCreateDir:   true,
			callLock:        true,
			callDownload:    true,
			mockDownloadErr: errors.New("unexpected response status: http404"),
			expectedErr: &installer.DownloadError{
				URL: legacy.DownloadLink,
				Err: errors.New("unexpected response status: http404"),
			},
		},
		"error-extract": {
			artifact:          legacy,
			mockExists:        []bool{false, false},
			callCreateDir:     true,
			callLock:          true,
			callDownload:      true,
			callExtract:       true,
			expectedExtractTo: installDir,
			expectedOpts: archive.Options{
				StripComponents: 1,
				Rename:          map[string]string{"hugo": "hugo_0.45.1_linux_amd64"},
			},
			mockExtractErr: errors.New("unsupported archive format: text/html"),
			expectedErr: &installer.ExtractError{
				Archive: filepath.Join(installDir, "hugo_0.45.1_Linux-64bit.tar.gz"),
				Err:     errors.New("unsupported archive format: text/html"),
			},
		},
		"error-missing-executable": {
			artifact:          modern,
			mockExists:        []bool{false, false, false},
			callCreateDir:     true,
			callLock:          true,
			callDownload:      true,
			callExtract:       true,
			expectedExtractTo: filepath.Join(installDir, "hugo_0.104.3_linux-arm64"),
			expectedOpts:      archive.Options{StripComponents: 1},
			expectedErr: &installer.MissingExecutableError{
				Path:    modernPath,
				Archive: filepath.Join(installDir, "hugo_0.104.3_linux-arm64.tar.gz"),
			},
		},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			fs := systemmocks.NewFileSystem(t)
			locker := systemmocks.NewLocker(t)
			downloader := fetchmocks.NewDownloader(t)
			extractor := archivemocks.NewExtractor(t)

			path := filepath.Join(installDir, tc.artifact.ArchiveBase(), tc.artifact.ExecutableName)
			if tc.artifact.Scheme == model.SchemeLegacy {
				path = filepath.Join(installDir, tc.artifact.ExecutableName)
			}
			archivePath := filepath.Join(installDir, tc.artifact.ArchiveName)

			for _, exists := range tc.mockExists {
				fs.EXPECT().Exists(path).Return(exists, nil).Once()
			}

			if tc.callCreateDir {
				fs.EXPECT().CreateDir(installDir, os.FileMode(0o755)).
					Return(tc.mockCreateDirErr).
					Once()
			}

			unlocked := false
			if tc.callLock {
				var unlock system.UnlockFunc
				if tc.mockLockErr == nil {
					unlock = func() error {
						unlocked = true
						return nil
					}
				}

				locker.EXPECT().Lock(ctx, archivePath+".lock").
					Return(unlock, tc.mockLockErr).
					Once()
			}

			if tc.callDownload {
				downloader.EXPECT().Download(ctx, tc.artifact.DownloadLink, archivePath).
					Return(tc.mockDownloadErr).
					Once()
			}

			if tc.callExtract {
				extractor.EXPECT().Extract(ctx, archivePath, tc.expectedExtractTo, tc.expectedOpts).
					Return(tc.mockExtractErr).
					Once()
			}

			inst := installer.NewArchiveInstaller(
				installer.Config{InstallDir: installDir, Offline: tc.offline},
				downloader,
				extractor,
				fs,
				locker,
				console.NewReporter(io.Discard, true),
			)

			result, err := inst.EnsureInstalled(ctx, tc.artifact)
			assert.Equal(t, tc.expectedErr, err)
			assert.Equal(t, tc.expectedPath, result)
			assert.Equal(t, tc.callLock && tc.mockLockErr == nil, unlocked)
		})
	}
}

func TestArchiveInstaller_ListInstalled(t *testing.T) {
	cases := map[string]struct {
		mockExists       bool
		mockExistsErr    error
		callListDir      bool
		mockListDir      []string
		mockListDirErr   error
		mockIsExecutable map[string]bool
		expected         []model.Installation
		expectedErr      error
	}{
		"success": {
			mockExists:  true,
			callListDir: true,
			mockListDir: []string{
				"README.md",
				"hugo_0.104.3_linux-arm64",
				"hugo_0.104.3_linux-arm64.tar.gz",
				"hugo_0.104.3_linux-arm64.tar.gz.lock",
				"hugo_0.30.2_linux_amd64",
				"hugo_0.45.1_Linux-64bit.tar.gz",
				"hugo_0.45.1_linux_amd64",
				"hugo_extended_0.45.1_linux_amd64",
				"hugo_0.50_linux_amd64",
			},
			mockIsExecutable: map[string]bool{
				filepath.Join(installDir, "hugo_0.104.3_linux-arm64", "hugo"): true,
				filepath.Join(installDir, "hugo_0.30.2_linux_amd64"):          false,
				filepath.Join(installDir, "hugo_0.45.1_linux_amd64"):          true,
				filepath.Join(installDir, "hugo_extended_0.45.1_linux_amd64"): true,
				filepath.Join(installDir, "hugo_0.50_linux_amd64"):            true,
			},
			expected: []model.Installation{
				{
					Name:     "hugo_0.45.1_linux_amd64",
					Path:     filepath.Join(installDir, "hugo_0.45.1_linux_amd64"),
					Version:  "0.45.1",
					Platform: "linux",
					Arch:     "amd64",
					Scheme:   model.SchemeLegacy,
				},
				{
					Name:     "hugo_extended_0.45.1_linux_amd64",
					Path:     filepath.Join(installDir, "hugo_extended_0.45.1_linux_amd64"),
					Version:  "0.45.1",
					Extended: true,
					Platform: "linux",
					Arch:     "amd64",
					Scheme:   model.SchemeLegacy,
				},
				{
					Name:     "hugo_0.50_linux_amd64",
					Path:     filepath.Join(installDir, "hugo_0.50_linux_amd64"),
					Version:  "0.50",
					Platform: "linux",
					Arch:     "amd64",
					Scheme:   model.SchemeLegacy,
				},
				{
					Name:     "hugo_0.104.3_linux-arm64",
					Path:     filepath.Join(installDir, "hugo_0.104.3_linux-arm64", "hugo"),
					Version:  "0.104.3",
					Platform: "linux",
					Arch:     "arm64",
					Scheme:   model.SchemeModern,
				},
			},
		},
		"success-windows-modern": {
			mockExists:  true,
			callListDir: true,
			mockListDir: []string{"hugo_0.104.3_windows-amd64"},
			mockIsExecutable: map[string]bool{
				filepath.Join(installDir, "hugo_0.104.3_windows-amd64", "hugo.exe"): true,
			},
			expected: []model.Installation{
				{
					Name:     "hugo_0.104.3_windows-amd64",
					Path:     filepath.Join(installDir, "hugo_0.104.3_windows-amd64", "hugo.exe"),
					Version:  "0.104.3",
					Platform: "windows",
					Arch:     "amd64",
					Scheme:   model.SchemeModern,
				},
			},
		},
		"success-missing-install-dir": {
			mockExists: false,
		},
		"error-exists": {
			mockExistsErr: errors.New("permission denied"),
			expectedErr:   errors.New("permission denied"),
		},
		"error-list-dir": {
			mockExists:     true,
			callListDir:    true,
			mockListDirErr: errors.New("unexpected error"),
			expectedErr:    errors.New("unexpected error"),
		},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			fs := systemmocks.NewFileSystem(t)

			fs.EXPECT().Exists(installDir).
				Return(tc.mockExists, tc.mockExistsErr).
				Once()

			if tc.callListDir {
				fs.EXPECT().ListDir(installDir).
					Return(tc.mockListDir, tc.mockListDirErr).
					Once()
			}

			for path, executable := range tc.mockIsExecutable {
				fs.EXPECT().IsExecutable(path).Return(executable).Once()
			}

			inst := installer.NewArchiveInstaller(
				installer.Config{InstallDir: installDir}, nil, nil, fs, nil, nil,
			)

			installations, err := inst.ListInstalled()
			assert.Equal(t, tc.expectedErr, err)
			assert.Equal(t, tc.expected, installations)
		})
	}
}

func TestArchiveInstaller_Uninstall(t *testing.T) {
	legacy := mustResolve(t, "0.45.1", "linux", "x64")
	modern := mustResolve(t, "0.104.3", "linux", "arm64")

	cases := map[string]struct {
		artifact            model.Artifact
		mockExists          bool
		callRemoveExec      bool
		callRemoveAll       bool
		mockRemoveExecErr   error
		callRemoveLeftovers bool
		mockRemoveArchive   error
		mockRemoveLock      error
		expectedErr         error
	}{
		"success-legacy": {
			artifact:            legacy,
			mockExists:          true,
			callRemoveExec:      true,
			callRemoveLeftovers: true,
			mockRemoveArchive:   os.ErrNotExist,
			mockRemoveLock:      os.ErrNotExist,
		},
		"success-modern": {
			artifact:            modern,
			mockExists:          true,
			callRemoveAll:       true,
			callRemoveLeftovers: true,
		},
		"error-not-installed": {
			artifact:    legacy,
			mockExists:  false,
			expectedErr: fmt.Errorf("%w: %s", os.ErrNotExist, filepath.Join(installDir, "hugo_0.45.1_linux_amd64")),
		},
		"error-remove-executable": {
			artifact:          legacy,
			mockExists:        true,
			callRemoveExec:    true,
			mockRemoveExecErr: errors.New("permission denied"),
			expectedErr:       errors.New("permission denied"),
		},
		"error-remove-archive": {
			artifact:            modern,
			mockExists:          true,
			callRemoveAll:       true,
			callRemoveLeftovers: true,
			mockRemoveArchive:   errors.New("permission denied"),
			expectedErr:         errors.New("permission denied"),
		},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			fs := systemmocks.NewFileSystem(t)
			inst := installer.NewArchiveInstaller(
				installer.Config{InstallDir: installDir}, nil, nil, fs, nil, nil,
			)
			path := inst.ExecutablePath(tc.artifact)

			fs.EXPECT().Exists(path).Return(tc.mockExists, nil).Once()

			if tc.callRemoveExec {
				fs.EXPECT().Remove(path).Return(tc.mockRemoveExecErr).Once()
			}

			if tc.callRemoveAll {
				fs.EXPECT().RemoveAll(filepath.Dir(path)).Return(tc.mockRemoveExecErr).Once()
			}

			if tc.callRemoveLeftovers {
				archivePath := filepath.Join(installDir, tc.artifact.ArchiveName)
				fs.EXPECT().Remove(archivePath).Return(tc.mockRemoveArchive).Once()
				if tc.mockRemoveArchive == nil || errors.Is(tc.mockRemoveArchive, os.ErrNotExist) {
					fs.EXPECT().Remove(archivePath + ".lock").Return(tc.mockRemoveLock).Once()
				}
			}

			err := inst.Uninstall(tc.artifact)
			assert.Equal(t, tc.expectedErr, err)
		})
	}
}
