package system

import (
	"log/slog"
	"path/filepath"
)

const (
	// appDirName is the directory created under the user cache directory.
	appDirName = "hugo-cli"
	// configFileName is the config file looked up in the working directory.
	configFileName = ".hugo-cli.toml"
	// configPathEnvVar overrides the config file location.
	configPathEnvVar = "HUGO_CLI_CONFIG"
)

// Workspace is an interface that provides the default locations used by
// hugo-cli.
type Workspace interface {
	// GetInstallPath returns the default install directory.
	GetInstallPath() string
	// GetConfigPath returns the config file path. The file may not exist.
	GetConfigPath() string
}

// workspace is the default implementation of the Workspace interface.
type workspace struct {
	installPath string
	configPath  string

	env Environment
}

// NewWorkspace creates a new workspace. It returns an error if the default
// locations cannot be determined.
func NewWorkspace(
	env Environment,
) (Workspace, error) {
	ws := &workspace{
		env: env,
	}

	if err := ws.init(); err != nil {
		return nil, err
	}

	return ws, nil
}

// GetInstallPath returns the default install directory.
func (w *workspace) GetInstallPath() string {
	return w.installPath
}

// GetConfigPath returns the config file path.
func (w *workspace) GetConfigPath() string {
	return w.configPath
}

// init resolves the default install directory and the config file path.
// The install directory lives in the user cache directory instead of next to
// the executable, so it survives reinstalls of hugo-cli itself. Directories
// are created lazily by the installer.
func (w *workspace) init() error {
	cacheDir, err := w.env.UserCacheDir()
	if err != nil {
		slog.Default().Error("failed to get user cache directory", "err", err)
		return err
	}

	w.installPath = filepath.Join(cacheDir, appDirName)

	if path, ok := w.env.Get(configPathEnvVar); ok && path != "" {
		w.configPath = path
		return nil
	}

	wd, err := w.env.Getwd()
	if err != nil {
		slog.Default().Error("failed to get working directory", "err", err)
		return err
	}

	w.configPath = filepath.Join(wd, configFileName)

	return nil
}
