package config

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"runtime"
	"strconv"
	"strings"

	"github.com/mitchellh/go-homedir"
	"github.com/pelletier/go-toml/v2"

	"github.com/brunoribeiro127/hugo-cli/internal/resolver"
	"github.com/brunoribeiro127/hugo-cli/internal/system"
)

const (
	// DefaultVersion is the Hugo version used when none is requested.
	DefaultVersion = "0.104.3"

	// BaseURLEnvVar overrides the release download base URL.
	BaseURLEnvVar = "HUGO_CLI_BASE_URL"
	// ConfigEnvVar points at the config file.
	ConfigEnvVar = "HUGO_CLI_CONFIG"
	// InstallDirEnvVar overrides the install directory.
	InstallDirEnvVar = "HUGO_CLI_INSTALL_DIR"
	// OfflineEnvVar forbids downloads when true.
	OfflineEnvVar = "HUGO_CLI_OFFLINE"
	// QuietEnvVar hides progress output when true.
	QuietEnvVar = "HUGO_CLI_QUIET"
	// VerboseEnvVar enables debug logging when true.
	VerboseEnvVar = "HUGO_CLI_VERBOSE"
	// VersionEnvVar overrides the default Hugo version.
	VersionEnvVar = "HUGO_VERSION"
)

var (
	// ErrInvalidConfig is returned when the config file or an environment
	// override cannot be parsed.
	ErrInvalidConfig = errors.New("invalid configuration")
)

// Config is the hugo-cli configuration. It is built once at startup and is
// read-only afterwards.
type Config struct {
	Version     string `toml:"version"`
	BaseURL     string `toml:"base_url"`
	InstallDir  string `toml:"install_dir"`
	Offline     bool   `toml:"offline"`
	Quiet       bool   `toml:"quiet"`
	Verbose     bool   `toml:"verbose"`
	Parallelism int    `toml:"parallelism"`
}

// Default returns the built-in configuration for the given workspace.
func Default(workspace system.Workspace) Config {
	return Config{
		Version:     DefaultVersion,
		BaseURL:     resolver.DefaultBaseURL,
		InstallDir:  workspace.GetInstallPath(),
		Parallelism: runtime.NumCPU(),
	}
}

// Load builds the configuration from the built-in defaults, the config file
// and the environment, in increasing order of precedence. A missing config
// file is ignored unless its location was set explicitly.
func Load(env system.Environment, workspace system.Workspace) (Config, error) {
	cfg := Default(workspace)
	path := workspace.GetConfigPath()
	logger := slog.Default().With("path", path)

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err = parseFile(data, &cfg); err != nil {
			err = fmt.Errorf("%w: %s: %w", ErrInvalidConfig, path, err)
			logger.Error("error while parsing config file", "err", err)
			return Config{}, err
		}
	case errors.Is(err, os.ErrNotExist):
		if explicit, ok := env.Get(ConfigEnvVar); ok && explicit != "" {
			logger.Error("error while reading config file", "err", err)
			return Config{}, err
		}
	default:
		logger.Error("error while reading config file", "err", err)
		return Config{}, err
	}

	if err = applyEnv(env, &cfg); err != nil {
		logger.Error("error while reading environment", "err", err)
		return Config{}, err
	}

	if cfg.InstallDir, err = homedir.Expand(cfg.InstallDir); err != nil {
		logger.Error("error while expanding install directory", "err", err)
		return Config{}, err
	}

	if cfg.Parallelism < 1 {
		cfg.Parallelism = 1
	}

	return cfg, nil
}

// parseFile decodes the config file over the given config, rejecting
// unknown keys.
func parseFile(data []byte, cfg *Config) error {
	decoder := toml.NewDecoder(bytes.NewReader(data))
	decoder.DisallowUnknownFields()
	return decoder.Decode(cfg)
}

// applyEnv overrides the config with the environment variables that are set
// and not empty.
func applyEnv(env system.Environment, cfg *Config) error {
	strs := map[string]*string{
		BaseURLEnvVar:    &cfg.BaseURL,
		InstallDirEnvVar: &cfg.InstallDir,
		VersionEnvVar:    &cfg.Version,
	}
	for key, dst := range strs {
		if value, ok := env.Get(key); ok && strings.TrimSpace(value) != "" {
			*dst = strings.TrimSpace(value)
		}
	}

	bools := map[string]*bool{
		OfflineEnvVar: &cfg.Offline,
		QuietEnvVar:   &cfg.Quiet,
		VerboseEnvVar: &cfg.Verbose,
	}
	for key, dst := range bools {
		value, ok := env.Get(key)
		if !ok || strings.TrimSpace(value) == "" {
			continue
		}

		parsed, err := strconv.ParseBool(strings.TrimSpace(value))
		if err != nil {
			return fmt.Errorf("%w: %s=%q", ErrInvalidConfig, key, value)
		}
		*dst = parsed
	}

	return nil
}

// FromEnvironment loads the configuration of the current process.
func FromEnvironment() (Config, error) {
	env := system.NewEnvironment()

	workspace, err := system.NewWorkspace(env)
	if err != nil {
		return Config{}, err
	}

	return Load(env, workspace)
}
