package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/brunoribeiro127/hugo-cli/internal/config"
	"github.com/brunoribeiro127/hugo-cli/internal/hugocli"
	"github.com/brunoribeiro127/hugo-cli/internal/logging"
)

// globalFlags are the flags shared by every command. They override the
// configuration file and the environment when set.
type globalFlags struct {
	baseURL    string
	installDir string
	offline    bool
	quiet      bool
	verbose    bool
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	var flags globalFlags

	cmd := &cobra.Command{
		Use:   "hugo-cli",
		Short: "hugo-cli - CLI tool to install and manage Hugo versions",
	}

	cmd.PersistentFlags().StringVar(&flags.baseURL, "base-url", "", "Base URL release archives are downloaded from")
	cmd.PersistentFlags().StringVar(&flags.installDir, "install-dir", "", "Directory Hugo versions are installed into")
	cmd.PersistentFlags().BoolVar(&flags.offline, "offline", false, "Fail instead of downloading missing versions")
	cmd.PersistentFlags().BoolVarP(&flags.quiet, "quiet", "q", false, "Hide download and extraction progress")
	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Log debug details to stderr")

	cmd.AddCommand(newDetailsCmd(&flags))
	cmd.AddCommand(newDoctorCmd(&flags))
	cmd.AddCommand(newInstallCmd(&flags))
	cmd.AddCommand(newListCmd(&flags))
	cmd.AddCommand(newPathCmd(&flags))
	cmd.AddCommand(newReleaseCmd(&flags))
	cmd.AddCommand(newUninstallCmd(&flags))
	cmd.AddCommand(newVersionCmd(&flags))

	err := cmd.ExecuteContext(ctx)
	stop()

	if err != nil {
		os.Exit(1)
	}
}

// newApp loads the configuration, applies the flags that were set and
// creates the application.
func newApp(cmd *cobra.Command, flags *globalFlags, parallelism int) (*hugocli.HugoCLI, error) {
	cfg, err := config.FromEnvironment()
	if err != nil {
		fmt.Fprintf(os.Stderr, "❌ %v\n", err)
		return nil, err
	}

	changed := cmd.Flags().Changed
	if changed("base-url") {
		cfg.BaseURL = flags.baseURL
	}
	if changed("install-dir") {
		cfg.InstallDir = flags.installDir
	}
	if changed("offline") {
		cfg.Offline = flags.offline
	}
	if changed("quiet") {
		cfg.Quiet = flags.quiet
	}
	if changed("verbose") {
		cfg.Verbose = flags.verbose
	}
	if changed("parallelism") {
		cfg.Parallelism = max(parallelism, 1)
	}

	slog.SetDefault(logging.NewLogger(os.Stderr, cfg.Verbose))

	return hugocli.New(cfg, os.Stderr, os.Stdout), nil
}

func newDetailsCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:           "details [version]",
		Short:         "Print how a version resolves for this platform",
		Args:          cobra.MaximumNArgs(1),
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true

			app, err := newApp(cmd, flags, 0)
			if err != nil {
				return err
			}

			return app.PrintDetails(firstArg(args))
		},
	}
}

func newDoctorCmd(flags *globalFlags) *cobra.Command {
	var parallelism int

	cmd := &cobra.Command{
		Use:           "doctor",
		Short:         "Diagnose issues in installed Hugo versions",
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true

			app, err := newApp(cmd, flags, parallelism)
			if err != nil {
				return err
			}

			return app.DiagnoseInstalled(cmd.Context())
		},
	}

	cmd.Flags().IntVarP(
		&parallelism,
		"parallelism",
		"p",
		0,
		"Number of concurrent operations (default: number of CPUs)",
	)

	return cmd
}

func newInstallCmd(flags *globalFlags) *cobra.Command {
	var parallelism int

	cmd := &cobra.Command{
		Use:           "install [versions]",
		Short:         "Install Hugo versions, or the default version",
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true

			app, err := newApp(cmd, flags, parallelism)
			if err != nil {
				return err
			}

			if len(args) == 0 {
				args = []string{""}
			}

			return app.InstallVersions(cmd.Context(), args...)
		},
	}

	cmd.Flags().IntVarP(
		&parallelism,
		"parallelism",
		"p",
		0,
		"Number of concurrent operations (default: number of CPUs)",
	)

	return cmd
}

func newListCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:           "list",
		Short:         "List installed Hugo versions",
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true

			app, err := newApp(cmd, flags, 0)
			if err != nil {
				return err
			}

			return app.ListInstalled()
		},
	}
}

func newPathCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:           "path [version]",
		Short:         "Print the executable path of a version, installing it if needed",
		Args:          cobra.MaximumNArgs(1),
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true

			app, err := newApp(cmd, flags, 0)
			if err != nil {
				return err
			}

			return app.PrintPath(cmd.Context(), hugocli.Options{Version: firstArg(args)})
		},
	}
}

func newReleaseCmd(flags *globalFlags) *cobra.Command {
	var open bool

	cmd := &cobra.Command{
		Use:           "release [version]",
		Short:         "Show the release page of a version",
		Args:          cobra.MaximumNArgs(1),
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true

			app, err := newApp(cmd, flags, 0)
			if err != nil {
				return err
			}

			return app.ShowRelease(cmd.Context(), firstArg(args), open)
		},
	}

	cmd.Flags().BoolVarP(
		&open,
		"open",
		"o",
		false,
		"Open the release page in the browser",
	)

	return cmd
}

func newUninstallCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:           "uninstall [versions]",
		Short:         "Uninstall Hugo versions",
		Args:          cobra.MinimumNArgs(1),
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true

			app, err := newApp(cmd, flags, 0)
			if err != nil {
				return err
			}

			return app.UninstallVersions(args...)
		},
	}
}

func newVersionCmd(flags *globalFlags) *cobra.Command {
	var short bool

	cmd := &cobra.Command{
		Use:           "version [version]",
		Short:         "Print the build info of an installed Hugo version",
		Args:          cobra.MaximumNArgs(1),
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true

			app, err := newApp(cmd, flags, 0)
			if err != nil {
				return err
			}

			return app.PrintVersion(firstArg(args), short)
		},
	}

	cmd.Flags().BoolVarP(
		&short,
		"short",
		"s",
		false,
		"Print short version info",
	)

	return cmd
}

// firstArg returns the first argument, or an empty string to select the
// default version.
func firstArg(args []string) string {
	if len(args) == 0 {
		return ""
	}

	return args[0]
}
