package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/brunoribeiro127/hugo-cli/internal/config"
	"github.com/brunoribeiro127/hugo-cli/internal/hugocli"
	"github.com/brunoribeiro127/hugo-cli/internal/logging"
)

// hugoFunc runs Hugo with the given arguments and returns its exit code.
type hugoFunc func(ctx context.Context, args []string) (int, error)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	code, err := run(ctx, os.Args[1:], execHugo)
	if err != nil {
		fmt.Fprintf(os.Stderr, "❌ %v\n", err)
	}

	stop()
	os.Exit(code)
}

// run executes the root command with the given arguments and returns the
// exit code of the process. Errors never exit with 0.
func run(ctx context.Context, args []string, runHugo hugoFunc) (int, error) {
	// cobra falls back to os.Args on nil.
	if args == nil {
		args = []string{}
	}

	code := 0
	cmd := newRootCmd(runHugo, &code)
	cmd.SetArgs(args)

	if err := cmd.ExecuteContext(ctx); err != nil {
		if code == 0 {
			code = 1
		}
		return code, err
	}

	return code, nil
}

// newRootCmd creates the root command. Flag parsing is disabled so every
// argument, "-h" and "--help" included, reaches Hugo untouched.
func newRootCmd(runHugo hugoFunc, code *int) *cobra.Command {
	return &cobra.Command{
		Use:                "hugo [flags] [args]",
		Short:              "hugo - runs the Hugo version of the project, installing it on first use",
		DisableFlagParsing: true,
		SilenceErrors:      true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true

			var err error
			*code, err = runHugo(cmd.Context(), args)
			return err
		},
	}
}

// execHugo runs Hugo with the given arguments and returns its exit code.
func execHugo(ctx context.Context, args []string) (int, error) {
	cfg, err := config.FromEnvironment()
	if err != nil {
		return 1, err
	}

	cfg.Verbose = cfg.Verbose || isVerbose(args)
	slog.SetDefault(logging.NewLogger(os.Stderr, cfg.Verbose))

	return hugocli.New(cfg, os.Stderr, os.Stdout).Exec(
		ctx,
		hugocli.Options{Verbose: cfg.Verbose},
		args,
	)
}

// isVerbose reports whether the arguments ask Hugo for verbose output, either
// with "--verbose" or with a short flag cluster holding "v". The flags are
// still forwarded to Hugo.
func isVerbose(args []string) bool {
	for _, arg := range args {
		switch {
		case arg == "--":
			return false
		case arg == "--verbose":
			return true
		case strings.HasPrefix(arg, "-") && !strings.HasPrefix(arg, "--"):
			if strings.Contains(arg[1:], "v") {
				return true
			}
		}
	}

	return false
}
