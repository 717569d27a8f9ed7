package hugocli

import (
	"io"
	"time"

	"github.com/brunoribeiro127/hugo-cli/internal/archive"
	"github.com/brunoribeiro127/hugo-cli/internal/config"
	"github.com/brunoribeiro127/hugo-cli/internal/console"
	"github.com/brunoribeiro127/hugo-cli/internal/fetch"
	"github.com/brunoribeiro127/hugo-cli/internal/inspect"
	"github.com/brunoribeiro127/hugo-cli/internal/installer"
	"github.com/brunoribeiro127/hugo-cli/internal/resolver"
	"github.com/brunoribeiro127/hugo-cli/internal/system"
)

// LockTimeout bounds the wait for another process installing the same
// archive.
const LockTimeout = 2 * time.Minute

// New creates a HugoCLI backed by the network, the file system and the
// processes of the current host. Progress is reported on stdErr.
func New(cfg config.Config, stdErr, stdOut io.Writer) *HugoCLI {
	rt := system.NewRuntime()
	exec := system.NewExec()
	reporter := console.NewReporter(stdErr, cfg.Quiet)

	inst := installer.NewArchiveInstaller(
		installer.Config{
			InstallDir: cfg.InstallDir,
			Offline:    cfg.Offline,
		},
		fetch.NewHTTPDownloader(nil, reporter),
		archive.NewFileExtractor(),
		system.NewFileSystem(rt),
		system.NewLocker(LockTimeout),
		reporter,
	)

	return NewHugoCLI(
		system.NewBrowser(exec, rt),
		cfg,
		exec,
		inspect.NewGoInspector(system.NewBuildInfo(), inspect.NewScanExecCombinedOutput),
		inst,
		resolver.NewResolver(cfg.BaseURL),
		rt,
		stdErr,
		stdOut,
	)
}
