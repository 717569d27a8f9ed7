package hugocli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"slices"
	"strings"
	"sync"
	"text/template"

	"golang.org/x/sync/errgroup"

	"github.com/brunoribeiro127/hugo-cli/internal/config"
	"github.com/brunoribeiro127/hugo-cli/internal/inspect"
	"github.com/brunoribeiro127/hugo-cli/internal/installer"
	"github.com/brunoribeiro127/hugo-cli/internal/model"
	"github.com/brunoribeiro127/hugo-cli/internal/resolver"
	"github.com/brunoribeiro127/hugo-cli/internal/system"
)

const (
	// ReleaseURL is the upstream release page, formatted with the release
	// tag.
	ReleaseURL = "https://github.com/gohugoio/hugo/releases/tag/v%s"

	// detailsTemplate is the template for the details command.
	detailsTemplate = `Version       {{.Artifact.Request.String}}
Release       v{{.Artifact.Tag}}
Target        {{.Artifact.Target.String}}
Scheme        {{.Artifact.Scheme}}
Archive       {{.Artifact.ArchiveName}}
Download      {{.Artifact.DownloadLink}}
Executable    {{.Path}}
Installed     {{if .Installed}}yes{{else}}no{{end}}
`

	// doctorTemplate is the template for the doctor command.
	doctorTemplate = `{{- range .DiagsWithIssues -}}
🛠️  {{ .Label }}
    {{- if .MissingBuildInfo }}
    ❗ build info not available, cannot check for vulnerabilities
    {{- end }}
    {{- if ne .BuildPlatform.Actual .BuildPlatform.Expected }}
    ❗ platform mismatch: expected {{ .BuildPlatform.Expected }}, actual {{ .BuildPlatform.Actual }}
    {{- end }}
    {{- if .Vulnerabilities }}
    ❗ found {{ len .Vulnerabilities }} {{if gt (len .Vulnerabilities) 1}}vulnerabilities{{else}}vulnerability{{end}}:
        {{- range .Vulnerabilities }}
        • {{ .ID }} ({{ .URL }})
        {{- end }}
    {{- end }}
{{end -}}
{{- if gt .WithIssues 0 }}
{{""}}
{{- end -}}
{{ .Total }} executables checked, {{ .WithIssues }} with issues
`

	// listTemplate is the template for the list command.
	listTemplate = `  {{printf "%-*s" $.VersionWidth "Version"}}  {{printf "%-*s" $.VariantWidth "Variant"}}  {{printf "%-*s" $.TargetWidth "Target"}}  Path
{{repeat "-" (add $.VersionWidth $.VariantWidth $.TargetWidth $.PathWidth 8)}}
{{range .Rows -}}
{{if .Default}}*{{else}} {{end}} {{printf "%-*s" $.VersionWidth .Version}}  {{printf "%-*s" $.VariantWidth .Variant}}  {{printf "%-*s" $.TargetWidth .Target}}  {{.Path}}
{{end -}}
`
)

// Options are the per invocation options of the Hugo shim.
type Options struct {
	Version string
	Verbose bool
}

// HugoCLI is an application that installs and runs Hugo versions.
type HugoCLI struct {
	browser   system.Browser
	config    config.Config
	exec      system.Exec
	inspector inspect.Inspector
	installer installer.Installer
	resolver  resolver.ArtifactResolver
	runtime   system.Runtime
	stdErr    io.Writer
	stdOut    io.Writer
}

// NewHugoCLI creates a new HugoCLI application.
func NewHugoCLI(
	browser system.Browser,
	config config.Config,
	exec system.Exec,
	inspector inspect.Inspector,
	installer installer.Installer,
	resolver resolver.ArtifactResolver,
	runtime system.Runtime,
	stdErr io.Writer,
	stdOut io.Writer,
) *HugoCLI {
	return &HugoCLI{
		browser:   browser,
		config:    config,
		exec:      exec,
		inspector: inspector,
		installer: installer,
		resolver:  resolver,
		runtime:   runtime,
		stdErr:    stdErr,
		stdOut:    stdOut,
	}
}

// WithHugo makes sure the requested Hugo version is installed and returns
// the path of its executable. The configured default version is used when
// none is requested. Resolution details are logged at debug level when
// verbose.
func (h *HugoCLI) WithHugo(ctx context.Context, opts Options) (string, error) {
	artifact, err := h.artifact(opts.Version)
	if err != nil {
		return "", err
	}

	if opts.Verbose || h.config.Verbose {
		slog.Default().DebugContext(ctx, "resolved hugo",
			"target", artifact.Target.String(),
			"version", artifact.Request.String(),
			"archive", artifact.ArchiveName,
			"url", artifact.DownloadLink,
			"install_dir", h.config.InstallDir,
			"path", h.installer.ExecutablePath(artifact),
		)
	}

	return h.installer.EnsureInstalled(ctx, artifact)
}

// Exec runs the requested Hugo version with the given arguments, installing
// it first if needed. The standard streams are inherited. It returns the exit
// code of Hugo, or 1 with an error if Hugo could not be installed or started
// or was terminated by a signal.
func (h *HugoCLI) Exec(ctx context.Context, opts Options, args []string) (int, error) {
	path, err := h.WithHugo(ctx, opts)
	if err != nil {
		return 1, err
	}

	// Hugo gets terminal signals from its process group and shuts down on
	// its own, so cancelling ctx must not kill it.
	run := h.exec.Run(context.WithoutCancel(ctx), path, args...)
	err = run.Run()
	code := run.ExitCode()

	switch {
	case err == nil:
		return 0, nil
	case code > 0:
		slog.Default().DebugContext(ctx, "hugo exited with error", "path", path, "code", code)
		return code, nil
	default:
		slog.Default().ErrorContext(ctx, "error while running hugo", "path", path, "err", err)
		return 1, err
	}
}

// DiagnoseInstalled diagnoses issues in every installed Hugo executable. It
// prints a template with the diagnostic results to the standard output (or
// another defined io.Writer). The diagnostics run in parallel up to the
// configured parallelism.
func (h *HugoCLI) DiagnoseInstalled(ctx context.Context) error {
	installations, err := h.installer.ListInstalled()
	if err != nil {
		fmt.Fprintln(h.stdErr, "❌ error listing installed hugo versions")
		return err
	}

	var (
		mutex sync.Mutex
		diags = make([]model.Diagnostic, 0, len(installations))
		grp   = new(errgroup.Group)
	)

	grp.SetLimit(h.config.Parallelism)

	for _, inst := range installations {
		grp.Go(func() error {
			diag, diagErr := h.inspector.Diagnose(ctx, inst)
			if diagErr != nil {
				fmt.Fprintf(h.stdErr, "❌ error diagnosing %s\n", inst.Label())
				return diagErr
			}

			mutex.Lock()
			diags = append(diags, diag)
			mutex.Unlock()

			return nil
		})
	}

	waitErr := grp.Wait()

	if err = h.printDiagnostics(diags); err != nil {
		return err
	}

	return waitErr
}

// InstallVersions installs the given versions. It returns an error if any of
// them cannot be installed. The installs run in parallel up to the configured
// parallelism.
func (h *HugoCLI) InstallVersions(ctx context.Context, versions ...string) error {
	grp := new(errgroup.Group)
	grp.SetLimit(h.config.Parallelism)

	for _, version := range versions {
		grp.Go(func() error {
			artifact, err := h.artifact(version)
			if err != nil {
				fmt.Fprintf(h.stdErr, "❌ %v\n", err)
				return err
			}

			if _, err = h.installer.EnsureInstalled(ctx, artifact); err != nil {
				fmt.Fprintf(h.stdErr, "❌ error installing hugo %s: %v\n", artifact.Request, err)
				return err
			}

			return nil
		})
	}

	return grp.Wait()
}

// ListInstalled lists the installed Hugo executables. It prints a table to
// the standard output (or another defined io.Writer) marking the default
// version with an asterisk.
func (h *HugoCLI) ListInstalled() error {
	installations, err := h.installer.ListInstalled()
	if err != nil {
		fmt.Fprintln(h.stdErr, "❌ error listing installed hugo versions")
		return err
	}

	if len(installations) == 0 {
		fmt.Fprintf(h.stdOut, "no hugo versions installed in %s\n", h.config.InstallDir)
		return nil
	}

	return h.printInstallations(installations)
}

// PrintDetails prints how the given version resolves for the current
// platform and whether it is installed. It prints a template to the standard
// output (or another defined io.Writer).
func (h *HugoCLI) PrintDetails(version string) error {
	artifact, err := h.artifact(version)
	if err != nil {
		fmt.Fprintf(h.stdErr, "❌ %v\n", err)
		return err
	}

	data := struct {
		Artifact  model.Artifact
		Path      string
		Installed bool
	}{
		Artifact:  artifact,
		Path:      h.installer.ExecutablePath(artifact),
		Installed: h.installer.IsInstalled(artifact),
	}

	tmplParsed := template.Must(template.New("details").Parse(detailsTemplate))
	if err = tmplParsed.Execute(h.stdOut, data); err != nil {
		slog.Default().Error("error executing template", "template", tmplParsed.Name(), "err", err)
		return err
	}

	return nil
}

// PrintPath prints the executable path of the requested version, installing
// it first if needed.
func (h *HugoCLI) PrintPath(ctx context.Context, opts Options) error {
	path, err := h.WithHugo(ctx, opts)
	if err != nil {
		fmt.Fprintf(h.stdErr, "❌ %v\n", err)
		return err
	}

	fmt.Fprintln(h.stdOut, path)

	return nil
}

// ShowRelease shows the upstream release page of the given version. It
// prints the URL to the standard output (or another defined io.Writer), or
// opens it in the default system browser if the open flag is set.
func (h *HugoCLI) ShowRelease(ctx context.Context, version string, open bool) error {
	artifact, err := h.artifact(version)
	if err != nil {
		fmt.Fprintf(h.stdErr, "❌ %v\n", err)
		return err
	}

	releaseURL := fmt.Sprintf(ReleaseURL, artifact.Tag)

	if open {
		return h.browser.OpenURL(ctx, releaseURL)
	}

	fmt.Fprintln(h.stdOut, releaseURL)
	return nil
}

// PrintVersion prints the version details embedded in the installed
// executable of the given version. It prints the module version, Go version
// and platform, or just the module version if the short flag is set.
func (h *HugoCLI) PrintVersion(version string, short bool) error {
	artifact, err := h.artifact(version)
	if err != nil {
		fmt.Fprintf(h.stdErr, "❌ %v\n", err)
		return err
	}

	if !h.installer.IsInstalled(artifact) {
		err = fmt.Errorf("%w: %s", os.ErrNotExist, h.installer.ExecutablePath(artifact))
		fmt.Fprintf(h.stdErr, "❌ hugo %s not installed\n", artifact.Request)
		return err
	}

	details, err := h.inspector.BuildDetails(h.installer.ExecutablePath(artifact))
	if err != nil {
		fmt.Fprintf(h.stdErr, "❌ error reading build info of hugo %s\n", artifact.Request)
		return err
	}

	if short {
		fmt.Fprintln(h.stdOut, details.ModuleVersion)
		return nil
	}

	fmt.Fprintf(h.stdOut, "%s (%s %s)\n", details.ModuleVersion, details.GoVersion, details.Platform)

	return nil
}

// UninstallVersions uninstalls the given versions. It returns an error if
// any of them is not installed or cannot be removed.
func (h *HugoCLI) UninstallVersions(versions ...string) error {
	var err error
	for _, version := range versions {
		artifact, resolveErr := h.artifact(version)
		if resolveErr != nil {
			fmt.Fprintf(h.stdErr, "❌ %v\n", resolveErr)
			err = resolveErr
			continue
		}

		removeErr := h.installer.Uninstall(artifact)
		if errors.Is(removeErr, os.ErrNotExist) {
			fmt.Fprintf(h.stdErr, "❌ hugo %s not installed\n", artifact.Request)
		} else if removeErr != nil {
			fmt.Fprintf(h.stdErr, "❌ error uninstalling hugo %s\n", artifact.Request)
		}

		if removeErr != nil {
			err = removeErr
		}
	}

	return err
}

// artifact resolves the artifact of a version for the current platform,
// falling back to the configured default version.
func (h *HugoCLI) artifact(version string) (model.Artifact, error) {
	if strings.TrimSpace(version) == "" {
		version = h.config.Version
	}

	return h.resolver.GetDetails(version, model.NewTarget(h.runtime.OS(), h.runtime.Arch()))
}

// printDiagnostics prints the diagnostics to the standard output (or another
// defined io.Writer).
func (h *HugoCLI) printDiagnostics(diags []model.Diagnostic) error {
	var diagWithIssues = make([]model.Diagnostic, 0, len(diags))
	for _, d := range diags {
		if d.HasIssues() {
			diagWithIssues = append(diagWithIssues, d)
		}
	}

	slices.SortFunc(diagWithIssues, func(a, b model.Diagnostic) int {
		return strings.Compare(a.Name, b.Name)
	})

	data := struct {
		Total           int
		WithIssues      int
		DiagsWithIssues []model.Diagnostic
	}{
		Total:           len(diags),
		WithIssues:      len(diagWithIssues),
		DiagsWithIssues: diagWithIssues,
	}

	tmplParsed := template.Must(template.New("doctor").Parse(doctorTemplate))
	if err := tmplParsed.Execute(h.stdOut, data); err != nil {
		slog.Default().Error("error executing template", "template", tmplParsed.Name(), "err", err)
		return err
	}

	return nil
}

// printInstallations prints the installations to the standard output (or
// another defined io.Writer), in the order given.
func (h *HugoCLI) printInstallations(installations []model.Installation) error {
	type row struct {
		Default bool
		Version string
		Variant string
		Target  string
		Path    string
	}

	defaultVersion := ""
	if req, err := h.resolver.Normalize(h.config.Version); err == nil {
		defaultVersion = req.String()
	}

	rows := make([]row, 0, len(installations))
	for _, inst := range installations {
		request := inst.Request()
		if req, err := model.ParseVersionRequest(request); err == nil {
			request = req.String()
		}

		rows = append(rows, row{
			Default: request == defaultVersion,
			Version: inst.Version,
			Variant: inst.Variant(),
			Target:  inst.Platform + "-" + inst.Arch,
			Path:    inst.Path,
		})
	}

	data := struct {
		Rows         []row
		VersionWidth int
		VariantWidth int
		TargetWidth  int
		PathWidth    int
	}{
		Rows:         rows,
		VersionWidth: getColumnMaxWidth("Version", rows, func(r row) string { return r.Version }),
		VariantWidth: getColumnMaxWidth("Variant", rows, func(r row) string { return r.Variant }),
		TargetWidth:  getColumnMaxWidth("Target", rows, func(r row) string { return r.Target }),
		PathWidth:    getColumnMaxWidth("Path", rows, func(r row) string { return r.Path }),
	}

	tmplParsed := template.Must(template.New("list").Funcs(template.FuncMap{
		"add":    add,
		"repeat": strings.Repeat,
	}).Parse(listTemplate))

	if err := tmplParsed.Execute(h.stdOut, data); err != nil {
		slog.Default().Error("error executing template", "template", tmplParsed.Name(), "err", err)
		return err
	}

	return nil
}

// add adds the given integers.
func add(args ...int) int {
	sum := 0
	for _, v := range args {
		sum += v
	}
	return sum
}

// getColumnMaxWidth gets the maximum width of a column for a given header and
// items.
func getColumnMaxWidth[T any](header string, items []T, accessor func(T) string) int {
	maxWidth := len(header)
	for _, item := range items {
		if width := len(accessor(item)); width > maxWidth {
			maxWidth = width
		}
	}
	return maxWidth
}
