package inspect

import (
	"context"
	"debug/buildinfo"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/brunoribeiro127/hugo-cli/internal/model"
	"github.com/brunoribeiro127/hugo-cli/internal/system"
)

const (
	// goArchSetting is the build setting holding the target architecture.
	goArchSetting = "GOARCH"
	// goOSSetting is the build setting holding the target operating system.
	goOSSetting = "GOOS"
	// universalArch is the arch label of macOS universal builds, which hold
	// more than one architecture and cannot be matched against a single one.
	universalArch = "universal"
)

var (
	// ErrExecutableNotFound is returned when the executable does not exist.
	ErrExecutableNotFound = errors.New("executable not found")
)

// Inspector is an interface for inspecting installed Hugo executables.
type Inspector interface {
	// BuildDetails reads the Go build details embedded in an executable.
	BuildDetails(
		path string,
	) (model.BuildDetails, error)
	// Diagnose checks an installed executable for issues.
	Diagnose(
		ctx context.Context,
		inst model.Installation,
	) (model.Diagnostic, error)
	// VulnCheck checks an executable for known vulnerabilities.
	VulnCheck(
		ctx context.Context,
		path string,
	) ([]model.Vulnerability, error)
}

// GoInspector inspects executables through their embedded Go build info and
// govulncheck.
type GoInspector struct {
	buildInfo   system.BuildInfo
	scanExecCmd ScanExecCombinedOutputFunc
}

// NewGoInspector creates a new GoInspector.
func NewGoInspector(
	buildInfo system.BuildInfo,
	scanExecCmd ScanExecCombinedOutputFunc,
) *GoInspector {
	return &GoInspector{
		buildInfo:   buildInfo,
		scanExecCmd: scanExecCmd,
	}
}

// BuildDetails reads the Go build details embedded in an executable. It
// returns ErrExecutableNotFound if the executable does not exist.
func (i *GoInspector) BuildDetails(path string) (model.BuildDetails, error) {
	info, err := i.buildInfo.Read(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return model.BuildDetails{}, fmt.Errorf("%w: %s", ErrExecutableNotFound, path)
		}

		slog.Default().Error("error reading build info", "path", path, "err", err)
		return model.BuildDetails{}, err
	}

	return model.BuildDetails{
		ModuleVersion: info.Main.Version,
		GoVersion:     info.GoVersion,
		Platform:      buildPlatform(info),
	}, nil
}

// Diagnose checks an installed executable for issues. An executable without
// readable build info is reported as such and is not scanned for
// vulnerabilities, since govulncheck relies on that same build info. The
// platform the executable was built for is compared against the one in its
// name, unless it is a universal build.
func (i *GoInspector) Diagnose(
	ctx context.Context,
	inst model.Installation,
) (model.Diagnostic, error) {
	diagnostic := model.Diagnostic{Installation: inst}

	info, err := i.buildInfo.Read(inst.Path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return model.Diagnostic{}, fmt.Errorf("%w: %s", ErrExecutableNotFound, inst.Path)
		}

		slog.Default().DebugContext(ctx, "build info not available", "path", inst.Path, "err", err)
		diagnostic.MissingBuildInfo = true
		return diagnostic, nil
	}

	diagnostic.GoVersion = info.GoVersion
	diagnostic.ModuleVersion = info.Main.Version

	if actual := buildPlatform(info); actual != "" && inst.Arch != universalArch {
		diagnostic.BuildPlatform.Actual = actual
		diagnostic.BuildPlatform.Expected = inst.Platform + "/" + inst.Arch
	}

	vulns, err := i.VulnCheck(ctx, inst.Path)
	if err != nil {
		return model.Diagnostic{}, err
	}

	diagnostic.Vulnerabilities = vulns

	return diagnostic, nil
}

// VulnCheck checks an executable for known vulnerabilities running
// govulncheck in binary mode. Only statements with the "affected" status are
// returned.
func (i *GoInspector) VulnCheck(
	ctx context.Context,
	path string,
) ([]model.Vulnerability, error) {
	logger := slog.Default().With("path", path)

	cmd := i.scanExecCmd(ctx, "-mode", "binary", "-format", "openvex", path)
	output, err := cmd.CombinedOutput()
	if err != nil {
		err = fmt.Errorf("%w: %s", err, strings.TrimSpace(string(output)))
		logger.ErrorContext(ctx, "error running govulncheck command", "err", err)
		return nil, err
	}

	var res struct {
		Statements []struct {
			Vulnerability struct {
				ID   string `json:"@id"`
				Name string `json:"name"`
			} `json:"vulnerability"`
			Status string `json:"status"`
		} `json:"statements"`
	}

	if err = json.Unmarshal(output, &res); err != nil {
		logger.ErrorContext(ctx, "error parsing govulncheck response", "err", err)
		return nil, err
	}

	var vulns []model.Vulnerability
	for _, stmt := range res.Statements {
		if stmt.Status == "affected" {
			vulns = append(vulns, model.Vulnerability{
				ID:  stmt.Vulnerability.Name,
				URL: stmt.Vulnerability.ID,
			})
		}
	}

	return vulns, nil
}

// buildPlatform returns the "os/arch" the executable was built for, or an
// empty string if the toolchain that built it did not record it.
func buildPlatform(info *buildinfo.BuildInfo) string {
	var goOS, goArch string
	for _, s := range info.Settings {
		switch s.Key {
		case goOSSetting:
			goOS = s.Value
		case goArchSetting:
			goArch = s.Value
		}
	}

	if goOS == "" || goArch == "" {
		return ""
	}

	return goOS + "/" + goArch
}
