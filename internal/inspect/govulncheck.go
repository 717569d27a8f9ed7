package inspect

import (
	"bytes"
	"context"
	"os"

	"golang.org/x/vuln/scan"

	"github.com/brunoribeiro127/hugo-cli/internal/system"
)

// ScanExecCombinedOutputFunc is a function that creates a new
// ExecCombinedOutput that runs the govulncheck command.
type ScanExecCombinedOutputFunc func(ctx context.Context, args ...string) system.ExecCombinedOutput

// scanExecCombinedOutput runs govulncheck in process through the scan package.
type scanExecCombinedOutput struct {
	cmd    *scan.Cmd
	output *bytes.Buffer
}

// NewScanExecCombinedOutput creates a new ExecCombinedOutput that runs
// govulncheck with the environment of the current process.
func NewScanExecCombinedOutput(
	ctx context.Context,
	args ...string,
) system.ExecCombinedOutput {
	var output bytes.Buffer
	cmd := scan.Command(ctx, args...)
	cmd.Stdout = &output
	cmd.Stderr = &output
	cmd.Env = os.Environ()

	return &scanExecCombinedOutput{
		cmd:    cmd,
		output: &output,
	}
}

// CombinedOutput runs govulncheck and returns its combined output.
func (s *scanExecCombinedOutput) CombinedOutput() ([]byte, error) {
	if err := s.cmd.Start(); err != nil {
		return s.output.Bytes(), err
	}

	if err := s.cmd.Wait(); err != nil {
		return s.output.Bytes(), err
	}

	return s.output.Bytes(), nil
}
