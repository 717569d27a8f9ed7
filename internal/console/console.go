package console

import (
	"fmt"
	"io"
	"time"

	"github.com/cheggaaa/pb/v3"
	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

// Reporter is the interface for user facing progress reporting. Reports are
// written to stderr so the standard output of Hugo stays untouched.
type Reporter interface {
	// Step reports the start of a top level step.
	Step(format string, args ...any)
	// Task reports a detail line and returns a function reporting its
	// outcome along with the elapsed time.
	Task(format string, args ...any) func(err error)
	// Progress wraps a reader to draw a progress bar while it is consumed.
	// The returned function finalizes the bar.
	Progress(reader io.Reader, size int64) (io.Reader, func())
}

type reporter struct {
	w     io.Writer
	quiet bool
	tty   bool

	bullet *color.Color
	muted  *color.Color
	ok     *color.Color
	fail   *color.Color
}

// NewReporter creates a new Reporter writing to w. A quiet reporter writes
// nothing. Colors and progress bars are only used when w is a terminal.
func NewReporter(w io.Writer, quiet bool) Reporter {
	r := &reporter{
		w:      w,
		quiet:  quiet,
		tty:    isTerminal(w),
		bullet: color.New(color.FgBlue),
		muted:  color.New(color.FgHiBlack),
		ok:     color.New(color.FgGreen),
		fail:   color.New(color.FgRed),
	}

	for _, c := range []*color.Color{r.bullet, r.muted, r.ok, r.fail} {
		if r.tty {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}

	return r
}

// Step reports the start of a top level step, ex. " • installing hugo 0.104.3".
func (r *reporter) Step(format string, args ...any) {
	if r.quiet {
		return
	}

	_, _ = fmt.Fprintln(r.w, r.bullet.Sprint(" •"), r.muted.Sprintf(format, args...))
}

// Task reports a detail line, ex. "   └ extracting hugo_0.104.3_linux-amd64.tar.gz",
// and returns a function reporting "✔ 1.2s" or "✘ 1.2s".
func (r *reporter) Task(format string, args ...any) func(err error) {
	if r.quiet {
		return func(error) {}
	}

	_, _ = fmt.Fprintln(r.w, r.muted.Sprint("   └"), r.muted.Sprintf(format, args...))

	start := time.Now()
	return func(err error) {
		elapsed := time.Since(start).Round(time.Millisecond)
		if err != nil {
			_, _ = r.fail.Fprintf(r.w, "     ✘ %s\n", elapsed)
			return
		}

		_, _ = r.ok.Fprintf(r.w, "     ✔ %s\n", elapsed)
	}
}

// Progress wraps a reader to draw a progress bar on a terminal. The reader
// is returned as is when the reporter is quiet or not attached to a
// terminal.
func (r *reporter) Progress(reader io.Reader, size int64) (io.Reader, func()) {
	if r.quiet || !r.tty {
		return reader, func() {}
	}

	bar := pb.
		New64(size).
		SetTemplate(
			pb.ProgressBarTemplate(
				r.muted.Sprint(
					`   └ {{counters . }}` +
						` {{bar . "[" "=" ">" " " "]" }} {{percent . }}` +
						` {{speed . }}`,
				),
			),
		).
		SetWriter(r.w).
		SetRefreshRate(time.Second / 60).
		SetMaxWidth(100).
		Start()

	return bar.NewProxyReader(reader), func() { bar.Finish() }
}

// isTerminal checks if w is a terminal file.
func isTerminal(w io.Writer) bool {
	f, ok := w.(interface{ Fd() uintptr })
	if !ok {
		return false
	}

	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
