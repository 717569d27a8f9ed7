package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"math"
	"path/filepath"
	"runtime"
	"runtime/debug"
	"strings"
)

// levelOff is above every level in use, so nothing is logged.
const levelOff = slog.Level(math.MaxInt32)

// handler annotates records with the caller file and line, relative to the
// module root when it can be found in the path.
type handler struct {
	slog.Handler

	ModName string
}

func (h *handler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.Handler.Enabled(ctx, level)
}

func (h *handler) Handle(ctx context.Context, r slog.Record) error {
	if r.PC != 0 {
		frame, _ := runtime.CallersFrames([]uintptr{r.PC}).Next()
		if frame.File != "" {
			rel := filepath.Base(frame.File)
			if h.ModName != "" {
				if idx := strings.Index(frame.File, h.ModName+"/"); idx != -1 {
					rel = frame.File[idx+len(h.ModName)+1:]
				}
			}
			r.AddAttrs(slog.String("caller", fmt.Sprintf("%s:%d", rel, frame.Line)))
		}
	}
	return h.Handler.Handle(ctx, r)
}

func (h *handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &handler{
		Handler: h.Handler.WithAttrs(attrs),
		ModName: h.ModName,
	}
}

func (h *handler) WithGroup(name string) slog.Handler {
	return &handler{
		Handler: h.Handler.WithGroup(name),
		ModName: h.ModName,
	}
}

// NewLogger creates a text logger writing to w. It logs from debug level up
// when verbose and nothing otherwise, so the output of Hugo is left alone.
func NewLogger(w io.Writer, verbose bool) *slog.Logger {
	modName := ""
	if info, ok := debug.ReadBuildInfo(); ok {
		modSplit := strings.Split(info.Main.Path, "/")
		modName = modSplit[len(modSplit)-1]
	}

	level := levelOff
	if verbose {
		level = slog.LevelDebug
	}

	return slog.New(&handler{
		ModName: modName,
		Handler: slog.NewTextHandler(
			w,
			&slog.HandlerOptions{
				Level: level,
			},
		)},
	)
}
