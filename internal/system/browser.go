package system

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"strings"
)

// Browser is the interface for opening web pages.
type Browser interface {
	// OpenURL opens an http(s) URL with the default system browser.
	OpenURL(ctx context.Context, rawURL string) error
}

// browser is the default implementation of the Browser interface.
type browser struct {
	exec    Exec
	runtime Runtime
}

// NewBrowser creates a new Browser.
func NewBrowser(
	exec Exec,
	runtime Runtime,
) Browser {
	return &browser{
		exec:    exec,
		runtime: runtime,
	}
}

// OpenURL opens an http(s) URL with the default system browser. It returns an
// error if the URL is not an absolute http(s) URL, the platform is not
// supported or the opener command fails.
func (b *browser) OpenURL(ctx context.Context, rawURL string) error {
	logger := slog.Default().With("url", rawURL)

	u, err := url.Parse(rawURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		err = fmt.Errorf("invalid url: %q", rawURL)
		logger.ErrorContext(ctx, "error while opening url", "err", err)
		return err
	}

	var cmd ExecCombinedOutput
	switch goos := b.runtime.OS(); goos {
	case "darwin":
		cmd = b.exec.CombinedOutput(ctx, "open", rawURL)
	case "linux", "freebsd", "openbsd":
		cmd = b.exec.CombinedOutput(ctx, "xdg-open", rawURL)
	case "windows": //nolint:goconst,nolintlint
		cmd = b.exec.CombinedOutput(ctx, "rundll32", "url.dll,FileProtocolHandler", rawURL)
	default:
		err = fmt.Errorf("unsupported platform: %s", goos)
		logger.ErrorContext(ctx, "error while opening url", "err", err)
		return err
	}

	if output, runErr := cmd.CombinedOutput(); runErr != nil {
		err = runErr
		if msg := strings.TrimSpace(string(output)); msg != "" {
			err = fmt.Errorf("%w: %s", runErr, msg)
		}

		logger.ErrorContext(ctx, "error while opening url", "err", err)
		return err
	}

	return nil
}
