package fetch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"

	"github.com/brunoribeiro127/hugo-cli/internal/console"
)

// ErrUnexpectedStatus is returned when the server answers with a non 2xx
// status.
var ErrUnexpectedStatus = errors.New("unexpected response status")

// Downloader is the interface for downloading files.
type Downloader interface {
	// Download downloads url to dest. The destination is only created once
	// the body has been fully received.
	Download(ctx context.Context, url, dest string) error
}

// HTTPClient is the subset of *http.Client the downloader needs.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// HTTPDownloader downloads files over HTTP(S).
type HTTPDownloader struct {
	client   HTTPClient
	reporter console.Reporter
}

// NewHTTPDownloader creates a new HTTPDownloader. A nil client selects
// http.DefaultClient.
func NewHTTPDownloader(
	client HTTPClient,
	reporter console.Reporter,
) *HTTPDownloader {
	if client == nil {
		client = http.DefaultClient
	}

	return &HTTPDownloader{
		client:   client,
		reporter: reporter,
	}
}

// Download downloads url to dest. The body is streamed into a temporary file
// next to dest which is renamed into place on success, so an interrupted
// download never leaves a truncated file at dest. It returns an error
// wrapping ErrUnexpectedStatus if the server answers with a non 2xx status.
func (d *HTTPDownloader) Download(ctx context.Context, url, dest string) error {
	logger := slog.Default().With("url", url, "dest", dest)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		logger.ErrorContext(ctx, "error while building request", "err", err)
		return err
	}

	resp, err := d.client.Do(req)
	if err != nil {
		logger.ErrorContext(ctx, "error while requesting file", "err", err)
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		err = fmt.Errorf("%w: http%d", ErrUnexpectedStatus, resp.StatusCode)
		logger.ErrorContext(ctx, "error while requesting file", "err", err)
		return err
	}

	logger.DebugContext(ctx, "downloading file", "size", resp.ContentLength)

	tmp, err := os.CreateTemp(filepath.Dir(dest), filepath.Base(dest)+".*.tmp")
	if err != nil {
		logger.ErrorContext(ctx, "error while creating temp file", "err", err)
		return err
	}
	tmpPath := tmp.Name()
	defer func() {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
	}()

	body, finish := d.reporter.Progress(resp.Body, resp.ContentLength)
	_, err = io.Copy(tmp, body)
	finish()
	if err != nil {
		logger.ErrorContext(ctx, "error while writing file", "err", err)
		return err
	}

	if err = tmp.Close(); err != nil {
		logger.ErrorContext(ctx, "error while closing file", "err", err)
		return err
	}

	if err = os.Rename(tmpPath, dest); err != nil {
		logger.ErrorContext(ctx, "error while moving file into place", "err", err)
		return err
	}

	return nil
}
