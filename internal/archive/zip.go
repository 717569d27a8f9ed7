package archive

import (
	"archive/zip"
	"context"
	"fmt"
	"io"
	"log/slog"
)

// unzip extracts a zip file.
func unzip(ctx context.Context, r io.ReaderAt, size int64, w *writer) error {
	reader, err := zip.NewReader(r, size)
	if err != nil {
		return fmt.Errorf("failed to create zip reader: %w", err)
	}

	for _, entry := range reader.File {
		if err = ctx.Err(); err != nil {
			return err
		}

		mode := entry.Mode()
		switch {
		case mode.IsDir():
			err = w.mkdir(entry.Name)
		case mode.IsRegular():
			err = unzipFile(entry, w)
		default:
			slog.Default().Debug("skipping archive entry", "name", entry.Name, "mode", mode)
		}

		if err != nil {
			return err
		}
	}

	return nil
}

func unzipFile(entry *zip.File, w *writer) error {
	contents, err := entry.Open()
	if err != nil {
		return fmt.Errorf("failed to open file %s: %w", entry.Name, err)
	}
	defer contents.Close()

	return w.file(entry.Name, entry.Mode(), contents)
}
