package archive

import (
	"archive/tar"
	"compress/gzip"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
)

// untar extracts a gzipped tarball.
func untar(ctx context.Context, r io.Reader, w *writer) error {
	decompressor, err := gzip.NewReader(r)
	if err != nil {
		return fmt.Errorf("failed to create gzip reader: %w", err)
	}
	defer decompressor.Close()

	reader := tar.NewReader(decompressor)

	for {
		if err = ctx.Err(); err != nil {
			return err
		}

		header, nextErr := reader.Next()
		if nextErr != nil {
			if errors.Is(nextErr, io.EOF) {
				return nil
			}
			return nextErr
		}

		switch header.Typeflag {
		case tar.TypeDir:
			err = w.mkdir(header.Name)
		case tar.TypeReg:
			err = w.file(header.Name, header.FileInfo().Mode(), reader)
		default:
			slog.Default().Debug("skipping archive entry", "name", header.Name, "type", header.Typeflag)
		}

		if err != nil {
			return err
		}
	}
}
