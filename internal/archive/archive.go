package archive

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"
)

const (
	mimeGzip = "application/x-gzip"
	mimeZip  = "application/zip"

	// sniffLen is the number of bytes http.DetectContentType considers.
	sniffLen = 512
	// defaultFileMode is used for regular files stored without permissions.
	defaultFileMode fs.FileMode = 0o755
	// dirMode is used for every directory created while extracting.
	dirMode fs.FileMode = 0o755
)

var (
	// ErrUnsupportedFormat is returned when the archive is neither a gzipped
	// tarball nor a zip file.
	ErrUnsupportedFormat = errors.New("unsupported archive format")
	// ErrIllegalPath is returned when an entry would be written outside the
	// destination directory.
	ErrIllegalPath = errors.New("illegal path in archive")
)

// Options configures an extraction.
type Options struct {
	// StripComponents is the number of leading path components removed from
	// entry names. The final path element is never removed, so an entry at
	// the archive root keeps its name.
	StripComponents int
	// Rename maps entry base names to replacement paths relative to the
	// destination. A matching entry is written at the replacement path.
	Rename map[string]string
}

// Extractor is the interface for extracting archives.
type Extractor interface {
	// Extract extracts the archive at archivePath into dest.
	Extract(ctx context.Context, archivePath, dest string, opts Options) error
}

// FileExtractor extracts tar.gz and zip archives from disk.
type FileExtractor struct{}

// NewFileExtractor creates a new FileExtractor.
func NewFileExtractor() *FileExtractor {
	return &FileExtractor{}
}

// Extract extracts the archive at archivePath into dest, creating dest if
// needed. The format is sniffed from the file header. Symlinks and other
// special entries are skipped. It returns ErrUnsupportedFormat for unknown
// formats and ErrIllegalPath for entries escaping dest.
func (e *FileExtractor) Extract(ctx context.Context, archivePath, dest string, opts Options) error {
	logger := slog.Default().With("archive", archivePath, "dest", dest)

	file, err := os.Open(archivePath)
	if err != nil {
		logger.ErrorContext(ctx, "error while opening archive", "err", err)
		return err
	}
	defer file.Close()

	mime, err := sniff(file)
	if err != nil {
		logger.ErrorContext(ctx, "error while reading archive header", "err", err)
		return err
	}

	if err = os.MkdirAll(dest, dirMode); err != nil {
		logger.ErrorContext(ctx, "error while creating destination", "err", err)
		return err
	}

	w := &writer{dest: dest, opts: opts}

	switch mime {
	case mimeGzip:
		err = untar(ctx, file, w)
	case mimeZip:
		var info os.FileInfo
		if info, err = file.Stat(); err == nil {
			err = unzip(ctx, file, info.Size(), w)
		}
	default:
		err = fmt.Errorf("%w: %s", ErrUnsupportedFormat, mime)
	}

	if err != nil {
		logger.ErrorContext(ctx, "error while extracting archive", "err", err)
		return err
	}

	return nil
}

// sniff detects the content type of file and rewinds it.
func sniff(file *os.File) (string, error) {
	header := make([]byte, sniffLen)
	n, err := io.ReadFull(file, header)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		return "", err
	}

	if _, err = file.Seek(0, io.SeekStart); err != nil {
		return "", err
	}

	return http.DetectContentType(header[:n]), nil
}

// writer writes archive entries below dest.
type writer struct {
	dest string
	opts Options
}

// target maps an entry name to its path on disk. It returns false for
// entries that strip to nothing, ex. the wrapping directory itself.
func (w *writer) target(name string, isDir bool) (string, bool, error) {
	rel, ok := stripComponents(name, w.opts.StripComponents, isDir)
	if !ok {
		return "", false, nil
	}

	if replacement, found := w.opts.Rename[path.Base(rel)]; found {
		rel = replacement
	}

	local := filepath.FromSlash(rel)
	if !filepath.IsLocal(local) {
		return "", false, fmt.Errorf("%w: %s", ErrIllegalPath, name)
	}

	return filepath.Join(w.dest, local), true, nil
}

// mkdir creates the directory for a directory entry.
func (w *writer) mkdir(name string) error {
	target, ok, err := w.target(name, true)
	if err != nil || !ok {
		return err
	}

	return os.MkdirAll(target, dirMode)
}

// file writes a regular file entry, replacing any existing file.
func (w *writer) file(name string, mode fs.FileMode, r io.Reader) error {
	target, ok, err := w.target(name, false)
	if err != nil || !ok {
		return err
	}

	if err = os.MkdirAll(filepath.Dir(target), dirMode); err != nil {
		return err
	}

	if mode.Perm() == 0 {
		mode = defaultFileMode
	}

	// a running executable cannot be truncated on every platform
	if err = os.Remove(target); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}

	out, err := os.OpenFile(target, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, mode.Perm())
	if err != nil {
		return err
	}

	if _, err = io.Copy(out, r); err != nil {
		_ = out.Close()
		return fmt.Errorf("failed to copy data to file %s: %w", target, err)
	}

	return out.Close()
}

// stripComponents removes up to n leading components of an archive entry
// name. File names always keep their final element. Directory names with n
// or fewer components strip to nothing and return false.
func stripComponents(name string, n int, isDir bool) (string, bool) {
	name = strings.TrimPrefix(path.Clean("/"+strings.ReplaceAll(name, `\`, "/")), "/")
	if name == "" {
		return "", false
	}

	parts := strings.Split(name, "/")
	if n >= len(parts) {
		if isDir {
			return "", false
		}
		n = len(parts) - 1
	}

	return strings.Join(parts[n:], "/"), true
}
