package installer

import (
	"errors"
	"fmt"
)

var (
	// ErrOffline is returned when an artifact is not installed and offline
	// mode forbids downloading it.
	ErrOffline = errors.New("hugo is not installed and offline mode is enabled")
)

// DownloadError is returned when the release archive cannot be downloaded.
type DownloadError struct {
	URL string
	Err error
}

// Error returns the error message.
func (e *DownloadError) Error() string {
	return fmt.Sprintf("failed to download %s: %v", e.URL, e.Err)
}

// Unwrap returns the underlying error.
func (e *DownloadError) Unwrap() error {
	return e.Err
}

// ExtractError is returned when the release archive cannot be extracted.
type ExtractError struct {
	Archive string
	Err     error
}

// Error returns the error message.
func (e *ExtractError) Error() string {
	return fmt.Sprintf("failed to extract %s: %v", e.Archive, e.Err)
}

// Unwrap returns the underlying error.
func (e *ExtractError) Unwrap() error {
	return e.Err
}

// MissingExecutableError is returned when the archive was extracted but the
// expected executable is not where the naming scheme says it should be. It
// points at a naming scheme mismatch, retrying does not help.
type MissingExecutableError struct {
	Path    string
	Archive string
}

// Error returns the error message.
func (e *MissingExecutableError) Error() string {
	return fmt.Sprintf(
		"executable %s not found after extracting %s, please report this bug to hugo-cli",
		e.Path,
		e.Archive,
	)
}
