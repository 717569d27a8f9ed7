package model

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"golang.org/x/mod/semver"
)

const (
	// extendedPrefix marks an extended build request, ex. "extended_0.45.1".
	extendedPrefix = "extended_"
	// extendedSuffix marks an extended build request, ex. "0.45.1/extended".
	extendedSuffix = "/extended"
)

var (
	// ErrInvalidVersion is returned when a version request is not in the
	// MAJOR.MINOR[.PATCH] form.
	ErrInvalidVersion = errors.New("invalid version")
)

// versionPattern matches MAJOR.MINOR[.PATCH] with an optional "v" prefix.
var versionPattern = regexp.MustCompile(`^v?(\d+)\.(\d+)(?:\.(\d+))?$`)

// Version represents a canonical semantic version, ex. "v0.45.1".
type Version string

// NewVersion creates a new version from a version string, adding the "v"
// prefix when missing.
func NewVersion(version string) Version {
	version = strings.ToLower(strings.TrimSpace(version))
	if version != "" && !strings.HasPrefix(version, "v") {
		version = "v" + version
	}

	return Version(version)
}

// Compare compares two versions.
func (v Version) Compare(other Version) int {
	return semver.Compare(string(v), string(other))
}

// IsValid checks if the version is a valid semantic version.
func (v Version) IsValid() bool {
	return semver.IsValid(string(v))
}

// Tag returns the version as upstream writes it, without the "v" prefix. If
// stripTrailingZero is set and the patch component is zero, the patch
// component is dropped, ex. "v0.50.0" becomes "0.50".
func (v Version) Tag(stripTrailingZero bool) string {
	tag := strings.TrimPrefix(string(v), "v")
	if !stripTrailingZero {
		return tag
	}

	//nolint:mnd // expected version format: major.minor.patch
	if parts := strings.Split(tag, "."); len(parts) == 3 && parts[2] == "0" {
		return parts[0] + "." + parts[1]
	}

	return tag
}

// String returns the string representation of the version.
func (v Version) String() string {
	return string(v)
}

// VersionRequest represents a requested Hugo version, optionally flagged as
// the extended build.
type VersionRequest struct {
	Raw      string
	Numeric  Version
	Extended bool
}

// ParseVersionRequest parses a raw version request. The extended marker can
// be given as a prefix ("extended_0.45.1") or as a suffix ("0.45.1/extended").
// A missing patch component is padded with ".0". It returns ErrInvalidVersion
// if the remaining string is not a MAJOR.MINOR[.PATCH] version.
func ParseVersionRequest(raw string) (VersionRequest, error) {
	value := strings.TrimSpace(raw)

	var extended bool
	if strings.HasPrefix(value, extendedPrefix) {
		value = strings.TrimPrefix(value, extendedPrefix)
		extended = true
	}
	if strings.HasSuffix(value, extendedSuffix) {
		value = strings.TrimSuffix(value, extendedSuffix)
		extended = true
	}

	matches := versionPattern.FindStringSubmatch(value)
	if matches == nil {
		return VersionRequest{}, fmt.Errorf("%w: %q", ErrInvalidVersion, raw)
	}

	patch := matches[3]
	if patch == "" {
		patch = "0"
	}

	numeric := Version(fmt.Sprintf("v%s.%s.%s", matches[1], matches[2], patch))
	if !numeric.IsValid() {
		return VersionRequest{}, fmt.Errorf("%w: %q", ErrInvalidVersion, raw)
	}

	return VersionRequest{
		Raw:      raw,
		Numeric:  numeric,
		Extended: extended,
	}, nil
}

// String returns the canonical request string, ex. "extended_0.45.1".
func (r VersionRequest) String() string {
	if r.Extended {
		return extendedPrefix + r.Numeric.Tag(false)
	}

	return r.Numeric.Tag(false)
}

// UnsupportedVersionError is returned when the requested version is older
// than the minimum supported version.
type UnsupportedVersionError struct {
	Requested string
	Minimum   string
}

// Error returns the error message, naming both the minimum and the requested
// version.
func (e *UnsupportedVersionError) Error() string {
	return fmt.Sprintf(
		"hugo-cli requires Hugo %s or above. Version requested: %s",
		e.Minimum,
		e.Requested,
	)
}
