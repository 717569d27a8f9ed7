package system

import "debug/buildinfo"

// BuildInfo is the interface for reading the Go build info embedded in an
// executable.
type BuildInfo interface {
	// Read reads the build info from the executable at the given path.
	Read(path string) (*buildinfo.BuildInfo, error)
}

type buildInfo struct{}

// NewBuildInfo creates a new build info reader.
func NewBuildInfo() BuildInfo {
	return &buildInfo{}
}

// Read reads the build info from the executable at the given path. Hugo is a
// Go program, so every official release carries build info.
func (b *buildInfo) Read(path string) (*buildinfo.BuildInfo, error) {
	return buildinfo.ReadFile(path)
}
