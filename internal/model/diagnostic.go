package model

// Vulnerability represents a vulnerability reported for a binary.
type Vulnerability struct {
	ID  string
	URL string
}

// Diagnostic represents the diagnostic results for an installed executable.
type Diagnostic struct {
	Installation

	MissingBuildInfo bool
	GoVersion        string
	ModuleVersion    string
	BuildPlatform    struct {
		Actual   string
		Expected string
	}
	Vulnerabilities []Vulnerability
}

// HasIssues returns whether the executable has any issues.
func (d Diagnostic) HasIssues() bool {
	return d.MissingBuildInfo ||
		d.BuildPlatform.Actual != d.BuildPlatform.Expected ||
		len(d.Vulnerabilities) > 0
}

// BuildDetails represents the Go build details embedded in an executable.
type BuildDetails struct {
	ModuleVersion string
	GoVersion     string
	Platform      string
}
