package resolver

import (
	"errors"
	"log/slog"
	"strings"

	"github.com/brunoribeiro127/hugo-cli/internal/model"
)

const (
	// DefaultBaseURL is the base URL upstream release assets are published
	// under.
	DefaultBaseURL = "https://github.com/gohugoio/hugo/releases/download"
	// MinVersion is the oldest version that can be resolved.
	MinVersion = "0.20.0"
	// FullTagVersion is the first version whose release tag keeps a trailing
	// ".0" patch component. Older releases are tagged "v0.50", not "v0.50.0".
	FullTagVersion = "0.54.0"
	// ModernSchemeVersion is the first version published with the modern asset
	// naming scheme.
	ModernSchemeVersion = "0.103.0"
)

var (
	// ErrUnsupportedTarget is returned when upstream does not publish builds
	// for the target platform.
	ErrUnsupportedTarget = errors.New("unsupported target")
)

// ArtifactResolver is an interface for resolving version requests to release
// assets.
type ArtifactResolver interface {
	// GetDetails normalizes a raw version request and resolves the artifact
	// for the given target.
	GetDetails(
		version string,
		target model.Target,
	) (model.Artifact, error)
	// Normalize parses a raw version request and checks it against the
	// minimum supported version.
	Normalize(
		raw string,
	) (model.VersionRequest, error)
	// Resolve resolves the artifact of a normalized version request for the
	// given target.
	Resolve(
		req model.VersionRequest,
		target model.Target,
	) (model.Artifact, error)
}

// Resolver computes release asset names and download links. It holds no
// state besides its configuration and is safe for concurrent use.
type Resolver struct {
	baseURL    string
	minVersion model.Version
	fullTag    model.Version
	modern     model.Version
}

// NewResolver creates a new Resolver for the given base URL. An empty base
// URL selects DefaultBaseURL.
func NewResolver(baseURL string) *Resolver {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	return &Resolver{
		baseURL:    baseURL,
		minVersion: model.NewVersion(MinVersion),
		fullTag:    model.NewVersion(FullTagVersion),
		modern:     model.NewVersion(ModernSchemeVersion),
	}
}

// GetDetails normalizes a raw version request and resolves the artifact for
// the given target. It is deterministic and performs no I/O.
func (r *Resolver) GetDetails(version string, target model.Target) (model.Artifact, error) {
	req, err := r.Normalize(version)
	if err != nil {
		return model.Artifact{}, err
	}

	return r.Resolve(req, target)
}

// Normalize parses a raw version request and compares it with MinVersion. It
// returns model.ErrInvalidVersion for malformed requests and a
// *model.UnsupportedVersionError for versions older than MinVersion.
func (r *Resolver) Normalize(raw string) (model.VersionRequest, error) {
	req, err := model.ParseVersionRequest(raw)
	if err != nil {
		return model.VersionRequest{}, err
	}

	if req.Numeric.Compare(r.minVersion) < 0 {
		return model.VersionRequest{}, &model.UnsupportedVersionError{
			Requested: req.Numeric.Tag(false),
			Minimum:   r.minVersion.Tag(false),
		}
	}

	return req, nil
}

// Resolve resolves the artifact of a normalized version request for the given
// target. The naming scheme is picked once by comparing the version with
// ModernSchemeVersion. It returns ErrUnsupportedTarget if upstream does not
// publish builds for the target platform.
func (r *Resolver) Resolve(req model.VersionRequest, target model.Target) (model.Artifact, error) {
	s := r.schemeFor(req)

	artifact, err := s.resolve(req, target)
	if err != nil {
		slog.Default().Debug("error while resolving artifact",
			"version", req.String(), "target", target.String(), "err", err)
		return model.Artifact{}, err
	}

	artifact.Tag = s.tag(req)
	artifact.DownloadLink = r.baseURL + "/v" + artifact.Tag + "/" + artifact.ArchiveName
	artifact.Request = req
	artifact.Target = target

	return artifact, nil
}

// schemeFor selects the naming scheme for a version request.
func (r *Resolver) schemeFor(req model.VersionRequest) scheme {
	if req.Numeric.Compare(r.modern) >= 0 {
		return modernScheme{}
	}

	return legacyScheme{
		stripTrailingZero: req.Numeric.Compare(r.fullTag) < 0,
	}
}
