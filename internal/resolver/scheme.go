package resolver

import (
	"fmt"

	"github.com/brunoribeiro127/hugo-cli/internal/model"
)

// scheme is a release asset naming scheme.
type scheme interface {
	// tag returns the version as it appears in the release tag and the asset
	// names.
	tag(req model.VersionRequest) string
	// resolve returns the artifact names for the request and target. The
	// download link is filled in by the caller.
	resolve(req model.VersionRequest, target model.Target) (model.Artifact, error)
}

// legacyLabels maps platforms to the labels used in legacy archive names.
var legacyLabels = map[model.Platform]string{
	model.PlatformLinux:   "Linux",
	model.PlatformDarwin:  "macOS",
	model.PlatformWindows: "Windows",
	model.PlatformFreeBSD: "FreeBSD",
	model.PlatformOpenBSD: "OpenBSD",
}

// legacyScheme names archives "hugo_[extended_]{ver}_{Label}-{bits}{ext}"
// and ships a version qualified executable
// "hugo_[extended_]{ver}_{platform}_{arch}{exe}".
type legacyScheme struct {
	stripTrailingZero bool
}

func (s legacyScheme) tag(req model.VersionRequest) string {
	return req.Numeric.Tag(s.stripTrailingZero)
}

func (s legacyScheme) resolve(req model.VersionRequest, target model.Target) (model.Artifact, error) {
	label, ok := legacyLabels[target.Platform]
	if !ok {
		return model.Artifact{}, fmt.Errorf("%w: %s", ErrUnsupportedTarget, target)
	}

	bits, arch := legacyArch(target)
	archiveExt, exeExt := extensions(target)
	prefix := assetPrefix(req) + s.tag(req)

	return model.Artifact{
		ArchiveName:         prefix + "_" + label + bits + archiveExt,
		ExecutableName:      prefix + "_" + string(target.Platform) + "_" + arch + exeExt,
		ExecutableExtension: exeExt,
		Scheme:              model.SchemeLegacy,
	}, nil
}

// legacyArch returns the bit width token of the archive name and the arch
// token of the executable name. macOS builds were only published for amd64.
// 32-bit arm and arm64 keep separate tokens, as in the published asset names,
// rather than sharing a single ARM mapping.
func legacyArch(target model.Target) (string, string) {
	if target.Platform == model.PlatformDarwin {
		return "-64bit", string(model.ArchAMD64)
	}

	switch target.Arch {
	case model.ArchAMD64:
		return "-64bit", string(model.ArchAMD64)
	case model.ArchARM64:
		return "-ARM64", string(model.ArchARM64)
	case model.ArchARM:
		return "-ARM", string(model.ArchARM)
	default:
		return "-32bit", string(model.Arch386)
	}
}

// modernScheme names archives "hugo_[extended_]{ver}_{platform}-{arch}{ext}"
// and ships a plain "hugo{exe}" executable.
type modernScheme struct{}

func (modernScheme) tag(req model.VersionRequest) string {
	return req.Numeric.Tag(false)
}

func (s modernScheme) resolve(req model.VersionRequest, target model.Target) (model.Artifact, error) {
	if _, ok := legacyLabels[target.Platform]; !ok {
		return model.Artifact{}, fmt.Errorf("%w: %s", ErrUnsupportedTarget, target)
	}

	archiveExt, exeExt := extensions(target)

	return model.Artifact{
		ArchiveName:         assetPrefix(req) + s.tag(req) + "_" + string(target.Platform) + "-" + modernArch(target) + archiveExt,
		ExecutableName:      "hugo" + exeExt,
		ExecutableExtension: exeExt,
		Scheme:              model.SchemeModern,
	}, nil
}

// modernArch returns the arch token of modern archive names. macOS builds
// are universal binaries.
func modernArch(target model.Target) string {
	switch {
	case target.Platform == model.PlatformDarwin:
		return "universal"
	case target.Arch.IsARM():
		return string(model.ArchARM64)
	default:
		return string(model.ArchAMD64)
	}
}

// assetPrefix returns the common "hugo_[extended_]" asset name prefix.
func assetPrefix(req model.VersionRequest) string {
	if req.Extended {
		return "hugo_extended_"
	}

	return "hugo_"
}

// extensions returns the archive and executable extensions for a target.
func extensions(target model.Target) (string, string) {
	if target.Platform == model.PlatformWindows {
		return model.ArchiveExtZip, model.ExecutableExtWindows
	}

	return model.ArchiveExtTarGz, ""
}
