package model

import "strings"

// Platform is the operating system an artifact is built for.
type Platform string

const (
	// PlatformLinux is the Linux platform.
	PlatformLinux Platform = "linux"
	// PlatformDarwin is the macOS platform.
	PlatformDarwin Platform = "darwin"
	// PlatformWindows is the Windows platform.
	PlatformWindows Platform = "windows"
	// PlatformFreeBSD is the FreeBSD platform.
	PlatformFreeBSD Platform = "freebsd"
	// PlatformOpenBSD is the OpenBSD platform.
	PlatformOpenBSD Platform = "openbsd"
	// PlatformOther is any platform upstream does not publish builds for.
	PlatformOther Platform = "other"
)

// NewPlatform creates a new platform from a platform name. Both Go names
// ("windows") and Node names ("win32") are accepted.
func NewPlatform(platform string) Platform {
	switch strings.ToLower(strings.TrimSpace(platform)) {
	case "linux":
		return PlatformLinux
	case "darwin", "macos":
		return PlatformDarwin
	case "windows", "win32":
		return PlatformWindows
	case "freebsd":
		return PlatformFreeBSD
	case "openbsd":
		return PlatformOpenBSD
	default:
		return PlatformOther
	}
}

// Arch is the CPU architecture an artifact is built for.
type Arch string

const (
	// ArchAMD64 is the 64-bit x86 architecture.
	ArchAMD64 Arch = "amd64"
	// Arch386 is the 32-bit x86 architecture.
	Arch386 Arch = "386"
	// ArchARM is the 32-bit ARM architecture.
	ArchARM Arch = "arm"
	// ArchARM64 is the 64-bit ARM architecture.
	ArchARM64 Arch = "arm64"
	// ArchOther is any other architecture.
	ArchOther Arch = "other"
)

// NewArch creates a new architecture from an architecture name. Both Go names
// ("amd64", "386") and Node names ("x64", "x32", "ia32") are accepted.
func NewArch(arch string) Arch {
	switch strings.ToLower(strings.TrimSpace(arch)) {
	case "amd64", "x64", "x86_64":
		return ArchAMD64
	case "386", "x32", "ia32", "x86", "i386":
		return Arch386
	case "arm":
		return ArchARM
	case "arm64", "aarch64":
		return ArchARM64
	default:
		return ArchOther
	}
}

// IsARM returns whether the architecture is any ARM flavor.
func (a Arch) IsARM() bool {
	return a == ArchARM || a == ArchARM64
}

// Target is the platform and architecture pair an artifact is resolved for.
type Target struct {
	Platform Platform
	Arch     Arch
}

// NewTarget creates a new target from a platform and architecture name.
func NewTarget(platform, arch string) Target {
	return Target{
		Platform: NewPlatform(platform),
		Arch:     NewArch(arch),
	}
}

// String returns the target in the format "platform/arch".
func (t Target) String() string {
	return string(t.Platform) + "/" + string(t.Arch)
}
