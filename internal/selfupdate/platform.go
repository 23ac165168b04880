package selfupdate

import (
	"fmt"
	"runtime"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// releaseArch maps GOARCH to the architecture names used in archive names.
var releaseArch = map[string]string{
	"amd64": "x86_64",
	"arm64": "arm64",
	"386":   "i386",
}

// Platform is an operating system and architecture pair.
type Platform struct {
	OS   string
	Arch string
}

// CurrentPlatform is the platform the binary was built for.
func CurrentPlatform() Platform {
	return Platform{OS: runtime.GOOS, Arch: runtime.GOARCH}
}

// Archive returns the release archive name, e.g. fff_Linux_x86_64.tar.gz.
// macOS ships a single universal archive.
func (p Platform) Archive() (string, error) {
	title := cases.Title(language.Und).String(p.OS)
	switch p.OS {
	case "darwin":
		return fmt.Sprintf("%s_%s_all.tar.gz", binaryName, title), nil
	case "linux", "windows":
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupported, p.OS)
	}

	arch, ok := releaseArch[p.Arch]
	if !ok {
		return "", fmt.Errorf("%w: %s/%s", ErrUnsupported, p.OS, p.Arch)
	}
	ext := ".tar.gz"
	if p.OS == "windows" {
		ext = ".zip"
	}
	return fmt.Sprintf("%s_%s_%s%s", binaryName, title, arch, ext), nil
}

// Binary is the executable name inside the archive.
func (p Platform) Binary() string {
	if p.OS == "windows" {
		return binaryName + ".exe"
	}
	return binaryName
}
