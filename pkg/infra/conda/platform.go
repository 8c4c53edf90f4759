package conda

import "runtime"

// LocalPlatform returns the conda subdir name of the machine running the
// build, e.g. "linux-64". Unrecognized combinations fall back to linux-64.
func LocalPlatform() string {
	switch runtime.GOOS {
	case "darwin":
		if runtime.GOARCH == "arm64" {
			return "osx-arm64"
		}
		return "osx-64"
	case "windows":
		if runtime.GOARCH == "386" {
			return "win-32"
		}
		return "win-64"
	case "linux":
		if runtime.GOARCH == "arm64" {
			return "linux-aarch64"
		}
		return "linux-64"
	default:
		return "linux-64"
	}
}
