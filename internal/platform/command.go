package platform

import (
	"runtime"
	"strings"
)

// Windows is the GOOS value for Windows.
const Windows = "windows"

// IsWindows reports whether goos names Windows.
func IsWindows(goos string) bool {
	return goos == Windows
}

// HostOS returns the GOOS of the running binary.
func HostOS() string {
	return runtime.GOOS
}

// PlatformCommand returns the conventional spelling of base on goos.
// Node package managers install ".cmd" shims on Windows.
func PlatformCommand(base, goos string) string {
	if IsWindows(goos) {
		return strings.TrimSuffix(base, ".cmd") + ".cmd"
	}
	return base
}

// CommandCandidates lists the spellings to look up for command, in order.
// On Windows the ".cmd" shim is preferred, then an ".exe", then the bare
// name. Elsewhere the command is used as given.
func CommandCandidates(command, goos string) []string {
	if !IsWindows(goos) {
		return []string{command}
	}
	base := strings.TrimSuffix(command, ".cmd")
	return []string{base + ".cmd", base + ".exe", base}
}

// ShellArgs returns the program and arguments that run command with args.
// Windows script shims are started through "cmd /C"; executables are
// started directly.
func ShellArgs(command, goos string, args ...string) (string, []string) {
	if IsWindows(goos) && !strings.HasSuffix(strings.ToLower(command), ".exe") {
		return "cmd", append([]string{"/C", command}, args...)
	}
	return command, args
}
