// Package platform hides the differences in how package-manager executables
// are spelled and launched on Windows and Unix systems. Functions take the
// target GOOS explicitly so both behaviors can be exercised on any host.
package platform
