// Package probe detects JavaScript package managers on the local machine.
// For each supported manager it resolves the executable on PATH, runs
// "<command> --version", and reports the result. A failure for one manager
// never affects the others.
package probe
