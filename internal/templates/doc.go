// Package templates holds the built-in project templates used by
// "fazrepo create". File contents are embedded into the binary under files/
// and re-read on every registry call, so each caller receives its own
// Template values and can modify them without affecting later lookups.
package templates
