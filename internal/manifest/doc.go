// Package manifest parses and validates the package.json manifests written
// into generated projects. Validation runs against a JSON Schema embedded in
// the binary and reports every failing property as a ValidationIssue.
package manifest
