package probe

import (
	"errors"
	"fmt"
	"regexp"

	"github.com/Masterminds/semver/v3"
)

// ErrNotFound indicates none of a manager's command spellings resolved on PATH.
var ErrNotFound = errors.New("command not found")

// PackageManager describes a package manager and what the probe found out
// about it.
type PackageManager struct {
	Name        string `json:"name" yaml:"name"`
	DisplayName string `json:"display_name" yaml:"display_name"`
	Description string `json:"description" yaml:"description"`
	Command     string `json:"command" yaml:"command"`
	Path        string `json:"path,omitempty" yaml:"path,omitempty"`
	Version     string `json:"version,omitempty" yaml:"version,omitempty"`
	Installed   bool   `json:"installed" yaml:"installed"`
	Working     bool   `json:"working" yaml:"working"`
}

// DisplayLabel returns e.g. "Node Package Manager (npm)".
func (pm PackageManager) DisplayLabel() string {
	return fmt.Sprintf("%s (%s)", pm.DisplayName, pm.Name)
}

// VersionDisplay returns the version, or "unknown" when none was recorded.
func (pm PackageManager) VersionDisplay() string {
	if pm.Version == "" {
		return "unknown"
	}
	return pm.Version
}

// PathDisplay returns the resolved path, or "not found".
func (pm PackageManager) PathDisplay() string {
	if pm.Path == "" {
		return "not found"
	}
	return pm.Path
}

var versionPattern = regexp.MustCompile(`\d+\.\d+\.\d+(?:-[0-9A-Za-z.-]+)?(?:\+[0-9A-Za-z.-]+)?`)

// SemVer parses the semantic version embedded in the reported version
// string, so "v20.11.0" and "1.22.19" both parse.
func (pm PackageManager) SemVer() (*semver.Version, error) {
	raw := versionPattern.FindString(pm.Version)
	if raw == "" {
		return nil, fmt.Errorf("%s: no semantic version in %q", pm.Name, pm.Version)
	}
	v, err := semver.NewVersion(raw)
	if err != nil {
		return nil, fmt.Errorf("%s: parsing version %q: %w", pm.Name, raw, err)
	}
	return v, nil
}

// CheckResult is the outcome of probing one manager.
type CheckResult struct {
	Manager      PackageManager `json:"package_manager" yaml:"package_manager"`
	Success      bool           `json:"success" yaml:"success"`
	ErrorMessage string         `json:"error_message,omitempty" yaml:"error_message,omitempty"`
}

func success(pm PackageManager) CheckResult {
	return CheckResult{Manager: pm, Success: true}
}

func failure(pm PackageManager, msg string) CheckResult {
	return CheckResult{Manager: pm, ErrorMessage: msg}
}

// Satisfies reports whether a successful probe found a version matching
// constraint (e.g. ">=9, <11"). A failed probe never satisfies.
func (r CheckResult) Satisfies(constraint string) (bool, error) {
	c, err := semver.NewConstraint(constraint)
	if err != nil {
		return false, fmt.Errorf("parsing constraint %q: %w", constraint, err)
	}
	if !r.Success {
		return false, nil
	}
	v, err := r.Manager.SemVer()
	if err != nil {
		return false, err
	}
	return c.Check(v), nil
}
