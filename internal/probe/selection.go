package probe

import (
	"fmt"
	"slices"
	"strings"
)

// ParseSelection splits a comma-separated list of manager names, trimming
// whitespace and dropping empty entries.
func ParseSelection(s string) []string {
	var names []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			names = append(names, part)
		}
	}
	return names
}

// Select returns the managers in all whose names appear in names, keeping
// the order of all. Unknown names are ignored. An empty names list selects
// everything.
func Select(all []PackageManager, names []string) []PackageManager {
	if len(names) == 0 {
		return all
	}
	var out []PackageManager
	for _, pm := range all {
		if slices.Contains(names, pm.Name) {
			out = append(out, pm)
		}
	}
	return out
}

// Requirement is a version constraint on one package manager, written
// "name:constraint" on the command line.
type Requirement struct {
	Name       string
	Constraint string
}

func (r Requirement) String() string {
	return r.Name + ":" + r.Constraint
}

// ParseRequirement parses "npm:>=9". The name must be a supported manager.
func ParseRequirement(s string) (Requirement, error) {
	name, constraint, ok := strings.Cut(s, ":")
	name, constraint = strings.TrimSpace(name), strings.TrimSpace(constraint)
	if !ok || name == "" || constraint == "" {
		return Requirement{}, fmt.Errorf("invalid requirement %q: want name:constraint", s)
	}
	if !slices.Contains(Names(), name) {
		return Requirement{}, fmt.Errorf("invalid requirement %q: unknown package manager %q", s, name)
	}
	return Requirement{Name: name, Constraint: constraint}, nil
}

// Unmet evaluates reqs against results and returns one message per
// requirement that is not satisfied.
func Unmet(results []CheckResult, reqs []Requirement) []string {
	var out []string
	for _, req := range reqs {
		idx := slices.IndexFunc(results, func(r CheckResult) bool { return r.Manager.Name == req.Name })
		if idx < 0 {
			out = append(out, fmt.Sprintf("%s: not checked", req))
			continue
		}
		res := results[idx]
		ok, err := res.Satisfies(req.Constraint)
		switch {
		case err != nil:
			out = append(out, fmt.Sprintf("%s: %v", req, err))
		case !res.Success:
			out = append(out, fmt.Sprintf("%s: %s", req, res.ErrorMessage))
		case !ok:
			out = append(out, fmt.Sprintf("%s: found %s", req, res.Manager.VersionDisplay()))
		}
	}
	return out
}
