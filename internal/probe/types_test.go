package probe

import (
	"reflect"
	"testing"
)

func TestSemVer(t *testing.T) {
	tests := []struct {
		version string
		want    string
		wantErr bool
	}{
		{"10.2.4", "10.2.4", false},
		{"v20.11.0", "20.11.0", false},
		{"1.22.19\n", "1.22.19", false},
		{"1.0.0-canary.12+abc", "1.0.0-canary.12+abc", false},
		{"unknown", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.version, func(t *testing.T) {
			v, err := PackageManager{Name: "npm", Version: tt.version}.SemVer()
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error, got %v", v)
				}
				return
			}
			if err != nil {
				t.Fatalf("SemVer() error: %v", err)
			}
			if v.String() != tt.want {
				t.Errorf("SemVer() = %q, want %q", v.String(), tt.want)
			}
		})
	}
}

func TestSatisfies(t *testing.T) {
	ok := CheckResult{Manager: PackageManager{Name: "npm", Version: "10.2.4"}, Success: true}
	failed := CheckResult{Manager: PackageManager{Name: "npm"}, ErrorMessage: "command not found"}

	tests := []struct {
		name       string
		result     CheckResult
		constraint string
		want       bool
		wantErr    bool
	}{
		{"met", ok, ">=9", true, false},
		{"range", ok, ">=9, <11", true, false},
		{"unmet", ok, "^8", false, false},
		{"failed probe", failed, ">=1", false, false},
		{"bad constraint", ok, "not a constraint", false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.result.Satisfies(tt.constraint)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Satisfies(%q) error = %v, wantErr %v", tt.constraint, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("Satisfies(%q) = %v, want %v", tt.constraint, got, tt.want)
			}
		})
	}
}

func TestDisplayHelpers(t *testing.T) {
	pm := PackageManager{Name: "pnpm", DisplayName: "Performant npm"}
	if got := pm.VersionDisplay(); got != "unknown" {
		t.Errorf("VersionDisplay() = %q", got)
	}
	pm.Version, pm.Path = "8.15.0", "/usr/bin/pnpm"
	if pm.VersionDisplay() != "8.15.0" || pm.PathDisplay() != "/usr/bin/pnpm" {
		t.Errorf("unexpected display values: %q %q", pm.VersionDisplay(), pm.PathDisplay())
	}
	if pm.DisplayLabel() != "Performant npm (pnpm)" {
		t.Errorf("DisplayLabel() = %q", pm.DisplayLabel())
	}
}

func TestParseSelection(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"", nil},
		{"npm", []string{"npm"}},
		{" npm , yarn,,bun ", []string{"npm", "yarn", "bun"}},
	}
	for _, tt := range tests {
		if got := ParseSelection(tt.in); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("ParseSelection(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestParseRequirement(t *testing.T) {
	req, err := ParseRequirement("npm:>=9")
	if err != nil {
		t.Fatal(err)
	}
	if req.Name != "npm" || req.Constraint != ">=9" || req.String() != "npm:>=9" {
		t.Errorf("unexpected requirement %+v", req)
	}

	for _, bad := range []string{"npm", "npm:", ":>=1", "cargo:>=1"} {
		if _, err := ParseRequirement(bad); err == nil {
			t.Errorf("ParseRequirement(%q) = nil error", bad)
		}
	}
}

func TestUnmet(t *testing.T) {
	results := []CheckResult{
		{Manager: PackageManager{Name: "npm", Version: "10.2.4"}, Success: true},
		{Manager: PackageManager{Name: "yarn"}, ErrorMessage: "command not found"},
	}
	reqs := []Requirement{
		{"npm", ">=9"},
		{"npm", "<10"},
		{"yarn", ">=1"},
		{"bun", ">=1"},
	}

	want := []string{
		"npm:<10: found 10.2.4",
		"yarn:>=1: command not found",
		"bun:>=1: not checked",
	}
	if got := Unmet(results, reqs); !reflect.DeepEqual(got, want) {
		t.Errorf("Unmet() = %v, want %v", got, want)
	}
}
