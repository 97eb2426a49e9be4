package scaffold

import "fmt"

// MarkerKind says what a creation marker refers to.
type MarkerKind int

const (
	MarkerDir MarkerKind = iota
	MarkerFile
	MarkerConfig
)

var markerKindNames = map[MarkerKind]string{
	MarkerDir:    "dir",
	MarkerFile:   "file",
	MarkerConfig: "config",
}

var markerIcons = map[MarkerKind]string{
	MarkerDir:    "📁",
	MarkerFile:   "📄",
	MarkerConfig: "⚙️",
}

func (k MarkerKind) String() string {
	if name, ok := markerKindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("marker(%d)", int(k))
}

// MarshalText encodes the kind as "dir", "file", or "config".
func (k MarkerKind) MarshalText() ([]byte, error) {
	name, ok := markerKindNames[k]
	if !ok {
		return nil, fmt.Errorf("unknown marker kind %d", int(k))
	}
	return []byte(name), nil
}

// UnmarshalText decodes a marker kind name.
func (k *MarkerKind) UnmarshalText(text []byte) error {
	for kind, name := range markerKindNames {
		if name == string(text) {
			*k = kind
			return nil
		}
	}
	return fmt.Errorf("unknown marker kind %q", string(text))
}

// Marker records one entry created under the project root.
type Marker struct {
	Kind MarkerKind `json:"kind" yaml:"kind"`
	Path string     `json:"path" yaml:"path"`
}

// String renders the marker for display, e.g. "📁 src".
func (m Marker) String() string {
	return markerIcons[m.Kind] + " " + m.Path
}

// Result is the outcome of a generation run. Lists keep insertion order.
// Success implies Errors is empty and ProjectPath is set; a failed run
// leaves ProjectPath empty but still reports what it created.
type Result struct {
	Success      bool     `json:"success" yaml:"success"`
	ProjectPath  string   `json:"project_path,omitempty" yaml:"project_path,omitempty"`
	FilesCreated []Marker `json:"files_created" yaml:"files_created"`
	Errors       []string `json:"errors" yaml:"errors"`
	Warnings     []string `json:"warnings" yaml:"warnings"`
}

// NewFailure returns a failed result carrying errs.
func NewFailure(errs ...string) *Result {
	return &Result{
		FilesCreated: []Marker{},
		Errors:       append([]string{}, errs...),
		Warnings:     []string{},
	}
}

// NewSuccess returns a successful result for the project at path.
func NewSuccess(path string, created []Marker) *Result {
	return &Result{
		Success:      true,
		ProjectPath:  path,
		FilesCreated: append([]Marker{}, created...),
		Errors:       []string{},
		Warnings:     []string{},
	}
}

// AddError records err and marks the result as failed.
func (r *Result) AddError(err string) {
	r.Errors = append(r.Errors, err)
	r.Success = false
	r.ProjectPath = ""
}

// AddWarning records a non-fatal issue.
func (r *Result) AddWarning(warning string) {
	r.Warnings = append(r.Warnings, warning)
}

// AddCreated appends a creation marker.
func (r *Result) AddCreated(kind MarkerKind, path string) {
	r.FilesCreated = append(r.FilesCreated, Marker{Kind: kind, Path: path})
}

// Partial reports whether a failed run left entries on disk.
func (r *Result) Partial() bool {
	return !r.Success && len(r.FilesCreated) > 0
}

// Lines returns the display form of every creation marker.
func (r *Result) Lines() []string {
	lines := make([]string, len(r.FilesCreated))
	for i, m := range r.FilesCreated {
		lines[i] = m.String()
	}
	return lines
}
