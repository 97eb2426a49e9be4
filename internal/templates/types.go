package templates

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Template is a named blueprint describing the directories, files, and
// config files to materialize for a new project.
type Template struct {
	Name         string       `json:"name" yaml:"name"`
	Description  string       `json:"description" yaml:"description"`
	Category     Category     `json:"category" yaml:"category"`
	Technologies []string     `json:"technologies" yaml:"technologies"`
	Features     []string     `json:"features" yaml:"features"`
	Structure    Structure    `json:"structure" yaml:"structure"`
	ConfigFiles  []ConfigFile `json:"config_files" yaml:"config_files"`
}

// Structure lists the directories and files of a template, in creation order.
type Structure struct {
	Directories []string      `json:"directories" yaml:"directories"`
	Files       []ProjectFile `json:"files" yaml:"files"`
}

// ProjectFile is a single file of a template. Path is relative to the
// project root. When IsTemplate is set, placeholders in Content are
// substituted before the file is written.
type ProjectFile struct {
	Path       string `json:"path" yaml:"path"`
	Content    string `json:"-" yaml:"-"`
	IsTemplate bool   `json:"is_template" yaml:"is_template"`
}

// ConfigFile is an auxiliary file written at the project root. Config files
// are always rendered.
type ConfigFile struct {
	Name        string `json:"name" yaml:"name"`
	Content     string `json:"-" yaml:"-"`
	Description string `json:"description" yaml:"description"`
}

// EntryCount returns the number of markers a clean generation of t produces.
func (t Template) EntryCount() int {
	return len(t.Structure.Directories) + len(t.Structure.Files) + len(t.ConfigFiles)
}

// Category classifies a template.
type Category int

// Template categories. The set is closed.
const (
	CategoryFullStack Category = iota
	CategoryFrontend
	CategoryBackend
	CategoryMobile
	CategoryDesktop
	CategoryLibrary
	CategoryTool
)

var categoryNames = map[Category]string{
	CategoryFullStack: "full-stack",
	CategoryFrontend:  "frontend",
	CategoryBackend:   "backend",
	CategoryMobile:    "mobile",
	CategoryDesktop:   "desktop",
	CategoryLibrary:   "library",
	CategoryTool:      "tool",
}

var categoriesByName = func() map[string]Category {
	m := make(map[string]Category, len(categoryNames))
	for c, name := range categoryNames {
		m[name] = c
	}
	return m
}()

var titleCaser = cases.Title(language.English)

// ParseCategory converts a category key such as "full-stack" to a Category.
func ParseCategory(s string) (Category, bool) {
	c, ok := categoriesByName[strings.ToLower(strings.TrimSpace(s))]
	return c, ok
}

// String returns the category key (e.g., "full-stack").
func (c Category) String() string {
	if name, ok := categoryNames[c]; ok {
		return name
	}
	return fmt.Sprintf("category(%d)", int(c))
}

// DisplayName returns the category formatted for humans (e.g., "Full Stack").
func (c Category) DisplayName() string {
	return titleCaser.String(strings.ReplaceAll(c.String(), "-", " "))
}

// MarshalText encodes the category as its key.
func (c Category) MarshalText() ([]byte, error) {
	name, ok := categoryNames[c]
	if !ok {
		return nil, fmt.Errorf("unknown category %d", int(c))
	}
	return []byte(name), nil
}

// UnmarshalText decodes a category key.
func (c *Category) UnmarshalText(text []byte) error {
	parsed, ok := ParseCategory(string(text))
	if !ok {
		return fmt.Errorf("unknown category %q", string(text))
	}
	*c = parsed
	return nil
}
