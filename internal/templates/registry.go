package templates

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
)

//go:embed all:files
var content embed.FS

// ID identifies one of the built-in templates.
type ID int

// Built-in template identifiers, in listing order.
const (
	FullstackNextJS ID = iota
	APIExpress
	LibraryTypeScript
)

// builtinIDs fixes the listing order of the built-in set.
var builtinIDs = []ID{FullstackNextJS, APIExpress, LibraryTypeScript}

var idsByName = map[string]ID{
	"fullstack-nextjs":   FullstackNextJS,
	"api-express":        APIExpress,
	"library-typescript": LibraryTypeScript,
}

// ParseID looks up a template identifier by its exact, case-sensitive name.
func ParseID(name string) (ID, bool) {
	id, ok := idsByName[name]
	return id, ok
}

// String returns the template name for the identifier.
func (id ID) String() string {
	for name, candidate := range idsByName {
		if candidate == id {
			return name
		}
	}
	return fmt.Sprintf("template(%d)", int(id))
}

// Source resolves templates by name. The scaffold generator depends on this
// interface so tests can supply their own templates.
type Source interface {
	Get(name string) (Template, bool)
}

// Builtin is the Source backed by the templates compiled into the binary.
type Builtin struct{}

// Get implements Source.
func (Builtin) Get(name string) (Template, bool) { return Get(name) }

// List returns freshly built copies of all built-in templates in a stable order.
func List() []Template {
	out := make([]Template, 0, len(builtinIDs))
	for _, id := range builtinIDs {
		out = append(out, Build(id))
	}
	return out
}

// Get returns a freshly built copy of the named template.
func Get(name string) (Template, bool) {
	id, ok := ParseID(name)
	if !ok {
		return Template{}, false
	}
	return Build(id), true
}

// Names returns the names of all built-in templates in listing order.
func Names() []string {
	names := make([]string, 0, len(builtinIDs))
	for _, id := range builtinIDs {
		names = append(names, id.String())
	}
	return names
}

// Build constructs the template for id. Every call allocates new slices and
// re-reads file contents from the embedded set.
func Build(id ID) Template {
	switch id {
	case FullstackNextJS:
		return fullstackNextJS()
	case APIExpress:
		return apiExpress()
	case LibraryTypeScript:
		return libraryTypeScript()
	default:
		panic(fmt.Sprintf("templates: no builder for %v", id))
	}
}

// projectFile loads files/<set>/project/<p>.
func projectFile(set, p string, isTemplate bool) ProjectFile {
	return ProjectFile{
		Path:       p,
		Content:    mustRead(path.Join("files", set, "project", p)),
		IsTemplate: isTemplate,
	}
}

// configFile loads files/<set>/config/<name>.
func configFile(set, name, description string) ConfigFile {
	return ConfigFile{
		Name:        name,
		Content:     mustRead(path.Join("files", set, "config", name)),
		Description: description,
	}
}

// mustRead panics when an embedded file is missing; the embedded set is
// fixed at build time and covered by the registry tests.
func mustRead(name string) string {
	data, err := fs.ReadFile(content, name)
	if err != nil {
		panic(fmt.Sprintf("templates: reading embedded %s: %v", name, err))
	}
	return string(data)
}
