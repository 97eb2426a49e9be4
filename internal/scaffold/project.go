package scaffold

// Defaults applied by NewProjectConfig.
const (
	DefaultDescription = "A new project"
	DefaultAuthor      = "Developer"
	DefaultVersion     = "0.1.0"
	DefaultLicense     = "MIT"
)

// ProjectConfig is a request to generate one project.
type ProjectConfig struct {
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description" yaml:"description"`
	Author      string `json:"author" yaml:"author"`
	Version     string `json:"version" yaml:"version"`
	License     string `json:"license" yaml:"license"`
	Template    string `json:"template" yaml:"template"`

	// Customizations is reserved for template-specific options. The
	// built-in templates ignore it.
	Customizations map[string]string `json:"customizations,omitempty" yaml:"customizations,omitempty"`
}

// NewProjectConfig returns a config for name and template with the default
// description, author, version, and license filled in.
func NewProjectConfig(name, template string) ProjectConfig {
	return ProjectConfig{
		Name:           name,
		Description:    DefaultDescription,
		Author:         DefaultAuthor,
		Version:        DefaultVersion,
		License:        DefaultLicense,
		Template:       template,
		Customizations: map[string]string{},
	}
}
