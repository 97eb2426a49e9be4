package scaffold

import "strings"

// Placeholder tokens recognized in template content.
const (
	TokenProjectName        = "{{PROJECT_NAME}}"
	TokenProjectDescription = "{{PROJECT_DESCRIPTION}}"
	TokenAuthor             = "{{AUTHOR}}"
	TokenVersion            = "{{VERSION}}"
	TokenLicense            = "{{LICENSE}}"
)

// Render replaces every placeholder token in content with the matching
// field of cfg. Tokens are substituted one after another in a fixed order,
// so a value containing a later token is itself rewritten. Unknown tokens
// are left as-is.
func Render(content string, cfg ProjectConfig) string {
	for _, r := range []struct{ token, value string }{
		{TokenProjectName, cfg.Name},
		{TokenProjectDescription, cfg.Description},
		{TokenAuthor, cfg.Author},
		{TokenVersion, cfg.Version},
		{TokenLicense, cfg.License},
	} {
		content = strings.ReplaceAll(content, r.token, r.value)
	}
	return content
}
