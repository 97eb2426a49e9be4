package config

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for the config package.
var (
	ErrInvalidOutputFormat = errors.New("invalid output format: must be text, json, or yaml")
	ErrAlreadyInitialized  = errors.New("configuration already initialized")
	ErrUnknownKey          = errors.New("unknown configuration key")
)

// OutputFormat selects how command results are rendered.
type OutputFormat string

const (
	FormatText OutputFormat = "text"
	FormatJSON OutputFormat = "json"
	FormatYAML OutputFormat = "yaml"
)

// ParseOutputFormat accepts "text", "json", or "yaml" in any case.
func ParseOutputFormat(s string) (OutputFormat, error) {
	switch f := OutputFormat(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatText, FormatJSON, FormatYAML:
		return f, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidOutputFormat, s)
	}
}

// AppConfig mirrors the .fazrepo file.
type AppConfig struct {
	Version     string            `mapstructure:"version" json:"version" yaml:"version"`
	Initialized bool              `mapstructure:"initialized" json:"initialized" yaml:"initialized"`
	Settings    Settings          `mapstructure:"settings" json:"settings" yaml:"settings"`
	Templates   map[string]string `mapstructure:"templates" json:"templates" yaml:"templates"`
}

// Settings holds the user-adjustable options.
type Settings struct {
	OutputFormat     OutputFormat `mapstructure:"output_format" json:"output_format" yaml:"output_format"`
	ColorOutput      bool         `mapstructure:"color_output" json:"color_output" yaml:"color_output"`
	DetailedOutput   bool         `mapstructure:"detailed_output" json:"detailed_output" yaml:"detailed_output"`
	DefaultTemplate  string       `mapstructure:"default_template" json:"default_template" yaml:"default_template"`
	ProjectDirectory string       `mapstructure:"project_directory" json:"project_directory" yaml:"project_directory"`
}

// Setting keys.
const (
	KeyVersion          = "version"
	KeyInitialized      = "initialized"
	KeyOutputFormat     = "settings.output_format"
	KeyColorOutput      = "settings.color_output"
	KeyDetailedOutput   = "settings.detailed_output"
	KeyDefaultTemplate  = "settings.default_template"
	KeyProjectDirectory = "settings.project_directory"
)

// settingKeys are the keys Set accepts.
var settingKeys = []string{
	KeyOutputFormat,
	KeyColorOutput,
	KeyDetailedOutput,
	KeyDefaultTemplate,
	KeyProjectDirectory,
}

// SettingKeys returns the keys that can be changed with Set.
func SettingKeys() []string {
	return append([]string(nil), settingKeys...)
}
