package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	"github.com/spf13/viper"

	"github.com/avadakedavra-wp/fazrepo/internal/branding"
	"github.com/avadakedavra-wp/fazrepo/internal/templates"
)

const fileType = "json"

// FilePath returns the path of the config file in dir.
func FilePath(dir string) string {
	return filepath.Join(dir, branding.ConfigFile())
}

// Exists reports whether dir holds a config file.
func Exists(dir string) bool {
	_, err := os.Stat(FilePath(dir))
	return err == nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault(KeyVersion, "")
	v.SetDefault(KeyInitialized, false)
	v.SetDefault(KeyOutputFormat, string(FormatText))
	v.SetDefault(KeyColorOutput, true)
	v.SetDefault(KeyDetailedOutput, false)
	v.SetDefault(KeyDefaultTemplate, templates.FullstackNextJS.String())
	v.SetDefault(KeyProjectDirectory, "")
	v.SetDefault("templates", map[string]string{})
}

// fileViper reads only the file and defaults. It is used for writes so that
// environment overrides are never persisted.
func fileViper(dir string) (*viper.Viper, error) {
	v := viper.New()
	v.SetConfigFile(FilePath(dir))
	v.SetConfigType(fileType)
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.Is(err, fs.ErrNotExist) || errors.As(err, &notFound) {
			return v, nil
		}
		return nil, fmt.Errorf("reading %s: %w", FilePath(dir), err)
	}
	return v, nil
}

// newViper layers environment overrides on top of the file.
func newViper(dir string) (*viper.Viper, error) {
	v, err := fileViper(dir)
	if err != nil {
		return nil, err
	}
	v.SetEnvPrefix(branding.EnvPrefix())
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v, nil
}

// Default returns the configuration used when no file is present.
func Default() *AppConfig {
	v := viper.New()
	setDefaults(v)
	cfg := AppConfig{Templates: map[string]string{}}
	// Defaults always decode.
	_ = v.Unmarshal(&cfg)
	return &cfg
}

// Load reads the config in dir. A missing file yields the defaults.
func Load(dir string) (*AppConfig, error) {
	v, err := newViper(dir)
	if err != nil {
		return nil, err
	}

	var cfg AppConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decoding %s: %w", FilePath(dir), err)
	}
	format, err := ParseOutputFormat(string(cfg.Settings.OutputFormat))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", KeyOutputFormat, err)
	}
	cfg.Settings.OutputFormat = format
	if cfg.Templates == nil {
		cfg.Templates = map[string]string{}
	}
	return &cfg, nil
}

// Init writes an initialized config to dir, listing every built-in template.
// It refuses to overwrite an existing file.
func Init(dir, version string) (*AppConfig, error) {
	if Exists(dir) {
		return nil, fmt.Errorf("%w: %s", ErrAlreadyInitialized, FilePath(dir))
	}

	v, err := fileViper(dir)
	if err != nil {
		return nil, err
	}

	known := make(map[string]string)
	for _, t := range templates.List() {
		known[t.Name] = t.Description
	}
	v.Set(KeyVersion, version)
	v.Set(KeyInitialized, true)
	v.Set("templates", known)

	if err := write(v, dir); err != nil {
		return nil, err
	}
	return Load(dir)
}

// Get returns the value of key, including environment overrides. Keys may
// omit the "settings." prefix.
func Get(dir, key string) (string, error) {
	key = normalizeKey(key)
	if key != KeyVersion && key != KeyInitialized && !slices.Contains(settingKeys, key) {
		return "", fmt.Errorf("%w: %q", ErrUnknownKey, key)
	}
	v, err := newViper(dir)
	if err != nil {
		return "", err
	}
	return v.GetString(key), nil
}

// Set validates value for key and saves it to the config file in dir.
func Set(dir, key, value string) error {
	key = normalizeKey(key)
	if !slices.Contains(settingKeys, key) {
		return fmt.Errorf("%w: %q (settable: %s)", ErrUnknownKey, key, strings.Join(settingKeys, ", "))
	}

	parsed, err := parseValue(key, value)
	if err != nil {
		return err
	}

	v, err := fileViper(dir)
	if err != nil {
		return err
	}
	v.Set(key, parsed)
	return write(v, dir)
}

func parseValue(key, value string) (any, error) {
	switch key {
	case KeyOutputFormat:
		f, err := ParseOutputFormat(value)
		if err != nil {
			return nil, err
		}
		return string(f), nil
	case KeyColorOutput, KeyDetailedOutput:
		b, err := strconv.ParseBool(value)
		if err != nil {
			return nil, fmt.Errorf("%s: expected true or false, got %q", key, value)
		}
		return b, nil
	case KeyDefaultTemplate:
		if _, ok := templates.ParseID(value); !ok {
			return nil, fmt.Errorf("%s: unknown template %q (available: %s)",
				key, value, strings.Join(templates.Names(), ", "))
		}
		return value, nil
	default:
		return value, nil
	}
}

func normalizeKey(key string) string {
	key = strings.ToLower(strings.TrimSpace(key))
	if slices.Contains(settingKeys, "settings."+key) {
		return "settings." + key
	}
	return key
}

func write(v *viper.Viper, dir string) error {
	path := FilePath(dir)
	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("writing config file %s: %w", path, err)
	}
	return nil
}
