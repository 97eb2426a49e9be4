// Package config manages the per-directory .fazrepo settings file. The file
// is JSON and read through Viper, so every setting can also be overridden
// by a FAZREPO_-prefixed environment variable (for example
// FAZREPO_SETTINGS_DEFAULT_TEMPLATE).
package config
