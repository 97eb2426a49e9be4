// Package cli defines the Cobra command tree for the fazrepo CLI. Each file
// registers one top-level command (check, create, templates, etc.) with the
// root command. Commands delegate to the probe, scaffold, templates, and
// config packages and only handle flags, styling, and output formats.
package cli
