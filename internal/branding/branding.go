// Package branding provides compile-time identity values for the CLI.
//
// The values are read from the embedded branding.yaml so a fork can rename the
// tool without touching Go code.
package branding

import (
	_ "embed"
	"strings"
	"sync"

	"go.yaml.in/yaml/v3"
)

//go:embed branding.yaml
var rawBranding []byte

var (
	once     sync.Once
	defaults brand
)

type brand struct {
	CLIName     string `yaml:"cli_name"`
	DisplayName string `yaml:"display_name"`
	Description string `yaml:"description"`
	HomeDir     string `yaml:"home_dir"`
	EnvPrefix   string `yaml:"env_prefix"`
}

func load() {
	once.Do(func() {
		// Hard defaults in case the embedded file is empty.
		defaults = brand{
			CLIName:     "suf-gen",
			DisplayName: "suf-gen",
			Description: "Interactive generator for webpack + TypeScript web projects",
			HomeDir:     ".suf-gen",
			EnvPrefix:   "SUFGEN",
		}
		_ = yaml.Unmarshal(rawBranding, &defaults)
	})
}

// CLIName returns the root command name (e.g., "suf-gen").
func CLIName() string { load(); return defaults.CLIName }

// DisplayName returns the human-readable product name.
func DisplayName() string { load(); return defaults.DisplayName }

// Description returns the short product description.
func Description() string { load(); return defaults.Description }

// HomeDir returns the dot-directory name under $HOME (e.g., ".suf-gen").
func HomeDir() string { load(); return defaults.HomeDir }

// EnvPrefix returns the environment variable prefix (e.g., "SUFGEN").
func EnvPrefix() string { load(); return defaults.EnvPrefix }

// EnvVar returns the environment variable that overrides a config key, e.g.
// EnvVar("install.fallback_in_project") is "SUFGEN_INSTALL_FALLBACK_IN_PROJECT".
func EnvVar(key string) string {
	load()
	return defaults.EnvPrefix + "_" + strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
}
