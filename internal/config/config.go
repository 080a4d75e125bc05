package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
	"github.com/suf-labs/suf-gen/internal/branding"
)

const (
	fileName = "config"
	fileType = "yaml"
)

// Recognized keys.
const (
	KeyPackageManager    = "package_manager"
	KeyPackageManagerMin = "package_manager_min_version"
	KeyFallbackInProject = "install.fallback_in_project"
	KeyGitIdentity       = "git.identity"
	KeyPromptTUI         = "prompt.tui"
	KeyLogLevel          = "log.level"
)

const (
	defaultPackageManager    = "yarn"
	defaultPackageManagerMin = "1.0.0"
)

// Settings is the typed snapshot of the configuration used by a single run.
type Settings struct {
	PackageManager    string
	PackageManagerMin string
	FallbackInProject bool
	GitIdentity       bool
	PromptTUI         bool
	LogLevel          string
}

// Dir returns the path to the config directory (~/.suf-gen/).
func Dir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", branding.HomeDir())
	}
	return filepath.Join(home, branding.HomeDir())
}

// FilePath returns the full path to the config file (~/.suf-gen/config.yaml).
func FilePath() string {
	return filepath.Join(Dir(), fileName+"."+fileType)
}

// EnsureDir creates the config directory if it does not exist.
func EnsureDir() error {
	dir := Dir()
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config directory %s: %w", dir, err)
	}
	return nil
}

func setDefaults() {
	viper.SetDefault(KeyPackageManager, defaultPackageManager)
	viper.SetDefault(KeyPackageManagerMin, defaultPackageManagerMin)
	viper.SetDefault(KeyFallbackInProject, false)
	viper.SetDefault(KeyGitIdentity, true)
	viper.SetDefault(KeyPromptTUI, false)
	viper.SetDefault(KeyLogLevel, "info")
}

// Load initializes Viper to read from the config file and environment.
func Load() {
	LoadFile(FilePath())
}

// LoadFile is Load with an explicit config file path.
func LoadFile(path string) {
	setDefaults()
	viper.SetConfigFile(path)
	viper.SetConfigType(fileType)
	viper.SetEnvPrefix(branding.EnvPrefix())
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	// Ignore error if config file doesn't exist yet.
	_ = viper.ReadInConfig()
}

// Current returns the settings resolved from defaults, file, and environment.
func Current() Settings {
	pm := strings.TrimSpace(viper.GetString(KeyPackageManager))
	if pm == "" {
		pm = defaultPackageManager
	}
	return Settings{
		PackageManager:    pm,
		PackageManagerMin: viper.GetString(KeyPackageManagerMin),
		FallbackInProject: viper.GetBool(KeyFallbackInProject),
		GitIdentity:       viper.GetBool(KeyGitIdentity),
		PromptTUI:         viper.GetBool(KeyPromptTUI),
		LogLevel:          viper.GetString(KeyLogLevel),
	}
}

// Get returns a config value by key. Returns empty string if not set.
func Get(key string) string {
	return viper.GetString(key)
}

// Set writes a config key-value pair and saves the config file.
func Set(key, value string) error {
	if err := EnsureDir(); err != nil {
		return err
	}
	return SetFile(FilePath(), key, value)
}

// SetFile is Set against an explicit config file path.
func SetFile(configFile, key, value string) error {
	viper.Set(key, value)

	// Create the file if it doesn't exist.
	if _, err := os.Stat(configFile); os.IsNotExist(err) {
		f, err := os.Create(configFile)
		if err != nil {
			return fmt.Errorf("creating config file %s: %w", configFile, err)
		}
		f.Close()
	}

	if err := viper.WriteConfigAs(configFile); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}
