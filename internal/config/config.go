package config

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/mcaddon-labs/mcaddon/internal/branding"
	"github.com/spf13/viper"
)

const (
	fileName = "config"
	fileType = "yaml"
)

// Setting keys understood by the CLI.
const (
	KeyRegistry = "registry"
	KeyTimeout  = "timeout"
	KeyLanguage = "language"
)

// Keys lists every key accepted by Set.
var Keys = []string{KeyRegistry, KeyTimeout, KeyLanguage}

// Dir returns the path to the user config directory (~/.mcaddon/).
func Dir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", branding.HomeDir())
	}
	return filepath.Join(home, branding.HomeDir())
}

// FilePath returns the full path to the config file (~/.mcaddon/config.yaml).
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

// Load initializes Viper to read from the config file and environment.
func Load() {
	viper.SetConfigFile(FilePath())
	viper.SetConfigType(fileType)
	viper.SetEnvPrefix(branding.EnvPrefix())
	viper.AutomaticEnv()

	viper.SetDefault(KeyRegistry, branding.RegistryURL())
	viper.SetDefault(KeyLanguage, "js")

	// Ignore error if config file doesn't exist yet.
	_ = viper.ReadInConfig()
}

// Get returns a config value by key. Returns empty string if not set.
func Get(key string) string {
	return viper.GetString(key)
}

// Registry returns the npm registry base URL without a trailing slash.
func Registry() string {
	return strings.TrimRight(viper.GetString(KeyRegistry), "/")
}

// Language returns the default script language offered by init.
func Language() string {
	return viper.GetString(KeyLanguage)
}

// Timeout returns the registry HTTP timeout. Zero means no deadline.
func Timeout() (time.Duration, error) {
	raw := strings.TrimSpace(viper.GetString(KeyTimeout))
	if raw == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("parsing %s %q: %w", KeyTimeout, raw, err)
	}
	return d, nil
}

// Set writes a config key-value pair and saves the config file.
func Set(key, value string) error {
	if !slices.Contains(Keys, key) {
		return fmt.Errorf("unknown config key %q (known: %s)", key, strings.Join(Keys, ", "))
	}
	if key == KeyTimeout && value != "" {
		if _, err := time.ParseDuration(value); err != nil {
			return fmt.Errorf("invalid timeout %q: %w", value, err)
		}
	}
	if key == KeyLanguage && value != "ts" && value != "js" {
		return fmt.Errorf("language must be 'ts' or 'js', got %q", value)
	}

	if err := EnsureDir(); err != nil {
		return err
	}

	viper.Set(key, value)

	configFile := FilePath()

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
