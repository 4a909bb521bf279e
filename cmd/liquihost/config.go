// Config loading for the liquihost CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

const (
	configFileName = "config"
	configFileType = "yaml"
	configFileExt  = "config.yaml"

	// Config keys.
	cfgKeyDataDir       = "data_dir"
	cfgKeyListSeparator = "list_separator"
)

// defaultConfigYAML is the content written to config.yaml on first run.
const defaultConfigYAML = `# Liquihost CLI configuration

# Data directory holding the connection recency cache
# (optional; overridable by --data-dir flag)
# data_dir:

# Separator between classpath entries in generated properties files:
# "colon", "semicolon", or empty for the platform default.
# list_separator:
`

// loadConfig reads config.yaml from the resolved config directory using Viper.
// It creates the config directory and a default config.yaml on first run.
// A missing config.yaml is not an error.
func loadConfig(configDir string) (*viper.Viper, error) {
	if err := ensureConfigDir(configDir); err != nil {
		return nil, fmt.Errorf("ensure config dir: %w", err)
	}

	if err := ensureDefaultConfigFile(configDir); err != nil {
		return nil, fmt.Errorf("ensure default config: %w", err)
	}

	v := viper.New()
	v.SetConfigName(configFileName)
	v.SetConfigType(configFileType)
	v.AddConfigPath(configDir)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return v, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	return v, nil
}

// ensureConfigDir creates the config directory if it does not exist.
func ensureConfigDir(configDir string) error {
	return os.MkdirAll(configDir, 0o755)
}

// ensureDefaultConfigFile creates a default config.yaml if the file does
// not exist in the config directory.
func ensureDefaultConfigFile(configDir string) error {
	path := filepath.Join(configDir, configFileExt)

	_, err := os.Stat(path)
	if err == nil {
		return nil
	}
	if !os.IsNotExist(err) {
		return fmt.Errorf("stat config file: %w", err)
	}

	return os.WriteFile(path, []byte(defaultConfigYAML), 0o644)
}

// parseListSeparator maps the list_separator config value to a separator
// rune. Empty means the platform default.
func parseListSeparator(value string) (rune, error) {
	switch value {
	case "":
		return 0, nil
	case "colon":
		return ':', nil
	case "semicolon":
		return ';', nil
	default:
		return 0, fmt.Errorf("invalid %s %q (valid: colon, semicolon)", cfgKeyListSeparator, value)
	}
}
