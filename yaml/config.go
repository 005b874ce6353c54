// Package yaml loads locwidget configuration files.
package yaml

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/fwojciec/locwidget"
	"gopkg.in/yaml.v3"
)

// AppName names the per-user config and data directories.
const AppName = "locwidget"

// DefaultConfigFile is the configuration file name looked up in the
// working directory.
const DefaultConfigFile = ".locwidget.yaml"

// ErrConfigNotFound is returned when the configuration file does not exist.
var ErrConfigNotFound = errors.New("configuration file not found")

// LoadConfig reads a configuration file. Fields absent from the file keep
// their zero value so the result can be merged over the defaults.
// Returns ErrConfigNotFound if the file does not exist and EINVALID if it
// cannot be parsed or names unknown keys.
func LoadConfig(path string) (locwidget.Config, error) {
	var cfg locwidget.Config

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, ErrConfigNotFound
		}
		return cfg, err
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return locwidget.Config{}, locwidget.Errorf(locwidget.EINVALID, "invalid config %s: %v", path, err)
	}
	return cfg, nil
}

// FindConfigFile searches for the configuration file in the following order:
// 1. If configPath is specified, use it directly
// 2. Look for .locwidget.yaml in the current directory
// 3. Look for config.yaml in the user's config directory
//
// Returns the path to the configuration file if found, or empty string if not found.
func FindConfigFile(configPath string) string {
	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			return configPath
		}
		return ""
	}

	if cwd, err := os.Getwd(); err == nil {
		cwdConfig := filepath.Join(cwd, DefaultConfigFile)
		if _, err := os.Stat(cwdConfig); err == nil {
			return cwdConfig
		}
	}

	userConfig := filepath.Join(ConfigDir(), "config.yaml")
	if _, err := os.Stat(userConfig); err == nil {
		return userConfig
	}

	return ""
}

// ConfigDir returns the per-user config directory.
func ConfigDir() string {
	return filepath.Join(xdg.ConfigHome, AppName)
}

// DataDir returns the per-user data directory.
func DataDir() string {
	return filepath.Join(xdg.DataHome, AppName)
}

// DefaultDBPath returns the snapshot database path inside DataDir.
func DefaultDBPath() string {
	return filepath.Join(DataDir(), "locwidget.db")
}

// WriteConfig writes cfg to path, creating parent directories.
func WriteConfig(path string, cfg locwidget.Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
