package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Write saves the config to path, or to the user's config directory when
// path is "-". It returns the file written.
func (c *Config) Write(path string) (string, error) {
	if path == "-" {
		path = filepath.Join(ConfigDir(), "config.yaml")
	}
	return path, c.SaveTo(path)
}

// SaveTo writes the config to a specific path, creating parent directories.
func (c *Config) SaveTo(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}
