package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"gopkg.in/yaml.v3"
)

// Load loads configuration with priority: defaults < file < flags.
func Load() (*Config, error) {
	cfg := Default()

	configPath := ConfigPath()
	if configPath == "" {
		configPath = findConfigFile()
	}

	if configPath != "" {
		if err := loadFromFile(cfg, configPath); err != nil {
			return nil, fmt.Errorf("loading config from %s: %w", configPath, err)
		}
	}

	applyFlags(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// findConfigFile looks for config in standard locations.
func findConfigFile() string {
	candidates := []string{
		"./scenery.yaml",
		filepath.Join(ConfigDir(), "config.yaml"),
	}

	for _, path := range candidates {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// ConfigDir returns the OS-appropriate config directory.
func ConfigDir() string {
	switch runtime.GOOS {
	case "darwin":
		home, _ := os.UserHomeDir()
		return filepath.Join(home, "Library", "Application Support", "Scenery")
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "Scenery")
	default:
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			return filepath.Join(xdg, "scenery")
		}
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".config", "scenery")
	}
}

// loadFromFile loads config from a YAML file, merging with existing values.
// A scene object list in the file replaces the default scene.
func loadFromFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return err
	}
	for i := range cfg.Scene.Objects {
		fillObjectDefaults(&cfg.Scene.Objects[i])
	}
	return nil
}

// fillObjectDefaults replaces zero color and scale, which YAML leaves
// behind when the keys are omitted.
func fillObjectDefaults(obj *ObjectConfig) {
	if obj.Color == [4]float32{} {
		obj.Color = [4]float32{1, 1, 1, 1}
	}
	if obj.Scale == [3]float32{} {
		obj.Scale = [3]float32{1, 1, 1}
	}
}

// ResolvePath returns p as an absolute path. Relative paths are taken
// relative to the assets directory.
func (c *Config) ResolvePath(p string) string {
	if p == "" {
		return p
	}
	if !filepath.IsAbs(p) && c.Assets.Dir != "" {
		p = filepath.Join(c.Assets.Dir, p)
	}
	if abs, err := filepath.Abs(p); err == nil {
		return abs
	}
	return filepath.Clean(p)
}
