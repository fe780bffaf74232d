package config

import (
	"flag"
	"path/filepath"
	"strings"
)

var (
	flagConfig     = flag.String("config", "", "Path to config file")
	flagDebug      = flag.Bool("debug", false, "Enable debug logging")
	flagModel      = flag.String("model", "", "OBJ model to add to the scene")
	flagWatch      = flag.Bool("watch", false, "Reload OBJ models when they change on disk")
	flagWindowed   = flag.Bool("windowed", false, "Run in windowed mode")
	flagFullscreen = flag.Bool("fullscreen", false, "Run in fullscreen mode")
	flagWidth      = flag.Int("width", 0, "Window width")
	flagHeight     = flag.Int("height", 0, "Window height")
	flagWrite      = flag.String("write-config", "", "Write the effective config to this path (\"-\" for the user config dir) and exit")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// WriteConfigPath returns the --write-config target, or "" when unset.
func WriteConfigPath() string {
	return *flagWrite
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagModel != "" {
		cfg.Scene.Objects = append(cfg.Scene.Objects, modelObject(*flagModel))
	}
	if *flagWatch {
		cfg.Assets.Watch = true
	}
	if *flagWindowed {
		cfg.Graphics.Fullscreen = false
	}
	if *flagFullscreen {
		cfg.Graphics.Fullscreen = true
	}
	if *flagWidth > 0 {
		cfg.Graphics.Width = *flagWidth
	}
	if *flagHeight > 0 {
		cfg.Graphics.Height = *flagHeight
	}
}

// modelObject builds the scene entry for a model given on the command line.
// The path is made absolute so it does not depend on the assets directory.
func modelObject(path string) ObjectConfig {
	if abs, err := filepath.Abs(path); err == nil {
		path = abs
	}
	obj := DefaultObject(KindOBJ)
	obj.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	obj.Path = path
	obj.Center = true
	obj.GenerateNormals = true
	return obj
}
