package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Graphics.Width != 1280 {
		t.Errorf("expected width 1280, got %d", cfg.Graphics.Width)
	}
	if cfg.Graphics.Height != 720 {
		t.Errorf("expected height 720, got %d", cfg.Graphics.Height)
	}
	if cfg.Graphics.Fullscreen {
		t.Error("expected fullscreen to be false by default")
	}
	if !cfg.Graphics.VSync {
		t.Error("expected vsync to be true by default")
	}
	if cfg.Graphics.FOV != 45 {
		t.Errorf("expected fov 45, got %f", cfg.Graphics.FOV)
	}

	if cfg.Camera.Distance != 10 {
		t.Errorf("expected camera distance 10, got %f", cfg.Camera.Distance)
	}

	if len(cfg.Scene.Objects) != 3 {
		t.Fatalf("expected 3 default scene objects, got %d", len(cfg.Scene.Objects))
	}
	kinds := []string{KindLitCube, KindIcosahedron, KindParticles}
	for i, kind := range kinds {
		if cfg.Scene.Objects[i].Kind != kind {
			t.Errorf("object %d: expected kind %s, got %s", i, kind, cfg.Scene.Objects[i].Kind)
		}
	}

	if cfg.Logging.Level != "info" {
		t.Errorf("expected log level 'info', got %s", cfg.Logging.Level)
	}
	if cfg.Logging.LogFile != "" {
		t.Errorf("expected empty log file, got %s", cfg.Logging.LogFile)
	}

	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

func TestLoadFromFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "scenery.yaml")

	yamlContent := `
graphics:
  width: 1920
  height: 1080
  fullscreen: true
  vsync: false
  fps_limit: 144

camera:
  distance: 25
  target: [0, 1, 0]

scene:
  objects:
    - kind: obj
      name: teapot
      path: models/teapot.obj
      strict: true
      position: [0, 0, -5]
    - kind: skybox
      faces: [px.png, nx.png, py.png, ny.png, pz.png, nz.png]

assets:
  dir: /srv/assets
  watch: true

logging:
  level: "debug"
  log_file: "scenery.log"
`

	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Graphics.Width != 1920 {
		t.Errorf("expected width 1920, got %d", cfg.Graphics.Width)
	}
	if !cfg.Graphics.Fullscreen {
		t.Error("expected fullscreen to be true")
	}
	if cfg.Graphics.FPSLimit != 144 {
		t.Errorf("expected fps limit 144, got %d", cfg.Graphics.FPSLimit)
	}
	// Keys absent from the file keep their defaults.
	if cfg.Graphics.FOV != 45 {
		t.Errorf("expected default fov 45, got %f", cfg.Graphics.FOV)
	}

	if cfg.Camera.Distance != 25 {
		t.Errorf("expected distance 25, got %f", cfg.Camera.Distance)
	}
	if cfg.Camera.Target != [3]float32{0, 1, 0} {
		t.Errorf("expected target [0 1 0], got %v", cfg.Camera.Target)
	}

	if len(cfg.Scene.Objects) != 2 {
		t.Fatalf("expected file objects to replace defaults, got %d objects", len(cfg.Scene.Objects))
	}
	model := cfg.Scene.Objects[0]
	if model.Kind != KindOBJ || model.Path != "models/teapot.obj" || !model.Strict {
		t.Errorf("unexpected obj entry: %+v", model)
	}
	if model.Scale != [3]float32{1, 1, 1} {
		t.Errorf("expected default scale, got %v", model.Scale)
	}
	if model.Color != [4]float32{1, 1, 1, 1} {
		t.Errorf("expected default color, got %v", model.Color)
	}
	if len(cfg.Scene.Objects[1].Faces) != 6 {
		t.Errorf("expected 6 skybox faces, got %d", len(cfg.Scene.Objects[1].Faces))
	}

	if !cfg.Assets.Watch {
		t.Error("expected watch to be true")
	}
	if got := cfg.ResolvePath(model.Path); got != filepath.Join("/srv/assets", "models/teapot.obj") {
		t.Errorf("unexpected resolved path %s", got)
	}

	if cfg.Logging.Level != "debug" {
		t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
	}
	if cfg.Logging.LogFile != "scenery.log" {
		t.Errorf("expected log file 'scenery.log', got %s", cfg.Logging.LogFile)
	}
}

func TestLoadFromFileInvalid(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "invalid.yaml")

	invalidYAML := `
graphics:
  width: not a number
  invalid syntax here
`

	if err := os.WriteFile(configPath, []byte(invalidYAML), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err == nil {
		t.Error("expected error loading invalid YAML, got nil")
	}
}

func TestLoadFromFileMissing(t *testing.T) {
	cfg := Default()
	if err := loadFromFile(cfg, "/nonexistent/path/config.yaml"); err == nil {
		t.Error("expected error loading missing file, got nil")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		obj     ObjectConfig
		wantErr bool
	}{
		{"cube", DefaultObject(KindCube), false},
		{"obj without path", DefaultObject(KindOBJ), true},
		{"obj with path", ObjectConfig{Kind: KindOBJ, Path: "a.obj"}, false},
		{"skybox missing faces", ObjectConfig{Kind: KindSkybox, Faces: []string{"a.png"}}, true},
		{"particles without count", DefaultObject(KindParticles), true},
		{"particles", ObjectConfig{Kind: KindParticles, Count: 10}, false},
		{"unknown", ObjectConfig{Kind: "teapot"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			cfg.Scene.Objects = []ObjectConfig{tt.obj}
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateDuplicateNames(t *testing.T) {
	cfg := Default()
	a := ObjectConfig{Kind: KindOBJ, Name: "bunny", Path: "a.obj"}
	b := ObjectConfig{Kind: KindOBJ, Name: "bunny", Path: "b.obj"}
	cfg.Scene.Objects = []ObjectConfig{a, b}
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for duplicate object names")
	}

	b.Name = "bunny-2"
	cfg.Scene.Objects = []ObjectConfig{a, b}
	if err := cfg.Validate(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}

	unnamed := ObjectConfig{Kind: KindCube}
	cfg.Scene.Objects = []ObjectConfig{unnamed, unnamed}
	if err := cfg.Validate(); err != nil {
		t.Errorf("unnamed objects should not collide: %v", err)
	}
}

func TestValidateUnknownKind(t *testing.T) {
	cfg := Default()
	cfg.Scene.Objects = append(cfg.Scene.Objects, ObjectConfig{Kind: "torus"})

	err := cfg.Validate()
	if !errors.Is(err, ErrUnknownObjectKind) {
		t.Errorf("expected ErrUnknownObjectKind, got %v", err)
	}
}

func TestResolvePath(t *testing.T) {
	cfg := Default()
	cfg.Assets.Dir = "assets"

	want, err := filepath.Abs(filepath.Join("assets", "cube.obj"))
	if err != nil {
		t.Fatal(err)
	}
	if got := cfg.ResolvePath("cube.obj"); got != want {
		t.Errorf("expected %s, got %s", want, got)
	}
	if !filepath.IsAbs(Default().ResolvePath("models/a.obj")) {
		t.Error("expected default assets dir to resolve to an absolute path")
	}
	if got := cfg.ResolvePath("/abs/cube.obj"); got != "/abs/cube.obj" {
		t.Errorf("expected absolute path unchanged, got %s", got)
	}
	if got := cfg.ResolvePath(""); got != "" {
		t.Errorf("expected empty path unchanged, got %s", got)
	}
}

func TestConfigDir(t *testing.T) {
	dir := ConfigDir()
	if dir == "" {
		t.Error("ConfigDir returned empty string")
	}
	if !filepath.IsAbs(dir) {
		t.Errorf("ConfigDir should return absolute path, got %s", dir)
	}
}

func TestFindConfigFile(t *testing.T) {
	origDir, _ := os.Getwd()
	defer os.Chdir(origDir)

	tmpDir := t.TempDir()
	os.Chdir(tmpDir)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(tmpDir, "xdg"))

	if path := findConfigFile(); path != "" {
		t.Errorf("expected empty path when no config exists, got %s", path)
	}

	if err := os.WriteFile(filepath.Join(tmpDir, "scenery.yaml"), []byte("graphics:\n  width: 800\n"), 0644); err != nil {
		t.Fatalf("failed to create test config: %v", err)
	}

	if path := findConfigFile(); path == "" {
		t.Error("expected to find scenery.yaml in current directory")
	}
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "scenery.yaml")

	cfg := Default()
	cfg.Graphics.Width = 640
	cfg.Scene.Objects[0].Name = "saved"
	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("SaveTo failed: %v", err)
	}

	loaded := Default()
	if err := loadFromFile(loaded, path); err != nil {
		t.Fatalf("loading saved config failed: %v", err)
	}
	if loaded.Graphics.Width != 640 {
		t.Errorf("expected width 640, got %d", loaded.Graphics.Width)
	}
	if loaded.Scene.Objects[0].Name != "saved" {
		t.Errorf("expected object name 'saved', got %s", loaded.Scene.Objects[0].Name)
	}
}

func TestWriteExplicitPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.yaml")
	written, err := Default().Write(path)
	if err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	if written != path {
		t.Errorf("Write returned %s, want %s", written, path)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("expected file at %s: %v", path, err)
	}
}

func TestApplyFlags(t *testing.T) {
	tests := []struct {
		name     string
		setup    func()
		verify   func(*testing.T, *Config)
		teardown func()
	}{
		{
			name:  "debug flag",
			setup: func() { *flagDebug = true },
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Logging.Level != "debug" {
					t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
				}
			},
			teardown: func() { *flagDebug = false },
		},
		{
			name:  "model flag",
			setup: func() { *flagModel = "models/bunny.obj" },
			verify: func(t *testing.T, cfg *Config) {
				last := cfg.Scene.Objects[len(cfg.Scene.Objects)-1]
				want, _ := filepath.Abs("models/bunny.obj")
				if last.Kind != KindOBJ || last.Path != want {
					t.Errorf("expected appended obj object, got %+v", last)
				}
				if last.Name != "bunny" {
					t.Errorf("expected name 'bunny', got %s", last.Name)
				}
			},
			teardown: func() { *flagModel = "" },
		},
		{
			name:  "watch flag",
			setup: func() { *flagWatch = true },
			verify: func(t *testing.T, cfg *Config) {
				if !cfg.Assets.Watch {
					t.Error("expected watch to be enabled")
				}
			},
			teardown: func() { *flagWatch = false },
		},
		{
			name:  "windowed flag",
			setup: func() { *flagWindowed = true },
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Graphics.Fullscreen {
					t.Error("expected fullscreen to be false with windowed flag")
				}
			},
			teardown: func() { *flagWindowed = false },
		},
		{
			name:  "fullscreen flag",
			setup: func() { *flagFullscreen = true },
			verify: func(t *testing.T, cfg *Config) {
				if !cfg.Graphics.Fullscreen {
					t.Error("expected fullscreen to be true with fullscreen flag")
				}
			},
			teardown: func() { *flagFullscreen = false },
		},
		{
			name: "width and height flags",
			setup: func() {
				*flagWidth = 2560
				*flagHeight = 1440
			},
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Graphics.Width != 2560 {
					t.Errorf("expected width 2560, got %d", cfg.Graphics.Width)
				}
				if cfg.Graphics.Height != 1440 {
					t.Errorf("expected height 1440, got %d", cfg.Graphics.Height)
				}
			},
			teardown: func() {
				*flagWidth = 0
				*flagHeight = 0
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()
			defer tt.teardown()

			cfg := Default()
			applyFlags(cfg)

			tt.verify(t, cfg)
		})
	}
}

func TestLoadPriority(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "scenery.yaml")

	yamlContent := `
graphics:
  width: 1600
  height: 900
`

	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	*flagConfig = configPath
	*flagWidth = 1920
	defer func() {
		*flagConfig = ""
		*flagWidth = 0
	}()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Graphics.Width != 1920 {
		t.Errorf("expected width 1920 from flag, got %d", cfg.Graphics.Width)
	}
	if cfg.Graphics.Height != 900 {
		t.Errorf("expected height 900 from file, got %d", cfg.Graphics.Height)
	}
}

func TestValidateCaptureScale(t *testing.T) {
	cfg := Default()
	if cfg.Capture.Scale != 1 {
		t.Errorf("default capture scale = %d, want 1", cfg.Capture.Scale)
	}
	cfg.Capture.Scale = -2
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for negative capture scale")
	}
}
