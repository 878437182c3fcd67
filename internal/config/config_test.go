package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Default().Validate() = %v", err)
	}
	if len(cfg.Objects) == 0 {
		t.Error("default scene has no objects")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{"zero width", func(c *Config) { c.Display.Width = 0 }, "display size"},
		{"zero fps", func(c *Config) { c.Display.FPS = 0 }, "fps"},
		{"fov too wide", func(c *Config) { c.Camera.FOVDegrees = 180 }, "fov_degrees"},
		{"near behind", func(c *Config) { c.Camera.Near = 0 }, "near/far"},
		{"far before near", func(c *Config) { c.Camera.Far = 0.05 }, "near/far"},
		{"eye on target", func(c *Config) { c.Camera.Target = c.Camera.Position }, "coincide"},
		{"zero light", func(c *Config) { c.Light.Direction = [3]float64{} }, "light direction"},
		{"bad visibility", func(c *Config) { c.Render.Visibility = "maybe" }, "visibility"},
		{"bad level", func(c *Config) { c.Logging.Level = "loud" }, "log level"},
		{"missing mesh", func(c *Config) { c.Objects[0].Mesh = "" }, "mesh is required"},
		{"stretched", func(c *Config) { c.Objects[0].Scale = [3]float64{1, 2, 1} }, "scale must be uniform"},
		{"half unset", func(c *Config) { c.Objects[0].Scale = [3]float64{2, 0, 2} }, "scale must be uniform"},
		{"mirrored", func(c *Config) { c.Objects[0].Scale = [3]float64{-1, -1, -1} }, "scale must be uniform"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("Validate() = nil, want error")
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Errorf("Validate() = %q, want it to mention %q", err, tc.want)
			}
		})
	}
}

func TestValidateIgnoresUnknownMode(t *testing.T) {
	cfg := Default()
	cfg.Objects[0].Mode = "hologram"
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() = %v, want nil", err)
	}
}

func TestEffectiveScale(t *testing.T) {
	tests := []struct {
		in, want [3]float64
	}{
		{[3]float64{}, [3]float64{1, 1, 1}},
		{[3]float64{3, 3, 3}, [3]float64{3, 3, 3}},
		{[3]float64{0, 2, 0}, [3]float64{1, 2, 1}},
	}
	for _, tc := range tests {
		if got := (ObjectConfig{Scale: tc.in}).EffectiveScale(); got != tc.want {
			t.Errorf("EffectiveScale(%v) = %v, want %v", tc.in, got, tc.want)
		}
	}

	cfg := Default()
	cfg.Objects[0].Scale = [3]float64{}
	if err := cfg.Validate(); err != nil {
		t.Errorf("unset scale: Validate() = %v, want nil", err)
	}
}

func TestValidateJoinsErrors(t *testing.T) {
	cfg := Default()
	cfg.Display.FPS = 0
	cfg.Logging.Level = "loud"
	err := cfg.Validate()
	if err == nil {
		t.Fatal("Validate() = nil, want error")
	}
	for _, want := range []string{"fps", "log level"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("Validate() = %q, missing %q", err, want)
		}
	}
}

func TestSaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", FileName)

	cfg := Default()
	cfg.Display.FPS = 12
	cfg.Render.Visibility = "sentinel"
	cfg.Objects[1].Spin = [3]float64{1, 2, 3}
	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("SaveTo: %v", err)
	}

	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got.Display.FPS != 12 {
		t.Errorf("fps = %d, want 12", got.Display.FPS)
	}
	if got.Render.Visibility != "sentinel" {
		t.Errorf("visibility = %q, want sentinel", got.Render.Visibility)
	}
	if len(got.Objects) != len(cfg.Objects) {
		t.Fatalf("objects = %d, want %d", len(got.Objects), len(cfg.Objects))
	}
	if got.Objects[1].Spin != [3]float64{1, 2, 3} {
		t.Errorf("spin = %v, want [1 2 3]", got.Objects[1].Spin)
	}
}

func TestLoadPartialKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "partial.yaml")
	data := `
display:
  fps: 60
logging:
  level: debug
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	def := Default()
	if cfg.Display.FPS != 60 {
		t.Errorf("fps = %d, want 60", cfg.Display.FPS)
	}
	if cfg.Display.Width != def.Display.Width {
		t.Errorf("width = %d, want default %d", cfg.Display.Width, def.Display.Width)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("level = %q, want debug", cfg.Logging.Level)
	}
	if len(cfg.Objects) != len(def.Objects) {
		t.Errorf("objects = %d, want default %d", len(cfg.Objects), len(def.Objects))
	}
}

func TestLoadObjectsReplaceDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scene.yaml")
	data := `
objects:
  - name: solo
    mesh: cube
    mode: shaded
    color: [10, 20, 30]
    scale: [2, 2, 2]
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(cfg.Objects) != 1 {
		t.Fatalf("objects = %d, want 1", len(cfg.Objects))
	}
	o := cfg.Objects[0]
	if o.Name != "solo" || o.Mode != "shaded" || o.Color != [3]uint8{10, 20, 30} {
		t.Errorf("object = %+v", o)
	}
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()

	t.Run("missing explicit file", func(t *testing.T) {
		if _, err := Load(filepath.Join(dir, "nope.yaml")); err == nil {
			t.Error("Load of missing file should fail")
		}
	})

	t.Run("malformed yaml", func(t *testing.T) {
		path := filepath.Join(dir, "bad.yaml")
		if err := os.WriteFile(path, []byte("display: [unclosed"), 0o644); err != nil {
			t.Fatal(err)
		}
		if _, err := Load(path); err == nil {
			t.Error("Load of malformed yaml should fail")
		}
	})
}

func TestConfigDirUsesXDG(t *testing.T) {
	if os.Getenv("APPDATA") != "" {
		t.Skip("windows layout")
	}
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	got := ConfigDir()
	if got != filepath.Join(dir, "facet") && !strings.Contains(got, "Library") {
		t.Errorf("ConfigDir() = %q", got)
	}
	if DefaultPath() != filepath.Join(got, FileName) {
		t.Errorf("DefaultPath() = %q", DefaultPath())
	}
}
