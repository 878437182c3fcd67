// Package config handles facet configuration loading and validation.
package config

import (
	"errors"
	"fmt"

	"github.com/taigrr/facet/internal/logger"
	"github.com/taigrr/facet/pkg/render"
)

// Config holds all viewer and scene settings.
type Config struct {
	Display DisplayConfig  `yaml:"display"`
	Camera  CameraConfig   `yaml:"camera"`
	Light   LightConfig    `yaml:"light"`
	Render  RenderConfig   `yaml:"render"`
	Logging LoggingConfig  `yaml:"logging"`
	Objects []ObjectConfig `yaml:"objects"`
}

// DisplayConfig holds output surface settings. Width and height are in
// pixels; the terminal viewer derives them from the window instead.
type DisplayConfig struct {
	Width      int      `yaml:"width"`
	Height     int      `yaml:"height"`
	FPS        int      `yaml:"fps"`
	Background [3]uint8 `yaml:"background,flow"`
}

// CameraConfig places the camera.
type CameraConfig struct {
	Position   [3]float64 `yaml:"position,flow"`
	Target     [3]float64 `yaml:"target,flow"`
	FOVDegrees float64    `yaml:"fov_degrees"`
	Near       float64    `yaml:"near"`
	Far        float64    `yaml:"far"`
}

// LightConfig holds the single directional light.
type LightConfig struct {
	Direction [3]float64 `yaml:"direction,flow"`
}

// RenderConfig holds pipeline options.
type RenderConfig struct {
	Visibility  string `yaml:"visibility"` // tagged or sentinel
	FrustumCull bool   `yaml:"frustum_cull"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// ObjectConfig describes one scene object.
type ObjectConfig struct {
	Name            string     `yaml:"name"`
	Mesh            string     `yaml:"mesh"` // cube, triangle, quad, tetra or a .glb/.gltf path
	Mode            string     `yaml:"mode"`
	Color           [3]uint8   `yaml:"color,flow"`
	Position        [3]float64 `yaml:"position,flow"`
	RotationDegrees [3]float64 `yaml:"rotation_degrees,flow"`
	Scale           [3]float64 `yaml:"scale,flow"` // uniform; a zero axis means 1
	DrawNormals     bool       `yaml:"draw_normals"`
	DrawVertices    bool       `yaml:"draw_vertices"`
	Spin            [3]float64 `yaml:"spin,flow"` // degrees per second about X, Y, Z
}

// Default returns a Config with a small demo scene.
func Default() *Config {
	return &Config{
		Display: DisplayConfig{
			Width:      320,
			Height:     240,
			FPS:        30,
			Background: [3]uint8{30, 30, 40},
		},
		Camera: CameraConfig{
			Position:   [3]float64{0, 1.5, 6},
			FOVDegrees: 60,
			Near:       0.1,
			Far:        100,
		},
		Light: LightConfig{
			Direction: [3]float64{-0.4, -0.8, -0.45},
		},
		Render: RenderConfig{
			Visibility: render.VisibilityTagged.String(),
		},
		Logging: LoggingConfig{
			Level: "info",
		},
		Objects: []ObjectConfig{
			{
				Name:            "cube",
				Mesh:            "cube",
				Mode:            render.ShadedOutline.String(),
				Color:           [3]uint8{220, 120, 60},
				Position:        [3]float64{-1.5, 0, 0},
				RotationDegrees: [3]float64{20, 30, 0},
				Scale:           [3]float64{1, 1, 1},
				Spin:            [3]float64{0, 45, 0},
			},
			{
				Name:     "tetra",
				Mesh:     "tetra",
				Mode:     render.Shaded.String(),
				Color:    [3]uint8{80, 160, 220},
				Position: [3]float64{1.5, 0, 0},
				Scale:    [3]float64{1, 1, 1},
				Spin:     [3]float64{30, 0, 20},
			},
			{
				Name:            "floor",
				Mesh:            "quad",
				Mode:            render.Wireframe.String(),
				Color:           [3]uint8{90, 200, 120},
				Position:        [3]float64{0, -1.5, 0},
				RotationDegrees: [3]float64{-90, 0, 0},
				Scale:           [3]float64{6, 6, 6},
				DrawVertices:    true,
			},
		},
	}
}

// Validate checks the settings the pipeline cannot recover from. Unknown
// object modes are left for the display lists to report.
func (c *Config) Validate() error {
	var errs []error
	if c.Display.Width <= 0 || c.Display.Height <= 0 {
		errs = append(errs, fmt.Errorf("display size %dx%d must be positive", c.Display.Width, c.Display.Height))
	}
	if c.Display.FPS <= 0 {
		errs = append(errs, fmt.Errorf("display fps %d must be positive", c.Display.FPS))
	}
	if c.Camera.FOVDegrees <= 0 || c.Camera.FOVDegrees >= 180 {
		errs = append(errs, fmt.Errorf("camera fov_degrees %v must be in (0, 180)", c.Camera.FOVDegrees))
	}
	if c.Camera.Near <= 0 || c.Camera.Far <= c.Camera.Near {
		errs = append(errs, fmt.Errorf("camera near/far %v/%v must satisfy 0 < near < far", c.Camera.Near, c.Camera.Far))
	}
	if c.Camera.Position == c.Camera.Target {
		errs = append(errs, errors.New("camera position and target coincide"))
	}
	if c.Light.Direction == [3]float64{} {
		errs = append(errs, errors.New("light direction must be non-zero"))
	}
	if _, err := render.ParseVisibilityMode(c.Render.Visibility); err != nil {
		errs = append(errs, err)
	}
	if _, err := logger.ParseLevel(c.Logging.Level); err != nil {
		errs = append(errs, err)
	}
	for i, o := range c.Objects {
		if o.Mesh == "" {
			errs = append(errs, fmt.Errorf("object %d (%q): mesh is required", i, o.Name))
		}
		if s := o.EffectiveScale(); s[0] != s[1] || s[1] != s[2] || s[0] < 0 {
			errs = append(errs, fmt.Errorf("object %d (%q): scale must be uniform and positive, got %v", i, o.Name, o.Scale))
		}
	}
	return errors.Join(errs...)
}

// EffectiveScale returns Scale with unset (zero) axes treated as 1.
// Shading assumes uniform scale, which Validate enforces.
func (o ObjectConfig) EffectiveScale() [3]float64 {
	s := o.Scale
	for i := range s {
		if s[i] == 0 {
			s[i] = 1
		}
	}
	return s
}
