package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/taigrr/facet/internal/config"
	"github.com/taigrr/facet/internal/logger"
)

const version = "0.1.0"

var (
	cfgFile     string
	logLevel    string
	logFile     string
	debug       bool
	width       int
	height      int
	fps         int
	visibility  string
	frustumCull bool
)

var rootCmd = &cobra.Command{
	Use:   "facet",
	Short: "Flat-shaded software 3D renderer",
	Long: `facet draws scenes of triangle meshes with flat shading, wireframe
or outlined faces. Scenes come from a YAML config listing builtin
primitives or GLTF/GLB models.`,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&cfgFile, "config", "", "config file (default ./facet.yaml, then the user config dir)")
	pf.StringVar(&logLevel, "log-level", "", "log level: debug, info, warn, error")
	pf.StringVar(&logFile, "log-file", "", "also write JSON logs to this file")
	pf.BoolVar(&debug, "debug", false, "shorthand for --log-level=debug")
	pf.IntVar(&width, "width", 0, "framebuffer width in pixels (headless commands)")
	pf.IntVar(&height, "height", 0, "framebuffer height in pixels (headless commands)")
	pf.IntVar(&fps, "fps", 0, "frames per second")
	pf.StringVar(&visibility, "visibility", "", "clipped face detection: tagged or sentinel")
	pf.BoolVar(&frustumCull, "frustum-cull", false, "skip objects outside the view frustum")
}

// loadConfig applies defaults < file < flags and validates the result.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("width") {
		cfg.Display.Width = width
	}
	if flags.Changed("height") {
		cfg.Display.Height = height
	}
	if flags.Changed("fps") {
		cfg.Display.FPS = fps
	}
	if flags.Changed("visibility") {
		cfg.Render.Visibility = visibility
	}
	if flags.Changed("frustum-cull") {
		cfg.Render.FrustumCull = frustumCull
	}
	if flags.Changed("log-level") {
		cfg.Logging.Level = logLevel
	}
	if debug {
		cfg.Logging.Level = "debug"
	}
	if flags.Changed("log-file") {
		cfg.Logging.LogFile = logFile
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// initLogging sets up the global logger. Console output is off while the
// terminal viewer owns the screen.
func initLogging(cfg *config.Config, console bool) error {
	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile, console); err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	return nil
}
