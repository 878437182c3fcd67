package main

import (
	"context"
	"fmt"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/lipgloss"
	uv "github.com/charmbracelet/ultraviolet"
	"github.com/spf13/cobra"
	"github.com/taigrr/facet/internal/logger"
	"github.com/taigrr/facet/internal/scene"
	"github.com/taigrr/facet/pkg/render"
	"go.uber.org/zap"
)

const (
	moveStep = 0.25 // world units per key press
	turnStep = 0.05 // radians per key press
)

var viewCmd = &cobra.Command{
	Use:   "view",
	Short: "Live terminal viewer",
	Long: `Render the scene live in the terminal with half-block pixels.

Controls:
  W/S         - Move forward/back
  A/D         - Strafe left/right
  Arrows      - Turn the camera
  PgUp/PgDn   - Move up/down
  Space       - Random spin impulse
  R           - Reset object motion
  P           - Pause animation
  ?           - Toggle HUD
  Esc/Q       - Quit`,
	Args: cobra.NoArgs,
	RunE: runView,
}

func init() {
	rootCmd.AddCommand(viewCmd)
}

var (
	hudStyle  = lipgloss.NewStyle().Background(lipgloss.Color("0")).Foreground(lipgloss.Color("82"))
	hintStyle = lipgloss.NewStyle().Background(lipgloss.Color("0")).Foreground(lipgloss.Color("242"))
)

// hud tracks the frame rate and the last frame's counts.
type hud struct {
	show      bool
	fps       float64
	fpsFrames int
	fpsTime   time.Time
	stats     render.FrameStats
}

func (h *hud) update(stats render.FrameStats) {
	h.stats = stats
	h.fpsFrames++
	elapsed := time.Since(h.fpsTime)
	if elapsed >= time.Second {
		h.fps = float64(h.fpsFrames) / elapsed.Seconds()
		h.fpsFrames = 0
		h.fpsTime = time.Now()
	}
}

func (h *hud) draw(scr uv.Screen, cols, rows int) {
	if !h.show || rows < 2 {
		return
	}
	top := hudStyle.Render(fmt.Sprintf(" %.0f FPS  %d drawn  %d backfaced  %d clipped  %d/%d objects culled ",
		h.fps, h.stats.FacesDrawn, h.stats.FacesBackfaced, h.stats.FacesClipped,
		h.stats.ObjectsCulled, h.stats.Objects))
	uv.NewStyledString(top).Draw(scr, uv.Rect(0, 0, cols, 1))

	hint := hintStyle.Render(" WASD move  arrows turn  space spin  p pause  ? hud  esc quit ")
	uv.NewStyledString(hint).Draw(scr, uv.Rect(0, rows-1, cols, 1))
}

// viewer owns the terminal loop. Events and frames are handled on one
// goroutine so the scene is never touched concurrently.
type viewer struct {
	term   *uv.Terminal
	scene  *scene.Scene
	hud    hud
	log    *zap.Logger
	cols   int
	rows   int
	paused bool
}

func runView(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if err := initLogging(cfg, false); err != nil {
		return err
	}
	defer logger.Sync()
	log := logger.Named("view")

	term := uv.DefaultTerminal()
	cols, rows, err := term.GetSize()
	if err != nil {
		return fmt.Errorf("get terminal size: %w", err)
	}
	cfg.Display.Width, cfg.Display.Height = render.FramebufferSize(cols, rows)

	sc, err := scene.Build(cfg, logger.Log)
	if err != nil {
		return err
	}

	if err := term.Start(); err != nil {
		return fmt.Errorf("start terminal: %w", err)
	}
	term.EnterAltScreen()
	term.HideCursor()
	term.Resize(cols, rows)

	v := &viewer{
		term:  term,
		scene: sc,
		hud:   hud{show: true, fpsTime: time.Now()},
		log:   log,
		cols:  cols,
		rows:  rows,
	}
	defer v.cleanup()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigChan)
	go func() {
		select {
		case <-sigChan:
			cancel()
		case <-ctx.Done():
		}
	}()

	log.Info("viewer started",
		zap.Int("cols", cols), zap.Int("rows", rows),
		zap.Int("objects", len(sc.Objects)), zap.Int("faces", sc.FaceCount()))
	return v.loop(ctx, cfg.Display.FPS)
}

func (v *viewer) loop(ctx context.Context, fps int) error {
	ticker := time.NewTicker(time.Second / time.Duration(fps))
	defer ticker.Stop()

	events := v.term.Events()
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-events:
			if !ok || v.handle(ev) {
				return nil
			}
		case <-ticker.C:
			if err := v.frame(); err != nil {
				return err
			}
		}
	}
}

// handle applies one input event and reports whether to quit.
func (v *viewer) handle(ev uv.Event) bool {
	cam := v.scene.Camera
	switch ev := ev.(type) {
	case uv.WindowSizeEvent:
		v.cols, v.rows = ev.Width, ev.Height
		v.term.Erase()
		v.term.Resize(v.cols, v.rows)
		v.scene.Resize(render.FramebufferSize(v.cols, v.rows))

	case uv.KeyPressEvent:
		switch {
		case ev.MatchString("escape", "q", "ctrl+c"):
			return true
		case ev.MatchString("w"):
			cam.MoveForward(moveStep)
		case ev.MatchString("s"):
			cam.MoveForward(-moveStep)
		case ev.MatchString("a"):
			cam.MoveRight(-moveStep)
		case ev.MatchString("d"):
			cam.MoveRight(moveStep)
		case ev.MatchString("pgup"):
			cam.MoveUp(moveStep)
		case ev.MatchString("pgdown"):
			cam.MoveUp(-moveStep)
		case ev.MatchString("up"):
			cam.Rotate(turnStep, 0, 0)
		case ev.MatchString("down"):
			cam.Rotate(-turnStep, 0, 0)
		case ev.MatchString("left"):
			cam.Rotate(0, turnStep, 0)
		case ev.MatchString("right"):
			cam.Rotate(0, -turnStep, 0)
		case ev.MatchString("space"):
			v.scene.Nudge(
				(rand.Float64()-0.5)*0.3,
				(rand.Float64()-0.5)*0.3,
				(rand.Float64()-0.5)*0.3,
			)
		case ev.MatchString("r"):
			v.scene.ResetMotion()
		case ev.MatchString("p"):
			v.paused = !v.paused
		case ev.MatchString("?", "shift+/"):
			v.hud.show = !v.hud.show
		}
	}
	return false
}

func (v *viewer) frame() error {
	if !v.paused {
		v.scene.Step()
	}
	stats := v.scene.Frame()
	v.hud.update(stats)

	v.scene.FB.Draw(v.term, uv.Rect(0, 0, v.cols, v.rows))
	v.hud.draw(v.term, v.cols, v.rows)
	if err := v.term.Display(); err != nil {
		return fmt.Errorf("display: %w", err)
	}
	return nil
}

func (v *viewer) cleanup() {
	v.term.ExitAltScreen()
	v.term.ShowCursor()
	if err := v.term.Shutdown(context.Background()); err != nil {
		v.log.Warn("terminal shutdown", zap.Error(err))
	}
}
