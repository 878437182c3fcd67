package main

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"
	"github.com/taigrr/facet/internal/logger"
	"github.com/taigrr/facet/internal/scene"
	"github.com/taigrr/facet/pkg/render"
	"go.uber.org/zap"
)

var benchFrames int

var (
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true).MarginBottom(1)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(16)
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	graphStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("49")).Padding(1, 0)
)

var benchCmd = &cobra.Command{
	Use:   "bench",
	Short: "Time the render pipeline",
	Long: `Render the scene headless for a number of frames and report frame
times and face counts, with a plot of the frame time series.`,
	Args: cobra.NoArgs,
	RunE: runBench,
}

func init() {
	rootCmd.AddCommand(benchCmd)

	benchCmd.Flags().IntVarP(&benchFrames, "frames", "n", 300, "frames to render")
}

// benchResult summarizes a run of frames.
type benchResult struct {
	times []float64 // milliseconds per frame
	total render.FrameStats
	faces int
}

func runBench(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if err := initLogging(cfg, true); err != nil {
		return err
	}
	defer logger.Sync()

	sc, err := scene.Build(cfg, logger.Log)
	if err != nil {
		return err
	}

	res := benchScene(sc, max(benchFrames, 1))
	logger.Info("bench done",
		zap.Int("frames", len(res.times)),
		zap.Int("faces_drawn", res.total.FacesDrawn))

	fmt.Fprintln(cmd.OutOrStdout(), res.report(cfg.Display.Width, cfg.Display.Height))
	return nil
}

func benchScene(sc *scene.Scene, frames int) benchResult {
	res := benchResult{
		times: make([]float64, 0, frames),
		faces: sc.FaceCount(),
	}
	for range frames {
		start := time.Now()
		sc.Step()
		stats := sc.Frame()
		res.times = append(res.times, float64(time.Since(start).Microseconds())/1000)
		res.total.Add(stats)
	}
	return res
}

func (r benchResult) report(w, h int) string {
	sorted := slices.Clone(r.times)
	slices.Sort(sorted)
	n := len(sorted)

	var sum float64
	for _, t := range sorted {
		sum += t
	}
	mean := sum / float64(n)
	p95 := sorted[min(n-1, n*95/100)]

	var b strings.Builder
	b.WriteString(headerStyle.Render(fmt.Sprintf("facet bench: %d frames at %dx%d", n, w, h)))
	b.WriteString("\n")

	row := func(label, value string) {
		b.WriteString(labelStyle.Render(label) + valueStyle.Render(value) + "\n")
	}
	row("faces/frame", fmt.Sprintf("%d", r.faces))
	row("mean", fmt.Sprintf("%.3f ms (%.0f fps)", mean, perSecond(mean)))
	row("min", fmt.Sprintf("%.3f ms", sorted[0]))
	row("p95", fmt.Sprintf("%.3f ms", p95))
	row("max", fmt.Sprintf("%.3f ms", sorted[n-1]))
	row("drawn", fmt.Sprintf("%d", r.total.FacesDrawn))
	row("backfaced", fmt.Sprintf("%d", r.total.FacesBackfaced))
	row("clipped", fmt.Sprintf("%d", r.total.FacesClipped))
	row("objects culled", fmt.Sprintf("%d of %d", r.total.ObjectsCulled, r.total.Objects))

	graph := asciigraph.Plot(r.times,
		asciigraph.Height(10),
		asciigraph.Width(80),
		asciigraph.Caption("frame time (ms)"))
	b.WriteString(graphStyle.Render(graph))
	return b.String()
}

func perSecond(ms float64) float64 {
	if ms <= 0 {
		return 0
	}
	return 1000 / ms
}
