package render

import (
	"fmt"

	"github.com/taigrr/facet/pkg/math3d"
)

const (
	wireThickness    = 2
	outlineThickness = 1
)

// DrawFace rasterizes one triangle in the given mode. An unknown mode draws
// nothing and returns ErrUnknownMode.
func DrawFace(s Surface, mode RenderMode, pts [3]math3d.Vec2, base, shaded Color) error {
	if !mode.Valid() {
		return fmt.Errorf("%w: %d", ErrUnknownMode, int(mode))
	}
	modeTable[mode].draw(s, pts, base, shaded)
	return nil
}

func drawWireframe(s Surface, pts [3]math3d.Vec2, base, _ Color) {
	drawEdges(s, pts, base, wireThickness)
}

func drawShaded(s Surface, pts [3]math3d.Vec2, _, shaded Color) {
	s.FillPolygon(pts[:], shaded)
}

func drawShadedOutline(s Surface, pts [3]math3d.Vec2, _, shaded Color) {
	s.FillPolygon(pts[:], shaded)
	drawEdges(s, pts, HighlightColor, outlineThickness)
}

func drawEdges(s Surface, pts [3]math3d.Vec2, c Color, thickness int) {
	s.DrawLine(pts[0], pts[1], c, thickness)
	s.DrawLine(pts[1], pts[2], c, thickness)
	s.DrawLine(pts[2], pts[0], c, thickness)
}
