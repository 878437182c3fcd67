package render

import (
	"image/color"

	"github.com/taigrr/facet/pkg/math3d"
)

// Surface is the 2D pixel target the rasterization stage draws on.
// Coordinates are in pixels with the origin at the top-left.
type Surface interface {
	DrawLine(p0, p1 math3d.Vec2, c Color, thickness int)
	FillPolygon(pts []math3d.Vec2, c Color)
	DrawCircle(center math3d.Vec2, radius int, c Color)
}

// Color is an alias for color.RGBA for convenience.
type Color = color.RGBA

// Colors for convenience
var (
	ColorBlack = color.RGBA{0, 0, 0, 255}
	ColorWhite = color.RGBA{255, 255, 255, 255}
	ColorRed   = color.RGBA{255, 0, 0, 255}
	ColorGreen = color.RGBA{0, 255, 0, 255}
	ColorBlue  = color.RGBA{0, 0, 255, 255}
	ColorGray  = color.RGBA{128, 128, 128, 255}

	// HighlightColor is used for debug overlays and outlines.
	HighlightColor = ColorWhite
)

// RGB creates an opaque color from RGB values.
func RGB(r, g, b uint8) color.RGBA {
	return color.RGBA{r, g, b, 255}
}
