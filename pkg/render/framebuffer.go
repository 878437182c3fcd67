// Package render implements the per-frame flat-shaded pipeline: transform,
// visibility, culling, lighting and rasterization onto a Surface.
package render

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"math"
	"os"

	"github.com/taigrr/facet/pkg/math3d"
)

// Framebuffer is a 2D array of pixels that can be rendered to the terminal
// or saved as an image. It implements Surface.
type Framebuffer struct {
	Width  int          // Width in pixels (same as terminal columns)
	Height int          // Height in pixels (2x terminal rows due to half-blocks)
	Pixels []color.RGBA // Row-major pixel data
}

var _ Surface = (*Framebuffer)(nil)

// NewFramebuffer allocates a zeroed width x height buffer.
func NewFramebuffer(width, height int) *Framebuffer {
	return &Framebuffer{
		Width:  width,
		Height: height,
		Pixels: make([]color.RGBA, width*height),
	}
}

// Clear paints every pixel c.
func (fb *Framebuffer) Clear(c color.RGBA) {
	for i := range fb.Pixels {
		fb.Pixels[i] = c
	}
}

// SetPixel writes one pixel; writes outside the buffer are dropped.
func (fb *Framebuffer) SetPixel(x, y int, c color.RGBA) {
	if x < 0 || x >= fb.Width || y < 0 || y >= fb.Height {
		return
	}
	fb.Pixels[y*fb.Width+x] = c
}

// GetPixel reads one pixel, or the zero color outside the buffer.
func (fb *Framebuffer) GetPixel(x, y int) color.RGBA {
	if x < 0 || x >= fb.Width || y < 0 || y >= fb.Height {
		return color.RGBA{}
	}
	return fb.Pixels[y*fb.Width+x]
}

// DrawLine draws a line from p0 to p1 using Bresenham's algorithm, stamping
// a square brush of the given thickness at every step.
func (fb *Framebuffer) DrawLine(p0, p1 math3d.Vec2, c Color, thickness int) {
	pad := float64(thickness + 1)
	p0, p1, ok := clipLine(p0, p1, -pad, -pad, float64(fb.Width)+pad, float64(fb.Height)+pad)
	if !ok {
		return
	}
	x0, y0 := pixel(p0)
	x1, y1 := pixel(p1)

	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx := 1
	if x0 > x1 {
		sx = -1
	}
	sy := 1
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy

	for {
		fb.stamp(x0, y0, thickness, c)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// clipLine clips the segment p0-p1 to the given rectangle using the
// Liang-Barsky parametric test. ok is false when nothing remains or an
// endpoint is not finite.
func clipLine(p0, p1 math3d.Vec2, xmin, ymin, xmax, ymax float64) (math3d.Vec2, math3d.Vec2, bool) {
	if !finite(p0) || !finite(p1) {
		return p0, p1, false
	}
	d := p1.Sub(p0)
	t0, t1 := 0.0, 1.0
	edges := [4][2]float64{
		{-d.X, p0.X - xmin},
		{d.X, xmax - p0.X},
		{-d.Y, p0.Y - ymin},
		{d.Y, ymax - p0.Y},
	}
	for _, e := range edges {
		p, q := e[0], e[1]
		if p == 0 {
			if q < 0 {
				return p0, p1, false
			}
			continue
		}
		r := q / p
		if p < 0 {
			t0 = max(t0, r)
		} else {
			t1 = min(t1, r)
		}
		if t0 > t1 {
			return p0, p1, false
		}
	}
	return p0.Add(d.Scale(t0)), p0.Add(d.Scale(t1)), true
}

func finite(p math3d.Vec2) bool {
	return !math.IsNaN(p.X) && !math.IsInf(p.X, 0) && !math.IsNaN(p.Y) && !math.IsInf(p.Y, 0)
}

// stamp draws a size x size square roughly centered on (x, y).
func (fb *Framebuffer) stamp(x, y, size int, c color.RGBA) {
	if size <= 1 {
		fb.SetPixel(x, y, c)
		return
	}
	off := (size - 1) / 2
	fb.DrawRect(x-off, y-off, size, size, c)
}

// DrawRect fills the w x h rectangle at (x, y), clipped to the buffer.
func (fb *Framebuffer) DrawRect(x, y, w, h int, c color.RGBA) {
	for py := y; py < y+h; py++ {
		for px := x; px < x+w; px++ {
			fb.SetPixel(px, py, c)
		}
	}
}

// FillPolygon fills a convex polygon by fanning it into triangles around
// its first point. Either winding is accepted.
func (fb *Framebuffer) FillPolygon(pts []math3d.Vec2, c Color) {
	for i := 1; i+1 < len(pts); i++ {
		fb.fillTriangle(pts[0], pts[i], pts[i+1], c)
	}
}

// fillTriangle rasterizes a triangle with edge functions, sampling pixel
// centers. Degenerate triangles draw nothing.
func (fb *Framebuffer) fillTriangle(v0, v1, v2 math3d.Vec2, c Color) {
	if !finite(v0) || !finite(v1) || !finite(v2) {
		return
	}
	area2 := v1.Sub(v0).Cross(v2.Sub(v0))
	if area2 == 0 {
		return
	}

	// Bounding box (clamped to screen)
	w, h := float64(fb.Width-1), float64(fb.Height-1)
	minX := int(math.Max(0, math.Floor(min(v0.X, v1.X, v2.X))))
	maxX := int(math.Min(w, math.Ceil(max(v0.X, v1.X, v2.X))))
	minY := int(math.Max(0, math.Floor(min(v0.Y, v1.Y, v2.Y))))
	maxY := int(math.Min(h, math.Ceil(max(v0.Y, v1.Y, v2.Y))))
	if minX > maxX || minY > maxY {
		return
	}

	// Edge 0: v1 -> v2, Edge 1: v2 -> v0, Edge 2: v0 -> v1
	a0, b0, c0 := edgeCoeffs(v1, v2)
	a1, b1, c1 := edgeCoeffs(v2, v0)
	a2, b2, c2 := edgeCoeffs(v0, v1)

	// Flip the sign for clockwise input so inside is always >= 0.
	sign := 1.0
	if area2 < 0 {
		sign = -1
	}

	for y := minY; y <= maxY; y++ {
		py := float64(y) + 0.5
		row := y * fb.Width
		for x := minX; x <= maxX; x++ {
			px := float64(x) + 0.5
			w0 := sign * (a0*px + b0*py + c0)
			w1 := sign * (a1*px + b1*py + c1)
			w2 := sign * (a2*px + b2*py + c2)
			if w0 >= 0 && w1 >= 0 && w2 >= 0 {
				fb.Pixels[row+x] = c
			}
		}
	}
}

// edgeCoeffs returns A, B, C for the edge function A*x + B*y + C of p -> q.
// It is positive to the left of the edge, zero on it.
func edgeCoeffs(p, q math3d.Vec2) (a, b, c float64) {
	a = p.Y - q.Y
	b = q.X - p.X
	c = p.X*q.Y - q.X*p.Y
	return
}

// DrawCircle draws a filled circle.
func (fb *Framebuffer) DrawCircle(center math3d.Vec2, radius int, c Color) {
	if !finite(center) {
		return
	}
	cx, cy := pixel(center)
	r2 := radius * radius
	for dy := -radius; dy <= radius; dy++ {
		for dx := -radius; dx <= radius; dx++ {
			if dx*dx+dy*dy <= r2 {
				fb.SetPixel(cx+dx, cy+dy, c)
			}
		}
	}
}

// pixel rounds a finite screen point to the nearest pixel, clamping far
// off-screen values so SetPixel drops them.
func pixel(p math3d.Vec2) (int, int) {
	const lim = math.MaxInt32
	return int(math.Round(math.Max(-lim, math.Min(lim, p.X)))),
		int(math.Round(math.Max(-lim, math.Min(lim, p.Y))))
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// ToImage copies the pixels into an image.RGBA.
func (fb *Framebuffer) ToImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, fb.Width, fb.Height))
	for y := 0; y < fb.Height; y++ {
		for x := 0; x < fb.Width; x++ {
			img.SetRGBA(x, y, fb.Pixels[y*fb.Width+x])
		}
	}
	return img
}

// WritePNG encodes the buffer to w as a PNG.
func (fb *Framebuffer) WritePNG(w io.Writer) error {
	return png.Encode(w, fb.ToImage())
}

// SavePNG writes the buffer to path as a PNG. A failed close is reported
// like a failed write.
func (fb *Framebuffer) SavePNG(path string) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close %s: %w", path, cerr)
		}
	}()
	if err := fb.WritePNG(f); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
