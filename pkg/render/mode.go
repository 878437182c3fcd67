package render

import (
	"errors"
	"fmt"
	"strings"

	"github.com/taigrr/facet/pkg/math3d"
)

// ErrUnknownMode is returned for a RenderMode outside the known set.
var ErrUnknownMode = errors.New("unknown render mode")

// RenderMode selects how a display-list bucket rasterizes its faces.
type RenderMode int

const (
	Wireframe RenderMode = iota
	Shaded
	ShadedOutline

	numModes
)

// faceDrawer draws one visible, front-facing triangle. base is the face's
// own color and shaded the lit one.
type faceDrawer func(s Surface, pts [3]math3d.Vec2, base, shaded Color)

// modeTable maps every RenderMode to its name and rasterizer. Register and
// the per-face dispatch both go through it.
var modeTable = [numModes]struct {
	name string
	draw faceDrawer
}{
	Wireframe:     {"wireframe", drawWireframe},
	Shaded:        {"shaded", drawShaded},
	ShadedOutline: {"shaded-outline", drawShadedOutline},
}

// Valid reports whether m is one of the known modes.
func (m RenderMode) Valid() bool {
	return m >= 0 && m < numModes
}

func (m RenderMode) String() string {
	if !m.Valid() {
		return fmt.Sprintf("RenderMode(%d)", int(m))
	}
	return modeTable[m].name
}

// ParseRenderMode parses a mode name, case-insensitively. Underscores are
// accepted in place of dashes.
func ParseRenderMode(s string) (RenderMode, error) {
	name := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "_", "-")
	for m := range numModes {
		if modeTable[m].name == name {
			return m, nil
		}
	}
	return -1, fmt.Errorf("%w: %q", ErrUnknownMode, s)
}

// Modes returns every known mode in bucket order.
func Modes() []RenderMode {
	out := make([]RenderMode, numModes)
	for m := range numModes {
		out[m] = m
	}
	return out
}
