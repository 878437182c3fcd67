package render

import (
	"fmt"

	"github.com/taigrr/facet/pkg/math3d"
)

// ClipState records which unit-cube components of a vertex fell outside
// [-1, 1] and were zeroed.
type ClipState uint8

const (
	ClipX ClipState = 1 << iota
	ClipY
	ClipZ
)

// FaceVisible rejects a face when any vertex had x or y clipped. A clipped z
// alone never moves the vertex on screen, so it does not reject.
func FaceVisible(states [3]ClipState) bool {
	return (states[0]|states[1]|states[2])&(ClipX|ClipY) == 0
}

// AreAllVisible reports false if any screen coordinate equals the half
// width or half height exactly, which is where a zeroed component lands.
func AreAllVisible(verts [3]math3d.Vec2, halfWidth, halfHeight float64) bool {
	vals := [6]float64{
		verts[0].X, verts[0].Y,
		verts[1].X, verts[1].Y,
		verts[2].X, verts[2].Y,
	}
	hit := false
	for _, v := range vals {
		hit = hit || v == halfWidth || v == halfHeight
	}
	return !hit
}

// VisibilityMode selects how faces with clipped vertices are detected.
type VisibilityMode int

const (
	// VisibilityTagged uses the ClipState recorded by the clip step.
	VisibilityTagged VisibilityMode = iota
	// VisibilitySentinel compares screen coordinates against the half
	// dimensions. A vertex that legitimately projects onto the screen
	// center lines is rejected too.
	VisibilitySentinel
)

func (m VisibilityMode) String() string {
	switch m {
	case VisibilityTagged:
		return "tagged"
	case VisibilitySentinel:
		return "sentinel"
	default:
		return fmt.Sprintf("VisibilityMode(%d)", int(m))
	}
}

// ParseVisibilityMode parses "tagged" or "sentinel".
func ParseVisibilityMode(s string) (VisibilityMode, error) {
	switch s {
	case "tagged", "":
		return VisibilityTagged, nil
	case "sentinel":
		return VisibilitySentinel, nil
	default:
		return VisibilityTagged, fmt.Errorf("unknown visibility mode %q", s)
	}
}
