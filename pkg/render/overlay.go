package render

import "github.com/taigrr/facet/pkg/math3d"

const (
	vertexMarkerRadius = 6
	normalThickness    = 3
)

// drawVertexMarkers marks every screen vertex of an object.
func drawVertexMarkers(s Surface, screen []math3d.Vec2) {
	for _, p := range screen {
		s.DrawCircle(p, vertexMarkerRadius, HighlightColor)
	}
}

// drawFaceNormal draws the world normal of a face as a line from its
// centroid, projected without clipping.
func drawFaceNormal(s Surface, tri [3]math3d.Vec3, normal math3d.Vec3, viewMatrix math3d.Mat4, proj *Projection) {
	centroid := tri[0].Add(tri[1]).Add(tri[2]).Scale(1.0 / 3)
	p0 := ProjectPoint(centroid, viewMatrix, proj)
	p1 := ProjectPoint(centroid.Add(normal), viewMatrix, proj)
	s.DrawLine(p0, p1, HighlightColor, normalThickness)
}
