// Package render draws meshes and their orthographic projections in a window
// using ebiten. It only turns geometry into segments, shaded faces and
// pixels; all geometry comes from package polyhedra.
package render

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/smasonuk/polyhedra"
)

// Segment is a line in screen coordinates.
type Segment struct {
	X1, Y1 float32
	X2, Y2 float32
}

// Scene produces the line segments to draw for a window of the given size.
type Scene interface {
	Segments(width, height int) []Segment
}

// Orbiter is a scene that can be turned by dragging the mouse.
type Orbiter interface {
	Orbit(dx, dy float64)
}

const (
	DefaultFocalLength = 500.0
	DefaultDistance    = 5.0
	orbitSensitivity   = 0.01
)

// MeshScene is a perspective wireframe of a mesh's edges, with the camera on
// the -z side looking down +z.
type MeshScene struct {
	Mesh        *polyhedra.Mesh
	FocalLength float64
	Distance    float64

	// yaw and pitch turn the mesh about its centroid before projecting.
	yaw   float64
	pitch float64
}

// NewMeshScene shows a copy of m moved so its bounding box is centred on the
// origin, in front of the camera. m itself is not changed.
func NewMeshScene(m *polyhedra.Mesh) *MeshScene {
	if m != nil {
		m = m.Copy()
		polyhedra.CentreOnOrigin(m)
	}
	return &MeshScene{
		Mesh:        m,
		FocalLength: DefaultFocalLength,
		Distance:    DefaultDistance,
	}
}

func (s *MeshScene) Orbit(dx, dy float64) {
	s.yaw += dx * orbitSensitivity
	s.pitch += dy * orbitSensitivity
}

func (s *MeshScene) orbitMatrix() mgl64.Mat4 {
	if s.yaw == 0 && s.pitch == 0 {
		return mgl64.Ident4()
	}
	c, err := polyhedra.Centroid(s.Mesh)
	if err != nil {
		return mgl64.Ident4()
	}
	return mgl64.Translate3D(c.X, c.Y, c.Z).
		Mul4(mgl64.HomogRotate3DY(s.yaw)).
		Mul4(mgl64.HomogRotate3DX(s.pitch)).
		Mul4(mgl64.Translate3D(-c.X, -c.Y, -c.Z))
}

// PerspectivePoint maps v onto the screen: x' = f*x/(z+d), y' = f*y/(z+d),
// offset to the centre of a width x height window. ok is false for points at
// or behind the camera.
func PerspectivePoint(v polyhedra.Vertex, focal, distance float64, width, height int) (x, y float32, ok bool) {
	depth := v.Z + distance
	if depth <= 0 {
		return 0, 0, false
	}
	sx := focal*v.X/depth + float64(width)/2
	sy := focal*v.Y/depth + float64(height)/2
	return float32(sx), float32(sy), true
}

func (s *MeshScene) Segments(width, height int) []Segment {
	if s.Mesh == nil {
		return nil
	}

	orbit := s.orbitMatrix()
	screenX := make([]float32, len(s.Mesh.Vertices))
	screenY := make([]float32, len(s.Mesh.Vertices))
	visible := make([]bool, len(s.Mesh.Vertices))
	for i, v := range s.Mesh.Vertices {
		p := polyhedra.VertexFromVec(mgl64.TransformCoordinate(v.Vec(), orbit))
		screenX[i], screenY[i], visible[i] = PerspectivePoint(p, s.FocalLength, s.Distance, width, height)
	}

	segs := make([]Segment, 0, len(s.Mesh.Edges))
	for _, e := range s.Mesh.Edges {
		if !visible[e.V1] || !visible[e.V2] {
			continue
		}
		segs = append(segs, Segment{
			X1: screenX[e.V1], Y1: screenY[e.V1],
			X2: screenX[e.V2], Y2: screenY[e.V2],
		})
	}
	return segs
}

// ProjectionScene draws a 2D projection scaled to fit the window, with the
// projected y axis pointing up.
type ProjectionScene struct {
	Projection polyhedra.Projection
	Margin     float64
}

func NewProjectionScene(p polyhedra.Projection) *ProjectionScene {
	return &ProjectionScene{Projection: p, Margin: 40}
}

// fitPoints scales and translates pts into the window, keeping the aspect
// ratio. A single point or a set with no extent lands in the centre.
func fitPoints(pts []polyhedra.Point2, width, height int, margin float64) (xs, ys []float32) {
	xs = make([]float32, len(pts))
	ys = make([]float32, len(pts))
	if len(pts) == 0 {
		return xs, ys
	}

	minX, maxX := pts[0].X, pts[0].X
	minY, maxY := pts[0].Y, pts[0].Y
	for _, p := range pts[1:] {
		minX, maxX = min(minX, p.X), max(maxX, p.X)
		minY, maxY = min(minY, p.Y), max(maxY, p.Y)
	}

	availW := float64(width) - 2*margin
	availH := float64(height) - 2*margin
	spanX, spanY := maxX-minX, maxY-minY

	scale := 1.0
	switch {
	case spanX > 0 && spanY > 0:
		scale = min(availW/spanX, availH/spanY)
	case spanX > 0:
		scale = availW / spanX
	case spanY > 0:
		scale = availH / spanY
	}

	midX, midY := (minX+maxX)/2, (minY+maxY)/2
	for i, p := range pts {
		xs[i] = float32(float64(width)/2 + (p.X-midX)*scale)
		ys[i] = float32(float64(height)/2 - (p.Y-midY)*scale)
	}
	return xs, ys
}

func (s *ProjectionScene) Segments(width, height int) []Segment {
	xs, ys := fitPoints(s.Projection.Collect(), width, height, s.Margin)

	segs := make([]Segment, 0, len(s.Projection.Edges))
	for _, e := range s.Projection.Edges {
		segs = append(segs, Segment{X1: xs[e.V1], Y1: ys[e.V1], X2: xs[e.V2], Y2: ys[e.V2]})
	}
	return segs
}
