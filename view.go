package polyhedra

import (
	"fmt"
	"iter"
	"strings"
)

// View is one of the three orthographic views onto a coordinate plane.
type View int

const (
	Front View = iota // YZ plane, x dropped
	Top               // XZ plane, y dropped
	Side              // XY plane, z dropped
)

// Views lists the views in the order reconstruction consumes them.
var Views = []View{Front, Top, Side}

func (v View) String() string {
	switch v {
	case Front:
		return "Front View (YZ-plane)"
	case Top:
		return "Top View (XZ-plane)"
	case Side:
		return "Side View (XY-plane)"
	}
	return fmt.Sprintf("View(%d)", int(v))
}

// Letter is the single-letter tag used in view files.
func (v View) Letter() string {
	switch v {
	case Front:
		return "f"
	case Top:
		return "t"
	case Side:
		return "s"
	}
	return "?"
}

// ParseView accepts a view letter or name.
func ParseView(s string) (View, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "f", "front":
		return Front, nil
	case "t", "top":
		return Top, nil
	case "s", "side":
		return Side, nil
	}
	return 0, fmt.Errorf("%q: %w", s, ErrUnknownView)
}

// Project drops the coordinate the view looks along.
func (v View) Project(p Vertex) Point2 {
	switch v {
	case Front:
		return Point2{X: p.Y, Y: p.Z}
	case Top:
		return Point2{X: p.X, Y: p.Z}
	default:
		return Point2{X: p.X, Y: p.Y}
	}
}

// Lift puts a view point back into 3D with the dropped coordinate set to zero.
func (v View) Lift(p Point2) Vertex {
	switch v {
	case Front:
		return Vertex{X: 0, Y: p.X, Z: p.Y}
	case Top:
		return Vertex{X: p.X, Y: 0, Z: p.Y}
	default:
		return Vertex{X: p.X, Y: p.Y, Z: 0}
	}
}

// Projection is a mesh seen from one view: lazily projected points plus the
// mesh's edge list, ready for a renderer.
type Projection struct {
	View  View
	Edges []Edge
	mesh  *Mesh
}

// Project returns the projection of m onto the view's coordinate plane. The
// points are computed on iteration, so the projection reflects the mesh as it
// is at that time.
func Project(m *Mesh, v View) Projection {
	return Projection{View: v, Edges: m.Edges, mesh: m}
}

// Points yields each vertex index with its projected point.
func (p Projection) Points() iter.Seq2[int, Point2] {
	return func(yield func(int, Point2) bool) {
		for i, vert := range p.mesh.Vertices {
			if !yield(i, p.View.Project(vert)) {
				return
			}
		}
	}
}

func (p Projection) Len() int {
	return len(p.mesh.Vertices)
}

// Collect materialises the projected points.
func (p Projection) Collect() []Point2 {
	pts := make([]Point2, 0, p.Len())
	for _, pt := range p.Points() {
		pts = append(pts, pt)
	}
	return pts
}
