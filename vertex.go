package polyhedra

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

type Vertex struct {
	X float64
	Y float64
	Z float64
}

func NewVertex(x, y, z float64) Vertex {
	return Vertex{X: x, Y: y, Z: z}
}

func VertexFromVec(v mgl64.Vec3) Vertex {
	return Vertex{X: v[0], Y: v[1], Z: v[2]}
}

// Vec converts the vertex into a mathgl vector for the vector algebra helpers.
func (v Vertex) Vec() mgl64.Vec3 {
	return mgl64.Vec3{v.X, v.Y, v.Z}
}

func (v Vertex) Add(o Vertex) Vertex {
	return Vertex{X: v.X + o.X, Y: v.Y + o.Y, Z: v.Z + o.Z}
}

func (v Vertex) Sub(o Vertex) Vertex {
	return Vertex{X: v.X - o.X, Y: v.Y - o.Y, Z: v.Z - o.Z}
}

func (v Vertex) Mul(s float64) Vertex {
	return Vertex{X: v.X * s, Y: v.Y * s, Z: v.Z * s}
}

// Lerp returns the point a fraction t of the way from v to o.
func (v Vertex) Lerp(o Vertex, t float64) Vertex {
	return Vertex{
		X: v.X + t*(o.X-v.X),
		Y: v.Y + t*(o.Y-v.Y),
		Z: v.Z + t*(o.Z-v.Z),
	}
}

// Near reports whether every coordinate of v is strictly within tol of o.
func (v Vertex) Near(o Vertex, tol float64) bool {
	return math.Abs(v.X-o.X) < tol &&
		math.Abs(v.Y-o.Y) < tol &&
		math.Abs(v.Z-o.Z) < tol
}

func (v Vertex) String() string {
	return fmt.Sprintf("(%f, %f, %f)", v.X, v.Y, v.Z)
}

// Point2 is a vertex projected onto one of the coordinate planes.
type Point2 struct {
	X float64
	Y float64
}

func (p Point2) String() string {
	return fmt.Sprintf("(%f, %f)", p.X, p.Y)
}
