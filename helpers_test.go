package polyhedra

import (
	"math"
	"testing"
)

const float64EqualityThreshold = 1e-6

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) <= float64EqualityThreshold
}

func vertexAlmostEqual(a, b Vertex) bool {
	return almostEqual(a.X, b.X) && almostEqual(a.Y, b.Y) && almostEqual(a.Z, b.Z)
}

func assertVerticesAlmostEqual(t *testing.T, got, want []Vertex) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("got %d vertices, want %d", len(got), len(want))
	}
	for i := range got {
		if !vertexAlmostEqual(got[i], want[i]) {
			t.Errorf("vertex %d = %v, want %v", i, got[i], want[i])
		}
	}
}

// unitCube is the cube with corners at (+-0.5, +-0.5, +-0.5), faces wound
// counter-clockwise seen from outside.
func unitCube() *Mesh {
	m := NewMesh(8, 12, 6)
	m.Vertices = []Vertex{
		{-0.5, -0.5, -0.5}, // 0
		{0.5, -0.5, -0.5},  // 1
		{0.5, 0.5, -0.5},   // 2
		{-0.5, 0.5, -0.5},  // 3
		{-0.5, -0.5, 0.5},  // 4
		{0.5, -0.5, 0.5},   // 5
		{0.5, 0.5, 0.5},    // 6
		{-0.5, 0.5, 0.5},   // 7
	}
	m.Edges = []Edge{
		{0, 1}, {1, 2}, {2, 3}, {3, 0},
		{4, 5}, {5, 6}, {6, 7}, {7, 4},
		{0, 4}, {1, 5}, {2, 6}, {3, 7},
	}
	m.Faces = []Face{
		NewFace(0, 3, 2, 1), // z-
		NewFace(4, 5, 6, 7), // z+
		NewFace(0, 1, 5, 4), // y-
		NewFace(2, 3, 7, 6), // y+
		NewFace(0, 4, 7, 3), // x-
		NewFace(1, 2, 6, 5), // x+
	}
	return m
}

// tetrahedron is the corner tetrahedron spanning the unit axes.
func tetrahedron() *Mesh {
	m := NewMesh(4, 6, 4)
	m.Vertices = []Vertex{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}, {0, 0, 1}}
	m.Edges = []Edge{{0, 1}, {0, 2}, {0, 3}, {1, 2}, {1, 3}, {2, 3}}
	m.Faces = []Face{
		NewFace(0, 2, 1),
		NewFace(0, 1, 3),
		NewFace(0, 3, 2),
		NewFace(1, 2, 3),
	}
	return m
}
