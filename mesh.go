package polyhedra

import "fmt"

// Edge joins two vertices of the owning mesh. The pair is unordered.
type Edge struct {
	V1 int
	V2 int
}

// Face is a planar polygon given by vertex indices. The index order sets the
// winding used by the area and volume calculations.
type Face struct {
	Indices []int
}

func NewFace(indices ...int) Face {
	idx := make([]int, len(indices))
	copy(idx, indices)
	return Face{Indices: idx}
}

func (f Face) VertexCount() int {
	return len(f.Indices)
}

// Mesh is a polyhedron. It exclusively owns its vertex, edge and face
// collections, and every face owns its own index slice; no two meshes share
// storage.
type Mesh struct {
	Vertices []Vertex
	Edges    []Edge
	Faces    []Face
}

// NewMesh allocates a mesh with exactly the requested number of vertex and
// edge slots and face descriptors. Faces start without indices.
func NewMesh(vertexCount, edgeCount, faceCount int) *Mesh {
	return &Mesh{
		Vertices: make([]Vertex, vertexCount),
		Edges:    make([]Edge, edgeCount),
		Faces:    make([]Face, faceCount),
	}
}

func (m *Mesh) VertexCount() int {
	return len(m.Vertices)
}

func (m *Mesh) EdgeCount() int {
	return len(m.Edges)
}

func (m *Mesh) FaceCount() int {
	return len(m.Faces)
}

func (m *Mesh) IsEmpty() bool {
	return len(m.Vertices) == 0
}

// Reset drops every collection the mesh owns.
func (m *Mesh) Reset() {
	m.Vertices = nil
	m.Edges = nil
	m.Faces = nil
}

// Copy returns a deep copy, including each face's index slice.
func (m *Mesh) Copy() *Mesh {
	c := NewMesh(len(m.Vertices), len(m.Edges), len(m.Faces))
	copy(c.Vertices, m.Vertices)
	copy(c.Edges, m.Edges)
	for i, f := range m.Faces {
		if f.Indices != nil {
			c.Faces[i] = NewFace(f.Indices...)
		}
	}
	return c
}

// Validate checks that every edge and face refers to existing vertices.
// The geometric operations never call it; loaders do.
func (m *Mesh) Validate() error {
	n := len(m.Vertices)
	for i, e := range m.Edges {
		if e.V1 < 0 || e.V1 >= n || e.V2 < 0 || e.V2 >= n {
			return fmt.Errorf("edge %d (%d, %d) with %d vertices: %w", i, e.V1, e.V2, n, ErrIndexOutOfRange)
		}
		if e.V1 == e.V2 {
			return fmt.Errorf("edge %d (%d, %d): %w", i, e.V1, e.V2, ErrDegenerateEdge)
		}
	}
	for i, f := range m.Faces {
		if len(f.Indices) < 3 {
			return fmt.Errorf("face %d has %d vertices: %w", i, len(f.Indices), ErrDegenerateFace)
		}
		for _, idx := range f.Indices {
			if idx < 0 || idx >= n {
				return fmt.Errorf("face %d index %d with %d vertices: %w", i, idx, n, ErrIndexOutOfRange)
			}
		}
	}
	return nil
}

// EdgesFromFaces replaces the edge list with the unique undirected edges
// found on the face boundaries, in order of first appearance.
func (m *Mesh) EdgesFromFaces() {
	seen := make(map[Edge]bool)
	edges := make([]Edge, 0, len(m.Edges))
	for _, f := range m.Faces {
		n := len(f.Indices)
		if n < 2 {
			continue
		}
		for i := 0; i < n; i++ {
			a, b := f.Indices[i], f.Indices[(i+1)%n]
			if a == b {
				continue
			}
			key := Edge{V1: min(a, b), V2: max(a, b)}
			if seen[key] {
				continue
			}
			seen[key] = true
			edges = append(edges, Edge{V1: a, V2: b})
		}
	}
	m.Edges = edges
}
