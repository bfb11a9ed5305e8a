package polyhedra

import "math"

// TetrahedronVolume is the unsigned volume of the tetrahedron v0 v1 v2 v3: the
// absolute scalar triple product divided by six.
func TetrahedronVolume(v0, v1, v2, v3 Vertex) float64 {
	a := v1.Sub(v0).Vec()
	b := v2.Sub(v0).Vec()
	c := v3.Sub(v0).Vec()
	return math.Abs(a.Dot(b.Cross(c))) / 6.0
}

// Volume sums, for every face, the unsigned volumes of the tetrahedra joining
// the origin to each triangle of the face's fan (vertices 0, i, i+1).
//
// The result is the enclosed volume only for a closed solid with planar,
// consistently wound faces where no two fan tetrahedra overlap, for example a
// convex solid containing the origin. Otherwise it is the total unsigned
// tetrahedral contribution and should be read as such.
func Volume(m *Mesh) float64 {
	var origin Vertex
	total := 0.0
	for _, f := range m.Faces {
		for i := 1; i < len(f.Indices)-1; i++ {
			v0 := m.Vertices[f.Indices[0]]
			v1 := m.Vertices[f.Indices[i]]
			v2 := m.Vertices[f.Indices[i+1]]
			total += TetrahedronVolume(origin, v0, v1, v2)
		}
	}
	return total
}

// FaceArea fan-triangulates the face from its first vertex and sums half the
// cross-product magnitude of each triangle. Faces with fewer than three
// vertices have zero area.
func FaceArea(m *Mesh, f Face) float64 {
	area := 0.0
	for i := 1; i < len(f.Indices)-1; i++ {
		v0 := m.Vertices[f.Indices[0]]
		e1 := m.Vertices[f.Indices[i]].Sub(v0).Vec()
		e2 := m.Vertices[f.Indices[i+1]].Sub(v0).Vec()
		area += e1.Cross(e2).Len() / 2.0
	}
	return area
}

func SurfaceArea(m *Mesh) float64 {
	total := 0.0
	for _, f := range m.Faces {
		total += FaceArea(m, f)
	}
	return total
}

// Measurements gathers the figures reported for a mesh.
type Measurements struct {
	Volume      float64
	SurfaceArea float64
	Centroid    Vertex
	Extents     Vertex
	Vertices    int
	Edges       int
	Faces       int
}

// Measure computes every measurement at once. The centroid is left at zero
// for an empty mesh.
func Measure(m *Mesh) Measurements {
	out := Measurements{
		Volume:      Volume(m),
		SurfaceArea: SurfaceArea(m),
		Vertices:    m.VertexCount(),
		Edges:       m.EdgeCount(),
		Faces:       m.FaceCount(),
	}
	if c, err := Centroid(m); err == nil {
		out.Centroid = c
	}
	x, y, z := Extents(m)
	out.Extents = NewVertex(x, y, z)
	return out
}
