package polyhedra

// sliceSide accumulates one half of a slice: its vertices, edges and faces
// plus the mapping from source vertex index to index in this half (-1 when the
// source vertex went to the other half).
type sliceSide struct {
	vertices []Vertex
	edges    []Edge
	faces    []Face
	mapping  []int
}

func newSliceSide(sourceVertices int) *sliceSide {
	s := &sliceSide{mapping: make([]int, sourceVertices)}
	for i := range s.mapping {
		s.mapping[i] = -1
	}
	return s
}

func (s *sliceSide) addVertex(v Vertex) int {
	s.vertices = append(s.vertices, v)
	return len(s.vertices) - 1
}

// addFace remaps a source face into this half. Faces with any vertex on the
// other side are left out.
func (s *sliceSide) addFace(f Face) {
	idx := make([]int, len(f.Indices))
	for i, src := range f.Indices {
		if s.mapping[src] < 0 {
			return
		}
		idx[i] = s.mapping[src]
	}
	s.faces = append(s.faces, Face{Indices: idx})
}

func (s *sliceSide) mesh() *Mesh {
	if len(s.vertices) == 0 {
		return nil
	}
	m := NewMesh(len(s.vertices), len(s.edges), len(s.faces))
	copy(m.Vertices, s.vertices)
	copy(m.Edges, s.edges)
	copy(m.Faces, s.faces)
	return m
}

// classify splits the source vertices by the sign of their plane value.
// Vertices on the plane (d == 0) go to part1.
func classify(m *Mesh, p Plane) (dist []float64, part1, part2 *sliceSide) {
	dist = make([]float64, len(m.Vertices))
	part1 = newSliceSide(len(m.Vertices))
	part2 = newSliceSide(len(m.Vertices))

	for i, v := range m.Vertices {
		dist[i] = p.Distance(v)
		if dist[i] >= 0 {
			part1.mapping[i] = part1.addVertex(v)
		} else {
			part2.mapping[i] = part2.addVertex(v)
		}
	}
	return dist, part1, part2
}

// Slice cuts m with the plane into part1 (plane value >= 0) and part2
// (plane value < 0). The source mesh is only read.
//
// Every edge that strictly crosses the plane contributes its intersection
// point to both parts; the crossing edge itself is not emitted in either part.
// Edges entirely on one side are re-emitted with remapped indices. Faces lying
// entirely in one part are carried over, but faces straddling the plane are
// dropped and no cap face is built over the cut, so the parts are open
// shells.
//
// A part with no vertices is returned as nil. Because on-plane vertices go
// to part1, a plane through many vertices can leave part2 nil even when it
// passes through the solid.
func Slice(m *Mesh, p Plane) (part1, part2 *Mesh) {
	dist, side1, side2 := classify(m, p)

	for _, e := range m.Edges {
		d1, d2 := dist[e.V1], dist[e.V2]

		if crosses(d1, d2) {
			t := d1 / (d1 - d2)
			point := m.Vertices[e.V1].Lerp(m.Vertices[e.V2], t)
			side1.addVertex(point)
			side2.addVertex(point)
			continue
		}

		switch {
		case d1 >= 0 && d2 >= 0:
			side1.edges = append(side1.edges, Edge{V1: side1.mapping[e.V1], V2: side1.mapping[e.V2]})
		case d1 < 0 && d2 < 0:
			side2.edges = append(side2.edges, Edge{V1: side2.mapping[e.V1], V2: side2.mapping[e.V2]})
		}
	}

	for _, f := range m.Faces {
		side1.addFace(f)
		side2.addFace(f)
	}

	return side1.mesh(), side2.mesh()
}
