package polyhedra

import "math"

// ReconstructTolerance is the per-coordinate distance under which two lifted
// view points are taken to be the same vertex.
const ReconstructTolerance = 1e-3

// CorrelatedVertex is a vertex accepted during reconstruction. Matched is set
// when a later view point merged into it.
type CorrelatedVertex struct {
	Position Vertex
	Matched  bool
}

// pointIndex buckets accepted vertices on a grid whose cell size equals the
// tolerance, so any vertex within tolerance of a point sits in one of the 27
// cells around it.
type pointIndex struct {
	tol   float64
	cells map[[3]int64][]int
}

func newPointIndex(tol float64) *pointIndex {
	return &pointIndex{tol: tol, cells: make(map[[3]int64][]int)}
}

func (pi *pointIndex) key(v Vertex) [3]int64 {
	return [3]int64{
		int64(math.Floor(v.X / pi.tol)),
		int64(math.Floor(v.Y / pi.tol)),
		int64(math.Floor(v.Z / pi.tol)),
	}
}

func (pi *pointIndex) add(v Vertex, index int) {
	k := pi.key(v)
	pi.cells[k] = append(pi.cells[k], index)
}

// find returns the lowest index among accepted vertices within tolerance of v,
// which is what a linear scan in acceptance order would return, or -1.
func (pi *pointIndex) find(v Vertex, accepted []CorrelatedVertex) int {
	k := pi.key(v)
	best := -1
	for dx := int64(-1); dx <= 1; dx++ {
		for dy := int64(-1); dy <= 1; dy++ {
			for dz := int64(-1); dz <= 1; dz++ {
				for _, i := range pi.cells[[3]int64{k[0] + dx, k[1] + dy, k[2] + dz}] {
					if (best < 0 || i < best) && accepted[i].Position.Near(v, pi.tol) {
						best = i
					}
				}
			}
		}
	}
	return best
}

// CorrelateViews lifts the points of the front, top and side views (in that
// order) into 3D and merges those within ReconstructTolerance of an already
// accepted vertex.
//
// This is a heuristic. A vertex seen in two views only merges when its lifted
// points agree within tolerance, which generally needs the dropped coordinates
// to be zero; otherwise it is kept twice. Distinct vertices closer than the
// tolerance collapse into one.
func CorrelateViews(front, top, side []Point2) []CorrelatedVertex {
	accepted := make([]CorrelatedVertex, 0, len(front)+len(top)+len(side))
	index := newPointIndex(ReconstructTolerance)

	for _, view := range Views {
		var points []Point2
		switch view {
		case Front:
			points = front
		case Top:
			points = top
		case Side:
			points = side
		}

		for _, p := range points {
			v := view.Lift(p)
			if i := index.find(v, accepted); i >= 0 {
				accepted[i].Matched = true
				continue
			}
			accepted = append(accepted, CorrelatedVertex{Position: v})
			index.add(v, len(accepted)-1)
		}
	}
	return accepted
}

// Reconstruct builds a mesh from three orthographic views.
func Reconstruct(front, top, side []Point2) *Mesh {
	return MeshFromCorrelated(CorrelateViews(front, top, side))
}

// MeshFromCorrelated turns accepted vertices into a mesh.
//
// Only the vertex set comes from the views. The edges simply chain the
// vertices in acceptance order and the faces group every four consecutive
// vertices into a quad; neither reflects real adjacency, so the topology is
// demo quality only.
func MeshFromCorrelated(correlated []CorrelatedVertex) *Mesh {
	n := len(correlated)

	m := NewMesh(n, max(n-1, 0), n/4)
	for i, c := range correlated {
		m.Vertices[i] = c.Position
	}
	for i := 0; i < n-1; i++ {
		m.Edges[i] = Edge{V1: i, V2: i + 1}
	}
	for f := range m.Faces {
		base := f * 4
		m.Faces[f] = NewFace(base, base+1, base+2, base+3)
	}
	return m
}
