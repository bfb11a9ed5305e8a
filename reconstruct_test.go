package polyhedra

import (
	"math/rand/v2"
	"reflect"
	"testing"
)

func TestReconstructRecoversLiftedPoints(t *testing.T) {
	cube := unitCube()
	vs := ProjectAll(cube)
	m := vs.Reconstruct()

	// Each view of the cube has four distinct corners, and no lifted point
	// of one view lies near another view's.
	if m.VertexCount() != 12 {
		t.Fatalf("VertexCount() = %d, want 12", m.VertexCount())
	}

	for _, v := range cube.Vertices {
		for _, view := range Views {
			lifted := view.Lift(view.Project(v))
			found := false
			for _, r := range m.Vertices {
				if r.Near(lifted, ReconstructTolerance) {
					found = true
					break
				}
			}
			if !found {
				t.Errorf("%s point %v of %v missing from reconstruction", view, lifted, v)
			}
		}
	}

	for i, c := range CorrelateViews(vs.Front, vs.Top, vs.Side) {
		if !c.Matched {
			t.Errorf("vertex %d %v was seen twice but not marked matched", i, c.Position)
		}
	}
}

func TestCorrelateViews(t *testing.T) {
	testCases := []struct {
		name             string
		front, top, side []Point2
		want             []CorrelatedVertex
	}{
		{
			name:  "origin seen in every view merges",
			front: []Point2{{0, 0}},
			top:   []Point2{{0, 0}},
			side:  []Point2{{0, 0}},
			want:  []CorrelatedVertex{{Position: Vertex{}, Matched: true}},
		},
		{
			name:  "off-axis vertex is kept once per view",
			front: []Point2{{2, 3}},
			top:   []Point2{{1, 3}},
			side:  []Point2{{1, 2}},
			want: []CorrelatedVertex{
				{Position: Vertex{0, 2, 3}},
				{Position: Vertex{1, 0, 3}},
				{Position: Vertex{1, 2, 0}},
			},
		},
		{
			name:  "distinct points inside the tolerance collapse",
			front: []Point2{{0, 0}, {0.0005, 0.0005}},
			want:  []CorrelatedVertex{{Position: Vertex{}, Matched: true}},
		},
		{
			name:  "tolerance is strict",
			front: []Point2{{0, 0}, {0.0009, 0}, {0.0018, 0}, {0.001, 0}},
			want: []CorrelatedVertex{
				{Position: Vertex{}, Matched: true},
				{Position: Vertex{0, 0.0018, 0}, Matched: true},
			},
		},
		{
			name:  "first accepted vertex wins",
			front: []Point2{{0, 0}, {0, 0.0015}, {0, 0.0008}},
			want: []CorrelatedVertex{
				{Position: Vertex{}, Matched: true},
				{Position: Vertex{0, 0, 0.0015}},
			},
		},
		{
			name: "no points",
			want: []CorrelatedVertex{},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := CorrelateViews(tc.front, tc.top, tc.side)
			if !reflect.DeepEqual(got, tc.want) {
				t.Errorf("CorrelateViews() = %v, want %v", got, tc.want)
			}
		})
	}
}

// linearCorrelate is the plain first-match scan the grid index must agree
// with.
func linearCorrelate(front, top, side []Point2) []CorrelatedVertex {
	var accepted []CorrelatedVertex
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
	next:
		for _, p := range points {
			v := view.Lift(p)
			for i := range accepted {
				if accepted[i].Position.Near(v, ReconstructTolerance) {
					accepted[i].Matched = true
					continue next
				}
			}
			accepted = append(accepted, CorrelatedVertex{Position: v})
		}
	}
	return accepted
}

func TestCorrelateViewsMatchesLinearScan(t *testing.T) {
	r := rand.New(rand.NewPCG(7, 11))
	randomPoints := func(n int) []Point2 {
		pts := make([]Point2, n)
		for i := range pts {
			// Coordinates on a grid finer than the tolerance, so points
			// land both inside and just outside each other's reach.
			pts[i] = Point2{
				X: float64(r.IntN(12)-6) * 0.0004,
				Y: float64(r.IntN(12)-6) * 0.0004,
			}
		}
		return pts
	}

	for round := 0; round < 50; round++ {
		front, top, side := randomPoints(40), randomPoints(40), randomPoints(40)
		got := CorrelateViews(front, top, side)
		want := linearCorrelate(front, top, side)
		if len(got) != len(want) {
			t.Fatalf("round %d: %d vertices, linear scan gives %d", round, len(got), len(want))
		}
		for i := range want {
			if got[i] != want[i] {
				t.Fatalf("round %d: vertex %d = %+v, linear scan gives %+v", round, i, got[i], want[i])
			}
		}
	}
}

func TestReconstructTopology(t *testing.T) {
	front := []Point2{{0, 0}, {1, 0}, {1, 1}, {0, 1}, {2, 2}}
	m := Reconstruct(front, nil, nil)

	if m.VertexCount() != 5 {
		t.Fatalf("VertexCount() = %d, want 5", m.VertexCount())
	}
	if want := []Edge{{0, 1}, {1, 2}, {2, 3}, {3, 4}}; !reflect.DeepEqual(m.Edges, want) {
		t.Errorf("Edges = %v, want %v", m.Edges, want)
	}
	if want := []Face{NewFace(0, 1, 2, 3)}; !reflect.DeepEqual(m.Faces, want) {
		t.Errorf("Faces = %v, want %v", m.Faces, want)
	}
	if err := m.Validate(); err != nil {
		t.Errorf("Validate() = %v", err)
	}

	empty := Reconstruct(nil, nil, nil)
	if empty.VertexCount() != 0 || empty.EdgeCount() != 0 || empty.FaceCount() != 0 {
		t.Errorf("empty reconstruction = %d/%d/%d", empty.VertexCount(), empty.EdgeCount(), empty.FaceCount())
	}
}

func TestMeshFromCorrelated(t *testing.T) {
	front := []Point2{{0, 0}, {1, 0}, {1, 1}, {0, 1}, {0, 0}}
	correlated := CorrelateViews(front, nil, nil)
	m := MeshFromCorrelated(correlated)

	if !reflect.DeepEqual(m, Reconstruct(front, nil, nil)) {
		t.Errorf("MeshFromCorrelated() = %v, differs from Reconstruct()", m)
	}
	if m.VertexCount() != 4 || m.FaceCount() != 1 || !correlated[0].Matched {
		t.Errorf("got %d vertices, %d faces, first matched %v", m.VertexCount(), m.FaceCount(), correlated[0].Matched)
	}
}
