package polyhedra

import (
	"errors"
	"testing"
)

func TestCentroid(t *testing.T) {
	m := unitCube()
	Translate(m, 1, 2, 3)
	c, err := Centroid(m)
	if err != nil {
		t.Fatalf("Centroid() error = %v", err)
	}
	if !vertexAlmostEqual(c, Vertex{1, 2, 3}) {
		t.Errorf("Centroid() = %v, want (1, 2, 3)", c)
	}

	if _, err := Centroid(NewMesh(0, 0, 0)); !errors.Is(err, ErrEmptyMesh) {
		t.Errorf("Centroid(empty) error = %v, want ErrEmptyMesh", err)
	}
}

func TestTranslateRoundTrip(t *testing.T) {
	offsets := []struct {
		name       string
		dx, dy, dz float64
	}{
		{"zero", 0, 0, 0},
		{"unit x", 1, 0, 0},
		{"mixed", -3.25, 17.5, 0.001},
		{"large", 1e6, -2e6, 3e6},
	}

	for _, o := range offsets {
		t.Run(o.name, func(t *testing.T) {
			m := unitCube()
			want := unitCube().Vertices

			Translate(m, o.dx, o.dy, o.dz)
			if o.dx != 0 && vertexAlmostEqual(m.Vertices[0], want[0]) {
				t.Fatalf("Translate did not move vertex 0")
			}
			Translate(m, -o.dx, -o.dy, -o.dz)
			assertVerticesAlmostEqual(t, m.Vertices, want)
		})
	}
}

func TestRotateAxisQuarterTurn(t *testing.T) {
	testCases := []struct {
		name  string
		axis  Axis
		input []Vertex
		want  []Vertex
	}{
		{
			name:  "X turns +y into +z",
			axis:  AxisX,
			input: []Vertex{{0, 1, 0}, {0, -1, 0}},
			want:  []Vertex{{0, 0, 1}, {0, 0, -1}},
		},
		{
			name:  "Y turns +z into +x",
			axis:  AxisY,
			input: []Vertex{{0, 0, 1}, {0, 0, -1}},
			want:  []Vertex{{1, 0, 0}, {-1, 0, 0}},
		},
		{
			name:  "Z turns +x into +y",
			axis:  AxisZ,
			input: []Vertex{{1, 0, 0}, {-1, 0, 0}},
			want:  []Vertex{{0, 1, 0}, {0, -1, 0}},
		},
		{
			name:  "Z about an off-origin centroid",
			axis:  AxisZ,
			input: []Vertex{{1, 0, 0}, {3, 0, 0}},
			want:  []Vertex{{2, -1, 0}, {2, 1, 0}},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			m := NewMesh(len(tc.input), 0, 0)
			copy(m.Vertices, tc.input)
			if err := RotateAxis(m, tc.axis, 90); err != nil {
				t.Fatalf("RotateAxis() error = %v", err)
			}
			assertVerticesAlmostEqual(t, m.Vertices, tc.want)
		})
	}
}

func offsetCube() *Mesh {
	m := unitCube()
	m.Vertices[6] = Vertex{0.9, 0.7, 1.3}
	Translate(m, 5, -2, 11)
	return m
}

func TestRotateAxisFullTurnIsIdentity(t *testing.T) {
	for _, axis := range []Axis{AxisX, AxisY, AxisZ} {
		t.Run(axis.String(), func(t *testing.T) {
			m := offsetCube()
			want := offsetCube().Vertices
			if err := RotateAxis(m, axis, 360); err != nil {
				t.Fatalf("RotateAxis() error = %v", err)
			}
			assertVerticesAlmostEqual(t, m.Vertices, want)
		})
	}
}

func TestRotateAxisInverse(t *testing.T) {
	angles := []float64{1, 33.3, 90, 179, -45, 720.5}
	for _, axis := range []Axis{AxisX, AxisY, AxisZ} {
		for _, angle := range angles {
			m := offsetCube()
			want := offsetCube().Vertices
			if err := RotateAxis(m, axis, angle); err != nil {
				t.Fatalf("RotateAxis() error = %v", err)
			}
			if err := RotateAxis(m, axis, -angle); err != nil {
				t.Fatalf("RotateAxis() error = %v", err)
			}
			for i := range want {
				if !vertexAlmostEqual(m.Vertices[i], want[i]) {
					t.Errorf("axis %s angle %v: vertex %d = %v, want %v", axis, angle, i, m.Vertices[i], want[i])
				}
			}
		}
	}
}

func TestRotateAxisKeepsCentroid(t *testing.T) {
	for _, axis := range []Axis{AxisX, AxisY, AxisZ} {
		for _, angle := range []float64{15, 90, 137, -210} {
			m := offsetCube()
			before, _ := Centroid(m)
			if err := RotateAxis(m, axis, angle); err != nil {
				t.Fatalf("RotateAxis() error = %v", err)
			}
			after, _ := Centroid(m)
			if !vertexAlmostEqual(before, after) {
				t.Errorf("axis %s angle %v: centroid moved from %v to %v", axis, angle, before, after)
			}
		}
	}
}

func TestRotateAxisRepeatedSmallSteps(t *testing.T) {
	m := offsetCube()
	want := offsetCube().Vertices
	for i := 0; i < 360; i++ {
		if err := RotateAxis(m, AxisY, 1); err != nil {
			t.Fatalf("RotateAxis() error = %v", err)
		}
	}
	assertVerticesAlmostEqual(t, m.Vertices, want)
}

func TestRotateAxisEmptyMesh(t *testing.T) {
	if err := RotateAxis(NewMesh(0, 0, 0), AxisX, 45); !errors.Is(err, ErrEmptyMesh) {
		t.Errorf("RotateAxis(empty) error = %v, want ErrEmptyMesh", err)
	}
}

func TestParseAxis(t *testing.T) {
	for in, want := range map[string]Axis{"x": AxisX, "Y": AxisY, " z ": AxisZ} {
		got, err := ParseAxis(in)
		if err != nil || got != want {
			t.Errorf("ParseAxis(%q) = %v, %v; want %v", in, got, err, want)
		}
	}
	if _, err := ParseAxis("w"); !errors.Is(err, ErrUnknownAxis) {
		t.Errorf("ParseAxis(w) error = %v, want ErrUnknownAxis", err)
	}
}

func TestBoundsAndCentre(t *testing.T) {
	m := unitCube()
	Scale(m, 2)
	Translate(m, 10, 0, -4)

	lo, hi := Bounds(m)
	if !vertexAlmostEqual(lo, Vertex{9, -1, -5}) || !vertexAlmostEqual(hi, Vertex{11, 1, -3}) {
		t.Errorf("Bounds() = %v, %v", lo, hi)
	}
	x, y, z := Extents(m)
	if !almostEqual(x, 2) || !almostEqual(y, 2) || !almostEqual(z, 2) {
		t.Errorf("Extents() = %v, %v, %v; want 2, 2, 2", x, y, z)
	}

	CentreOnOrigin(m)
	lo, hi = Bounds(m)
	if !vertexAlmostEqual(lo, Vertex{-1, -1, -1}) || !vertexAlmostEqual(hi, Vertex{1, 1, 1}) {
		t.Errorf("after CentreOnOrigin Bounds() = %v, %v", lo, hi)
	}

	empty := NewMesh(0, 0, 0)
	CentreOnOrigin(empty)
	if x, y, z := Extents(empty); x != 0 || y != 0 || z != 0 {
		t.Errorf("Extents(empty) = %v, %v, %v", x, y, z)
	}
}
