package polyhedra

import (
	"fmt"
	"strconv"
)

// Plane is the oriented plane A*x + B*y + C*z + D = 0. Its normal (A, B, C)
// points toward the side Slice calls part1.
type Plane struct {
	A, B, C, D float64
}

func NewPlane(a, b, c, d float64) Plane {
	return Plane{A: a, B: b, C: c, D: d}
}

// ParsePlane reads the four coefficients A B C D.
func ParsePlane(fields []string) (Plane, error) {
	if len(fields) != 4 {
		return Plane{}, fmt.Errorf("plane needs 4 coefficients, got %d: %w", len(fields), ErrMalformed)
	}
	var coef [4]float64
	for i, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return Plane{}, fmt.Errorf("plane coefficient %q: %w", f, ErrMalformed)
		}
		coef[i] = v
	}
	return Plane{A: coef[0], B: coef[1], C: coef[2], D: coef[3]}, nil
}

func (p Plane) IsDegenerate() bool {
	return p.A == 0 && p.B == 0 && p.C == 0
}

// Distance is the signed plane value of v. It is a true distance only when the
// normal has unit length; the sign is what the slicer uses.
func (p Plane) Distance(v Vertex) float64 {
	return p.A*v.X + p.B*v.Y + p.C*v.Z + p.D
}

// crosses reports a strict sign change between the two plane values. An end
// lying on the plane does not count.
func crosses(d1, d2 float64) bool {
	return (d1 > 0 && d2 < 0) || (d1 < 0 && d2 > 0)
}

// Intersect returns the point where segment v1-v2 passes through the plane.
// ok is false unless the ends lie strictly on opposite sides.
func (p Plane) Intersect(v1, v2 Vertex) (point Vertex, ok bool) {
	d1, d2 := p.Distance(v1), p.Distance(v2)
	if !crosses(d1, d2) {
		return Vertex{}, false
	}
	t := d1 / (d1 - d2)
	return v1.Lerp(v2, t), true
}

func (p Plane) String() string {
	return fmt.Sprintf("%gx + %gy + %gz + %g = 0", p.A, p.B, p.C, p.D)
}
