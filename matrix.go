package polyhedra

import (
	"fmt"
	"strings"

	"github.com/go-gl/mathgl/mgl64"
)

// Axis selects the coordinate axis a rotation turns about.
type Axis int

const (
	AxisX Axis = iota
	AxisY
	AxisZ
)

func (a Axis) String() string {
	switch a {
	case AxisX:
		return "X"
	case AxisY:
		return "Y"
	case AxisZ:
		return "Z"
	}
	return fmt.Sprintf("Axis(%d)", int(a))
}

func ParseAxis(s string) (Axis, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "x":
		return AxisX, nil
	case "y":
		return AxisY, nil
	case "z":
		return AxisZ, nil
	}
	return 0, fmt.Errorf("%q: %w", s, ErrUnknownAxis)
}

// NewRotationMatrix returns the right-handed rotation by theta radians about
// the given axis.
func NewRotationMatrix(axis Axis, theta float64) mgl64.Mat3 {
	switch axis {
	case AxisX:
		return mgl64.Rotate3DX(theta)
	case AxisY:
		return mgl64.Rotate3DY(theta)
	case AxisZ:
		return mgl64.Rotate3DZ(theta)
	}
	return mgl64.Ident3()
}

func degreesToRadians(degrees float64) float64 {
	return mgl64.DegToRad(degrees)
}
