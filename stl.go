package polyhedra

import (
	"fmt"

	"github.com/deadsy/sdfx/render"
	"github.com/deadsy/sdfx/sdf"
	v3 "github.com/deadsy/sdfx/vec/v3"
)

func toSdfxVec(v Vertex) v3.Vec {
	return v3.Vec{X: v.X, Y: v.Y, Z: v.Z}
}

// Triangles fan-triangulates every face the same way the measurement engine
// does. Faces with fewer than three vertices produce nothing.
func Triangles(m *Mesh) []*sdf.Triangle3 {
	var out []*sdf.Triangle3
	for _, f := range m.Faces {
		for i := 1; i < len(f.Indices)-1; i++ {
			out = append(out, &sdf.Triangle3{
				toSdfxVec(m.Vertices[f.Indices[0]]),
				toSdfxVec(m.Vertices[f.Indices[i]]),
				toSdfxVec(m.Vertices[f.Indices[i+1]]),
			})
		}
	}
	return out
}

// SaveSTL writes the triangulated faces of m to an STL file. Edges and
// isolated vertices are not representable in STL and are dropped.
func SaveSTL(fileName string, m *Mesh) error {
	triangles := Triangles(m)
	if len(triangles) == 0 {
		return fmt.Errorf("could not create STL file %s: mesh has no faces: %w", fileName, ErrDegenerateFace)
	}
	if err := render.SaveSTL(fileName, triangles); err != nil {
		return fmt.Errorf("could not create STL file %s: %w", fileName, err)
	}
	return nil
}
