package polyhedra

import "errors"

var (
	// ErrEmptyMesh is returned by operations that need at least one vertex,
	// such as the centroid and anything rotating about it.
	ErrEmptyMesh = errors.New("polyhedra: mesh has no vertices")

	ErrMalformed       = errors.New("polyhedra: malformed input")
	ErrIndexOutOfRange = errors.New("polyhedra: vertex index out of range")
	ErrDegenerateEdge  = errors.New("polyhedra: edge joins a vertex to itself")
	ErrDegenerateFace  = errors.New("polyhedra: face has fewer than 3 vertices")
	ErrDegeneratePlane = errors.New("polyhedra: plane normal is zero")
	ErrUnknownView     = errors.New("polyhedra: unknown view")
	ErrUnknownAxis     = errors.New("polyhedra: unknown rotation axis")
)
