package polyhedra

// Centroid is the arithmetic mean of all vertices.
func Centroid(m *Mesh) (Vertex, error) {
	if len(m.Vertices) == 0 {
		return Vertex{}, ErrEmptyMesh
	}

	var sumX, sumY, sumZ float64
	for _, v := range m.Vertices {
		sumX += v.X
		sumY += v.Y
		sumZ += v.Z
	}
	count := float64(len(m.Vertices))
	return Vertex{X: sumX / count, Y: sumY / count, Z: sumZ / count}, nil
}

// Translate moves every vertex by (dx, dy, dz) in place.
func Translate(m *Mesh, dx, dy, dz float64) {
	for i := range m.Vertices {
		m.Vertices[i].X += dx
		m.Vertices[i].Y += dy
		m.Vertices[i].Z += dz
	}
}

// RotateAxis rotates the mesh in place by the given angle in degrees about the
// axis passing through its own centroid, so an off-origin solid turns where it
// stands.
func RotateAxis(m *Mesh, axis Axis, degrees float64) error {
	centroid, err := Centroid(m)
	if err != nil {
		return err
	}

	rot := NewRotationMatrix(axis, degreesToRadians(degrees))
	for i, v := range m.Vertices {
		local := v.Sub(centroid).Vec()
		m.Vertices[i] = VertexFromVec(rot.Mul3x1(local)).Add(centroid)
	}
	return nil
}

// Scale multiplies every coordinate by factor, about the origin.
func Scale(m *Mesh, factor float64) {
	for i := range m.Vertices {
		m.Vertices[i] = m.Vertices[i].Mul(factor)
	}
}

// Bounds returns the corners of the axis-aligned bounding box. An empty mesh
// yields two zero vertices.
func Bounds(m *Mesh) (lo, hi Vertex) {
	if len(m.Vertices) == 0 {
		return Vertex{}, Vertex{}
	}

	lo, hi = m.Vertices[0], m.Vertices[0]
	for _, p := range m.Vertices[1:] {
		lo.X, hi.X = min(lo.X, p.X), max(hi.X, p.X)
		lo.Y, hi.Y = min(lo.Y, p.Y), max(hi.Y, p.Y)
		lo.Z, hi.Z = min(lo.Z, p.Z), max(hi.Z, p.Z)
	}
	return lo, hi
}

// Extents is the size of the bounding box along each axis.
func Extents(m *Mesh) (float64, float64, float64) {
	lo, hi := Bounds(m)
	return hi.X - lo.X, hi.Y - lo.Y, hi.Z - lo.Z
}

// CentreOnOrigin moves all points so that the centre of the bounding box is at
// 0,0,0.
func CentreOnOrigin(m *Mesh) {
	if len(m.Vertices) == 0 {
		return
	}
	lo, hi := Bounds(m)
	centre := lo.Add(hi).Mul(0.5)
	Translate(m, -centre.X, -centre.Y, -centre.Z)
}
