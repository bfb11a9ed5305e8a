package render

import (
	"image"
	"image/color"
	"math"
	"sort"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/smasonuk/polyhedra"
)

// Polygon is a filled face in screen coordinates.
type Polygon struct {
	Xs, Ys []float32
	Color  color.RGBA
	depth  float64
}

// Filler is a scene that can also produce shaded faces, drawn far to near
// underneath its segments.
type Filler interface {
	Polygons(width, height int, base color.RGBA) []Polygon
}

const (
	ambientLight       = 0.65
	spotlightConePower = 10.0
	minChannel         = 7
)

// shade darkens base by how far the face turns from the camera and how far
// it sits from the view axis. normal must be unit length; centre is in
// camera space with the camera at the origin looking down +z.
func shade(base color.RGBA, normal, centre mgl64.Vec3) color.RGBA {
	diffuse := max(-normal.Z(), 0)

	spotlight := 1.0
	if l := centre.Len(); l > 0 {
		spotlight = math.Pow(max(centre.Z()/l, 0), spotlightConePower)
	}

	brightness := ambientLight + diffuse*spotlight*(1-ambientLight)
	c := 240 - int(brightness*240)

	return color.RGBA{
		R: uint8(clamp(int(base.R)-c, minChannel, 255)),
		G: uint8(clamp(int(base.G)-c, minChannel, 255)),
		B: uint8(clamp(int(base.B)-c, minChannel, 255)),
		A: 255,
	}
}

func clamp(value, lo, hi int) int {
	if value < lo {
		return lo
	}
	if value > hi {
		return hi
	}
	return value
}

// Polygons returns the mesh faces with at least three vertices, all in front
// of the camera, sorted so the farthest comes first.
func (s *MeshScene) Polygons(width, height int, base color.RGBA) []Polygon {
	if s.Mesh == nil {
		return nil
	}

	orbit := s.orbitMatrix()
	camera := make([]mgl64.Vec3, len(s.Mesh.Vertices))
	for i, v := range s.Mesh.Vertices {
		camera[i] = mgl64.TransformCoordinate(v.Vec(), orbit).Add(mgl64.Vec3{0, 0, s.Distance})
	}

	polys := make([]Polygon, 0, len(s.Mesh.Faces))
faces:
	for _, f := range s.Mesh.Faces {
		if len(f.Indices) < 3 {
			continue
		}

		p := Polygon{Xs: make([]float32, len(f.Indices)), Ys: make([]float32, len(f.Indices))}
		var centre mgl64.Vec3
		for i, idx := range f.Indices {
			c := camera[idx]
			x, y, ok := PerspectivePoint(polyhedra.VertexFromVec(c), s.FocalLength, 0, width, height)
			if !ok {
				continue faces
			}
			p.Xs[i], p.Ys[i] = x, y
			centre = centre.Add(c)
		}
		centre = centre.Mul(1 / float64(len(f.Indices)))

		v0 := camera[f.Indices[0]]
		normal := camera[f.Indices[1]].Sub(v0).Cross(camera[f.Indices[2]].Sub(v0))
		if normal.Len() > 0 {
			normal = normal.Normalize()
		}

		p.Color = shade(base, normal, centre)
		p.depth = centre.Len()
		polys = append(polys, p)
	}

	sort.SliceStable(polys, func(i, j int) bool {
		return polys[i].depth > polys[j].depth
	})
	return polys
}

// solidSource is a single white pixel; DrawTriangles tints it with the
// vertex colours.
var solidSource = func() *ebiten.Image {
	img := ebiten.NewImage(3, 3)
	img.Fill(color.White)
	return img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
}()

// vertices fans the polygon from its first corner into ebiten triangles.
func (p Polygon) vertices() ([]ebiten.Vertex, []uint16) {
	if len(p.Xs) < 3 {
		return nil, nil
	}

	r, g, b, a := float32(p.Color.R)/255, float32(p.Color.G)/255, float32(p.Color.B)/255, float32(p.Color.A)/255
	verts := make([]ebiten.Vertex, len(p.Xs))
	for i := range p.Xs {
		verts[i] = ebiten.Vertex{
			DstX: p.Xs[i], DstY: p.Ys[i],
			SrcX: 1, SrcY: 1,
			ColorR: r, ColorG: g, ColorB: b, ColorA: a,
		}
	}

	indices := make([]uint16, 0, (len(p.Xs)-2)*3)
	for i := 2; i < len(p.Xs); i++ {
		indices = append(indices, 0, uint16(i-1), uint16(i))
	}
	return verts, indices
}

func (p Polygon) draw(screen *ebiten.Image) {
	verts, indices := p.vertices()
	if len(indices) == 0 {
		return
	}
	screen.DrawTriangles(verts, indices, solidSource, &ebiten.DrawTrianglesOptions{AntiAlias: true})
}
