// Package geometry generates vertex data for the primitives the scene is made of.
// Everything here is plain Go; uploading to the GPU is the renderer's job.
package geometry

import "github.com/chewxy/math32"

// Geometry holds tightly packed vertex attributes. Indices is nil for
// non-indexed geometry, in which case every three vertices form a triangle.
type Geometry struct {
	Name      string
	Positions []float32 // x, y, z
	Normals   []float32 // x, y, z
	TexCoords []float32 // u, v
	Indices   []uint16
}

func (g *Geometry) VertexCount() int {
	return len(g.Positions) / 3
}

func (g *Geometry) TriangleCount() int {
	if g.Indices != nil {
		return len(g.Indices) / 3
	}
	return g.VertexCount() / 3
}

// Bounds returns the axis-aligned extents of all positions.
func (g *Geometry) Bounds() (min, max [3]float32) {
	if len(g.Positions) < 3 {
		return
	}
	copy(min[:], g.Positions[:3])
	copy(max[:], g.Positions[:3])
	for i := 3; i < len(g.Positions); i += 3 {
		for k := 0; k < 3; k++ {
			v := g.Positions[i+k]
			if v < min[k] {
				min[k] = v
			}
			if v > max[k] {
				max[k] = v
			}
		}
	}
	return
}

func (g *Geometry) vertex(p, n [3]float32, u, v float32) {
	g.Positions = append(g.Positions, p[0], p[1], p[2])
	g.Normals = append(g.Normals, n[0], n[1], n[2])
	g.TexCoords = append(g.TexCoords, u, v)
}

func normalize(v [3]float32) [3]float32 {
	l := math32.Sqrt(v[0]*v[0] + v[1]*v[1] + v[2]*v[2])
	if l == 0 {
		return v
	}
	return [3]float32{v[0] / l, v[1] / l, v[2] / l}
}

func lerp(a, b [3]float32, t float32) [3]float32 {
	return [3]float32{
		a[0] + (b[0]-a[0])*t,
		a[1] + (b[1]-a[1])*t,
		a[2] + (b[2]-a[2])*t,
	}
}
