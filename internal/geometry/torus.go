package geometry

import "github.com/chewxy/math32"

// Torus builds a ring lying in the XY plane. radius is the distance from the
// centre of the torus to the centre of the tube.
func Torus(radius, tube float32, radialSegments, tubularSegments int) *Geometry {
	if radialSegments < 3 {
		radialSegments = 3
	}
	if tubularSegments < 3 {
		tubularSegments = 3
	}

	n := (radialSegments + 1) * (tubularSegments + 1)
	g := &Geometry{
		Name:      "torus",
		Positions: make([]float32, 0, n*3),
		Normals:   make([]float32, 0, n*3),
		TexCoords: make([]float32, 0, n*2),
		Indices:   make([]uint16, 0, radialSegments*tubularSegments*6),
	}

	for j := 0; j <= radialSegments; j++ {
		v := float32(j) / float32(radialSegments) * 2 * math32.Pi
		for i := 0; i <= tubularSegments; i++ {
			u := float32(i) / float32(tubularSegments) * 2 * math32.Pi

			p := [3]float32{
				(radius + tube*math32.Cos(v)) * math32.Cos(u),
				(radius + tube*math32.Cos(v)) * math32.Sin(u),
				tube * math32.Sin(v),
			}
			center := [3]float32{radius * math32.Cos(u), radius * math32.Sin(u), 0}
			normal := normalize([3]float32{p[0] - center[0], p[1] - center[1], p[2] - center[2]})

			g.vertex(p, normal, float32(i)/float32(tubularSegments), float32(j)/float32(radialSegments))
		}
	}

	stride := tubularSegments + 1
	for j := 1; j <= radialSegments; j++ {
		for i := 1; i <= tubularSegments; i++ {
			a := uint16(stride*j + i - 1)
			b := uint16(stride*(j-1) + i - 1)
			c := uint16(stride*(j-1) + i)
			d := uint16(stride*j + i)
			g.Indices = append(g.Indices, a, b, d, b, c, d)
		}
	}
	return g
}
