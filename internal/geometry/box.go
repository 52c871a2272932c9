package geometry

// boxFace describes one side of a box: the axis its normal lies on, the two
// in-plane axes (u to the right, v up when looking at the face) and the
// normal's sign.
type boxFace struct {
	u, v, w int
	udir    float32
	vdir    float32
	wdir    float32
}

// Face order: +X, -X, +Y, -Y, +Z, -Z.
var boxFaces = [6]boxFace{
	{u: 2, v: 1, w: 0, udir: -1, vdir: -1, wdir: 1},
	{u: 2, v: 1, w: 0, udir: 1, vdir: -1, wdir: -1},
	{u: 0, v: 2, w: 1, udir: 1, vdir: 1, wdir: 1},
	{u: 0, v: 2, w: 1, udir: 1, vdir: -1, wdir: -1},
	{u: 0, v: 1, w: 2, udir: 1, vdir: -1, wdir: 1},
	{u: 0, v: 1, w: 2, udir: -1, vdir: -1, wdir: -1},
}

// Box builds an axis-aligned box centred on the origin with four vertices
// per face so each face gets a flat normal.
func Box(width, height, depth float32) *Geometry {
	half := [3]float32{width / 2, height / 2, depth / 2}
	g := &Geometry{
		Name:      "box",
		Positions: make([]float32, 0, 24*3),
		Normals:   make([]float32, 0, 24*3),
		TexCoords: make([]float32, 0, 24*2),
		Indices:   make([]uint16, 0, 36),
	}

	for _, f := range boxFaces {
		base := uint16(g.VertexCount())
		var n [3]float32
		n[f.w] = f.wdir
		for iy := 0; iy < 2; iy++ {
			for ix := 0; ix < 2; ix++ {
				var p [3]float32
				p[f.u] = (float32(ix)*2 - 1) * half[f.u] * f.udir
				p[f.v] = (float32(iy)*2 - 1) * half[f.v] * f.vdir
				p[f.w] = half[f.w] * f.wdir
				g.vertex(p, n, float32(ix), 1-float32(iy))
			}
		}
		a, b, c, d := base, base+2, base+3, base+1
		g.Indices = append(g.Indices, a, b, d, b, c, d)
	}
	return g
}
