package geometry

import "github.com/chewxy/math32"

var (
	octahedronVertices = [6][3]float32{
		{1, 0, 0}, {-1, 0, 0},
		{0, 1, 0}, {0, -1, 0},
		{0, 0, 1}, {0, 0, -1},
	}
	octahedronFaces = [8][3]int{
		{0, 2, 4}, {0, 4, 3}, {0, 3, 5}, {0, 5, 2},
		{1, 2, 5}, {1, 5, 3}, {1, 3, 4}, {1, 4, 2},
	}
)

// Octahedron builds a subdivided octahedron with every vertex on the sphere
// of the given radius. Each face is split into (detail+1)^2 triangles.
// The result is not indexed and uses smooth normals.
func Octahedron(radius float32, detail int) *Geometry {
	if detail < 0 {
		detail = 0
	}
	cols := detail + 1
	tris := len(octahedronFaces) * cols * cols
	g := &Geometry{
		Name:      "octahedron",
		Positions: make([]float32, 0, tris*9),
		Normals:   make([]float32, 0, tris*9),
		TexCoords: make([]float32, 0, tris*6),
	}

	for _, f := range octahedronFaces {
		subdivideFace(g, radius, cols,
			octahedronVertices[f[0]], octahedronVertices[f[1]], octahedronVertices[f[2]])
	}
	return g
}

func subdivideFace(g *Geometry, radius float32, cols int, a, b, c [3]float32) {
	grid := make([][][3]float32, cols+1)
	for i := 0; i <= cols; i++ {
		aj := lerp(a, c, float32(i)/float32(cols))
		bj := lerp(b, c, float32(i)/float32(cols))
		rows := cols - i
		grid[i] = make([][3]float32, rows+1)
		for j := 0; j <= rows; j++ {
			if j == 0 && i == cols {
				grid[i][j] = aj
			} else {
				grid[i][j] = lerp(aj, bj, float32(j)/float32(rows))
			}
		}
	}

	for i := 0; i < cols; i++ {
		for j := 0; j < 2*(cols-i)-1; j++ {
			k := j / 2
			if j%2 == 0 {
				g.sphereVertex(grid[i][k+1], radius)
				g.sphereVertex(grid[i+1][k], radius)
				g.sphereVertex(grid[i][k], radius)
			} else {
				g.sphereVertex(grid[i][k+1], radius)
				g.sphereVertex(grid[i+1][k+1], radius)
				g.sphereVertex(grid[i+1][k], radius)
			}
		}
	}
}

// sphereVertex projects p onto the sphere and derives equirectangular UVs.
func (g *Geometry) sphereVertex(p [3]float32, radius float32) {
	n := normalize(p)
	u := math32.Atan2(n[2], -n[0])/(2*math32.Pi) + 0.5
	v := math32.Asin(clamp(n[1], -1, 1))/math32.Pi + 0.5
	g.vertex([3]float32{n[0] * radius, n[1] * radius, n[2] * radius}, n, u, v)
}

func clamp(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
