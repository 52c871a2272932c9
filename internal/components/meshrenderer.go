package components

import (
	"unsafe"

	"lightwall/internal/engine"
	"lightwall/internal/geometry"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// MeshRenderer draws a geometry with a (possibly shared) material at its
// game object's transform.
type MeshRenderer struct {
	engine.BaseComponent
	Geometry      *geometry.Geometry
	Material      *Material
	CastShadow    bool
	ReceiveShadow bool

	model    rl.Model
	uploaded bool
}

func NewMeshRenderer(geom *geometry.Geometry, mat *Material) *MeshRenderer {
	return &MeshRenderer{
		Geometry: geom,
		Material: mat,
	}
}

// Upload sends the geometry to the GPU. It needs a live GL context, so the
// renderer calls it lazily on first draw rather than at construction.
func (m *MeshRenderer) Upload(shader rl.Shader) {
	if m.uploaded {
		return
	}
	g := m.Geometry
	mesh := rl.Mesh{
		VertexCount:   int32(g.VertexCount()),
		TriangleCount: int32(g.TriangleCount()),
		Vertices:      raylibCopy(g.Positions),
		Normals:       raylibCopy(g.Normals),
		Texcoords:     raylibCopy(g.TexCoords),
		Indices:       raylibCopy(g.Indices),
	}
	rl.UploadMesh(&mesh, false)

	m.model = rl.LoadModelFromMesh(mesh)
	m.model.Materials.Shader = shader
	m.uploaded = true
}

func (m *MeshRenderer) Uploaded() bool {
	return m.uploaded
}

func (m *MeshRenderer) Draw() {
	g := m.GetGameObject()
	if g == nil || !g.Active || !m.uploaded {
		return
	}

	m.model.Transform = g.Transform.Matrix()
	m.model.Materials.Maps.Color = m.Material.Color

	rl.DrawModel(m.model, rl.Vector3Zero(), 1.0, rl.White)
}

func (m *MeshRenderer) Unload() {
	if !m.uploaded {
		return
	}
	rl.UnloadModel(m.model)
	m.uploaded = false
}

// raylibCopy copies src into raylib-allocated memory, which UnloadModel frees.
// Go memory must not be handed to C with pointers stored inside it.
func raylibCopy[T float32 | uint16](src []T) *T {
	if len(src) == 0 {
		return nil
	}
	var zero T
	p := rl.MemAlloc(uint32(len(src)) * uint32(unsafe.Sizeof(zero)))
	copy(unsafe.Slice((*T)(p), len(src)), src)
	return (*T)(p)
}
