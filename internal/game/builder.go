package game

import (
	"fmt"

	"lightwall/internal/components"
	"lightwall/internal/engine"
	"lightwall/internal/geometry"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Props holds the meshes the animation driver moves and the two materials
// they share.
type Props struct {
	Wall       *engine.GameObject
	Floor      *engine.GameObject
	Box        *engine.GameObject
	Torus      *engine.GameObject
	Octahedron *engine.GameObject

	// Projection is the white surface for the wall and floor; Shared is
	// aliased by the box, torus and octahedron.
	Projection *components.Material
	Shared     *components.Material
}

type meshSpec struct {
	name    string
	geom    *geometry.Geometry
	mat     *components.Material
	pos     rl.Vector3
	cast    bool
	receive bool
	spin    rl.Vector3
	tags    []string
}

// BuildScene adds the room and the three props to scene. It fails only if the
// scene is already sealed.
func BuildScene(scene *engine.Scene) (*Props, error) {
	p := &Props{
		Projection: components.NewMaterial("projection", components.MustColor("#ffffff"), 1),
		Shared:     components.NewMaterial("shared", components.MustColor("#f4f4f4"), 5),
	}

	specs := []meshSpec{
		{name: "Wall", geom: geometry.Box(80, 30, 1), mat: p.Projection, pos: rl.Vector3{X: 0, Y: 5, Z: -10}, receive: true, tags: []string{"room"}},
		{name: "Floor", geom: geometry.Box(80, 1, 30), mat: p.Projection, pos: rl.Vector3{X: 0, Y: -10, Z: 5}, receive: true, tags: []string{"room"}},
		{name: "Box", geom: geometry.Box(3, 3, 3), mat: p.Shared, pos: rl.Vector3{X: -30, Y: 0, Z: 18}, cast: true, spin: rl.Vector3{Y: 3}, tags: []string{"prop"}},
		{name: "Torus", geom: geometry.Torus(5, 1, 16, 100), mat: p.Shared, pos: rl.Vector3{X: 12, Y: 3, Z: 8}, cast: true, receive: true, spin: rl.Vector3{X: 1, Y: 1}, tags: []string{"prop"}},
		{name: "Octahedron", geom: geometry.Octahedron(6, 2), mat: p.Shared, pos: rl.Vector3{X: -12, Y: 0, Z: 10}, cast: true, receive: true, spin: rl.Vector3{X: 1}, tags: []string{"prop"}},
	}

	objs := make([]*engine.GameObject, len(specs))
	for i, s := range specs {
		obj := engine.NewGameObject(s.name)
		obj.Tags = s.tags
		obj.Transform.Position = s.pos

		mr := components.NewMeshRenderer(s.geom, s.mat)
		mr.CastShadow = s.cast
		mr.ReceiveShadow = s.receive
		obj.AddComponent(mr)

		if s.spin != (rl.Vector3{}) {
			obj.AddComponent(components.NewSpinner(s.spin))
		}
		objs[i] = obj
	}
	if err := scene.AddGameObject(objs...); err != nil {
		return nil, fmt.Errorf("build scene: %w", err)
	}

	p.Wall, p.Floor, p.Box, p.Torus, p.Octahedron = objs[0], objs[1], objs[2], objs[3], objs[4]
	return p, nil
}
