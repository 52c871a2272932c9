package engine

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Transform places an object in world space. Rotation holds Euler angles in
// radians, applied in X, Y, Z order.
type Transform struct {
	Position rl.Vector3
	Rotation rl.Vector3
	Scale    rl.Vector3
}

// Matrix returns the model matrix: scale, then rotate, then translate.
func (t Transform) Matrix() rl.Matrix {
	scaleMatrix := rl.MatrixScale(t.Scale.X, t.Scale.Y, t.Scale.Z)

	// Column-vector XYZ order means Z is applied to the vertex first.
	rotX := rl.MatrixRotateX(t.Rotation.X)
	rotY := rl.MatrixRotateY(t.Rotation.Y)
	rotZ := rl.MatrixRotateZ(t.Rotation.Z)
	rotMatrix := rl.MatrixMultiply(rl.MatrixMultiply(rotZ, rotY), rotX)

	transMatrix := rl.MatrixTranslate(t.Position.X, t.Position.Y, t.Position.Z)

	return rl.MatrixMultiply(rl.MatrixMultiply(scaleMatrix, rotMatrix), transMatrix)
}

type GameObject struct {
	Name       string
	Tags       []string
	Transform  Transform
	Active     bool
	Scene      *Scene
	components []Component
	started    bool
}

func NewGameObject(name string) *GameObject {
	return &GameObject{
		Name:   name,
		Active: true,
		Transform: Transform{
			Position: rl.Vector3{},
			Rotation: rl.Vector3{},
			Scale:    rl.Vector3{X: 1, Y: 1, Z: 1},
		},
		components: make([]Component, 0),
	}
}

func (g *GameObject) AddComponent(c Component) {
	c.SetGameObject(g)
	g.components = append(g.components, c)
}

// GetComponent returns the first component of type T, or the zero value.
func GetComponent[T any](g *GameObject) T {
	var zero T
	for _, c := range g.components {
		if typed, ok := c.(T); ok {
			return typed
		}
	}
	return zero
}

func (g *GameObject) Start() {
	if g.started {
		return
	}
	for _, c := range g.components {
		c.Start()
	}
	g.started = true
}

func (g *GameObject) Update(t Time) {
	if !g.Active {
		return
	}
	for _, c := range g.components {
		c.Update(t)
	}
}

func (g *GameObject) Components() []Component {
	return g.components
}

func (g *GameObject) HasTag(tag string) bool {
	for _, t := range g.Tags {
		if t == tag {
			return true
		}
	}
	return false
}
