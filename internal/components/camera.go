package components

import (
	"lightwall/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Camera is a perspective camera. Its position is the owning game object's
// position; it always looks at Target.
type Camera struct {
	engine.BaseComponent
	FOV    float32 // vertical, degrees
	Aspect float32
	Near   float32
	Far    float32
	Target rl.Vector3
	Up     rl.Vector3

	projection rl.Matrix
}

func NewPerspectiveCamera(fov, aspect, near, far float32) *Camera {
	c := &Camera{
		FOV:    fov,
		Aspect: aspect,
		Near:   near,
		Far:    far,
		Up:     rl.Vector3{X: 0, Y: 1, Z: 0},
	}
	c.UpdateProjectionMatrix()
	return c
}

// UpdateProjectionMatrix must be called after changing FOV, Aspect, Near or Far.
func (c *Camera) UpdateProjectionMatrix() {
	c.projection = rl.MatrixPerspective(c.FOV*rl.Deg2rad, c.Aspect, c.Near, c.Far)
}

func (c *Camera) SetAspect(aspect float32) {
	c.Aspect = aspect
	c.UpdateProjectionMatrix()
}

func (c *Camera) ProjectionMatrix() rl.Matrix {
	return c.projection
}

func (c *Camera) Position() rl.Vector3 {
	if g := c.GetGameObject(); g != nil {
		return g.Transform.Position
	}
	return rl.Vector3Zero()
}

func (c *Camera) SetPosition(p rl.Vector3) {
	if g := c.GetGameObject(); g != nil {
		g.Transform.Position = p
	}
}

func (c *Camera) ViewMatrix() rl.Matrix {
	return rl.MatrixLookAt(c.Position(), c.Target, c.Up)
}

// GetRaylibCamera returns the raylib camera for BeginMode3D. raylib derives
// its own projection from it, so callers follow up with
// rl.SetMatrixProjection(c.ProjectionMatrix()) to apply Near/Far and Aspect.
func (c *Camera) GetRaylibCamera() rl.Camera3D {
	return rl.Camera3D{
		Position:   c.Position(),
		Target:     c.Target,
		Up:         c.Up,
		Fovy:       c.FOV,
		Projection: rl.CameraPerspective,
	}
}

func (c *Camera) VerticalFOV() float32 {
	return c.FOV
}
