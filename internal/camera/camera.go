// Package camera implements orbit controls: drag to orbit around a target,
// scroll to zoom, right-drag to pan, with optional damping.
package camera

import (
	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Input is what the controls read each frame.
type Input interface {
	MouseDelta() rl.Vector2
	RotateHeld() bool
	PanHeld() bool
	WheelMove() float32
}

// Rig is the camera the controls steer.
type Rig interface {
	Position() rl.Vector3
	SetPosition(p rl.Vector3)
	VerticalFOV() float32 // degrees
}

const polarEpsilon = 1e-6

type OrbitControls struct {
	Target rl.Vector3

	EnableDamping bool
	DampingFactor float32
	RotateSpeed   float32
	ZoomSpeed     float32
	PanSpeed      float32
	MinDistance   float32
	MaxDistance   float32

	rig Rig

	// pending motion not yet applied to the camera
	deltaTheta float32
	deltaPhi   float32
	scale      float32
	panOffset  rl.Vector3
}

func NewOrbitControls(rig Rig) *OrbitControls {
	return &OrbitControls{
		rig:           rig,
		DampingFactor: 0.05,
		RotateSpeed:   1,
		ZoomSpeed:     1,
		PanSpeed:      1,
		MinDistance:   0,
		MaxDistance:   math32.Inf(1),
		scale:         1,
	}
}

// HandleInput accumulates this frame's pointer motion. viewportHeight is in
// pixels; a drag across the full height orbits one full turn.
func (c *OrbitControls) HandleInput(in Input, viewportHeight float32) {
	if viewportHeight <= 0 {
		return
	}
	d := in.MouseDelta()

	if in.RotateHeld() {
		c.RotateLeft(2 * math32.Pi * d.X / viewportHeight * c.RotateSpeed)
		c.RotateUp(2 * math32.Pi * d.Y / viewportHeight * c.RotateSpeed)
	} else if in.PanHeld() {
		c.pan(d.X, d.Y, viewportHeight)
	}

	if w := in.WheelMove(); w != 0 {
		step := math32.Pow(0.95, c.ZoomSpeed)
		if w > 0 {
			c.scale *= step
		} else {
			c.scale /= step
		}
	}
}

func (c *OrbitControls) RotateLeft(angle float32) {
	c.deltaTheta -= angle
}

func (c *OrbitControls) RotateUp(angle float32) {
	c.deltaPhi -= angle
}

// pan moves the target in the view plane, scaled so the point under the
// cursor stays under the cursor at the target's depth.
func (c *OrbitControls) pan(dx, dy, viewportHeight float32) {
	offset := rl.Vector3Subtract(c.rig.Position(), c.Target)
	dist := rl.Vector3Length(offset) * math32.Tan(c.rig.VerticalFOV()/2*rl.Deg2rad)

	forward := rl.Vector3Normalize(rl.Vector3Negate(offset))
	right := rl.Vector3Normalize(rl.Vector3CrossProduct(forward, rl.Vector3{Y: 1}))
	up := rl.Vector3CrossProduct(right, forward)

	left := rl.Vector3Scale(right, -2*dx*dist/viewportHeight*c.PanSpeed)
	upMove := rl.Vector3Scale(up, 2*dy*dist/viewportHeight*c.PanSpeed)
	c.panOffset = rl.Vector3Add(c.panOffset, rl.Vector3Add(left, upMove))
}

// Update applies pending motion to the camera and reports whether it moved.
// With damping, only a fraction of the pending motion is applied each call
// and the remainder decays, so the camera eases to rest.
func (c *OrbitControls) Update() bool {
	if c.Settled() {
		return false
	}
	pos := c.rig.Position()
	offset := rl.Vector3Subtract(pos, c.Target)

	radius, theta, phi := toSpherical(offset)

	if c.EnableDamping {
		theta += c.deltaTheta * c.DampingFactor
		phi += c.deltaPhi * c.DampingFactor
	} else {
		theta += c.deltaTheta
		phi += c.deltaPhi
	}
	phi = clamp(phi, polarEpsilon, math32.Pi-polarEpsilon)

	radius = clamp(radius*c.scale, c.MinDistance, c.MaxDistance)

	if c.EnableDamping {
		c.Target = rl.Vector3Add(c.Target, rl.Vector3Scale(c.panOffset, c.DampingFactor))
	} else {
		c.Target = rl.Vector3Add(c.Target, c.panOffset)
	}

	next := rl.Vector3Add(c.Target, fromSpherical(radius, theta, phi))
	c.rig.SetPosition(next)

	if c.EnableDamping {
		c.deltaTheta *= 1 - c.DampingFactor
		c.deltaPhi *= 1 - c.DampingFactor
		c.panOffset = rl.Vector3Scale(c.panOffset, 1-c.DampingFactor)
	} else {
		c.deltaTheta = 0
		c.deltaPhi = 0
		c.panOffset = rl.Vector3Zero()
	}
	c.scale = 1

	return rl.Vector3DistanceSqr(pos, next) > 1e-6
}

// Settled reports whether no pending motion is left.
func (c *OrbitControls) Settled() bool {
	const eps = 1e-6
	return math32.Abs(c.deltaTheta) < eps &&
		math32.Abs(c.deltaPhi) < eps &&
		rl.Vector3Length(c.panOffset) < eps &&
		c.scale == 1
}

// toSpherical uses Y as the polar axis: theta is the angle around Y measured
// from +Z, phi the angle down from +Y.
func toSpherical(v rl.Vector3) (radius, theta, phi float32) {
	radius = rl.Vector3Length(v)
	if radius == 0 {
		return 0, 0, 0
	}
	theta = math32.Atan2(v.X, v.Z)
	phi = math32.Acos(clamp(v.Y/radius, -1, 1))
	return radius, theta, phi
}

func fromSpherical(radius, theta, phi float32) rl.Vector3 {
	s := math32.Sin(phi) * radius
	return rl.Vector3{
		X: s * math32.Sin(theta),
		Y: math32.Cos(phi) * radius,
		Z: s * math32.Cos(theta),
	}
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
