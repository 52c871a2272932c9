package components

import (
	"math"

	"lightwall/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Spinner sets its object's rotation to Rate * elapsed on every axis with a
// non-zero rate. Angles are derived from the clock rather than accumulated, so
// they do not depend on frame rate.
type Spinner struct {
	engine.BaseComponent
	Rate rl.Vector3 // radians per second
}

func NewSpinner(rate rl.Vector3) *Spinner {
	return &Spinner{Rate: rate}
}

func (s *Spinner) Update(t engine.Time) {
	g := s.GetGameObject()
	if g == nil {
		return
	}
	if s.Rate.X != 0 {
		g.Transform.Rotation.X = SpinAngle(s.Rate.X, t.Elapsed)
	}
	if s.Rate.Y != 0 {
		g.Transform.Rotation.Y = SpinAngle(s.Rate.Y, t.Elapsed)
	}
	if s.Rate.Z != 0 {
		g.Transform.Rotation.Z = SpinAngle(s.Rate.Z, t.Elapsed)
	}
}

// SpinAngle returns rate*elapsed normalized into [0, 2π). The product is
// formed in float64 so precision holds for long runs.
func SpinAngle(rate float32, elapsed float64) float32 {
	a := math.Mod(float64(rate)*elapsed, 2*math.Pi)
	if a < 0 {
		a += 2 * math.Pi
	}
	return float32(a)
}
