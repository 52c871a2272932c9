package components

import (
	"lightwall/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// PointLight emits from its game object's position in every direction.
type PointLight struct {
	engine.BaseComponent
	Color      rl.Color
	Intensity  float32
	CastShadow bool
}

func NewPointLight(color rl.Color, intensity float32) *PointLight {
	return &PointLight{
		Color:     color,
		Intensity: intensity,
	}
}

func (p *PointLight) GetPosition() rl.Vector3 {
	if g := p.GetGameObject(); g != nil {
		return g.Transform.Position
	}
	return rl.Vector3Zero()
}

// GetColorFloat returns the color premultiplied by intensity.
func (p *PointLight) GetColorFloat() []float32 {
	return colorFloat(p.Color, p.Intensity)
}
