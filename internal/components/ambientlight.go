package components

import (
	"lightwall/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// AmbientLight lights every surface equally, regardless of orientation.
type AmbientLight struct {
	engine.BaseComponent
	Color     rl.Color
	Intensity float32
}

func NewAmbientLight(color rl.Color, intensity float32) *AmbientLight {
	return &AmbientLight{
		Color:     color,
		Intensity: intensity,
	}
}

func (a *AmbientLight) GetColorFloat() []float32 {
	return colorFloat(a.Color, a.Intensity)
}
