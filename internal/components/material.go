package components

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// Material is the surface appearance of a mesh. Meshes hold a pointer, so
// several meshes can share one Material and see each other's edits.
type Material struct {
	Name      string
	Color     rl.Color
	Roughness float32
}

func NewMaterial(name string, color rl.Color, roughness float32) *Material {
	return &Material{
		Name:      name,
		Color:     color,
		Roughness: roughness,
	}
}

// ColorFromHex parses "#rrggbb" into an opaque raylib color.
func ColorFromHex(hex string) (rl.Color, error) {
	c, err := colorful.Hex(hex)
	if err != nil {
		return rl.Color{}, fmt.Errorf("parse colour %q: %w", hex, err)
	}
	r, g, b := c.RGB255()
	return rl.NewColor(r, g, b, 255), nil
}

// MustColor is ColorFromHex for literals known to be valid.
func MustColor(hex string) rl.Color {
	c, err := ColorFromHex(hex)
	if err != nil {
		panic(err)
	}
	return c
}

// HexString formats the RGB part of c as "#rrggbb".
func HexString(c rl.Color) string {
	return colorful.Color{
		R: float64(c.R) / 255.0,
		G: float64(c.G) / 255.0,
		B: float64(c.B) / 255.0,
	}.Hex()
}

func colorFloat(c rl.Color, intensity float32) []float32 {
	return []float32{
		float32(c.R) / 255.0 * intensity,
		float32(c.G) / 255.0 * intensity,
		float32(c.B) / 255.0 * intensity,
	}
}
