package game

import (
	"fmt"

	"lightwall/internal/components"
	"lightwall/internal/config"
	"lightwall/internal/engine"
	"lightwall/internal/panel"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Panel labels for the light controls.
const (
	LabelColour    = "Light Colour"
	LabelIntensity = "Light Intensity"
	LabelHeight    = "Light Height"
)

// Point light placement; only the height is adjustable.
const (
	lightX = 0
	lightZ = 32
)

type Lighting struct {
	Ambient       *components.AmbientLight
	Point         *components.PointLight
	PointObject   *engine.GameObject
	AmbientObject *engine.GameObject

	Colour    *panel.ColorControl
	Intensity *panel.Slider
	Height    *panel.Slider
}

// BuildLighting adds the ambient and point lights to scene and binds the point
// light's colour, intensity and height to p.
func BuildLighting(scene *engine.Scene, p *panel.Panel, cfg config.Light) (*Lighting, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("light: %w", err)
	}
	colour, err := components.ColorFromHex(cfg.Colour)
	if err != nil {
		return nil, fmt.Errorf("light: %w", err)
	}

	ambientObj := engine.NewGameObject("AmbientLight")
	ambient := components.NewAmbientLight(components.MustColor("#ffffff"), 0.1)
	ambientObj.AddComponent(ambient)

	pointObj := engine.NewGameObject("PointLight")
	pointObj.Transform.Position = rl.Vector3{X: lightX, Y: cfg.Height, Z: lightZ}
	point := components.NewPointLight(colour, cfg.Intensity)
	point.CastShadow = true
	pointObj.AddComponent(point)

	if err := scene.AddGameObject(ambientObj, pointObj); err != nil {
		return nil, fmt.Errorf("build lighting: %w", err)
	}

	l := &Lighting{
		Ambient:       ambient,
		Point:         point,
		PointObject:   pointObj,
		AmbientObject: ambientObj,
	}
	l.Colour = p.AddColor(LabelColour, &point.Color)
	l.Intensity = p.AddSlider(LabelIntensity, &point.Intensity, config.MinIntensity, config.MaxIntensity, 0.01)
	l.Height = p.AddSlider(LabelHeight, &pointObj.Transform.Position.Y, config.MinHeight, config.MaxHeight, 0.1)
	return l, nil
}

// Apply routes reloaded light settings through the panel controls, so they
// are clamped and snapped the same way interactive edits are.
func (l *Lighting) Apply(cfg config.Light) error {
	colour, err := components.ColorFromHex(cfg.Colour)
	if err != nil {
		return fmt.Errorf("apply light: %w", err)
	}
	l.Colour.Set(colour)
	l.Intensity.Set(cfg.Intensity)
	l.Height.Set(cfg.Height)
	return nil
}
