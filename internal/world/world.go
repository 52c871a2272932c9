package world

import (
	"fmt"

	"lightwall/internal/components"
	"lightwall/internal/config"
	"lightwall/internal/engine"
)

// World owns the scene container and everything needed to draw it.
type World struct {
	Scene    *engine.Scene
	Surface  *Surface
	Renderer *Renderer
	Viewport *Viewport
}

// New creates an empty scene and the render path for a window of the given
// logical size. Nothing touches the GPU until Initialize.
func New(cfg config.Render, width, height int) (*World, error) {
	surface := NewSurface(width, height, 1)
	renderer, err := NewRenderer(cfg, surface)
	if err != nil {
		return nil, fmt.Errorf("renderer: %w", err)
	}
	return &World{
		Scene:    engine.NewScene("Main"),
		Surface:  surface,
		Renderer: renderer,
	}, nil
}

// Initialize loads GPU resources, wires the scene lights into the renderer and
// starts every game object.
func (w *World) Initialize() error {
	if err := w.Renderer.Initialize(); err != nil {
		return err
	}
	var point *components.PointLight
	if lights := engine.Components[*components.PointLight](w.Scene); len(lights) > 0 {
		point = lights[0]
	}
	var ambient *components.AmbientLight
	if lights := engine.Components[*components.AmbientLight](w.Scene); len(lights) > 0 {
		ambient = lights[0]
	}
	w.Renderer.SetLights(point, ambient)

	w.Scene.Start()
	return nil
}

// AttachCamera creates the viewport that keeps cam and the surface in step
// with the window.
func (w *World) AttachCamera(cam *components.Camera, maxPixelRatio float32) *Viewport {
	w.Viewport = NewViewport(cam, w.Surface, maxPixelRatio)
	return w.Viewport
}

func (w *World) Draw(cam *components.Camera) {
	w.Renderer.Render(w.Scene, cam)
}

func (w *World) Unload() {
	w.Renderer.Unload(w.Scene)
}
