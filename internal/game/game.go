// Package game assembles the scene, its lights and camera, and drives them
// frame by frame.
package game

import (
	"context"
	"fmt"
	"log/slog"

	"lightwall/internal/camera"
	"lightwall/internal/components"
	"lightwall/internal/config"
	"lightwall/internal/engine"
	"lightwall/internal/panel"
	"lightwall/internal/tween"
	"lightwall/internal/world"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Renderer draws the scene from the camera. World is the real one.
type Renderer interface {
	Initialize() error
	Draw(cam *components.Camera)
	Unload()
}

// Window reports the host window's state for the current frame.
type Window interface {
	Size() (width, height int)
	PixelRatio() float32
	Resized() bool
	MousePosition() rl.Vector2
	PanelTogglePressed() bool
}

// PointerInput feeds the orbit controls and can be muted while the pointer
// is over the panel.
type PointerInput interface {
	camera.Input
	SetBlocked(blocked bool)
}

// Reloader hands over configs reloaded in the background.
type Reloader interface {
	Poll() (config.Config, bool)
}

// App is the single owner of all scene state.
type App struct {
	Config   config.Config
	World    *world.World
	Camera   *components.Camera
	Controls *camera.OrbitControls
	Panel    *panel.Panel
	Tweens   *tween.Engine
	Props    *Props
	Lighting *Lighting
	Viewport *world.Viewport

	Renderer Renderer
	Window   Window
	Input    PointerInput
	Clock    Clock
	Reloads  Reloader

	log         *slog.Logger
	lastElapsed float64
}

// New builds and seals the scene. It does not touch the GPU; Run does.
func New(cfg config.Config, log *slog.Logger) (*App, error) {
	w, err := world.New(cfg.Render, cfg.Window.Width, cfg.Window.Height)
	if err != nil {
		return nil, err
	}
	a := &App{
		Config:   cfg,
		World:    w,
		Panel:    panel.New("Light", cfg.Panel.Width),
		Tweens:   tween.NewEngine(),
		Renderer: w,
		log:      log,
	}
	a.Panel.Hidden = cfg.Panel.Hidden

	if a.Props, err = BuildScene(w.Scene); err != nil {
		return nil, err
	}
	if a.Lighting, err = BuildLighting(w.Scene, a.Panel, cfg.Light); err != nil {
		return nil, err
	}
	if err := a.setupCamera(cfg.Camera, cfg.Window, cfg.Render.MaxPixelRatio); err != nil {
		return nil, err
	}
	a.registerTweens()

	w.Scene.Seal()
	w.Renderer.Overlays = append(w.Renderer.Overlays, a.Panel.Draw)

	log.Debug("scene built", "objects", w.Scene.Len(), "tweens", a.Tweens.Active())
	return a, nil
}

func (a *App) setupCamera(cfg config.Camera, win config.Window, maxPixelRatio float32) error {
	obj := engine.NewGameObject("Camera")
	obj.Transform.Position = rl.Vector3{X: cfg.Position[0], Y: cfg.Position[1], Z: cfg.Position[2]}

	aspect := float32(win.Width) / float32(win.Height)
	a.Camera = components.NewPerspectiveCamera(cfg.FOV, aspect, cfg.Near, cfg.Far)
	obj.AddComponent(a.Camera)
	if err := a.World.Scene.AddGameObject(obj); err != nil {
		return fmt.Errorf("add camera: %w", err)
	}

	a.Controls = camera.NewOrbitControls(a.Camera)
	a.Controls.EnableDamping = cfg.Damping > 0
	a.Controls.DampingFactor = cfg.Damping

	a.Viewport = a.World.AttachCamera(a.Camera, maxPixelRatio)
	a.Viewport.Resize(win.Width, win.Height, 1)
	return nil
}

// Run initializes the renderer and hands the frame callback to sched until it
// returns. Window, Input and Clock must be set.
func (a *App) Run(ctx context.Context, sched Scheduler) error {
	if err := a.Renderer.Initialize(); err != nil {
		return fmt.Errorf("initialize renderer: %w", err)
	}
	defer a.Renderer.Unload()

	w, h := a.Window.Size()
	a.Viewport.Resize(w, h, a.Window.PixelRatio())
	a.log.Info("running", "width", a.Viewport.Width, "height", a.Viewport.Height, "pixel_ratio", a.Viewport.PixelRatio)

	return sched.Run(ctx, a.Frame)
}

// Frame handles this frame's events and then ticks at the clock's time.
func (a *App) Frame() {
	a.handleEvents()
	a.Tick(a.Clock.Elapsed())
}

func (a *App) handleEvents() {
	if a.Window.Resized() {
		w, h := a.Window.Size()
		if a.Viewport.Resize(w, h, a.Window.PixelRatio()) {
			a.log.Debug("resized", "width", w, "height", h, "pixel_ratio", a.Viewport.PixelRatio)
		}
	}
	if a.Window.PanelTogglePressed() {
		a.Panel.Toggle()
	}

	a.Input.SetBlocked(a.Panel.Contains(a.Window.MousePosition()))
	a.Controls.HandleInput(a.Input, float32(a.Viewport.Height))

	if a.Reloads != nil {
		if cfg, ok := a.Reloads.Poll(); ok {
			if err := a.Lighting.Apply(cfg.Light); err != nil {
				a.log.Warn("config reload", "err", err)
			}
		}
	}
}
