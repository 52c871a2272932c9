package game

import (
	"context"
	"log/slog"
	"math"
	"testing"

	"lightwall/internal/components"
	"lightwall/internal/config"
	"lightwall/internal/engine"
	"lightwall/internal/panel"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRenderer struct {
	initialized bool
	unloaded    bool
	draws       int
	onDraw      func()
}

func (f *fakeRenderer) Initialize() error { f.initialized = true; return nil }
func (f *fakeRenderer) Unload()           { f.unloaded = true }
func (f *fakeRenderer) Draw(cam *components.Camera) {
	f.draws++
	if f.onDraw != nil {
		f.onDraw()
	}
}

type fakeWindow struct {
	w, h    int
	ratio   float32
	resized bool
	mouse   rl.Vector2
	toggle  bool
}

func (f *fakeWindow) Size() (int, int)          { return f.w, f.h }
func (f *fakeWindow) PixelRatio() float32       { return f.ratio }
func (f *fakeWindow) Resized() bool             { return f.resized }
func (f *fakeWindow) MousePosition() rl.Vector2 { return f.mouse }
func (f *fakeWindow) PanelTogglePressed() bool  { return f.toggle }

type fakeInput struct {
	delta   rl.Vector2
	rotate  bool
	blocked bool
}

func (f *fakeInput) MouseDelta() rl.Vector2 {
	if f.blocked {
		return rl.Vector2{}
	}
	return f.delta
}
func (f *fakeInput) RotateHeld() bool   { return f.rotate && !f.blocked }
func (f *fakeInput) PanHeld() bool      { return false }
func (f *fakeInput) WheelMove() float32 { return 0 }
func (f *fakeInput) SetBlocked(b bool)  { f.blocked = b }

type fakeClock struct{ now float64 }

func (f *fakeClock) Elapsed() float64 { return f.now }

// fakeScheduler runs a fixed number of frames, advancing the clock by dt.
type fakeScheduler struct {
	frames  int
	dt      float64
	clock   *fakeClock
	stopped bool
}

func (s *fakeScheduler) Run(ctx context.Context, frame func()) error {
	for i := 0; i < s.frames && !s.stopped; i++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		s.clock.now += s.dt
		frame()
	}
	return nil
}

func (s *fakeScheduler) Stop() { s.stopped = true }

type fakeReloader struct{ pending []config.Config }

func (f *fakeReloader) Poll() (config.Config, bool) {
	if len(f.pending) == 0 {
		return config.Config{}, false
	}
	cfg := f.pending[len(f.pending)-1]
	f.pending = nil
	return cfg, true
}

func newTestApp(t *testing.T) (*App, *fakeRenderer, *fakeWindow, *fakeInput, *fakeClock) {
	t.Helper()
	cfg := config.Default()
	app, err := New(cfg, slog.New(slog.DiscardHandler))
	require.NoError(t, err)

	r := &fakeRenderer{}
	win := &fakeWindow{w: cfg.Window.Width, h: cfg.Window.Height, ratio: 1, mouse: rl.Vector2{X: -100, Y: -100}}
	in := &fakeInput{}
	clock := &fakeClock{}
	app.Renderer = r
	app.Window = win
	app.Input = in
	app.Clock = clock
	return app, r, win, in, clock
}

func TestNewBuildsSealedScene(t *testing.T) {
	app, _, _, _, _ := newTestApp(t)
	scene := app.World.Scene

	assert.Equal(t, 8, scene.Len())
	assert.True(t, scene.Sealed())
	for _, name := range []string{"Wall", "Floor", "Box", "Torus", "Octahedron", "AmbientLight", "PointLight", "Camera"} {
		assert.NotNil(t, scene.FindByName(name), name)
	}
	assert.Len(t, engine.Components[*components.MeshRenderer](scene), 5)

	_, err := BuildScene(scene)
	assert.ErrorIs(t, err, engine.ErrSceneSealed)
	assert.Equal(t, 8, scene.Len())
}

func TestBuildScenePlacement(t *testing.T) {
	scene := engine.NewScene("test")
	p, err := BuildScene(scene)
	require.NoError(t, err)

	assert.Equal(t, rl.Vector3{X: 0, Y: 5, Z: -10}, p.Wall.Transform.Position)
	assert.Equal(t, rl.Vector3{X: 0, Y: -10, Z: 5}, p.Floor.Transform.Position)
	assert.Equal(t, rl.Vector3{X: -30, Y: 0, Z: 18}, p.Box.Transform.Position)
	assert.Equal(t, rl.Vector3{X: 12, Y: 3, Z: 8}, p.Torus.Transform.Position)
	assert.Equal(t, rl.Vector3{X: -12, Y: 0, Z: 10}, p.Octahedron.Transform.Position)

	shadows := map[string][2]bool{
		"Wall": {false, true}, "Floor": {false, true},
		"Box": {true, false}, "Torus": {true, true}, "Octahedron": {true, true},
	}
	for name, want := range shadows {
		mr := engine.GetComponent[*components.MeshRenderer](scene.FindByName(name))
		require.NotNil(t, mr, name)
		assert.Equal(t, want[0], mr.CastShadow, "%s cast", name)
		assert.Equal(t, want[1], mr.ReceiveShadow, "%s receive", name)
	}

	assert.Equal(t, float32(1), p.Projection.Roughness)
	assert.Equal(t, float32(5), p.Shared.Roughness)
	assert.Equal(t, "#f4f4f4", components.HexString(p.Shared.Color))
}

func TestSharedMaterialIsAliased(t *testing.T) {
	scene := engine.NewScene("test")
	p, err := BuildScene(scene)
	require.NoError(t, err)

	p.Shared.Color = rl.Blue
	for _, obj := range []*engine.GameObject{p.Box, p.Torus, p.Octahedron} {
		mr := engine.GetComponent[*components.MeshRenderer](obj)
		assert.Same(t, p.Shared, mr.Material)
		assert.Equal(t, rl.Blue, mr.Material.Color)
	}
	for _, obj := range []*engine.GameObject{p.Wall, p.Floor} {
		assert.Same(t, p.Projection, engine.GetComponent[*components.MeshRenderer](obj).Material)
	}
}

func TestTickRotations(t *testing.T) {
	app, _, _, _, _ := newTestApp(t)
	p := app.Props

	app.Tick(2)
	assert.InDelta(t, 6.0, p.Box.Transform.Rotation.Y, 1e-5)
	assert.InDelta(t, 2.0, p.Octahedron.Transform.Rotation.X, 1e-5)
	assert.InDelta(t, 2.0, p.Torus.Transform.Rotation.X, 1e-5)
	assert.InDelta(t, 2.0, p.Torus.Transform.Rotation.Y, 1e-5)

	app.Tick(3)
	assert.InDelta(t, math.Mod(9, 2*math.Pi), p.Box.Transform.Rotation.Y, 1e-5)
	assert.Zero(t, p.Box.Transform.Rotation.X)
	assert.Zero(t, p.Octahedron.Transform.Rotation.Y)
	assert.Zero(t, p.Wall.Transform.Rotation)
}

func TestTweenBounds(t *testing.T) {
	app, _, _, _, _ := newTestApp(t)
	box := &app.Props.Box.Transform.Position
	oct := &app.Props.Octahedron.Transform.Position
	const eps = 1e-4

	for i := 0; i <= 400; i++ {
		app.Tick(float64(i) * 0.05)
		assert.True(t, box.X >= -30-eps && box.X <= 30+eps, "box.x %v", box.X)
		assert.True(t, box.Y >= -eps && box.Y <= 15+eps, "box.y %v", box.Y)
		assert.True(t, oct.Y >= -eps && oct.Y <= 8+eps, "oct.y %v", oct.Y)
		// tweens never touch the depth axis
		assert.Equal(t, float32(18), box.Z)
		assert.Equal(t, float32(10), oct.Z)
	}
}

func TestTweenPeriod(t *testing.T) {
	app, _, _, _, _ := newTestApp(t)
	box := &app.Props.Box.Transform.Position
	oct := &app.Props.Octahedron.Transform.Position

	app.Tick(1)
	assert.InDelta(t, 8, oct.Y, 1e-4)
	app.Tick(2)
	assert.InDelta(t, 0, oct.Y, 1e-4)
	app.Tick(4)
	assert.InDelta(t, 30, box.X, 1e-4)
	assert.InDelta(t, 15, box.Y, 1e-4)
	app.Tick(8)
	assert.InDelta(t, -30, box.X, 1e-4)
	assert.InDelta(t, 0, box.Y, 1e-4)

	// halfway through a quad in-out pass is the midpoint
	app.Tick(10)
	assert.InDelta(t, 0, box.X, 1e-4)
	assert.InDelta(t, 7.5, box.Y, 1e-4)
	assert.Equal(t, 3, app.Tweens.Active())
}

func TestTickDrawsAfterUpdates(t *testing.T) {
	app, r, _, _, _ := newTestApp(t)
	var atDraw rl.Vector3
	r.onDraw = func() { atDraw = app.Props.Box.Transform.Rotation }

	app.Tick(1)
	assert.Equal(t, 1, r.draws)
	assert.InDelta(t, 3.0, atDraw.Y, 1e-5)
}

func TestFrameAppliesResize(t *testing.T) {
	app, _, win, _, _ := newTestApp(t)

	win.resized = true
	win.w, win.h, win.ratio = 1000, 500, 3
	app.Frame()
	assert.InDelta(t, 2.0, app.Camera.Aspect, 1e-6)
	assert.Equal(t, float32(2), app.Viewport.PixelRatio)
	assert.Equal(t, 1000, app.World.Surface.Width)

	win.w, win.h = 0, 0
	app.Frame()
	assert.InDelta(t, 2.0, app.Camera.Aspect, 1e-6)
	assert.Equal(t, 1000, app.Viewport.Width)
}

func TestEntityCountConstant(t *testing.T) {
	app, _, win, _, clock := newTestApp(t)
	win.resized = true
	sched := &fakeScheduler{frames: 120, dt: 1.0 / 60, clock: clock}

	require.NoError(t, app.Run(context.Background(), sched))
	assert.Equal(t, 8, app.World.Scene.Len())
}

func TestRunLifecycle(t *testing.T) {
	app, r, _, _, clock := newTestApp(t)
	sched := &fakeScheduler{frames: 3, dt: 0.5, clock: clock}

	require.NoError(t, app.Run(context.Background(), sched))
	assert.True(t, r.initialized)
	assert.True(t, r.unloaded)
	assert.Equal(t, 3, r.draws)
	assert.InDelta(t, 4.5, app.Props.Box.Transform.Rotation.Y, 1e-5)
}

func TestRunCancelled(t *testing.T) {
	app, r, _, _, clock := newTestApp(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := app.Run(ctx, &fakeScheduler{frames: 10, dt: 0.1, clock: clock})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Zero(t, r.draws)
	assert.True(t, r.unloaded)
}

func TestColourBindingOnlyTouchesColour(t *testing.T) {
	app, _, _, _, _ := newTestApp(t)
	l := app.Lighting
	before := *l.Point
	height := l.PointObject.Transform.Position
	ambient := *l.Ambient
	shared := *app.Props.Shared

	l.Colour.Set(rl.NewColor(0x12, 0x34, 0x56, 10))

	assert.Equal(t, rl.NewColor(0x12, 0x34, 0x56, 255), l.Point.Color)
	assert.Equal(t, before.Intensity, l.Point.Intensity)
	assert.Equal(t, before.CastShadow, l.Point.CastShadow)
	assert.Equal(t, height, l.PointObject.Transform.Position)
	assert.Equal(t, ambient.Color, l.Ambient.Color)
	assert.Equal(t, ambient.Intensity, l.Ambient.Intensity)
	assert.Equal(t, shared, *app.Props.Shared)
}

func TestLightDefaults(t *testing.T) {
	app, _, _, _, _ := newTestApp(t)
	l := app.Lighting

	assert.Equal(t, "#de5555", components.HexString(l.Point.Color))
	assert.InDelta(t, 0.6, l.Point.Intensity, 1e-6)
	assert.True(t, l.Point.CastShadow)
	assert.Equal(t, rl.Vector3{X: 0, Y: 8, Z: 32}, l.PointObject.Transform.Position)
	assert.Equal(t, "#ffffff", components.HexString(l.Ambient.Color))
	assert.InDelta(t, 0.1, l.Ambient.Intensity, 1e-6)
}

func TestSliderRanges(t *testing.T) {
	app, _, _, _, _ := newTestApp(t)

	intensity, ok := app.Panel.Find(LabelIntensity).(*panel.Slider)
	require.True(t, ok)
	lo, hi, step := intensity.Range()
	assert.Equal(t, [3]float32{0.1, 1, 0.01}, [3]float32{lo, hi, step})

	height, ok := app.Panel.Find(LabelHeight).(*panel.Slider)
	require.True(t, ok)
	lo, hi, step = height.Range()
	assert.Equal(t, [3]float32{0, 15, 0.1}, [3]float32{lo, hi, step})

	height.Set(50)
	assert.Equal(t, float32(15), app.Lighting.PointObject.Transform.Position.Y)
	height.Set(-3)
	assert.Equal(t, float32(0), app.Lighting.PointObject.Transform.Position.Y)
	intensity.Set(0)
	assert.InDelta(t, 0.1, app.Lighting.Point.Intensity, 1e-6)

	_, ok = app.Panel.Find(LabelColour).(*panel.ColorControl)
	assert.True(t, ok)
}

func TestReloadRoutesThroughControls(t *testing.T) {
	app, _, _, _, _ := newTestApp(t)
	cfg := config.Default()
	cfg.Light = config.Light{Colour: "#00ff00", Intensity: 0.35, Height: 12}
	stale := config.Default()
	stale.Light.Colour = "#0000ff"
	app.Reloads = &fakeReloader{pending: []config.Config{stale, cfg}}

	app.Frame()
	l := app.Lighting
	assert.Equal(t, rl.NewColor(0, 255, 0, 255), l.Point.Color)
	assert.InDelta(t, 0.35, l.Point.Intensity, 1e-6)
	assert.InDelta(t, 12, l.PointObject.Transform.Position.Y, 1e-5)

	// Apply clamps like the sliders do
	require.NoError(t, l.Apply(config.Light{Colour: "#ffffff", Intensity: 7, Height: 99}))
	assert.Equal(t, float32(1), l.Point.Intensity)
	assert.Equal(t, float32(15), l.PointObject.Transform.Position.Y)

	assert.Error(t, l.Apply(config.Light{Colour: "zzz", Intensity: 0.5, Height: 1}))
}

func TestPanelBlocksOrbitInput(t *testing.T) {
	app, _, win, in, _ := newTestApp(t)
	start := app.Camera.Position()
	in.rotate = true
	in.delta = rl.Vector2{X: 40}

	win.mouse = rl.Vector2{X: 10, Y: 10}
	app.Frame()
	assert.True(t, in.blocked)
	assert.Equal(t, start, app.Camera.Position())

	win.mouse = rl.Vector2{X: 900, Y: 400}
	app.Frame()
	assert.False(t, in.blocked)
	app.Frame()
	assert.NotEqual(t, start, app.Camera.Position())
}

func TestPanelToggle(t *testing.T) {
	app, _, win, _, _ := newTestApp(t)
	require.False(t, app.Panel.Hidden)

	win.toggle = true
	app.Frame()
	assert.True(t, app.Panel.Hidden)
	app.Frame()
	assert.False(t, app.Panel.Hidden)
}
