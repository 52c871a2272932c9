package game

import (
	"context"
	"sync/atomic"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Scheduler calls frame once per display refresh until it is stopped.
type Scheduler interface {
	Run(ctx context.Context, frame func()) error
	Stop()
}

// Clock reports seconds since the app started. It never goes backwards.
type Clock interface {
	Elapsed() float64
}

// RaylibScheduler runs frames until the window closes, Stop is called or the
// context is cancelled. Frames are paced by rl.SetTargetFPS and vsync.
type RaylibScheduler struct {
	stopped atomic.Bool
}

// Run returns nil when the window closes or Stop is called, and the
// context's error when it is cancelled.
func (s *RaylibScheduler) Run(ctx context.Context, frame func()) error {
	for !rl.WindowShouldClose() {
		if s.stopped.Load() {
			return nil
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		frame()
	}
	return nil
}

// Stop ends Run before its next frame. Safe to call from any goroutine.
func (s *RaylibScheduler) Stop() {
	s.stopped.Store(true)
}

// RaylibClock counts from the first call to Elapsed.
type RaylibClock struct {
	start   float64
	started bool
}

func (c *RaylibClock) Elapsed() float64 {
	now := rl.GetTime()
	if !c.started {
		c.start = now
		c.started = true
	}
	return now - c.start
}

type RaylibWindow struct{}

func (RaylibWindow) Size() (int, int) {
	return rl.GetScreenWidth(), rl.GetScreenHeight()
}

func (RaylibWindow) PixelRatio() float32 {
	return rl.GetWindowScaleDPI().X
}

func (RaylibWindow) Resized() bool {
	return rl.IsWindowResized()
}

func (RaylibWindow) MousePosition() rl.Vector2 {
	return rl.GetMousePosition()
}

func (RaylibWindow) PanelTogglePressed() bool {
	return rl.IsKeyPressed(rl.KeyH)
}
