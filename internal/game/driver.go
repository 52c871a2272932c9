package game

import (
	"lightwall/internal/engine"
	"lightwall/internal/tween"
)

// Tick advances the scene to elapsed seconds since start and draws it.
// Controls move the camera first, then tweens write positions, then
// spinners write rotations.
func (a *App) Tick(elapsed float64) {
	delta := float32(elapsed - a.lastElapsed)
	if delta < 0 {
		delta = 0
	}
	a.lastElapsed = elapsed

	if a.Controls.Update() {
		a.Camera.Target = a.Controls.Target
	}
	a.Tweens.Update(elapsed)
	a.World.Scene.Update(engine.Time{Elapsed: elapsed, Delta: delta})
	a.Renderer.Draw(a.Camera)
}

// registerTweens starts the looping prop motion. Targets are absolute
// positions; each tween starts from wherever its field is now.
func (a *App) registerTweens() {
	box := &a.Props.Box.Transform.Position
	oct := &a.Props.Octahedron.Transform.Position

	a.Tweens.To(&box.X, 30, tween.Options{Duration: 4, Ease: tween.QuadInOut, Repeat: tween.RepeatForever, Yoyo: true})
	a.Tweens.To(&box.Y, 15, tween.Options{Duration: 4, Ease: tween.QuadInOut, Repeat: tween.RepeatForever, Yoyo: true})
	a.Tweens.To(&oct.Y, 8, tween.Options{Duration: 1, Repeat: tween.RepeatForever, Yoyo: true})
}
