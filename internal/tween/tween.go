// Package tween animates float32 fields toward a target value over time.
package tween

import (
	"math"

	"github.com/gen2brain/raylib-go/easings"
)

// Ease has the Robert Penner signature used by the easings package:
// t is the current time, b the start value, c the change and d the duration.
type Ease func(t, b, c, d float32) float32

var (
	Linear    Ease = easings.LinearNone
	QuadIn    Ease = easings.QuadIn
	QuadOut   Ease = easings.QuadOut
	QuadInOut Ease = easings.QuadInOut
	SineInOut Ease = easings.SineInOut
	CubicOut  Ease = easings.CubicOut
)

// RepeatForever makes a tween restart indefinitely.
const RepeatForever = -1

type Options struct {
	// Duration of one pass in seconds.
	Duration float64
	// Ease defaults to QuadOut.
	Ease Ease
	// Repeat is the number of extra passes after the first, or RepeatForever.
	Repeat int
	// Yoyo plays every odd pass backwards.
	Yoyo bool
}

type Tween struct {
	target *float32
	from   float32
	to     float32
	opts   Options
	start  float64
	done   bool
}

// ValueAt returns the animated value at absolute time now and whether the
// tween has finished.
func (tw *Tween) ValueAt(now float64) (float32, bool) {
	local := now - tw.start
	if local <= 0 {
		return tw.from, false
	}
	d := tw.opts.Duration
	if d <= 0 {
		return tw.to, true
	}

	cycle := math.Floor(local / d)
	if tw.opts.Repeat != RepeatForever && cycle > float64(tw.opts.Repeat) {
		if tw.opts.Yoyo && tw.opts.Repeat%2 == 1 {
			return tw.from, true
		}
		return tw.to, true
	}

	p := float32((local - cycle*d) / d)
	if tw.opts.Yoyo && int64(cycle)%2 == 1 {
		p = 1 - p
	}
	eased := tw.opts.Ease(p, 0, 1, 1)
	return tw.from + (tw.to-tw.from)*eased, false
}

// Range returns the start and end values of one forward pass.
func (tw *Tween) Range() (from, to float32) {
	return tw.from, tw.to
}

func (tw *Tween) Done() bool {
	return tw.done
}

// Engine owns a set of tweens and advances them against one clock.
type Engine struct {
	tweens []*Tween
	now    float64
}

func NewEngine() *Engine {
	return &Engine{}
}

// To starts animating *target from its current value toward to, beginning at
// the engine's current time.
func (e *Engine) To(target *float32, to float32, opts Options) *Tween {
	if opts.Ease == nil {
		opts.Ease = QuadOut
	}
	tw := &Tween{
		target: target,
		from:   *target,
		to:     to,
		opts:   opts,
		start:  e.now,
	}
	e.tweens = append(e.tweens, tw)
	return tw
}

// Update moves the engine clock to now (seconds) and writes every tween's
// value. Finished tweens write their final value once and are dropped.
func (e *Engine) Update(now float64) {
	if now < e.now {
		now = e.now
	}
	e.now = now

	kept := e.tweens[:0]
	for _, tw := range e.tweens {
		v, done := tw.ValueAt(now)
		*tw.target = v
		if done {
			tw.done = true
			continue
		}
		kept = append(kept, tw)
	}
	for i := len(kept); i < len(e.tweens); i++ {
		e.tweens[i] = nil
	}
	e.tweens = kept
}

// Active reports how many tweens are still running.
func (e *Engine) Active() int {
	return len(e.tweens)
}

func (e *Engine) Now() float64 {
	return e.now
}
