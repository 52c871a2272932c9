// Package panel is a small live parameter panel drawn with raygui. Controls
// are bound to fields through pointers; the panel writes them directly.
package panel

import (
	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	headerHeight = 24
	rowHeight    = 28
	padding      = 8
	labelWidth   = 130
)

// Control is one row (or block of rows) in the panel.
type Control interface {
	Label() string
	Height() float32
	draw(bounds rl.Rectangle)
}

type Panel struct {
	Title  string
	X, Y   float32
	Width  float32
	Hidden bool

	controls []Control
}

func New(title string, width float32) *Panel {
	return &Panel{
		Title: title,
		Width: width,
	}
}

// AddSlider binds a numeric field. Any value written through the slider is
// clamped to [min, max] and snapped to step.
func (p *Panel) AddSlider(label string, value *float32, min, max, step float32) *Slider {
	s := &Slider{
		label: label,
		value: value,
		min:   min,
		max:   max,
		step:  step,
	}
	p.controls = append(p.controls, s)
	return s
}

// AddColor binds a color field.
func (p *Panel) AddColor(label string, value *rl.Color) *ColorControl {
	c := &ColorControl{
		label: label,
		value: value,
	}
	p.controls = append(p.controls, c)
	return c
}

func (p *Panel) Controls() []Control {
	return p.controls
}

// Find returns the control with the given label, or nil.
func (p *Panel) Find(label string) Control {
	for _, c := range p.controls {
		if c.Label() == label {
			return c
		}
	}
	return nil
}

// Bounds is the panel's on-screen rectangle. Hidden panels keep only their
// header, which toggles them back.
func (p *Panel) Bounds() rl.Rectangle {
	h := float32(headerHeight)
	if !p.Hidden {
		h += padding
		for _, c := range p.controls {
			h += c.Height()
		}
		h += padding
	}
	return rl.Rectangle{X: p.X, Y: p.Y, Width: p.Width, Height: h}
}

func (p *Panel) Contains(point rl.Vector2) bool {
	return rl.CheckCollisionPointRec(point, p.Bounds())
}

// Toggle shows or hides the controls.
func (p *Panel) Toggle() {
	p.Hidden = !p.Hidden
}

// Draw renders the panel and applies any interaction from this frame.
// It must run between rl.BeginDrawing and rl.EndDrawing.
func (p *Panel) Draw() {
	b := p.Bounds()
	header := rl.Rectangle{X: b.X, Y: b.Y, Width: b.Width, Height: headerHeight}
	if p.Hidden {
		if gui.Button(header, "Open Controls") {
			p.Hidden = false
		}
		return
	}
	gui.Panel(b, p.Title)

	y := b.Y + headerHeight + padding
	for _, c := range p.controls {
		row := rl.Rectangle{X: b.X + padding, Y: y, Width: b.Width - 2*padding, Height: c.Height()}
		c.draw(row)
		y += c.Height()
	}
}
