package panel

import (
	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
	colorful "github.com/lucasb-eyer/go-colorful"
)

const pickerHeight = 120

type ColorControl struct {
	label    string
	value    *rl.Color
	onChange func(rl.Color)
}

func (c *ColorControl) Label() string   { return c.label }
func (c *ColorControl) Height() float32 { return rowHeight + pickerHeight + padding }

func (c *ColorControl) Value() rl.Color {
	return *c.value
}

// OnChange registers fn to run after the bound color changes.
func (c *ColorControl) OnChange(fn func(rl.Color)) *ColorControl {
	c.onChange = fn
	return c
}

// Set stores col, forced opaque, and fires the change callback if it differs.
func (c *ColorControl) Set(col rl.Color) {
	col.A = 255
	if col == *c.value {
		return
	}
	*c.value = col
	if c.onChange != nil {
		c.onChange(col)
	}
}

// Hex is the bound color as "#rrggbb".
func (c *ColorControl) Hex() string {
	v := *c.value
	return colorful.Color{
		R: float64(v.R) / 255.0,
		G: float64(v.G) / 255.0,
		B: float64(v.B) / 255.0,
	}.Hex()
}

func (c *ColorControl) draw(row rl.Rectangle) {
	gui.Label(rl.Rectangle{X: row.X, Y: row.Y, Width: labelWidth, Height: rowHeight}, c.label)
	gui.Label(rl.Rectangle{X: row.X + labelWidth, Y: row.Y, Width: row.Width - labelWidth, Height: rowHeight}, c.Hex())

	// the picker draws its hue bar to the right of the bounds
	picker := rl.Rectangle{
		X:      row.X + labelWidth,
		Y:      row.Y + rowHeight,
		Width:  pickerHeight,
		Height: pickerHeight,
	}
	got := gui.ColorPicker(picker, "", *c.value)
	if got != *c.value {
		c.Set(got)
	}
}
