package panel

import (
	"fmt"
	"math"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
)

type Slider struct {
	label    string
	value    *float32
	min      float32
	max      float32
	step     float32
	onChange func(float32)
}

func (s *Slider) Label() string   { return s.label }
func (s *Slider) Height() float32 { return rowHeight }

func (s *Slider) Range() (min, max, step float32) {
	return s.min, s.max, s.step
}

func (s *Slider) Value() float32 {
	return *s.value
}

// OnChange registers fn to run after the bound field changes.
func (s *Slider) OnChange(fn func(float32)) *Slider {
	s.onChange = fn
	return s
}

// Set writes v to the bound field after clamping and snapping, and returns
// the value actually stored.
func (s *Slider) Set(v float32) float32 {
	v = s.Snap(v)
	if v == *s.value {
		return v
	}
	*s.value = v
	if s.onChange != nil {
		s.onChange(v)
	}
	return v
}

// Snap clamps v to the slider range and rounds it to the nearest step
// counted from min.
func (s *Slider) Snap(v float32) float32 {
	if math.IsNaN(float64(v)) {
		return *s.value
	}
	if s.step > 0 {
		k := math.Round(float64(v-s.min) / float64(s.step))
		v = float32(float64(s.min) + k*float64(s.step))
	}
	if v < s.min {
		v = s.min
	}
	if v > s.max {
		v = s.max
	}
	return v
}

func (s *Slider) decimals() int {
	if s.step <= 0 || s.step >= 1 {
		return 0
	}
	return int(math.Ceil(-math.Log10(float64(s.step)) - 1e-6))
}

func (s *Slider) draw(row rl.Rectangle) {
	text := fmt.Sprintf("%.*f", s.decimals(), *s.value)
	bounds := rl.Rectangle{
		X:      row.X + labelWidth,
		Y:      row.Y + 4,
		Width:  row.Width - labelWidth - 56,
		Height: row.Height - 8,
	}
	gui.Label(rl.Rectangle{X: row.X, Y: row.Y, Width: labelWidth, Height: row.Height}, s.label)
	got := gui.Slider(bounds, "", text, *s.value, s.min, s.max)
	if got != *s.value {
		s.Set(got)
	}
}
