package camera

import rl "github.com/gen2brain/raylib-go/raylib"

// MouseInput reads the mouse through raylib. While Blocked is set (pointer
// over the parameter panel) it reports no motion.
type MouseInput struct {
	Blocked bool
}

func (m *MouseInput) MouseDelta() rl.Vector2 {
	if m.Blocked {
		return rl.Vector2{}
	}
	return rl.GetMouseDelta()
}

func (m *MouseInput) RotateHeld() bool {
	return !m.Blocked && rl.IsMouseButtonDown(rl.MouseButtonLeft)
}

func (m *MouseInput) PanHeld() bool {
	return !m.Blocked && rl.IsMouseButtonDown(rl.MouseButtonRight)
}

func (m *MouseInput) WheelMove() float32 {
	if m.Blocked {
		return 0
	}
	return rl.GetMouseWheelMove()
}

func (m *MouseInput) SetBlocked(blocked bool) {
	m.Blocked = blocked
}
