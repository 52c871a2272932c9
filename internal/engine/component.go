package engine

// Time is the frame clock handed to components. Elapsed is seconds since start
// and never decreases; Delta is the time since the previous frame.
type Time struct {
	Elapsed float64
	Delta   float32
}

type Component interface {
	Start()
	Update(t Time)
	SetGameObject(g *GameObject)
	GetGameObject() *GameObject
}

// BaseComponent provides default implementation for Component interface
type BaseComponent struct {
	gameObject *GameObject
}

func (b *BaseComponent) Start() {}

func (b *BaseComponent) Update(t Time) {}

func (b *BaseComponent) SetGameObject(g *GameObject) {
	b.gameObject = g
}

func (b *BaseComponent) GetGameObject() *GameObject {
	return b.gameObject
}
