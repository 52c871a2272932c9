package engine

import (
	"errors"
	"fmt"
)

// ErrSceneSealed is returned when an object is added after startup.
var ErrSceneSealed = errors.New("scene is sealed")

// Scene is the root container for everything that takes part in a draw call.
// Objects are only ever added, and only until Seal is called.
type Scene struct {
	Name        string
	GameObjects []*GameObject
	sealed      bool
}

func NewScene(name string) *Scene {
	return &Scene{
		Name:        name,
		GameObjects: make([]*GameObject, 0),
	}
}

func (s *Scene) AddGameObject(objs ...*GameObject) error {
	if s.sealed {
		return fmt.Errorf("add to %q: %w", s.Name, ErrSceneSealed)
	}
	for _, g := range objs {
		g.Scene = s
		s.GameObjects = append(s.GameObjects, g)
	}
	return nil
}

// Seal freezes the object set. Transforms and components stay mutable.
func (s *Scene) Seal() {
	s.sealed = true
}

func (s *Scene) Sealed() bool {
	return s.sealed
}

func (s *Scene) Len() int {
	return len(s.GameObjects)
}

func (s *Scene) FindByName(name string) *GameObject {
	for _, g := range s.GameObjects {
		if g.Name == name {
			return g
		}
	}
	return nil
}

func (s *Scene) FindByTag(tag string) []*GameObject {
	var result []*GameObject
	for _, g := range s.GameObjects {
		if g.HasTag(tag) {
			result = append(result, g)
		}
	}
	return result
}

// Components collects every component of type T across the scene, in insertion order.
func Components[T any](s *Scene) []T {
	var result []T
	for _, g := range s.GameObjects {
		for _, c := range g.components {
			if typed, ok := c.(T); ok {
				result = append(result, typed)
			}
		}
	}
	return result
}

func (s *Scene) Start() {
	for _, g := range s.GameObjects {
		g.Start()
	}
}

func (s *Scene) Update(t Time) {
	for _, g := range s.GameObjects {
		g.Update(t)
	}
}
