package engine

import (
	"errors"
	"testing"
)

func TestSceneAddGameObject(t *testing.T) {
	scene := NewScene("Test")
	obj := NewGameObject("Wall")

	if err := scene.AddGameObject(obj); err != nil {
		t.Fatalf("AddGameObject: %v", err)
	}

	if scene.Len() != 1 {
		t.Errorf("Expected 1 GameObject, got %d", scene.Len())
	}

	if scene.GameObjects[0] != obj {
		t.Error("GameObject not added to scene")
	}

	if obj.Scene != scene {
		t.Error("GameObject.Scene not set")
	}
}

func TestSceneSealRejectsAdds(t *testing.T) {
	scene := NewScene("Test")
	if err := scene.AddGameObject(NewGameObject("A"), NewGameObject("B")); err != nil {
		t.Fatalf("AddGameObject: %v", err)
	}

	scene.Seal()

	err := scene.AddGameObject(NewGameObject("Late"))
	if !errors.Is(err, ErrSceneSealed) {
		t.Fatalf("Expected ErrSceneSealed, got %v", err)
	}
	if scene.Len() != 2 {
		t.Errorf("Sealed scene changed size to %d", scene.Len())
	}
	if !scene.Sealed() {
		t.Error("Sealed should report true")
	}
}

func TestSceneFindByName(t *testing.T) {
	scene := NewScene("Test")
	obj := NewGameObject("Torus")
	scene.AddGameObject(obj)

	if found := scene.FindByName("Torus"); found != obj {
		t.Error("FindByName failed")
	}

	if notFound := scene.FindByName("DoesNotExist"); notFound != nil {
		t.Error("FindByName should return nil for non-existent name")
	}
}

func TestSceneFindByTag(t *testing.T) {
	scene := NewScene("Test")
	obj1 := NewGameObject("Box")
	obj2 := NewGameObject("Torus")
	obj3 := NewGameObject("Light")

	obj1.Tags = []string{"mesh", "caster"}
	obj2.Tags = []string{"mesh"}
	obj3.Tags = []string{"light"}

	scene.AddGameObject(obj1, obj2, obj3)

	if meshes := scene.FindByTag("mesh"); len(meshes) != 2 {
		t.Errorf("Expected 2 meshes, got %d", len(meshes))
	}

	if lights := scene.FindByTag("light"); len(lights) != 1 {
		t.Errorf("Expected 1 light, got %d", len(lights))
	}

	if notFound := scene.FindByTag("nonexistent"); len(notFound) != 0 {
		t.Error("FindByTag should return empty slice for non-existent tag")
	}
}

func TestSceneComponents(t *testing.T) {
	scene := NewScene("Test")
	a := NewGameObject("A")
	b := NewGameObject("B")
	ca := &countingComponent{}
	cb := &countingComponent{}
	a.AddComponent(ca)
	b.AddComponent(&BaseComponent{})
	b.AddComponent(cb)
	scene.AddGameObject(a, b)

	found := Components[*countingComponent](scene)
	if len(found) != 2 || found[0] != ca || found[1] != cb {
		t.Errorf("Components returned %v", found)
	}
}

func TestSceneUpdatePropagatesTime(t *testing.T) {
	scene := NewScene("Test")
	obj := NewGameObject("A")
	counter := &countingComponent{}
	obj.AddComponent(counter)
	scene.AddGameObject(obj)

	scene.Start()
	scene.Update(Time{Elapsed: 3.5, Delta: 0.016})

	if counter.starts != 1 || counter.updates != 1 {
		t.Errorf("starts=%d updates=%d", counter.starts, counter.updates)
	}
	if counter.last.Elapsed != 3.5 {
		t.Errorf("Expected elapsed 3.5, got %v", counter.last.Elapsed)
	}
}
