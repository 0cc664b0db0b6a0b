package scene

import (
	"errors"
	"math"
	"sort"
	"testing"

	"github.com/df07/go-adaptive-pathtracer/pkg/core"
	"github.com/df07/go-adaptive-pathtracer/pkg/geometry"
	"github.com/df07/go-adaptive-pathtracer/pkg/material"
)

var grey = material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5))

// countingObject wraps a primitive and counts exact intersection tests
type countingObject struct {
	geometry.Traced
	cull  bool
	tests *int
}

func (c countingObject) HitBoundingBox(ray core.Ray, tMin, tMax float64) bool {
	return !c.cull
}

func (c countingObject) Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	*c.tests++
	return c.Traced.Hit(ray, tMin, tMax)
}

func TestScene_Hit_Nearest(t *testing.T) {
	near := geometry.NewSphereAt(core.NewVec3(0, 0, -3), 1, grey)
	far := geometry.NewSphereAt(core.NewVec3(0, 0, -10), 1, grey)

	// Order must not matter
	for _, s := range []*Scene{New(near, far), New(far, near)} {
		hit, ok := s.Hit(core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1)), 0.001, math.Inf(1))
		if !ok {
			t.Fatal("Expected hit, but got miss")
		}
		if hit.ObjectID != near.ID() {
			t.Errorf("Expected nearest object %d, got %d", near.ID(), hit.ObjectID)
		}
		if math.Abs(hit.T-2) > 1e-9 {
			t.Errorf("Expected t=2, got t=%f", hit.T)
		}
	}
}

func TestScene_Hit_Miss(t *testing.T) {
	s := New(geometry.NewSphereAt(core.NewVec3(0, 0, -3), 1, grey))

	if _, ok := s.Hit(core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0)), 0.001, math.Inf(1)); ok {
		t.Error("Expected miss")
	}
	if _, ok := New().Hit(core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0)), 0.001, math.Inf(1)); ok {
		t.Error("Expected miss in an empty scene")
	}
}

func TestScene_Hit_SkipsCulledObjects(t *testing.T) {
	tests := 0
	sphere := geometry.NewSphereAt(core.NewVec3(0, 0, -3), 1, grey)
	culled := countingObject{Traced: sphere, cull: true, tests: &tests}

	s := New(culled)
	if _, ok := s.Hit(core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1)), 0.001, math.Inf(1)); ok {
		t.Error("Expected culled object to be skipped")
	}
	if tests != 0 {
		t.Errorf("Expected no exact tests for a culled object, got %d", tests)
	}

	s = New(countingObject{Traced: sphere, tests: &tests})
	if _, ok := s.Hit(core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1)), 0.001, math.Inf(1)); !ok {
		t.Error("Expected hit once the pre-test passes")
	}
	if tests != 1 {
		t.Errorf("Expected one exact test, got %d", tests)
	}
}

func TestScene_FirstHit_MatchesHit(t *testing.T) {
	built := NewDefaultScene()
	random := core.NewSeededSampler(42)

	for i := 0; i < 200; i++ {
		dir := core.RandomUnitVector(random)
		ray := core.NewRay(built.View.LookFrom, dir)
		hit, ok := built.Scene.Hit(ray, 0.001, math.Inf(1))
		first, firstOK := built.Scene.FirstHit(ray, 0.001, math.Inf(1), 0.5, 0.5)
		if ok != firstOK {
			t.Fatalf("Ray %v: Hit=%t, FirstHit=%t", dir, ok, firstOK)
		}
		if ok && (hit.ObjectID != first.ObjectID || hit.T != first.T) {
			t.Errorf("Ray %v: Hit (%d, %f) differs from FirstHit (%d, %f)", dir, hit.ObjectID, hit.T, first.ObjectID, first.T)
		}
	}
}

func TestScene_WorldBounds(t *testing.T) {
	s := New(
		geometry.NewInfinitePlane(core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0), grey),
		geometry.NewSphereAt(core.NewVec3(0, 1, 0), 1, grey),
		geometry.NewSphereAt(core.NewVec3(5, 1, 0), 1, grey),
	)

	bounds := s.WorldBounds()
	if !bounds.Min.ApproxEquals(core.NewVec3(-1, 0, -1), 1e-9) || !bounds.Max.ApproxEquals(core.NewVec3(6, 2, 1), 1e-9) {
		t.Errorf("Expected bounds (-1,0,-1)-(6,2,1), got %v-%v", bounds.Min, bounds.Max)
	}
	if s.Len() != 3 || len(s.Objects()) != 3 {
		t.Errorf("Expected 3 objects, got %d", s.Len())
	}
	if !bounds.IsValid() {
		t.Error("Bounds of a scene with spheres should be valid")
	}

	planeOnly := New(geometry.NewInfinitePlane(core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0), grey))
	if planeOnly.WorldBounds().IsValid() {
		t.Error("A scene with only unbounded objects should report an empty box")
	}
}

func TestRegistry(t *testing.T) {
	names := Names()
	if !sort.StringsAreSorted(names) {
		t.Errorf("Expected sorted names, got %v", names)
	}
	if len(names) != 3 {
		t.Errorf("Expected 3 built-in scenes, got %v", names)
	}

	for _, name := range names {
		t.Run(name, func(t *testing.T) {
			built, err := Lookup(name)
			if err != nil {
				t.Fatalf("Lookup(%q) failed: %v", name, err)
			}
			if built.Name != name {
				t.Errorf("Expected name %q, got %q", name, built.Name)
			}
			if built.Scene.Len() == 0 {
				t.Error("Expected a non-empty scene")
			}
			if built.View.LookFrom.Equals(built.View.LookAt) {
				t.Error("Expected distinct look-from and look-at points")
			}

			// The camera should see something straight ahead
			dir := built.View.LookAt.Subtract(built.View.LookFrom)
			if _, ok := built.Scene.FirstHit(core.NewRay(built.View.LookFrom, dir), 0.001, math.Inf(1), 0.5, 0.5); !ok {
				t.Error("Expected the view center to hit an object")
			}
		})
	}

	if _, err := Lookup("nope"); !errors.Is(err, ErrUnknownScene) {
		t.Errorf("Expected ErrUnknownScene, got %v", err)
	}
}
