package renderer

import (
	"math"
	"testing"

	"github.com/df07/go-adaptive-pathtracer/pkg/core"
	"github.com/df07/go-adaptive-pathtracer/pkg/geometry"
	"github.com/df07/go-adaptive-pathtracer/pkg/material"
	"github.com/df07/go-adaptive-pathtracer/pkg/scene"
)

// endlessWorld reports a hit for every query and counts them
type endlessWorld struct {
	queries *int
	mat     material.Material
}

func (w endlessWorld) hit(ray core.Ray) (*material.HitRecord, bool) {
	*w.queries++
	hit := &material.HitRecord{T: 2, Point: ray.At(2), Material: w.mat, ObjectID: 9}
	hit.SetFaceNormal(ray, ray.Direction.Negate().Normalize())
	return hit, true
}

func (w endlessWorld) Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	return w.hit(ray)
}

func (w endlessWorld) FirstHit(ray core.Ray, tMin, tMax, u, v float64) (*material.HitRecord, bool) {
	return w.hit(ray)
}

func TestSky_GradientEndpoints(t *testing.T) {
	sky := DefaultSky()

	tests := []struct {
		name      string
		direction core.Vec3
		expected  core.Vec3
	}{
		{"straight up", core.NewVec3(0, 1, 0), sky.Top},
		{"straight up unnormalized", core.NewVec3(0, 5, 0), sky.Top},
		{"straight down", core.NewVec3(0, -1, 0), sky.Bottom},
		{"horizon", core.NewVec3(1, 0, 0), core.NewVec3(0.75, 0.85, 1.0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := sky.Color(tt.direction)
			if !got.ApproxEquals(tt.expected, 1e-15) {
				t.Errorf("Expected %v, got %v", tt.expected, got)
			}
		})
	}

	if !sky.Color(core.NewVec3(0, 1, 0)).Equals(sky.Top) || !sky.Color(core.NewVec3(0, -1, 0)).Equals(sky.Bottom) {
		t.Error("Expected the gradient endpoints to be exact")
	}
}

func TestRayColor_Miss(t *testing.T) {
	cfg := DefaultConfig()
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0))

	color, depth, objectID := rayColor(scene.New(), &cfg, ray, 0.5, 0.5, core.NewSeededSampler(42))
	if !color.Equals(cfg.Sky.Top) {
		t.Errorf("Expected sky color %v, got %v", cfg.Sky.Top, color)
	}
	if !math.IsInf(depth, 1) {
		t.Errorf("Expected depth +Inf, got %f", depth)
	}
	if objectID != 0 {
		t.Errorf("Expected background id 0, got %d", objectID)
	}
}

func TestRayColor_MirrorReflectsSky(t *testing.T) {
	cfg := DefaultConfig()
	mirror := material.NewMetal(core.NewVec3(0.5, 0.5, 0.5), 0)
	ground := geometry.NewInfinitePlane(core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0), mirror)
	world := scene.New(ground)

	ray := core.NewRay(core.NewVec3(0, 1, 0), core.NewVec3(0, -1, 0))
	color, depth, objectID := rayColor(world, &cfg, ray, 0.5, 0.5, core.NewSeededSampler(42))

	expected := cfg.Sky.Top.Multiply(0.5)
	if !color.ApproxEquals(expected, 1e-12) {
		t.Errorf("Expected %v, got %v", expected, color)
	}
	if math.Abs(depth-1) > 1e-9 {
		t.Errorf("Expected first-hit depth 1, got %f", depth)
	}
	if objectID != ground.ID() {
		t.Errorf("Expected object id %d, got %d", ground.ID(), objectID)
	}
}

func TestRayColor_DepthExhaustion(t *testing.T) {
	for _, maxDepth := range []int{1, 2, 10} {
		cfg := DefaultConfig()
		cfg.MaxDepth = maxDepth
		queries := 0
		world := endlessWorld{queries: &queries, mat: material.NewLambertian(core.NewVec3(1, 1, 1))}

		ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))
		color, depth, objectID := rayColor(world, &cfg, ray, 0.5, 0.5, core.NewSeededSampler(42))

		if !color.Equals(core.Vec3{}) {
			t.Errorf("MaxDepth %d: expected black, got %v", maxDepth, color)
		}
		if queries != maxDepth {
			t.Errorf("MaxDepth %d: expected %d scene queries, got %d", maxDepth, maxDepth, queries)
		}
		if depth != 2 || objectID != 9 {
			t.Errorf("MaxDepth %d: expected first hit (2, 9), got (%f, %d)", maxDepth, depth, objectID)
		}
	}
}
