package scene

import (
	"github.com/df07/go-adaptive-pathtracer/pkg/core"
	"github.com/df07/go-adaptive-pathtracer/pkg/geometry"
	"github.com/df07/go-adaptive-pathtracer/pkg/material"
)

// NewGlassScene creates a row of hollow glass spheres in front of colored diffuse ones
func NewGlassScene() Built {
	view := View{
		LookFrom: core.NewVec3(0, 1.2, 3.5),
		LookAt:   core.NewVec3(0, 0.4, -1),
		Up:       core.NewVec3(0, 1, 0),
		VFov:     35.0,
	}

	glass := material.NewDielectric(1.5)
	ground := geometry.NewInfinitePlane(
		core.NewVec3(0, 0, 0),
		core.NewVec3(0, 1, 0),
		material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5)),
	)

	s := New(ground)

	backColors := []core.Vec3{
		core.NewVec3(0.8, 0.3, 0.3),
		core.NewVec3(0.3, 0.8, 0.3),
		core.NewVec3(0.3, 0.3, 0.8),
	}
	for i, color := range backColors {
		x := float64(i-1) * 1.1
		s.Add(geometry.NewSphereAt(core.NewVec3(x, 0.5, -2), 0.5, material.NewLambertian(color)))

		// A hollow shell: the inner sphere has a negative radius, which turns its
		// normals inward so rays leave the glass wall as they enter the cavity
		center := core.NewVec3(x, 0.4, -0.5)
		s.Add(
			geometry.NewSphereAt(center, 0.4, glass),
			geometry.NewSphereAt(center, -0.36, glass),
		)
	}

	// A solid glass cube in the middle front
	s.Add(geometry.NewCubeAt(core.NewVec3(0, 0.15, 0.5), 0.3, material.NewDielectric(1.33)))

	return Built{Name: "glass", Scene: s, View: view}
}
