package scene

import (
	"math"

	"github.com/df07/go-adaptive-pathtracer/pkg/core"
	"github.com/df07/go-adaptive-pathtracer/pkg/geometry"
	"github.com/df07/go-adaptive-pathtracer/pkg/material"
)

// NewDefaultScene creates a default scene with spheres, a cube, flat panels and a ground plane
func NewDefaultScene() Built {
	view := View{
		LookFrom:      core.NewVec3(0, 0.75, 2), // Position camera higher and farther back
		LookAt:        core.NewVec3(0, 0.5, -1), // Look at the sphere center
		Up:            core.NewVec3(0, 1, 0),
		VFov:          40.0,
		Aperture:      0.05,
		FocusDistance: 0.0, // Focus on LookAt
	}

	// Create materials
	lambertianGreen := material.NewLambertian(core.NewVec3(0.8, 0.8, 0.0).Multiply(0.6))
	lambertianBlue := material.NewLambertian(core.NewVec3(0.1, 0.2, 0.5))
	lambertianRed := material.NewLambertian(core.NewVec3(0.65, 0.25, 0.2))
	metalSilver := material.NewMetal(core.NewVec3(0.8, 0.8, 0.8), 0.0)
	metalGold := material.NewMetal(core.NewVec3(0.8, 0.6, 0.2), 0.3)
	materialGlass := material.NewDielectric(1.5)

	ground := geometry.NewInfinitePlane(core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0), lambertianGreen)

	// Create spheres with different materials
	sphereCenter := geometry.NewSphereAt(core.NewVec3(0, 0.5, -1), 0.5, lambertianRed)
	sphereLeft := geometry.NewSphereAt(core.NewVec3(-1, 0.5, -1), 0.5, metalSilver)
	sphereRight := geometry.NewSphereAt(core.NewVec3(1, 0.5, -1), 0.5, metalGold)
	solidGlassSphere := geometry.NewSphereAt(core.NewVec3(0.5, 0.25, -0.5), 0.25, materialGlass)

	// A blue box turned toward the camera
	cube := geometry.NewCube(core.TRS(
		core.NewVec3(-0.55, 0.2, -0.35),
		core.NewVec3(0, 1, 0), math.Pi/5,
		core.NewVec3(0.3, 0.4, 0.3),
	), lambertianBlue)

	// Mirror panel behind the spheres and a gold triangle beside it
	mirror := geometry.NewParallelogram(
		core.NewVec3(-2, 0, -2.2),
		core.NewVec3(4, 0, 0),
		core.NewVec3(0, 1.5, 0),
		metalSilver,
	)
	triangle := geometry.NewTriangle(
		core.NewVec3(1.6, 0, -1.4),
		core.NewVec3(2.4, 0, -1.0),
		core.NewVec3(2.0, 1.2, -1.2),
		metalGold,
	)

	return Built{
		Name: "default",
		Scene: New(ground, sphereCenter, sphereLeft, sphereRight, solidGlassSphere,
			cube, mirror, triangle),
		View: view,
	}
}
