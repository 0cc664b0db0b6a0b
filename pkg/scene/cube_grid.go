package scene

import (
	"math"

	"github.com/df07/go-adaptive-pathtracer/pkg/core"
	"github.com/df07/go-adaptive-pathtracer/pkg/geometry"
	"github.com/df07/go-adaptive-pathtracer/pkg/material"
)

// oklchToRGB converts OKLCH color values to RGB
// L: lightness (0-1), C: chroma (0-0.4+), H: hue (0-360 degrees)
func oklchToRGB(l, c, h float64) core.Vec3 {
	hRad := h * math.Pi / 180.0

	// OKLCH to OKLAB
	a := c * math.Cos(hRad)
	b := c * math.Sin(hRad)

	// OKLAB to cubed LMS
	lCube := l + 0.3963377774*a + 0.2158037573*b
	mCube := l - 0.1055613458*a - 0.0638541728*b
	sCube := l - 0.0894841775*a - 1.2914855480*b
	lCube, mCube, sCube = lCube*lCube*lCube, mCube*mCube*mCube, sCube*sCube*sCube

	// LMS to linear RGB
	rgb := core.NewVec3(
		+4.0767416621*lCube-3.3077115913*mCube+0.2309699292*sCube,
		-1.2684380046*lCube+2.6097574011*mCube-0.3413193965*sCube,
		-0.0041960863*lCube-0.7034186147*mCube+1.7076147010*sCube,
	)
	return rgb.Clamp(0, 1)
}

// NewCubeGridScene creates a grid of rotated cubes with hue varying across x
// and chroma across z. Every third cube is metal.
func NewCubeGridScene() Built {
	view := View{
		LookFrom: core.NewVec3(4.5, 6, 14),
		LookAt:   core.NewVec3(4.5, 0.5, 4.5),
		Up:       core.NewVec3(0, 1, 0),
		VFov:     40.0,
		Aperture: 0.02,
	}

	s := New(geometry.NewInfinitePlane(
		core.NewVec3(0, 0, 0),
		core.NewVec3(0, 1, 0),
		material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5)),
	))

	const gridSize = 8
	const targetArea = 9.0
	spacing := targetArea / float64(gridSize-1)
	edge := spacing * 0.55

	for i := 0; i < gridSize; i++ {
		for j := 0; j < gridSize; j++ {
			x := float64(i)*spacing - targetArea/2.0 + 4.5
			z := float64(j)*spacing - targetArea/2.0 + 4.5

			hue := (float64(i) / float64(gridSize-1)) * 360.0
			chroma := 0.05 + (float64(j)/float64(gridSize-1))*0.20
			lightness := 0.65 + 0.1*math.Sin(float64(i+j)*0.5)
			color := oklchToRGB(lightness, chroma, hue)

			var mat material.Material
			if (i+j)%3 == 0 {
				mat = material.NewMetal(color, 0.05+0.05*float64(i%3))
			} else {
				mat = material.NewLambertian(color)
			}

			// Each cube sits on the ground, spun about y by a position-dependent angle
			angle := float64(i*gridSize+j) * 0.37
			m := core.TRS(core.NewVec3(x, edge/2, z), core.NewVec3(0, 1, 0), angle, core.NewVec3(edge, edge, edge))
			s.Add(geometry.NewCube(m, mat))
		}
	}

	return Built{Name: "cubes", Scene: s, View: view}
}
