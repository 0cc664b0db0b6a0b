package scene

import (
	"errors"
	"fmt"
	"sort"

	"github.com/df07/go-adaptive-pathtracer/pkg/core"
)

// ErrUnknownScene is returned by Lookup for names not in the registry
var ErrUnknownScene = errors.New("scene: unknown scene")

// View describes where a built-in scene wants its camera
type View struct {
	LookFrom      core.Vec3
	LookAt        core.Vec3
	Up            core.Vec3
	VFov          float64 // vertical field of view in degrees
	Aperture      float64 // lens diameter, 0 for a pinhole
	FocusDistance float64 // 0 focuses on LookAt
}

// Built is a ready-to-render scene together with its preferred view
type Built struct {
	Name  string
	Scene *Scene
	View  View
}

var builders = map[string]func() Built{
	"default": NewDefaultScene,
	"glass":   NewGlassScene,
	"cubes":   NewCubeGridScene,
}

// Names returns the built-in scene names in sorted order
func Names() []string {
	names := make([]string, 0, len(builders))
	for name := range builders {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Lookup builds the named scene
func Lookup(name string) (Built, error) {
	build, ok := builders[name]
	if !ok {
		return Built{}, fmt.Errorf("%w: %q", ErrUnknownScene, name)
	}
	return build(), nil
}
