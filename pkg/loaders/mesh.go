package loaders

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/fogleman/fauxgl"

	"github.com/df07/go-adaptive-pathtracer/pkg/core"
	"github.com/df07/go-adaptive-pathtracer/pkg/geometry"
	"github.com/df07/go-adaptive-pathtracer/pkg/log"
	"github.com/df07/go-adaptive-pathtracer/pkg/material"
)

// ErrUnsupportedMesh is returned for files that are not OBJ, STL or PLY
var ErrUnsupportedMesh = errors.New("loaders: unsupported mesh format")

// degenerateArea is the |u×v| below which a triangle is dropped
const degenerateArea = 1e-12

var logger = log.New("loaders")

// MeshOptions controls how a mesh file is turned into triangles
type MeshOptions struct {
	// LocalToWorld places the (optionally fitted) mesh in the scene
	LocalToWorld core.Mat4
	// FitBiUnitCube rescales and centers the mesh into [-1, 1]³ before placement
	FitBiUnitCube bool
}

// LoadMesh reads an OBJ, STL or PLY file, fits it into the bi-unit cube and places it with
// localToWorld. Every face becomes a Triangle primitive sharing mat.
func LoadMesh(path string, mat material.Material, localToWorld core.Mat4) ([]*geometry.Barycentric, error) {
	return LoadMeshWithOptions(path, mat, MeshOptions{LocalToWorld: localToWorld, FitBiUnitCube: true})
}

// LoadMeshWithOptions is LoadMesh with explicit options
func LoadMeshWithOptions(path string, mat material.Material, opts MeshOptions) ([]*geometry.Barycentric, error) {
	start := time.Now()

	mesh, err := readMesh(path)
	if err != nil {
		return nil, err
	}
	if opts.FitBiUnitCube {
		mesh.BiUnitCube()
	}

	triangles := make([]*geometry.Barycentric, 0, len(mesh.Triangles))
	dropped := 0
	for _, t := range mesh.Triangles {
		a := opts.LocalToWorld.MulPoint(fromFauxgl(t.V1.Position))
		b := opts.LocalToWorld.MulPoint(fromFauxgl(t.V2.Position))
		c := opts.LocalToWorld.MulPoint(fromFauxgl(t.V3.Position))

		if b.Subtract(a).Cross(c.Subtract(a)).Length() < degenerateArea {
			dropped++
			continue
		}
		triangles = append(triangles, geometry.NewTriangle(a, b, c, mat))
	}

	logger.Infof("Loaded %s: %d triangles (%d degenerate dropped) in %v",
		filepath.Base(path), len(triangles), dropped, time.Since(start))
	return triangles, nil
}

func readMesh(path string) (*fauxgl.Mesh, error) {
	var (
		mesh *fauxgl.Mesh
		err  error
	)
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".obj":
		mesh, err = fauxgl.LoadOBJ(path)
	case ".stl":
		mesh, err = fauxgl.LoadSTL(path)
	case ".ply":
		mesh, err = fauxgl.LoadPLY(path)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedMesh, ext)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load mesh %s: %w", path, err)
	}
	return mesh, nil
}

func fromFauxgl(v fauxgl.Vector) core.Vec3 {
	return core.NewVec3(v.X, v.Y, v.Z)
}
