package renderer

import (
	"fmt"
	"math"
	"runtime"

	"github.com/shirou/gopsutil/v3/cpu"

	"github.com/df07/go-adaptive-pathtracer/pkg/core"
)

// Sky is the background gradient seen by rays that leave the scene
type Sky struct {
	Top    core.Vec3 // color straight up
	Bottom core.Vec3 // color straight down
}

// DefaultSky returns the blue-to-white daylight gradient
func DefaultSky() Sky {
	return Sky{
		Top:    core.NewVec3(0.5, 0.7, 1.0),
		Bottom: core.NewVec3(1.0, 1.0, 1.0),
	}
}

// Color returns the gradient color for a ray direction
func (s Sky) Color(direction core.Vec3) core.Vec3 {
	unitDirection := direction.Normalize()

	// Use the y-component to create a gradient (map from -1,1 to 0,1)
	t := 0.5 * (unitDirection.Y + 1.0)
	return core.Lerp(t, s.Bottom, s.Top)
}

// Config contains rendering configuration
type Config struct {
	Width           int     // Image width in pixels
	Height          int     // Image height in pixels
	SamplesPerPixel int     // Upper bound on samples per pixel
	MaxDepth        int     // Maximum number of scene queries per path
	NumWorkers      int     // Number of parallel workers (0 = use CPU count)
	TMin            float64 // Ray range start, avoids self-intersection
	TMax            float64 // Ray range end
	ConvergenceRuns int     // Consecutive unchanged display colors before a pixel retires
	Seed            int64   // Base seed; worker i uses Seed+i
	Sky             Sky
}

// DefaultConfig returns sensible default values
func DefaultConfig() Config {
	return Config{
		Width:           400,
		Height:          225,
		SamplesPerPixel: 100,
		MaxDepth:        50,
		NumWorkers:      0, // Auto-detect CPU count
		TMin:            0.001,
		TMax:            math.Inf(1),
		ConvergenceRuns: 5,
		Seed:            42,
		Sky:             DefaultSky(),
	}
}

// Validate checks the configuration and returns the first problem found
func (c Config) Validate() error {
	switch {
	case c.Width <= 0 || c.Height <= 0:
		return fmt.Errorf("%w: got %dx%d", ErrInvalidSize, c.Width, c.Height)
	case c.SamplesPerPixel <= 0:
		return fmt.Errorf("%w: got %d", ErrNoSamples, c.SamplesPerPixel)
	case c.MaxDepth <= 0:
		return fmt.Errorf("%w: got %d", ErrInvalidDepth, c.MaxDepth)
	case c.NumWorkers < 0:
		return fmt.Errorf("%w: got %d", ErrInvalidWorkers, c.NumWorkers)
	case c.TMin < 0 || !(c.TMin < c.TMax):
		return fmt.Errorf("%w: got [%g, %g]", ErrInvalidRange, c.TMin, c.TMax)
	}
	return nil
}

// Workers returns the effective worker count
func (c Config) Workers() int {
	if c.NumWorkers > 0 {
		return c.NumWorkers
	}
	return DefaultWorkers()
}

// convergenceRuns returns the retirement threshold, defaulting to 5
func (c Config) convergenceRuns() int {
	if c.ConvergenceRuns > 0 {
		return c.ConvergenceRuns
	}
	return 5
}

// DefaultWorkers returns the number of logical CPUs
func DefaultWorkers() int {
	n, err := cpu.Counts(true)
	if err != nil || n < 1 {
		return runtime.NumCPU()
	}
	return n
}
