package renderer

import (
	"image/color"
	"math/bits"

	"github.com/df07/go-adaptive-pathtracer/pkg/core"
)

// Fingerprint is a 64-bit Bloom filter over the ids of objects first hit by a pixel's samples
type Fingerprint uint64

// fingerprintBits returns the two bit positions for an object id
func fingerprintBits(objectID uint64) (uint, uint) {
	h1 := (objectID * 0x9E3779B97F4A7C15) >> 58
	h2 := (objectID*0xC2B2AE3D27D4EB4F + 0x165667B19E3779F9) >> 58
	return uint(h1), uint(h2)
}

// Add records an object id
func (f *Fingerprint) Add(objectID uint64) {
	h1, h2 := fingerprintBits(objectID)
	*f |= 1<<h1 | 1<<h2
}

// MayContain reports whether objectID may have been added. False positives are possible.
func (f Fingerprint) MayContain(objectID uint64) bool {
	h1, h2 := fingerprintBits(objectID)
	mask := Fingerprint(1<<h1 | 1<<h2)
	return f&mask == mask
}

// Mixed reports whether more than one object was likely seen
func (f Fingerprint) Mixed() bool {
	return bits.OnesCount64(uint64(f)) > 2
}

// unsampledColor is the display color of a pixel before its first sample
var unsampledColor = color.RGBA{A: 255}

// PixelStats tracks sampling statistics for a single pixel
type PixelStats struct {
	SampleCount  int         // Number of samples taken
	Sum          core.Vec3   // RGB accumulator
	Color        color.RGBA  // Display color of the current mean
	StagnantRuns int         // Consecutive samples that left Color unchanged
	AvgDepth     float64     // Running mean of the first-hit t (+Inf once any sample saw the sky)
	Fingerprint  Fingerprint // Objects seen by the first hit of each sample
}

// Add folds in one sample and reports whether the pixel has converged, that is
// whether its display color has been unchanged for at least runs consecutive samples.
// Convergence is judged on the 8-bit display color, so dark or noisy pixels can stall
// on a biased value before their true mean is reached. Before the first sample the
// display color counts as black, so a black sample already extends the run.
func (ps *PixelStats) Add(sample core.Vec3, depth float64, objectID uint64, runs int) bool {
	previous := ps.Color
	if ps.SampleCount == 0 {
		previous = unsampledColor
	}

	ps.Sum = ps.Sum.Add(sample)
	ps.SampleCount++
	ps.Color = toDisplayColor(ps.Mean())

	if ps.Color == previous {
		ps.StagnantRuns++
	} else {
		ps.StagnantRuns = 0
	}

	n := float64(ps.SampleCount)
	ps.AvgDepth = ((n-1)*ps.AvgDepth + depth) / n
	ps.Fingerprint.Add(objectID)

	return ps.StagnantRuns >= runs
}

// Mean returns the current average color for this pixel
func (ps *PixelStats) Mean() core.Vec3 {
	if ps.SampleCount == 0 {
		return core.Vec3{X: 0, Y: 0, Z: 0}
	}
	return ps.Sum.Multiply(1.0 / float64(ps.SampleCount))
}

// Pixel is one entry of the framebuffer
type Pixel struct {
	Color core.Vec3 // current linear estimate
	Stats PixelStats
}

// toDisplayColor converts a Vec3 color to RGBA with clamping and gamma correction
func toDisplayColor(colorVec core.Vec3) color.RGBA {
	// Clamp to valid color range first so the square root never sees a negative
	colorVec = colorVec.Clamp(0.0, 1.0)

	// Apply gamma correction (gamma = 2.0)
	colorVec = colorVec.GammaCorrect(2.0)

	return color.RGBA{
		R: uint8(255 * colorVec.X),
		G: uint8(255 * colorVec.Y),
		B: uint8(255 * colorVec.Z),
		A: 255,
	}
}
