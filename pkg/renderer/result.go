package renderer

import (
	"image"
	"image/color"
	"math"
)

// Result is a finished framebuffer in row-major order (index = line*Width + col)
type Result struct {
	Pixels []Pixel
	Width  int
	Height int
	Stats  RenderStats
}

// At returns the pixel at column x, line y (line 0 is the top of the image)
func (r *Result) At(x, y int) Pixel {
	return r.Pixels[y*r.Width+x]
}

// Image returns the display image
func (r *Result) Image() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, r.Width, r.Height))
	for y := 0; y < r.Height; y++ {
		for x := 0; x < r.Width; x++ {
			img.SetRGBA(x, y, toDisplayColor(r.At(x, y).Color))
		}
	}
	return img
}

// DepthImage returns the average first-hit depth normalized over the finite depths
// in the image: nearest is white, farthest is dark gray, and background is black.
func (r *Result) DepthImage() *image.Gray16 {
	near, far := math.Inf(1), math.Inf(-1)
	for _, pixel := range r.Pixels {
		d := pixel.Stats.AvgDepth
		if pixel.Stats.SampleCount == 0 || math.IsInf(d, 0) || math.IsNaN(d) {
			continue
		}
		near = math.Min(near, d)
		far = math.Max(far, d)
	}

	const minGray = 0x1000
	img := image.NewGray16(image.Rect(0, 0, r.Width, r.Height))
	for y := 0; y < r.Height; y++ {
		for x := 0; x < r.Width; x++ {
			stats := r.At(x, y).Stats
			d := stats.AvgDepth
			if stats.SampleCount == 0 || math.IsInf(d, 0) || math.IsNaN(d) {
				continue
			}
			closeness := 1.0
			if far > near {
				closeness = 1 - (d-near)/(far-near)
			}
			img.SetGray16(x, y, color.Gray16{Y: uint16(minGray + closeness*(math.MaxUint16-minGray))})
		}
	}
	return img
}
