package renderer

import (
	"fmt"
	"io"
	"time"

	"github.com/olekukonko/tablewriter"
)

// WorkerStats describes the work done by one worker
type WorkerStats struct {
	ID        int           // Worker index
	Pixels    int           // Pixels assigned to the worker
	Samples   int           // Samples actually taken
	Converged int           // Pixels retired before reaching the sample limit
	Passes    int           // Passes over the worker's active pixels
	Duration  time.Duration // Time from the worker's start to its last pass
}

// RenderStats contains statistics about the rendering process
type RenderStats struct {
	Workers         []WorkerStats
	TotalPixels     int           // Total number of pixels rendered
	TotalSamples    int           // Total number of samples taken
	MaxSamples      int           // Maximum samples allowed per pixel
	MinSamples      int           // Minimum samples taken per pixel
	MaxSamplesUsed  int           // Maximum samples actually used by any pixel
	ConvergedPixels int           // Pixels that converged before MaxSamples
	MixedPixels     int           // Pixels whose first hits likely covered more than one object
	RenderTime      time.Duration // Wall time of the whole render
}

// finalize computes the totals from the assembled framebuffer
func (s *RenderStats) finalize(pixels []Pixel, maxSamples int, renderTime time.Duration) {
	s.TotalPixels = len(pixels)
	s.MaxSamples = maxSamples
	s.MinSamples = maxSamples
	s.RenderTime = renderTime

	for _, pixel := range pixels {
		n := pixel.Stats.SampleCount
		s.TotalSamples += n
		s.MinSamples = min(s.MinSamples, n)
		s.MaxSamplesUsed = max(s.MaxSamplesUsed, n)
		if pixel.Stats.Fingerprint.Mixed() {
			s.MixedPixels++
		}
	}
	for _, w := range s.Workers {
		s.ConvergedPixels += w.Converged
	}
}

// AverageSamples returns the mean samples per pixel
func (s RenderStats) AverageSamples() float64 {
	if s.TotalPixels == 0 {
		return 0
	}
	return float64(s.TotalSamples) / float64(s.TotalPixels)
}

// ConvergedPercent returns the share of pixels that converged early, in percent
func (s RenderStats) ConvergedPercent() float64 {
	if s.TotalPixels == 0 {
		return 0
	}
	return 100 * float64(s.ConvergedPixels) / float64(s.TotalPixels)
}

// Table writes a per-worker summary table to w
func (s RenderStats) Table(w io.Writer) {
	table := tablewriter.NewWriter(w)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Worker", "Pixels", "Samples", "Avg spp", "Converged", "Passes", "Render time"})
	for _, stat := range s.Workers {
		avg := 0.0
		if stat.Pixels > 0 {
			avg = float64(stat.Samples) / float64(stat.Pixels)
		}
		table.Append([]string{
			fmt.Sprintf("%d", stat.ID),
			fmt.Sprintf("%d", stat.Pixels),
			fmt.Sprintf("%d", stat.Samples),
			fmt.Sprintf("%.1f", avg),
			fmt.Sprintf("%d", stat.Converged),
			fmt.Sprintf("%d", stat.Passes),
			stat.Duration.String(),
		})
	}
	table.SetFooter([]string{
		"TOTAL",
		fmt.Sprintf("%d", s.TotalPixels),
		fmt.Sprintf("%d", s.TotalSamples),
		fmt.Sprintf("%.1f", s.AverageSamples()),
		fmt.Sprintf("%02.1f %%", s.ConvergedPercent()),
		fmt.Sprintf("%d mixed", s.MixedPixels),
		s.RenderTime.String(),
	})
	table.Render()
}
