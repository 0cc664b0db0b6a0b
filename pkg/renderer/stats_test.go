package renderer

import (
	"math"
	"testing"
	"time"
)

func TestRenderStats_Finalize(t *testing.T) {
	pixels := []Pixel{
		{Stats: PixelStats{SampleCount: 6}},
		{Stats: PixelStats{SampleCount: 20, Fingerprint: Fingerprint(0b1011)}},
		{Stats: PixelStats{SampleCount: 10, Fingerprint: Fingerprint(0b11)}},
		{Stats: PixelStats{SampleCount: 4}},
	}
	stats := RenderStats{
		Workers: []WorkerStats{
			{ID: 0, Pixels: 2, Converged: 1},
			{ID: 1, Pixels: 2, Converged: 2},
		},
	}

	stats.finalize(pixels, 20, 3*time.Second)

	tests := []struct {
		name string
		got  int
		want int
	}{
		{"TotalPixels", stats.TotalPixels, 4},
		{"TotalSamples", stats.TotalSamples, 40},
		{"MaxSamples", stats.MaxSamples, 20},
		{"MinSamples", stats.MinSamples, 4},
		{"MaxSamplesUsed", stats.MaxSamplesUsed, 20},
		{"ConvergedPixels", stats.ConvergedPixels, 3},
		{"MixedPixels", stats.MixedPixels, 1},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("%s: expected %d, got %d", tt.name, tt.want, tt.got)
		}
	}

	if stats.RenderTime != 3*time.Second {
		t.Errorf("Expected render time 3s, got %v", stats.RenderTime)
	}
	if math.Abs(stats.AverageSamples()-10) > 1e-12 {
		t.Errorf("Expected 10 average samples, got %f", stats.AverageSamples())
	}
	if math.Abs(stats.ConvergedPercent()-75) > 1e-12 {
		t.Errorf("Expected 75%% converged, got %f", stats.ConvergedPercent())
	}
}

func TestRenderStats_Empty(t *testing.T) {
	var stats RenderStats
	if stats.AverageSamples() != 0 || stats.ConvergedPercent() != 0 {
		t.Errorf("Empty stats should report zero, got %f and %f", stats.AverageSamples(), stats.ConvergedPercent())
	}
}
