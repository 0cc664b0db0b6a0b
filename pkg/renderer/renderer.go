package renderer

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/df07/go-adaptive-pathtracer/pkg/core"
	"github.com/df07/go-adaptive-pathtracer/pkg/log"
)

// Renderer renders a scene with a fixed pool of workers. Each worker owns a static
// share of the pixels and keeps sampling them, one sample per pixel per pass, until
// every pixel has either converged or reached SamplesPerPixel.
type Renderer struct {
	world    World
	camera   RayGenerator
	cfg      Config
	logger   log.Logger
	progress atomic.Uint64
}

// New creates a renderer. The configuration is validated here.
func New(world World, camera RayGenerator, cfg Config, logger log.Logger) (*Renderer, error) {
	if world == nil {
		return nil, ErrSceneNotDefined
	}
	if camera == nil {
		return nil, ErrCameraNotDefined
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = log.New("renderer")
	}
	return &Renderer{world: world, camera: camera, cfg: cfg, logger: logger}, nil
}

// Config returns the renderer's configuration
func (r *Renderer) Config() Config {
	return r.cfg
}

// Progress returns the number of samples accounted for so far and the total,
// Width*Height*SamplesPerPixel. A converged pixel is credited with all the samples
// it skips, so done reaches total exactly when rendering finishes.
// Safe to call from any goroutine while Render runs.
func (r *Renderer) Progress() (done, total uint64) {
	total = uint64(r.cfg.Width) * uint64(r.cfg.Height) * uint64(r.cfg.SamplesPerPixel)
	return r.progress.Load(), total
}

// Render runs all workers to completion and assembles the framebuffer
func (r *Renderer) Render() (*Result, error) {
	start := time.Now()
	r.progress.Store(0)

	numWorkers := r.cfg.Workers()
	assignment := Partition(r.cfg.Width, r.cfg.Height, numWorkers)

	r.logger.Infof("rendering %dx%d at %d spp (max depth %d) with %d workers",
		r.cfg.Width, r.cfg.Height, r.cfg.SamplesPerPixel, r.cfg.MaxDepth, numWorkers)

	workers := make([]*worker, numWorkers)
	var wg sync.WaitGroup
	for id := range workers {
		workers[id] = r.newWorker(id, assignedPixels(assignment, id))
		wg.Add(1)
		go func(w *worker) {
			defer wg.Done()
			w.run()
		}(workers[id])
	}
	wg.Wait()

	// Every pixel belongs to exactly one worker, so this gather overwrites each entry once
	result := &Result{
		Pixels: make([]Pixel, r.cfg.Width*r.cfg.Height),
		Width:  r.cfg.Width,
		Height: r.cfg.Height,
	}
	for _, w := range workers {
		for slot, idx := range w.assigned {
			result.Pixels[idx] = w.pixels[slot]
		}
		result.Stats.Workers = append(result.Stats.Workers, w.stats)
	}
	result.Stats.finalize(result.Pixels, r.cfg.SamplesPerPixel, time.Since(start))

	r.logger.Infof("render finished in %v: %.1f samples/pixel on average, %.1f%% of pixels converged",
		result.Stats.RenderTime, result.Stats.AverageSamples(), result.Stats.ConvergedPercent())
	return result, nil
}

// worker owns a disjoint set of pixels and their memory for the whole render
type worker struct {
	r        *Renderer
	id       int
	assigned []int   // local slot -> pixel index
	pixels   []Pixel // local slot -> pixel
	list     *workList
	jitter   [][2]float64
	sampler  *core.RandomSampler
	stats    WorkerStats
}

func (r *Renderer) newWorker(id int, assigned []int) *worker {
	sampler := core.NewSeededSampler(r.cfg.Seed + int64(id))
	return &worker{
		r:        r,
		id:       id,
		assigned: assigned,
		pixels:   make([]Pixel, len(assigned)),
		list:     newWorkList(len(assigned)),
		jitter:   jitterSequence(r.cfg.SamplesPerPixel, sampler.Shuffle),
		sampler:  sampler,
		stats:    WorkerStats{ID: id, Pixels: len(assigned)},
	}
}

// run is the main worker loop
func (w *worker) run() {
	start := time.Now()
	cfg := &w.r.cfg
	spp := cfg.SamplesPerPixel
	runs := cfg.convergenceRuns()

	uDenominator := float64(max(1, cfg.Width-1))
	vDenominator := float64(max(1, cfg.Height-1))

	for pass := 0; pass < spp && w.list.Len() > 0; pass++ {
		w.list.Pass(func(slot int) bool {
			pixel := &w.pixels[slot]
			idx := w.assigned[slot]
			line := idx / cfg.Width
			col := idx % cfg.Width

			// Stratified jitter: half a pixel of randomness inside one of four quadrants
			jitter := w.jitter[pixel.Stats.SampleCount]
			offsetX := (w.sampler.Get1D() + jitter[0]) / 2
			offsetY := (w.sampler.Get1D() + jitter[1]) / 2
			u := (float64(col) + offsetX) / uDenominator
			v := 1 - (float64(line)+offsetY)/vDenominator

			ray := w.r.camera.GetRay(u, v, w.sampler)
			color, depth, objectID := rayColor(w.r.world, cfg, ray, u, v, w.sampler)

			converged := pixel.Stats.Add(color, depth, objectID, runs)
			pixel.Color = pixel.Stats.Mean()
			w.stats.Samples++

			credit := uint64(1)
			if converged {
				credit += uint64(spp - pixel.Stats.SampleCount)
				w.stats.Converged++
			}
			w.r.progress.Add(credit)
			return converged
		})
		w.stats.Passes++
	}

	w.stats.Duration = time.Since(start)
	w.r.logger.Debugf("worker %d: %d pixels, %d samples, %d converged, %d passes in %v",
		w.id, w.stats.Pixels, w.stats.Samples, w.stats.Converged, w.stats.Passes, w.stats.Duration)
}
