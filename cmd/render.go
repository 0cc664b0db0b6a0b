package cmd

import (
	"bytes"
	"context"
	"fmt"
	"math"
	"path"
	"path/filepath"
	"time"

	"github.com/urfave/cli"

	"github.com/df07/go-adaptive-pathtracer/pkg/core"
	"github.com/df07/go-adaptive-pathtracer/pkg/loaders"
	"github.com/df07/go-adaptive-pathtracer/pkg/material"
	"github.com/df07/go-adaptive-pathtracer/pkg/output"
	"github.com/df07/go-adaptive-pathtracer/pkg/renderer"
	"github.com/df07/go-adaptive-pathtracer/pkg/scene"
)

// Render a still frame of a built-in scene.
func RenderFrame(ctx *cli.Context) error {
	setupLogging(ctx)

	built, err := scene.Lookup(ctx.String("scene"))
	if err != nil {
		return err
	}

	if meshPath := ctx.String("mesh"); meshPath != "" {
		if err := addMesh(ctx, built, meshPath); err != nil {
			return err
		}
	}

	if bounds := built.Scene.WorldBounds(); bounds.IsValid() {
		logger.Infof("scene %q: %d objects within %v - %v", built.Name, built.Scene.Len(), bounds.Min, bounds.Max)
	}

	cfg := renderer.DefaultConfig()
	cfg.Width = ctx.Int("width")
	cfg.Height = ctx.Int("height")
	cfg.SamplesPerPixel = ctx.Int("spp")
	cfg.MaxDepth = ctx.Int("depth")
	cfg.NumWorkers = ctx.Int("workers")
	cfg.ConvergenceRuns = ctx.Int("runs")
	cfg.Seed = ctx.Int64("seed")

	camera := newCamera(ctx, built.View, cfg)
	logger.Infof("camera at %v looking along %v", built.View.LookFrom, camera.Forward())

	r, err := renderer.New(built.Scene, camera, cfg, nil)
	if err != nil {
		return err
	}

	logger.Noticef("rendering %q at %dx%d with up to %d spp on %d workers",
		built.Name, cfg.Width, cfg.Height, cfg.SamplesPerPixel, cfg.Workers())

	watchCtx, stopWatching := context.WithCancel(context.Background())
	if interval := ctx.Duration("progress"); interval > 0 {
		go renderer.WatchProgress(watchCtx, r, interval, func(done, total uint64) {
			logger.Infof("progress %5.1f %%", 100*float64(done)/float64(total))
		})
	}
	result, err := r.Render()
	stopWatching()
	if err != nil {
		return err
	}

	displayRenderStats(result.Stats)

	return writeOutputs(ctx, built.Name, result)
}

func newCamera(ctx *cli.Context, view scene.View, cfg renderer.Config) *renderer.Camera {
	aperture := view.Aperture
	if ctx.IsSet("aperture") {
		aperture = ctx.Float64("aperture")
	}

	return renderer.NewCamera(renderer.CameraConfig{
		Center:        view.LookFrom,
		LookAt:        view.LookAt,
		Up:            view.Up,
		VFov:          view.VFov,
		AspectRatio:   float64(cfg.Width) / float64(cfg.Height),
		Aperture:      aperture,
		FocusDistance: view.FocusDistance,
	})
}

// Load a mesh file and drop it at the point the scene camera looks at.
func addMesh(ctx *cli.Context, built scene.Built, meshPath string) error {
	size := ctx.Float64("mesh-scale")
	placement := core.TRS(
		built.View.LookAt,
		core.NewVec3(0, 1, 0),
		ctx.Float64("mesh-rotate")*math.Pi/180,
		core.NewVec3(size, size, size),
	)

	triangles, err := loaders.LoadMesh(meshPath, material.NewLambertian(core.NewVec3(0.7, 0.7, 0.7)), placement)
	if err != nil {
		return err
	}
	for _, tri := range triangles {
		built.Scene.Add(tri)
	}
	return nil
}

func writeOutputs(ctx *cli.Context, sceneName string, result *renderer.Result) error {
	out := ctx.String("out")
	if out == "" {
		timestamp := time.Now().Format("20060102_150405")
		out = filepath.Join("output", sceneName, fmt.Sprintf("render_%s.png", timestamp))
	}

	img := result.Image()
	if err := output.WriteFile(out, img); err != nil {
		return err
	}
	logger.Noticef("render saved as %s", out)

	if depthOut := ctx.String("depth-out"); depthOut != "" {
		if err := output.WriteFile(depthOut, result.DepthImage()); err != nil {
			return err
		}
		logger.Noticef("depth map saved as %s", depthOut)
	}

	if edge := ctx.Int("thumb"); edge > 0 {
		thumbOut := output.ThumbnailPath(out)
		if err := output.WriteFile(thumbOut, output.Thumbnail(img, uint(edge))); err != nil {
			return err
		}
		logger.Infof("thumbnail saved as %s", thumbOut)
	}

	bucket := ctx.String("s3-bucket")
	if bucket == "" {
		return nil
	}

	uploader, err := output.NewS3Uploader(output.S3Config{
		Bucket:    bucket,
		Region:    ctx.String("s3-region"),
		Endpoint:  ctx.String("s3-endpoint"),
		AccessKey: getEnv("PT_S3_ACCESS_KEY", ""),
		SecretKey: getEnv("PT_S3_SECRET_KEY", ""),
	})
	if err != nil {
		return err
	}

	format, err := output.FormatFromPath(out)
	if err != nil {
		return err
	}
	key := path.Join(ctx.String("s3-prefix"), filepath.Base(out))
	return uploader.Upload(context.Background(), key, img, format)
}

func displayRenderStats(stats renderer.RenderStats) {
	var buf bytes.Buffer
	stats.Table(&buf)
	logger.Noticef("render statistics\n%s", buf.String())
	logger.Noticef("samples per pixel: %.1f (range %d - %d)",
		stats.AverageSamples(), stats.MinSamples, stats.MaxSamplesUsed)
}
