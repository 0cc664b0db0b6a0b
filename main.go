package main

import (
	"os"
	"time"

	"github.com/urfave/cli"

	"github.com/df07/go-adaptive-pathtracer/cmd"
	"github.com/df07/go-adaptive-pathtracer/pkg/log"
)

func newApp() *cli.App {
	// The default "version, v" flag would clash with the global -v
	cli.VersionFlag = cli.BoolFlag{
		Name:  "version",
		Usage: "print only the version",
	}

	app := cli.NewApp()
	app.Name = "pathtracer"
	app.Usage = "render scenes with an adaptive path tracer"
	app.Version = "0.1.0"
	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "v",
			Usage: "enable verbose logging",
		},
		cli.BoolFlag{
			Name:  "vv",
			Usage: "enable even more verbose logging",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:   "scenes",
			Usage:  "list built-in scenes",
			Action: cmd.ListScenes,
		},
		{
			Name:  "render",
			Usage: "render a single frame",
			Description: `
Render a built-in scene. Each pixel is sampled until its color stops changing
or the samples-per-pixel budget is spent.

Settings can also come from PT_* environment variables or a dotenv file named by
PT_ENV_FILE (default .env). S3 credentials are read from PT_S3_ACCESS_KEY and
PT_S3_SECRET_KEY, falling back to the default AWS credential chain.`,
			Action: cmd.RenderFrame,
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:   "scene, s",
					Value:  "default",
					Usage:  "built-in scene name",
					EnvVar: "PT_SCENE",
				},
				cli.IntFlag{
					Name:   "width",
					Value:  400,
					Usage:  "frame width",
					EnvVar: "PT_WIDTH",
				},
				cli.IntFlag{
					Name:   "height",
					Value:  225,
					Usage:  "frame height",
					EnvVar: "PT_HEIGHT",
				},
				cli.IntFlag{
					Name:   "spp",
					Value:  100,
					Usage:  "maximum samples per pixel",
					EnvVar: "PT_SPP",
				},
				cli.IntFlag{
					Name:   "depth",
					Value:  50,
					Usage:  "maximum ray queries per sample",
					EnvVar: "PT_MAX_DEPTH",
				},
				cli.IntFlag{
					Name:   "workers",
					Value:  0,
					Usage:  "number of render workers (0 = one per CPU)",
					EnvVar: "PT_WORKERS",
				},
				cli.IntFlag{
					Name:   "runs",
					Value:  5,
					Usage:  "unchanged samples before a pixel counts as converged",
					EnvVar: "PT_CONVERGENCE_RUNS",
				},
				cli.Int64Flag{
					Name:   "seed",
					Value:  42,
					Usage:  "base random seed",
					EnvVar: "PT_SEED",
				},
				cli.Float64Flag{
					Name:  "aperture",
					Usage: "override the scene's lens aperture",
				},
				cli.StringFlag{
					Name:  "mesh",
					Usage: "OBJ, STL or PLY mesh to add at the camera target",
				},
				cli.Float64Flag{
					Name:  "mesh-scale",
					Value: 1,
					Usage: "half-size of the fitted mesh",
				},
				cli.Float64Flag{
					Name:  "mesh-rotate",
					Usage: "rotation of the mesh about +Y in degrees",
				},
				cli.StringFlag{
					Name:   "out, o",
					Usage:  "output image (.png, .tiff or .bmp); default output/<scene>/render_<timestamp>.png",
					EnvVar: "PT_OUT",
				},
				cli.StringFlag{
					Name:  "depth-out",
					Usage: "also write a depth map to this file",
				},
				cli.IntFlag{
					Name:  "thumb",
					Usage: "also write a thumbnail whose longest edge is this many pixels",
				},
				cli.DurationFlag{
					Name:   "progress",
					Value:  time.Second,
					Usage:  "progress log interval (0 disables)",
					EnvVar: "PT_PROGRESS",
				},
				cli.StringFlag{
					Name:   "s3-bucket",
					Usage:  "upload the render to this bucket",
					EnvVar: "PT_S3_BUCKET",
				},
				cli.StringFlag{
					Name:   "s3-region",
					Value:  "us-east-1",
					Usage:  "bucket region",
					EnvVar: "PT_S3_REGION",
				},
				cli.StringFlag{
					Name:   "s3-endpoint",
					Usage:  "endpoint of an S3-compatible store",
					EnvVar: "PT_S3_ENDPOINT",
				},
				cli.StringFlag{
					Name:   "s3-prefix",
					Value:  "renders",
					Usage:  "key prefix for uploads",
					EnvVar: "PT_S3_PREFIX",
				},
			},
		},
	}
	return app
}

func main() {
	logger := log.New("pathtracer")

	if err := cmd.LoadEnv(); err != nil {
		logger.Warning(err)
	}

	if err := newApp().Run(os.Args); err != nil {
		logger.Error(err)
		os.Exit(1)
	}
}
