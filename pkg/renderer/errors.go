package renderer

import "errors"

var (
	ErrInvalidSize      = errors.New("renderer: image width and height must be positive")
	ErrNoSamples        = errors.New("renderer: samples per pixel must be positive")
	ErrInvalidDepth     = errors.New("renderer: max depth must be positive")
	ErrInvalidWorkers   = errors.New("renderer: worker count must not be negative")
	ErrInvalidRange     = errors.New("renderer: ray range must satisfy 0 <= tMin < tMax")
	ErrSceneNotDefined  = errors.New("renderer: no scene defined")
	ErrCameraNotDefined = errors.New("renderer: no camera defined")
)
