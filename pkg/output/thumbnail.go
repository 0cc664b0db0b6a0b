package output

import (
	"image"
	"path/filepath"
	"strings"

	"github.com/nfnt/resize"
)

// Thumbnail scales img down so that neither edge exceeds maxEdge, keeping the
// aspect ratio. Images already small enough are returned unchanged.
func Thumbnail(img image.Image, maxEdge uint) image.Image {
	return resize.Thumbnail(maxEdge, maxEdge, img, resize.Bilinear)
}

// ThumbnailPath derives the thumbnail file name: render.png -> render_thumb.png
func ThumbnailPath(path string) string {
	ext := filepath.Ext(path)
	return strings.TrimSuffix(path, ext) + "_thumb" + ext
}
