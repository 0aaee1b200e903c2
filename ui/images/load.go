package images

import (
	"image"

	"github.com/disintegration/imaging"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// Load decodes the image file at path in colour, applying any EXIF
// orientation. Formats: PNG, JPEG, GIF, BMP, TIFF and WebP.
func Load(path string) (image.Image, error) {
	return imaging.Open(path, imaging.AutoOrientation(true))
}
