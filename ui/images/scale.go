package images

import (
	"bytes"
	"image"
	"image/png"
	"math"

	"github.com/disintegration/imaging"
)

// EncodePNG encodes an image to PNG bytes. Errors are ignored and may return an empty slice.
func EncodePNG(img image.Image) []byte {
	if img == nil {
		return nil
	}
	var buf bytes.Buffer
	_ = png.Encode(&buf, img)
	return buf.Bytes()
}

// ScaledSize returns round(w*f) x round(h*f), never smaller than 1x1.
func ScaledSize(w, h int, f float64) (int, int) {
	nw := int(math.Round(float64(w) * f))
	nh := int(math.Round(float64(h) * f))
	if nw < 1 {
		nw = 1
	}
	if nh < 1 {
		nh = 1
	}
	return nw, nh
}

// ScaleBy resizes src by factor f in both dimensions with bilinear filtering.
// The result does not alias src, so the source may be released afterwards.
func ScaleBy(src image.Image, f float64) *image.NRGBA {
	if src == nil {
		return nil
	}
	b := src.Bounds()
	if b.Empty() {
		return image.NewNRGBA(image.Rect(0, 0, 0, 0))
	}
	w, h := ScaledSize(b.Dx(), b.Dy(), f)
	return imaging.Resize(src, w, h, imaging.Linear)
}
