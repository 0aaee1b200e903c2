package capture

import (
	"fmt"
	"image"
)

// Register this framer for this format.
func init() {
	RegisterFramer(FormatYUYV, newFramerYUYV)
}

// yuyvFrame is a pooled 4:2:2 image converted from a packed YUYV buffer.
type yuyvFrame struct {
	*image.YCbCr
}

func (f *yuyvFrame) Release() {
	if f.YCbCr != nil {
		RecycleFrame(f.YCbCr)
		f.YCbCr = nil
	}
}

func newFramerYUYV(w, h int) Framer {
	return func(raw []byte, release func()) (Frame, error) {
		if release != nil {
			defer release()
		}
		return convertYUYV(w, h, raw)
	}
}

// convertYUYV unpacks Y0 Cb Y1 Cr macropixels into planar 4:2:2. Rows may be
// padded; the stride is derived from the buffer length.
func convertYUYV(w, h int, raw []byte) (Frame, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("invalid frame size %dx%d", w, h)
	}
	minLen := 2 * w * h
	if len(raw) < minLen || len(raw)%h != 0 {
		return nil, fmt.Errorf("wrong frame length (exp: %d, read %d)", minLen, len(raw))
	}
	stride := len(raw) / h
	img := acquireFrame(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		row := raw[y*stride : y*stride+2*w]
		yOff := y * img.YStride
		cOff := y * img.CStride
		for x := 0; x+1 < w; x += 2 {
			i := x * 2
			img.Y[yOff+x] = row[i]
			img.Y[yOff+x+1] = row[i+2]
			img.Cb[cOff+x/2] = row[i+1]
			img.Cr[cOff+x/2] = row[i+3]
		}
		if w%2 == 1 {
			// odd width: the last macropixel carries a single luma sample
			i := (w - 1) * 2
			img.Y[yOff+w-1] = row[i]
			img.Cb[cOff+(w-1)/2] = row[i+1]
			if i+3 < len(row) {
				img.Cr[cOff+(w-1)/2] = row[i+3]
			}
		}
	}
	return &yuyvFrame{img}, nil
}
