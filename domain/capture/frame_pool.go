package capture

import (
	"image"
	"sync"
)

// Reusable 4:2:2 frame buffers. A camera delivers frames of one size for the
// whole session, so recycling the planes removes the per-frame allocation of
// the conversion target. Frames that are never recycled are simply collected.

var framePool sync.Pool // stores *image.YCbCr

// acquireFrame returns a 4:2:2 YCbCr image sized to rect, reusing pooled
// planes when they are large enough.
func acquireFrame(rect image.Rectangle) *image.YCbCr {
	w, h := rect.Dx(), rect.Dy()
	if w <= 0 || h <= 0 {
		return &image.YCbCr{Rect: rect, SubsampleRatio: image.YCbCrSubsampleRatio422}
	}
	cw := (w + 1) / 2
	var img *image.YCbCr
	if v := framePool.Get(); v != nil {
		img = v.(*image.YCbCr)
	}
	if img == nil || cap(img.Y) < w*h || cap(img.Cb) < cw*h || cap(img.Cr) < cw*h {
		return image.NewYCbCr(rect, image.YCbCrSubsampleRatio422)
	}
	img.Y = img.Y[:w*h]
	img.Cb = img.Cb[:cw*h]
	img.Cr = img.Cr[:cw*h]
	img.YStride = w
	img.CStride = cw
	img.Rect = rect
	img.SubsampleRatio = image.YCbCrSubsampleRatio422
	return img
}

// RecycleFrame returns the frame to the pool for potential reuse. The frame
// must no longer be accessed by the caller after invoking RecycleFrame.
func RecycleFrame(img *image.YCbCr) {
	if img == nil || img.Y == nil {
		return
	}
	framePool.Put(img)
}
