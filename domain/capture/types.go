package capture

import (
	"errors"
	"image"
	"log/slog"
	"strconv"
	"time"
)

// ErrBackendUnavailable is returned when a capture source was not compiled in.
var ErrBackendUnavailable = errors.New("capture backend not available in this build")

// Frame is a single captured image. Release must be called once the frame
// has been consumed; buffers may be reused afterwards.
type Frame interface {
	image.Image
	Release()
}

// Info describes what the device reports after opening. The values are
// informational only and may be zero when the driver does not report them.
type Info struct {
	Device string
	FPS    float64
	Width  float64
	Height float64
}

// Source is an open video source from which frames are pulled one at a time.
type Source interface {
	Info() Info
	// Read blocks until the next frame is available. An error means the
	// source can no longer deliver frames.
	Read() (Frame, error)
	Close() error
}

// Options tunes how a source is opened.
type Options struct {
	PixelFormat FourCC        // preferred format, empty picks automatically
	Width       int           // preferred width, 0 picks the largest size
	Height      int           // preferred height, 0 picks the largest size
	ReadTimeout time.Duration // how long Read waits before reporting a disconnect
	Logger      *slog.Logger
}

// imageFrame adapts an owned image to Frame; Release is a no-op.
type imageFrame struct{ image.Image }

func (imageFrame) Release() {}

// WrapImage returns img as a Frame that needs no release.
func WrapImage(img image.Image) Frame { return imageFrame{img} }

// widenFloat32 converts a driver-reported float32 to the float64 with the
// same shortest decimal form, so 29.97 stays 29.97 when printed.
func widenFloat32(f float32) float64 {
	v, err := strconv.ParseFloat(strconv.FormatFloat(float64(f), 'g', -1, 32), 64)
	if err != nil {
		return float64(f)
	}
	return v
}
