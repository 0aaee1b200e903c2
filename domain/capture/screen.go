package capture

import (
	"fmt"
	"image"

	"github.com/vova616/screenshot"
)

// screenSource grabs the whole screen on every read. It stands in for a
// camera on machines without one.
type screenSource struct {
	info Info
	grab func() (*image.RGBA, error)
}

// OpenScreen returns a source that captures the current screen.
func OpenScreen() (Source, error) {
	rect, err := screenshot.ScreenRect()
	if err != nil {
		return nil, fmt.Errorf("screen bounds: %w", err)
	}
	return &screenSource{
		info: Info{Device: "screen", Width: float64(rect.Dx()), Height: float64(rect.Dy())},
		grab: screenshot.CaptureScreen,
	}, nil
}

func (s *screenSource) Info() Info { return s.info }

func (s *screenSource) Read() (Frame, error) {
	img, err := s.grab()
	if err != nil {
		return nil, fmt.Errorf("capture screen: %w", err)
	}
	if img == nil {
		return nil, fmt.Errorf("capture screen: empty image")
	}
	return WrapImage(img), nil
}

func (s *screenSource) Close() error { return nil }
