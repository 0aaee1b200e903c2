package presenter

import (
	"image"

	"github.com/soocke/pixelview/domain/display"
	"github.com/soocke/pixelview/ui/images"
)

// ImagePresenter shows a single still image until any key is pressed.
type ImagePresenter struct {
	view  FrameView
	scale float64
	shown image.Rectangle
}

func NewImagePresenter(view FrameView, scale float64) *ImagePresenter {
	return &ImagePresenter{view: view, scale: scale}
}

// Present downscales img and shows it.
func (p *ImagePresenter) Present(img image.Image) {
	if p == nil || img == nil {
		return
	}
	scaled := images.ScaleBy(img, p.scale)
	p.shown = scaled.Bounds()
	p.view.Show(scaled)
}

// Shown returns the bounds of the displayed image.
func (p *ImagePresenter) Shown() image.Rectangle { return p.shown }

// Key closes the window on any key.
func (p *ImagePresenter) Key(k display.Key) {
	if p == nil || k == display.KeyNone {
		return
	}
	p.view.Close()
}
