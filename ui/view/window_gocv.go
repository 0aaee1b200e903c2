//go:build gocv

package view

import (
	"fmt"
	"image"
	"time"

	"gocv.io/x/gocv"

	"github.com/soocke/pixelview/domain/display"
)

// cvWindow is an OpenCV highgui window polled with WaitKey.
type cvWindow struct {
	win    *gocv.Window
	mat    gocv.Mat
	closed bool
}

// NewWindow opens a highgui window titled title.
func NewWindow(title string) (w display.Window, err error) {
	defer func() {
		if r := recover(); r != nil {
			w, err = nil, fmt.Errorf("highgui: %v", r)
		}
	}()
	return &cvWindow{win: gocv.NewWindow(title), mat: gocv.NewMat()}, nil
}

func (w *cvWindow) Show(img image.Image) {
	if w.closed || img == nil {
		return
	}
	mat, err := gocv.ImageToMatRGB(img)
	if err != nil {
		return
	}
	w.mat.Close()
	w.mat = mat
	w.win.IMShow(w.mat)
}

// Run polls for keys for interval between ticks. An interval of zero blocks
// in WaitKey until a key arrives.
func (w *cvWindow) Run(interval time.Duration, tick func(), key func(display.Key)) {
	delay := int(interval / time.Millisecond)
	if interval > 0 && delay == 0 {
		delay = 1
	}
	for !w.closed {
		if tick != nil && interval > 0 {
			tick()
			if w.closed {
				return
			}
		}
		k := display.FromCode(w.win.WaitKey(delay))
		if k != display.KeyNone && key != nil {
			key(k)
		}
		if !w.closed && w.win.GetWindowProperty(gocv.WindowPropertyVisible) < 1 {
			w.Close()
		}
	}
}

func (w *cvWindow) Close() {
	if w.closed {
		return
	}
	w.closed = true
	w.mat.Close()
	_ = w.win.Close()
}
