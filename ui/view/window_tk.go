//go:build !gocv

package view

import (
	"fmt"
	"image"
	"time"

	"github.com/soocke/pixelview/domain/display"
	"github.com/soocke/pixelview/ui/images"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"
)

// tkWindow shows images in the Tk root window through a single photo label.
// Tk owns one root window per process, so only one tkWindow may exist.
type tkWindow struct {
	label   *LabelWidget
	photo   *Img // current photo, deleted when replaced
	afterID string
	closed  bool
}

// NewWindow creates the Tk root window titled title.
func NewWindow(title string) (w display.Window, err error) {
	defer func() {
		if r := recover(); r != nil {
			w, err = nil, fmt.Errorf("tk: %v", r)
		}
	}()
	win := &tkWindow{}
	App.WmTitle(title)
	WmProtocol(App, "WM_DELETE_WINDOW", win.Close)
	return win, nil
}

func (w *tkWindow) Show(img image.Image) {
	if w.closed || img == nil {
		return
	}
	photo := NewPhoto(Data(images.EncodePNG(img)))
	if w.label == nil {
		w.label = Label(Image(photo), Borderwidth(1), Relief("sunken"))
		Pack(w.label, Padx("1m"), Pady("1m"))
	} else {
		w.label.Configure(Image(photo))
	}
	// Replace previous photo to avoid retaining obsolete pixel buffers.
	if w.photo != nil {
		w.photo.Delete()
	}
	w.photo = photo
}

func (w *tkWindow) Run(interval time.Duration, tick func(), key func(display.Key)) {
	if w.closed {
		return
	}
	if key != nil {
		// <Escape> is more specific than <KeyPress>, so Tk fires only one of them.
		Bind(App, "<Escape>", Command(func() { key(display.KeyEscape) }))
		Bind(App, "<KeyPress>", Command(func() { key(display.KeyOther) }))
	}
	if interval > 0 && tick != nil {
		var step func()
		step = func() {
			w.afterID = ""
			if w.closed {
				return
			}
			tick()
			if !w.closed {
				w.afterID = TclAfter(interval, step)
			}
		}
		w.afterID = TclAfter(interval, step)
	}
	App.Wait()
}

func (w *tkWindow) Close() {
	if w.closed {
		return
	}
	w.closed = true
	if w.afterID != "" {
		TclAfterCancel(w.afterID)
		w.afterID = ""
	}
	Destroy(App)
}
