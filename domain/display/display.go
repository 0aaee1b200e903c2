// Package display defines the toolkit-neutral window contract the viewers
// draw into. Implementations live in ui/view.
package display

import (
	"image"
	"time"
)

// Key is a key event reported by a window.
type Key int

const (
	KeyNone Key = iota
	KeyEscape
	KeyOther
)

func (k Key) String() string {
	switch k {
	case KeyEscape:
		return "escape"
	case KeyOther:
		return "other"
	default:
		return "none"
	}
}

// FromCode maps a raw key code as returned by OpenCV-style WaitKey to a Key.
// Negative codes mean no key was pressed.
func FromCode(code int) Key {
	switch {
	case code < 0:
		return KeyNone
	case code&0xff == 27:
		return KeyEscape
	default:
		return KeyOther
	}
}

// Window is a single named on-screen surface.
type Window interface {
	// Show replaces the displayed image.
	Show(img image.Image)
	// Run processes window events until Close is called or the user closes
	// the window. When interval > 0, tick is invoked once per interval; key
	// is invoked for every key press. Both run on the caller's goroutine.
	Run(interval time.Duration, tick func(), key func(Key))
	// Close destroys the window. It is safe to call more than once.
	Close()
}

// Factory creates a window with the given title.
type Factory func(title string) (Window, error)
