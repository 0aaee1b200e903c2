package presenter

import (
	"fmt"
	"image"
	"io"
	"log/slog"
	"time"

	"github.com/soocke/pixelview/domain/capture"
	"github.com/soocke/pixelview/domain/display"
	"github.com/soocke/pixelview/ui/images"
)

// FrameSource narrows what the presenter needs from an open capture source.
type FrameSource interface {
	Read() (capture.Frame, error)
}

// FrameView is the window the presenter draws into.
type FrameView interface {
	Show(img image.Image)
	Close()
}

// KeyWaiter blocks until a single key is pressed on the terminal.
type KeyWaiter interface {
	WaitKey() error
}

// Messages printed by the camera loop.
const (
	MsgDisconnected = "Video camera is disconnected"
	MsgEscape       = "Esc key is pressed by user. Stopping the video"
)

// CameraPresenter runs one iteration of the capture loop per Tick:
// read a frame, downscale it, show it. Key handles window key events.
// After the loop has stopped no further frames are read.
type CameraPresenter struct {
	src     FrameSource
	view    FrameView
	console KeyWaiter
	out     io.Writer
	scale   float64
	logger  *slog.Logger

	stats capture.StatsRecorder
	now   func() time.Time
	done  bool
}

func NewCameraPresenter(src FrameSource, view FrameView, console KeyWaiter, out io.Writer, scale float64, logger *slog.Logger) *CameraPresenter {
	if logger == nil {
		logger = slog.Default()
	}
	return &CameraPresenter{
		src:     src,
		view:    view,
		console: console,
		out:     out,
		scale:   scale,
		logger:  logger.With("component", "camera_presenter"),
		now:     time.Now,
	}
}

// Tick reads and displays one frame. A failed read reports the disconnect,
// waits for a key on the terminal and stops the loop.
func (p *CameraPresenter) Tick() {
	if p == nil || p.done {
		return
	}
	start := p.now()
	frame, err := p.src.Read()
	if err != nil {
		p.stats.Failure(p.now())
		p.logger.Debug("frame read failed", "error", err)
		fmt.Fprintln(p.out, MsgDisconnected)
		if p.console != nil {
			if werr := p.console.WaitKey(); werr != nil {
				p.logger.Warn("terminal wait failed", "error", werr)
			}
		}
		p.stop()
		return
	}
	scaled := images.ScaleBy(frame, p.scale)
	frame.Release()
	p.view.Show(scaled)
	end := p.now()
	p.stats.Frame(end, end.Sub(start))
}

// Key handles a key event from the window. Only Escape has an effect.
func (p *CameraPresenter) Key(k display.Key) {
	if p == nil || p.done || k != display.KeyEscape {
		return
	}
	fmt.Fprintln(p.out, MsgEscape)
	p.stop()
}

// Done reports whether the loop has stopped.
func (p *CameraPresenter) Done() bool { return p != nil && p.done }

// Stats returns the capture statistics collected so far.
func (p *CameraPresenter) Stats() capture.CaptureStats {
	if p == nil {
		return capture.CaptureStats{}
	}
	return p.stats.Stats()
}

func (p *CameraPresenter) stop() {
	p.done = true
	p.view.Close()
}
