package app

import (
	"fmt"

	"github.com/soocke/pixelview/domain/capture"
	"github.com/soocke/pixelview/ui/presenter"
)

// CameraUsage is printed after a bad invocation of the camera viewer.
const CameraUsage = "usage: cameraview [--config FILE] <camera index 0-9>"

// MsgCantOpenCamera is printed when the device cannot be opened.
const MsgCantOpenCamera = "Can't open camera .. verify port number and try again"

// RunCamera opens the camera named by args[0] and shows downscaled frames
// until Escape is pressed, the device disconnects or the window is closed.
func (c *Container) RunCamera(args []string) error {
	if len(args) != 1 {
		return c.CameraUsageError(fmt.Errorf("%w: expected 1 argument, got %d", ErrBadUsage, len(args)))
	}
	index, err := ParseDeviceIndex(args[0])
	if err != nil {
		return c.CameraUsageError(err)
	}
	logger := c.Logger.With("component", "camera", "index", index)
	cfg := c.Config

	src, err := c.openSource(index)
	if err != nil {
		logger.Error("open camera", "source", cfg.Camera.Source, "error", err)
		fmt.Fprintln(c.Stdout, MsgCantOpenCamera)
		return fmt.Errorf("%w: %v", ErrDeviceNotFound, err)
	}
	defer func() {
		if err := src.Close(); err != nil {
			logger.Warn("close camera", "error", err)
		}
	}()

	info := src.Info()
	logger.Info("camera opened", "device", info.Device, "fps", info.FPS, "width", info.Width, "height", info.Height)
	fmt.Fprintf(c.Stdout, "Resolution of the video : %v x %v\n", info.Width, info.Height)
	fmt.Fprintf(c.Stdout, "Capped Frame rate =%v\n", info.FPS)

	win, err := c.NewWindow(cfg.Camera.WindowTitle)
	if err != nil {
		logger.Error("create window", "error", err)
		return fmt.Errorf("create window: %w", err)
	}
	p := presenter.NewCameraPresenter(src, win, c.Console, c.Stdout, cfg.Scale, c.Logger)
	win.Run(cfg.PollInterval, p.Tick, p.Key)
	win.Close()

	st := p.Stats()
	logger.Debug("capture loop ended",
		"frames", st.Frames, "failed", st.Failed,
		"avg_frame", st.AvgFrame, "session", st.SessionTime)
	return nil
}

// CameraUsageError prints the usage message and returns err, which should
// wrap ErrBadUsage.
func (c *Container) CameraUsageError(err error) error {
	c.Logger.Debug("bad usage", "error", err)
	fmt.Fprintln(c.Stdout, "Bad Usage")
	fmt.Fprintln(c.Stdout, CameraUsage)
	return err
}

// openSource opens the configured backend, converting a panic from an
// injected opener into an error.
func (c *Container) openSource(index int) (src capture.Source, err error) {
	defer func() {
		if r := recover(); r != nil {
			src, err = nil, fmt.Errorf("open %s: panic: %v", capture.DevicePath(index), r)
		}
	}()
	cfg := c.Config
	src, err = c.Open(cfg.Camera.Source, index, capture.Options{
		PixelFormat: capture.FourCC(cfg.Camera.PixelFormat),
		Width:       cfg.Camera.Width,
		Height:      cfg.Camera.Height,
		ReadTimeout: cfg.Camera.ReadTimeout,
		Logger:      c.Logger.With("component", "capture"),
	})
	if err == nil && src == nil {
		err = fmt.Errorf("open %s: no source", capture.DevicePath(index))
	}
	return src, err
}
