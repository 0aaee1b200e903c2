//go:build linux

package capture

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/blackjack/webcam"
)

const defaultBuffers = 4

// v4l2Source streams frames from a V4L2 device through memory-mapped buffers.
type v4l2Source struct {
	cam     *webcam.Webcam
	info    Info
	format  FourCC
	framer  Framer
	timeout uint32 // seconds, as WaitForFrame expects
	logger  *slog.Logger
}

// OpenV4L2 opens /dev/video<index>, negotiates format and size and starts streaming.
func OpenV4L2(index int, opts Options) (Source, error) {
	device := DevicePath(index)
	cam, err := webcam.Open(device)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", device, err)
	}
	s := &v4l2Source{cam: cam, info: Info{Device: device}, logger: opts.Logger}
	if err := s.init(opts); err != nil {
		_ = cam.Close()
		return nil, fmt.Errorf("init %s: %w", device, err)
	}
	return s, nil
}

func (s *v4l2Source) init(opts Options) error {
	supported := s.cam.GetSupportedFormats()
	codes := make(map[FourCC]webcam.PixelFormat, len(supported))
	available := make([]FourCC, 0, len(supported))
	for pf := range supported {
		f := PixelFormatToFourCC(uint32(pf))
		codes[f] = pf
		available = append(available, f)
	}
	format, err := PickFormat(available, opts.PixelFormat)
	if err != nil {
		return err
	}
	pf := codes[format]

	var sizes []FrameSize
	for _, fs := range s.cam.GetSupportedFrameSizes(pf) {
		sizes = append(sizes, FrameSize{
			MinWidth: fs.MinWidth, MaxWidth: fs.MaxWidth, StepWidth: fs.StepWidth,
			MinHeight: fs.MinHeight, MaxHeight: fs.MaxHeight, StepHeight: fs.StepHeight,
		})
	}
	w, h, ok := PickFrameSize(sizes, opts.Width, opts.Height)
	if !ok {
		return fmt.Errorf("no frame sizes reported for %s", format)
	}

	npf, nw, nh, err := s.cam.SetImageFormat(pf, uint32(w), uint32(h))
	if err != nil {
		return fmt.Errorf("set format %s %dx%d: %w", format, w, h, err)
	}
	got := PixelFormatToFourCC(uint32(npf))
	if got != format || int(nw) != w || int(nh) != h {
		s.log().Debug("driver adjusted format",
			"asked", fmt.Sprintf("%s %dx%d", format, w, h),
			"got", fmt.Sprintf("%s %dx%d", got, nw, nh))
	}
	if s.framer, err = GetFramer(got, int(nw), int(nh)); err != nil {
		return err
	}
	s.format = got
	s.info.Width = float64(nw)
	s.info.Height = float64(nh)

	if fps, err := s.cam.GetFramerate(); err == nil {
		s.info.FPS = widenFloat32(fps)
	} else {
		s.log().Debug("framerate not reported", "error", err)
	}

	if err := s.cam.SetBufferCount(defaultBuffers); err != nil {
		s.log().Debug("set buffer count", "error", err)
	}
	s.timeout = uint32(opts.ReadTimeout / time.Second)
	if s.timeout == 0 {
		s.timeout = 5
	}
	return s.cam.StartStreaming()
}

func (s *v4l2Source) log() *slog.Logger {
	if s.logger == nil {
		return slog.Default()
	}
	return s.logger
}

func (s *v4l2Source) Info() Info { return s.info }

// Read waits for the next buffer. Empty dequeues are retried; a timeout or
// any driver error ends the stream.
func (s *v4l2Source) Read() (Frame, error) {
	for {
		err := s.cam.WaitForFrame(s.timeout)
		var timeout *webcam.Timeout
		if errors.As(err, &timeout) {
			return nil, fmt.Errorf("no frame within %ds: %w", s.timeout, err)
		}
		if err != nil {
			return nil, err
		}
		raw, index, err := s.cam.GetFrame()
		if err != nil {
			return nil, err
		}
		if len(raw) == 0 {
			_ = s.cam.ReleaseFrame(index)
			continue
		}
		return s.framer(raw, func() { _ = s.cam.ReleaseFrame(index) })
	}
}

func (s *v4l2Source) Close() error {
	_ = s.cam.StopStreaming()
	return s.cam.Close()
}
