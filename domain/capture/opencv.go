//go:build gocv

package capture

import (
	"fmt"

	"gocv.io/x/gocv"
)

// opencvSource reads frames through OpenCV's VideoCapture using the V4L2 API.
type opencvSource struct {
	vc   *gocv.VideoCapture
	mat  gocv.Mat
	info Info
}

// OpenOpenCV opens camera index through OpenCV with the V4L2 backend.
func OpenOpenCV(index int, _ Options) (Source, error) {
	vc, err := gocv.VideoCaptureDeviceWithAPI(index, gocv.VideoCaptureV4L2)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", DevicePath(index), err)
	}
	if !vc.IsOpened() {
		_ = vc.Close()
		return nil, fmt.Errorf("open %s: device not opened", DevicePath(index))
	}
	return &opencvSource{
		vc:  vc,
		mat: gocv.NewMat(),
		info: Info{
			Device: DevicePath(index),
			FPS:    vc.Get(gocv.VideoCaptureFPS),
			Width:  vc.Get(gocv.VideoCaptureFrameWidth),
			Height: vc.Get(gocv.VideoCaptureFrameHeight),
		},
	}, nil
}

func (s *opencvSource) Info() Info { return s.info }

// Read converts the captured Mat into a Go image; the Mat is reused.
func (s *opencvSource) Read() (Frame, error) {
	if ok := s.vc.Read(&s.mat); !ok || s.mat.Empty() {
		return nil, fmt.Errorf("read %s: no frame", s.info.Device)
	}
	img, err := s.mat.ToImage()
	if err != nil {
		return nil, fmt.Errorf("convert frame: %w", err)
	}
	return WrapImage(img), nil
}

func (s *opencvSource) Close() error {
	_ = s.mat.Close()
	return s.vc.Close()
}
