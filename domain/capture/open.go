package capture

import (
	"fmt"
)

// Source names understood by Open.
const (
	BackendV4L2   = "v4l2"
	BackendOpenCV = "opencv"
	BackendScreen = "screen"
)

// DevicePath returns the device node for a camera index.
func DevicePath(index int) string {
	return fmt.Sprintf("/dev/video%d", index)
}

// Open opens camera index with the named backend. A panic raised inside a
// backend while opening is returned as an error.
func Open(backend string, index int, opts Options) (src Source, err error) {
	defer func() {
		if r := recover(); r != nil {
			src = nil
			err = fmt.Errorf("open %s: backend panic: %v", DevicePath(index), r)
		}
	}()
	switch backend {
	case BackendV4L2, "":
		return OpenV4L2(index, opts)
	case BackendOpenCV:
		return OpenOpenCV(index, opts)
	case BackendScreen:
		return OpenScreen()
	default:
		return nil, fmt.Errorf("unknown capture backend %q", backend)
	}
}
