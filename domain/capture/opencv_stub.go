//go:build !gocv

package capture

import "fmt"

// OpenOpenCV requires building with -tags gocv.
func OpenOpenCV(index int, _ Options) (Source, error) {
	return nil, fmt.Errorf("open %s via opencv: %w", DevicePath(index), ErrBackendUnavailable)
}
