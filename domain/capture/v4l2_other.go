//go:build !linux

package capture

import "fmt"

// OpenV4L2 is only available on Linux.
func OpenV4L2(index int, _ Options) (Source, error) {
	return nil, fmt.Errorf("open %s: %w", DevicePath(index), ErrBackendUnavailable)
}
