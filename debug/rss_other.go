//go:build !linux

package debug

import "errors"

func peakRSS() (uint64, error) {
	return 0, errors.New("peak RSS not supported on this platform")
}
