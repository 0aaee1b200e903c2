package app

import (
	"fmt"
)

// ParseDeviceIndex parses a camera index given as a single decimal digit.
func ParseDeviceIndex(arg string) (int, error) {
	if len(arg) != 1 || arg[0] < '0' || arg[0] > '9' {
		return 0, fmt.Errorf("%w: device index must be a single digit 0-9, got %q", ErrBadUsage, arg)
	}
	return int(arg[0] - '0'), nil
}
