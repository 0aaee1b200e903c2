package app

import (
	"errors"
)

// Error kinds returned by the viewers. Each maps to one process exit code.
var (
	ErrBadUsage       = errors.New("bad usage")
	ErrDeviceNotFound = errors.New("device not found")
	ErrFileNotFound   = errors.New("file not found")
)

// Process exit codes.
const (
	ExitOK             = 0
	ExitBadUsage       = -1
	ExitDeviceNotFound = -2
	ExitFileNotFound   = -2
)

// ExitCode maps an error returned by RunCamera or RunImage to the process
// exit code. Errors outside the known kinds exit like an open failure.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, ErrBadUsage):
		return ExitBadUsage
	case errors.Is(err, ErrFileNotFound):
		return ExitFileNotFound
	default:
		return ExitDeviceNotFound
	}
}
