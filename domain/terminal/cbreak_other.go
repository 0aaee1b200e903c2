//go:build !linux

package terminal

import "errors"

func enterCbreak(int) (func(), error) {
	return nil, errors.New("cbreak mode not supported on this platform")
}
