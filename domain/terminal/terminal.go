// Package terminal waits for single keypresses on the controlling terminal.
package terminal

import (
	"errors"
	"io"
	"os"

	"github.com/mattn/go-isatty"
)

// Console reads one keypress at a time from an input stream.
type Console struct {
	in  io.Reader
	fd  int
	tty bool
}

// New returns a Console reading from f. When f is a terminal, line buffering
// and echo are suspended during WaitKey so a single key is enough.
func New(f *os.File) *Console {
	return &Console{in: f, fd: int(f.Fd()), tty: isatty.IsTerminal(f.Fd())}
}

// NewReader returns a Console over a plain reader.
func NewReader(r io.Reader) *Console {
	return &Console{in: r, fd: -1}
}

// WaitKey blocks until one byte arrives. End of input counts as a keypress,
// there is nothing left to wait for.
func (c *Console) WaitKey() error {
	if c.tty {
		if restore, err := enterCbreak(c.fd); err == nil {
			defer restore()
		}
	}
	var b [1]byte
	_, err := io.ReadFull(c.in, b[:])
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}
