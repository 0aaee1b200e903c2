package terminal

import (
	"errors"
	"strings"
	"testing"
)

func TestWaitKey_ConsumesOneByte(t *testing.T) {
	r := strings.NewReader("ab")
	c := NewReader(r)
	if err := c.WaitKey(); err != nil {
		t.Fatalf("wait: %v", err)
	}
	if r.Len() != 1 {
		t.Fatalf("expected exactly one byte consumed, %d left", r.Len())
	}
}

func TestWaitKey_EOFReleases(t *testing.T) {
	if err := NewReader(strings.NewReader("")).WaitKey(); err != nil {
		t.Fatalf("EOF should release the wait, got %v", err)
	}
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("boom") }

func TestWaitKey_PropagatesReadError(t *testing.T) {
	if err := NewReader(failingReader{}).WaitKey(); err == nil {
		t.Fatal("expected read error")
	}
}
