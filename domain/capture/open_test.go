package capture

import (
	"errors"
	"fmt"
	"image"
	"testing"
)

func TestDevicePath(t *testing.T) {
	if got := DevicePath(3); got != "/dev/video3" {
		t.Fatalf("DevicePath(3) = %q", got)
	}
}

func TestOpen_UnknownBackend(t *testing.T) {
	if _, err := Open("firewire", 0, Options{}); err == nil {
		t.Fatal("expected error for unknown backend")
	}
}

func TestScreenSource_Read(t *testing.T) {
	s := &screenSource{
		info: Info{Device: "screen", Width: 4, Height: 2},
		grab: func() (*image.RGBA, error) { return image.NewRGBA(image.Rect(0, 0, 4, 2)), nil },
	}
	f, err := s.Read()
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	f.Release()
	if f.Bounds().Dx() != 4 {
		t.Fatalf("bounds = %v", f.Bounds())
	}

	s.grab = func() (*image.RGBA, error) { return nil, errors.New("no display") }
	if _, err := s.Read(); err == nil {
		t.Fatal("expected grab error")
	}
}

func TestWidenFloat32(t *testing.T) {
	cases := []struct {
		in   float32
		want string
	}{
		{30000.0 / 1001.0, "29.97003"},
		{29.97, "29.97"},
		{30, "30"},
		{0, "0"},
	}
	for _, c := range cases {
		if got := fmt.Sprintf("%v", widenFloat32(c.in)); got != c.want {
			t.Errorf("widenFloat32(%v) prints %s, want %s", c.in, got, c.want)
		}
	}
}
