package app

import (
	"errors"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/soocke/pixelview/domain/display"
)

func writePNG(t *testing.T, w, h int) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "photo.png")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if err := png.Encode(f, image.NewRGBA(image.Rect(0, 0, w, h))); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestRunImage_BadUsage(t *testing.T) {
	for _, args := range [][]string{nil, {"a.png", "b.png"}} {
		h := newHarness()
		loads := 0
		h.c.Load = func(string) (image.Image, error) { loads++; return nil, errors.New("unused") }
		err := h.c.RunImage(args)
		if ExitCode(err) != -1 || loads != 0 || h.windows != 0 {
			t.Fatalf("args %q: err=%v loads=%d windows=%d", args, err, loads, h.windows)
		}
		if !strings.Contains(h.out.String(), "Bad usage") {
			t.Fatalf("missing usage: %q", h.out.String())
		}
	}
}

func TestRunImage_Missing(t *testing.T) {
	h := newHarness()
	err := h.c.RunImage([]string{filepath.Join(t.TempDir(), "missing.png")})
	if !errors.Is(err, ErrFileNotFound) || ExitCode(err) != -2 {
		t.Fatalf("expected file not found, got %v", err)
	}
	if !strings.Contains(h.out.String(), "couldn't open or find the image file") {
		t.Fatalf("missing diagnostic: %q", h.out.String())
	}
	if h.windows != 0 {
		t.Fatal("no window expected")
	}
}

func TestRunImage_NotAnImage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notes.jpg")
	if err := os.WriteFile(path, []byte("plain text"), 0o644); err != nil {
		t.Fatal(err)
	}
	h := newHarness()
	if err := h.c.RunImage([]string{path}); ExitCode(err) != -2 || h.windows != 0 {
		t.Fatalf("expected -2 without window, got %v", err)
	}
}

func TestRunImage_ShowsScaledUntilKey(t *testing.T) {
	h := newHarness()
	h.win.keys[0] = display.KeyOther
	err := h.c.RunImage([]string{writePNG(t, 1000, 800)})
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if len(h.win.shown) != 1 || h.win.shown[0].Dx() != 300 || h.win.shown[0].Dy() != 240 {
		t.Fatalf("expected one 300x240 image, got %v", h.win.shown)
	}
	if !h.win.closed || h.win.title != "image test" {
		t.Fatalf("closed=%v title=%q", h.win.closed, h.win.title)
	}
	if h.win.interval != 0 {
		t.Fatalf("image viewer must wait without timeout, interval=%v", h.win.interval)
	}
}
