package capture

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"testing"
)

func encodeTestJPEG(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, color.RGBA{R: uint8(x * 4), G: uint8(y * 5), B: 128, A: 255})
		}
	}
	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: 80}); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

// stripDHT removes every DHT segment in front of the first scan, the way
// UVC cameras deliver MJPEG.
func stripDHT(t *testing.T, raw []byte) []byte {
	t.Helper()
	out := append([]byte(nil), raw[:2]...)
	i := 2
	for i+4 <= len(raw) {
		marker := raw[i+1]
		if marker == 0xda {
			return append(out, raw[i:]...)
		}
		n := 2 + (int(raw[i+2])<<8 | int(raw[i+3]))
		if marker != 0xc4 {
			out = append(out, raw[i:i+n]...)
		}
		i += n
	}
	t.Fatal("no SOS marker")
	return nil
}

func TestDefaultDHT_Length(t *testing.T) {
	if len(defaultDHT) != 420 {
		t.Fatalf("DHT segment is %d bytes, want 420", len(defaultDHT))
	}
	if got := int(defaultDHT[2])<<8 | int(defaultDHT[3]); got != 0x1a2 {
		t.Fatalf("DHT length field = %#x, want 0x1a2", got)
	}
	for _, s := range defaultHuffman {
		total := 0
		for _, c := range s.count {
			total += int(c)
		}
		if total != len(s.values) {
			t.Fatalf("table %d/%d: counts sum to %d, %d values", s.class, s.id, total, len(s.values))
		}
	}
}

func TestMJPEGFramer_DecodesFramesWithoutHuffmanTables(t *testing.T) {
	full := encodeTestJPEG(t, 64, 48)
	stripped := stripDHT(t, full)
	if bytes.Contains(stripped, []byte{0xff, 0xc4}) {
		t.Fatal("DHT still present")
	}
	if _, err := jpeg.Decode(bytes.NewReader(stripped)); err == nil {
		t.Fatal("stripped frame should not decode on its own")
	}

	framer, err := GetFramer(FormatMJPEG, 64, 48)
	if err != nil {
		t.Fatal(err)
	}
	released := 0
	f, err := framer(stripped, func() { released++ })
	if err != nil {
		t.Fatalf("decode stripped frame: %v", err)
	}
	defer f.Release()
	if released != 1 {
		t.Fatalf("driver buffer released %d times", released)
	}
	if f.Bounds().Dx() != 64 || f.Bounds().Dy() != 48 {
		t.Fatalf("bounds = %v", f.Bounds())
	}

	// The encoder writes the same standard tables, so pixels must match.
	want, err := jpeg.Decode(bytes.NewReader(full))
	if err != nil {
		t.Fatal(err)
	}
	for _, p := range []image.Point{{0, 0}, {17, 9}, {63, 47}} {
		r1, g1, b1, _ := f.At(p.X, p.Y).RGBA()
		r2, g2, b2, _ := want.At(p.X, p.Y).RGBA()
		if r1 != r2 || g1 != g2 || b1 != b2 {
			t.Fatalf("pixel %v differs", p)
		}
	}
}

func TestWithHuffmanTables_KeepsCompleteFrames(t *testing.T) {
	full := encodeTestJPEG(t, 16, 16)
	got := withHuffmanTables(full)
	if &got[0] != &full[0] || len(got) != len(full) {
		t.Fatal("frame with DHT should be returned unchanged")
	}
	junk := []byte{1, 2, 3, 4, 5}
	if out := withHuffmanTables(junk); !bytes.Equal(out, junk) {
		t.Fatal("non-JPEG input should pass through")
	}
}

func TestMJPEGFramer_ReleasesOnError(t *testing.T) {
	framer, _ := GetFramer(FormatMJPEG, 8, 8)
	released := 0
	if _, err := framer([]byte{0xff, 0xd8, 0x00}, func() { released++ }); err == nil {
		t.Fatal("expected decode error")
	}
	if released != 1 {
		t.Fatalf("released %d times", released)
	}
}
