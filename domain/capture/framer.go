package capture

import (
	"fmt"
	"sort"
)

// FourCC is a V4L2 pixel format code in its four character form, e.g. "YUYV".
type FourCC string

// Formats with a registered framer.
const (
	FormatMJPEG FourCC = "MJPG"
	FormatYUYV  FourCC = "YUYV"
)

// Framer wraps raw driver bytes in a Frame. release hands the driver buffer
// back and is invoked by the framer once the bytes are no longer needed.
type Framer func(raw []byte, release func()) (Frame, error)

var framerFactories = map[FourCC]func(w, h int) Framer{}

// automatic format preference, most preferred first
var formatPreference = []FourCC{FormatMJPEG, FormatYUYV}

// RegisterFramer registers a framer factory for a format.
// Note that only one factory can be registered for any single format.
func RegisterFramer(format FourCC, factory func(w, h int) Framer) {
	framerFactories[format] = factory
}

// GetFramer returns a function that wraps frames of this format and size.
func GetFramer(format FourCC, w, h int) (Framer, error) {
	if factory, ok := framerFactories[format]; ok {
		return factory(w, h), nil
	}
	return nil, fmt.Errorf("no handler for format '%s'", format)
}

// PixelFormatToFourCC converts a little-endian V4L2 pixel format code to a FourCC.
func PixelFormatToFourCC(pf uint32) FourCC {
	b := []byte{byte(pf), byte(pf >> 8), byte(pf >> 16), byte(pf >> 24)}
	return FourCC(b)
}

// FourCCToPixelFormat converts the four character string to a V4L2 pixel format code.
func FourCCToPixelFormat(f FourCC) (uint32, error) {
	if len(f) != 4 {
		return 0, fmt.Errorf("%s: illegal FourCC", f)
	}
	return uint32(f[0]) | uint32(f[1])<<8 | uint32(f[2])<<16 | uint32(f[3])<<24, nil
}

// PickFormat chooses the format to stream from the formats a device offers.
// want is honoured when offered and decodable; otherwise the first decodable
// format in the built-in preference order wins.
func PickFormat(available []FourCC, want FourCC) (FourCC, error) {
	offered := make(map[FourCC]bool, len(available))
	for _, f := range available {
		offered[f] = true
	}
	candidates := formatPreference
	if want != "" {
		candidates = append([]FourCC{want}, formatPreference...)
	}
	for _, f := range candidates {
		if _, ok := framerFactories[f]; ok && offered[f] {
			return f, nil
		}
	}
	names := make([]string, 0, len(available))
	for _, f := range available {
		names = append(names, string(f))
	}
	sort.Strings(names)
	return "", fmt.Errorf("no supported pixel format (device offers %v)", names)
}

// FrameSize describes a frame size range reported by a driver. For fixed
// sizes min and max are equal and the steps are zero.
type FrameSize struct {
	MinWidth, MaxWidth, StepWidth    uint32
	MinHeight, MaxHeight, StepHeight uint32
}

// Match reports whether the size range can produce exactly w x h.
func (fs FrameSize) Match(w, h int) bool {
	return canFit(fs.MinWidth, fs.MaxWidth, fs.StepWidth, uint32(w)) &&
		canFit(fs.MinHeight, fs.MaxHeight, fs.StepHeight, uint32(h))
}

func canFit(min, max, step, val uint32) bool {
	if min == max && step == 0 {
		return val == min
	}
	return step != 0 && val >= min && val <= max && (val-min)%step == 0
}

// PickFrameSize returns w x h when one of sizes can produce it, otherwise the
// largest size offered. ok is false when sizes is empty.
func PickFrameSize(sizes []FrameSize, w, h int) (int, int, bool) {
	if len(sizes) == 0 {
		return 0, 0, false
	}
	if w > 0 && h > 0 {
		for _, fs := range sizes {
			if fs.Match(w, h) {
				return w, h, true
			}
		}
	}
	best := sizes[0]
	for _, fs := range sizes[1:] {
		if uint64(fs.MaxWidth)*uint64(fs.MaxHeight) > uint64(best.MaxWidth)*uint64(best.MaxHeight) {
			best = fs
		}
	}
	return int(best.MaxWidth), int(best.MaxHeight), true
}
