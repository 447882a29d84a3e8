package debug

import (
	"image/png"
	"os"
	"strings"
	"testing"
)

func TestCaptureFromPixelsFlipsVertically(t *testing.T) {
	dir := t.TempDir()
	sc := NewScreenshotCapture(dir, "shot")

	// 1x2 image: bottom row red, top row blue (GL bottom-up order).
	pixels := []byte{
		255, 0, 0, 255,
		0, 0, 255, 255,
	}

	path, err := sc.CaptureFromPixels(pixels, 1, 2)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasSuffix(path, ".png") {
		t.Errorf("unexpected filename %q", path)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	img, err := png.Decode(f)
	if err != nil {
		t.Fatal(err)
	}

	// After the flip the blue GL row is on top.
	r, _, b, _ := img.At(0, 0).RGBA()
	if r != 0 || b != 0xffff {
		t.Errorf("top pixel = (%d,_,%d), want blue", r, b)
	}
	r, _, b, _ = img.At(0, 1).RGBA()
	if r != 0xffff || b != 0 {
		t.Errorf("bottom pixel = (%d,_,%d), want red", r, b)
	}
}

func TestCaptureFromPixelsSizeMismatch(t *testing.T) {
	sc := NewScreenshotCapture(t.TempDir(), "shot")
	if _, err := sc.CaptureFromPixels(make([]byte, 3), 2, 2); err == nil {
		t.Error("size mismatch must be rejected")
	}
}
