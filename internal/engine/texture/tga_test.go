package texture

import (
	"image/color"
	"testing"
)

// tgaHeader builds an 18-byte header for a true-color TGA.
func tgaHeader(imageType byte, width, height, bpp int, topToBottom bool) []byte {
	h := make([]byte, 18)
	h[2] = imageType
	h[12] = byte(width)
	h[13] = byte(width >> 8)
	h[14] = byte(height)
	h[15] = byte(height >> 8)
	h[16] = byte(bpp)
	if topToBottom {
		h[17] = 0x20
	}
	return h
}

func TestDecodeTGAUncompressed(t *testing.T) {
	// 2x1, 24bpp, bottom-up (default): BGR pixels red then green.
	data := append(tgaHeader(2, 2, 1, 24, false),
		0, 0, 255, // red
		0, 255, 0, // green
	)

	img, err := DecodeTGA(data)
	if err != nil {
		t.Fatal(err)
	}
	if got := img.Bounds().Dx(); got != 2 {
		t.Fatalf("width = %d", got)
	}

	want := color.RGBA{255, 0, 0, 255}
	if got := img.At(0, 0); got != want {
		t.Errorf("pixel (0,0) = %v, want red", got)
	}
	if got := img.At(1, 0); (got != color.RGBA{0, 255, 0, 255}) {
		t.Errorf("pixel (1,0) = %v, want green", got)
	}
}

func TestDecodeTGARowOrder(t *testing.T) {
	// 1x2, 32bpp: first stored pixel blue, second red. Bottom-up storage
	// puts the first stored row at the image bottom.
	pixels := []byte{
		255, 0, 0, 255, // blue, BGRA
		0, 0, 255, 255, // red
	}

	bottomUp, err := DecodeTGA(append(tgaHeader(2, 1, 2, 32, false), pixels...))
	if err != nil {
		t.Fatal(err)
	}
	if got := bottomUp.At(0, 1); (got != color.RGBA{0, 0, 255, 255}) {
		t.Errorf("bottom-up: bottom pixel = %v, want blue", got)
	}

	topDown, err := DecodeTGA(append(tgaHeader(2, 1, 2, 32, true), pixels...))
	if err != nil {
		t.Fatal(err)
	}
	if got := topDown.At(0, 0); (got != color.RGBA{0, 0, 255, 255}) {
		t.Errorf("top-down: top pixel = %v, want blue", got)
	}
}

func TestDecodeTGARLE(t *testing.T) {
	// 4x1, 24bpp: one RLE packet repeating a white pixel 3 times, then one
	// raw packet with a single black pixel.
	data := append(tgaHeader(10, 4, 1, 24, true),
		0x82, 255, 255, 255, // RLE, count 3
		0x00, 0, 0, 0, // raw, count 1
	)

	img, err := DecodeTGA(data)
	if err != nil {
		t.Fatal(err)
	}

	for x := 0; x < 3; x++ {
		if got := img.At(x, 0); (got != color.RGBA{255, 255, 255, 255}) {
			t.Errorf("pixel %d = %v, want white", x, got)
		}
	}
	if got := img.At(3, 0); (got != color.RGBA{0, 0, 0, 255}) {
		t.Errorf("pixel 3 = %v, want black", got)
	}
}

func TestDecodeTGARejectsUnsupported(t *testing.T) {
	if _, err := DecodeTGA([]byte{0, 0}); err == nil {
		t.Error("short data must fail")
	}
	if _, err := DecodeTGA(tgaHeader(1, 1, 1, 24, false)); err == nil {
		t.Error("color-mapped type must fail")
	}
	if _, err := DecodeTGA(tgaHeader(2, 1, 1, 16, false)); err == nil {
		t.Error("16bpp must fail")
	}
}
