package content

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"
)

func TestMuseumFrame(t *testing.T) {
	src := &Image{Data: pngBytes(t, 20, 10), Format: "png", Width: 20, Height: 10}

	framed, err := MuseumFrame(src)
	if err != nil {
		t.Fatalf("MuseumFrame() error = %v", err)
	}

	// Four borders of 2, 3, 1 and 3 pixels add 9 per side.
	if framed.Width != 20+18 || framed.Height != 10+18 {
		t.Errorf("dimensions = %dx%d, want 38x28", framed.Width, framed.Height)
	}
	if framed.Format != "png" {
		t.Errorf("Format = %q, want png", framed.Format)
	}

	decoded, err := png.Decode(bytes.NewReader(framed.Data))
	if err != nil {
		t.Fatalf("decode framed output: %v", err)
	}
	b := decoded.Bounds()
	if b.Dx() != framed.Width || b.Dy() != framed.Height {
		t.Errorf("encoded bounds %dx%d disagree with reported %dx%d",
			b.Dx(), b.Dy(), framed.Width, framed.Height)
	}

	// Outermost pixel is the black frame.
	if !isDark(decoded.At(b.Min.X, b.Min.Y)) {
		t.Error("corner pixel is not black frame")
	}
}

func TestMuseumFrameGrayscales(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 10, 10))
	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			img.Set(x, y, color.RGBA{R: 200, G: 40, B: 40, A: 255})
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("png.Encode() error = %v", err)
	}

	framed, err := MuseumFrame(&Image{Data: buf.Bytes(), Format: "png", Width: 10, Height: 10})
	if err != nil {
		t.Fatalf("MuseumFrame() error = %v", err)
	}

	decoded, err := png.Decode(bytes.NewReader(framed.Data))
	if err != nil {
		t.Fatalf("decode framed output: %v", err)
	}

	// Sample the center: the red interior must have become gray.
	b := decoded.Bounds()
	r, g, bl, _ := decoded.At(b.Min.X+b.Dx()/2, b.Min.Y+b.Dy()/2).RGBA()
	if r != g || g != bl {
		t.Errorf("center pixel (%d,%d,%d) is not grayscale", r>>8, g>>8, bl>>8)
	}
}

func TestMuseumFrameBadData(t *testing.T) {
	_, err := MuseumFrame(&Image{Data: []byte("not an image"), Format: "png"})
	if err == nil {
		t.Error("MuseumFrame() with garbage data expected error")
	}
}

func isDark(c color.Color) bool {
	r, g, b, _ := c.RGBA()
	return r < 0x2000 && g < 0x2000 && b < 0x2000
}
