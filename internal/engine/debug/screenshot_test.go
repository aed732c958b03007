package debug

import (
	"image/png"
	"os"
	"testing"
)

func TestSaveFrameFlipsRows(t *testing.T) {
	c := NewCapture(t.TempDir(), "frame")

	// 1x2 RGBA: bottom row red, top row blue (GL order is bottom-up).
	pixels := []byte{
		255, 0, 0, 255,
		0, 0, 255, 255,
	}

	path, err := c.SaveFrame(pixels, 1, 2)
	if err != nil {
		t.Fatalf("SaveFrame: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open %s: %v", path, err)
	}
	defer f.Close()

	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}

	r, _, b, _ := img.At(0, 0).RGBA()
	if r != 0 || b != 0xffff {
		t.Errorf("top-left = (r=%d, b=%d), want blue after vertical flip", r, b)
	}
	r, _, b, _ = img.At(0, 1).RGBA()
	if r != 0xffff || b != 0 {
		t.Errorf("bottom-left = (r=%d, b=%d), want red after vertical flip", r, b)
	}
}

func TestSaveFrameSizeMismatch(t *testing.T) {
	c := NewCapture(t.TempDir(), "frame")
	if _, err := c.SaveFrame(make([]byte, 7), 2, 2); err == nil {
		t.Error("SaveFrame accepted short pixel buffer")
	}
}

func TestSaveRGBTexture(t *testing.T) {
	c := NewCapture(t.TempDir(), "tex")

	// 2x2 column-major texels: (x,y) at (x*height+y)*3. Mixing the axes
	// up would put the (1,0) texel at image position (0,1) instead.
	pix := []byte{
		10, 10, 10, // (0,0)
		20, 20, 20, // (0,1)
		30, 30, 30, // (1,0)
		40, 40, 40, // (1,1)
	}
	path, err := c.SaveRGBTexture(pix, 2, 2, "normalmap")
	if err != nil {
		t.Fatalf("SaveRGBTexture: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open %s: %v", path, err)
	}
	defer f.Close()

	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}

	wants := []struct {
		x, y int
		v    uint32
	}{
		{0, 0, 10}, {0, 1, 20}, {1, 0, 30}, {1, 1, 40},
	}
	for _, w := range wants {
		r, _, _, _ := img.At(w.x, w.y).RGBA()
		if r>>8 != w.v {
			t.Errorf("pixel (%d,%d) = %d, want %d", w.x, w.y, r>>8, w.v)
		}
	}

	if _, err := c.SaveRGBTexture(pix, 3, 3, "bad"); err == nil {
		t.Error("SaveRGBTexture accepted short buffer")
	}
}
