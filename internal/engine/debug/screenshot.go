// Package debug provides capture utilities for inspecting rendered
// frames and the generated surface textures.
package debug

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"time"
)

// Capture writes PNG snapshots of the framebuffer and of synthesized
// textures into an output directory.
type Capture struct {
	outputDir string
	prefix    string
}

// NewCapture creates a capture handler writing prefix_<timestamp>.png
// files under outputDir.
func NewCapture(outputDir, prefix string) *Capture {
	return &Capture{
		outputDir: outputDir,
		prefix:    prefix,
	}
}

// SaveFrame saves a framebuffer readback as a PNG. pixels must be RGBA,
// width*height*4 bytes, bottom-up as OpenGL returns them; the image is
// flipped vertically during the copy.
func (c *Capture) SaveFrame(pixels []byte, width, height int) (string, error) {
	if len(pixels) != width*height*4 {
		return "", fmt.Errorf("pixel data size mismatch: expected %d, got %d", width*height*4, len(pixels))
	}

	img := image.NewRGBA(image.Rect(0, 0, width, height))

	rowSize := width * 4
	for y := 0; y < height; y++ {
		srcY := height - 1 - y // Flip Y
		srcOffset := srcY * rowSize
		dstOffset := y * img.Stride

		copy(img.Pix[dstOffset:dstOffset+rowSize], pixels[srcOffset:srcOffset+rowSize])
	}

	return c.save(img, c.prefix)
}

// SaveRGBTexture saves a packed RGB byte texture as a PNG named after
// the texture. pix must be width*height*3 bytes in the column-major
// layout the texture synthesis emits: texel (x, y) at (x*height + y)*3.
func (c *Capture) SaveRGBTexture(pix []byte, width, height int, name string) (string, error) {
	if len(pix) != width*height*3 {
		return "", fmt.Errorf("texture data size mismatch: expected %d, got %d", width*height*3, len(pix))
	}

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			o := (x*height + y) * 3
			img.SetRGBA(x, y, color.RGBA{R: pix[o], G: pix[o+1], B: pix[o+2], A: 255})
		}
	}

	return c.save(img, c.prefix+"_"+name)
}

func (c *Capture) save(img image.Image, prefix string) (string, error) {
	if c.outputDir != "" {
		if err := os.MkdirAll(c.outputDir, 0755); err != nil {
			return "", fmt.Errorf("creating output dir: %w", err)
		}
	}

	timestamp := time.Now().Format("2006-01-02_15-04-05")
	filename := fmt.Sprintf("%s_%s.png", prefix, timestamp)
	if c.outputDir != "" {
		filename = filepath.Join(c.outputDir, filename)
	}

	file, err := os.Create(filename)
	if err != nil {
		return "", fmt.Errorf("creating file: %w", err)
	}
	defer file.Close()

	if err := png.Encode(file, img); err != nil {
		return "", fmt.Errorf("encoding PNG: %w", err)
	}

	return filename, nil
}
