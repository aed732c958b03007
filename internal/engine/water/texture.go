package water

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// Texture is an immutable RGB8 texture created once at startup.
type Texture struct {
	id uint32
}

// UploadRGB creates a repeat-wrapped, nearest-filtered RGB8 texture from
// a pixel buffer laid out per the wave package's texel stride.
func UploadRGB(pix []byte, width, height int) (*Texture, error) {
	if len(pix) != width*height*3 {
		return nil, fmt.Errorf("%w: %d bytes for %dx%d RGB texture", ErrResourceAllocation,
			len(pix), width, height)
	}

	t := &Texture{}
	gl.GenTextures(1, &t.id)
	if t.id == 0 {
		return nil, fmt.Errorf("%w: texture object", ErrResourceAllocation)
	}

	gl.BindTexture(gl.TEXTURE_2D, t.id)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGB, int32(width), int32(height), 0,
		gl.RGB, gl.UNSIGNED_BYTE, unsafe.Pointer(&pix[0]))

	return t, nil
}

// ID returns the GL texture handle.
func (t *Texture) ID() uint32 {
	return t.id
}

// Bind binds the texture to the given texture unit.
func (t *Texture) Bind(unit uint32) {
	gl.ActiveTexture(gl.TEXTURE0 + unit)
	gl.BindTexture(gl.TEXTURE_2D, t.id)
}

// Destroy releases the texture. Safe to call more than once.
func (t *Texture) Destroy() {
	if t.id != 0 {
		gl.DeleteTextures(1, &t.id)
		t.id = 0
	}
}
