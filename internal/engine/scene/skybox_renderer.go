package scene

import (
	"fmt"
	"image"
	"path/filepath"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/calmsea/wavetank/internal/engine/scene/shaders"
	"github.com/calmsea/wavetank/internal/engine/shader"
	"github.com/calmsea/wavetank/internal/engine/texture"
	"github.com/calmsea/wavetank/internal/logger"
	"github.com/calmsea/wavetank/pkg/math"
)

// Cubemap face order follows GL_TEXTURE_CUBE_MAP_POSITIVE_X onward.
var cubemapFaces = []string{"posx", "negx", "posy", "negy", "posz", "negz"}

// SkyboxRenderer draws a cubemap skybox and hands its texture to the
// water material for environment reflection.
type SkyboxRenderer struct {
	program uint32

	locProjection int32
	locView       int32
	locSkybox     int32

	vao     uint32
	vbo     uint32
	cubemap uint32
}

// NewSkyboxRenderer loads the six cubemap faces from dir (jpg or png) and
// sets up the unit cube. A missing or unreadable face fails construction;
// callers may treat that as a degraded scene rather than a fatal error.
func NewSkyboxRenderer(dir string) (*SkyboxRenderer, error) {
	program, err := shader.CompileProgram(shaders.SkyboxVertexShader, shaders.SkyboxFragmentShader)
	if err != nil {
		return nil, fmt.Errorf("skybox shader: %w", err)
	}

	sr := &SkyboxRenderer{
		program:       program,
		locProjection: shader.GetUniform(program, "projection"),
		locView:       shader.GetUniform(program, "view"),
		locSkybox:     shader.GetUniform(program, "skybox"),
	}

	if err := sr.loadCubemap(dir); err != nil {
		sr.Destroy()
		return nil, err
	}
	sr.setupCube()

	logger.Info("skybox loaded", zap.String("dir", dir))
	return sr, nil
}

func (sr *SkyboxRenderer) loadCubemap(dir string) error {
	gl.GenTextures(1, &sr.cubemap)
	gl.BindTexture(gl.TEXTURE_CUBE_MAP, sr.cubemap)

	for face, name := range cubemapFaces {
		img, err := loadFace(dir, name)
		if err != nil {
			return fmt.Errorf("cubemap face %s: %w", name, err)
		}
		w := int32(img.Bounds().Dx())
		h := int32(img.Bounds().Dy())
		gl.TexImage2D(gl.TEXTURE_CUBE_MAP_POSITIVE_X+uint32(face), 0, gl.RGBA,
			w, h, 0, gl.RGBA, gl.UNSIGNED_BYTE, unsafe.Pointer(&img.Pix[0]))
	}

	gl.TexParameteri(gl.TEXTURE_CUBE_MAP, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_CUBE_MAP, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_CUBE_MAP, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_CUBE_MAP, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_CUBE_MAP, gl.TEXTURE_WRAP_R, gl.CLAMP_TO_EDGE)

	return nil
}

func loadFace(dir, name string) (img *image.RGBA, err error) {
	for _, ext := range []string{".jpg", ".png"} {
		img, err = texture.LoadRGBA(filepath.Join(dir, name+ext))
		if err == nil {
			return img, nil
		}
	}
	return nil, err
}

func (sr *SkyboxRenderer) setupCube() {
	vertices := cubeVertices()

	gl.GenVertexArrays(1, &sr.vao)
	gl.BindVertexArray(sr.vao)

	gl.GenBuffers(1, &sr.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, sr.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*4, unsafe.Pointer(&vertices[0]), gl.STATIC_DRAW)

	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, 3*4, 0)
	gl.EnableVertexAttribArray(0)

	gl.BindVertexArray(0)
}

// Cubemap returns the cubemap texture handle for environment sampling.
func (sr *SkyboxRenderer) Cubemap() uint32 {
	return sr.cubemap
}

// Render draws the skybox. Call it last in the frame; depth writes stay
// enabled but the cube sits on the far plane.
func (sr *SkyboxRenderer) Render(projection, view math.Mat4) {
	gl.DepthFunc(gl.LEQUAL)
	gl.UseProgram(sr.program)

	rotOnly := view.NoTranslation()
	gl.UniformMatrix4fv(sr.locProjection, 1, false, projection.Ptr())
	gl.UniformMatrix4fv(sr.locView, 1, false, rotOnly.Ptr())

	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_CUBE_MAP, sr.cubemap)
	gl.Uniform1i(sr.locSkybox, 0)

	gl.BindVertexArray(sr.vao)
	gl.DrawArrays(gl.TRIANGLES, 0, 36)
	gl.BindVertexArray(0)

	gl.DepthFunc(gl.LESS)
}

// Destroy releases all GL objects.
func (sr *SkyboxRenderer) Destroy() {
	if sr.vao != 0 {
		gl.DeleteVertexArrays(1, &sr.vao)
		sr.vao = 0
	}
	if sr.vbo != 0 {
		gl.DeleteBuffers(1, &sr.vbo)
		sr.vbo = 0
	}
	if sr.cubemap != 0 {
		gl.DeleteTextures(1, &sr.cubemap)
		sr.cubemap = 0
	}
	if sr.program != 0 {
		gl.DeleteProgram(sr.program)
		sr.program = 0
	}
}

// cubeVertices returns 36 positions for a unit cube, wound inward.
func cubeVertices() []float32 {
	return []float32{
		-1, 1, -1, -1, -1, -1, 1, -1, -1,
		1, -1, -1, 1, 1, -1, -1, 1, -1,

		-1, -1, 1, -1, -1, -1, -1, 1, -1,
		-1, 1, -1, -1, 1, 1, -1, -1, 1,

		1, -1, -1, 1, -1, 1, 1, 1, 1,
		1, 1, 1, 1, 1, -1, 1, -1, -1,

		-1, -1, 1, -1, 1, 1, 1, 1, 1,
		1, 1, 1, 1, -1, 1, -1, -1, 1,

		-1, 1, -1, 1, 1, -1, 1, 1, 1,
		1, 1, 1, -1, 1, 1, -1, 1, -1,

		-1, -1, -1, -1, -1, 1, 1, -1, -1,
		1, -1, -1, -1, -1, 1, 1, -1, 1,
	}
}
