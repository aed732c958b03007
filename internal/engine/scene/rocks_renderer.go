package scene

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/calmsea/wavetank/internal/engine/rocks"
	"github.com/calmsea/wavetank/internal/engine/scene/shaders"
	"github.com/calmsea/wavetank/internal/engine/shader"
	"github.com/calmsea/wavetank/internal/engine/water"
	"github.com/calmsea/wavetank/pkg/math"
)

// RocksRenderer draws the rock mound with the caustic pattern projected
// down from the water patch.
type RocksRenderer struct {
	program uint32

	locProjection int32
	locView       int32
	locModel      int32
	locCameraPos  int32
	locSunDir     int32
	locNormalMap  int32
	locCaustics   int32
	locPatchMin   int32
	locPatchSize  int32

	vao        uint32
	vbo        uint32
	ebo        uint32
	indexCount int32

	model math.Mat4
}

// NewRocksRenderer compiles the rocks program and uploads the mound mesh.
// The mound sits below the water, mirroring the classic scene placement.
func NewRocksRenderer(geo *rocks.Geometry) (*RocksRenderer, error) {
	program, err := shader.CompileProgram(shaders.RocksVertexShader, shaders.RocksFragmentShader)
	if err != nil {
		return nil, fmt.Errorf("rocks shader: %w", err)
	}

	rr := &RocksRenderer{
		program:       program,
		locProjection: shader.GetUniform(program, "projection"),
		locView:       shader.GetUniform(program, "view"),
		locModel:      shader.GetUniform(program, "model"),
		locCameraPos:  shader.GetUniform(program, "cameraPos"),
		locSunDir:     shader.GetUniform(program, "sunDir"),
		locNormalMap:  shader.GetUniform(program, "normalMap"),
		locCaustics:   shader.GetUniform(program, "refractions"),
		locPatchMin:   shader.GetUniform(program, "patchMin"),
		locPatchSize:  shader.GetUniform(program, "patchSize"),
		indexCount:    int32(len(geo.Indices)),
		model:         math.Translate(-12.5, -20, -12.5).Mul(math.Scale(3, 3, 3)),
	}

	gl.GenVertexArrays(1, &rr.vao)
	gl.BindVertexArray(rr.vao)

	gl.GenBuffers(1, &rr.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, rr.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(geo.Vertices)*4, unsafe.Pointer(&geo.Vertices[0]), gl.STATIC_DRAW)

	stride := int32(rocks.VertexStride * 4)
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, stride, 0)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(1, 3, gl.FLOAT, false, stride, 3*4)
	gl.EnableVertexAttribArray(1)

	gl.GenBuffers(1, &rr.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, rr.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(geo.Indices)*4, unsafe.Pointer(&geo.Indices[0]), gl.STATIC_DRAW)

	gl.BindVertexArray(0)

	return rr, nil
}

// Render draws the mound. The water adapter supplies the normal and
// caustic textures, bound to units 1 and 2.
func (rr *RocksRenderer) Render(adapter *water.Adapter, projection, view math.Mat4, cameraPos, sunDir math.Vec3) {
	gl.UseProgram(rr.program)

	gl.UniformMatrix4fv(rr.locProjection, 1, false, projection.Ptr())
	gl.UniformMatrix4fv(rr.locView, 1, false, view.Ptr())
	gl.UniformMatrix4fv(rr.locModel, 1, false, rr.model.Ptr())
	gl.Uniform3f(rr.locCameraPos, cameraPos.X, cameraPos.Y, cameraPos.Z)
	gl.Uniform3f(rr.locSunDir, sunDir.X, sunDir.Y, sunDir.Z)

	patch := adapter.Patch()
	gl.Uniform2f(rr.locPatchMin, patch.CenterX-patch.Width/2, patch.CenterZ-patch.Length/2)
	gl.Uniform2f(rr.locPatchSize, patch.Width, patch.Length)

	adapter.NormalMap().Bind(1)
	gl.Uniform1i(rr.locNormalMap, 1)
	adapter.Caustic().Bind(2)
	gl.Uniform1i(rr.locCaustics, 2)

	gl.BindVertexArray(rr.vao)
	gl.DrawElementsWithOffset(gl.TRIANGLES, rr.indexCount, gl.UNSIGNED_INT, 0)
	gl.BindVertexArray(0)
}

// Destroy releases all GL objects.
func (rr *RocksRenderer) Destroy() {
	if rr.vao != 0 {
		gl.DeleteVertexArrays(1, &rr.vao)
		rr.vao = 0
	}
	if rr.vbo != 0 {
		gl.DeleteBuffers(1, &rr.vbo)
		rr.vbo = 0
	}
	if rr.ebo != 0 {
		gl.DeleteBuffers(1, &rr.ebo)
		rr.ebo = 0
	}
	if rr.program != 0 {
		gl.DeleteProgram(rr.program)
		rr.program = 0
	}
}
