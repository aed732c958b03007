// Package scene orchestrates per-frame rendering of the water surface,
// the rock mound beneath it, and the skybox.
package scene

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/calmsea/wavetank/internal/engine/scene/shaders"
	"github.com/calmsea/wavetank/internal/engine/shader"
	"github.com/calmsea/wavetank/internal/engine/water"
	"github.com/calmsea/wavetank/pkg/math"
)

// WaterRenderer draws the surface mesh with environment reflection.
type WaterRenderer struct {
	program uint32

	locProjection int32
	locView       int32
	locModel      int32
	locCameraPos  int32
	locSkybox     int32

	wireframe bool
}

// NewWaterRenderer compiles the water program.
func NewWaterRenderer(wireframe bool) (*WaterRenderer, error) {
	program, err := shader.CompileProgram(shaders.WaterVertexShader, shaders.WaterFragmentShader)
	if err != nil {
		return nil, fmt.Errorf("water shader: %w", err)
	}

	wr := &WaterRenderer{
		program:       program,
		locProjection: shader.GetUniform(program, "projection"),
		locView:       shader.GetUniform(program, "view"),
		locModel:      shader.GetUniform(program, "model"),
		locCameraPos:  shader.GetUniform(program, "cameraPos"),
		locSkybox:     shader.GetUniform(program, "skybox"),
		wireframe:     wireframe,
	}
	return wr, nil
}

// Render draws the surface strip by strip. cubemap is the skybox texture
// handed in by the skybox collaborator; it lands on texture unit 0.
func (wr *WaterRenderer) Render(adapter *water.Adapter, projection, view math.Mat4, cameraPos math.Vec3, cubemap uint32) {
	gl.UseProgram(wr.program)

	model := math.Identity()
	gl.UniformMatrix4fv(wr.locProjection, 1, false, projection.Ptr())
	gl.UniformMatrix4fv(wr.locView, 1, false, view.Ptr())
	gl.UniformMatrix4fv(wr.locModel, 1, false, model.Ptr())
	gl.Uniform3f(wr.locCameraPos, cameraPos.X, cameraPos.Y, cameraPos.Z)

	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_CUBE_MAP, cubemap)
	gl.Uniform1i(wr.locSkybox, 0)

	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)

	if wr.wireframe {
		gl.PolygonMode(gl.FRONT_AND_BACK, gl.LINE)
	}

	mesh := adapter.Mesh()
	mesh.Bind()
	mesh.DrawStrips()
	gl.BindVertexArray(0)

	if wr.wireframe {
		gl.PolygonMode(gl.FRONT_AND_BACK, gl.FILL)
	}
	gl.Disable(gl.BLEND)
}

// Destroy releases the program.
func (wr *WaterRenderer) Destroy() {
	if wr.program != 0 {
		gl.DeleteProgram(wr.program)
		wr.program = 0
	}
}
