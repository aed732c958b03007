// Package water owns the GPU resources of the procedural water surface:
// the vertex/index buffers of the grid mesh, the normal and caustic
// textures, and the adapter the render loop draws through.
package water

import (
	"errors"
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/calmsea/wavetank/pkg/wave"
)

// ErrResourceAllocation is returned when the driver refuses a buffer or
// texture allocation.
var ErrResourceAllocation = errors.New("water: resource allocation failed")

// Mesh pairs a wave.Geometry with its GPU buffers. The vertex buffer is
// dynamic-draw and rewritten in place by Update; the index buffer is
// written once.
type Mesh struct {
	geo *wave.Geometry

	vao uint32
	vbo uint32
	ebo uint32
}

// NewMesh uploads the geometry. Must be called with a current GL context.
func NewMesh(geo *wave.Geometry) (*Mesh, error) {
	m := &Mesh{geo: geo}

	gl.GenVertexArrays(1, &m.vao)
	gl.GenBuffers(1, &m.vbo)
	gl.GenBuffers(1, &m.ebo)
	if m.vao == 0 || m.vbo == 0 || m.ebo == 0 {
		m.Destroy()
		return nil, fmt.Errorf("%w: vertex array or buffer", ErrResourceAllocation)
	}

	gl.BindVertexArray(m.vao)

	verts := geo.Vertices()
	gl.BindBuffer(gl.ARRAY_BUFFER, m.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(verts)*4, unsafe.Pointer(&verts[0]), gl.DYNAMIC_DRAW)

	stride := int32(wave.VertexStride * 4)
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, stride, 0)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(1, 3, gl.FLOAT, false, stride, 3*4)
	gl.EnableVertexAttribArray(1)

	idx := geo.Indices()
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, m.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(idx)*4, unsafe.Pointer(&idx[0]), gl.DYNAMIC_DRAW)

	gl.BindVertexArray(0)

	return m, nil
}

// Update recomputes the vertex data for time t and rewrites the GPU
// buffer region in place. The index buffer is untouched. Must not run
// while the mesh is being drawn.
func (m *Mesh) Update(t float32) {
	m.geo.Update(t)

	verts := m.geo.Vertices()
	gl.BindBuffer(gl.ARRAY_BUFFER, m.vbo)
	gl.BufferSubData(gl.ARRAY_BUFFER, 0, len(verts)*4, unsafe.Pointer(&verts[0]))
}

// Bind makes the mesh's vertex and index buffers current.
func (m *Mesh) Bind() {
	gl.BindVertexArray(m.vao)
}

// DrawStrips issues one triangle-strip draw per grid row. The caller must
// Bind first and have the water program active.
func (m *Mesh) DrawStrips() {
	p := m.geo.Patch()
	count := int32(p.IndicesPerStrip())
	for i := 0; i < p.StripCount(); i++ {
		gl.DrawElementsWithOffset(gl.TRIANGLE_STRIP, count, gl.UNSIGNED_INT,
			uintptr(4*p.StripOffset(i)))
	}
}

// Geometry returns the CPU-side geometry backing the mesh.
func (m *Mesh) Geometry() *wave.Geometry {
	return m.geo
}

// VertexBuffer returns the GL handle of the vertex buffer.
func (m *Mesh) VertexBuffer() uint32 {
	return m.vbo
}

// IndexBuffer returns the GL handle of the index buffer.
func (m *Mesh) IndexBuffer() uint32 {
	return m.ebo
}

// Destroy releases all GL objects. Safe to call more than once.
func (m *Mesh) Destroy() {
	if m.vao != 0 {
		gl.DeleteVertexArrays(1, &m.vao)
		m.vao = 0
	}
	if m.vbo != 0 {
		gl.DeleteBuffers(1, &m.vbo)
		m.vbo = 0
	}
	if m.ebo != 0 {
		gl.DeleteBuffers(1, &m.ebo)
		m.ebo = 0
	}
}
