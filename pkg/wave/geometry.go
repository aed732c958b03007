package wave

// VertexStride is the number of floats per mesh vertex:
// position (x, y, z) followed by normal (nx, ny, nz), interleaved.
const VertexStride = 6

// Geometry is the CPU side of the surface mesh: an interleaved
// position+normal vertex buffer over a patch grid, plus the triangle-strip
// index buffer. Vertices are rewritten in place by Update; the index
// buffer and the buffer sizes never change after construction.
type Geometry struct {
	patch    Patch
	set      *Set
	vertices []float32
	indices  []uint32
}

// NewGeometry samples the surface at t=0 over the patch grid and builds
// the vertex and index buffers.
func NewGeometry(set *Set, patch Patch) (*Geometry, error) {
	if err := patch.Validate(); err != nil {
		return nil, err
	}

	g := &Geometry{
		patch:    patch,
		set:      set,
		vertices: make([]float32, patch.VertexCount()*VertexStride),
		indices:  make([]uint32, patch.StripCount()*patch.IndicesPerStrip()),
	}
	g.fillVertices(0)

	// Row i of the grid contributes one strip alternating between row i
	// and row i+1, column by column.
	n := 0
	for i := 0; i < patch.NZ-1; i++ {
		for j := 0; j < patch.NX; j++ {
			g.indices[n] = uint32(j + patch.NX*i)
			g.indices[n+1] = uint32(j + patch.NX*(i+1))
			n += 2
		}
	}

	return g, nil
}

// fillVertices writes every vertex for time t in sample order. The loop
// nesting (i over NX outer, j over NZ inner) matches the normal-map texel
// layout so vertex k and texel k refer to the same sample.
func (g *Geometry) fillVertices(t float32) {
	n := 0
	for i := 0; i < g.patch.NX; i++ {
		for j := 0; j < g.patch.NZ; j++ {
			x, z := g.patch.Sample(i, j)
			normal := g.set.Normal(x, z, t)
			g.vertices[n] = x
			g.vertices[n+1] = g.set.Height(x, z, t)
			g.vertices[n+2] = z
			g.vertices[n+3] = normal.X
			g.vertices[n+4] = normal.Y
			g.vertices[n+5] = normal.Z
			n += VertexStride
		}
	}
}

// Update recomputes all vertex positions and normals for time t, in the
// same order as construction. The buffer never resizes.
func (g *Geometry) Update(t float32) {
	g.fillVertices(t)
}

// Patch returns the patch the geometry was built over.
func (g *Geometry) Patch() Patch {
	return g.patch
}

// Vertices returns the interleaved vertex buffer. The slice is the
// geometry's backing storage; Update rewrites it in place.
func (g *Geometry) Vertices() []float32 {
	return g.vertices
}

// Indices returns the triangle-strip index buffer. It is immutable after
// construction.
func (g *Geometry) Indices() []uint32 {
	return g.indices
}
