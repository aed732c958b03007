package wave

import "fmt"

// Patch describes the rectangular region of the surface that gets meshed
// and textured: a W x L rectangle centered at (CenterX, CenterZ), sampled
// on a regular NX x NZ grid.
type Patch struct {
	CenterX, CenterZ float32
	Width, Length    float32
	NX, NZ           int
}

// Validate reports the first invalid dimension, if any.
func (p Patch) Validate() error {
	if p.Width <= 0 || p.Length <= 0 {
		return fmt.Errorf("%w: patch size %vx%v", ErrInvalidParameter, p.Width, p.Length)
	}
	if p.NX <= 0 || p.NZ <= 0 {
		return fmt.Errorf("%w: patch grid %dx%d", ErrInvalidParameter, p.NX, p.NZ)
	}
	return nil
}

// Sample maps grid coordinates (i, j) to world (x, z):
// x = cx - W/2 + i*W/NX, z = cz - L/2 + j*L/NZ.
func (p Patch) Sample(i, j int) (x, z float32) {
	x = p.CenterX - p.Width/2 + float32(i)*p.Width/float32(p.NX)
	z = p.CenterZ - p.Length/2 + float32(j)*p.Length/float32(p.NZ)
	return x, z
}

// VertexCount returns the number of grid samples.
func (p Patch) VertexCount() int {
	return p.NX * p.NZ
}

// StripCount returns the number of triangle strips, one per grid row pair.
// Each row is drawn as its own strip; a single combined strip would add
// degenerate triangles spanning row boundaries.
func (p Patch) StripCount() int {
	return p.NZ - 1
}

// IndicesPerStrip returns the index count of one strip.
func (p Patch) IndicesPerStrip() int {
	return 2 * p.NX
}

// StripOffset returns the index offset of strip i, in indices (not bytes).
// Strip i covers indices [2*NX*i, 2*NX*(i+1)).
func (p Patch) StripOffset(i int) int {
	return 2 * p.NX * i
}
