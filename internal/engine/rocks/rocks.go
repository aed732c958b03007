// Package rocks generates the rock mound that sits below the water plane
// and receives the projected caustic pattern. The mound is a noise-
// displaced heightfield so the scene needs no model assets.
package rocks

import (
	gomath "math"

	opensimplex "github.com/ojrac/opensimplex-go"
)

// VertexStride is the number of floats per vertex: position + normal.
const VertexStride = 6

// Params controls mound generation.
type Params struct {
	Seed       int64
	Resolution int     // grid samples per side
	Radius     float32 // mound footprint radius
	Height     float32 // peak height
}

// DefaultParams returns a mound sized for the classic 50x50 water patch.
func DefaultParams(seed int64) Params {
	return Params{
		Seed:       seed,
		Resolution: 96,
		Radius:     18,
		Height:     9,
	}
}

// Geometry is a CPU-side triangle mesh with the same interleaved
// position+normal layout the water surface uses.
type Geometry struct {
	Vertices []float32
	Indices  []uint32
}

// Generate builds the mound heightfield: a radial bump modulated by
// fractal simplex noise, triangulated over a regular grid.
func Generate(p Params) *Geometry {
	noise := opensimplex.NewNormalized(p.Seed)
	n := p.Resolution

	height := func(i, j int) (x, z, y float32) {
		x = -p.Radius + 2*p.Radius*float32(i)/float32(n-1)
		z = -p.Radius + 2*p.Radius*float32(j)/float32(n-1)

		r := float32(gomath.Sqrt(float64(x*x + z*z)))
		bump := 1 - (r/p.Radius)*(r/p.Radius)
		if bump < 0 {
			bump = 0
		}

		y = bump * p.Height * (0.55 + 0.45*float32(fbm(noise, float64(x)*0.12, float64(z)*0.12, 4)))
		return x, z, y
	}

	g := &Geometry{
		Vertices: make([]float32, 0, n*n*VertexStride),
		Indices:  make([]uint32, 0, (n-1)*(n-1)*6),
	}

	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			x, z, y := height(i, j)

			// Normal from central differences of the heightfield.
			var yl, yr, yd, yu float32
			step := 2 * p.Radius / float32(n-1)
			if i > 0 {
				_, _, yl = height(i-1, j)
			}
			if i < n-1 {
				_, _, yr = height(i+1, j)
			}
			if j > 0 {
				_, _, yd = height(i, j-1)
			}
			if j < n-1 {
				_, _, yu = height(i, j+1)
			}
			nx := (yl - yr) / (2 * step)
			nz := (yd - yu) / (2 * step)
			inv := 1 / float32(gomath.Sqrt(float64(nx*nx+nz*nz+1)))

			g.Vertices = append(g.Vertices, x, y, z, nx*inv, inv, nz*inv)
		}
	}

	for i := 0; i < n-1; i++ {
		for j := 0; j < n-1; j++ {
			a := uint32(i*n + j)
			b := uint32((i+1)*n + j)
			c := uint32(i*n + j + 1)
			d := uint32((i+1)*n + j + 1)
			g.Indices = append(g.Indices, a, b, c, c, b, d)
		}
	}

	return g
}

// fbm sums octaves of normalized simplex noise, returning a value in
// roughly [0, 1].
func fbm(noise opensimplex.Noise, x, z float64, octaves int) float64 {
	var sum, amp, norm float64
	amp = 1
	for o := 0; o < octaves; o++ {
		sum += amp * noise.Eval2(x, z)
		norm += amp
		x *= 2
		z *= 2
		amp *= 0.5
	}
	return sum / norm
}
