package wave

import (
	gomath "math"

	"github.com/calmsea/wavetank/pkg/math"
)

// Surface field queries. All of these are closed-form evaluations over the
// wave set; derivatives are analytical, not finite differences. Trig runs
// in float64 and results are narrowed to the float32 surface API.
//
// The frame vectors returned by Binormal, Tangent and Normal are
// unnormalized and carry the height slope in their third component:
//
//	B = (1, 0, dH/dx)
//	T = (0, 1, dH/dz)
//	N = (-dH/dx, -dH/dz, 1)
//
// Consumers mapping into a y-up world must swizzle accordingly and
// normalize themselves.

// WaveHeight returns W_i(x, z, t) for wave i. i must be in [0, Len).
func (s *Set) WaveHeight(i int, x, z, t float32) float32 {
	w := &s.waves[i]
	return w.Amplitude * float32(gomath.Sin(w.phase(x, z, t)))
}

func (w *Wave) phase(x, z, t float32) float64 {
	return w.kx*float64(x) + w.kz*float64(z) + w.phaseRate*float64(t)
}

// Height returns H(x, z, t), the sum of all wave heights at the point.
func (s *Set) Height(x, z, t float32) float32 {
	var sum float64
	for i := range s.waves {
		w := &s.waves[i]
		sum += float64(w.Amplitude) * gomath.Sin(w.phase(x, z, t))
	}
	return float32(sum)
}

// SlopeX returns dH/dx at (x, z, t).
func (s *Set) SlopeX(x, z, t float32) float32 {
	var sum float64
	for i := range s.waves {
		w := &s.waves[i]
		sum += float64(w.Amplitude) * w.kx * gomath.Cos(w.phase(x, z, t))
	}
	return float32(sum)
}

// SlopeZ returns dH/dz at (x, z, t).
func (s *Set) SlopeZ(x, z, t float32) float32 {
	var sum float64
	for i := range s.waves {
		w := &s.waves[i]
		sum += float64(w.Amplitude) * w.kz * gomath.Cos(w.phase(x, z, t))
	}
	return float32(sum)
}

// Binormal returns (1, 0, dH/dx) at the point, unnormalized.
func (s *Set) Binormal(x, z, t float32) math.Vec3 {
	return math.Vec3{X: 1, Y: 0, Z: s.SlopeX(x, z, t)}
}

// Tangent returns (0, 1, dH/dz) at the point, unnormalized.
func (s *Set) Tangent(x, z, t float32) math.Vec3 {
	return math.Vec3{X: 0, Y: 1, Z: s.SlopeZ(x, z, t)}
}

// Normal returns (-dH/dx, -dH/dz, 1) at the point, unnormalized.
func (s *Set) Normal(x, z, t float32) math.Vec3 {
	return math.Vec3{X: -s.SlopeX(x, z, t), Y: -s.SlopeZ(x, z, t), Z: 1}
}
