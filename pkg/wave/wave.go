// Package wave implements a procedural water surface: a height field summed
// from parameterized sinusoidal waves, its analytical partial derivatives,
// regular-grid meshing ready for GPU upload, and the texture synthesis used
// for caustic shading. Everything in this package is CPU-only and testable
// without a GL context.
package wave

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/calmsea/wavetank/pkg/math"
)

// Errors reported at construction time. Runtime field queries never fail.
var (
	ErrInvalidParameter = errors.New("wave: invalid parameter")
	ErrUnsupportedMode  = errors.New("wave: unsupported mode")
)

// Defaults matching the classic parameterization of the surface.
const (
	DefaultFreqMax  = 1.0
	DefaultSpeedMax = 0.005
	DefaultSeed     = 1
)

// Mode selects the per-wave basis function. Dispatch happens at
// construction so the per-sample loop stays monomorphic. Only the
// directional+rounded combination is implemented; the other three are
// reserved and rejected by NewSet.
type Mode struct {
	Directional bool // directional waves; false reserves circular waves
	Rounded     bool // rounded crests; false reserves pointed crests
}

// DirectionalRounded is the one fully implemented wave mode.
var DirectionalRounded = Mode{Directional: true, Rounded: true}

func (m Mode) supported() bool {
	return m.Directional && m.Rounded
}

// Params configures random wave-set generation.
type Params struct {
	Count    int     // number of waves N
	AmpMax   float32 // amplitude upper bound
	FreqMax  float32 // spatial frequency upper bound; draws land in [FreqMax/2, FreqMax]
	SpeedMax float32 // phase-speed draw scale
	Mode     Mode
	Seed     int64

	// CorrectedSpeedFloor moves the lower bound of the phase-speed draw
	// from FreqMax/2 (the historical behavior, kept as the default) to
	// SpeedMax/2.
	CorrectedSpeedFloor bool
}

// Wave is a single term of the surface sum:
//
//	W(x, z, t) = A * sin(D.(x,z)*w + S*w*t)
//
// Dir is deliberately not unit length; its magnitude scales the effective
// frequency of the wave.
type Wave struct {
	Amplitude float32
	Freq      float32
	Dir       math.Vec2
	Speed     float32

	// Per-sample loop coefficients, fixed at construction:
	// phase(x,z,t) = kx*x + kz*z + phaseRate*t.
	kx, kz, phaseRate float64
}

func (w *Wave) precompute() {
	w.kx = float64(w.Dir.X) * float64(w.Freq)
	w.kz = float64(w.Dir.Y) * float64(w.Freq)
	w.phaseRate = float64(w.Speed) * float64(w.Freq)
}

// Set is an immutable collection of waves defining one surface.
type Set struct {
	waves []Wave
	mode  Mode
}

// NewSet draws Count waves from the ranges given by p, using a seeded RNG
// so identical params reproduce identical waves.
func NewSet(p Params) (*Set, error) {
	if p.Count <= 0 {
		return nil, fmt.Errorf("%w: wave count %d", ErrInvalidParameter, p.Count)
	}
	if p.AmpMax < 0 {
		return nil, fmt.Errorf("%w: amplitude max %v", ErrInvalidParameter, p.AmpMax)
	}
	if p.FreqMax <= 0 {
		return nil, fmt.Errorf("%w: frequency max %v", ErrInvalidParameter, p.FreqMax)
	}
	if p.SpeedMax <= 0 {
		return nil, fmt.Errorf("%w: speed max %v", ErrInvalidParameter, p.SpeedMax)
	}
	if !p.Mode.supported() {
		return nil, fmt.Errorf("%w: directional=%v rounded=%v", ErrUnsupportedMode,
			p.Mode.Directional, p.Mode.Rounded)
	}

	speedFloor := p.FreqMax * 0.5
	if p.CorrectedSpeedFloor {
		speedFloor = p.SpeedMax * 0.5
	}

	rng := rand.New(rand.NewSource(p.Seed))
	waves := make([]Wave, p.Count)
	for i := range waves {
		w := &waves[i]
		w.Amplitude = rng.Float32() * p.AmpMax
		w.Freq = rng.Float32()*p.FreqMax*0.5 + p.FreqMax*0.5
		w.Dir = math.Vec2{X: rng.Float32()*2 - 1, Y: rng.Float32()*2 - 1}
		w.Speed = rng.Float32()*p.SpeedMax*0.5 + speedFloor
		w.precompute()
	}

	return &Set{waves: waves, mode: p.Mode}, nil
}

// NewCustomSet builds a set from explicit wave parameters. It applies the
// same validation as NewSet; amplitudes must be non-negative and
// frequencies positive.
func NewCustomSet(waves []Wave, mode Mode) (*Set, error) {
	if len(waves) == 0 {
		return nil, fmt.Errorf("%w: empty wave list", ErrInvalidParameter)
	}
	if !mode.supported() {
		return nil, fmt.Errorf("%w: directional=%v rounded=%v", ErrUnsupportedMode,
			mode.Directional, mode.Rounded)
	}
	owned := make([]Wave, len(waves))
	copy(owned, waves)
	for i := range owned {
		w := &owned[i]
		if w.Amplitude < 0 {
			return nil, fmt.Errorf("%w: wave %d amplitude %v", ErrInvalidParameter, i, w.Amplitude)
		}
		if w.Freq <= 0 {
			return nil, fmt.Errorf("%w: wave %d frequency %v", ErrInvalidParameter, i, w.Freq)
		}
		w.precompute()
	}
	return &Set{waves: owned, mode: mode}, nil
}

// Len returns the number of waves.
func (s *Set) Len() int {
	return len(s.waves)
}

// Waves returns the wave parameters. The returned slice is the set's
// backing storage and must not be modified.
func (s *Set) Waves() []Wave {
	return s.waves
}

// Mode returns the wave mode the set was constructed with.
func (s *Set) Mode() Mode {
	return s.mode
}
