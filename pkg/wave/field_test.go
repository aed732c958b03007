package wave

import (
	gomath "math"
	"math/rand"
	"testing"

	"github.com/calmsea/wavetank/pkg/math"
)

func mustSet(t *testing.T, p Params) *Set {
	t.Helper()
	s, err := NewSet(p)
	if err != nil {
		t.Fatalf("NewSet() error = %v", err)
	}
	return s
}

func mustCustom(t *testing.T, waves []Wave) *Set {
	t.Helper()
	s, err := NewCustomSet(waves, DirectionalRounded)
	if err != nil {
		t.Fatalf("NewCustomSet() error = %v", err)
	}
	return s
}

func TestHeightIsSumOfWaves(t *testing.T) {
	p := testParams()
	p.Count = 20
	s := mustSet(t, p)

	rng := rand.New(rand.NewSource(1))
	for trial := 0; trial < 50; trial++ {
		x := rng.Float32()*50 - 25
		z := rng.Float32()*50 - 25
		tt := rng.Float32() * 10

		var sum float32
		for i := 0; i < s.Len(); i++ {
			sum += s.WaveHeight(i, x, z, tt)
		}
		got := s.Height(x, z, tt)

		eps := 1e-6 * float32(s.Len())
		if diff := got - sum; diff > eps || diff < -eps {
			t.Errorf("Height(%v, %v, %v) = %v, sum of waves = %v", x, z, tt, got, sum)
		}
	}
}

func TestSlopeMatchesFiniteDifference(t *testing.T) {
	p := testParams()
	p.Count = 20
	s := mustSet(t, p)

	// Tolerance scales with the worst-case slope magnitude.
	var boundX, boundZ float32
	for _, w := range s.Waves() {
		boundX += w.Amplitude * w.Freq * absf(w.Dir.X)
		boundZ += w.Amplitude * w.Freq * absf(w.Dir.Y)
	}
	epsX := 1e-2 * boundX
	epsZ := 1e-2 * boundZ

	const h = 1e-4
	rng := rand.New(rand.NewSource(2))
	for trial := 0; trial < 50; trial++ {
		x := rng.Float32()*50 - 25
		z := rng.Float32()*50 - 25
		tt := rng.Float32() * 10

		fdx := (s.Height(x+h, z, tt) - s.Height(x-h, z, tt)) / (2 * h)
		if diff := s.SlopeX(x, z, tt) - fdx; diff > epsX || diff < -epsX {
			t.Errorf("SlopeX(%v, %v, %v) = %v, finite difference = %v", x, z, tt, s.SlopeX(x, z, tt), fdx)
		}

		fdz := (s.Height(x, z+h, tt) - s.Height(x, z-h, tt)) / (2 * h)
		if diff := s.SlopeZ(x, z, tt) - fdz; diff > epsZ || diff < -epsZ {
			t.Errorf("SlopeZ(%v, %v, %v) = %v, finite difference = %v", x, z, tt, s.SlopeZ(x, z, tt), fdz)
		}
	}
}

func TestFrameConvention(t *testing.T) {
	s := mustSet(t, testParams())

	x, z, tt := float32(3.5), float32(-1.25), float32(2.0)
	sx := s.SlopeX(x, z, tt)
	sz := s.SlopeZ(x, z, tt)

	if got, want := s.Normal(x, z, tt), (math.Vec3{X: -sx, Y: -sz, Z: 1}); got != want {
		t.Errorf("Normal() = %v, want %v", got, want)
	}
	if got, want := s.Binormal(x, z, tt), (math.Vec3{X: 1, Y: 0, Z: sx}); got != want {
		t.Errorf("Binormal() = %v, want %v", got, want)
	}
	if got, want := s.Tangent(x, z, tt), (math.Vec3{X: 0, Y: 1, Z: sz}); got != want {
		t.Errorf("Tangent() = %v, want %v", got, want)
	}
}

func TestSingleDirectionalWave(t *testing.T) {
	s := mustCustom(t, []Wave{{
		Amplitude: 1,
		Freq:      1,
		Dir:       math.Vec2{X: 1, Y: 0},
		Speed:     0,
	}})

	// H(x, z, 0) = sin(x)
	for _, x := range []float32{0, 0.5, 1, gomath.Pi / 2, 3} {
		want := float32(gomath.Sin(float64(x)))
		if got := s.Height(x, 17, 0); !closef(got, want, 1e-6) {
			t.Errorf("Height(%v, 17, 0) = %v, want sin(x) = %v", x, got, want)
		}
	}

	if got := s.SlopeX(0, 0, 0); got != 1 {
		t.Errorf("SlopeX(0, 0, 0) = %v, want 1", got)
	}
	if got, want := s.Normal(0, 0, 0), (math.Vec3{X: -1, Y: 0, Z: 1}); got != want {
		t.Errorf("Normal(0, 0, 0) = %v, want %v", got, want)
	}
}

func TestTimeAdvancesPhase(t *testing.T) {
	w := Wave{
		Amplitude: 0.5,
		Freq:      2,
		Dir:       math.Vec2{X: 0.3, Y: -0.7},
		Speed:     0.25,
	}
	s := mustCustom(t, []Wave{w})

	var clock Clock
	if err := clock.Advance(0.5); err != nil {
		t.Fatalf("Advance(0.5) error = %v", err)
	}
	if got := clock.Now(); got != 0.5 {
		t.Fatalf("Now() = %v, want 0.5", got)
	}

	x, z := float32(1.5), float32(-2)
	base := float64(w.Dir.X)*float64(w.Freq)*float64(x) + float64(w.Dir.Y)*float64(w.Freq)*float64(z)
	shift := float64(w.Speed) * float64(w.Freq) * float64(clock.Now())
	want := float32(float64(w.Amplitude) * gomath.Sin(base+shift))

	if got := s.Height(x, z, clock.Now()); !closef(got, want, 1e-6) {
		t.Errorf("Height at t=0.5 = %v, want phase-shifted %v", got, want)
	}
}

func absf(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}

func closef(a, b, eps float32) bool {
	d := a - b
	return d <= eps && d >= -eps
}
