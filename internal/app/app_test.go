package app

import (
	gomath "math"
	"testing"

	"github.com/calmsea/wavetank/pkg/math"
)

func TestCameraFOVIsFortyFiveDegrees(t *testing.T) {
	m := math.Perspective(cameraFOV, 16.0/9.0, 0.1, 500)

	// Focal length is 1/tan(fov/2); for 45 degrees that is 1+sqrt(2).
	// Passing the angle in degrees by mistake lands nowhere near it.
	want := float32(1 + gomath.Sqrt2)
	if d := m[5] - want; d > 1e-5 || d < -1e-5 {
		t.Errorf("projection focal length = %v, want %v for a 45 degree field of view", m[5], want)
	}
}
