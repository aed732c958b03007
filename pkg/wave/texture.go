package wave

import (
	gomath "math"

	"gonum.org/v1/gonum/floats"

	"github.com/calmsea/wavetank/pkg/math"
)

// Texture synthesis. Both maps are NX x NZ RGB byte buffers sharing one
// layout: texel (i, j) starts at offset i*NZ*3 + j*3. The i-major stride
// matches the vertex sample order and is part of the shader contract, so
// it must not be "fixed" to a j-major layout.

// NormalMap samples the surface normal at t=0 over the patch grid and
// packs each component as floor((c/2 + 0.5) * 256), saturating at 255.
// A flat surface packs to (128, 128, 255).
func NormalMap(set *Set, patch Patch) []byte {
	pix := make([]byte, patch.NX*patch.NZ*3)
	for i := 0; i < patch.NX; i++ {
		for j := 0; j < patch.NZ; j++ {
			x, z := patch.Sample(i, j)
			n := set.Normal(x, z, 0)
			off := i*patch.NZ*3 + j*3
			pix[off] = packUnit(n.X)
			pix[off+1] = packUnit(n.Y)
			pix[off+2] = packUnit(n.Z)
		}
	}
	return pix
}

// packUnit maps a [-1, 1] component to a byte, clamping out-of-range
// values at both ends.
func packUnit(c float32) byte {
	v := int((c/2 + 0.5) * 256)
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return byte(v)
}

// IndexOfRefraction is the water-to-air index ratio used by the
// refractive caustic accumulation.
const IndexOfRefraction = 1.33

// CausticOptions selects between the default radial-falloff stand-in and
// the refractive accumulation through the surface normal field.
type CausticOptions struct {
	// Refractive enables casting a vertical ray through each surface
	// sample, refracting it by Snell's law, and weighting intensity by an
	// exponential of its angular deviation from the sun direction.
	Refractive bool

	// Sun is the direction refracted rays are compared against.
	// Zero means straight up, (0, 1, 0).
	Sun math.Vec3

	// Falloff is the exponential decay rate of intensity with angular
	// deviation, in 1/radians. Zero means DefaultCausticFalloff.
	Falloff float64
}

// DefaultCausticFalloff gives a tight highlight around the sun direction.
const DefaultCausticFalloff = 8.0

// CausticMap synthesizes the NX x NZ RGB intensity texture projected onto
// receiving geometry. The default is a radial falloff centered on the
// patch, zero outside distance 0.5 from center; all three channels carry
// the same value.
func CausticMap(set *Set, patch Patch, opt CausticOptions) []byte {
	if opt.Refractive {
		return refractiveCaustic(set, patch, opt)
	}

	pix := make([]byte, patch.NX*patch.NZ*3)
	centerX, centerZ := patch.NX/2, patch.NZ/2
	for i := 0; i < patch.NX; i++ {
		for j := 0; j < patch.NZ; j++ {
			dx := float64(abs(centerX-i)) / float64(patch.NX) * 2
			dz := float64(abs(centerZ-j)) / float64(patch.NZ) * 2
			d := gomath.Sqrt(dx*dx + dz*dz)

			v := 0
			if 1-2*d > 0 {
				v = int((1 - 2*d) * 256)
			}
			if v > 255 {
				v = 255
			}

			off := i*patch.NZ*3 + j*3
			pix[off] = byte(v)
			pix[off+1] = byte(v)
			pix[off+2] = byte(v)
		}
	}
	return pix
}

// refractiveCaustic casts a vertical ray up through each surface sample,
// refracts it against the t=0 normal, and scores it by how closely it
// aligns with the sun. Intensities are normalized to the brightest texel
// before packing so the texture always uses the full byte range.
func refractiveCaustic(set *Set, patch Patch, opt CausticOptions) []byte {
	sun := opt.Sun
	if sun == (math.Vec3{}) {
		sun = math.Vec3{X: 0, Y: 1, Z: 0}
	}
	sun = sun.Normalize()

	falloff := opt.Falloff
	if falloff == 0 {
		falloff = DefaultCausticFalloff
	}

	intensity := make([]float64, patch.NX*patch.NZ)
	for i := 0; i < patch.NX; i++ {
		for j := 0; j < patch.NZ; j++ {
			x, z := patch.Sample(i, j)
			// Surface normal in y-up world space: the field convention
			// keeps the up axis in the third component.
			n := set.Normal(x, z, 0)
			up := math.Vec3{X: n.X, Y: n.Z, Z: n.Y}.Normalize()

			refracted, ok := refract(math.Vec3{X: 0, Y: 1, Z: 0}, up, IndexOfRefraction)
			if !ok {
				continue // total internal reflection
			}

			cos := float64(refracted.Dot(sun))
			if cos > 1 {
				cos = 1
			} else if cos < -1 {
				cos = -1
			}
			deviation := gomath.Acos(cos)
			intensity[i*patch.NZ+j] = gomath.Exp(-falloff * deviation)
		}
	}

	if max := floats.Max(intensity); max > 0 {
		floats.Scale(1/max, intensity)
	}

	pix := make([]byte, patch.NX*patch.NZ*3)
	for k, v := range intensity {
		b := packIntensity(v)
		pix[k*3] = b
		pix[k*3+1] = b
		pix[k*3+2] = b
	}
	return pix
}

// refract bends unit direction dir leaving the surface with unit normal n,
// with eta the ratio of refractive indices. Reports false on total
// internal reflection. dir travels against n (upward ray, upward normal).
func refract(dir, n math.Vec3, eta float32) (math.Vec3, bool) {
	cosi := dir.Dot(n)
	k := 1 - eta*eta*(1-cosi*cosi)
	if k < 0 {
		return math.Vec3{}, false
	}
	root := float32(gomath.Sqrt(float64(k)))
	return dir.Scale(eta).Sub(n.Scale(eta*cosi - root)).Normalize(), true
}

func packIntensity(v float64) byte {
	b := int(v * 256)
	if b > 255 {
		b = 255
	}
	if b < 0 {
		b = 0
	}
	return byte(b)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
