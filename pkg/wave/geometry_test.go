package wave

import (
	"testing"

	"github.com/calmsea/wavetank/pkg/math"
)

func testPatch() Patch {
	return Patch{Width: 8, Length: 8, NX: 8, NZ: 8}
}

func TestPatchValidate(t *testing.T) {
	cases := []struct {
		name  string
		patch Patch
		ok    bool
	}{
		{"valid", Patch{Width: 50, Length: 50, NX: 500, NZ: 500}, true},
		{"zero width", Patch{Width: 0, Length: 50, NX: 10, NZ: 10}, false},
		{"negative length", Patch{Width: 50, Length: -1, NX: 10, NZ: 10}, false},
		{"zero nx", Patch{Width: 50, Length: 50, NX: 0, NZ: 10}, false},
		{"zero nz", Patch{Width: 50, Length: 50, NX: 10, NZ: 0}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.patch.Validate()
			if tc.ok && err != nil {
				t.Errorf("Validate() error = %v, want nil", err)
			}
			if !tc.ok && err == nil {
				t.Error("Validate() = nil, want error")
			}
		})
	}
}

func TestGridSampling(t *testing.T) {
	s := mustSet(t, testParams())
	p := Patch{CenterX: 3, CenterZ: -2, Width: 50, Length: 40, NX: 16, NZ: 12}
	g, err := NewGeometry(s, p)
	if err != nil {
		t.Fatalf("NewGeometry() error = %v", err)
	}

	verts := g.Vertices()
	if len(verts) != p.NX*p.NZ*VertexStride {
		t.Fatalf("len(Vertices()) = %d, want %d", len(verts), p.NX*p.NZ*VertexStride)
	}

	for i := 0; i < p.NX; i++ {
		for j := 0; j < p.NZ; j++ {
			off := (i*p.NZ + j) * VertexStride
			wantX := p.CenterX - p.Width/2 + float32(i)*p.Width/float32(p.NX)
			wantZ := p.CenterZ - p.Length/2 + float32(j)*p.Length/float32(p.NZ)

			if verts[off] != wantX {
				t.Fatalf("vertex (%d,%d) x = %v, want %v", i, j, verts[off], wantX)
			}
			if verts[off+2] != wantZ {
				t.Fatalf("vertex (%d,%d) z = %v, want %v", i, j, verts[off+2], wantZ)
			}
			if want := s.Height(wantX, wantZ, 0); verts[off+1] != want {
				t.Fatalf("vertex (%d,%d) y = %v, want H = %v", i, j, verts[off+1], want)
			}
			n := s.Normal(wantX, wantZ, 0)
			if verts[off+3] != n.X || verts[off+4] != n.Y || verts[off+5] != n.Z {
				t.Fatalf("vertex (%d,%d) normal = (%v,%v,%v), want %v",
					i, j, verts[off+3], verts[off+4], verts[off+5], n)
			}
		}
	}
}

func TestIndexBufferShape(t *testing.T) {
	s := mustSet(t, testParams())
	p := testPatch()
	g, err := NewGeometry(s, p)
	if err != nil {
		t.Fatalf("NewGeometry() error = %v", err)
	}

	idx := g.Indices()
	if len(idx) != (p.NZ-1)*2*p.NX {
		t.Fatalf("len(Indices()) = %d, want %d", len(idx), (p.NZ-1)*2*p.NX)
	}

	n := 0
	for i := 0; i < p.NZ-1; i++ {
		for j := 0; j < p.NX; j++ {
			if idx[n] != uint32(j+p.NX*i) {
				t.Fatalf("index %d = %d, want %d", n, idx[n], j+p.NX*i)
			}
			if idx[n+1] != uint32(j+p.NX*(i+1)) {
				t.Fatalf("index %d = %d, want %d", n+1, idx[n+1], j+p.NX*(i+1))
			}
			n += 2
		}
	}
}

func TestStripLayout(t *testing.T) {
	p := Patch{Width: 50, Length: 50, NX: 500, NZ: 500}

	if got := p.StripCount(); got != 499 {
		t.Errorf("StripCount() = %d, want 499", got)
	}
	if got := p.IndicesPerStrip(); got != 1000 {
		t.Errorf("IndicesPerStrip() = %d, want 1000", got)
	}
	for _, i := range []int{0, 1, 250, 498} {
		if got := p.StripOffset(i); got != 2*500*i {
			t.Errorf("StripOffset(%d) = %d, want %d", i, got, 2*500*i)
		}
	}
}

func TestUpdateIdempotent(t *testing.T) {
	s := mustSet(t, testParams())
	g, err := NewGeometry(s, testPatch())
	if err != nil {
		t.Fatalf("NewGeometry() error = %v", err)
	}

	g.Update(1.5)
	first := make([]float32, len(g.Vertices()))
	copy(first, g.Vertices())

	g.Update(1.5)
	for k, v := range g.Vertices() {
		if v != first[k] {
			t.Fatalf("vertex float %d changed across identical updates: %v vs %v", k, v, first[k])
		}
	}
}

func TestUpdateInPlace(t *testing.T) {
	p := testParams()
	p.Count = 8
	p.SpeedMax = 1.0 // make sure something visibly moves in one frame
	s := mustSet(t, p)

	g, err := NewGeometry(s, testPatch())
	if err != nil {
		t.Fatalf("NewGeometry() error = %v", err)
	}

	snapshot := make([]float32, len(g.Vertices()))
	copy(snapshot, g.Vertices())

	var clock Clock
	if err := clock.Advance(1.0 / 60.0); err != nil {
		t.Fatalf("Advance() error = %v", err)
	}
	g.Update(clock.Now())

	if len(g.Vertices()) != len(snapshot) {
		t.Fatalf("vertex buffer resized: %d -> %d", len(snapshot), len(g.Vertices()))
	}
	changed := false
	for k, v := range g.Vertices() {
		if v != snapshot[k] {
			changed = true
			break
		}
	}
	if !changed {
		t.Error("no vertex changed after advancing the clock")
	}
}

func TestFlatGrid(t *testing.T) {
	s := mustCustom(t, []Wave{{Amplitude: 0, Freq: 1, Dir: math.Vec2{X: 1, Y: 0}, Speed: 1}})
	g, err := NewGeometry(s, testPatch())
	if err != nil {
		t.Fatalf("NewGeometry() error = %v", err)
	}

	verts := g.Vertices()
	for k := 0; k < len(verts); k += VertexStride {
		if verts[k+1] != 0 {
			t.Fatalf("flat surface vertex %d has y = %v, want 0", k/VertexStride, verts[k+1])
		}
		if verts[k+3] != 0 || verts[k+4] != 0 || verts[k+5] != 1 {
			t.Fatalf("flat surface vertex %d has normal (%v,%v,%v), want (0,0,1)",
				k/VertexStride, verts[k+3], verts[k+4], verts[k+5])
		}
	}
}
