package scene

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/calmsea/wavetank/internal/config"
	"github.com/calmsea/wavetank/internal/engine/debug"
	"github.com/calmsea/wavetank/internal/engine/rocks"
	"github.com/calmsea/wavetank/internal/engine/water"
	"github.com/calmsea/wavetank/internal/logger"
	"github.com/calmsea/wavetank/pkg/math"
	"github.com/calmsea/wavetank/pkg/wave"
)

// Scene owns the water surface, the rock mound, and the skybox, and runs
// the fixed per-frame order: advance the clock, update the mesh, then
// draw. Mesh updates never overlap draws; everything happens on the GL
// thread.
type Scene struct {
	set      *wave.Set
	clock    wave.Clock
	caustics wave.CausticOptions

	adapter *water.Adapter
	waterR  *WaterRenderer
	rocksR  *RocksRenderer
	skyR    *SkyboxRenderer // nil when the skybox failed to load

	sunDir  math.Vec3
	animate bool
	frame   uint64
}

// New builds the wave set, meshes the patch, synthesizes the textures,
// and compiles all scene shaders. Must run on the GL thread with a
// current context.
func New(cfg *config.Config) (*Scene, error) {
	set, err := wave.NewSet(wave.Params{
		Count:               cfg.Water.WaveCount,
		AmpMax:              cfg.Water.AmpMax,
		FreqMax:             cfg.Water.FreqMax,
		SpeedMax:            cfg.Water.SpeedMax,
		Mode:                wave.DirectionalRounded,
		Seed:                cfg.Water.Seed,
		CorrectedSpeedFloor: cfg.Water.CorrectedSpeedFloor,
	})
	if err != nil {
		return nil, fmt.Errorf("wave set: %w", err)
	}

	patch := wave.Patch{
		CenterX: cfg.Water.CenterX,
		CenterZ: cfg.Water.CenterZ,
		Width:   cfg.Water.Width,
		Length:  cfg.Water.Length,
		NX:      cfg.Water.GridX,
		NZ:      cfg.Water.GridZ,
	}

	s := &Scene{
		set: set,
		// Caustics are compared against a sun straight overhead.
		sunDir:  math.Vec3{X: 0, Y: 1, Z: 0},
		animate: cfg.Water.Animate,
	}

	s.caustics = wave.CausticOptions{Refractive: cfg.Water.RefractiveCaustics}

	s.adapter, err = water.NewAdapter(set, patch, s.caustics)
	if err != nil {
		return nil, fmt.Errorf("water surface: %w", err)
	}

	s.waterR, err = NewWaterRenderer(cfg.Scene.Wireframe)
	if err != nil {
		s.Destroy()
		return nil, err
	}

	s.rocksR, err = NewRocksRenderer(rocks.Generate(rocks.DefaultParams(cfg.Scene.RocksSeed)))
	if err != nil {
		s.Destroy()
		return nil, err
	}

	s.skyR, err = NewSkyboxRenderer(cfg.Scene.SkyboxDir)
	if err != nil {
		// The scene still works without an environment; reflections fall
		// back to sampling an empty cubemap.
		logger.Warn("skybox unavailable", zap.Error(err))
		s.skyR = nil
	}

	logger.Info("scene ready",
		zap.Int("waves", set.Len()),
		zap.Int("grid_x", patch.NX),
		zap.Int("grid_z", patch.NZ),
		zap.Bool("animate", s.animate),
	)

	return s, nil
}

// Update advances the simulation clock and, on every other frame,
// rewrites the surface mesh. The half-rate rewrite is a throttling
// policy, not a correctness requirement.
func (s *Scene) Update(dt float32) error {
	if err := s.clock.Advance(dt); err != nil {
		return err
	}
	s.frame++
	if s.animate && s.frame%2 == 1 {
		s.adapter.Update(s.clock.Now())
	}
	return nil
}

// Render draws the frame: rocks, then water, then the skybox last.
func (s *Scene) Render(projection, view math.Mat4, cameraPos math.Vec3) {
	s.rocksR.Render(s.adapter, projection, view, cameraPos, s.sunDir)

	var cubemap uint32
	if s.skyR != nil {
		cubemap = s.skyR.Cubemap()
	}
	s.waterR.Render(s.adapter, projection, view, cameraPos, cubemap)

	if s.skyR != nil {
		s.skyR.Render(projection, view)
	}
}

// Surface exposes the math query interface for collaborators that need
// surface values outside the mesh.
func (s *Scene) Surface() *wave.Set {
	return s.set
}

// Now returns the current simulation time.
func (s *Scene) Now() float32 {
	return s.clock.Now()
}

// DumpTextures regenerates the normal and caustic maps on the CPU and
// writes both as PNGs through the capture handler.
func (s *Scene) DumpTextures(c *debug.Capture) error {
	p := s.adapter.Patch()

	if _, err := c.SaveRGBTexture(wave.NormalMap(s.set, p), p.NX, p.NZ, "normalmap"); err != nil {
		return fmt.Errorf("normal map dump: %w", err)
	}
	if _, err := c.SaveRGBTexture(wave.CausticMap(s.set, p, s.caustics), p.NX, p.NZ, "caustic"); err != nil {
		return fmt.Errorf("caustic map dump: %w", err)
	}
	return nil
}

// Destroy releases every GL resource the scene owns.
func (s *Scene) Destroy() {
	if s.adapter != nil {
		s.adapter.Destroy()
	}
	if s.waterR != nil {
		s.waterR.Destroy()
	}
	if s.rocksR != nil {
		s.rocksR.Destroy()
	}
	if s.skyR != nil {
		s.skyR.Destroy()
	}
}
