// Package app implements the main viewer loop and state management.
package app

import (
	"fmt"
	gomath "math"
	"time"

	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/calmsea/wavetank/internal/config"
	"github.com/calmsea/wavetank/internal/engine/camera"
	"github.com/calmsea/wavetank/internal/engine/debug"
	"github.com/calmsea/wavetank/internal/engine/input"
	"github.com/calmsea/wavetank/internal/engine/renderer"
	"github.com/calmsea/wavetank/internal/engine/scene"
	"github.com/calmsea/wavetank/internal/engine/window"
	"github.com/calmsea/wavetank/internal/logger"
	"github.com/calmsea/wavetank/pkg/math"
)

const windowTitle = "wavetank"

// Vertical field of view in radians (Perspective takes radians).
const cameraFOV = 45 * gomath.Pi / 180

// App is the main viewer instance.
type App struct {
	config  *config.Config
	running bool

	window   *window.Window
	renderer *renderer.Renderer
	input    *input.Input
	camera   *camera.FlyCamera
	scene    *scene.Scene
	capture  *debug.Capture

	mouseCaptured bool
}

// New creates the viewer: window and GL context first, then the renderer,
// then the scene.
func New(cfg *config.Config) (*App, error) {
	logger.Info("initializing viewer",
		zap.Int("width", cfg.Graphics.Width),
		zap.Int("height", cfg.Graphics.Height),
	)

	a := &App{
		config:  cfg,
		running: false,
	}

	// Create window (this also creates OpenGL context)
	var err error
	a.window, err = window.New(window.Config{
		Title:      windowTitle,
		Width:      cfg.Graphics.Width,
		Height:     cfg.Graphics.Height,
		Fullscreen: cfg.Graphics.Fullscreen,
		VSync:      cfg.Graphics.VSync,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	// Create renderer (AFTER window, since OpenGL context must exist)
	a.renderer, err = renderer.New(renderer.Config{
		Width:  cfg.Graphics.Width,
		Height: cfg.Graphics.Height,
		VSync:  cfg.Graphics.VSync,
	})
	if err != nil {
		a.window.Close()
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}

	a.scene, err = scene.New(cfg)
	if err != nil {
		a.renderer.Close()
		a.window.Close()
		return nil, fmt.Errorf("failed to build scene: %w", err)
	}

	a.input = input.New()
	a.capture = debug.NewCapture("screenshots", windowTitle)

	// Start above the surface looking down its length.
	a.camera = camera.NewFlyCamera(math.Vec3{X: 0, Y: 6, Z: 35}, -90, -12)

	a.mouseCaptured = true
	a.window.CaptureMouse(true)

	logger.Info("viewer initialized")
	return a, nil
}

// Run starts the main loop.
func (a *App) Run() error {
	a.running = true

	// Timing
	lastTime := time.Now()
	frameCount := 0
	fpsTimer := time.Now()

	logger.Info("starting main loop")

	for a.running {
		// Calculate delta time
		now := time.Now()
		dt := float32(now.Sub(lastTime).Seconds())
		lastTime = now

		// 1. Process input
		if a.input.Update() {
			a.running = false
			break
		}
		a.handleEvents()
		a.moveCamera(dt)

		// 2. Update simulation state
		if err := a.scene.Update(dt); err != nil {
			return fmt.Errorf("update error: %w", err)
		}

		// 3. Render
		a.render()

		// 4. Present (swap buffers)
		a.window.SwapBuffers()

		// FPS in the title, refreshed every 30 frames
		frameCount++
		if frameCount%30 == 0 && time.Since(fpsTimer) > 0 {
			fps := float64(frameCount) / time.Since(fpsTimer).Seconds()
			a.window.SetTitle(fmt.Sprintf("%s - %.0f fps", windowTitle, fps))
			frameCount = 0
			fpsTimer = time.Now()
		}
	}

	return nil
}

// Close cleans up viewer resources.
func (a *App) Close() {
	logger.Info("closing viewer")

	if a.scene != nil {
		a.scene.Destroy()
	}
	if a.renderer != nil {
		a.renderer.Close()
	}
	if a.window != nil {
		a.window.Close()
	}
}

func (a *App) handleEvents() {
	for _, event := range a.input.Events() {
		switch event.Type {
		case input.EventWindowResize:
			a.renderer.Resize(event.Width, event.Height)
		case input.EventKeyDown:
			switch event.Key {
			case sdl.SCANCODE_ESCAPE:
				a.running = false
			case sdl.SCANCODE_TAB:
				a.mouseCaptured = !a.mouseCaptured
				a.window.CaptureMouse(a.mouseCaptured)
			case sdl.SCANCODE_F12:
				pix, w, h := a.renderer.ReadPixels()
				if path, err := a.capture.SaveFrame(pix, w, h); err != nil {
					logger.Warn("screenshot failed", zap.Error(err))
				} else {
					logger.Info("screenshot saved", zap.String("path", path))
				}
			case sdl.SCANCODE_F10:
				if err := a.scene.DumpTextures(a.capture); err != nil {
					logger.Warn("texture dump failed", zap.Error(err))
				}
			}
		}
	}
}

// moveCamera applies WASD movement, space/shift vertical movement, and
// mouse look while the mouse is captured.
func (a *App) moveCamera(dt float32) {
	var forward, right, up float32
	if a.input.IsKeyDown(sdl.SCANCODE_W) {
		forward++
	}
	if a.input.IsKeyDown(sdl.SCANCODE_S) {
		forward--
	}
	if a.input.IsKeyDown(sdl.SCANCODE_D) {
		right++
	}
	if a.input.IsKeyDown(sdl.SCANCODE_A) {
		right--
	}
	if a.input.IsKeyDown(sdl.SCANCODE_SPACE) {
		up++
	}
	if a.input.IsKeyDown(sdl.SCANCODE_LSHIFT) {
		up--
	}
	if forward != 0 || right != 0 || up != 0 {
		a.camera.Move(forward, right, up, dt)
	}

	if a.mouseCaptured {
		dx, dy := a.input.MouseDelta()
		if dx != 0 || dy != 0 {
			a.camera.Look(float32(dx), float32(-dy))
		}
	}
}

func (a *App) render() {
	a.renderer.Begin()

	projection := math.Perspective(cameraFOV, a.renderer.Aspect(), 0.1, 500)
	a.scene.Render(projection, a.camera.ViewMatrix(), a.camera.Position)

	a.renderer.End()
}
