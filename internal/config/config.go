// Package config handles application configuration loading and management.
package config

// Config holds all viewer settings.
type Config struct {
	Graphics GraphicsConfig `yaml:"graphics"`
	Water    WaterConfig    `yaml:"water"`
	Scene    SceneConfig    `yaml:"scene"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// GraphicsConfig holds display settings.
type GraphicsConfig struct {
	Width      int  `yaml:"width"`
	Height     int  `yaml:"height"`
	Fullscreen bool `yaml:"fullscreen"`
	VSync      bool `yaml:"vsync"`
}

// WaterConfig parameterizes the procedural surface and its mesh.
type WaterConfig struct {
	WaveCount int     `yaml:"wave_count"`
	AmpMax    float32 `yaml:"amp_max"`
	FreqMax   float32 `yaml:"freq_max"`
	SpeedMax  float32 `yaml:"speed_max"`
	Seed      int64   `yaml:"seed"`

	// CorrectedSpeedFloor switches the phase-speed draw floor from
	// freq_max/2 (the historical behavior) to speed_max/2.
	CorrectedSpeedFloor bool `yaml:"corrected_speed_floor"`

	CenterX float32 `yaml:"center_x"`
	CenterZ float32 `yaml:"center_z"`
	Width   float32 `yaml:"width"`
	Length  float32 `yaml:"length"`
	GridX   int     `yaml:"grid_x"`
	GridZ   int     `yaml:"grid_z"`

	Animate bool `yaml:"animate"`

	// RefractiveCaustics replaces the radial-falloff caustic texture with
	// the Snell-refraction accumulation.
	RefractiveCaustics bool `yaml:"refractive_caustics"`
}

// SceneConfig holds settings for the collaborating scene objects.
type SceneConfig struct {
	SkyboxDir string `yaml:"skybox_dir"` // directory of posx/negx/... cubemap faces
	Wireframe bool   `yaml:"wireframe"`
	RocksSeed int64  `yaml:"rocks_seed"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values. The water
// defaults reproduce the classic 50x50 patch with twenty waves.
func Default() *Config {
	return &Config{
		Graphics: GraphicsConfig{
			Width:      1280,
			Height:     720,
			Fullscreen: false,
			VSync:      true,
		},
		Water: WaterConfig{
			WaveCount: 20,
			AmpMax:    0.1,
			FreqMax:   1.0,
			SpeedMax:  0.005,
			Seed:      1,
			Width:     50,
			Length:    50,
			GridX:     500,
			GridZ:     500,
			Animate:   true,
		},
		Scene: SceneConfig{
			SkyboxDir: "resources/skyboxes/yokohama",
			RocksSeed: 1,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
