// Package config handles viewer configuration loading and management.
package config

// Config holds all viewer settings.
type Config struct {
	Graphics GraphicsConfig `yaml:"graphics"`
	Scene    SceneConfig    `yaml:"scene"`
	Params   ParamsConfig   `yaml:"params"`
	Capture  CaptureConfig  `yaml:"capture"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// GraphicsConfig holds display settings.
type GraphicsConfig struct {
	Width      int  `yaml:"width"`
	Height     int  `yaml:"height"`
	Fullscreen bool `yaml:"fullscreen"`
	VSync      bool `yaml:"vsync"`
}

// SceneConfig holds scene asset locations.
type SceneConfig struct {
	// DescriptorURL is where the camera/light descriptor JSON is fetched
	// from. Accepts an http(s) URL or a local file path.
	DescriptorURL string `yaml:"descriptor_url"`

	// ModelPath is an OBJ file for the foreground mesh. Empty means the
	// built-in procedural prism is used.
	ModelPath string `yaml:"model_path"`

	// PrismSides is the side count of the procedural prism.
	PrismSides int `yaml:"prism_sides"`

	// Ramps lists the ramp texture image paths the ramp-cycle key walks.
	Ramps []string `yaml:"ramps"`

	// FontPath is an optional TTF for the text ring. Empty uses the
	// embedded Go Regular face.
	FontPath string `yaml:"font_path"`
}

// ParamsConfig holds startup values for the live parameters.
type ParamsConfig struct {
	Ambient         float32 `yaml:"ambient"`
	RampFile        string  `yaml:"ramp_file"`
	BlackBackground bool    `yaml:"black_background"`
	LockCamera      bool    `yaml:"lock_camera"`
	OrbitText       string  `yaml:"orbit_text"`
	OrbitTilt       float32 `yaml:"orbit_tilt"`
	OrbitRadius     float32 `yaml:"orbit_radius"`
	Speed           float32 `yaml:"speed"`
}

// CaptureConfig holds screenshot settings.
type CaptureConfig struct {
	OutputDir string `yaml:"output_dir"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Graphics: GraphicsConfig{
			Width:      1280,
			Height:     720,
			Fullscreen: false,
			VSync:      true,
		},
		Scene: SceneConfig{
			DescriptorURL: "assets/scene.json",
			PrismSides:    6,
			Ramps: []string{
				"assets/ramps/fiveTone.png",
				"assets/ramps/threeTone.png",
				"assets/ramps/sunset.png",
			},
		},
		Params: ParamsConfig{
			Ambient:     0.2,
			RampFile:    "assets/ramps/fiveTone.png",
			OrbitText:   "ROTATING PRISM",
			OrbitTilt:   15,
			OrbitRadius: 30,
			Speed:       0.01,
		},
		Capture: CaptureConfig{
			OutputDir: "screenshots",
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
