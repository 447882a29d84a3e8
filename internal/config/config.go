// Package config handles engine configuration loading and management.
package config

// Config holds all engine settings.
type Config struct {
	Graphics GraphicsConfig `yaml:"graphics"`
	Camera   CameraConfig   `yaml:"camera"`
	Shadow   ShadowConfig   `yaml:"shadow"`
	Assets   AssetsConfig   `yaml:"assets"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// GraphicsConfig holds display and rendering settings.
type GraphicsConfig struct {
	Width      int  `yaml:"width"`
	Height     int  `yaml:"height"`
	Fullscreen bool `yaml:"fullscreen"`
	VSync      bool `yaml:"vsync"`
	ShowFPS    bool `yaml:"show_fps"`
}

// CameraConfig holds free-fly camera settings.
type CameraConfig struct {
	FOV         float32 `yaml:"fov"`          // vertical field of view, degrees
	Near        float32 `yaml:"near"`         // near clip plane
	Far         float32 `yaml:"far"`          // far clip plane
	Speed       float32 `yaml:"speed"`        // movement units per second
	Sensitivity float32 `yaml:"sensitivity"`  // mouse-look degrees per pixel
	SprintScale float32 `yaml:"sprint_scale"` // speed multiplier while sprinting
}

// ShadowConfig holds shadow mapping settings.
type ShadowConfig struct {
	Resolution int32 `yaml:"resolution"` // shadow map size, power of 2
	Enabled    bool  `yaml:"enabled"`
}

// AssetsConfig holds asset lookup settings.
type AssetsConfig struct {
	Root   string `yaml:"root"`   // asset root; empty = discover by walking up
	Model  string `yaml:"model"`  // OBJ model name under OBJ_Models/
	Skybox string `yaml:"skybox"` // skybox name under Skyboxes/
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
			ShowFPS:    true,
		},
		Camera: CameraConfig{
			FOV:         60,
			Near:        0.1,
			Far:         500,
			Speed:       5,
			Sensitivity: 0.1,
			SprintScale: 3,
		},
		Shadow: ShadowConfig{
			Resolution: 2048,
			Enabled:    true,
		},
		Assets: AssetsConfig{
			Model:  "Cube",
			Skybox: "Default",
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
