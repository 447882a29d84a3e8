package config

import "flag"

var (
	flagConfig     = flag.String("config", "", "Path to config file")
	flagDebug      = flag.Bool("debug", false, "Enable debug logging")
	flagWindowed   = flag.Bool("windowed", false, "Run in windowed mode")
	flagFullscreen = flag.Bool("fullscreen", false, "Run in fullscreen mode")
	flagWidth      = flag.Int("width", 0, "Window width")
	flagHeight     = flag.Int("height", 0, "Window height")
	flagNoVSync    = flag.Bool("no-vsync", false, "Disable vertical sync")
	flagAssets     = flag.String("assets", "", "Asset root directory")
	flagModel      = flag.String("model", "", "OBJ model name to load")
	flagSkybox     = flag.String("skybox", "", "Skybox name to load")
	flagShadowRes  = flag.Int("shadow-res", 0, "Shadow map resolution")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
		cfg.Graphics.ShowFPS = true
	}
	if *flagWindowed {
		cfg.Graphics.Fullscreen = false
	}
	if *flagFullscreen {
		cfg.Graphics.Fullscreen = true
	}
	if *flagWidth > 0 {
		cfg.Graphics.Width = *flagWidth
	}
	if *flagHeight > 0 {
		cfg.Graphics.Height = *flagHeight
	}
	if *flagNoVSync {
		cfg.Graphics.VSync = false
	}
	if *flagAssets != "" {
		cfg.Assets.Root = *flagAssets
	}
	if *flagModel != "" {
		cfg.Assets.Model = *flagModel
	}
	if *flagSkybox != "" {
		cfg.Assets.Skybox = *flagSkybox
	}
	if *flagShadowRes > 0 {
		cfg.Shadow.Resolution = int32(*flagShadowRes)
	}
}
