// Package config handles viewer configuration loading and management.
package config

import (
	"errors"
	"fmt"

	"github.com/Faultbox/heightview/internal/engine/camera"
	"github.com/Faultbox/heightview/internal/logger"
)

// Config holds all viewer settings.
type Config struct {
	Window     WindowConfig     `yaml:"window"`
	Camera     CameraConfig     `yaml:"camera"`
	Terrain    TerrainConfig    `yaml:"terrain"`
	Controls   ControlsConfig   `yaml:"controls"`
	Screenshot ScreenshotConfig `yaml:"screenshot"`
	Logging    LoggingConfig    `yaml:"logging"`
}

// WindowConfig holds display settings.
type WindowConfig struct {
	Title      string `yaml:"title"`
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	Fullscreen bool   `yaml:"fullscreen"`
	VSync      bool   `yaml:"vsync"`
}

// CameraConfig holds projection and interaction constants.
type CameraConfig struct {
	Projection    string  `yaml:"projection"` // "perspective" or "orthographic"
	FOV           float32 `yaml:"fov"`        // Degrees
	Near          float32 `yaml:"near"`
	Far           float32 `yaml:"far"`
	OrthoExtent   float32 `yaml:"ortho_extent"`
	EyeDistance   float32 `yaml:"eye_distance"`
	ZoomStep      float32 `yaml:"zoom_step"`
	MinScale      float32 `yaml:"min_scale"`
	PanDivisor    float32 `yaml:"pan_divisor"`
	RotateDivisor float32 `yaml:"rotate_divisor"`
}

// TerrainConfig holds mesh generation settings.
type TerrainConfig struct {
	Image        string  `yaml:"image"`         // Loaded at startup when set
	WorldSize    float32 `yaml:"world_size"`    // Mesh extent along the longer side
	MaxDimension int     `yaml:"max_dimension"` // 0 keeps full resolution
}

// ControlsConfig holds the height slider settings.
type ControlsConfig struct {
	HeightSlider    int     `yaml:"height_slider"`     // Initial value
	HeightSliderMax int     `yaml:"height_slider_max"` // Upper bound
	HeightStep      int     `yaml:"height_step"`       // Change per key press
	HeightDivisor   float32 `yaml:"height_divisor"`    // Slider value for 1.0x height
}

// ScreenshotConfig holds capture settings.
type ScreenshotConfig struct {
	Dir    string `yaml:"dir"`
	Prefix string `yaml:"prefix"`
	Format string `yaml:"format"` // "png" or "webp"
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level      string `yaml:"level"`
	LogFile    string `yaml:"log_file"`
	MaxSizeMB  int    `yaml:"max_size_mb"`
	MaxBackups int    `yaml:"max_backups"`
	MaxAgeDays int    `yaml:"max_age_days"`
	Compress   bool   `yaml:"compress"`
}

// LoggerFileConfig converts the logging section for logger.InitWithFileConfig.
func (c *Config) LoggerFileConfig() logger.FileConfig {
	return logger.FileConfig{
		Path:       c.Logging.LogFile,
		MaxSizeMB:  c.Logging.MaxSizeMB,
		MaxBackups: c.Logging.MaxBackups,
		MaxAgeDays: c.Logging.MaxAgeDays,
		Compress:   c.Logging.Compress,
	}
}

// Default returns a Config with sensible default values.
func Default() *Config {
	cam := camera.DefaultSettings()
	logFile := logger.DefaultFileConfig("")
	return &Config{
		Window: WindowConfig{
			Title:      "Heightview",
			Width:      1280,
			Height:     720,
			Fullscreen: false,
			VSync:      true,
		},
		Camera: CameraConfig{
			Projection:    camera.Perspective.String(),
			FOV:           cam.FOVDegrees,
			Near:          cam.Near,
			Far:           cam.Far,
			OrthoExtent:   cam.OrthoExtent,
			EyeDistance:   cam.EyeDistance,
			ZoomStep:      cam.ZoomStep,
			MinScale:      cam.MinScale,
			PanDivisor:    cam.PanDivisor,
			RotateDivisor: cam.RotateDivisor,
		},
		Terrain: TerrainConfig{
			WorldSize:    5,
			MaxDimension: 1024,
		},
		Controls: ControlsConfig{
			HeightSlider:    500,
			HeightSliderMax: 2000,
			HeightStep:      25,
			HeightDivisor:   cam.HeightDivisor,
		},
		Screenshot: ScreenshotConfig{
			Dir:    "screenshots",
			Prefix: "heightview",
			Format: "png",
		},
		Logging: LoggingConfig{
			Level:      "info",
			LogFile:    logFile.Path,
			MaxSizeMB:  logFile.MaxSizeMB,
			MaxBackups: logFile.MaxBackups,
			MaxAgeDays: logFile.MaxAgeDays,
			Compress:   logFile.Compress,
		},
	}
}

// CameraSettings converts the camera and controls sections.
func (c *Config) CameraSettings() camera.Settings {
	return camera.Settings{
		FOVDegrees:    c.Camera.FOV,
		Near:          c.Camera.Near,
		Far:           c.Camera.Far,
		OrthoExtent:   c.Camera.OrthoExtent,
		EyeDistance:   c.Camera.EyeDistance,
		ZoomStep:      c.Camera.ZoomStep,
		MinScale:      c.Camera.MinScale,
		PanDivisor:    c.Camera.PanDivisor,
		RotateDivisor: c.Camera.RotateDivisor,
		HeightDivisor: c.Controls.HeightDivisor,
	}
}

// ProjectionMode returns the configured start-up projection.
func (c *Config) ProjectionMode() camera.ProjectionMode {
	mode, err := camera.ParseProjectionMode(c.Camera.Projection)
	if err != nil {
		return camera.Perspective
	}
	return mode
}

// Validate reports every invalid setting at once.
func (c *Config) Validate() error {
	var errs []error

	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size %dx%d must be positive", c.Window.Width, c.Window.Height))
	}

	if _, err := camera.ParseProjectionMode(c.Camera.Projection); err != nil {
		errs = append(errs, fmt.Errorf("camera: %w", err))
	}
	if c.Camera.FOV <= 0 || c.Camera.FOV >= 180 {
		errs = append(errs, fmt.Errorf("camera fov %g must be in (0, 180)", c.Camera.FOV))
	}
	if c.Camera.Near <= 0 || c.Camera.Near >= c.Camera.Far {
		errs = append(errs, fmt.Errorf("camera near %g must be positive and less than far %g", c.Camera.Near, c.Camera.Far))
	}
	if c.Camera.OrthoExtent <= 0 {
		errs = append(errs, fmt.Errorf("camera ortho_extent %g must be positive", c.Camera.OrthoExtent))
	}
	if c.Camera.ZoomStep <= 0 || c.Camera.MinScale <= 0 {
		errs = append(errs, errors.New("camera zoom_step and min_scale must be positive"))
	}
	if c.Camera.PanDivisor <= 0 || c.Camera.RotateDivisor <= 0 {
		errs = append(errs, errors.New("camera pan_divisor and rotate_divisor must be positive"))
	}

	if c.Terrain.WorldSize <= 0 {
		errs = append(errs, fmt.Errorf("terrain world_size %g must be positive", c.Terrain.WorldSize))
	}
	if c.Terrain.MaxDimension < 0 {
		errs = append(errs, fmt.Errorf("terrain max_dimension %d must not be negative", c.Terrain.MaxDimension))
	}

	if c.Controls.HeightDivisor <= 0 {
		errs = append(errs, fmt.Errorf("controls height_divisor %g must be positive", c.Controls.HeightDivisor))
	}
	if c.Controls.HeightSliderMax <= 0 || c.Controls.HeightStep <= 0 {
		errs = append(errs, errors.New("controls height_slider_max and height_step must be positive"))
	}
	if c.Controls.HeightSlider < 0 || c.Controls.HeightSlider > c.Controls.HeightSliderMax {
		errs = append(errs, fmt.Errorf("controls height_slider %d outside [0, %d]", c.Controls.HeightSlider, c.Controls.HeightSliderMax))
	}

	switch c.Screenshot.Format {
	case "png", "webp":
	default:
		errs = append(errs, fmt.Errorf("screenshot format %q must be png or webp", c.Screenshot.Format))
	}

	if _, err := logger.ParseLevel(c.Logging.Level); err != nil {
		errs = append(errs, fmt.Errorf("logging: %w", err))
	}

	return errors.Join(errs...)
}
