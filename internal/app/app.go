// Package app wires the SDL window, the OpenGL renderer and native dialogs
// to the viewer and runs the main loop.
package app

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/heightview/internal/config"
	"github.com/Faultbox/heightview/internal/engine/camera"
	"github.com/Faultbox/heightview/internal/engine/debug"
	"github.com/Faultbox/heightview/internal/engine/input"
	"github.com/Faultbox/heightview/internal/engine/renderer"
	"github.com/Faultbox/heightview/internal/engine/scene"
	"github.com/Faultbox/heightview/internal/engine/window"
	"github.com/Faultbox/heightview/internal/logger"
	"github.com/Faultbox/heightview/internal/viewer"
)

// App is the running viewer application.
type App struct {
	config   *config.Config
	running  bool
	window   *window.Window
	renderer *renderer.Renderer
	input    *input.Input
	loader   *scene.Loader
	viewer   *viewer.Viewer
	title    string
}

// New creates the window, GL resources and viewer from cfg.
func New(cfg *config.Config) (*App, error) {
	logger.Info("initializing viewer",
		zap.String("title", cfg.Window.Title),
		zap.Int("width", cfg.Window.Width),
		zap.Int("height", cfg.Window.Height),
	)

	a := &App{config: cfg}

	// Create window (this also creates OpenGL context)
	var err error
	a.window, err = window.New(window.Config{
		Title:      cfg.Window.Title,
		Width:      cfg.Window.Width,
		Height:     cfg.Window.Height,
		Fullscreen: cfg.Window.Fullscreen,
		VSync:      cfg.Window.VSync,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	// Renderer must come after the GL context
	width, height := a.window.DrawableSize()
	a.renderer, err = renderer.New(renderer.Config{Width: width, Height: height})
	if err != nil {
		a.window.Close()
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}

	format, err := debug.ParseFormat(cfg.Screenshot.Format)
	if err != nil {
		a.Close()
		return nil, err
	}

	store := scene.NewStore(scene.Placeholder())
	a.loader = scene.NewLoader(store, scene.Options{
		WorldSize:    cfg.Terrain.WorldSize,
		MaxDimension: cfg.Terrain.MaxDimension,
	})
	a.input = input.New(a.window.PollEvents)

	a.viewer = viewer.New(a.renderer, nativeDialogs{}, store, a.loader, viewer.Options{
		Title:           cfg.Window.Title,
		Camera:          cfg.CameraSettings(),
		Mode:            cfg.ProjectionMode(),
		HeightSlider:    cfg.Controls.HeightSlider,
		HeightSliderMax: cfg.Controls.HeightSliderMax,
		HeightStep:      cfg.Controls.HeightStep,
		Width:           width,
		Height:          height,
		Screenshots:     debug.NewScreenshotCapture(cfg.Screenshot.Dir, cfg.Screenshot.Prefix, format),
		SaveConfig:      a.saveConfig,
	})

	if cfg.Terrain.Image != "" {
		a.viewer.Open(cfg.Terrain.Image)
	}

	logger.Info("viewer initialized")
	return a, nil
}

// Run starts the main loop and returns when the window closes or the user
// quits.
func (a *App) Run() error {
	a.running = true

	lastTime := time.Now()
	frameCount := 0
	fpsTimer := time.Now()

	logger.Info("starting render loop")

	for a.running {
		now := time.Now()
		dt := now.Sub(lastTime)
		lastTime = now

		if a.input.Update() {
			a.running = false
			break
		}
		for _, event := range a.input.Events() {
			a.viewer.HandleEvent(event)
		}
		if a.viewer.Quit() {
			a.running = false
			break
		}

		if err := a.viewer.Frame(); err != nil {
			return fmt.Errorf("render error: %w", err)
		}

		if title := a.viewer.Title(); title != a.title {
			a.window.SetTitle(title)
			a.title = title
		}

		a.window.SwapBuffers()

		frameCount++
		if time.Since(fpsTimer) >= time.Second {
			logger.Debug("fps", zap.Int("count", frameCount), zap.Duration("dt", dt))
			frameCount = 0
			fpsTimer = time.Now()
		}
	}

	return nil
}

// Close waits for pending loads and releases GL and SDL resources.
func (a *App) Close() {
	logger.Info("closing viewer")

	if a.loader != nil {
		a.loader.Close()
	}
	if a.renderer != nil {
		a.renderer.Close()
	}
	if a.window != nil {
		a.window.Close()
	}
}

func (a *App) saveConfig(mode camera.ProjectionMode, heightSlider int) error {
	a.config.Camera.Projection = mode.String()
	a.config.Controls.HeightSlider = heightSlider
	return a.config.Save()
}
