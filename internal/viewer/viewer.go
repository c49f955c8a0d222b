// Package viewer ties input, the camera, the scene store and a rendering
// backend into the per-frame update of the heightmap viewer.
package viewer

import (
	"errors"
	"fmt"
	"image"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/Faultbox/heightview/internal/engine/camera"
	"github.com/Faultbox/heightview/internal/engine/debug"
	"github.com/Faultbox/heightview/internal/engine/input"
	"github.com/Faultbox/heightview/internal/engine/scene"
	"github.com/Faultbox/heightview/internal/engine/terrain"
	"github.com/Faultbox/heightview/internal/logger"
	"github.com/Faultbox/heightview/pkg/math"
)

// Backend draws one mesh with the given matrices.
type Backend interface {
	Upload(mesh *terrain.Mesh) error
	Draw(modelView, projection math.Mat4)
	Resize(width, height int)
	Close()
}

// Capturer is implemented by backends that can render a frame offscreen.
type Capturer interface {
	Capture(modelView, projection math.Mat4) (*image.RGBA, error)
}

// BoundsOverlay is implemented by backends that can outline the mesh bounds.
type BoundsOverlay interface {
	SetBoundsVisible(visible bool)
}

// Dialogs shows native file pickers and notices.
type Dialogs interface {
	// OpenImage asks for an image file. A cancelled picker returns "" and nil.
	OpenImage() (string, error)
	// ShowError reports a problem to the user.
	ShowError(title, message string)
}

// Options configures a Viewer.
type Options struct {
	Title           string
	Camera          camera.Settings
	Mode            camera.ProjectionMode
	HeightSlider    int
	HeightSliderMax int
	HeightStep      int
	Width, Height   int // Initial drawable size

	// Screenshots is nil when captures are disabled.
	Screenshots *debug.ScreenshotCapture
	// SaveConfig persists the current mode and slider on KeyS; nil disables it.
	SaveConfig func(mode camera.ProjectionMode, heightSlider int) error
}

// Viewer owns the viewport state and turns input events and finished loads
// into draw calls on a Backend. All methods run on the render thread.
type Viewer struct {
	opts    Options
	backend Backend
	dialogs Dialogs
	store   *scene.Store
	loader  *scene.Loader

	state      *camera.ViewportState
	controller *camera.Controller

	mode   camera.ProjectionMode
	slider int
	width  int
	height int

	uploaded   *scene.Generation
	screenshot bool
	showBounds bool
	quit       bool
}

// New creates a viewer drawing store's generations through backend.
func New(backend Backend, dialogs Dialogs, store *scene.Store, loader *scene.Loader, opts Options) *Viewer {
	state := camera.NewViewportState()
	return &Viewer{
		opts:       opts,
		backend:    backend,
		dialogs:    dialogs,
		store:      store,
		loader:     loader,
		state:      state,
		controller: camera.NewController(state, opts.Camera),
		mode:       opts.Mode,
		slider:     clamp(opts.HeightSlider, 0, opts.HeightSliderMax),
		width:      opts.Width,
		height:     opts.Height,
	}
}

// State returns the viewport state.
func (v *Viewer) State() *camera.ViewportState {
	return v.state
}

// Mode returns the current projection mode.
func (v *Viewer) Mode() camera.ProjectionMode {
	return v.mode
}

// HeightSlider returns the current height slider value.
func (v *Viewer) HeightSlider() int {
	return v.slider
}

// Quit reports whether the user asked to exit.
func (v *Viewer) Quit() bool {
	return v.quit
}

// Open starts loading path and returns its generation ID.
func (v *Viewer) Open(path string) uint64 {
	logger.Info("opening image", zap.String("path", path))
	return v.loader.Request(path)
}

// HandleEvent applies one input event.
func (v *Viewer) HandleEvent(e input.Event) {
	switch e.Type {
	case input.EventQuit:
		v.quit = true

	case input.EventWindowResize:
		v.width, v.height = e.Width, e.Height
		v.backend.Resize(e.Width, e.Height)

	case input.EventMouseDown:
		button := camera.ButtonOther
		if e.Button == input.ButtonLeft {
			button = camera.ButtonLeft
		}
		v.controller.HandlePress(e.MouseX, e.MouseY, button)

	case input.EventMouseMove:
		v.controller.HandleMove(e.MouseX, e.MouseY)

	case input.EventMouseUp:
		v.controller.HandleRelease()

	case input.EventMouseLeave:
		v.controller.HandleLeave()

	case input.EventMouseWheel:
		v.controller.HandleScroll(e.WheelY)

	case input.EventDropFile:
		v.Open(e.Path)

	case input.EventKeyDown:
		v.handleKey(e.Key)
	}
}

func (v *Viewer) handleKey(key input.Key) {
	switch key {
	case input.KeyEscape:
		v.quit = true
	case input.KeyP:
		v.mode = v.mode.Toggle()
		logger.Debug("projection changed", zap.Stringer("mode", v.mode))
	case input.KeyUp:
		v.slider = clamp(v.slider+v.opts.HeightStep, 0, v.opts.HeightSliderMax)
	case input.KeyDown:
		v.slider = clamp(v.slider-v.opts.HeightStep, 0, v.opts.HeightSliderMax)
	case input.KeyR:
		v.controller.Reset()
	case input.KeyO:
		v.openDialog()
	case input.KeyS:
		v.saveConfig()
	case input.KeyB:
		v.toggleBounds()
	case input.KeyF12:
		v.screenshot = true
	}
}

func (v *Viewer) toggleBounds() {
	o, ok := v.backend.(BoundsOverlay)
	if !ok {
		return
	}
	v.showBounds = !v.showBounds
	o.SetBoundsVisible(v.showBounds)
}

func (v *Viewer) openDialog() {
	if v.dialogs == nil {
		return
	}
	path, err := v.dialogs.OpenImage()
	if err != nil {
		logger.Warn("file dialog failed", zap.Error(err))
		return
	}
	if path != "" {
		v.Open(path)
	}
}

func (v *Viewer) saveConfig() {
	if v.opts.SaveConfig == nil {
		return
	}
	if err := v.opts.SaveConfig(v.mode, v.slider); err != nil {
		logger.Warn("saving config failed", zap.Error(err))
		return
	}
	logger.Info("config saved", zap.Stringer("mode", v.mode), zap.Int("heightSlider", v.slider))
}

// Frame drains finished loads, uploads the newest generation if it changed
// and draws. It returns an error only for backend failures.
func (v *Viewer) Frame() error {
	v.drainResults()

	if g := v.store.Current(); g != nil && g != v.uploaded {
		if err := v.backend.Upload(g.Mesh); err != nil {
			return fmt.Errorf("uploading generation %d: %w", g.ID, err)
		}
		v.uploaded = g
	}

	t := v.Transforms()
	v.backend.Draw(t.ModelView, t.Projection)

	if v.screenshot {
		v.screenshot = false
		v.capture(t)
	}
	return nil
}

// Transforms builds this frame's matrices from the current UI values.
func (v *Viewer) Transforms() camera.Transforms {
	var aspect float32 = 1
	if v.width > 0 && v.height > 0 {
		aspect = float32(v.width) / float32(v.height)
	}
	return camera.Matrices(v.state, camera.Frame{
		Mode:         v.mode,
		HeightSlider: v.slider,
		Aspect:       aspect,
	}, v.opts.Camera)
}

func (v *Viewer) drainResults() {
	for {
		select {
		case res := <-v.loader.Results():
			v.handleResult(res)
		default:
			return
		}
	}
}

func (v *Viewer) handleResult(res scene.Result) {
	if res.Err == nil {
		return
	}
	if !errors.Is(res.Err, terrain.ErrInvalidInput) {
		logger.Error("load failed", zap.Uint64("generation", res.ID), zap.Error(res.Err))
	}
	if v.dialogs != nil {
		v.dialogs.ShowError("Cannot open image", fmt.Sprintf("%s is not a readable image.\n\n%v", displayName(res.Source), res.Err))
	}
}

func (v *Viewer) capture(t camera.Transforms) {
	if v.opts.Screenshots == nil {
		return
	}
	c, ok := v.backend.(Capturer)
	if !ok {
		logger.Warn("backend cannot capture screenshots")
		return
	}

	img, err := c.Capture(t.ModelView, t.Projection)
	if err != nil {
		logger.Warn("screenshot capture failed", zap.Error(err))
		return
	}
	path, err := v.opts.Screenshots.CaptureFromImage(img)
	if err != nil {
		logger.Warn("screenshot save failed", zap.Error(err))
		return
	}
	logger.Info("screenshot saved", zap.String("path", path))
}

// Title describes the current view for the window title bar.
func (v *Viewer) Title() string {
	title := v.opts.Title
	g := v.store.Current()
	if g != nil && g.Heightmap != nil {
		title += fmt.Sprintf(" - %s (%dx%d)", displayName(g.Source), g.Heightmap.Width, g.Heightmap.Height)
	}
	return title + fmt.Sprintf(" - %s - height %.2fx", v.mode, v.opts.Camera.HeightScale(v.slider))
}

func displayName(path string) string {
	if path == "" {
		return "(none)"
	}
	return filepath.Base(path)
}

func clamp(v, lo, hi int) int {
	return max(lo, min(v, hi))
}
