package camera

import (
	"github.com/Faultbox/heightview/pkg/math"
)

// Button identifies which pointer button started a drag.
type Button int

const (
	ButtonLeft  Button = iota // Pans the eye
	ButtonOther               // Rotates the model
)

// DragState is the controller state.
type DragState int

const (
	Idle DragState = iota
	Dragging
)

// Controller turns pointer and wheel events into ViewportState changes.
//
// A drag writes the delta since the press position into the state rather
// than accumulating per move, so every new drag starts from a zero offset.
type Controller struct {
	state    *ViewportState
	settings Settings

	drag   DragState
	button Button
	start  math.Vec2
}

// NewController creates a controller that mutates state.
func NewController(state *ViewportState, settings Settings) *Controller {
	return &Controller{
		state:    state,
		settings: settings,
	}
}

// State returns the current drag state.
func (c *Controller) State() DragState {
	return c.drag
}

// Button returns the button of the active drag.
func (c *Controller) Button() Button {
	return c.button
}

// HandlePress starts a drag at (x, y).
func (c *Controller) HandlePress(x, y float32, button Button) {
	c.drag = Dragging
	c.button = button
	c.start = math.Vec2{X: x, Y: y}
}

// HandleMove updates pan (left button) or rotation (other buttons) from the
// offset to the press position. It is ignored while idle.
func (c *Controller) HandleMove(x, y float32) {
	if c.drag != Dragging {
		return
	}

	delta := math.Vec2{X: x, Y: y}.Sub(c.start)
	if c.button == ButtonLeft {
		c.state.Pan = math.Vec2{
			X: delta.X / c.settings.PanDivisor,
			Y: -delta.Y / c.settings.PanDivisor,
		}
		return
	}

	c.state.RotationY = delta.X / c.settings.RotateDivisor
	c.state.RotationZ = delta.Y / c.settings.RotateDivisor
}

// HandleRelease ends the drag.
func (c *Controller) HandleRelease() {
	c.drag = Idle
}

// HandleLeave ends the drag when the pointer leaves the surface.
func (c *Controller) HandleLeave() {
	c.drag = Idle
}

// HandleScroll zooms by one step per event. deltaY < 0 (wheel away from
// the user) zooms in. The scale never drops below Settings.MinScale.
func (c *Controller) HandleScroll(deltaY float32) {
	if deltaY < 0 {
		c.state.Scale += c.settings.ZoomStep
	} else {
		c.state.Scale -= c.settings.ZoomStep
	}
	if c.state.Scale < c.settings.MinScale {
		c.state.Scale = c.settings.MinScale
	}
}

// Reset ends any drag and restores the initial viewport.
func (c *Controller) Reset() {
	c.drag = Idle
	c.state.Reset()
}
