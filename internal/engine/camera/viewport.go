// Package camera holds the interactive viewport state and builds the
// model, view and projection matrices from it.
package camera

import (
	"github.com/Faultbox/heightview/pkg/math"
)

// ViewportState is the camera state mutated by pointer and wheel input and
// read once per frame. It is owned by the render loop; the input controller
// and the matrix builder receive it by pointer.
type ViewportState struct {
	Scale     float32   // Uniform zoom factor
	RotationY float32   // Radians around the Y axis
	RotationZ float32   // Radians around the Z axis
	Pan       math.Vec2 // Eye offset in the view plane
}

// NewViewportState returns the initial, unrotated, unzoomed state.
func NewViewportState() *ViewportState {
	s := &ViewportState{}
	s.Reset()
	return s
}

// Reset restores the initial state.
func (s *ViewportState) Reset() {
	*s = ViewportState{Scale: 1}
}
