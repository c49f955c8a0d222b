package camera

import (
	"fmt"
	"strings"
)

// ProjectionMode selects the projection used for a frame.
type ProjectionMode int

const (
	Perspective ProjectionMode = iota
	Orthographic
)

// String returns the lowercase mode name.
func (m ProjectionMode) String() string {
	switch m {
	case Perspective:
		return "perspective"
	case Orthographic:
		return "orthographic"
	default:
		return fmt.Sprintf("ProjectionMode(%d)", int(m))
	}
}

// Toggle returns the other mode.
func (m ProjectionMode) Toggle() ProjectionMode {
	if m == Perspective {
		return Orthographic
	}
	return Perspective
}

// ParseProjectionMode parses "perspective" or "orthographic" (case-insensitive).
func ParseProjectionMode(s string) (ProjectionMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "perspective", "persp":
		return Perspective, nil
	case "orthographic", "ortho":
		return Orthographic, nil
	default:
		return Perspective, fmt.Errorf("unknown projection mode %q", s)
	}
}

// Settings holds the fixed camera and interaction constants.
type Settings struct {
	FOVDegrees  float32 // Vertical field of view for perspective
	Near        float32
	Far         float32
	OrthoExtent float32 // Half height of the orthographic box; width is scaled by aspect
	EyeDistance float32 // Eye distance from the mesh origin along +Z

	ZoomStep      float32 // Scale change per wheel notch
	MinScale      float32 // Lower bound for the zoom scale
	PanDivisor    float32 // Pixels per world unit when panning
	RotateDivisor float32 // Pixels per radian when rotating
	HeightDivisor float32 // Height slider value that maps to a 1.0 multiplier
}

// DefaultSettings returns the stock camera constants.
func DefaultSettings() Settings {
	return Settings{
		FOVDegrees:    70,
		Near:          0.001,
		Far:           20,
		OrthoExtent:   2.8,
		EyeDistance:   5,
		ZoomStep:      0.1,
		MinScale:      0.1,
		PanDivisor:    50,
		RotateDivisor: 180,
		HeightDivisor: 500,
	}
}
