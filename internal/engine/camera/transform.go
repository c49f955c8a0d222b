package camera

import (
	"github.com/Faultbox/heightview/pkg/math"
)

// Up hints for the look-at basis. The secondary hint is used only when the
// view direction is parallel to the primary one.
var (
	UpHint          = math.UnitY
	SecondaryUpHint = math.Vec3{X: 0, Y: 0, Z: -1}
)

// Frame carries the live UI values read once per rendered frame.
type Frame struct {
	Mode         ProjectionMode
	HeightSlider int     // Raw slider value; divided by Settings.HeightDivisor
	Aspect       float32 // Viewport width / height
}

// Transforms is the full set of matrices for one frame.
type Transforms struct {
	Model      math.Mat4
	View       math.Mat4
	Projection math.Mat4
	ModelView  math.Mat4 // View * Model
}

// HeightScale converts a slider value to a Y multiplier.
func (s Settings) HeightScale(slider int) float32 {
	return float32(slider) / s.HeightDivisor
}

// Eye returns the eye position for the current pan offset.
func (s Settings) Eye(state *ViewportState) math.Vec3 {
	return math.Vec3{X: state.Pan.X, Y: state.Pan.Y, Z: s.EyeDistance}
}

// ModelMatrix composes Scale(1,h,1) * Scale(k,k,k) * RotateZ * RotateY.
// Applied to a vertex, the Y rotation happens first and the height
// exaggeration last.
func ModelMatrix(state *ViewportState, heightScale float32) math.Mat4 {
	k := state.Scale
	return math.Chain(
		math.Scale(1, heightScale, 1),
		math.Scale(k, k, k),
		math.RotateZ(state.RotationZ),
		math.RotateY(state.RotationY),
	)
}

// ViewMatrix looks from eye down -Z. The target is one unit ahead of the
// eye, so eye and target never coincide whatever the pan offset.
func ViewMatrix(eye math.Vec3) math.Mat4 {
	target := eye.Add(math.Vec3{X: 0, Y: 0, Z: -1})
	return math.LookAt(eye, target, UpHint, SecondaryUpHint)
}

// ProjectionMatrix builds the projection for the given mode.
func ProjectionMatrix(mode ProjectionMode, aspect float32, s Settings) math.Mat4 {
	if mode == Orthographic {
		e := s.OrthoExtent
		return math.Ortho(-e*aspect, e*aspect, -e, e, s.Near, s.Far)
	}
	return math.Perspective(math.Radians(s.FOVDegrees), aspect, s.Near, s.Far)
}

// Matrices builds the model, view and projection matrices for one frame.
func Matrices(state *ViewportState, frame Frame, s Settings) Transforms {
	aspect := frame.Aspect
	if aspect <= 0 {
		aspect = 1
	}

	model := ModelMatrix(state, s.HeightScale(frame.HeightSlider))
	view := ViewMatrix(s.Eye(state))

	return Transforms{
		Model:      model,
		View:       view,
		Projection: ProjectionMatrix(frame.Mode, aspect, s),
		ModelView:  view.Mul(model),
	}
}
