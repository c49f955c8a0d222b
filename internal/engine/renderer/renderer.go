// Package renderer draws heightmap meshes with OpenGL.
package renderer

import (
	"errors"
	"fmt"
	"image"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/heightview/internal/engine/debug"
	"github.com/Faultbox/heightview/internal/engine/framebuffer"
	"github.com/Faultbox/heightview/internal/engine/shader"
	"github.com/Faultbox/heightview/internal/engine/shaders"
	"github.com/Faultbox/heightview/internal/engine/terrain"
	"github.com/Faultbox/heightview/internal/logger"
	"github.com/Faultbox/heightview/pkg/math"
)

// ClearColor is the background grey.
var ClearColor = [4]float32{0.2, 0.2, 0.2, 1}

// BoundsColor is the colour of the bounds overlay.
var BoundsColor = [3]float32{1, 0.8, 0.2}

// Config holds renderer configuration.
type Config struct {
	Width  int
	Height int
}

// Renderer uploads one mesh at a time and draws it with the heightmap shader.
type Renderer struct {
	config Config

	program       uint32
	locModelView  int32
	locProjection int32
	locPosition   uint32

	vao         uint32
	vbo         uint32
	vertexCount int32

	// Bounds overlay
	lineProgram       uint32
	locLineModelView  int32
	locLineProjection int32
	locLineColor      int32
	locLinePosition   uint32
	boundsVAO         uint32
	boundsVBO         uint32
	showBounds        bool
}

// New creates a new renderer.
// IMPORTANT: Must be called AFTER OpenGL context is created!
func New(cfg Config) (*Renderer, error) {
	r := &Renderer{
		config: cfg,
	}

	// Initialize OpenGL
	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	// Log OpenGL info
	version := gl.GoStr(gl.GetString(gl.VERSION))
	rendererName := gl.GoStr(gl.GetString(gl.RENDERER))
	logger.Info("OpenGL initialized",
		zap.String("version", version),
		zap.String("renderer", rendererName),
	)

	// Depth test on, culling off: both sides of the surface are visible
	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
	gl.Disable(gl.CULL_FACE)
	gl.ClearColor(ClearColor[0], ClearColor[1], ClearColor[2], ClearColor[3])

	if err := r.createProgram(); err != nil {
		r.Close()
		return nil, err
	}

	if err := r.createLineProgram(); err != nil {
		r.Close()
		return nil, err
	}

	gl.GenVertexArrays(1, &r.vao)
	gl.GenBuffers(1, &r.vbo)
	gl.GenVertexArrays(1, &r.boundsVAO)
	gl.GenBuffers(1, &r.boundsVBO)

	gl.Viewport(0, 0, int32(cfg.Width), int32(cfg.Height))

	if err := checkGL("renderer setup"); err != nil {
		r.Close()
		return nil, err
	}
	if r.vao == 0 || r.vbo == 0 || r.boundsVAO == 0 || r.boundsVBO == 0 {
		r.Close()
		return nil, errors.New("renderer setup: vertex array or buffer not allocated")
	}
	return r, nil
}

func (r *Renderer) createProgram() error {
	program, err := shader.CompileProgram(shaders.HeightmapVertexShader, shaders.HeightmapFragmentShader)
	if err != nil {
		return fmt.Errorf("heightmap shader: %w", err)
	}
	r.program = program

	if r.locModelView, err = shader.RequireUniform(program, "modelview"); err != nil {
		return err
	}
	if r.locProjection, err = shader.RequireUniform(program, "projection"); err != nil {
		return err
	}
	if r.locPosition, err = shader.RequireAttrib(program, "position"); err != nil {
		return err
	}

	logger.Debug("shader program created", zap.Uint32("program", program))
	return nil
}

func (r *Renderer) createLineProgram() error {
	program, err := shader.CompileProgram(shaders.HeightmapVertexShader, shaders.LinesFragmentShader)
	if err != nil {
		return fmt.Errorf("lines shader: %w", err)
	}
	r.lineProgram = program

	if r.locLineModelView, err = shader.RequireUniform(program, "modelview"); err != nil {
		return err
	}
	if r.locLineProjection, err = shader.RequireUniform(program, "projection"); err != nil {
		return err
	}
	if r.locLineColor, err = shader.RequireUniform(program, "color"); err != nil {
		return err
	}
	if r.locLinePosition, err = shader.RequireAttrib(program, "position"); err != nil {
		return err
	}
	return nil
}

// Upload replaces the vertex buffer with the mesh positions.
func (r *Renderer) Upload(mesh *terrain.Mesh) error {
	if mesh == nil {
		return errors.New("upload: nil mesh")
	}
	if len(mesh.Positions) != int(mesh.VertexCount)*3 {
		return fmt.Errorf("upload: %d floats for %d vertices", len(mesh.Positions), mesh.VertexCount)
	}

	gl.BindVertexArray(r.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)
	if mesh.VertexCount > 0 {
		gl.BufferData(gl.ARRAY_BUFFER, len(mesh.Positions)*4, gl.Ptr(mesh.Positions), gl.STATIC_DRAW)
	} else {
		gl.BufferData(gl.ARRAY_BUFFER, 0, nil, gl.STATIC_DRAW)
	}

	gl.VertexAttribPointerWithOffset(r.locPosition, 3, gl.FLOAT, false, 3*4, 0)
	gl.EnableVertexAttribArray(r.locPosition)

	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)

	r.vertexCount = mesh.VertexCount
	r.uploadBounds(mesh.Bounds)
	logger.Debug("mesh uploaded", zap.Int32("vertices", mesh.VertexCount))
	return nil
}

func (r *Renderer) uploadBounds(b terrain.Bounds) {
	lines := debug.BoundsWireframe(b, debug.BoundsPadding)

	gl.BindVertexArray(r.boundsVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.boundsVBO)
	gl.BufferData(gl.ARRAY_BUFFER, len(lines)*4, gl.Ptr(lines), gl.STATIC_DRAW)
	gl.VertexAttribPointerWithOffset(r.locLinePosition, 3, gl.FLOAT, false, 3*4, 0)
	gl.EnableVertexAttribArray(r.locLinePosition)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)
}

// SetBoundsVisible turns the mesh bounds overlay on or off.
func (r *Renderer) SetBoundsVisible(visible bool) {
	r.showBounds = visible
}

// Draw clears the target and draws the uploaded mesh.
func (r *Renderer) Draw(modelView, projection math.Mat4) {
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
	if r.vertexCount == 0 {
		return
	}

	gl.UseProgram(r.program)
	gl.UniformMatrix4fv(r.locModelView, 1, false, modelView.Ptr())
	gl.UniformMatrix4fv(r.locProjection, 1, false, projection.Ptr())

	gl.BindVertexArray(r.vao)
	gl.DrawArrays(gl.TRIANGLES, 0, r.vertexCount)

	if r.showBounds {
		gl.UseProgram(r.lineProgram)
		gl.UniformMatrix4fv(r.locLineModelView, 1, false, modelView.Ptr())
		gl.UniformMatrix4fv(r.locLineProjection, 1, false, projection.Ptr())
		gl.Uniform3f(r.locLineColor, BoundsColor[0], BoundsColor[1], BoundsColor[2])
		gl.BindVertexArray(r.boundsVAO)
		gl.DrawArrays(gl.LINES, 0, debug.BoundsWireframeVertexCount)
	}
	gl.BindVertexArray(0)
}

// Resize handles window resize.
func (r *Renderer) Resize(width, height int) {
	r.config.Width = width
	r.config.Height = height
	gl.Viewport(0, 0, int32(width), int32(height))
	logger.Debug("renderer resized",
		zap.Int("width", width),
		zap.Int("height", height),
	)
}

// Capture draws one frame into an offscreen framebuffer at the current
// size and returns it top row first.
func (r *Renderer) Capture(modelView, projection math.Mat4) (*image.RGBA, error) {
	w, h := int32(r.config.Width), int32(r.config.Height)
	fb, err := framebuffer.New(w, h)
	if err != nil {
		return nil, err
	}
	defer fb.Destroy()

	restore := fb.BindWithViewport()
	r.Draw(modelView, projection)
	pixels := fb.ReadPixels()
	restore()

	fw, fh := fb.Size()
	return debug.FlipPixels(pixels, int(fw), int(fh))
}

// Close cleans up renderer resources.
func (r *Renderer) Close() {
	logger.Info("closing renderer")
	if r.vao != 0 {
		gl.DeleteVertexArrays(1, &r.vao)
		r.vao = 0
	}
	if r.vbo != 0 {
		gl.DeleteBuffers(1, &r.vbo)
		r.vbo = 0
	}
	if r.boundsVAO != 0 {
		gl.DeleteVertexArrays(1, &r.boundsVAO)
		r.boundsVAO = 0
	}
	if r.boundsVBO != 0 {
		gl.DeleteBuffers(1, &r.boundsVBO)
		r.boundsVBO = 0
	}
	if r.program != 0 {
		gl.DeleteProgram(r.program)
		r.program = 0
	}
	if r.lineProgram != 0 {
		gl.DeleteProgram(r.lineProgram)
		r.lineProgram = 0
	}
}
