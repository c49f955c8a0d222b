package renderer

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
)

var glErrorNames = map[uint32]string{
	gl.INVALID_ENUM:                  "GL_INVALID_ENUM",
	gl.INVALID_VALUE:                 "GL_INVALID_VALUE",
	gl.INVALID_OPERATION:             "GL_INVALID_OPERATION",
	gl.INVALID_FRAMEBUFFER_OPERATION: "GL_INVALID_FRAMEBUFFER_OPERATION",
	gl.OUT_OF_MEMORY:                 "GL_OUT_OF_MEMORY",
}

// glError converts a glGetError code into an error naming the stage that
// raised it. GL_NO_ERROR yields nil.
func glError(stage string, code uint32) error {
	if code == gl.NO_ERROR {
		return nil
	}
	name, ok := glErrorNames[code]
	if !ok {
		name = fmt.Sprintf("0x%04X", code)
	}
	return fmt.Errorf("%s: %s", stage, name)
}

// maxQueuedErrors bounds draining in case a lost context keeps reporting.
const maxQueuedErrors = 16

// checkGL drains the GL error queue and reports the first error.
func checkGL(stage string) error {
	first := gl.GetError()
	code := first
	for i := 0; code != gl.NO_ERROR && i < maxQueuedErrors; i++ {
		code = gl.GetError()
	}
	return glError(stage, first)
}
