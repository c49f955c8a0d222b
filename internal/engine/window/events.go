package window

import (
	"github.com/veandco/go-sdl2/sdl"

	"github.com/Faultbox/heightview/internal/engine/input"
)

var keyMap = map[sdl.Scancode]input.Key{
	sdl.SCANCODE_ESCAPE: input.KeyEscape,
	sdl.SCANCODE_UP:     input.KeyUp,
	sdl.SCANCODE_DOWN:   input.KeyDown,
	sdl.SCANCODE_O:      input.KeyO,
	sdl.SCANCODE_P:      input.KeyP,
	sdl.SCANCODE_R:      input.KeyR,
	sdl.SCANCODE_S:      input.KeyS,
	sdl.SCANCODE_B:      input.KeyB,
	sdl.SCANCODE_F12:    input.KeyF12,
}

var buttonMap = map[uint8]input.MouseButton{
	sdl.BUTTON_LEFT:   input.ButtonLeft,
	sdl.BUTTON_MIDDLE: input.ButtonMiddle,
	sdl.BUTTON_RIGHT:  input.ButtonRight,
	sdl.BUTTON_X1:     input.ButtonX1,
	sdl.BUTTON_X2:     input.ButtonX2,
}

// PollEvents drains the SDL queue into dst. It satisfies input.PollFunc.
// Mouse coordinates are in window points; resize sizes are drawable pixels.
func (w *Window) PollEvents(dst []input.Event) []input.Event {
	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch e := event.(type) {
		case *sdl.QuitEvent:
			dst = append(dst, input.Event{Type: input.EventQuit})

		case *sdl.WindowEvent:
			switch e.Event {
			case sdl.WINDOWEVENT_SIZE_CHANGED:
				width, height := w.DrawableSize()
				dst = append(dst, input.Event{
					Type:   input.EventWindowResize,
					Width:  width,
					Height: height,
				})
			case sdl.WINDOWEVENT_LEAVE:
				dst = append(dst, input.Event{Type: input.EventMouseLeave})
			}

		case *sdl.KeyboardEvent:
			if e.Repeat != 0 && e.Keysym.Scancode != sdl.SCANCODE_UP && e.Keysym.Scancode != sdl.SCANCODE_DOWN {
				continue
			}
			key, ok := keyMap[e.Keysym.Scancode]
			if !ok {
				continue
			}
			typ := input.EventKeyDown
			if e.Type == sdl.KEYUP {
				typ = input.EventKeyUp
			}
			dst = append(dst, input.Event{Type: typ, Key: key})

		case *sdl.MouseMotionEvent:
			dst = append(dst, input.Event{
				Type:   input.EventMouseMove,
				MouseX: float32(e.X),
				MouseY: float32(e.Y),
			})

		case *sdl.MouseButtonEvent:
			typ := input.EventMouseDown
			if e.Type == sdl.MOUSEBUTTONUP {
				typ = input.EventMouseUp
			}
			dst = append(dst, input.Event{
				Type:   typ,
				MouseX: float32(e.X),
				MouseY: float32(e.Y),
				Button: buttonMap[e.Button],
			})

		case *sdl.MouseWheelEvent:
			// SDL reports positive Y for a wheel moved away from the user
			y := float32(e.Y)
			if e.Direction == sdl.MOUSEWHEEL_FLIPPED {
				y = -y
			}
			if y == 0 {
				continue
			}
			dst = append(dst, input.Event{Type: input.EventMouseWheel, WheelY: -y})

		case *sdl.DropEvent:
			if e.Type == sdl.DROPFILE && e.File != "" {
				dst = append(dst, input.Event{Type: input.EventDropFile, Path: e.File})
			}
		}
	}
	return dst
}
