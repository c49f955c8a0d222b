// Package input defines the viewer's input events and buffers them per frame.
// Events come from a platform poller, see window.PollEvents.
package input

// EventType identifies an input event.
type EventType int

const (
	EventNone EventType = iota
	EventQuit
	EventWindowResize
	EventKeyDown
	EventKeyUp
	EventMouseMove
	EventMouseDown
	EventMouseUp
	EventMouseWheel
	EventMouseLeave
	EventDropFile
)

// Key is a platform-independent key code for the keys the viewer binds.
type Key int

const (
	KeyUnknown Key = iota
	KeyEscape
	KeyUp
	KeyDown
	KeyO
	KeyP
	KeyR
	KeyS
	KeyB
	KeyF12
)

// MouseButton identifies a pointer button.
type MouseButton uint8

const (
	ButtonNone MouseButton = iota
	ButtonLeft
	ButtonMiddle
	ButtonRight
	ButtonX1
	ButtonX2
)

// Event represents a processed input event.
type Event struct {
	Type   EventType
	Key    Key
	Width  int // Drawable size for EventWindowResize
	Height int
	MouseX float32
	MouseY float32
	Button MouseButton
	WheelY float32 // Negative when the wheel moves away from the user
	Path   string  // Dropped file for EventDropFile
}

// PollFunc appends pending platform events to dst and returns it.
type PollFunc func(dst []Event) []Event

// Input handles all input processing.
type Input struct {
	poll   PollFunc
	events []Event
}

// New creates a new input handler reading from poll.
func New(poll PollFunc) *Input {
	return &Input{
		poll:   poll,
		events: make([]Event, 0, 16),
	}
}

// Update polls pending events. Returns true if a quit was requested.
func (i *Input) Update() bool {
	i.events = i.poll(i.events[:0])
	for _, e := range i.events {
		if e.Type == EventQuit {
			return true
		}
	}
	return false
}

// Events returns the events from the last Update.
func (i *Input) Events() []Event {
	return i.events
}
