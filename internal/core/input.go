package core

// EventType tags a discrete input event record.
type EventType int

const (
	EventNone          EventType = iota
	EventQuit                    // Window close / Ctrl+C - always stops the running scene
	EventKeyDown                 // Key pressed
	EventKeyUp                   // Key released (only from sources that report releases)
	EventPointerMove             // Pointer moved to (X, Y)
	EventPointerButton           // Pointer button changed state at (X, Y)
	EventUser                    // Caller-defined event, e.g. posted by an event timer
)

// String returns a human-readable name for the event type.
func (t EventType) String() string {
	switch t {
	case EventNone:
		return "None"
	case EventQuit:
		return "Quit"
	case EventKeyDown:
		return "KeyDown"
	case EventKeyUp:
		return "KeyUp"
	case EventPointerMove:
		return "PointerMove"
	case EventPointerButton:
		return "PointerButton"
	case EventUser:
		return "User"
	default:
		return "Unknown"
	}
}

// Event is one input record delivered to a scene during a tick.
// Payload fields are only meaningful for the matching event types.
type Event struct {
	Type EventType

	// Key is the key name for key events ("space", "up", "a", ...).
	Key string

	// X, Y is the pointer position in canvas coordinates for pointer events.
	X, Y float64

	// Button is the pointer button number (1 = primary) for button events.
	Button int
	// Pressed is true on button press, false on release.
	Pressed bool

	// Code identifies user events.
	Code int
}

// QuitEvent returns the reserved quit event.
func QuitEvent() Event {
	return Event{Type: EventQuit}
}

// KeyDown returns a key press event for the named key.
func KeyDown(key string) Event {
	return Event{Type: EventKeyDown, Key: key}
}

// PointerMove returns a pointer motion event.
func PointerMove(x, y float64) Event {
	return Event{Type: EventPointerMove, X: x, Y: y}
}

// PointerButton returns a pointer button event.
func PointerButton(x, y float64, button int, pressed bool) Event {
	return Event{Type: EventPointerButton, X: x, Y: y, Button: button, Pressed: pressed}
}

// UserEvent returns a caller-defined event with the given code.
func UserEvent(code int) Event {
	return Event{Type: EventUser, Code: code}
}

// Pointer tracks the pointer state accumulated from events.
type Pointer struct {
	X, Y    float64
	Buttons map[int]bool
}

// NewPointer creates a pointer with no buttons held.
func NewPointer() Pointer {
	return Pointer{Buttons: make(map[int]bool)}
}

// Apply folds a pointer event into the state. Other events are ignored.
func (p *Pointer) Apply(ev Event) {
	switch ev.Type {
	case EventPointerMove:
		p.X, p.Y = ev.X, ev.Y
	case EventPointerButton:
		p.X, p.Y = ev.X, ev.Y
		if p.Buttons == nil {
			p.Buttons = make(map[int]bool)
		}
		p.Buttons[ev.Button] = ev.Pressed
	}
}

// Held returns true if the given button is currently down.
func (p Pointer) Held(button int) bool {
	if p.Buttons == nil {
		return false
	}
	return p.Buttons[button]
}
