package polyui

import "sync"

// ============================================================================
// Event Types
// ============================================================================

// EventType identifies the kind of event. Lifecycle events (Enabled,
// Disabled, Init, ThemeChanged) carry no payload; mouse and key events
// populate the corresponding fields of Event.
type EventType uint8

const (
	// Mouse events
	EventMouseEntered EventType = iota + 1
	EventMouseExited
	EventMouseMoved
	EventMousePressed
	EventMouseReleased
	EventMouseClicked
	EventMouseScrolled

	// Keyboard events, delivered to the focused component
	EventKeyPressed
	EventKeyReleased
	EventKeyTyped

	// Focus events
	EventFocusGained
	EventFocusLost

	// Lifecycle events
	EventEnabled
	EventDisabled
	EventInit
	EventThemeChanged
)

// String returns the event type name for debug output.
func (t EventType) String() string {
	switch t {
	case EventMouseEntered:
		return "MouseEntered"
	case EventMouseExited:
		return "MouseExited"
	case EventMouseMoved:
		return "MouseMoved"
	case EventMousePressed:
		return "MousePressed"
	case EventMouseReleased:
		return "MouseReleased"
	case EventMouseClicked:
		return "MouseClicked"
	case EventMouseScrolled:
		return "MouseScrolled"
	case EventKeyPressed:
		return "KeyPressed"
	case EventKeyReleased:
		return "KeyReleased"
	case EventKeyTyped:
		return "KeyTyped"
	case EventFocusGained:
		return "FocusGained"
	case EventFocusLost:
		return "FocusLost"
	case EventEnabled:
		return "Enabled"
	case EventDisabled:
		return "Disabled"
	case EventInit:
		return "Init"
	case EventThemeChanged:
		return "ThemeChanged"
	}
	return "Unknown"
}

// MouseButton identifies which mouse button was pressed.
type MouseButton uint8

const (
	MouseButtonNone MouseButton = iota
	MouseButtonLeft
	MouseButtonRight
	MouseButtonMiddle
)

// Modifiers is a bitmask of held modifier keys.
type Modifiers uint8

const (
	ModShift Modifiers = 1 << iota
	ModCtrl
	ModAlt
	ModSuper // Cmd on Mac, Win on Windows
)

func (m Modifiers) Shift() bool { return m&ModShift != 0 }
func (m Modifiers) Ctrl() bool  { return m&ModCtrl != 0 }
func (m Modifiers) Alt() bool   { return m&ModAlt != 0 }
func (m Modifiers) Super() bool { return m&ModSuper != 0 }

// ============================================================================
// Event
// ============================================================================

// Event is a single input or lifecycle event flowing through the tree.
// A flat struct is used for all event kinds to avoid interface dispatch on
// the hot path; unused fields are zero.
type Event struct {
	Type EventType

	// Screen coordinates for mouse events
	X, Y float32

	// Scroll deltas for EventMouseScrolled
	DeltaX, DeltaY float32

	Button    MouseButton
	Modifiers Modifiers

	// Key fields for keyboard events
	Key  string
	Char rune

	// Target is the deepest component the event was delivered to.
	// Set by the dispatcher before handlers run.
	Target *Component

	consumed bool
}

// Consume stops the handler chain and prevents further propagation.
func (e *Event) Consume() { e.consumed = true }

// Consumed reports whether a handler consumed the event.
func (e *Event) Consumed() bool { return e.consumed }

// NewMouseEvent creates a mouse event. Uses an object pool since move
// events fire on every frame the cursor travels.
func NewMouseEvent(t EventType, x, y float32, button MouseButton, mods Modifiers) *Event {
	e := eventPool.Get().(*Event)
	*e = Event{Type: t, X: x, Y: y, Button: button, Modifiers: mods}
	return e
}

// NewScrollEvent creates a mouse wheel event.
func NewScrollEvent(x, y, deltaX, deltaY float32, mods Modifiers) *Event {
	e := eventPool.Get().(*Event)
	*e = Event{Type: EventMouseScrolled, X: x, Y: y, DeltaX: deltaX, DeltaY: deltaY, Modifiers: mods}
	return e
}

// NewKeyEvent creates a keyboard event.
func NewKeyEvent(t EventType, key string, char rune, mods Modifiers) *Event {
	e := eventPool.Get().(*Event)
	*e = Event{Type: t, Key: key, Char: char, Modifiers: mods}
	return e
}

// Release returns the event to the pool. Call after Accept returns.
func (e *Event) Release() {
	eventPool.Put(e)
}

var eventPool = sync.Pool{
	New: func() any { return &Event{} },
}

// EventHandler processes an event delivered to a component. Returning true
// consumes the event: later handlers in the chain do not run and the event
// does not propagate further.
type EventHandler func(c *Component, e *Event) bool
