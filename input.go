package polyui

import "log/slog"

// ============================================================================
// Input state machine
// ============================================================================

// InputState tracks where a component sits in the pointer interaction
// lifecycle. Transitions are driven exclusively by the dispatcher and by
// SetEnabled; handlers observe them through the synthesized lifecycle
// events (MouseEntered, MouseExited, Enabled, Disabled).
type InputState uint8

const (
	// StateDisabled components receive no events at all and synthesize
	// no hover transitions until re-enabled.
	StateDisabled InputState = iota
	// StateNone is the idle state.
	StateNone
	// StateHovered means the pointer is inside the visible rectangle.
	StateHovered
	// StatePressed means a button went down inside and has not been
	// released yet.
	StatePressed
)

func (s InputState) String() string {
	switch s {
	case StateDisabled:
		return "disabled"
	case StateNone:
		return "none"
	case StateHovered:
		return "hovered"
	case StatePressed:
		return "pressed"
	}
	return "unknown"
}

// setInputState applies a transition and fires exactly the lifecycle
// events the edge implies. Entering disabled fires only Disabled, never a
// trailing MouseExited; leaving disabled fires only Enabled. The
// hovered/pressed edge is silent in both directions.
func (c *Component) setInputState(s InputState) {
	old := c.inputState
	if old == s {
		return
	}
	c.inputState = s

	switch {
	case s == StateDisabled:
		c.fireLifecycle(EventDisabled)
		if c.ctx != nil && c.ctx.Dispatcher != nil {
			c.ctx.Dispatcher.forget(c)
		}
	case old == StateDisabled:
		c.fireLifecycle(EventEnabled)
	case old == StateNone && (s == StateHovered || s == StatePressed):
		c.fireLifecycle(EventMouseEntered)
	case (old == StateHovered || old == StatePressed) && s == StateNone:
		c.fireLifecycle(EventMouseExited)
	}
	c.flagRedraw()
}

func (c *Component) fireLifecycle(t EventType) {
	e := &Event{Type: t, Target: c}
	c.accept(e)
}

// InputState returns the current interaction state.
func (c *Component) InputState() InputState { return c.inputState }

// Disabled reports whether the component is excluded from input.
func (c *Component) Disabled() bool { return c.inputState == StateDisabled }

// SetEnabled moves the component in or out of the disabled state. An
// already-enabled component stays in its current state.
func (c *Component) SetEnabled(enabled bool) {
	if enabled {
		if c.inputState == StateDisabled {
			c.setInputState(StateNone)
		}
		return
	}
	c.setInputState(StateDisabled)
}

// ============================================================================
// Handler registration
// ============================================================================

// On appends a handler to the component's chain for the event type.
// Handlers run in registration order; a handler returning true consumes
// the event and stops both the chain and any further bubbling.
func (c *Component) On(t EventType, h EventHandler) *Component {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.inputState == StateDisabled {
		slog.Warn("handler registered on disabled component, it will not fire until re-enabled",
			"component", c.TreePath(), "event", t)
	}
	if t == EventInit && c.initialized {
		slog.Warn("init handler registered after initialization, it will never fire",
			"component", c.TreePath())
	}
	if c.handlers == nil {
		c.handlers = make(map[EventType][]EventHandler)
	}
	c.handlers[t] = append(c.handlers[t], h)
	return c
}

// Off removes every handler for the event type.
func (c *Component) Off(t EventType) *Component {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.handlers, t)
	return c
}

// Handles reports whether at least one handler is registered for t.
func (c *Component) Handles(t EventType) bool {
	return len(c.handlers[t]) > 0
}

// accept runs the handler chain for the event. Disabled components drop
// everything except their own Disabled notification. Returns whether the
// event was consumed.
func (c *Component) accept(e *Event) bool {
	if c.inputState == StateDisabled && e.Type != EventDisabled {
		return false
	}
	for _, h := range c.handlers[e.Type] {
		if h(c, e) {
			e.Consume()
			return true
		}
	}
	return e.Consumed()
}
