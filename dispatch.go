package polyui

import "log/slog"

// ============================================================================
// Event dispatch
// ============================================================================

// Dispatcher owns pointer, press and focus state for one tree. Events
// enter through Accept; the dispatcher hit-tests the pointer down the
// tree, synthesizes enter/exit and click events, routes key events to the
// focused component, and gives unconsumed wheel events to the nearest
// scrollable ancestor.
type Dispatcher struct {
	root *Component

	mouseX, mouseY float32

	// hovered is the chain of components under the pointer, root first.
	hovered []*Component

	// pressed is the deepest component the active button went down on;
	// pressedChain is the hover chain captured at press time.
	pressed      *Component
	pressedChain []*Component

	focused *Component

	debug bool
}

// NewDispatcher creates a dispatcher for the tree rooted at root.
func NewDispatcher(root *Component, debug bool) *Dispatcher {
	return &Dispatcher{root: root, debug: debug}
}

// MousePos returns the last pointer position seen.
func (d *Dispatcher) MousePos() (x, y float32) { return d.mouseX, d.mouseY }

// Focused returns the component receiving key events, or nil.
func (d *Dispatcher) Focused() *Component { return d.focused }

// Hovered returns the deepest component under the pointer, or nil.
func (d *Dispatcher) Hovered() *Component {
	if len(d.hovered) == 0 {
		return nil
	}
	return d.hovered[len(d.hovered)-1]
}

// Accept routes one event through the tree and reports whether a handler
// consumed it.
func (d *Dispatcher) Accept(e *Event) bool {
	if d.root == nil {
		return false
	}
	switch e.Type {
	case EventMouseMoved:
		d.mouseX, d.mouseY = e.X, e.Y
		d.updateHover()
		return d.bubble(d.hovered, e)

	case EventMousePressed:
		d.mouseX, d.mouseY = e.X, e.Y
		d.updateHover()
		d.press()
		consumed := d.bubble(d.hovered, e)
		d.updateFocus()
		return consumed

	case EventMouseReleased:
		d.mouseX, d.mouseY = e.X, e.Y
		d.updateHover()
		consumed := d.bubble(d.hovered, e)
		d.release(e)
		return consumed

	case EventMouseScrolled:
		d.mouseX, d.mouseY = e.X, e.Y
		d.updateHover()
		if d.bubble(d.hovered, e) {
			return true
		}
		// Default scroll: the deepest scrollable ancestor that can still
		// move absorbs the wheel delta.
		for i := len(d.hovered) - 1; i >= 0; i-- {
			c := d.hovered[i]
			if c.Disabled() {
				continue
			}
			if c.ScrollBy(e.DeltaX, e.DeltaY) {
				if d.debug {
					slog.Debug("wheel absorbed", "component", c.TreePath(),
						"dx", e.DeltaX, "dy", e.DeltaY)
				}
				e.Consume()
				return true
			}
		}
		return false

	case EventKeyPressed, EventKeyReleased, EventKeyTyped:
		if e.Target == nil {
			e.Target = d.focused
		}
		for c := d.focused; c != nil; c = c.parent {
			if c.accept(e) {
				return true
			}
		}
		return false
	}

	// Everything else goes straight to the deepest hovered component.
	return d.bubble(d.hovered, e)
}

// bubble delivers deepest-first up the chain, stopping when a handler
// consumes the event. The target is the deepest enabled component.
func (d *Dispatcher) bubble(chain []*Component, e *Event) bool {
	for i := len(chain) - 1; i >= 0; i-- {
		c := chain[i]
		if c.Disabled() {
			continue
		}
		if e.Target == nil {
			e.Target = c
		}
		if c.accept(e) {
			return true
		}
	}
	return false
}

// hitChain walks from the root to the deepest visible component under the
// pointer, picking the topmost (last drawn) child at every level. The
// probe point shifts by each scrolling ancestor's offset because children
// keep their rest positions while drawn translated.
func (d *Dispatcher) hitChain(x, y float32) []*Component {
	chain := acquireComponentSlice()
	n := d.root
	if n == nil || !n.renders || !n.IsInside(x, y) {
		return chain
	}
	for {
		chain = append(chain, n)
		if n.xScroll != nil {
			x -= n.xScroll.current
		}
		if n.yScroll != nil {
			y -= n.yScroll.current
		}
		var next *Component
		for i := len(n.children) - 1; i >= 0; i-- {
			k := n.children[i]
			if k.renders && k.Size().IsValid() && k.IsInside(x, y) {
				next = k
				break
			}
		}
		if next == nil {
			return chain
		}
		n = next
	}
}

// updateHover recomputes the hover chain and fires the enter/exit
// transitions the diff implies. Exits run deepest-first. Disabled
// components occlude but never change state.
func (d *Dispatcher) updateHover() {
	next := d.hitChain(d.mouseX, d.mouseY)

	for i := len(d.hovered) - 1; i >= 0; i-- {
		c := d.hovered[i]
		if !containsComponent(next, c) && !c.Disabled() {
			c.setInputState(StateNone)
		}
	}
	for _, c := range next {
		if !containsComponent(d.hovered, c) && !c.Disabled() {
			if d.pressed == c {
				c.setInputState(StatePressed)
			} else {
				c.setInputState(StateHovered)
			}
		}
	}
	releaseComponentSlice(d.hovered)
	d.hovered = next
}

// press captures the hover chain and moves it to the pressed state.
func (d *Dispatcher) press() {
	releaseComponentSlice(d.pressedChain)
	d.pressedChain = acquireComponentSlice()
	d.pressedChain = append(d.pressedChain, d.hovered...)

	d.pressed = nil
	for i := len(d.hovered) - 1; i >= 0; i-- {
		if !d.hovered[i].Disabled() {
			d.pressed = d.hovered[i]
			break
		}
	}
	for _, c := range d.hovered {
		if !c.Disabled() {
			c.setInputState(StatePressed)
		}
	}
	if d.debug && d.pressed != nil {
		slog.Debug("press", "component", d.pressed.TreePath())
	}
}

// release returns pressed components to hovered or idle and synthesizes a
// click when the button goes up over the component it went down on.
func (d *Dispatcher) release(src *Event) {
	for _, c := range d.pressedChain {
		if c.Disabled() {
			continue
		}
		if containsComponent(d.hovered, c) {
			c.setInputState(StateHovered)
		} else {
			c.setInputState(StateNone)
		}
	}

	target := d.Hovered()
	if d.pressed != nil && target == d.pressed {
		click := NewMouseEvent(EventMouseClicked, src.X, src.Y, src.Button, src.Modifiers)
		d.bubble(d.hovered, click)
		click.Release()
	}
	d.pressed = nil
	releaseComponentSlice(d.pressedChain)
	d.pressedChain = nil
}

// updateFocus moves key focus to the deepest pressed component that wants
// it; pressing empty space or a non-focusable area blurs.
func (d *Dispatcher) updateFocus() {
	for i := len(d.hovered) - 1; i >= 0; i-- {
		c := d.hovered[i]
		if c.Disabled() {
			continue
		}
		if focusable(c) {
			d.Focus(c)
			return
		}
	}
	d.Blur()
}

func focusable(c *Component) bool {
	return c.Handles(EventFocusGained) || c.Handles(EventKeyPressed) ||
		c.Handles(EventKeyReleased) || c.Handles(EventKeyTyped)
}

// Focus moves key focus to c, firing FocusLost then FocusGained.
func (d *Dispatcher) Focus(c *Component) {
	if d.focused == c {
		return
	}
	d.Blur()
	d.focused = c
	if c != nil {
		c.fireLifecycle(EventFocusGained)
	}
}

// Blur clears key focus, firing FocusLost on the previous holder.
func (d *Dispatcher) Blur() {
	if d.focused == nil {
		return
	}
	old := d.focused
	d.focused = nil
	old.fireLifecycle(EventFocusLost)
}

// forget drops every reference into a removed or disabled subtree so stale
// pointers never receive synthesized events.
func (d *Dispatcher) forget(c *Component) {
	for i, h := range d.hovered {
		if h == c {
			d.hovered = d.hovered[:i]
			break
		}
	}
	if d.pressed != nil && isWithin(d.pressed, c) {
		d.pressed = nil
	}
	for i, p := range d.pressedChain {
		if p == c {
			d.pressedChain = d.pressedChain[:i]
			break
		}
	}
	if d.focused != nil && isWithin(d.focused, c) {
		d.focused = nil
	}
}

// isWithin reports whether n is root or one of its descendants.
func isWithin(n, root *Component) bool {
	for ; n != nil; n = n.parent {
		if n == root {
			return true
		}
	}
	return false
}

func containsComponent(list []*Component, c *Component) bool {
	for _, x := range list {
		if x == c {
			return true
		}
	}
	return false
}
