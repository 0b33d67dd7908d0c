// Package polyui is a retained-mode GUI component tree: a scene graph of
// drawable nodes owning layout state, styling, animation, scrolling and
// event dispatch. The tree is built once, initialized with Setup, then
// drawn every frame through a small Renderer interface; input events enter
// through UI.Accept and are hit-tested down to the deepest eligible node.
//
// Rasterization is not part of this package. A renderer backend implements
// the Renderer interface (see internal/ebitenrender for the Ebitengine
// backend shipped with the repo).
package polyui

import (
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/chewxy/math32"
)

var nextComponentID atomic.Uint64

func newComponentID() uint64 {
	return nextComponentID.Add(1)
}

// Component is a node in the tree. It owns its position, size, padding and
// children; the parent back-reference is a non-owning relation kept
// consistent with the owning children slice at all times.
//
// Tree-mutating methods (AddChild, RemoveChild, SetPosition, Rescale,
// operation management) take the component's mutex so they may be called
// from outside the frame loop. The per-frame draw and layout walks do not
// lock; they are driven by the single owner goroutine.
type Component struct {
	mu sync.Mutex

	id   uint64
	name string

	// Screen-space geometry, valid after layout. Moving a component
	// propagates the delta to all descendants so their cached absolute
	// positions stay consistent.
	x, y          float32
	width, height float32

	// Offsets given to At, kept so re-layout can re-derive the absolute
	// position of manually placed children from the parent origin.
	setX, setY float32

	// Viewport size for clipping/scrolling; zero means "track size".
	// Never exceeds the component size once layout has run.
	visibleW, visibleH float32

	padding   Insets
	alignment Alignment

	parent   *Component
	children []*Component

	// Flags
	setPosition   bool // explicit position; automatic placement skips it
	setSize       bool // explicit size; Recalculate keeps it
	layoutIgnored bool
	rawResize     bool // rescale per-axis instead of uniform closest-to-1
	initialized   bool
	positioned    bool
	renders       bool

	inputState InputState
	handlers   map[EventType][]EventHandler

	// Drawable state
	color          Color
	rotation       float32
	skewX, skewY   float32
	scaleX, scaleY float32
	alpha          float32
	needsRedraw    bool
	painter        Painter
	sizer          Sizer

	// Scroll state, nil unless the axis currently overflows
	xScroll, yScroll *scrollAxis

	// Pending operations, applied in insertion order around every render
	operations []*queuedOp

	ctx *Context
}

// New creates a component with no position or size; the positioner will
// place and, if possible, size it during Setup.
func New(name string) *Component {
	return &Component{
		id:          newComponentID(),
		name:        name,
		inputState:  StateNone,
		alignment:   DefaultAlignment(),
		renders:     true,
		alpha:       1,
		scaleX:      1,
		scaleY:      1,
		color:       White,
		needsRedraw: true,
	}
}

// ============================================================================
// Fluent construction
// ============================================================================

// At sets an explicit position. Components with an explicit position are
// skipped by automatic placement; manual overrides win.
func (c *Component) At(x, y float32) *Component {
	c.x, c.y = x, y
	c.setX, c.setY = x, y
	c.setPosition = true
	return c
}

// Sized sets an explicit size, exempting the component from self-sizing
// and from Recalculate's size reset.
func (c *Component) Sized(w, h float32) *Component {
	c.width, c.height = w, h
	c.setSize = true
	return c
}

// WithVisibleSize sets the viewport used for clipping and scrolling. It is
// clamped to the component size once layout has run.
func (c *Component) WithVisibleSize(w, h float32) *Component {
	c.visibleW, c.visibleH = w, h
	return c
}

// WithAlignment sets the layout descriptor for this container.
func (c *Component) WithAlignment(a Alignment) *Component {
	c.alignment = a
	return c
}

// WithPadding sets the inner padding consumed by the positioner.
func (c *Component) WithPadding(p Insets) *Component {
	c.padding = p
	return c
}

// WithColor sets the base fill color.
func (c *Component) WithColor(col Color) *Component {
	c.color = col
	return c
}

// WithPainter sets the function that renders this component's own content.
func (c *Component) WithPainter(p Painter) *Component {
	c.painter = p
	return c
}

// WithSizer sets the intrinsic sizing function used when the component has
// no explicit size (e.g. measuring text content).
func (c *Component) WithSizer(s Sizer) *Component {
	c.sizer = s
	return c
}

// WithChildren appends children during construction, before the tree is
// initialized. Use AddChild once the tree is live.
func (c *Component) WithChildren(kids ...*Component) *Component {
	for _, k := range kids {
		k.parent = c
		c.children = append(c.children, k)
	}
	return c
}

// IgnoreLayout excludes the component from automatic placement and from
// the positioner's size guarantees.
func (c *Component) IgnoreLayout() *Component {
	c.layoutIgnored = true
	return c
}

// WithRawResize makes Rescale apply independent per-axis factors instead
// of a single uniform factor.
func (c *Component) WithRawResize() *Component {
	c.rawResize = true
	return c
}

// ============================================================================
// Accessors
// ============================================================================

// ID returns the component's unique identifier.
func (c *Component) ID() uint64 { return c.id }

// Name returns the component's debug name.
func (c *Component) Name() string { return c.name }

// Parent returns the owning parent, or nil for a root.
func (c *Component) Parent() *Component { return c.parent }

// Children returns a copy of the children slice in render order (later
// children draw on top).
func (c *Component) Children() []*Component {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]*Component, len(c.children))
	copy(out, c.children)
	return out
}

// ChildCount returns the number of children without copying.
func (c *Component) ChildCount() int { return len(c.children) }

// IndexOf returns the index of child in the children slice, or -1.
func (c *Component) IndexOf(child *Component) int {
	for i, k := range c.children {
		if k == child {
			return i
		}
	}
	return -1
}

// ScreenAt returns the rest position, ignoring any in-flight scroll
// animation on ancestors.
func (c *Component) ScreenAt() Vec2 { return Vec2{c.x, c.y} }

// Size returns the laid-out size.
func (c *Component) Size() Size { return Size{c.width, c.height} }

// VisibleSize returns the clipping viewport: the explicit visible size
// when one was set, otherwise the component size.
func (c *Component) VisibleSize() Size {
	w, h := c.width, c.height
	if c.visibleW > 0 && c.visibleW < w {
		w = c.visibleW
	}
	if c.visibleH > 0 && c.visibleH < h {
		h = c.visibleH
	}
	return Size{w, h}
}

// ScreenRect returns the rest-position rectangle bounded by VisibleSize,
// the region used for hit testing and clipping.
func (c *Component) ScreenRect() Rect {
	s := c.VisibleSize()
	return Rect{c.x, c.y, s.W, s.H}
}

// Alignment returns the layout descriptor.
func (c *Component) Alignment() Alignment { return c.alignment }

// Padding returns the inner padding.
func (c *Component) Padding() Insets { return c.padding }

// Initialized reports whether Setup has run for this component.
func (c *Component) Initialized() bool { return c.initialized }

// Positioned reports whether the positioner has run since the last
// structural change.
func (c *Component) Positioned() bool { return c.positioned }

// Renders reports whether the component participates in drawing.
func (c *Component) Renders() bool { return c.renders }

// SetRenders toggles visibility for culling. Hidden components keep their
// layout slot but are skipped entirely by the draw walk and hit testing.
func (c *Component) SetRenders(v bool) {
	if c.renders != v {
		c.renders = v
		c.flagRedraw()
	}
}

// String returns "name#id" for error messages and tree dumps.
func (c *Component) String() string {
	return fmt.Sprintf("%s#%d", c.name, c.id)
}

// TreePath returns the ancestor chain down to this component, e.g.
// "root/sidebar/button#12". Used in every structural error message.
func (c *Component) TreePath() string {
	if c == nil {
		return "<nil>"
	}
	path := c.String()
	for p := c.parent; p != nil; p = p.parent {
		path = p.name + "/" + path
	}
	return path
}

// ============================================================================
// Geometry queries and mutation
// ============================================================================

// IsInside reports whether the screen-space point lies inside the
// component's visible rectangle.
func (c *Component) IsInside(x, y float32) bool {
	return c.ScreenRect().Contains(x, y)
}

// Intersects reports whether the component's visible rectangle overlaps r.
func (c *Component) Intersects(r Rect) bool {
	return c.ScreenRect().Intersects(r)
}

// SetPosition moves the component to an absolute position, propagating the
// delta to all descendants so their cached screen positions stay valid.
func (c *Component) SetPosition(x, y float32) {
	c.mu.Lock()
	dx, dy := x-c.x, y-c.y
	c.mu.Unlock()
	if dx == 0 && dy == 0 {
		return
	}
	c.MoveBy(dx, dy)
}

// MoveBy shifts the component and its whole subtree by (dx, dy).
func (c *Component) MoveBy(dx, dy float32) {
	c.mu.Lock()
	c.moveBy(dx, dy)
	c.mu.Unlock()
	c.flagRedraw()
}

func (c *Component) moveBy(dx, dy float32) {
	c.x += dx
	c.y += dy
	for _, k := range c.children {
		k.moveBy(dx, dy)
	}
}

// SetSize sets an explicit size. The size becomes sticky: Recalculate will
// no longer reset it.
func (c *Component) SetSize(w, h float32) {
	c.mu.Lock()
	c.width, c.height = w, h
	c.setSize = true
	c.mu.Unlock()
	c.flagRedraw()
}

// Rescale multiplies position, size and active scroll targets of the whole
// subtree. Unless the component was created with raw resizing, the factor
// closest to 1 of the two is applied uniformly to both axes to avoid
// aspect distortion.
func (c *Component) Rescale(sx, sy float32) {
	c.mu.Lock()
	c.rescale(sx, sy)
	c.mu.Unlock()
	c.flagRedraw()
}

func (c *Component) rescale(sx, sy float32) {
	if !c.rawResize {
		if math32.Abs(sx-1) > math32.Abs(sy-1) {
			sx = sy
		} else {
			sy = sx
		}
	}
	c.x *= sx
	c.y *= sy
	c.width *= sx
	c.height *= sy
	if c.visibleW > 0 {
		c.visibleW *= sx
	}
	if c.visibleH > 0 {
		c.visibleH *= sy
	}
	if c.xScroll != nil {
		c.xScroll.rescale(sx)
	}
	if c.yScroll != nil {
		c.yScroll.rescale(sy)
	}
	for _, k := range c.children {
		k.rescale(sx, sy)
	}
}

// displayedAt returns the position the component is currently drawn at,
// including in-flight scroll offsets of every ancestor.
func (c *Component) displayedAt() Vec2 {
	x, y := c.x, c.y
	for p := c.parent; p != nil; p = p.parent {
		if p.xScroll != nil {
			x += p.xScroll.current
		}
		if p.yScroll != nil {
			y += p.yScroll.current
		}
	}
	return Vec2{x, y}
}

// ============================================================================
// Lifecycle
// ============================================================================

// Setup initializes the subtree exactly once and runs the positioner.
// Calling it again is a no-op. Components added to an initialized parent
// are set up automatically by AddChild.
func (c *Component) Setup(ctx *Context) error {
	if c.initialized {
		return nil
	}
	c.initialize(ctx)
	return c.Position()
}

// initialize assigns the context and fires Init depth-first, children
// before self. It does not lay anything out.
func (c *Component) initialize(ctx *Context) {
	if c.initialized {
		return
	}
	c.ctx = ctx
	c.initialized = true
	for _, k := range c.children {
		k.initialize(ctx)
	}
	e := &Event{Type: EventInit, Target: c}
	c.accept(e)
	// One-shot initializers never fire again; the chain can be reclaimed.
	if ctx != nil && ctx.Settings.ReclaimInitHandlers {
		delete(c.handlers, EventInit)
	}
}

// Position invokes the layout engine on this component and its children
// once. Every node in the walk re-evaluates its own scroll viewport.
func (c *Component) Position() error {
	if err := position(c); err != nil {
		return err
	}
	c.positioned = true
	c.flagRedraw()
	return nil
}

// Recalculate resets the size (unless explicitly set), re-runs the
// positioner and re-centers the component by the size delta so that
// growing or shrinking holds the center point fixed.
func (c *Component) Recalculate() error {
	if c.setSize {
		return c.Position()
	}
	oldW, oldH := c.width, c.height
	c.width, c.height = 0, 0
	if err := c.Position(); err != nil {
		return err
	}
	dx := (oldW - c.width) / 2
	dy := (oldH - c.height) / 2
	if dx != 0 || dy != 0 {
		c.moveBy(dx, dy)
	}
	return nil
}

// ============================================================================
// Tree mutation
// ============================================================================

// AddChild appends a child. A child that already has a parent must be
// removed from it first; adding the same instance twice fails with a
// DuplicateChildError.
//
// When the parent is already initialized the child is set up immediately,
// and either the parent is fully re-laid-out (recalculate=true) or the
// child is only offset by the parent's current position.
func (c *Component) AddChild(child *Component, recalculate bool) error {
	c.mu.Lock()
	if child.parent == c {
		c.mu.Unlock()
		return &DuplicateChildError{Parent: c, Child: child}
	}
	if child.parent != nil {
		owner := child.parent
		c.mu.Unlock()
		return &DuplicateChildError{Parent: c, Child: child, Owner: owner}
	}
	child.parent = c
	c.children = append(c.children, child)
	c.mu.Unlock()

	if c.initialized {
		child.initialize(c.ctx)
		if recalculate {
			if err := c.Recalculate(); err != nil {
				return err
			}
		} else {
			if err := child.Position(); err != nil {
				return err
			}
			child.MoveBy(c.x, c.y)
		}
	}
	c.flagRedraw()
	return nil
}

// RemoveChildAt detaches the child at the given index, drops its pending
// input registration, and optionally re-lays-out the parent.
func (c *Component) RemoveChildAt(index int, recalculate bool) error {
	c.mu.Lock()
	if index < 0 || index >= len(c.children) {
		c.mu.Unlock()
		return &IndexOutOfRangeError{Parent: c, Index: index}
	}
	child := c.children[index]
	c.children = append(c.children[:index], c.children[index+1:]...)
	child.parent = nil
	c.mu.Unlock()

	if c.ctx != nil && c.ctx.Dispatcher != nil {
		c.ctx.Dispatcher.forget(child)
	}
	if recalculate && c.initialized {
		return c.Recalculate()
	}
	c.flagRedraw()
	return nil
}

// RemoveChild detaches the given child. Fails with a NotFoundError when
// the argument is not an actual child.
func (c *Component) RemoveChild(child *Component, recalculate bool) error {
	c.mu.Lock()
	index := c.IndexOf(child)
	c.mu.Unlock()
	if index < 0 {
		return &NotFoundError{Parent: c, Child: child}
	}
	return c.RemoveChildAt(index, recalculate)
}

// Remove detaches the component from its parent. Fails with a
// NoParentError on a root.
func (c *Component) Remove(recalculate bool) error {
	if c.parent == nil {
		return &NoParentError{Node: c}
	}
	return c.parent.RemoveChild(c, recalculate)
}

// Replace swaps old for next at the same index, cross-fading between them:
// next fades in at old's current on-screen position (including any
// in-flight scroll offset) while old fades out as a layout-ignored overlay
// and is removed when the fade completes.
func (c *Component) Replace(old, next *Component) error {
	c.mu.Lock()
	index := c.IndexOf(old)
	if index < 0 {
		c.mu.Unlock()
		return &NotFoundError{Parent: c, Child: old}
	}
	shown := old.displayedAt()
	c.children[index] = next
	next.parent = c
	c.mu.Unlock()

	if !c.initialized {
		old.parent = nil
		return nil
	}

	next.initialize(c.ctx)
	if err := next.Position(); err != nil {
		return err
	}
	next.MoveBy(shown.X-next.x, shown.Y-next.y)

	// Cross-fade: old stays on top as an overlay until its fade finishes.
	old.layoutIgnored = true
	c.mu.Lock()
	c.children = append(c.children, old)
	c.mu.Unlock()

	next.alpha = 0
	next.Animate().Fade(1)
	queued := old.Animate().OnFinish(func() {
		_ = c.RemoveChild(old, false)
	}).Fade(0)
	if !queued {
		// Already invisible, nothing to fade; detach right away.
		_ = c.RemoveChild(old, false)
	}
	c.flagRedraw()
	return nil
}

// flagRedraw marks the component dirty and bubbles the flag to the root.
// The flag only ever bubbles true; draw clears it per node.
func (c *Component) flagRedraw() {
	for n := c; n != nil; n = n.parent {
		if n.needsRedraw {
			break
		}
		n.needsRedraw = true
	}
}

// NeedsRedraw reports whether the component or any descendant changed
// since it was last drawn.
func (c *Component) NeedsRedraw() bool { return c.needsRedraw }
