package polyui

import (
	"time"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// ============================================================================
// Operations
// ============================================================================

// Operation is a unit of per-frame work applied to a component before it
// paints. Apply advances the operation by dt seconds and reports whether
// it has completed; completed operations are removed after the frame.
//
// An operation that additionally implements Revert() is transient: its
// effect is undone after the component and its children have painted, so
// the retained state is only committed on the operation's final frame.
type Operation interface {
	Apply(dt float32) bool
}

// Reverter is the optional transient side of an Operation.
type Reverter interface {
	Revert()
}

// queuedOp pairs an operation with its completion callback and the
// done flag for the frame in flight.
type queuedOp struct {
	op       Operation
	onFinish func()
	done     bool
}

// AddOperation queues a custom operation on the component.
func (c *Component) AddOperation(op Operation) {
	c.mu.Lock()
	c.operations = append(c.operations, &queuedOp{op: op})
	c.mu.Unlock()
	c.flagRedraw()
}

// CancelOperations drops every pending operation without invoking
// completion callbacks. A transient effect already applied mid-frame is
// dropped along with its operation, so the draw walk cannot revert it:
// the value it wrote stays committed.
func (c *Component) CancelOperations() {
	c.mu.Lock()
	c.operations = nil
	c.mu.Unlock()
}

// HasOperations reports whether any operation is pending.
func (c *Component) HasOperations() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.operations) > 0
}

func (c *Component) addOperation(q *queuedOp) {
	c.mu.Lock()
	c.operations = append(c.operations, q)
	c.mu.Unlock()
	c.flagRedraw()
}

// applyOperations advances every pending operation by dt.
func (c *Component) applyOperations(dt float32) {
	for _, q := range c.operations {
		q.done = q.op.Apply(dt)
	}
}

// revertTransient undoes transient operations in reverse application
// order. A transient operation that completed this frame keeps its final
// value committed.
func (c *Component) revertTransient() {
	for i := len(c.operations) - 1; i >= 0; i-- {
		q := c.operations[i]
		if r, ok := q.op.(Reverter); ok && !q.done {
			r.Revert()
		}
	}
}

// finishOperations removes completed operations and runs their callbacks.
func (c *Component) finishOperations() {
	c.mu.Lock()
	kept := c.operations[:0]
	var callbacks []func()
	for _, q := range c.operations {
		if !q.done {
			kept = append(kept, q)
			continue
		}
		if q.onFinish != nil {
			callbacks = append(callbacks, q.onFinish)
		}
	}
	c.operations = kept
	c.mu.Unlock()
	for _, fn := range callbacks {
		fn()
	}
}

// ============================================================================
// Animation builder
// ============================================================================

// DefaultAnimationDuration is used when no theme is available.
const DefaultAnimationDuration = 200 * time.Millisecond

// OperationBuilder configures one animation before a terminal method
// (Move, Fade, Resize, Recolor, Rotate, Skew) queues it. Duration and
// easing default to the theme's animation settings.
type OperationBuilder struct {
	c        *Component
	duration time.Duration
	easing   ease.TweenFunc
	onFinish func()
}

// Animate starts building an animation on the component.
func (c *Component) Animate() *OperationBuilder {
	b := &OperationBuilder{c: c, duration: DefaultAnimationDuration, easing: ease.OutQuad}
	if c.ctx != nil && c.ctx.Theme != nil {
		b.duration = c.ctx.Theme.Duration()
		b.easing = c.ctx.Theme.EasingFunc()
	}
	return b
}

// Duration overrides the animation length. Zero applies the target value
// immediately.
func (b *OperationBuilder) Duration(d time.Duration) *OperationBuilder {
	b.duration = d
	return b
}

// Easing overrides the easing function.
func (b *OperationBuilder) Easing(fn ease.TweenFunc) *OperationBuilder {
	if fn != nil {
		b.easing = fn
	}
	return b
}

// EasingName overrides the easing function by name (see EasingByName).
// Unknown names keep the current easing.
func (b *OperationBuilder) EasingName(name string) *OperationBuilder {
	return b.Easing(EasingByName(name))
}

// OnFinish registers a callback invoked once when the animation completes.
func (b *OperationBuilder) OnFinish(fn func()) *OperationBuilder {
	b.onFinish = fn
	return b
}

func (b *OperationBuilder) seconds() float32 {
	return float32(b.duration.Seconds())
}

// instant applies the terminal value without queuing when duration is
// zero, running the completion callback synchronously.
func (b *OperationBuilder) instant(apply func()) bool {
	apply()
	if b.onFinish != nil {
		b.onFinish()
	}
	b.c.flagRedraw()
	return true
}

// Move animates the component (and its subtree) to the absolute screen
// position. Returns false when the component is already there.
func (b *OperationBuilder) Move(x, y float32) bool {
	c := b.c
	if x == c.x && y == c.y {
		return false
	}
	if b.duration <= 0 {
		return b.instant(func() { c.MoveBy(x-c.x, y-c.y) })
	}
	c.addOperation(&queuedOp{
		op: &moveOp{
			c:  c,
			tx: gween.New(c.x, x, b.seconds(), b.easing),
			ty: gween.New(c.y, y, b.seconds(), b.easing),
		},
		onFinish: b.onFinish,
	})
	return true
}

// Fade animates the alpha toward the target in [0, 1]. Returns false when
// the alpha already matches.
func (b *OperationBuilder) Fade(alpha float32) bool {
	c := b.c
	if alpha < 0 || alpha > 1 || alpha == c.alpha {
		return false
	}
	if b.duration <= 0 {
		return b.instant(func() { c.alpha = alpha })
	}
	c.addOperation(&queuedOp{
		op:       &fadeOp{c: c, t: gween.New(c.alpha, alpha, b.seconds(), b.easing)},
		onFinish: b.onFinish,
	})
	return true
}

// Resize animates the size toward the target. Returns false for a
// non-positive target or when the size already matches.
func (b *OperationBuilder) Resize(w, h float32) bool {
	c := b.c
	if !(Size{w, h}).IsValid() || (w == c.width && h == c.height) {
		return false
	}
	if b.duration <= 0 {
		return b.instant(func() { c.SetSize(w, h) })
	}
	c.addOperation(&queuedOp{
		op: &resizeOp{
			c:  c,
			tw: gween.New(c.width, w, b.seconds(), b.easing),
			th: gween.New(c.height, h, b.seconds(), b.easing),
		},
		onFinish: b.onFinish,
	})
	return true
}

// Recolor animates the base color toward the target. Returns false when
// the color already matches.
func (b *OperationBuilder) Recolor(col Color) bool {
	c := b.c
	if col == c.color {
		return false
	}
	if b.duration <= 0 {
		return b.instant(func() { c.color = col })
	}
	c.addOperation(&queuedOp{
		op: &recolorOp{
			c: c, from: c.color, to: col,
			t: gween.New(0, 1, b.seconds(), b.easing),
		},
		onFinish: b.onFinish,
	})
	return true
}

// Rotate animates toward the absolute rotation in radians. The rotation is
// transient: it is applied around each paint and committed only when the
// animation completes. Returns false when the rotation already matches.
func (b *OperationBuilder) Rotate(radians float32) bool {
	c := b.c
	if radians == c.rotation {
		return false
	}
	if b.duration <= 0 {
		return b.instant(func() { c.rotation = radians })
	}
	c.addOperation(&queuedOp{
		op:       &rotateOp{c: c, t: gween.New(c.rotation, radians, b.seconds(), b.easing)},
		onFinish: b.onFinish,
	})
	return true
}

// Skew animates toward the absolute skew angles in radians, transiently
// like Rotate. Returns false when both angles already match.
func (b *OperationBuilder) Skew(x, y float32) bool {
	c := b.c
	if x == c.skewX && y == c.skewY {
		return false
	}
	if b.duration <= 0 {
		return b.instant(func() { c.skewX, c.skewY = x, y })
	}
	c.addOperation(&queuedOp{
		op: &skewOp{
			c:  c,
			tx: gween.New(c.skewX, x, b.seconds(), b.easing),
			ty: gween.New(c.skewY, y, b.seconds(), b.easing),
		},
		onFinish: b.onFinish,
	})
	return true
}

// ============================================================================
// Built-in operations
// ============================================================================

type moveOp struct {
	c      *Component
	tx, ty *gween.Tween
}

func (o *moveOp) Apply(dt float32) bool {
	nx, doneX := o.tx.Update(dt)
	ny, doneY := o.ty.Update(dt)
	o.c.moveBy(nx-o.c.x, ny-o.c.y)
	return doneX && doneY
}

type fadeOp struct {
	c *Component
	t *gween.Tween
}

func (o *fadeOp) Apply(dt float32) bool {
	v, done := o.t.Update(dt)
	o.c.alpha = v
	return done
}

type resizeOp struct {
	c      *Component
	tw, th *gween.Tween
}

func (o *resizeOp) Apply(dt float32) bool {
	w, doneW := o.tw.Update(dt)
	h, doneH := o.th.Update(dt)
	o.c.width, o.c.height = w, h
	o.c.clampVisible()
	return doneW && doneH
}

type recolorOp struct {
	c        *Component
	from, to Color
	t        *gween.Tween
}

func (o *recolorOp) Apply(dt float32) bool {
	v, done := o.t.Update(dt)
	o.c.color = o.from.Lerp(o.to, v)
	return done
}

type rotateOp struct {
	c    *Component
	t    *gween.Tween
	prev float32
}

func (o *rotateOp) Apply(dt float32) bool {
	v, done := o.t.Update(dt)
	o.prev = o.c.rotation
	o.c.rotation = v
	return done
}

func (o *rotateOp) Revert() { o.c.rotation = o.prev }

type skewOp struct {
	c            *Component
	tx, ty       *gween.Tween
	prevX, prevY float32
}

func (o *skewOp) Apply(dt float32) bool {
	x, doneX := o.tx.Update(dt)
	y, doneY := o.ty.Update(dt)
	o.prevX, o.prevY = o.c.skewX, o.c.skewY
	o.c.skewX, o.c.skewY = x, y
	return doneX && doneY
}

func (o *skewOp) Revert() { o.c.skewX, o.c.skewY = o.prevX, o.prevY }
