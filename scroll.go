package polyui

import "github.com/tanema/gween"

// ============================================================================
// Scrolling
// ============================================================================

// scrollAxis holds the scroll state of one axis. Offsets are negative
// translations of the content, clamped to [-(content-viewport), 0]. There
// is at most one tween per axis; a new scroll replaces it, retargeting
// from the current offset so chained wheel events accumulate smoothly.
type scrollAxis struct {
	from, to, current float32
	limit             float32 // content minus viewport, always >= 0
	tween             *gween.Tween
}

func (s *scrollAxis) clamp(v float32) float32 {
	if v < -s.limit {
		return -s.limit
	}
	if v > 0 {
		return 0
	}
	return v
}

func (s *scrollAxis) rescale(f float32) {
	s.from *= f
	s.to *= f
	s.current *= f
	s.limit *= f
	// The in-flight tween is dropped; the next scroll retargets from the
	// scaled current offset.
	s.tween = nil
}

// tryMakeScrolling re-evaluates overflow after layout. An axis whose
// content exceeds the explicit viewport gains scroll state (keeping any
// existing offset, re-clamped to the new limit); an axis that no longer
// overflows snaps back and drops its state.
func (c *Component) tryMakeScrolling() {
	if len(c.children) == 0 {
		c.xScroll, c.yScroll = nil, nil
		return
	}
	var maxX, maxY float32
	for _, k := range c.children {
		if right := k.x + k.width - c.x; right > maxX {
			maxX = right
		}
		if bottom := k.y + k.height - c.y; bottom > maxY {
			maxY = bottom
		}
	}
	contentW := maxX + c.padding.Right
	contentH := maxY + c.padding.Bottom

	c.xScroll = updateScrollAxis(c.xScroll, c.visibleW, contentW)
	c.yScroll = updateScrollAxis(c.yScroll, c.visibleH, contentH)
}

func updateScrollAxis(s *scrollAxis, viewport, content float32) *scrollAxis {
	if viewport <= 0 || content <= viewport {
		return nil
	}
	limit := content - viewport
	if s == nil {
		return &scrollAxis{limit: limit}
	}
	s.limit = limit
	s.current = s.clamp(s.current)
	s.to = s.clamp(s.to)
	return s
}

// Scrolls reports whether either axis currently overflows.
func (c *Component) Scrolls() bool {
	return c.xScroll != nil || c.yScroll != nil
}

// ScrollOffset returns the current (negative) content translation.
func (c *Component) ScrollOffset() Vec2 {
	var v Vec2
	if c.xScroll != nil {
		v.X = c.xScroll.current
	}
	if c.yScroll != nil {
		v.Y = c.yScroll.current
	}
	return v
}

// ScrollBy extends the scroll target by (dx, dy) and reports whether any
// offset actually changed. A delta that only pushes against the clamped
// bound is not absorbed, which lets wheel events fall through to a
// scrollable ancestor.
func (c *Component) ScrollBy(dx, dy float32) bool {
	changed := c.acceptScroll(dx, dy)
	if changed {
		c.flagRedraw()
	}
	return changed
}

func (c *Component) acceptScroll(dx, dy float32) bool {
	changed := false
	if c.xScroll != nil && dx != 0 {
		changed = c.retarget(c.xScroll, dx) || changed
	}
	if c.yScroll != nil && dy != 0 {
		changed = c.retarget(c.yScroll, dy) || changed
	}
	return changed
}

func (c *Component) retarget(s *scrollAxis, delta float32) bool {
	to := s.clamp(s.to + delta)
	if to == s.to {
		return false
	}
	s.from = s.current
	s.to = to
	dur := float32(DefaultAnimationDuration.Seconds())
	easing := EasingByName("out-quad")
	if c.ctx != nil && c.ctx.Theme != nil {
		dur = float32(c.ctx.Theme.Duration().Seconds())
		easing = c.ctx.Theme.EasingFunc()
	}
	s.tween = gween.New(s.current, to, dur, easing)
	return true
}

// pushScroll clips to the viewport and translates by the animated offsets.
// Returns whether a scissor was pushed so draw can pop it after the
// children paint.
func (c *Component) pushScroll(r Renderer, dt float32) bool {
	if !c.Scrolls() {
		return false
	}
	animating := false
	for _, s := range [2]*scrollAxis{c.xScroll, c.yScroll} {
		if s == nil || s.tween == nil {
			continue
		}
		v, done := s.tween.Update(dt)
		s.current = v
		if done {
			s.tween = nil
		} else {
			animating = true
		}
	}
	if animating {
		c.flagRedraw()
	}
	r.PushScissor(c.ScreenRect())
	off := c.ScrollOffset()
	r.Translate(off.X, off.Y)
	return true
}

func (c *Component) popScroll(r Renderer, pushed bool) {
	if pushed {
		r.PopScissor()
	}
}
