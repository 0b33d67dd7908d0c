package polyui

// Painter renders the component's own content. It runs inside the
// component's transform, alpha and clip state; children paint on top
// afterwards.
type Painter func(r Renderer, c *Component)

// Sizer measures intrinsic content for components without an explicit
// size, e.g. by measuring text. Returning an invalid size defers to the
// container.
type Sizer func(c *Component) Size

// ============================================================================
// Draw walk
// ============================================================================

// draw paints the component and its subtree in order. Operations advance
// first so the frame shows their current values, then the render state is
// pushed: transforms about the component center, global alpha, and the
// scroll clip and translation. Transient operations are reverted and
// completed operations retired once the subtree has painted.
func (c *Component) draw(r Renderer, dt float32) {
	if !c.renders {
		return
	}
	c.applyOperations(dt)
	c.needsRedraw = false

	r.PushState()
	if c.rotation != 0 || c.skewX != 0 || c.skewY != 0 || c.scaleX != 1 || c.scaleY != 1 {
		cx := c.x + c.width/2
		cy := c.y + c.height/2
		r.Translate(cx, cy)
		if c.rotation != 0 {
			r.Rotate(c.rotation)
		}
		if c.skewX != 0 || c.skewY != 0 {
			r.Skew(c.skewX, c.skewY)
		}
		if c.scaleX != 1 || c.scaleY != 1 {
			r.Scale(c.scaleX, c.scaleY)
		}
		r.Translate(-cx, -cy)
	}
	if c.alpha != 1 {
		r.GlobalAlpha(c.alpha)
	}
	clipped := c.pushScroll(r, dt)

	if c.painter != nil {
		c.painter(r, c)
	}
	for _, k := range c.children {
		k.draw(r, dt)
	}

	c.popScroll(r, clipped)
	c.revertTransient()
	r.PopState()

	c.finishOperations()
}

// ============================================================================
// Style setters
// ============================================================================

// Color returns the base fill color.
func (c *Component) Color() Color { return c.color }

// SetColor sets the base fill color.
func (c *Component) SetColor(col Color) {
	if c.color != col {
		c.color = col
		c.flagRedraw()
	}
}

// Alpha returns the global opacity in [0, 1].
func (c *Component) Alpha() float32 { return c.alpha }

// SetAlpha sets the global opacity, clamped to [0, 1].
func (c *Component) SetAlpha(a float32) {
	if a < 0 {
		a = 0
	} else if a > 1 {
		a = 1
	}
	if c.alpha != a {
		c.alpha = a
		c.flagRedraw()
	}
}

// Rotation returns the rotation about the component center, in radians.
func (c *Component) Rotation() float32 { return c.rotation }

// SetRotation sets the rotation about the component center, in radians.
func (c *Component) SetRotation(radians float32) {
	if c.rotation != radians {
		c.rotation = radians
		c.flagRedraw()
	}
}

// SetScale sets the render scale about the component center. Scale is a
// paint-time effect only; layout and hit testing use the unscaled rect.
func (c *Component) SetScale(sx, sy float32) {
	if c.scaleX != sx || c.scaleY != sy {
		c.scaleX, c.scaleY = sx, sy
		c.flagRedraw()
	}
}

// SetSkew sets the render skew angles about the component center, in
// radians.
func (c *Component) SetSkew(x, y float32) {
	if c.skewX != x || c.skewY != y {
		c.skewX, c.skewY = x, y
		c.flagRedraw()
	}
}
