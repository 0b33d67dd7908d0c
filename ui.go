package polyui

import "time"

// ============================================================================
// UI facade
// ============================================================================

// Config collects everything a tree needs besides its components.
type Config struct {
	Theme    *Theme
	Clock    Clock
	Settings Settings
}

// DefaultConfig returns the default theme on the wall clock.
func DefaultConfig() Config {
	return Config{Theme: DefaultTheme(), Clock: SystemClock{}}
}

// UI ties a component tree to its context and dispatcher and drives the
// frame loop: Accept feeds input in, Draw paints a frame with the elapsed
// time since the previous one.
type UI struct {
	root *Component
	ctx  *Context
	disp *Dispatcher
	last time.Time
}

// NewUI wraps a tree rooted at root. Nil config fields fall back to
// DefaultConfig values.
func NewUI(root *Component, cfg Config) *UI {
	if cfg.Theme == nil {
		cfg.Theme = DefaultTheme()
	}
	if cfg.Clock == nil {
		cfg.Clock = SystemClock{}
	}
	disp := NewDispatcher(root, cfg.Settings.Debug)
	ctx := &Context{
		Theme:      cfg.Theme,
		Dispatcher: disp,
		Clock:      cfg.Clock,
		Settings:   cfg.Settings,
	}
	return &UI{root: root, ctx: ctx, disp: disp}
}

// Setup initializes and lays out the tree. Safe to call more than once;
// only the first call does work.
func (u *UI) Setup() error {
	return u.root.Setup(u.ctx)
}

// Root returns the tree root.
func (u *UI) Root() *Component { return u.root }

// Context returns the shared context.
func (u *UI) Context() *Context { return u.ctx }

// Dispatcher returns the event dispatcher, mainly for focus control.
func (u *UI) Dispatcher() *Dispatcher { return u.disp }

// Accept routes one input event through the tree.
func (u *UI) Accept(e *Event) bool {
	return u.disp.Accept(e)
}

// Draw paints a frame. The time delta fed to animations comes from the
// configured clock, so tests can step frames deterministically.
func (u *UI) Draw(r Renderer) {
	now := u.ctx.Clock.Now()
	var dt float32
	if !u.last.IsZero() {
		dt = float32(now.Sub(u.last).Seconds())
	}
	u.last = now
	u.root.draw(r, dt)
}

// NeedsRedraw reports whether anything changed since the last Draw.
func (u *UI) NeedsRedraw() bool { return u.root.needsRedraw }

// SetTheme swaps the active theme and notifies every component so it can
// re-derive colors and fonts.
func (u *UI) SetTheme(t *Theme) {
	if t == nil {
		return
	}
	u.ctx.Theme = t
	broadcastTheme(u.root)
	u.root.flagRedraw()
}

func broadcastTheme(c *Component) {
	c.fireLifecycle(EventThemeChanged)
	for _, k := range c.children {
		broadcastTheme(k)
	}
}

// Dump returns an indented listing of the tree for debugging.
func (u *UI) Dump() string {
	return Dump(u.root)
}
