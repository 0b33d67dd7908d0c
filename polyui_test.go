package polyui

import "time"

// manualClock steps frame time deterministically in tests.
type manualClock struct {
	t time.Time
}

func newManualClock() *manualClock {
	return &manualClock{t: time.Unix(1000, 0)}
}

func (m *manualClock) Now() time.Time { return m.t }

func (m *manualClock) advance(d time.Duration) { m.t = m.t.Add(d) }

// recordRenderer satisfies Renderer and records the calls layout and draw
// issue, so tests can assert on clip and fill behavior without a GPU.
type recordRenderer struct {
	pushes, pops int
	scissors     []Rect
	scissorPops  int
	translates   []Vec2
	rects        []Rect
	rectColors   []Color
	alphas       []float32
}

func (r *recordRenderer) PushState() { r.pushes++ }
func (r *recordRenderer) PopState()  { r.pops++ }

func (r *recordRenderer) Translate(dx, dy float32) {
	r.translates = append(r.translates, Vec2{dx, dy})
}
func (r *recordRenderer) Rotate(radians float32) {}
func (r *recordRenderer) Scale(sx, sy float32)   {}
func (r *recordRenderer) Skew(x, y float32)      {}
func (r *recordRenderer) GlobalAlpha(a float32) {
	r.alphas = append(r.alphas, a)
}

func (r *recordRenderer) PushScissor(rect Rect) {
	r.scissors = append(r.scissors, rect)
}
func (r *recordRenderer) PopScissor() { r.scissorPops++ }

func (r *recordRenderer) DrawRect(rect Rect, c Color) {
	r.rects = append(r.rects, rect)
	r.rectColors = append(r.rectColors, c)
}
func (r *recordRenderer) DrawText(font, text string, x, y, size float32, c Color) {}
func (r *recordRenderer) DrawImage(texture uint32, rect Rect)                     {}
func (r *recordRenderer) MeasureText(font, text string, size float32) Size {
	return Size{W: float32(len(text)) * size / 2, H: size}
}

// testUI wires a tree to a manual clock and runs Setup, failing the test
// is left to the caller via the returned error.
func testUI(root *Component) (*UI, *manualClock, error) {
	clock := newManualClock()
	u := NewUI(root, Config{Clock: clock})
	err := u.Setup()
	return u, clock, err
}

// frame advances the clock and draws once, feeding the elapsed time into
// pending operations and scroll tweens.
func frame(u *UI, clock *manualClock, d time.Duration) *recordRenderer {
	clock.advance(d)
	r := &recordRenderer{}
	u.Draw(r)
	return r
}

func fillPainter(r Renderer, c *Component) {
	p := c.ScreenAt()
	s := c.Size()
	r.DrawRect(Rect{X: p.X, Y: p.Y, W: s.W, H: s.H}, c.Color())
}
