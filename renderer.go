package polyui

import "time"

// Renderer is the drawing surface the tree paints onto. The tree drives it
// with balanced Push/Pop pairs: PushState snapshots the current transform
// and alpha, PushScissor narrows the clip rectangle (intersecting with any
// scissor already in effect). Implementations live outside this package;
// internal/ebitenrender is the backend shipped with the repo.
type Renderer interface {
	PushState()
	PopState()

	Translate(dx, dy float32)
	Rotate(radians float32)
	Scale(sx, sy float32)
	Skew(x, y float32)
	GlobalAlpha(a float32)

	PushScissor(r Rect)
	PopScissor()

	DrawRect(r Rect, c Color)
	DrawText(font, text string, x, y, size float32, c Color)
	DrawImage(texture uint32, r Rect)
	MeasureText(font, text string, size float32) Size
}

// Clock abstracts frame timing so tests can step time manually.
type Clock interface {
	Now() time.Time
}

// SystemClock is the wall clock.
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }
