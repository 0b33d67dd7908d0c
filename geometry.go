package polyui

import "github.com/chewxy/math32"

// ============================================================================
// Vectors and Rectangles
// ============================================================================

// Vec2 is a 2D vector in pixels. Used for positions, sizes and paddings
// between rows. Vec2 values are passed by value and never mutated in place.
type Vec2 struct {
	X, Y float32
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{v.X + o.X, v.Y + o.Y}
}

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{v.X - o.X, v.Y - o.Y}
}

// Scale returns v with both components multiplied by f.
func (v Vec2) Scale(f float32) Vec2 {
	return Vec2{v.X * f, v.Y * f}
}

// IsZero reports whether both components are exactly zero.
func (v Vec2) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

// Size is a width/height pair in pixels.
type Size struct {
	W, H float32
}

// IsValid reports whether the size is usable for rendering and hit testing.
// A component must have a valid size before it is drawn.
func (s Size) IsValid() bool {
	return s.W > 0 && s.H > 0
}

// Insets is per-edge padding, used only by the positioner.
type Insets struct {
	Left, Top, Right, Bottom float32
}

// UniformInsets returns insets with the same value on every edge.
func UniformInsets(v float32) Insets {
	return Insets{v, v, v, v}
}

// Horizontal returns Left + Right.
func (i Insets) Horizontal() float32 { return i.Left + i.Right }

// Vertical returns Top + Bottom.
func (i Insets) Vertical() float32 { return i.Top + i.Bottom }

// Rect is an axis-aligned rectangle with its origin at the top-left.
type Rect struct {
	X, Y, W, H float32
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// The top and left edges are inclusive, the bottom and right exclusive.
func (r Rect) Contains(x, y float32) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Intersects reports whether the two rectangles overlap.
func (r Rect) Intersects(o Rect) bool {
	return r.X < o.X+o.W && o.X < r.X+r.W && r.Y < o.Y+o.H && o.Y < r.Y+r.H
}

// Intersect returns the overlapping region of the two rectangles.
// Returns a zero-size Rect when they do not overlap.
func (r Rect) Intersect(o Rect) Rect {
	x1 := math32.Max(r.X, o.X)
	y1 := math32.Max(r.Y, o.Y)
	x2 := math32.Min(r.X+r.W, o.X+o.W)
	y2 := math32.Min(r.Y+r.H, o.Y+o.H)
	if x2 <= x1 || y2 <= y1 {
		return Rect{}
	}
	return Rect{x1, y1, x2 - x1, y2 - y1}
}

// ============================================================================
// Alignment
// ============================================================================

// Axis selects the main layout direction of a container.
type Axis uint8

const (
	// Horizontal lays children out left-to-right; the cross axis is vertical.
	Horizontal Axis = iota

	// Vertical lays children out top-to-bottom; the cross axis is horizontal.
	Vertical
)

// MainAlign controls child placement along the main axis.
type MainAlign uint8

const (
	// MainStart packs children at the leading edge.
	MainStart MainAlign = iota

	// MainCenter centers the occupied span within the container.
	MainCenter

	// MainEnd packs children at the trailing edge.
	MainEnd

	// MainSpaceBetween distributes free space between items only.
	MainSpaceBetween

	// MainSpaceEvenly distributes free space before, between and after items.
	MainSpaceEvenly
)

// MainSpread is an alias for MainSpaceBetween kept for call sites that
// describe the intent ("spread the children") rather than the formula.
const MainSpread = MainSpaceBetween

// CrossAlign controls child placement along the cross axis.
type CrossAlign uint8

const (
	CrossStart CrossAlign = iota
	CrossCenter
	CrossEnd
)

// Alignment is the immutable layout descriptor of a container. Padding.X is
// the gap between items on the main axis; Padding.Y is the gap between rows
// when wrapping. MaxRowSize > 0 enables row wrapping with at most that many
// items per row.
type Alignment struct {
	Axis       Axis
	Main       MainAlign
	Cross      CrossAlign
	Padding    Vec2
	MaxRowSize int
}

// DefaultAlignment returns the alignment used when none is supplied:
// horizontal, centered on both axes, 6px gaps, no wrapping.
func DefaultAlignment() Alignment {
	return Alignment{
		Axis:    Horizontal,
		Main:    MainCenter,
		Cross:   CrossCenter,
		Padding: Vec2{6, 6},
	}
}

// main returns the main-axis component of (w, h) for the alignment's axis.
func (a Alignment) main(w, h float32) float32 {
	if a.Axis == Vertical {
		return h
	}
	return w
}

// cross returns the cross-axis component of (w, h) for the alignment's axis.
func (a Alignment) cross(w, h float32) float32 {
	if a.Axis == Vertical {
		return w
	}
	return h
}

// ============================================================================
// Color
// ============================================================================

// Color is a packed 0xRRGGBBAA color.
type Color uint32

const (
	// Transparent is fully transparent black, the zero color.
	Transparent Color = 0x00000000

	// White and Black with full opacity.
	White Color = 0xFFFFFFFF
	Black Color = 0x000000FF
)

// R, G, B, A return the individual 8-bit channels.
func (c Color) R() uint8 { return uint8(c >> 24) }
func (c Color) G() uint8 { return uint8(c >> 16) }
func (c Color) B() uint8 { return uint8(c >> 8) }
func (c Color) A() uint8 { return uint8(c) }

// RGBA builds a color from individual channels.
func RGBA(r, g, b, a uint8) Color {
	return Color(uint32(r)<<24 | uint32(g)<<16 | uint32(b)<<8 | uint32(a))
}

// Floats returns the channels as floats in [0, 1], the form renderer
// color scales want.
func (c Color) Floats() (r, g, b, a float32) {
	return float32(c.R()) / 255, float32(c.G()) / 255, float32(c.B()) / 255, float32(c.A()) / 255
}

// WithAlpha returns the color with its alpha channel replaced.
func (c Color) WithAlpha(a uint8) Color {
	return Color(uint32(c)&0xFFFFFF00 | uint32(a))
}

// Lerp linearly interpolates between two colors per channel. t is clamped
// to [0, 1].
func (c Color) Lerp(to Color, t float32) Color {
	if t <= 0 {
		return c
	}
	if t >= 1 {
		return to
	}
	lerpChan := func(a, b uint8) uint8 {
		return uint8(float32(a) + (float32(b)-float32(a))*t)
	}
	return RGBA(
		lerpChan(c.R(), to.R()),
		lerpChan(c.G(), to.G()),
		lerpChan(c.B(), to.B()),
		lerpChan(c.A(), to.A()),
	)
}
