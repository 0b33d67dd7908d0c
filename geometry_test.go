package polyui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRectContains(t *testing.T) {
	r := Rect{X: 10, Y: 10, W: 20, H: 20}

	tests := []struct {
		name string
		x, y float32
		want bool
	}{
		{"inside", 15, 15, true},
		{"top-left corner", 10, 10, true},
		{"bottom-right corner excluded", 30, 30, false},
		{"right edge excluded", 30, 15, false},
		{"outside left", 5, 15, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, r.Contains(tt.x, tt.y))
		})
	}
}

func TestRectIntersect(t *testing.T) {
	a := Rect{X: 0, Y: 0, W: 10, H: 10}
	b := Rect{X: 5, Y: 5, W: 10, H: 10}

	assert.True(t, a.Intersects(b))
	assert.Equal(t, Rect{X: 5, Y: 5, W: 5, H: 5}, a.Intersect(b))

	c := Rect{X: 20, Y: 20, W: 5, H: 5}
	assert.False(t, a.Intersects(c))
}

func TestInsets(t *testing.T) {
	i := Insets{Left: 1, Top: 2, Right: 3, Bottom: 4}
	assert.Equal(t, float32(4), i.Horizontal())
	assert.Equal(t, float32(6), i.Vertical())
	assert.Equal(t, Insets{5, 5, 5, 5}, UniformInsets(5))
}

func TestSizeIsValid(t *testing.T) {
	assert.True(t, Size{1, 1}.IsValid())
	assert.False(t, Size{0, 1}.IsValid())
	assert.False(t, Size{1, 0}.IsValid())
	assert.False(t, Size{}.IsValid())
}

func TestColorChannels(t *testing.T) {
	c := RGBA(0x12, 0x34, 0x56, 0x78)
	assert.Equal(t, Color(0x12345678), c)
	assert.Equal(t, uint8(0x12), c.R())
	assert.Equal(t, uint8(0x34), c.G())
	assert.Equal(t, uint8(0x56), c.B())
	assert.Equal(t, uint8(0x78), c.A())
	assert.Equal(t, Color(0x123456FF), c.WithAlpha(0xFF))
}

func TestColorLerp(t *testing.T) {
	assert.Equal(t, Black, Black.Lerp(White, 0))
	assert.Equal(t, White, Black.Lerp(White, 1))
	mid := Black.Lerp(White, 0.5)
	assert.InDelta(t, 127, int(mid.R()), 1)
	assert.Equal(t, uint8(255), mid.A())
}

func TestColorFloats(t *testing.T) {
	r, g, b, a := White.Floats()
	assert.Equal(t, float32(1), r)
	assert.Equal(t, float32(1), g)
	assert.Equal(t, float32(1), b)
	assert.Equal(t, float32(1), a)
}
