package polyui

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tanema/gween/ease"
)

func animRoot(t *testing.T) (*UI, *manualClock, *Component) {
	t.Helper()
	c := New("box").At(0, 0).Sized(40, 40)
	u, clock, err := testUI(c)
	require.NoError(t, err)
	frame(u, clock, 0) // prime the frame timer
	return u, clock, c
}

func TestFadeAnimates(t *testing.T) {
	u, clock, c := animRoot(t)
	done := false

	ok := c.Animate().
		Duration(200 * time.Millisecond).
		Easing(ease.Linear).
		OnFinish(func() { done = true }).
		Fade(0)
	require.True(t, ok)

	frame(u, clock, 100*time.Millisecond)
	assert.InDelta(t, 0.5, c.Alpha(), 0.01)
	assert.False(t, done)

	frame(u, clock, 200*time.Millisecond)
	assert.Equal(t, float32(0), c.Alpha())
	assert.True(t, done)
	assert.False(t, c.HasOperations())
}

func TestMoveAnimatesSubtree(t *testing.T) {
	child := New("child").Sized(10, 10)
	box := New("box").At(0, 0).Sized(40, 40).WithChildren(child)
	u, clock, err := testUI(box)
	require.NoError(t, err)
	frame(u, clock, 0)
	childStart := child.ScreenAt()

	require.True(t, box.Animate().Duration(100*time.Millisecond).Move(60, 0))
	frame(u, clock, time.Second)

	assert.Equal(t, Vec2{60, 0}, box.ScreenAt())
	assert.Equal(t, Vec2{childStart.X + 60, childStart.Y}, child.ScreenAt())
}

func TestInstantWhenDurationZero(t *testing.T) {
	_, _, c := animRoot(t)
	done := false

	ok := c.Animate().Duration(0).OnFinish(func() { done = true }).Fade(0)

	assert.True(t, ok)
	assert.True(t, done)
	assert.Equal(t, float32(0), c.Alpha())
	assert.False(t, c.HasOperations())
}

func TestAnimationPreconditions(t *testing.T) {
	_, _, c := animRoot(t)

	tests := []struct {
		name  string
		start func() bool
	}{
		{"fade to current alpha", func() bool { return c.Animate().Fade(1) }},
		{"fade out of range", func() bool { return c.Animate().Fade(2) }},
		{"move to current position", func() bool { return c.Animate().Move(0, 0) }},
		{"resize to zero", func() bool { return c.Animate().Resize(0, 10) }},
		{"resize to current size", func() bool { return c.Animate().Resize(40, 40) }},
		{"recolor to current color", func() bool { return c.Animate().Recolor(c.Color()) }},
		{"rotate to current angle", func() bool { return c.Animate().Rotate(0) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.False(t, tt.start())
			assert.False(t, c.HasOperations())
		})
	}
}

func TestRecolorReachesTarget(t *testing.T) {
	u, clock, c := animRoot(t)
	c.SetColor(Black)

	require.True(t, c.Animate().Duration(100*time.Millisecond).Recolor(White))
	frame(u, clock, 50*time.Millisecond)
	mid := c.Color()
	assert.NotEqual(t, Black, mid)
	assert.NotEqual(t, White, mid)

	frame(u, clock, 200*time.Millisecond)
	assert.Equal(t, White, c.Color())
}

func TestRotateIsTransientUntilDone(t *testing.T) {
	u, clock, c := animRoot(t)

	require.True(t, c.Animate().Duration(100*time.Millisecond).Easing(ease.Linear).Rotate(1))

	// Mid-animation the retained rotation reverts after each frame.
	frame(u, clock, 50*time.Millisecond)
	assert.Equal(t, float32(0), c.Rotation())

	// The final frame commits the target.
	frame(u, clock, 100*time.Millisecond)
	assert.Equal(t, float32(1), c.Rotation())
	assert.False(t, c.HasOperations())
}

func TestCancelOperations(t *testing.T) {
	u, clock, c := animRoot(t)
	done := false

	require.True(t, c.Animate().OnFinish(func() { done = true }).Fade(0))
	c.CancelOperations()
	frame(u, clock, time.Second)

	assert.False(t, done)
	assert.Equal(t, float32(1), c.Alpha())
	assert.False(t, c.HasOperations())
}

func TestCancelOperationsKeepsMidFrameTransient(t *testing.T) {
	c := New("box").At(0, 0).Sized(40, 40)
	_, _, err := testUI(c)
	require.NoError(t, err)

	require.True(t, c.Animate().
		Duration(100*time.Millisecond).
		Easing(ease.Linear).
		Rotate(1))
	c.applyOperations(0.05)
	c.CancelOperations()
	c.revertTransient()

	// Cancelling drops the operation before the revert walk sees it, so
	// the mid-frame rotation stays committed.
	assert.InDelta(t, 0.5, c.Rotation(), 0.01)
	assert.False(t, c.HasOperations())
}

func TestResizeClampsViewport(t *testing.T) {
	box := New("box").At(0, 0).Sized(100, 100).WithVisibleSize(100, 80)
	u, clock, err := testUI(box)
	require.NoError(t, err)
	frame(u, clock, 0)

	require.True(t, box.Animate().Duration(100*time.Millisecond).Resize(50, 50))
	frame(u, clock, time.Second)

	assert.Equal(t, Size{W: 50, H: 50}, box.Size())
	assert.Equal(t, Size{W: 50, H: 50}, box.VisibleSize())
}
