package polyui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func row(w, h float32) *Component {
	return New("box").Sized(w, h)
}

func TestLayoutSpaceBetween(t *testing.T) {
	a, b, c := row(10, 10), row(10, 10), row(10, 10)
	root := New("root").
		At(0, 0).
		Sized(60, 20).
		WithAlignment(Alignment{Axis: Horizontal, Main: MainSpaceBetween, Cross: CrossStart}).
		WithChildren(a, b, c)
	require.NoError(t, root.Setup(nil))

	assert.Equal(t, float32(0), a.ScreenAt().X)
	assert.Equal(t, float32(25), b.ScreenAt().X)
	assert.Equal(t, float32(50), c.ScreenAt().X)
}

func TestLayoutSpaceEvenly(t *testing.T) {
	a, b := row(10, 10), row(10, 10)
	root := New("root").
		At(0, 0).
		Sized(60, 20).
		WithAlignment(Alignment{Axis: Horizontal, Main: MainSpaceEvenly, Cross: CrossStart}).
		WithChildren(a, b)
	require.NoError(t, root.Setup(nil))

	// Free space 40 split into three gaps.
	assert.InDelta(t, float32(40.0/3), a.ScreenAt().X, 0.001)
	assert.InDelta(t, float32(40.0/3*2+10), b.ScreenAt().X, 0.001)
}

func TestLayoutCenterBothAxes(t *testing.T) {
	a, b := row(20, 20), row(10, 10)
	root := New("root").
		At(0, 0).
		Sized(100, 50).
		WithAlignment(Alignment{Axis: Horizontal, Main: MainCenter, Cross: CrossCenter}).
		WithChildren(a, b)
	require.NoError(t, root.Setup(nil))

	assert.Equal(t, float32(35), a.ScreenAt().X)
	assert.Equal(t, float32(55), b.ScreenAt().X)
	assert.Equal(t, float32(15), a.ScreenAt().Y)
	assert.Equal(t, float32(20), b.ScreenAt().Y)
}

func TestLayoutMainEnd(t *testing.T) {
	a, b := row(10, 10), row(10, 10)
	root := New("root").
		At(0, 0).
		Sized(60, 20).
		WithAlignment(Alignment{Axis: Horizontal, Main: MainEnd, Cross: CrossStart, Padding: Vec2{X: 5}}).
		WithChildren(a, b)
	require.NoError(t, root.Setup(nil))

	assert.Equal(t, float32(35), a.ScreenAt().X)
	assert.Equal(t, float32(50), b.ScreenAt().X)
}

func TestLayoutVerticalAxis(t *testing.T) {
	a, b := row(10, 10), row(10, 10)
	root := New("root").
		At(0, 0).
		Sized(30, 60).
		WithAlignment(Alignment{Axis: Vertical, Main: MainStart, Cross: CrossStart, Padding: Vec2{X: 4}}).
		WithChildren(a, b)
	require.NoError(t, root.Setup(nil))

	assert.Equal(t, float32(0), a.ScreenAt().Y)
	assert.Equal(t, float32(14), b.ScreenAt().Y)
	assert.Equal(t, float32(0), b.ScreenAt().X)
}

func TestLayoutWrapByCount(t *testing.T) {
	a, b, c := row(10, 10), row(10, 10), row(10, 10)
	root := New("root").
		At(0, 0).
		Sized(60, 40).
		WithAlignment(Alignment{
			Axis: Horizontal, Main: MainStart, Cross: CrossStart,
			Padding: Vec2{Y: 4}, MaxRowSize: 2,
		}).
		WithChildren(a, b, c)
	require.NoError(t, root.Setup(nil))

	assert.Equal(t, float32(0), a.ScreenAt().Y)
	assert.Equal(t, float32(0), b.ScreenAt().Y)
	assert.Equal(t, float32(14), c.ScreenAt().Y)
	assert.Equal(t, float32(0), c.ScreenAt().X)
}

func TestLayoutWrapByWidth(t *testing.T) {
	a, b, c := row(25, 10), row(25, 10), row(25, 10)
	root := New("root").
		At(0, 0).
		Sized(60, 40).
		WithAlignment(Alignment{
			Axis: Horizontal, Main: MainStart, Cross: CrossStart,
			MaxRowSize: 10,
		}).
		WithChildren(a, b, c)
	require.NoError(t, root.Setup(nil))

	// Two 25-wide boxes fit in 60; the third wraps.
	assert.Equal(t, a.ScreenAt().Y, b.ScreenAt().Y)
	assert.Greater(t, c.ScreenAt().Y, a.ScreenAt().Y)
}

func TestLayoutInfersContainerSize(t *testing.T) {
	a, b := row(10, 10), row(10, 20)
	root := New("root").
		At(0, 0).
		WithAlignment(Alignment{Axis: Horizontal, Main: MainStart, Cross: CrossStart, Padding: Vec2{X: 5}}).
		WithPadding(UniformInsets(2)).
		WithChildren(a, b)
	require.NoError(t, root.Setup(nil))

	assert.Equal(t, Size{W: 29, H: 24}, root.Size())
	assert.Equal(t, float32(2), a.ScreenAt().X)
	assert.Equal(t, float32(17), b.ScreenAt().X)
}

func TestLayoutUnresolvedSize(t *testing.T) {
	leaf := New("leaf")
	err := leaf.Setup(nil)
	var unresolved *UnresolvedSizeError
	require.ErrorAs(t, err, &unresolved)
	assert.Same(t, leaf, unresolved.Node)
}

func TestLayoutToleratesUnsizedIgnoredChild(t *testing.T) {
	placeholder := New("placeholder").IgnoreLayout()
	flow := New("flow").Sized(10, 10)
	root := New("root").At(0, 0).Sized(60, 60).WithChildren(placeholder, flow)

	// An ignored child is exempt from the size guarantees; its unresolved
	// size must not abort the pass for the rest of the tree.
	require.NoError(t, root.Setup(nil))
	assert.True(t, flow.Positioned())
	assert.False(t, placeholder.Positioned())
}

func TestLayoutManualChildSkipsFlow(t *testing.T) {
	pinned := New("pinned").At(5, 5).Sized(10, 10)
	flow := row(10, 10)
	root := New("root").
		At(20, 30).
		Sized(60, 60).
		WithAlignment(Alignment{Axis: Horizontal, Main: MainStart, Cross: CrossStart}).
		WithChildren(pinned, flow)
	require.NoError(t, root.Setup(nil))

	// The pinned child sits at its offset from the parent origin.
	assert.Equal(t, Vec2{25, 35}, pinned.ScreenAt())
	// The flow child takes the first slot as if pinned were absent.
	assert.Equal(t, Vec2{20, 30}, flow.ScreenAt())
}

func TestLayoutIdempotent(t *testing.T) {
	a, b := row(10, 10), row(10, 10)
	root := New("root").
		At(0, 0).
		Sized(100, 50).
		WithChildren(a, b)
	require.NoError(t, root.Setup(nil))

	first := []Vec2{a.ScreenAt(), b.ScreenAt()}
	require.NoError(t, root.Position())
	require.NoError(t, root.Position())
	assert.Equal(t, first, []Vec2{a.ScreenAt(), b.ScreenAt()})
}

func TestLayoutIntrinsicSizer(t *testing.T) {
	label := New("label").WithSizer(func(c *Component) Size {
		return Size{W: 42, H: 14}
	})
	root := New("root").At(0, 0).WithChildren(label)
	require.NoError(t, root.Setup(nil))

	assert.Equal(t, Size{W: 42, H: 14}, label.Size())
	assert.True(t, root.Size().IsValid())
}

func TestRecalculateKeepsCenter(t *testing.T) {
	a := row(20, 20)
	root := New("root").
		WithAlignment(Alignment{Axis: Horizontal, Main: MainStart, Cross: CrossStart}).
		WithChildren(a)
	require.NoError(t, root.Setup(nil))
	root.SetPosition(100, 100)

	cx := root.ScreenAt().X + root.Size().W/2
	b := row(20, 20)
	require.NoError(t, root.AddChild(b, true))

	assert.Equal(t, cx, root.ScreenAt().X+root.Size().W/2)
	assert.True(t, root.Size().W > 20)
}
