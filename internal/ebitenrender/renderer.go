// Package ebitenrender implements the polyui Renderer on Ebitengine. One
// Renderer is reused across frames: call Begin with the frame's screen
// image, then hand the renderer to UI.Draw.
//
// Transforms compose scene-graph style: each Translate/Rotate/Scale/Skew
// applies innermost, before everything already pushed, which matches the
// tree walk pushing parent transforms before child ones. Scissors clip by
// drawing into SubImage views of the screen, so coordinates stay absolute.
package ebitenrender

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"log/slog"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"

	polyui "github.com/polyfrost/polyui-go"
)

type state struct {
	geom  ebiten.GeoM
	alpha float32
}

// Renderer draws a polyui tree onto an Ebitengine image.
type Renderer struct {
	screen *ebiten.Image

	geom   ebiten.GeoM
	alpha  float32
	states []state

	clips   []image.Rectangle
	targets []*ebiten.Image

	whitePixel *ebiten.Image

	fonts       map[string]*text.GoTextFaceSource
	textures    map[uint32]*ebiten.Image
	nextTexture uint32
}

// New creates an empty renderer. Fonts must be registered before any text
// draws.
func New() *Renderer {
	// A SubImage of a filled 3x3 keeps the sample away from bleeding
	// edges when the rect is transformed.
	base := ebiten.NewImage(3, 3)
	base.Fill(color.White)
	return &Renderer{
		alpha:      1,
		whitePixel: base.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image),
		fonts:      make(map[string]*text.GoTextFaceSource),
		textures:   make(map[uint32]*ebiten.Image),
	}
}

// RegisterFont parses TTF/OTF data under the given family name, which
// themes reference through their font settings.
func (r *Renderer) RegisterFont(name string, ttf []byte) error {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(ttf))
	if err != nil {
		return fmt.Errorf("font %s: %w", name, err)
	}
	r.fonts[name] = src
	return nil
}

// RegisterTexture stores an image and returns the handle components pass
// to DrawImage.
func (r *Renderer) RegisterTexture(img *ebiten.Image) uint32 {
	r.nextTexture++
	r.textures[r.nextTexture] = img
	return r.nextTexture
}

// Begin starts a frame targeting screen, resetting all transform, alpha
// and clip state.
func (r *Renderer) Begin(screen *ebiten.Image) {
	r.screen = screen
	r.geom.Reset()
	r.alpha = 1
	r.states = r.states[:0]
	r.clips = r.clips[:0]
	r.targets = r.targets[:0]
}

func (r *Renderer) target() *ebiten.Image {
	if n := len(r.targets); n > 0 {
		return r.targets[n-1]
	}
	return r.screen
}

// PushState snapshots the transform and alpha.
func (r *Renderer) PushState() {
	r.states = append(r.states, state{geom: r.geom, alpha: r.alpha})
}

// PopState restores the last snapshot.
func (r *Renderer) PopState() {
	n := len(r.states)
	if n == 0 {
		return
	}
	s := r.states[n-1]
	r.states = r.states[:n-1]
	r.geom = s.geom
	r.alpha = s.alpha
}

// compose applies m innermost: points go through m first, then through
// everything already pushed.
func (r *Renderer) compose(m ebiten.GeoM) {
	m.Concat(r.geom)
	r.geom = m
}

func (r *Renderer) Translate(dx, dy float32) {
	var m ebiten.GeoM
	m.Translate(float64(dx), float64(dy))
	r.compose(m)
}

func (r *Renderer) Rotate(radians float32) {
	var m ebiten.GeoM
	m.Rotate(float64(radians))
	r.compose(m)
}

func (r *Renderer) Scale(sx, sy float32) {
	var m ebiten.GeoM
	m.Scale(float64(sx), float64(sy))
	r.compose(m)
}

func (r *Renderer) Skew(x, y float32) {
	var m ebiten.GeoM
	m.SetElement(0, 1, math.Tan(float64(x)))
	m.SetElement(1, 0, math.Tan(float64(y)))
	r.compose(m)
}

// GlobalAlpha multiplies the inherited opacity.
func (r *Renderer) GlobalAlpha(a float32) {
	r.alpha *= a
}

// PushScissor clips subsequent draws to rect, intersected with any clip
// already in effect. The rect passes through the current transform as an
// axis-aligned bounding box.
func (r *Renderer) PushScissor(rect polyui.Rect) {
	x0, y0 := r.geom.Apply(float64(rect.X), float64(rect.Y))
	x1, y1 := r.geom.Apply(float64(rect.X+rect.W), float64(rect.Y+rect.H))
	clip := image.Rect(int(math.Floor(min(x0, x1))), int(math.Floor(min(y0, y1))),
		int(math.Ceil(max(x0, x1))), int(math.Ceil(max(y0, y1))))
	if n := len(r.clips); n > 0 {
		clip = clip.Intersect(r.clips[n-1])
	} else if r.screen != nil {
		clip = clip.Intersect(r.screen.Bounds())
	}
	r.clips = append(r.clips, clip)
	r.targets = append(r.targets, r.screen.SubImage(clip).(*ebiten.Image))
}

// PopScissor restores the previous clip.
func (r *Renderer) PopScissor() {
	if n := len(r.clips); n > 0 {
		r.clips = r.clips[:n-1]
		r.targets = r.targets[:n-1]
	}
}

// DrawRect fills rect with c under the current transform and alpha.
func (r *Renderer) DrawRect(rect polyui.Rect, c polyui.Color) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(rect.W), float64(rect.H))
	op.GeoM.Translate(float64(rect.X), float64(rect.Y))
	op.GeoM.Concat(r.geom)
	r.scaleColor(&op.ColorScale, c)
	r.target().DrawImage(r.whitePixel, op)
}

// DrawText draws text with its top-left origin at (x, y).
func (r *Renderer) DrawText(font, s string, x, y, size float32, c polyui.Color) {
	src := r.fonts[font]
	if src == nil {
		slog.Warn("unregistered font", "font", font)
		return
	}
	face := &text.GoTextFace{Source: src, Size: float64(size)}
	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(x), float64(y))
	op.GeoM.Concat(r.geom)
	r.scaleColor(&op.ColorScale, c)
	text.Draw(r.target(), s, face, op)
}

// DrawImage draws a registered texture stretched to rect.
func (r *Renderer) DrawImage(texture uint32, rect polyui.Rect) {
	img := r.textures[texture]
	if img == nil {
		slog.Warn("unregistered texture", "texture", texture)
		return
	}
	b := img.Bounds()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(rect.W)/float64(b.Dx()), float64(rect.H)/float64(b.Dy()))
	op.GeoM.Translate(float64(rect.X), float64(rect.Y))
	op.GeoM.Concat(r.geom)
	op.ColorScale.ScaleAlpha(r.alpha)
	r.target().DrawImage(img, op)
}

// MeasureText returns the rendered extent of one line of text.
func (r *Renderer) MeasureText(font, s string, size float32) polyui.Size {
	src := r.fonts[font]
	if src == nil {
		return polyui.Size{}
	}
	face := &text.GoTextFace{Source: src, Size: float64(size)}
	m := face.Metrics()
	w, h := text.Measure(s, face, m.HAscent+m.HDescent+m.HLineGap)
	return polyui.Size{W: float32(w), H: float32(h)}
}

func (r *Renderer) scaleColor(cs *ebiten.ColorScale, c polyui.Color) {
	rf, gf, bf, af := c.Floats()
	a := af * r.alpha
	cs.Scale(rf*a, gf*a, bf*a, a)
}
