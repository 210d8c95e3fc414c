// Package ebidrag provides Ebiten-backed collaborators for draggy: a
// sprite element with real geometry and a binder that polls Ebiten's
// mouse, touch and keyboard state once per frame.
package ebidrag

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"draggy"
)

// Sprite is a drawable draggable rectangle. Pos is its untranslated page
// position and Offset the active translation; the visible box is the sum
// of both.
type Sprite struct {
	Pos    draggy.Point
	Offset draggy.Point
	W, H   float64

	Img       *ebiten.Image
	Color     color.RGBA
	MarkColor color.RGBA
	marked    bool

	ParentEl *Sprite
	FixedPos bool

	// Focus marks the sprite as focus-sensitive so the default start
	// veto skips it, like a text input.
	Focus bool
}

func (s *Sprite) Translation() (float64, float64) { return s.Offset.X, s.Offset.Y }

func (s *Sprite) AbsoluteBox() draggy.Rect {
	x := s.Pos.X + s.Offset.X
	y := s.Pos.Y + s.Offset.Y
	return draggy.Rect{X0: x, Y0: y, X1: x + s.W, Y1: y + s.H}
}

func (s *Sprite) Fixed() bool { return s.FixedPos }

func (s *Sprite) Parent() draggy.Element {
	if s.ParentEl == nil {
		return nil
	}
	return s.ParentEl
}

func (s *Sprite) ApplyTranslation(x, y float64) {
	s.Offset = draggy.Point{X: x, Y: y}
}

func (s *Sprite) ApplyPosition(x, y float64) {
	s.Pos = draggy.Point{X: x - s.Offset.X, Y: y - s.Offset.Y}
}

// SetMark implements draggy.Marker for droppable hover styling.
func (s *Sprite) SetMark(name string, on bool) { s.marked = on }

func (s *Sprite) Focusable() bool { return s.Focus }

// Draw renders the sprite at its current position.
func (s *Sprite) Draw(dst *ebiten.Image) {
	b := s.AbsoluteBox()
	if s.Img != nil {
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(b.X0, b.Y0)
		dst.DrawImage(s.Img, op)
		return
	}
	cl := s.Color
	if s.marked {
		cl = s.MarkColor
	}
	vector.DrawFilledRect(dst, float32(b.X0), float32(b.Y0),
		float32(b.Width()), float32(b.Height()), cl, false)
}

// Screen is the root element covering the window. Update its size from
// the game's Layout.
type Screen struct {
	W, H float64
}

func (s *Screen) Translation() (float64, float64) { return 0, 0 }
func (s *Screen) AbsoluteBox() draggy.Rect        { return draggy.Rect{X1: s.W, Y1: s.H} }
func (s *Screen) Fixed() bool                     { return false }
func (s *Screen) Parent() draggy.Element          { return nil }
func (s *Screen) ApplyTranslation(x, y float64)   {}
func (s *Screen) ApplyPosition(x, y float64)      {}
