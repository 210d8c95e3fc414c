// Package tcelldrag adapts tcell mouse input for draggy, letting
// terminal applications drag cell-addressed boxes.
package tcelldrag

import (
	"github.com/gdamore/tcell/v2"

	"draggy"
)

// Box is a rectangle of terminal cells implementing draggy.Element.
// Positions are in cell coordinates; X/Y is the untranslated origin and
// OffX/OffY the active translation.
type Box struct {
	X, Y       float64
	OffX, OffY float64
	W, H       float64

	ParentBox *Box

	Style     tcell.Style
	MarkStyle tcell.Style
	marked    bool
	Rune      rune
}

func (b *Box) Translation() (float64, float64) { return b.OffX, b.OffY }

func (b *Box) AbsoluteBox() draggy.Rect {
	x := b.X + b.OffX
	y := b.Y + b.OffY
	return draggy.Rect{X0: x, Y0: y, X1: x + b.W, Y1: y + b.H}
}

func (b *Box) Fixed() bool { return false }

func (b *Box) Parent() draggy.Element {
	if b.ParentBox == nil {
		return nil
	}
	return b.ParentBox
}

func (b *Box) ApplyTranslation(x, y float64) {
	b.OffX, b.OffY = x, y
}

func (b *Box) ApplyPosition(x, y float64) {
	b.X, b.Y = x-b.OffX, y-b.OffY
}

// SetMark implements draggy.Marker for droppable hover styling.
func (b *Box) SetMark(name string, on bool) { b.marked = on }

// Draw fills the box's cells.
func (b *Box) Draw(s tcell.Screen) {
	st := b.Style
	if b.marked {
		st = b.MarkStyle
	}
	ch := b.Rune
	if ch == 0 {
		ch = ' '
	}
	r := b.AbsoluteBox()
	for y := int(r.Y0); y < int(r.Y1); y++ {
		for x := int(r.X0); x < int(r.X1); x++ {
			s.SetContent(x, y, ch, nil, st)
		}
	}
}

// root covers the whole terminal.
type root struct {
	s tcell.Screen
}

func (r *root) Translation() (float64, float64) { return 0, 0 }

func (r *root) AbsoluteBox() draggy.Rect {
	if r.s == nil {
		return draggy.Rect{}
	}
	w, h := r.s.Size()
	return draggy.Rect{X1: float64(w), Y1: float64(h)}
}

func (r *root) Fixed() bool                   { return false }
func (r *root) Parent() draggy.Element        { return nil }
func (r *root) ApplyTranslation(x, y float64) {}
func (r *root) ApplyPosition(x, y float64)    {}
