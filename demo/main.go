// Command demo is a small Ebiten playground for draggy controllers:
// drag any box, flick the blue one for inertia, hold shift for sniper
// precision, and drop the green one on the outlined target. The red bar
// is locked to the x axis and wraps around.
package main

import (
	"fmt"
	"log"

	"github.com/dustin/go-humanize"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"golang.org/x/image/colornames"

	"draggy"
	"draggy/ebidrag"
)

const (
	winW = 800
	winH = 600
)

type game struct {
	screen *ebidrag.Screen
	binder *ebidrag.Binder

	free   *ebidrag.Sprite
	bar    *ebidrag.Sprite
	cargo  *ebidrag.Sprite
	zone   *ebidrag.Sprite
	status string
}

func newGame() *game {
	g := &game{
		screen: &ebidrag.Screen{W: winW, H: winH},
		status: "drag me",
	}
	g.binder = ebidrag.NewBinder(g.screen)

	g.zone = &ebidrag.Sprite{
		Pos: draggy.Point{X: 560, Y: 420}, W: 180, H: 120,
		Color:     colornames.Darkslategray,
		MarkColor: colornames.Darkolivegreen,
	}

	g.free = &ebidrag.Sprite{
		Pos: draggy.Point{X: 80, Y: 80}, W: 120, H: 80,
		Color: colornames.Steelblue,
	}
	free := draggy.New(g.free, g.binder, draggy.Options{
		Release:   true,
		Selection: draggy.NopSelection{},
	})
	free.Handler.Handle = func(ev draggy.Event) {
		switch ev.Name {
		case draggy.EventTrack, draggy.EventDragEnd:
			g.status = fmt.Sprintf("speed %s  angle %s",
				humanize.FtoaWithDigits(ev.Speed, 1),
				humanize.FtoaWithDigits(ev.Angle, 2))
		}
	}

	g.bar = &ebidrag.Sprite{
		Pos: draggy.Point{X: 80, Y: 260}, W: 160, H: 40,
		Color: colornames.Indianred,
	}
	draggy.New(g.bar, g.binder, draggy.Options{
		Axis:      draggy.AxisX,
		Repeat:    draggy.RepeatX,
		Selection: draggy.NopSelection{},
	})

	g.cargo = &ebidrag.Sprite{
		Pos: draggy.Point{X: 80, Y: 420}, W: 100, H: 100,
		Color: colornames.Seagreen,
	}
	// Only the cargo's center region is kept on screen, so its edges may
	// overhang while being carried to the zone.
	cargo := draggy.New(g.cargo, g.binder, draggy.Options{
		Threshold: []float64{4},
		Pin:       []float64{20, 20, 80, 80},
		Droppable: g.zone,
		Selection: draggy.NopSelection{},
	})
	cargo.Handler.Handle = func(ev draggy.Event) {
		switch ev.Name {
		case draggy.EventDragOver:
			g.status = "over the drop zone"
		case draggy.EventDragOut:
			g.status = "left the drop zone"
		case draggy.EventDrop:
			g.status = "dropped!"
		}
	}

	return g
}

func (g *game) Update() error {
	g.binder.Update()
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	screen.Fill(colornames.Black)
	g.zone.Draw(screen)
	g.free.Draw(screen)
	g.bar.Draw(screen)
	g.cargo.Draw(screen)
	ebitenutil.DebugPrintAt(screen, g.status, 8, 8)
}

func (g *game) Layout(w, h int) (int, int) {
	g.screen.W, g.screen.H = float64(w), float64(h)
	return w, h
}

func main() {
	ebiten.SetWindowSize(winW, winH)
	ebiten.SetWindowTitle("draggy demo")
	if err := ebiten.RunGame(newGame()); err != nil {
		log.Fatal(err)
	}
}
