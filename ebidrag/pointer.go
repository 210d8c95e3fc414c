package ebidrag

import (
	"runtime"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"draggy"
)

var isWasm = runtime.GOOS == "js" && runtime.GOARCH == "wasm"

// pointerPosition returns the current pointer position and the driving
// touch index, -1 when the mouse drives. If a touch is active, the first
// touch is used; otherwise the mouse cursor position is returned.
func pointerPosition() (float64, float64, int) {
	ids := ebiten.AppendTouchIDs(nil)
	if len(ids) > 0 {
		x, y := ebiten.TouchPosition(ids[0])
		return float64(x), float64(y), int(ids[0])
	}
	x, y := ebiten.CursorPosition()
	return float64(x), float64(y), -1
}

// pointerJustPressed reports whether the primary pointer was just
// pressed. Multi-touch does not start drags.
func pointerJustPressed() bool {
	ids := ebiten.AppendTouchIDs(nil)
	if len(ids) > 1 {
		return false
	}
	if len(inpututil.AppendJustPressedTouchIDs(nil)) > 0 {
		return true
	}
	return inpututil.IsMouseButtonJustPressed(ebiten.MouseButton0)
}

// pointerPressed reports whether the primary pointer is currently
// pressed.
func pointerPressed() bool {
	ids := ebiten.AppendTouchIDs(nil)
	if len(ids) > 1 {
		return false
	}
	if len(ids) == 1 {
		return true
	}
	return ebiten.IsMouseButtonPressed(ebiten.MouseButton0)
}

func readMods() draggy.ModKeys {
	return draggy.ModKeys{
		Shift: ebiten.IsKeyPressed(ebiten.KeyShift) ||
			ebiten.IsKeyPressed(ebiten.KeyShiftLeft) || ebiten.IsKeyPressed(ebiten.KeyShiftRight),
		Ctrl: ebiten.IsKeyPressed(ebiten.KeyControl) ||
			ebiten.IsKeyPressed(ebiten.KeyControlLeft) || ebiten.IsKeyPressed(ebiten.KeyControlRight),
		Alt: ebiten.IsKeyPressed(ebiten.KeyAlt) ||
			ebiten.IsKeyPressed(ebiten.KeyAltLeft) || ebiten.IsKeyPressed(ebiten.KeyAltRight),
	}
}
