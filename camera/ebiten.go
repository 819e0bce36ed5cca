package camera

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
)

// Window reads the current window size from Ebitengine.
type Window struct{}

func (Window) WindowSize() (width, height float64) {
	w, h := ebiten.WindowSize()
	return float64(w), float64(h)
}

// Cursor reads the current cursor position from Ebitengine, in viewport
// pixel co-ordinates.
type Cursor struct{}

func (Cursor) PointerPosition() (x, y float64) {
	cx, cy := ebiten.CursorPosition()
	return float64(cx), float64(cy)
}

// GeoM extracts the 2D affine part of m as an ebiten.GeoM, ready for
// DrawImageOptions. The Z row and column are dropped; a camera matrix only
// ever carries identity there.
func GeoM(m mgl64.Mat4) ebiten.GeoM {
	var g ebiten.GeoM
	g.SetElement(0, 0, m.At(0, 0))
	g.SetElement(0, 1, m.At(0, 1))
	g.SetElement(0, 2, m.At(0, 3))
	g.SetElement(1, 0, m.At(1, 0))
	g.SetElement(1, 1, m.At(1, 1))
	g.SetElement(1, 2, m.At(1, 3))
	return g
}
