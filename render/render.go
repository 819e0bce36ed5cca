// Package render holds the active transform slot camera-aware draws go
// through: set the camera matrix, issue draw calls, reset.
package render

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/automoto/vantage/camera"
)

// Renderer forwards image draws to a destination, applying the active
// transform matrix when one is set.
//
// The transform slot is scoped state: every SetTransformMatrix must be
// paired with a ResetTransformMatrix on all exit paths (defer it), or the
// transform leaks onto unrelated draws.
type Renderer struct {
	transform ebiten.GeoM
	active    bool
}

func NewRenderer() *Renderer {
	return &Renderer{}
}

// SetTransformMatrix makes m the active transform for subsequent draws.
func (r *Renderer) SetTransformMatrix(m mgl64.Mat4) {
	r.transform = camera.GeoM(m)
	r.active = true
}

// ResetTransformMatrix deactivates the transform; subsequent draws land in
// raw viewport co-ordinates again.
func (r *Renderer) ResetTransformMatrix() {
	r.transform = ebiten.GeoM{}
	r.active = false
}

// Transform returns the active transform, if any.
func (r *Renderer) Transform() (ebiten.GeoM, bool) {
	return r.transform, r.active
}

// DrawImage draws src onto dst. The GeoM in opts is treated as world-space
// placement; the active transform, when set, is concatenated after it so the
// draw lands in viewport space.
func (r *Renderer) DrawImage(dst, src *ebiten.Image, opts *ebiten.DrawImageOptions) {
	if opts == nil {
		opts = &ebiten.DrawImageOptions{}
	}
	if !r.active {
		dst.DrawImage(src, opts)
		return
	}

	op := *opts
	op.GeoM.Concat(r.transform)
	dst.DrawImage(src, &op)
}
