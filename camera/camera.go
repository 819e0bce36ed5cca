// Package camera converts between world co-ordinates (where game objects
// live) and viewport co-ordinates (where rendering and input happen), via a
// cached affine transformation matrix driven by position, rotation and zoom.
package camera

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// WindowSizer reports the current window size in pixels. Inject a fake in
// tests; Window is the Ebitengine-backed implementation.
type WindowSizer interface {
	WindowSize() (width, height float64)
}

// PointerPositioner reports the current pointer position in viewport pixel
// co-ordinates. Inject a fake in tests; Cursor is the Ebitengine-backed
// implementation.
type PointerPositioner interface {
	PointerPosition() (x, y float64)
}

// Camera transforms the player's view of a scene.
//
// To apply the transformation, pass the result of Matrix to a renderer's
// set-transform entry point before issuing draw calls, and call the
// reset-transform entry point afterwards so the transform does not leak onto
// unrelated draws.
//
// The matrix is cached internally as an optimization. After adjusting any of
// the public fields, call Update to recalculate it; until then Matrix,
// Project and Unproject answer with results consistent with the previous
// field values. That staleness is the documented contract — there is no
// dirty flag and no automatic invalidation.
//
// A Camera is not safe for concurrent use. The intended pattern is the
// single-threaded per-frame sequence: mutate fields, call Update, then read
// the matrix and projections for the rest of the frame.
type Camera struct {
	// Position is the world-space point the camera is centered on.
	Position mgl64.Vec2

	// Rotation is the camera's rotation about its center, in radians.
	Rotation float64

	// Zoom is the magnification; 1 means no scaling. A zoom of zero makes
	// the matrix singular — see Unproject.
	Zoom float64

	// ViewportWidth and ViewportHeight are the size of the render target the
	// camera maps onto. They are independent of the actual window size: if
	// the window resizes and the two should stay in sync, the owner must
	// call SetViewportSize.
	ViewportWidth  float64
	ViewportHeight float64

	matrix mgl64.Mat4
}

// New creates a camera with the given viewport size, centered on the world
// origin with no rotation and a zoom of 1.
//
// The cached matrix starts out as a pure translation to the viewport center,
// so the camera maps world origin to viewport center and is usable before
// the first Update call.
func New(viewportWidth, viewportHeight float64) *Camera {
	return &Camera{
		Zoom:           1,
		ViewportWidth:  viewportWidth,
		ViewportHeight: viewportHeight,
		matrix:         mgl64.Translate3D(viewportWidth/2, viewportHeight/2, 0),
	}
}

// WithWindowSize creates a camera with the viewport size set to the current
// window size. This is a useful shortcut for games that render at a 1:1
// ratio with the window; when rendering to a differently sized target, call
// New with the target size instead.
//
// If the window is resized later, the viewport size will not follow
// automatically; call SetViewportSize from the resize handler to keep the
// two in sync.
func WithWindowSize(win WindowSizer) *Camera {
	width, height := win.WindowSize()
	return New(width, height)
}

// SetViewportSize sets the size of the camera's viewport. The cached matrix
// is left untouched; call Update for the change to take effect.
func (c *Camera) SetViewportSize(width, height float64) {
	c.ViewportWidth = width
	c.ViewportHeight = height
}

// Update recalculates the transformation matrix from the data currently
// contained within the camera: translate by -Position, rotate about the Z
// axis, scale uniformly by Zoom, then translate to the viewport center. The
// order matters — swapping rotate and scale changes the result whenever
// Rotation is non-zero.
func (c *Camera) Update() {
	c.matrix = mgl64.Translate3D(-c.Position.X(), -c.Position.Y(), 0)
	c.matrix = mgl64.HomogRotate3DZ(c.Rotation).Mul4(c.matrix)
	c.matrix = mgl64.Scale3D(c.Zoom, c.Zoom, 1).Mul4(c.matrix)
	c.matrix = mgl64.Translate3D(c.ViewportWidth/2, c.ViewportHeight/2, 0).Mul4(c.matrix)
}

// Matrix returns the cached transformation matrix. It is never recalculated
// here — call Update first if fields have changed since the last recompute.
func (c *Camera) Matrix() mgl64.Mat4 {
	return c.matrix
}

// Project converts a point from world co-ordinates to viewport
// co-ordinates. The world point equal to Position lands at the viewport
// center, rotated and scaled per the camera's current matrix.
func (c *Camera) Project(point mgl64.Vec2) mgl64.Vec2 {
	return mulPoint(c.matrix, point)
}

// Unproject converts a point from viewport co-ordinates to world
// co-ordinates; it is the exact inverse of Project.
//
// Unproject inverts the cached matrix, so it requires the matrix to be
// invertible: with Zoom at or near zero the result is garbage. Keeping Zoom
// positive is the caller's responsibility — no error is reported.
func (c *Camera) Unproject(point mgl64.Vec2) mgl64.Vec2 {
	return mulPoint(c.matrix.Inv(), point)
}

// MousePosition returns the pointer's position in world co-ordinates — a
// shortcut for calling Unproject with the accessor's current position. The
// result differs from the raw window position whenever position, rotation or
// zoom are non-default.
func (c *Camera) MousePosition(ptr PointerPositioner) mgl64.Vec2 {
	x, y := ptr.PointerPosition()
	return c.Unproject(mgl64.Vec2{x, y})
}

// MouseX returns the X co-ordinate of MousePosition.
func (c *Camera) MouseX(ptr PointerPositioner) float64 {
	return c.MousePosition(ptr).X()
}

// MouseY returns the Y co-ordinate of MousePosition.
func (c *Camera) MouseY(ptr PointerPositioner) float64 {
	return c.MousePosition(ptr).Y()
}

// VisibleRect returns the world-space bounding box of the viewport: the
// smallest axis-aligned rectangle containing the four viewport corners under
// Unproject. Render systems use it to cull off-screen entities. Like
// Unproject, it requires an invertible matrix.
func (c *Camera) VisibleRect() (minX, minY, maxX, maxY float64) {
	inv := c.matrix.Inv()
	corners := [4]mgl64.Vec2{
		mulPoint(inv, mgl64.Vec2{0, 0}),
		mulPoint(inv, mgl64.Vec2{c.ViewportWidth, 0}),
		mulPoint(inv, mgl64.Vec2{0, c.ViewportHeight}),
		mulPoint(inv, mgl64.Vec2{c.ViewportWidth, c.ViewportHeight}),
	}

	minX, minY = corners[0].X(), corners[0].Y()
	maxX, maxY = minX, minY
	for _, p := range corners[1:] {
		minX = math.Min(minX, p.X())
		minY = math.Min(minY, p.Y())
		maxX = math.Max(maxX, p.X())
		maxY = math.Max(maxY, p.Y())
	}
	return minX, minY, maxX, maxY
}

// mulPoint applies m to a 2D point treated as the homogeneous point
// (x, y, 0, 1), discarding z on the way out.
func mulPoint(m mgl64.Mat4, p mgl64.Vec2) mgl64.Vec2 {
	v := m.Mul4x1(mgl64.Vec4{p.X(), p.Y(), 0, 1})
	return mgl64.Vec2{v.X(), v.Y()}
}
