package render

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/automoto/vantage/camera"
)

func TestTransformSlotLifecycle(t *testing.T) {
	r := NewRenderer()

	_, active := r.Transform()
	assert.False(t, active, "fresh renderer should have no active transform")

	cam := camera.New(800, 600)
	cam.Update()
	r.SetTransformMatrix(cam.Matrix())

	g, active := r.Transform()
	assert.True(t, active)
	x, y := g.Apply(0, 0)
	assert.InDelta(t, 400, x, 1e-4)
	assert.InDelta(t, 300, y, 1e-4)

	r.ResetTransformMatrix()
	_, active = r.Transform()
	assert.False(t, active, "reset should clear the active transform")
}

func TestSetTransformMatrixReplaces(t *testing.T) {
	r := NewRenderer()

	a := camera.New(800, 600)
	a.Update()
	r.SetTransformMatrix(a.Matrix())

	b := camera.New(400, 400)
	b.Update()
	r.SetTransformMatrix(b.Matrix())

	g, active := r.Transform()
	assert.True(t, active)
	x, y := g.Apply(0, 0)
	assert.InDelta(t, 200, x, 1e-4)
	assert.InDelta(t, 200, y, 1e-4)
}
