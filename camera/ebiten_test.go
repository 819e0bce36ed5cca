package camera

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
)

func TestGeoMMatchesProject(t *testing.T) {
	c := New(800, 600)
	c.Position = mgl64.Vec2{10, 20}
	c.Rotation = 0.5
	c.Zoom = 2
	c.Update()

	g := GeoM(c.Matrix())

	points := []mgl64.Vec2{
		{0, 0},
		{10, 20},
		{-75.5, 133},
	}
	for _, p := range points {
		want := c.Project(p)
		gotX, gotY := g.Apply(p.X(), p.Y())
		assert.InDelta(t, want.X(), gotX, tolerance)
		assert.InDelta(t, want.Y(), gotY, tolerance)
	}
}
