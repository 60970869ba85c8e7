package game

import (
	"math"

	"git.lost.host/meutraa/whipbeat/internal/geom"
)

// Viewport is the pixel size of the play field. Portals live in normalized
// coordinates, whips in pixels.
type Viewport struct {
	W, H float64
}

// Scale is the smaller side, portal sizes are relative to it.
func (v Viewport) Scale() float64 {
	return math.Min(v.W, v.H)
}

func (v Viewport) ToScreen(x, y float64) geom.Vec {
	return geom.Vec{X: x * v.W, Y: y * v.H}
}

func (v Viewport) ToNormal(p geom.Vec) (float64, float64) {
	if v.W == 0 || v.H == 0 {
		return 0, 0
	}
	return p.X / v.W, p.Y / v.H
}

// Origin is where whips are fired from, bottom center.
func (v Viewport) Origin() geom.Vec {
	return geom.Vec{X: v.W / 2, Y: v.H * 0.95}
}
