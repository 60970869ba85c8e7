package geom

import "math"

// HitRadiusScale is the fraction of a portal's on-screen size that counts
// as a hit when the whip head is tested against the portal center.
const HitRadiusScale = 0.8

type Vec struct {
	X, Y float64
}

func (v Vec) Add(o Vec) Vec       { return Vec{v.X + o.X, v.Y + o.Y} }
func (v Vec) Sub(o Vec) Vec       { return Vec{v.X - o.X, v.Y - o.Y} }
func (v Vec) Scale(s float64) Vec { return Vec{v.X * s, v.Y * s} }
func (v Vec) Len() float64        { return math.Hypot(v.X, v.Y) }

// Perp is v rotated a quarter turn counter clockwise.
func (v Vec) Perp() Vec { return Vec{-v.Y, v.X} }

func (v Vec) Norm() Vec {
	l := v.Len()
	if l == 0 {
		return Vec{}
	}
	return Vec{v.X / l, v.Y / l}
}

func Distance(p1, p2 Vec) float64 {
	return math.Hypot(p2.X-p1.X, p2.Y-p1.Y)
}

func clamp01(t float64) float64 {
	if t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}

// BezierPoint evaluates the quadratic Bezier curve at t, t is clamped to [0,1].
func BezierPoint(t float64, start, control, end Vec) Vec {
	t = clamp01(t)
	u := 1 - t
	return Vec{
		X: u*u*start.X + 2*u*t*control.X + t*t*end.X,
		Y: u*u*start.Y + 2*u*t*control.Y + t*t*end.Y,
	}
}

// Bezier is a quadratic curve, Start and End are the endpoints.
type Bezier struct {
	Start, Control, End Vec
}

func (b Bezier) Point(t float64) Vec {
	return BezierPoint(t, b.Start, b.Control, b.End)
}

// HitRadius is the pixel radius of a portal of normalized size on a
// screen whose smaller side measures screenScale pixels.
func HitRadius(portalSize, screenScale float64) float64 {
	return portalSize * screenScale * HitRadiusScale
}

// Hit treats the whip tip as a point, its own size is not added to the radius.
func Hit(point, center Vec, radius float64) bool {
	return Distance(point, center) <= radius
}
