package game

import (
	"time"

	"git.lost.host/meutraa/whipbeat/internal/geom"
)

// TrailPoint is a fading sample of where the whip head has been.
type TrailPoint struct {
	X, Y  float64
	Alpha float64
}

type Whip struct {
	ID     uint64
	Start  geom.Vec
	Target geom.Vec
	Curve  geom.Bezier

	// Velocity comes from the pointer speed at fire time. Extension runs at
	// a fixed rate and does not read it.
	Velocity float64
	Progress float64

	Active       bool
	Extending    bool
	HitDetection bool

	Trail     []TrailPoint
	Wave      geom.WavePattern
	CreatedAt time.Duration
}

// Head is the undisplaced curve point used for hit tests.
func (w *Whip) Head() geom.Vec {
	return w.Curve.Point(w.Progress)
}

// DisplayHead includes the cosmetic wave displacement.
func (w *Whip) DisplayHead(now time.Duration) geom.Vec {
	head := w.Head()
	elapsed := (now - w.CreatedAt).Seconds()
	return head.Add(geom.WaveOffset(w.Progress, w.Wave, elapsed, w.Start, head))
}
