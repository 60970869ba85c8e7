package game

import (
	"time"

	"git.lost.host/meutraa/whipbeat/internal/geom"
)

type PortalState uint8

const (
	Approach PortalState = iota
	Active
	Missed
)

func (s PortalState) String() string {
	switch s {
	case Approach:
		return "approach"
	case Active:
		return "active"
	case Missed:
		return "missed"
	}
	return "unknown"
}

const LaneCount = 3

// Lanes are the y bands portals travel along.
var Lanes = [LaneCount]float64{0.25, 0.5, 0.75}

type Portal struct {
	ID    uint64
	Class FrequencyClass

	X, Y, Z float64 // normalized
	Speed   float64 // normalized x per second
	Lane    int

	SpawnTime  time.Duration
	TargetTime time.Duration // when the portal should be hit

	State     PortalState
	IsMoving  bool
	BeatMatch bool

	Traveling      bool
	TravelProgress float64

	HitQuality Quality
	Judged     bool // HitQuality is only meaningful once set
}

func (p *Portal) Size() float64 {
	return p.Class.Spec().Size
}

func (p *Portal) Center(v Viewport) geom.Vec {
	return v.ToScreen(p.X, p.Y)
}

func (p *Portal) Radius(v Viewport) float64 {
	return geom.HitRadius(p.Size(), v.Scale())
}
