package input

import (
	"time"

	"git.lost.host/meutraa/whipbeat/internal/geom"
)

// Window is how far back the tracker looks when it measures pointer motion.
const Window = 80 * time.Millisecond

type sample struct {
	pos geom.Vec
	at  time.Time
}

// Tracker turns sampled pointer positions into an instantaneous velocity
// in pixels per second.
type Tracker struct {
	samples []sample
}

func (t *Tracker) Move(pos geom.Vec, now time.Time) {
	if n := len(t.samples); n > 0 && !now.After(t.samples[n-1].at) {
		// same instant, keep the newest position only
		t.samples[n-1].pos = pos
		return
	}
	t.samples = append(t.samples, sample{pos: pos, at: now})
	t.trim(now)
}

// Settle forgets motion older than Window, so a pointer that stopped
// reports no speed even without new events.
func (t *Tracker) Settle(now time.Time) {
	t.trim(now)
	if n := len(t.samples); n > 0 && now.Sub(t.samples[n-1].at) > Window {
		t.samples = t.samples[n-1:]
	}
}

func (t *Tracker) trim(now time.Time) {
	cut := 0
	for cut < len(t.samples)-2 && now.Sub(t.samples[cut].at) > Window {
		cut++
	}
	if cut > 0 {
		t.samples = append(t.samples[:0], t.samples[cut:]...)
	}
}

// Position is the last known pointer position.
func (t *Tracker) Position() geom.Vec {
	if len(t.samples) == 0 {
		return geom.Vec{}
	}
	return t.samples[len(t.samples)-1].pos
}

func (t *Tracker) Velocity() geom.Vec {
	if len(t.samples) < 2 {
		return geom.Vec{}
	}
	first, last := t.samples[0], t.samples[len(t.samples)-1]
	dt := last.at.Sub(first.at).Seconds()
	if dt <= 0 {
		return geom.Vec{}
	}
	return last.pos.Sub(first.pos).Scale(1 / dt)
}

func (t *Tracker) Speed() float64 {
	return t.Velocity().Len()
}
