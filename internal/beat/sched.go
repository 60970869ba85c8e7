package beat

import (
	"time"

	"git.lost.host/meutraa/whipbeat/internal/game"
)

// DefaultInterval is one beat at 120 BPM.
const DefaultInterval = 500 * time.Millisecond

type Beat struct {
	Index    uint64
	Category game.FrequencyClass
	// Late is how far past the rollover the clock already is.
	Late time.Duration
}

// Category picks the cue for a beat: every 4th is strong, every 2nd medium.
func Category(beat uint64) game.FrequencyClass {
	switch {
	case beat%4 == 0:
		return game.Bass
	case beat%2 == 0:
		return game.Snare
	}
	return game.HiHat
}

// SpawnChance is the probability a beat of this category spawns a portal.
func SpawnChance(c game.FrequencyClass) float64 {
	switch c {
	case game.Bass:
		return 0.8
	case game.Snare:
		return 0.6
	}
	return 0.3
}

// Scheduler is the global beat clock. It is driven by frame deltas, never
// by the wall clock.
type Scheduler struct {
	Interval time.Duration

	beat uint64
	acc  time.Duration
}

func NewScheduler(interval time.Duration) *Scheduler {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Scheduler{Interval: interval}
}

// Advance returns every beat whose rollover falls inside dt, in order.
func (s *Scheduler) Advance(dt time.Duration) []Beat {
	if dt <= 0 || s.Interval <= 0 {
		return nil
	}
	var beats []Beat
	s.acc += dt
	for s.acc >= s.Interval {
		s.acc -= s.Interval
		s.beat++
		beats = append(beats, Beat{
			Index:    s.beat,
			Category: Category(s.beat),
			Late:     s.acc,
		})
	}
	return beats
}

func (s *Scheduler) Beat() uint64 {
	return s.beat
}

// Phase is the position inside the current beat, 0 right after a rollover.
func (s *Scheduler) Phase() float64 {
	if s.Interval <= 0 {
		return 0
	}
	return float64(s.acc) / float64(s.Interval)
}

func (s *Scheduler) Reset() {
	s.beat = 0
	s.acc = 0
}
