package engine

import (
	"time"

	"git.lost.host/meutraa/whipbeat/internal/game"
)

type eventKind uint8

const (
	eventNextLevel eventKind = iota
)

// scheduledEvent is a delayed transition. It only runs if the game it was
// scheduled in is still going and still in the expected status.
type scheduledEvent struct {
	due      time.Duration
	kind     eventKind
	epoch    uint64
	requires game.Status
}

func (s *Simulation) schedule(after time.Duration, kind eventKind, requires game.Status) {
	s.events = append(s.events, scheduledEvent{
		due:      s.clock + after,
		kind:     kind,
		epoch:    s.epoch,
		requires: requires,
	})
}

func (s *Simulation) fireEvents() {
	if len(s.events) == 0 {
		return
	}
	var due []scheduledEvent
	pending := s.events[:0]
	for _, e := range s.events {
		if e.due <= s.clock {
			due = append(due, e)
		} else {
			pending = append(pending, e)
		}
	}
	s.events = pending

	for _, e := range due {
		if e.epoch != s.epoch || e.requires != s.state.Status {
			s.log.Debugf("dropping stale event %d", e.kind)
			continue
		}
		switch e.kind {
		case eventNextLevel:
			s.nextLevel()
		}
	}
}

// Scheduled is the number of transitions waiting to fire.
func (s *Simulation) Scheduled() int {
	return len(s.events)
}
