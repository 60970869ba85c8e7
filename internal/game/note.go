package game

import "time"

// Note is a single chart step, it becomes a stationary portal.
type Note struct {
	Index uint8         // The chart column
	Denom int           // The beat length, as a denominator, 4 = 1/4 beat
	Time  time.Duration // The time the note should be hit, from level start
}

// Class maps a chart column onto a frequency band.
func (n *Note) Class() FrequencyClass {
	switch n.Index % 4 {
	case 0:
		return Bass
	case 1, 2:
		return Snare
	}
	return HiHat
}

// Lane spreads columns over the three lanes.
func (n *Note) Lane() int {
	return int(n.Index) % LaneCount
}
