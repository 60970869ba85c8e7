package game

import (
	"fmt"
	"time"
)

type Quality uint8

const (
	Miss Quality = iota
	Hit
	Good
	Great
	Perfect
)

var Qualities = [...]Quality{Perfect, Great, Good, Hit, Miss}

func (q Quality) String() string {
	switch q {
	case Miss:
		return "miss"
	case Hit:
		return "hit"
	case Good:
		return "good"
	case Great:
		return "great"
	case Perfect:
		return "perfect"
	}
	return fmt.Sprintf("quality(%d)", uint8(q))
}

// Judgement is the outcome of one hit attempt.
type Judgement struct {
	Quality   Quality
	Score     int
	Diff      time.Duration // signed, positive when early
	BeatMatch bool
	Class     FrequencyClass
	Level     int
	Combo     int // combo before the hit was applied
}
