package score

import (
	"time"

	"git.lost.host/meutraa/whipbeat/internal/game"
)

// Scorer turns the distance between a portal's target time and the moment
// the player fired into a quality tier and points.
type Scorer interface {
	Judge(diff time.Duration, beatMatch bool, combo int) (game.Quality, int)
	Multiplier(combo int) float64
}

// Window is one row of a timing table, diffs up to Within earn Quality.
type Window struct {
	Within  time.Duration
	Quality game.Quality
	Base    int
}

// Recorder receives every judged attempt.
type Recorder interface {
	Record(j game.Judgement)
}
