package score

import (
	"math"
	"time"

	"git.lost.host/meutraa/whipbeat/internal/game"
)

const (
	comboStep     = 0.02
	maxMultiplier = 3.0
)

var (
	// BeatWindows apply when the portal was in its beat-matched window.
	BeatWindows = []Window{
		{Within: 30 * time.Millisecond, Quality: game.Perfect, Base: 1500},
		{Within: 60 * time.Millisecond, Quality: game.Great, Base: 1200},
		{Within: 100 * time.Millisecond, Quality: game.Good, Base: 900},
	}

	// OffBeatWindows apply otherwise. The last row is the loosest hit.
	OffBeatWindows = []Window{
		{Within: 30 * time.Millisecond, Quality: game.Perfect, Base: 1000},
		{Within: 60 * time.Millisecond, Quality: game.Great, Base: 800},
		{Within: 100 * time.Millisecond, Quality: game.Good, Base: 600},
		{Within: 200 * time.Millisecond, Quality: game.Hit, Base: 400},
	}

	// AccuracyWindows is the stricter table behind Accuracy. The live hit
	// path never reads it.
	AccuracyWindows = []Window{
		{Within: 20 * time.Millisecond, Quality: game.Perfect},
		{Within: 45 * time.Millisecond, Quality: game.Great},
		{Within: 80 * time.Millisecond, Quality: game.Good},
		{Within: 150 * time.Millisecond, Quality: game.Hit},
	}
)

type DefaultScorer struct{}

func abs(x time.Duration) time.Duration {
	if x < 0 {
		return -x
	}
	return x
}

// Distance is positive when hitTime is before the target.
func Distance(target, hitTime time.Duration) time.Duration {
	return target - hitTime
}

func lookup(windows []Window, d time.Duration) (Window, bool) {
	for _, w := range windows {
		if d <= w.Within {
			return w, true
		}
	}
	return Window{}, false
}

// Judge never lets a beat-matched hit fall through to the off-beat rows,
// past 100ms it is a miss.
func (s *DefaultScorer) Judge(diff time.Duration, beatMatch bool, combo int) (game.Quality, int) {
	d := abs(diff)
	windows := OffBeatWindows
	if beatMatch {
		windows = BeatWindows
	}
	w, ok := lookup(windows, d)
	if !ok {
		return game.Miss, 0
	}
	return w.Quality, int(math.Floor(float64(w.Base) * s.Multiplier(combo)))
}

func (s *DefaultScorer) Multiplier(combo int) float64 {
	if combo < 0 {
		combo = 0
	}
	return math.Min(1+float64(combo)*comboStep, maxMultiplier)
}

// Accuracy grades a timing difference against the strict table.
func Accuracy(diff time.Duration) game.Quality {
	w, ok := lookup(AccuracyWindows, abs(diff))
	if !ok {
		return game.Miss
	}
	return w.Quality
}
