package score

import (
	"testing"
	"time"

	"git.lost.host/meutraa/whipbeat/internal/game"
)

type judgeTest struct {
	Diff      time.Duration
	BeatMatch bool
	Combo     int
	Quality   game.Quality
	Score     int
}

var judgeTests = []judgeTest{
	{Diff: 25 * time.Millisecond, BeatMatch: true, Quality: game.Perfect, Score: 1500},
	{Diff: -30 * time.Millisecond, BeatMatch: true, Quality: game.Perfect, Score: 1500},
	{Diff: 31 * time.Millisecond, BeatMatch: true, Quality: game.Great, Score: 1200},
	{Diff: 60 * time.Millisecond, BeatMatch: true, Quality: game.Great, Score: 1200},
	{Diff: -100 * time.Millisecond, BeatMatch: true, Quality: game.Good, Score: 900},
	{Diff: 101 * time.Millisecond, BeatMatch: true, Quality: game.Miss, Score: 0},
	{Diff: 150 * time.Millisecond, BeatMatch: true, Quality: game.Miss, Score: 0},
	{Diff: 10 * time.Millisecond, Quality: game.Perfect, Score: 1000},
	{Diff: 45 * time.Millisecond, Quality: game.Great, Score: 800},
	{Diff: 99 * time.Millisecond, Quality: game.Good, Score: 600},
	{Diff: 150 * time.Millisecond, Quality: game.Hit, Score: 400},
	{Diff: -200 * time.Millisecond, Quality: game.Hit, Score: 400},
	{Diff: 250 * time.Millisecond, Quality: game.Miss, Score: 0},
	{Diff: 150 * time.Millisecond, Combo: 10, Quality: game.Hit, Score: 480},
	{Diff: 0, BeatMatch: true, Combo: 25, Quality: game.Perfect, Score: 2250},
	{Diff: 0, BeatMatch: true, Combo: 100, Quality: game.Perfect, Score: 4500},
	{Diff: 0, BeatMatch: true, Combo: 5000, Quality: game.Perfect, Score: 4500},
	{Diff: 250 * time.Millisecond, Combo: 50, Quality: game.Miss, Score: 0},
}

func TestJudge(t *testing.T) {
	scorer := DefaultScorer{}
	for _, test := range judgeTests {
		q, s := scorer.Judge(test.Diff, test.BeatMatch, test.Combo)
		if q != test.Quality || s != test.Score {
			t.Log("      Diff:", test.Diff)
			t.Log(" BeatMatch:", test.BeatMatch)
			t.Log("     Combo:", test.Combo)
			t.Log("  Expected:", test.Quality, test.Score)
			t.Log("       Got:", q, s)
			t.Log("")
			t.Fail()
		}
	}
}

func TestMultiplierMonotonicAndCapped(t *testing.T) {
	scorer := DefaultScorer{}
	prev := scorer.Multiplier(0)
	if prev != 1 {
		t.Fatalf("combo 0 multiplier %v", prev)
	}
	for combo := 1; combo <= 500; combo++ {
		m := scorer.Multiplier(combo)
		if m < prev {
			t.Fatalf("multiplier decreased at combo %d: %v < %v", combo, m, prev)
		}
		if m > 3 {
			t.Fatalf("multiplier %v above cap at combo %d", m, combo)
		}
		prev = m
	}
	if m := scorer.Multiplier(100); m != 3.0 {
		t.Fatalf("combo 100 multiplier %v, expected exactly 3", m)
	}
	if m := scorer.Multiplier(-4); m != 1 {
		t.Fatalf("negative combo multiplier %v", m)
	}
}

func TestAccuracyIsStricter(t *testing.T) {
	tests := map[time.Duration]game.Quality{
		0:                       game.Perfect,
		20 * time.Millisecond:   game.Perfect,
		-25 * time.Millisecond:  game.Great,
		70 * time.Millisecond:   game.Good,
		100 * time.Millisecond:  game.Hit,
		-150 * time.Millisecond: game.Hit,
		180 * time.Millisecond:  game.Miss,
	}
	for diff, expected := range tests {
		if q := Accuracy(diff); q != expected {
			t.Log("diff    ", diff)
			t.Log("got     ", q)
			t.Log("expected", expected)
			t.Fail()
		}
	}
}

func TestDistance(t *testing.T) {
	if d := Distance(2*time.Second, 1950*time.Millisecond); d != 50*time.Millisecond {
		t.Fatalf("early hit distance %v", d)
	}
	if d := Distance(2*time.Second, 2100*time.Millisecond); d != -100*time.Millisecond {
		t.Fatalf("late hit distance %v", d)
	}
}
