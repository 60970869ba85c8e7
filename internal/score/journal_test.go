package score

import (
	"testing"
	"time"

	"git.lost.host/meutraa/whipbeat/internal/game"
)

func openTestJournal(t *testing.T) *Journal {
	t.Helper()
	j, err := OpenJournal(nil)
	if nil != err {
		t.Fatalf("unable to open journal: %v", err)
	}
	t.Cleanup(func() { j.Close() })
	return j
}

func TestJournalSummary(t *testing.T) {
	j := openTestJournal(t)
	j.Record(game.Judgement{Quality: game.Perfect, Score: 1500, Diff: 10 * time.Millisecond, Class: game.Bass, BeatMatch: true})
	j.Record(game.Judgement{Quality: game.Great, Score: 1200, Diff: -30 * time.Millisecond, Class: game.Snare, BeatMatch: true})
	j.Record(game.Judgement{Quality: game.Good, Score: 900, Diff: 50 * time.Millisecond, Class: game.Snare, Level: 1})
	j.Record(game.Judgement{Quality: game.Miss, Diff: 400 * time.Millisecond, Class: game.HiHat, Level: 1})

	s, err := j.Summary(-1)
	if nil != err {
		t.Fatal(err)
	}
	if s.Total != 4 || s.Score != 3600 {
		t.Fatalf("total %d score %d", s.Total, s.Score)
	}
	if s.Counts[game.Perfect] != 1 || s.Counts[game.Great] != 1 || s.Counts[game.Good] != 1 || s.Counts[game.Miss] != 1 {
		t.Fatalf("counts %v", s.Counts)
	}
	if s.ByClass[game.Snare] != 2 || s.ByClass[game.Bass] != 1 || s.ByClass[game.HiHat] != 0 {
		t.Fatalf("by class %v", s.ByClass)
	}
	// misses are left out of the offset statistics: mean of 10, -30, 50
	if s.Mean != 10*time.Millisecond {
		t.Fatalf("mean %v", s.Mean)
	}
	// sample stdev of 10, -30, 50 is 40
	if s.Stdev != 40*time.Millisecond {
		t.Fatalf("stdev %v", s.Stdev)
	}

	s, err = j.Summary(1)
	if nil != err {
		t.Fatal(err)
	}
	if s.Total != 2 || s.Score != 900 || s.Mean != 50*time.Millisecond || s.Stdev != 0 {
		t.Fatalf("level summary %+v", s)
	}
}

func TestJournalEmpty(t *testing.T) {
	j := openTestJournal(t)
	s, err := j.Summary(-1)
	if nil != err {
		t.Fatal(err)
	}
	if s.Total != 0 || s.Mean != 0 || s.Stdev != 0 {
		t.Fatalf("empty summary %+v", s)
	}
}
