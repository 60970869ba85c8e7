package beat

import (
	"testing"
	"time"

	"git.lost.host/meutraa/whipbeat/internal/game"
)

func TestSchedulerFiresEveryInterval(t *testing.T) {
	s := NewScheduler(0)
	if s.Interval != DefaultInterval {
		t.Fatalf("expected default interval, got %v", s.Interval)
	}

	fired := []uint64{}
	for i := 0; i < 125; i++ {
		for _, b := range s.Advance(16 * time.Millisecond) {
			fired = append(fired, b.Index)
		}
	}
	// 125 frames of 16ms is exactly 2s, four beats
	expected := []uint64{1, 2, 3, 4}
	if len(fired) != len(expected) {
		t.Fatalf("expected %d beats, got %v", len(expected), fired)
	}
	for i, b := range fired {
		if b != expected[i] {
			t.Fatalf("expected beat %d, got %d at index %d", expected[i], b, i)
		}
	}
	if s.Phase() != 0 {
		t.Fatalf("expected phase 0 after exact rollover, got %v", s.Phase())
	}
}

func TestSchedulerLargeDeltaFiresAllRollovers(t *testing.T) {
	s := NewScheduler(500 * time.Millisecond)
	beats := s.Advance(1600 * time.Millisecond)
	if len(beats) != 3 {
		t.Fatalf("expected 3 beats, got %d", len(beats))
	}
	if beats[2].Late != 100*time.Millisecond || beats[0].Late != 1100*time.Millisecond {
		t.Fatalf("unexpected lateness %v %v", beats[0].Late, beats[2].Late)
	}
	if s.Beat() != 3 {
		t.Fatalf("beat counter %d", s.Beat())
	}
}

func TestSchedulerIgnoresNegativeDelta(t *testing.T) {
	s := NewScheduler(500 * time.Millisecond)
	s.Advance(400 * time.Millisecond)
	if beats := s.Advance(-time.Second); len(beats) != 0 {
		t.Fatalf("negative delta fired %v", beats)
	}
	if beats := s.Advance(100 * time.Millisecond); len(beats) != 1 {
		t.Fatalf("state should be unchanged by negative delta, got %v", beats)
	}
	s.Reset()
	if s.Beat() != 0 || s.Phase() != 0 {
		t.Fatal("reset did not clear the clock")
	}
}

func TestCategoryAndChance(t *testing.T) {
	tests := []struct {
		beat     uint64
		category game.FrequencyClass
		chance   float64
	}{
		{1, game.HiHat, 0.3},
		{2, game.Snare, 0.6},
		{3, game.HiHat, 0.3},
		{4, game.Bass, 0.8},
		{6, game.Snare, 0.6},
		{8, game.Bass, 0.8},
	}
	for _, test := range tests {
		c := Category(test.beat)
		if c != test.category || SpawnChance(c) != test.chance {
			t.Log("beat    ", test.beat)
			t.Log("got     ", c, SpawnChance(c))
			t.Log("expected", test.category, test.chance)
			t.Fail()
		}
	}
}

func TestTimer(t *testing.T) {
	var tm Timer
	if tm.Advance(time.Hour) != 0 {
		t.Fatal("zero interval timer fired")
	}
	tm.Reset(time.Second / 2)
	fired := 0
	for i := 0; i < 100; i++ {
		fired += tm.Advance(10 * time.Millisecond)
	}
	if fired != 2 {
		t.Fatalf("expected 2 firings in 1s, got %d", fired)
	}
	if n := tm.Advance(1200 * time.Millisecond); n != 2 {
		t.Fatalf("expected 2 firings for a long frame, got %d", n)
	}
}
