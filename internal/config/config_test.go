package config

import (
	"testing"
	"time"
)

func TestParseDefaults(t *testing.T) {
	c, err := Parse("whipbeat", nil)
	if nil != err {
		t.Fatal(err)
	}
	if c.BeatInterval != 500*time.Millisecond {
		t.Fatalf("beat interval %v", c.BeatInterval)
	}
	if c.Screen != ScreenTcell || c.Volume != 0.8 || c.RefreshRate != 60 || c.LeadTime != 1500*time.Millisecond {
		t.Fatalf("unexpected defaults %+v", c)
	}
	if c.FramePeriod() != time.Second/60 {
		t.Fatalf("frame period %v", c.FramePeriod())
	}
}

func TestParseFlags(t *testing.T) {
	c, err := Parse("whipbeat", []string{"-s", "ansi", "--beat-interval", "400ms", "--mute", "--seed", "42", "--chart", "song.sm"})
	if nil != err {
		t.Fatal(err)
	}
	if c.Screen != ScreenANSI || c.BeatInterval != 400*time.Millisecond || c.Seed != 42 || c.Chart != "song.sm" {
		t.Fatalf("unexpected config %+v", c)
	}
	if c.EffectiveVolume() != 0 {
		t.Fatalf("muted volume %v", c.EffectiveVolume())
	}
}

func TestParseRejects(t *testing.T) {
	bad := [][]string{
		{"--screen", "vga"},
		{"--volume", "2"},
		{"--beat-interval", "0s"},
		{"--refresh-rate", "0"},
		{"--width", "-5"},
		{"--lead", "0s"},
	}
	for _, args := range bad {
		if _, err := Parse("whipbeat", args); nil == err {
			t.Log("args", args)
			t.Fail()
		}
	}
}
