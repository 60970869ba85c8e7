package game

import (
	"time"

	"git.lost.host/meutraa/whipbeat/internal/geom"
)

type EffectKind uint8

const (
	EffectBeatPulse EffectKind = iota
	EffectHitBurst
	EffectMissMark
	EffectComboFlash
	EffectLevelBanner
	EffectDimensionShift
	EffectTravel
)

// EffectPayload is implemented by one struct per EffectKind.
type EffectPayload interface {
	Kind() EffectKind
}

type BeatPulse struct {
	Beat     uint64
	Category FrequencyClass
}

type HitBurst struct {
	Quality Quality
	Points  int
}

type MissMark struct {
	Class FrequencyClass
}

type ComboFlash struct {
	Combo int
}

type LevelBanner struct {
	Level int
	Name  string
}

type DimensionShift struct {
	From, To Dimension
}

type Travel struct {
	Class FrequencyClass
}

func (BeatPulse) Kind() EffectKind      { return EffectBeatPulse }
func (HitBurst) Kind() EffectKind       { return EffectHitBurst }
func (MissMark) Kind() EffectKind       { return EffectMissMark }
func (ComboFlash) Kind() EffectKind     { return EffectComboFlash }
func (LevelBanner) Kind() EffectKind    { return EffectLevelBanner }
func (DimensionShift) Kind() EffectKind { return EffectDimensionShift }
func (Travel) Kind() EffectKind         { return EffectTravel }

// Effect is a rendering cue only, nothing in the simulation reads it back.
type Effect struct {
	Pos      geom.Vec // pixels
	Start    time.Duration
	Duration time.Duration
	Payload  EffectPayload
}

func (e *Effect) Kind() EffectKind {
	return e.Payload.Kind()
}

func (e *Effect) Alive(now time.Duration) bool {
	return now-e.Start <= e.Duration
}

// Progress runs from 0 at Start to 1 at the end of its lifespan.
func (e *Effect) Progress(now time.Duration) float64 {
	if e.Duration <= 0 {
		return 1
	}
	p := float64(now-e.Start) / float64(e.Duration)
	if p < 0 {
		return 0
	}
	if p > 1 {
		return 1
	}
	return p
}
