package game

import "time"

type Status uint8

const (
	StatusMenu Status = iota
	StatusPlaying
	StatusPaused
	StatusLevelComplete
	StatusGameOver
	StatusTransitioning // reserved, never entered
)

func (s Status) String() string {
	switch s {
	case StatusMenu:
		return "menu"
	case StatusPlaying:
		return "playing"
	case StatusPaused:
		return "paused"
	case StatusLevelComplete:
		return "level_complete"
	case StatusGameOver:
		return "gameover"
	case StatusTransitioning:
		return "transitioning"
	}
	return "unknown"
}

const MaxHealth = 100

// Dimension is a cosmetic theme slot, picked at random on level change.
type Dimension uint8

const DimensionCount = 5

type GameState struct {
	Score    int
	Combo    int
	MaxCombo int
	Health   int

	Level        int
	PortalsHit   int
	PortalsTotal int
	Progress     float64 // percent
	Elapsed      time.Duration

	Status    Status
	Song      string
	Dimension Dimension
}

// Field flags which parts of GameState changed during a tick.
type Field uint16

const (
	FieldScore Field = 1 << iota
	FieldCombo
	FieldHealth
	FieldLevel
	FieldCounters
	FieldProgress
	FieldStatus
	FieldSong
	FieldDimension

	FieldAll Field = 1<<iota - 1
)

func (f Field) Has(o Field) bool {
	return f&o != 0
}
