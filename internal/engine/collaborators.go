package engine

import (
	"git.lost.host/meutraa/whipbeat/internal/game"
	"git.lost.host/meutraa/whipbeat/internal/geom"
)

// Sound names the core asks the audio collaborator to play. Beat cues use
// the frequency class name and hits use the quality name.
const (
	SoundWhip          = "whip"
	SoundMiss          = "miss"
	SoundTravel        = "travel"
	SoundLevelComplete = "level_complete"
	SoundGameOver      = "gameover"
)

// Audio is called fire and forget from inside the tick.
type Audio interface {
	PlaySound(name string, volume float64)
	PlayMusic(name string, volume float64)
	PauseAll()
	ResumeAll()
	StopAll()
}

// Pointer reports the instantaneous motion of the player's pointer, in
// pixels per second.
type Pointer interface {
	Speed() float64
	Velocity() geom.Vec
}

// StateListener is handed a copy of the game state after every tick that
// changed it, together with the fields that changed.
type StateListener interface {
	StateChanged(s game.GameState, changed game.Field)
}

type nopAudio struct{}

func (nopAudio) PlaySound(string, float64) {}
func (nopAudio) PlayMusic(string, float64) {}
func (nopAudio) PauseAll()                 {}
func (nopAudio) ResumeAll()                {}
func (nopAudio) StopAll()                  {}

type stillPointer struct{}

func (stillPointer) Speed() float64     { return 0 }
func (stillPointer) Velocity() geom.Vec { return geom.Vec{} }
