package render

import (
	"time"

	"git.lost.host/meutraa/whipbeat/internal/game"
	"git.lost.host/meutraa/whipbeat/internal/geom"
)

// World is everything a renderer reads from the running game.
type World interface {
	State() game.GameState
	Level() game.LevelData
	Levels() int
	Portals() []*game.Portal
	Whips() []*game.Whip
	Effects() []*game.Effect
	Traveling() *game.Portal
	Now() time.Duration
	BeatPhase() float64
	Viewport() game.Viewport
}

type Renderer interface {
	Init() error
	Deinit() error
	// Size is the drawable area in cells.
	Size() (cols, rows int)
	// Render draws one frame. cursor, when set, is the keyboard aim point
	// in pixels.
	Render(w World, cursor *geom.Vec) error
}
