package input

import (
	"time"

	"git.lost.host/meutraa/whipbeat/internal/game"
	"git.lost.host/meutraa/whipbeat/internal/geom"
)

type Action uint8

const (
	ActionNone Action = iota
	ActionQuit
	ActionConfirm // start from the menu, restart after game over, resume
	ActionFire
	ActionPause
	ActionRestart
	ActionMenu
	ActionLeft
	ActionRight
	ActionUp
	ActionDown
	ActionLane0
	ActionLane1
	ActionLane2
)

// Lane reports which lane a lane action aims at.
func (a Action) Lane() (int, bool) {
	if a < ActionLane0 || a > ActionLane2 {
		return 0, false
	}
	return int(a - ActionLane0), true
}

// Controller is the part of the simulation the controls drive.
type Controller interface {
	State() game.GameState
	Start()
	Restart()
	Resume()
	TogglePause()
	ReturnToMenu()
	FireAt(target geom.Vec)
}

// CursorStep is how far one arrow press moves the cursor, in normalized
// units.
const CursorStep = 0.04

// Cursor is the key driven aim point in normalized coordinates. Moving it
// feeds the tracker, so key aiming bends whips the way a mouse does.
type Cursor struct {
	X, Y    float64
	Tracker *Tracker
}

func NewCursor(t *Tracker) *Cursor {
	return &Cursor{X: 0.5, Y: 0.5, Tracker: t}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func (c *Cursor) moveTo(x, y float64, v game.Viewport, now time.Time) {
	c.X, c.Y = clamp01(x), clamp01(y)
	if nil != c.Tracker {
		c.Tracker.Move(c.Screen(v), now)
	}
}

// Point moves the cursor under a pointer at p, in pixels.
func (c *Cursor) Point(p geom.Vec, v game.Viewport, now time.Time) {
	x, y := v.ToNormal(p)
	c.moveTo(x, y, v, now)
}

func (c *Cursor) Screen(v game.Viewport) geom.Vec {
	return v.ToScreen(c.X, c.Y)
}

// Click is what a mouse click or touch means in status s. Outside of play
// it confirms, so touch only players can start and restart.
func Click(s game.Status) Action {
	switch s {
	case game.StatusMenu, game.StatusGameOver:
		return ActionConfirm
	}
	return ActionFire
}

// Apply performs a on c. It returns false once the player asked to quit.
func Apply(c Controller, a Action, cur *Cursor, v game.Viewport, now time.Time) bool {
	switch a {
	case ActionQuit:
		return false
	case ActionConfirm:
		switch c.State().Status {
		case game.StatusMenu:
			c.Start()
		case game.StatusGameOver:
			c.Restart()
		case game.StatusPaused:
			c.Resume()
		}
	case ActionFire:
		c.FireAt(cur.Screen(v))
	case ActionPause:
		c.TogglePause()
	case ActionRestart:
		c.Restart()
	case ActionMenu:
		c.ReturnToMenu()
	case ActionLeft:
		cur.moveTo(cur.X-CursorStep, cur.Y, v, now)
	case ActionRight:
		cur.moveTo(cur.X+CursorStep, cur.Y, v, now)
	case ActionUp:
		cur.moveTo(cur.X, cur.Y-CursorStep, v, now)
	case ActionDown:
		cur.moveTo(cur.X, cur.Y+CursorStep, v, now)
	default:
		if lane, ok := a.Lane(); ok {
			cur.moveTo(cur.X, game.Lanes[lane], v, now)
			c.FireAt(cur.Screen(v))
		}
	}
	return true
}
