// Package window is the windowed frontend. It also builds for the browser.
package window

import (
	"errors"
	"time"

	"git.lost.host/meutraa/whipbeat/internal/game"
	"git.lost.host/meutraa/whipbeat/internal/geom"
	"git.lost.host/meutraa/whipbeat/internal/input"
	"git.lost.host/meutraa/whipbeat/internal/log"
	"git.lost.host/meutraa/whipbeat/internal/render"
	"git.lost.host/meutraa/whipbeat/internal/theme"
	"github.com/hajimehoshi/ebiten/v2"
)

// Simulation is what the window drives and draws.
type Simulation interface {
	render.World
	input.Controller
	Advance(dt float64)
	Resize(v game.Viewport)
}

// source is where a frame's input comes from.
type source interface {
	// Pointer is the mouse position, false when there is no mouse.
	Pointer() (geom.Vec, bool)
	// Presses are the clicks and touches that began this frame.
	Presses() []geom.Vec
	Actions() []input.Action
}

// Game implements ebiten.Game on top of a simulation.
type Game struct {
	sim    Simulation
	cursor *input.Cursor
	theme  theme.Theme
	assets string
	log    *log.Logger
	src    source
	now    func() time.Time

	w, h        int
	backgrounds map[string]*ebiten.Image
}

type Options struct {
	Cursor *input.Cursor // its tracker should be the simulation's pointer
	Theme  theme.Theme
	Assets string // directory of level background images
	Log    *log.Logger
}

func New(sim Simulation, opts Options) *Game {
	g := &Game{
		sim:         sim,
		cursor:      opts.Cursor,
		theme:       opts.Theme,
		assets:      opts.Assets,
		log:         opts.Log,
		src:         ebitenSource{},
		now:         time.Now,
		backgrounds: map[string]*ebiten.Image{},
	}
	if nil == g.cursor {
		g.cursor = input.NewCursor(&input.Tracker{})
	}
	if nil == g.theme {
		g.theme = &theme.DefaultTheme{}
	}
	if nil == g.log {
		g.log = log.Discard()
	}
	return g
}

func (g *Game) Update() error {
	now := g.now()
	v := g.sim.Viewport()

	if p, ok := g.src.Pointer(); ok {
		g.cursor.Point(p, v, now)
	}
	if nil != g.cursor.Tracker {
		g.cursor.Tracker.Settle(now)
	}
	for _, a := range g.src.Actions() {
		if !input.Apply(g.sim, a, g.cursor, v, now) {
			return ebiten.Termination
		}
	}
	for _, p := range g.src.Presses() {
		g.cursor.Point(p, v, now)
		input.Apply(g.sim, input.Click(g.sim.State().Status), g.cursor, v, now)
	}

	g.sim.Advance(1 / float64(ebiten.TPS()))
	return nil
}

// Layout keeps one logical pixel per screen pixel, so the play field
// follows the window size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != g.w || outsideHeight != g.h {
		g.w, g.h = outsideWidth, outsideHeight
		g.sim.Resize(game.Viewport{W: float64(g.w), H: float64(g.h)})
	}
	return outsideWidth, outsideHeight
}

// Run opens the window and blocks until it is closed or the player quits.
func Run(g *Game, title string, width, height int) error {
	ebiten.SetWindowTitle(title)
	ebiten.SetWindowSize(width, height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if err := ebiten.RunGame(g); nil != err && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}
