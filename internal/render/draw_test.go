package render

import (
	"strings"
	"testing"
	"time"

	"git.lost.host/meutraa/whipbeat/internal/game"
	"git.lost.host/meutraa/whipbeat/internal/geom"
	"git.lost.host/meutraa/whipbeat/internal/theme"
)

type fakeWorld struct {
	state   game.GameState
	portals []*game.Portal
	whips   []*game.Whip
	effects []*game.Effect
	now     time.Duration
	phase   float64
	v       game.Viewport
}

func (w *fakeWorld) State() game.GameState   { return w.state }
func (w *fakeWorld) Level() game.LevelData   { return game.LevelData{Name: "first", RequiredHits: 10} }
func (w *fakeWorld) Levels() int             { return 3 }
func (w *fakeWorld) Portals() []*game.Portal { return w.portals }
func (w *fakeWorld) Whips() []*game.Whip     { return w.whips }
func (w *fakeWorld) Effects() []*game.Effect { return w.effects }
func (w *fakeWorld) Traveling() *game.Portal { return nil }
func (w *fakeWorld) Now() time.Duration      { return w.now }
func (w *fakeWorld) BeatPhase() float64      { return w.phase }
func (w *fakeWorld) Viewport() game.Viewport { return w.v }

func playing(g *Grid) *fakeWorld {
	return &fakeWorld{
		state: game.GameState{Status: game.StatusPlaying, Health: game.MaxHealth, Score: 1500, Combo: 3},
		phase: 0.5,
		v:     g.Viewport(),
	}
}

func row(g *Grid, r int) string {
	var b strings.Builder
	for c := 0; c < g.Cols; c++ {
		b.WriteRune(g.At(c, r).Rune)
	}
	return b.String()
}

func TestDrawMenu(t *testing.T) {
	g := NewGrid(80, 24)
	w := playing(g)
	w.state.Status = game.StatusMenu
	w.portals = []*game.Portal{{Class: game.Bass, X: 0.5, Y: 0.5, State: game.Active}}
	Draw(g, w, &theme.DefaultTheme{}, nil)

	if !strings.Contains(row(g, 12), "W H I P B E A T") {
		t.Logf("expected the title, got %q", row(g, 12))
		t.Fail()
	}
	if strings.Contains(row(g, 0), "SCORE") {
		t.Log("the menu should not show the HUD")
		t.Fail()
	}
	if g.At(40, 12).Rune == '⬤' {
		t.Log("portals should not be drawn in the menu")
		t.Fail()
	}
}

func TestDrawPlaying(t *testing.T) {
	th := &theme.DefaultTheme{}
	g := NewGrid(100, 40)
	w := playing(g)
	w.portals = []*game.Portal{{Class: game.Bass, X: 0.5, Y: 0.5, State: game.Active}}
	cursor := geom.Vec{X: 100, Y: 100}
	Draw(g, w, th, &cursor)

	if c := g.At(50, 20); c.Rune != '⬤' || c.FG != th.Portal(game.Bass, 0) {
		t.Logf("expected a lit bass portal at the center, got %+v", c)
		t.Fail()
	}
	if c := g.At(12, 6); c.Rune != '+' {
		t.Logf("expected the cursor at 12,6, got %q", c.Rune)
		t.Fail()
	}
	if !strings.Contains(row(g, 0), "SCORE     1500") || !strings.Contains(row(g, 0), "LEVEL 1/3 first") {
		t.Logf("unexpected HUD %q", row(g, 0))
		t.Fail()
	}
	if !strings.Contains(row(g, 1), "HITS 0/10") {
		t.Logf("unexpected HUD %q", row(g, 1))
		t.Fail()
	}
	if g.At(98, 0).Rune == '♪' {
		t.Log("the beat marker should only show early in the beat")
		t.Fail()
	}
}

func TestDrawApproachIsDim(t *testing.T) {
	th := &theme.DefaultTheme{}
	g := NewGrid(100, 40)
	w := playing(g)
	w.phase = 0
	w.portals = []*game.Portal{{Class: game.Snare, X: 0.5, Y: 0.5, State: game.Approach}}
	Draw(g, w, th, nil)

	if c := g.At(50, 20); c.FG != theme.Dim(th.Portal(game.Snare, 0)) {
		t.Logf("expected a dimmed snare portal, got %+v", c)
		t.Fail()
	}
	if g.At(98, 0).Rune != '♪' {
		t.Log("expected the beat marker on the beat")
		t.Fail()
	}
}

func TestDrawEffects(t *testing.T) {
	th := &theme.DefaultTheme{}
	g := NewGrid(100, 40)
	w := playing(g)
	w.effects = []*game.Effect{
		{Pos: geom.Vec{X: 400, Y: 320}, Duration: time.Second, Payload: game.MissMark{}},
		{Pos: geom.Vec{X: 200, Y: 320}, Duration: time.Second, Payload: game.HitBurst{Quality: game.Perfect, Points: 1500}},
	}
	Draw(g, w, th, nil)

	red := th.Quality(game.Miss)
	corners := []struct {
		col, row int
		r        rune
	}{
		{49, 19, '╭'},
		{51, 19, '╮'},
		{49, 21, '╰'},
		{51, 21, '╯'},
	}
	for _, c := range corners {
		if cell := g.At(c.col, c.row); cell.Rune != c.r || cell.FG != red {
			t.Logf("expected %q at %d,%d, got %+v", c.r, c.col, c.row, cell)
			t.Fail()
		}
	}
	if !strings.Contains(row(g, 18), "PERFECT +1500") {
		t.Logf("expected the hit text above the burst, got %q", row(g, 18))
		t.Fail()
	}
}

func TestDrawGameOver(t *testing.T) {
	g := NewGrid(80, 24)
	w := playing(g)
	w.state.Status = game.StatusGameOver
	w.state.MaxCombo = 7
	Draw(g, w, &theme.DefaultTheme{}, nil)

	if !strings.Contains(row(g, 12), "GAME OVER") {
		t.Logf("expected the game over banner, got %q", row(g, 12))
		t.Fail()
	}
	if !strings.Contains(row(g, 14), "score 1500   max combo 7") {
		t.Logf("expected the final score, got %q", row(g, 14))
		t.Fail()
	}
}

func TestBar(t *testing.T) {
	tests := []struct {
		frac     float64
		expected string
	}{
		{0, "[····]"},
		{0.5, "[██··]"},
		{1, "[████]"},
		{2, "[████]"},
		{-1, "[····]"},
	}
	for _, test := range tests {
		if b := bar(test.frac, 4); b != test.expected {
			t.Logf("bar(%v) = %q, expected %q", test.frac, b, test.expected)
			t.Fail()
		}
	}
}
