package render

import (
	"fmt"
	"image/color"
	"math"
	"strings"

	"git.lost.host/meutraa/whipbeat/internal/entity"
	"git.lost.host/meutraa/whipbeat/internal/game"
	"git.lost.host/meutraa/whipbeat/internal/geom"
	"git.lost.host/meutraa/whipbeat/internal/theme"
)

const (
	whipSamples = 24
	barWidth    = 20
	ringPoints  = 16
)

var (
	statusBanner = map[game.Status]string{
		game.StatusMenu:          "W H I P B E A T",
		game.StatusPaused:        "PAUSED",
		game.StatusLevelComplete: "LEVEL COMPLETE",
		game.StatusGameOver:      "GAME OVER",
	}
	statusHint = map[game.Status]string{
		game.StatusMenu:     "enter to start, q to quit",
		game.StatusPaused:   "p or enter to resume, m for the menu",
		game.StatusGameOver: "enter to play again, m for the menu",
	}
)

// Draw renders the world into g, the grid is resized by the caller.
func Draw(g *Grid, w World, th theme.Theme, cursor *geom.Vec) {
	state := w.State()
	v := w.Viewport()
	g.Clear(th.Background(state.Dimension))

	if state.Status != game.StatusMenu {
		drawField(g, v, th)
		for _, p := range w.Portals() {
			drawPortal(g, p, v, th, state.Dimension)
		}
		for _, wh := range w.Whips() {
			drawWhip(g, wh, w, v, th.Whip(state.Dimension))
		}
		for _, e := range w.Effects() {
			drawEffect(g, e, w, v, th)
		}
		if nil != cursor {
			col, row := g.CellOf(*cursor, v)
			g.Set(col, row, '+', th.Text())
		}
	}
	drawHUD(g, w, th)
}

// drawField marks the band where moving portals can be hit.
func drawField(g *Grid, v game.Viewport, th theme.Theme) {
	col := theme.Dim(th.Text())
	left, _ := g.CellOf(v.ToScreen(entity.ActiveMinX, 0), v)
	right, _ := g.CellOf(v.ToScreen(entity.ActiveMaxX, 0), v)
	for row := 3; row < g.Rows; row += 2 {
		g.Set(left, row, '┊', col)
		g.Set(right, row, '┊', col)
	}
}

func drawPortal(g *Grid, p *game.Portal, v game.Viewport, th theme.Theme, d game.Dimension) {
	col := th.Portal(p.Class, d)
	if p.State != game.Active {
		col = theme.Dim(col)
	}
	glyph := th.PortalGlyph(p.Class, p.State)
	cx, cy := g.CellOf(p.Center(v), v)

	// the hit radius in cells, an ellipse because cells are not square
	rx := p.Radius(v) * float64(g.Cols) / v.W
	ry := p.Radius(v) * float64(g.Rows) / v.H
	if rx < 1 && ry < 1 {
		g.Set(cx, cy, glyph, col)
		return
	}
	rx, ry = math.Max(rx, 0.5), math.Max(ry, 0.5)
	for row := cy - int(ry); row <= cy+int(ry); row++ {
		for c := cx - int(rx); c <= cx+int(rx); c++ {
			dx := float64(c-cx) / rx
			dy := float64(row-cy) / ry
			if dx*dx+dy*dy <= 1 {
				g.Set(c, row, glyph, col)
			}
		}
	}
}

func drawWhip(g *Grid, wh *game.Whip, w World, v game.Viewport, col color.RGBA) {
	dim := theme.Dim(col)
	for _, tp := range wh.Trail {
		if tp.Alpha < 0.3 {
			continue
		}
		c, r := g.CellOf(geom.Vec{X: tp.X, Y: tp.Y}, v)
		g.Set(c, r, '.', dim)
	}

	elapsed := (w.Now() - wh.CreatedAt).Seconds()
	for i := 0; i <= whipSamples; i++ {
		t := wh.Progress * float64(i) / whipSamples
		p := wh.Curve.Point(t)
		p = p.Add(geom.WaveOffset(t, wh.Wave, elapsed, wh.Start, p))
		c, r := g.CellOf(p, v)
		g.Set(c, r, '·', col)
	}
	c, r := g.CellOf(wh.DisplayHead(w.Now()), v)
	g.Set(c, r, '◆', col)
}

// ring draws glyph on a circle of radius cells around a pixel position.
func ring(g *Grid, center geom.Vec, v game.Viewport, radius float64, glyph rune, col color.RGBA) {
	cx, cy := g.CellOf(center, v)
	for i := 0; i < ringPoints; i++ {
		a := 2 * math.Pi * float64(i) / ringPoints
		// halve the vertical radius, cells are tall
		g.Set(cx+int(math.Round(radius*math.Cos(a))), cy+int(math.Round(radius*math.Sin(a)/2)), glyph, col)
	}
}

func drawEffect(g *Grid, e *game.Effect, w World, v game.Viewport, th theme.Theme) {
	progress := e.Progress(w.Now())
	cx, cy := g.CellOf(e.Pos, v)
	d := w.State().Dimension

	switch p := e.Payload.(type) {
	case game.BeatPulse:
		ring(g, e.Pos, v, 1+progress*3, '·', th.Portal(p.Category, d))
	case game.HitBurst:
		text := fmt.Sprintf("%s +%d", strings.ToUpper(p.Quality.String()), p.Points)
		g.Text(cx-len(text)/2, cy-2-int(progress*2), text, th.Quality(p.Quality))
	case game.MissMark:
		red := th.Quality(game.Miss)
		g.Set(cx-1, cy-1, '╭', red)
		g.Set(cx+1, cy-1, '╮', red)
		g.Set(cx-1, cy+1, '╰', red)
		g.Set(cx+1, cy+1, '╯', red)
	case game.ComboFlash:
		text := fmt.Sprintf("COMBO x%d", p.Combo)
		g.Text(cx-len(text)/2, cy+2, text, th.Quality(game.Perfect))
	case game.LevelBanner:
		if w.State().Status == game.StatusPlaying {
			g.Center(g.Rows/3, fmt.Sprintf("LEVEL %d  %s", p.Level+1, p.Name), th.Text())
		}
	case game.DimensionShift:
		g.Center(g.Rows/3+2, fmt.Sprintf("DIMENSION %d", p.To+1), th.Whip(p.To))
	case game.Travel:
		ring(g, e.Pos, v, 1+progress*8, '*', th.Portal(p.Class, d))
	}
}

func bar(frac float64, width int) string {
	n := int(math.Round(math.Max(0, math.Min(1, frac)) * float64(width)))
	return "[" + strings.Repeat("█", n) + strings.Repeat("·", width-n) + "]"
}

func drawHUD(g *Grid, w World, th theme.Theme) {
	s := w.State()
	text := th.Text()

	if s.Status != game.StatusMenu {
		level := w.Level()
		g.Text(1, 0, fmt.Sprintf("SCORE %8d   COMBO x%-4d MAX %-4d   LEVEL %d/%d %s",
			s.Score, s.Combo, s.MaxCombo, s.Level+1, w.Levels(), level.Name), text)

		health := th.Quality(game.Perfect)
		if s.Health <= game.MaxHealth/4 {
			health = th.Quality(game.Miss)
		}
		g.Text(1, 1, fmt.Sprintf("HP %s %3d", bar(float64(s.Health)/game.MaxHealth, barWidth), s.Health), health)
		g.Text(barWidth+12, 1, fmt.Sprintf("PROGRESS %s %3.0f%%   HITS %d/%d",
			bar(s.Progress/100, barWidth), s.Progress, s.PortalsHit, level.RequiredHits), text)

		if w.BeatPhase() < 0.25 {
			g.Set(g.Cols-2, 0, '♪', th.Whip(s.Dimension))
		}
	}

	banner, ok := statusBanner[s.Status]
	if !ok {
		return
	}
	mid := g.Rows / 2
	g.Center(mid, banner, text)
	if s.Status == game.StatusGameOver {
		g.Center(mid+2, fmt.Sprintf("score %d   max combo %d", s.Score, s.MaxCombo), text)
	}
	if hint, ok := statusHint[s.Status]; ok {
		g.Center(mid+4, hint, theme.Dim(text))
	}
}
