package window

import (
	"fmt"
	"image/color"
	"math"
	"os"
	"path/filepath"
	"strings"

	"git.lost.host/meutraa/whipbeat/internal/entity"
	"git.lost.host/meutraa/whipbeat/internal/game"
	"git.lost.host/meutraa/whipbeat/internal/geom"
	"git.lost.host/meutraa/whipbeat/internal/theme"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	_ "image/jpeg"
	_ "image/png"
)

const (
	whipSegments   = 32
	backdropAlpha  = 0.35
	debugCharWidth = 6 // ebitenutil debug font
	lineHeight     = 16
)

// fade scales a color for drawing at alpha a. Colors are premultiplied.
func fade(c color.RGBA, a float64) color.RGBA {
	a = math.Max(0, math.Min(1, a))
	return color.RGBA{
		R: uint8(float64(c.R) * a),
		G: uint8(float64(c.G) * a),
		B: uint8(float64(c.B) * a),
		A: uint8(float64(c.A) * a),
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	s := g.sim.State()
	screen.Fill(g.theme.Background(s.Dimension))
	if s.Status == game.StatusMenu {
		g.drawBanner(screen, s)
		return
	}

	g.drawBackdrop(screen, s.Dimension)
	g.drawField(screen)
	for _, p := range g.sim.Portals() {
		g.drawPortal(screen, p, s.Dimension)
	}
	for _, w := range g.sim.Whips() {
		g.drawWhip(screen, w, g.theme.Whip(s.Dimension))
	}
	for _, e := range g.sim.Effects() {
		g.drawEffect(screen, e, s.Dimension)
	}
	g.drawHUD(screen, s)
	g.drawBanner(screen, s)
}

// background loads a level backdrop once, falling back to a generated one.
func (g *Game) background(name string, d game.Dimension) *ebiten.Image {
	key := fmt.Sprintf("%s/%d", name, d)
	if img, ok := g.backgrounds[key]; ok {
		return img
	}
	var img *ebiten.Image
	if name != "" {
		path, err := findBackground(g.assets, name)
		var loaded *ebiten.Image
		if nil == err {
			loaded, _, err = ebitenutil.NewImageFromFile(path)
		}
		if nil != err {
			g.log.Warnf("unable to load background %s: %v", name, err)
		} else {
			img = loaded
		}
	}
	if nil == img {
		img = ebiten.NewImageFromImage(placeholder(g.theme, d, placeholderSize, placeholderSize))
	}
	g.backgrounds[key] = img
	return img
}

var imageExts = []string{".png", ".jpg", ".jpeg"}

// findBackground resolves a background name against the assets directory.
func findBackground(dir, name string) (string, error) {
	candidates := []string{filepath.Join(dir, name)}
	if filepath.Ext(name) == "" {
		candidates = candidates[:0]
		for _, ext := range imageExts {
			candidates = append(candidates, filepath.Join(dir, name+ext))
		}
	}
	for _, c := range candidates {
		if info, err := os.Stat(c); nil == err && !info.IsDir() {
			return c, nil
		}
	}
	return "", fmt.Errorf("%s not found in %s", name, dir)
}

func (g *Game) drawBackdrop(screen *ebiten.Image, d game.Dimension) {
	img := g.background(g.sim.Level().Background, d)
	b := img.Bounds()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(g.w)/float64(b.Dx()), float64(g.h)/float64(b.Dy()))
	op.ColorScale.ScaleAlpha(backdropAlpha)
	screen.DrawImage(img, op)
}

func (g *Game) drawField(screen *ebiten.Image) {
	v := g.sim.Viewport()
	col := fade(theme.Dim(g.theme.Text()), 0.6)
	for _, x := range []float64{entity.ActiveMinX, entity.ActiveMaxX} {
		px := float32(x * v.W)
		vector.StrokeLine(screen, px, 0, px, float32(v.H), 1, col, false)
	}
}

func (g *Game) drawPortal(screen *ebiten.Image, p *game.Portal, d game.Dimension) {
	v := g.sim.Viewport()
	c := p.Center(v)
	r := float32(p.Radius(v))
	col := g.theme.Portal(p.Class, d)

	switch p.State {
	case game.Active:
		vector.DrawFilledCircle(screen, float32(c.X), float32(c.Y), r, fade(col, 0.5), true)
		vector.StrokeCircle(screen, float32(c.X), float32(c.Y), r, 3, col, true)
	case game.Approach:
		vector.StrokeCircle(screen, float32(c.X), float32(c.Y), r, 2, theme.Dim(col), true)
	case game.Missed:
		red := g.theme.Quality(game.Miss)
		vector.StrokeLine(screen, float32(c.X)-r/2, float32(c.Y)-r/2, float32(c.X)+r/2, float32(c.Y)+r/2, 3, red, true)
		vector.StrokeLine(screen, float32(c.X)+r/2, float32(c.Y)-r/2, float32(c.X)-r/2, float32(c.Y)+r/2, 3, red, true)
	}
	if p.Traveling {
		vector.StrokeCircle(screen, float32(c.X), float32(c.Y), r*float32(1+p.TravelProgress), 2, col, true)
	}
}

func (g *Game) drawWhip(screen *ebiten.Image, w *game.Whip, col color.RGBA) {
	now := g.sim.Now()
	for _, tp := range w.Trail {
		vector.DrawFilledCircle(screen, float32(tp.X), float32(tp.Y), 2, fade(col, tp.Alpha), true)
	}

	elapsed := (now - w.CreatedAt).Seconds()
	prev := w.Start
	for i := 1; i <= whipSegments; i++ {
		t := w.Progress * float64(i) / whipSegments
		p := w.Curve.Point(t)
		p = p.Add(geom.WaveOffset(t, w.Wave, elapsed, w.Start, p))
		// thinner towards the tip
		width := float32(4 - 3*float64(i)/whipSegments)
		vector.StrokeLine(screen, float32(prev.X), float32(prev.Y), float32(p.X), float32(p.Y), width, col, true)
		prev = p
	}
	head := w.DisplayHead(now)
	vector.DrawFilledCircle(screen, float32(head.X), float32(head.Y), 5, col, true)
}

func (g *Game) drawEffect(screen *ebiten.Image, e *game.Effect, d game.Dimension) {
	progress := e.Progress(g.sim.Now())
	x, y := float32(e.Pos.X), float32(e.Pos.Y)

	switch p := e.Payload.(type) {
	case game.BeatPulse:
		col := fade(g.theme.Portal(p.Category, d), 1-progress)
		vector.StrokeCircle(screen, x, y, float32(10+progress*40), 2, col, true)
	case game.HitBurst:
		col := fade(g.theme.Quality(p.Quality), 1-progress)
		vector.StrokeCircle(screen, x, y, float32(20+progress*60), 4, col, true)
		text := fmt.Sprintf("%s +%d", strings.ToUpper(p.Quality.String()), p.Points)
		ebitenutil.DebugPrintAt(screen, text, int(x)-len(text)*debugCharWidth/2, int(y)-40-int(progress*20))
	case game.MissMark:
		red := fade(g.theme.Quality(game.Miss), 1-progress)
		vector.StrokeLine(screen, x-12, y-12, x+12, y+12, 3, red, true)
		vector.StrokeLine(screen, x+12, y-12, x-12, y+12, 3, red, true)
	case game.ComboFlash:
		text := fmt.Sprintf("COMBO x%d", p.Combo)
		ebitenutil.DebugPrintAt(screen, text, int(x)-len(text)*debugCharWidth/2, int(y)+30)
	case game.LevelBanner:
		if g.sim.State().Status == game.StatusPlaying {
			g.center(screen, g.h/3, fmt.Sprintf("LEVEL %d  %s", p.Level+1, p.Name))
		}
	case game.DimensionShift:
		g.center(screen, g.h/3+lineHeight*2, fmt.Sprintf("DIMENSION %d", p.To+1))
	case game.Travel:
		col := fade(g.theme.Portal(p.Class, d), 1-progress)
		vector.StrokeCircle(screen, x, y, float32(30+progress*float64(g.w)/2), 6, col, true)
	}
}

func (g *Game) center(screen *ebiten.Image, y int, text string) {
	ebitenutil.DebugPrintAt(screen, text, (g.w-len([]rune(text))*debugCharWidth)/2, y)
}

func (g *Game) drawHUD(screen *ebiten.Image, s game.GameState) {
	level := g.sim.Level()
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("SCORE %d   COMBO x%d   MAX %d   LEVEL %d/%d %s",
		s.Score, s.Combo, s.MaxCombo, s.Level+1, g.sim.Levels(), level.Name), 8, 4)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("HITS %d/%d", s.PortalsHit, level.RequiredHits), 8, 4+lineHeight*2)

	const barW, barH = 160, 8
	bars := []struct {
		frac float64
		col  color.RGBA
	}{
		{float64(s.Health) / game.MaxHealth, g.theme.Quality(game.Perfect)},
		{s.Progress / 100, g.theme.Whip(s.Dimension)},
	}
	if s.Health <= game.MaxHealth/4 {
		bars[0].col = g.theme.Quality(game.Miss)
	}
	for i, b := range bars {
		x := float32(g.w - barW - 8)
		y := float32(8 + i*(barH+6))
		vector.DrawFilledRect(screen, x, y, barW, barH, theme.Dim(g.theme.Text()), false)
		vector.DrawFilledRect(screen, x, y, barW*float32(math.Max(0, math.Min(1, b.frac))), barH, b.col, false)
	}

	if g.sim.BeatPhase() < 0.25 {
		vector.DrawFilledCircle(screen, float32(g.w-barW-24), 12, 5, g.theme.Whip(s.Dimension), true)
	}
}

func (g *Game) drawBanner(screen *ebiten.Image, s game.GameState) {
	var lines []string
	switch s.Status {
	case game.StatusMenu:
		lines = []string{"W H I P B E A T", "", "click or press enter to start"}
	case game.StatusPaused:
		lines = []string{"PAUSED", "", "p or enter to resume, m for the menu"}
	case game.StatusLevelComplete:
		lines = []string{"LEVEL COMPLETE"}
	case game.StatusGameOver:
		lines = []string{"GAME OVER", "", fmt.Sprintf("score %d   max combo %d", s.Score, s.MaxCombo), "", "enter to play again"}
	}
	for i, line := range lines {
		g.center(screen, g.h/2+i*lineHeight, line)
	}
}
