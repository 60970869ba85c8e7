package theme

import (
	"image/color"

	"git.lost.host/meutraa/whipbeat/internal/game"
)

type DefaultTheme struct {
}

// palette is one dimension's look.
type palette struct {
	background color.RGBA
	whip       color.RGBA
	portals    [len(game.Classes)]color.RGBA // indexed by class
}

var (
	palettes = [game.DimensionCount]palette{
		{ // deep space
			background: color.RGBA{8, 10, 24, 255},
			whip:       color.RGBA{173, 236, 236, 255},
			portals:    [...]color.RGBA{{236, 30, 0, 255}, {0, 118, 236, 255}, {236, 195, 0, 255}},
		},
		{ // neon
			background: color.RGBA{20, 0, 28, 255},
			whip:       color.RGBA{0, 236, 128, 255},
			portals:    [...]color.RGBA{{236, 0, 106, 255}, {106, 0, 236, 255}, {0, 236, 236, 255}},
		},
		{ // ember
			background: color.RGBA{28, 8, 0, 255},
			whip:       color.RGBA{236, 195, 0, 255},
			portals:    [...]color.RGBA{{236, 128, 0, 255}, {236, 30, 0, 255}, {255, 236, 180, 255}},
		},
		{ // forest
			background: color.RGBA{4, 20, 10, 255},
			whip:       color.RGBA{200, 236, 160, 255},
			portals:    [...]color.RGBA{{110, 147, 89, 255}, {0, 236, 128, 255}, {236, 236, 106, 255}},
		},
		{ // mono
			background: color.RGBA{12, 12, 12, 255},
			whip:       color.RGBA{255, 255, 255, 255},
			portals:    [...]color.RGBA{{170, 170, 170, 255}, {210, 210, 210, 255}, {255, 255, 255, 255}},
		},
	}

	qualityColors = map[game.Quality]color.RGBA{
		game.Perfect: {236, 195, 0, 255},   // gold
		game.Great:   {0, 236, 128, 255},   // green
		game.Good:    {0, 118, 236, 255},   // blue
		game.Hit:     {173, 236, 236, 255}, // light blue
		game.Miss:    {236, 30, 0, 255},    // red
	}

	// larger bands get heavier glyphs
	glyphs = [len(game.Classes)]rune{'⬤', '●', '•'}
)

const (
	missedGlyph = '⨯'
	dimFactor   = 0.45
)

func (t *DefaultTheme) palette(d game.Dimension) *palette {
	return &palettes[int(d)%len(palettes)]
}

func (t *DefaultTheme) Background(d game.Dimension) color.RGBA {
	return t.palette(d).background
}

func (t *DefaultTheme) Portal(c game.FrequencyClass, d game.Dimension) color.RGBA {
	return t.palette(d).portals[classIndex(c)]
}

func (t *DefaultTheme) PortalGlyph(c game.FrequencyClass, s game.PortalState) rune {
	if s == game.Missed {
		return missedGlyph
	}
	return glyphs[classIndex(c)]
}

func (t *DefaultTheme) Whip(d game.Dimension) color.RGBA {
	return t.palette(d).whip
}

func (t *DefaultTheme) Quality(q game.Quality) color.RGBA {
	col, ok := qualityColors[q]
	if !ok {
		return color.RGBA{255, 255, 255, 255}
	}
	return col
}

func (t *DefaultTheme) Text() color.RGBA {
	return color.RGBA{236, 236, 236, 255}
}

// Dim darkens col, terminals have no alpha so the channels are scaled.
func Dim(col color.RGBA) color.RGBA {
	return color.RGBA{
		R: uint8(float64(col.R) * dimFactor),
		G: uint8(float64(col.G) * dimFactor),
		B: uint8(float64(col.B) * dimFactor),
		A: col.A,
	}
}

func classIndex(c game.FrequencyClass) int {
	if int(c) >= len(game.Classes) {
		return 0
	}
	return int(c)
}
