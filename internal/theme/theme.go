package theme

import (
	"image/color"

	"git.lost.host/meutraa/whipbeat/internal/game"
)

// Theme decides how the game looks in every dimension. Renderers ask it for
// colors and terminal glyphs and never hard code their own.
type Theme interface {
	Background(d game.Dimension) color.RGBA
	Portal(c game.FrequencyClass, d game.Dimension) color.RGBA
	PortalGlyph(c game.FrequencyClass, s game.PortalState) rune
	Whip(d game.Dimension) color.RGBA
	Quality(q game.Quality) color.RGBA
	Text() color.RGBA
}
