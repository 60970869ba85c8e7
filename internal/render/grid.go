package render

import (
	"image/color"

	"git.lost.host/meutraa/whipbeat/internal/game"
	"git.lost.host/meutraa/whipbeat/internal/geom"
)

// Pixel size of one terminal cell. Cells are about twice as tall as wide.
const (
	CellWidth  = 8
	CellHeight = 16
)

type Cell struct {
	Rune rune
	FG   color.RGBA
	BG   color.RGBA
}

// Grid is a frame of terminal cells. It remembers the previous frame so
// only the cells that changed need to be sent to the terminal.
type Grid struct {
	Cols, Rows int

	cells []Cell
	prev  []Cell
	bg    color.RGBA
}

func NewGrid(cols, rows int) *Grid {
	g := &Grid{}
	g.Resize(cols, rows)
	return g
}

// Resize drops the previous frame, so the next Changed reports every cell.
func (g *Grid) Resize(cols, rows int) {
	if cols < 0 {
		cols = 0
	}
	if rows < 0 {
		rows = 0
	}
	g.Cols, g.Rows = cols, rows
	g.cells = make([]Cell, cols*rows)
	g.prev = nil
	g.Clear(g.bg)
}

// Viewport is the pixel play field that fits this grid.
func (g *Grid) Viewport() game.Viewport {
	return game.Viewport{W: float64(g.Cols * CellWidth), H: float64(g.Rows * CellHeight)}
}

func (g *Grid) Clear(bg color.RGBA) {
	if bg != g.bg {
		g.bg = bg
		g.prev = nil
	}
	for i := range g.cells {
		g.cells[i] = Cell{Rune: ' ', BG: bg}
	}
}

func (g *Grid) inside(col, row int) bool {
	return col >= 0 && row >= 0 && col < g.Cols && row < g.Rows
}

func (g *Grid) Set(col, row int, r rune, fg color.RGBA) {
	if !g.inside(col, row) {
		return
	}
	g.cells[row*g.Cols+col] = Cell{Rune: r, FG: fg, BG: g.bg}
}

func (g *Grid) At(col, row int) Cell {
	if !g.inside(col, row) {
		return Cell{}
	}
	return g.cells[row*g.Cols+col]
}

func (g *Grid) Text(col, row int, s string, fg color.RGBA) {
	for _, r := range s {
		g.Set(col, row, r, fg)
		col++
	}
}

// Center writes s centered on row.
func (g *Grid) Center(row int, s string, fg color.RGBA) {
	g.Text((g.Cols-len([]rune(s)))/2, row, s, fg)
}

// CellOf maps a pixel position in v onto the grid.
func (g *Grid) CellOf(p geom.Vec, v game.Viewport) (int, int) {
	if v.W <= 0 || v.H <= 0 {
		return -1, -1
	}
	return int(p.X / v.W * float64(g.Cols)), int(p.Y / v.H * float64(g.Rows))
}

// PixelOf is the pixel position in v of the center of a cell.
func (g *Grid) PixelOf(col, row int, v game.Viewport) geom.Vec {
	if g.Cols == 0 || g.Rows == 0 {
		return geom.Vec{}
	}
	return geom.Vec{
		X: (float64(col) + 0.5) / float64(g.Cols) * v.W,
		Y: (float64(row) + 0.5) / float64(g.Rows) * v.H,
	}
}

// Changed calls fn for every cell that differs from the previous frame and
// makes this frame the previous one.
func (g *Grid) Changed(fn func(col, row int, c Cell)) {
	for i, c := range g.cells {
		if nil != g.prev && g.prev[i] == c {
			continue
		}
		fn(i%g.Cols, i/g.Cols, c)
	}
	if len(g.prev) != len(g.cells) {
		g.prev = make([]Cell, len(g.cells))
	}
	copy(g.prev, g.cells)
}
