package render

import (
	"fmt"
	"image/color"
	"io"
	"os"
	"strconv"
	"strings"

	"git.lost.host/meutraa/whipbeat/internal/geom"
	"git.lost.host/meutraa/whipbeat/internal/theme"
	"golang.org/x/term"
)

// DefaultRenderer writes ANSI escape sequences straight to the terminal.
type DefaultRenderer struct {
	Theme theme.Theme
	Out   io.Writer // os.Stdout when nil

	buffer       strings.Builder
	restoreState *term.State
	grid         *Grid
}

func (r *DefaultRenderer) out() io.Writer {
	if nil == r.Out {
		return os.Stdout
	}
	return r.Out
}

func (r *DefaultRenderer) Init() error {
	state, err := term.MakeRaw(int(os.Stdout.Fd()))
	if nil != err {
		return fmt.Errorf("unable to make the terminal raw: %w", err)
	}
	r.restoreState = state

	fmt.Fprintf(r.out(), "%s%s%s",
		"\033[?1049h", // Enable alternate buffer
		"\033[?25l",   // Make the cursor invisible
		"\033[J",      // Clear the screen
	)
	return nil
}

func (r *DefaultRenderer) Deinit() error {
	fmt.Fprintf(r.out(), "%s%s%s",
		"\033[0m",     // Reset colors
		"\033[?1049l", // Disable alternate buffer
		"\033[?25h",   // Make the cursor visible
	)
	if nil == r.restoreState {
		return nil
	}
	return term.Restore(int(os.Stdout.Fd()), r.restoreState)
}

func (r *DefaultRenderer) Size() (int, int) {
	cols, rows, err := term.GetSize(int(os.Stdout.Fd()))
	if nil != err {
		return 80, 24
	}
	return cols, rows
}

func (r *DefaultRenderer) Render(w World, cursor *geom.Vec) error {
	cols, rows := r.Size()
	if nil == r.grid {
		r.grid = NewGrid(cols, rows)
	} else if cols != r.grid.Cols || rows != r.grid.Rows {
		r.grid.Resize(cols, rows)
	}
	return r.RenderGrid(r.grid, w, cursor)
}

// RenderGrid draws into g and writes out the cells that changed.
func (r *DefaultRenderer) RenderGrid(g *Grid, w World, cursor *geom.Vec) error {
	if nil == r.Theme {
		r.Theme = &theme.DefaultTheme{}
	}
	Draw(g, w, r.Theme, cursor)
	g.Changed(func(col, row int, c Cell) {
		// terminal rows and columns start at 1
		r.FillColor(uint16(row+1), uint16(col+1), c.FG, c.BG, string(c.Rune))
	})
	return r.flush()
}

func (r *DefaultRenderer) FillColor(row, column uint16, fg, bg color.RGBA, message string) {
	r.buffer.WriteString("\033[")
	r.buffer.WriteString(strconv.FormatInt(int64(row), 10))
	r.buffer.WriteString(";")
	r.buffer.WriteString(strconv.FormatInt(int64(column), 10))
	r.buffer.WriteString("H\033[38;2;")
	writeRGB(&r.buffer, fg)
	r.buffer.WriteString(";48;2;")
	writeRGB(&r.buffer, bg)
	r.buffer.WriteString("m")
	r.buffer.WriteString(message)
	r.buffer.WriteString("\033[0m")
}

func writeRGB(b *strings.Builder, c color.RGBA) {
	b.WriteString(strconv.FormatInt(int64(c.R), 10))
	b.WriteString(";")
	b.WriteString(strconv.FormatInt(int64(c.G), 10))
	b.WriteString(";")
	b.WriteString(strconv.FormatInt(int64(c.B), 10))
}

func (r *DefaultRenderer) flush() error {
	if r.buffer.Len() == 0 {
		return nil
	}
	_, err := io.WriteString(r.out(), r.buffer.String())
	r.buffer.Reset()
	return err
}
