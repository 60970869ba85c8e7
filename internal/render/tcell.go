package render

import (
	"fmt"
	"image/color"

	"git.lost.host/meutraa/whipbeat/internal/geom"
	"git.lost.host/meutraa/whipbeat/internal/theme"
	"github.com/gdamore/tcell/v2"
)

// TcellRenderer draws through tcell, which also reports mouse and resize
// events.
type TcellRenderer struct {
	Theme  theme.Theme
	Screen tcell.Screen // a new terminal screen when nil

	grid   *Grid
	events chan tcell.Event
}

func (r *TcellRenderer) Init() error {
	if nil == r.Screen {
		s, err := tcell.NewScreen()
		if nil != err {
			return fmt.Errorf("unable to create screen: %w", err)
		}
		r.Screen = s
	}
	if err := r.Screen.Init(); nil != err {
		return fmt.Errorf("unable to init screen: %w", err)
	}
	r.Screen.EnableMouse(tcell.MouseMotionEvents)
	r.Screen.HideCursor()
	r.Screen.Clear()

	r.events = make(chan tcell.Event, 128)
	go r.poll(r.Screen, r.events)
	if nil == r.Theme {
		r.Theme = &theme.DefaultTheme{}
	}
	return nil
}

// poll forwards events until the screen is finalized.
func (r *TcellRenderer) poll(s tcell.Screen, events chan<- tcell.Event) {
	for {
		ev := s.PollEvent()
		if nil == ev {
			close(events)
			return
		}
		events <- ev
	}
}

func (r *TcellRenderer) Deinit() error {
	r.Screen.DisableMouse()
	r.Screen.Fini()
	return nil
}

// Events delivers key, mouse and resize events from the terminal. It is
// closed after Deinit.
func (r *TcellRenderer) Events() <-chan tcell.Event {
	return r.events
}

func (r *TcellRenderer) Size() (int, int) {
	return r.Screen.Size()
}

// Grid is the last drawn frame, used to map mouse cells to pixels.
func (r *TcellRenderer) Grid() *Grid {
	if nil == r.grid {
		cols, rows := r.Size()
		r.grid = NewGrid(cols, rows)
	}
	return r.grid
}

func style(fg, bg color.RGBA) tcell.Style {
	return tcell.StyleDefault.
		Foreground(tcell.NewRGBColor(int32(fg.R), int32(fg.G), int32(fg.B))).
		Background(tcell.NewRGBColor(int32(bg.R), int32(bg.G), int32(bg.B)))
}

func (r *TcellRenderer) Render(w World, cursor *geom.Vec) error {
	g := r.Grid()
	if cols, rows := r.Size(); cols != g.Cols || rows != g.Rows {
		g.Resize(cols, rows)
		r.Screen.Clear()
	}
	Draw(g, w, r.Theme, cursor)
	// tcell keeps its own copy of the screen and only sends differences
	for row := 0; row < g.Rows; row++ {
		for col := 0; col < g.Cols; col++ {
			c := g.At(col, row)
			r.Screen.SetContent(col, row, c.Rune, nil, style(c.FG, c.BG))
		}
	}
	r.Screen.Show()
	return nil
}

// Pointer is the pixel position of a mouse event on the play field.
func (r *TcellRenderer) Pointer(ev *tcell.EventMouse) geom.Vec {
	g := r.Grid()
	col, row := ev.Position()
	return g.PixelOf(col, row, g.Viewport())
}
