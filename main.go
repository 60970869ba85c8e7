package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"time"

	"git.lost.host/meutraa/whipbeat/internal/config"
	"git.lost.host/meutraa/whipbeat/internal/game"
	"git.lost.host/meutraa/whipbeat/internal/input"
	"git.lost.host/meutraa/whipbeat/internal/render"
	"git.lost.host/meutraa/whipbeat/internal/session"
	"github.com/gdamore/tcell/v2"
)

func main() {
	if err := run(); nil != err {
		log.Fatalln(err)
	}
}

// controls turns whatever the terminal reported since the last frame into
// actions.
type controls interface {
	Poll(status game.Status, cursor *input.Cursor, v game.Viewport, now time.Time) ([]input.Action, error)
	Close() error
}

type keyboardControls struct {
	keys *input.Keyboard
}

func (k *keyboardControls) Poll(game.Status, *input.Cursor, game.Viewport, time.Time) ([]input.Action, error) {
	return k.keys.Poll()
}

func (k *keyboardControls) Close() error {
	return k.keys.Close()
}

// tcellControls reads keys and the mouse from a tcell screen.
type tcellControls struct {
	r       *render.TcellRenderer
	buttons tcell.ButtonMask
}

func (c *tcellControls) Poll(status game.Status, cursor *input.Cursor, v game.Viewport, now time.Time) ([]input.Action, error) {
	var actions []input.Action
	events := c.r.Events()
	for len(events) > 0 {
		switch ev := (<-events).(type) {
		case *tcell.EventKey:
			if a := input.TranslateTcell(ev); a != input.ActionNone {
				actions = append(actions, a)
			}
		case *tcell.EventMouse:
			cursor.Point(c.r.Pointer(ev), v, now)
			pressed := ev.Buttons() & tcell.Button1
			if pressed != 0 && c.buttons&tcell.Button1 == 0 {
				actions = append(actions, input.Click(status))
			}
			c.buttons = ev.Buttons()
		case *tcell.EventResize:
			c.r.Screen.Sync()
		}
	}
	return actions, nil
}

func (c *tcellControls) Close() error {
	return nil
}

func run() error {
	c, err := config.Parse(filepath.Base(os.Args[0]), os.Args[1:])
	if nil != err {
		return err
	}

	// the terminal is ours, so logs only go to a file
	tracker := &input.Tracker{}
	cursor := input.NewCursor(tracker)
	s, err := session.Open(c, game.Viewport{}, tracker, io.Discard)
	if nil != err {
		return err
	}
	defer s.Close()

	var r render.Renderer
	var in controls
	switch c.Screen {
	case config.ScreenANSI:
		keys, err := input.OpenKeyboard()
		if nil != err {
			return err
		}
		r, in = &render.DefaultRenderer{}, &keyboardControls{keys: keys}
	default:
		tr := &render.TcellRenderer{}
		r, in = tr, &tcellControls{r: tr}
	}
	if err := r.Init(); nil != err {
		in.Close()
		return fmt.Errorf("unable to open the %s screen: %w", c.Screen, err)
	}

	var loopErr error
	render.Loop(c.FramePeriod(), func(now time.Time, dt time.Duration) bool {
		cols, rows := r.Size()
		v := game.Viewport{W: float64(cols * render.CellWidth), H: float64(rows * render.CellHeight)}
		if v != s.Sim.Viewport() {
			s.Sim.Resize(v)
		}

		actions, err := in.Poll(s.Sim.State().Status, cursor, v, now)
		if nil != err {
			loopErr = err
			return false
		}
		for _, a := range actions {
			if !input.Apply(s.Sim, a, cursor, v, now) {
				return false
			}
		}
		tracker.Settle(now)

		s.Sim.Advance(dt.Seconds())

		aim := cursor.Screen(v)
		if err := r.Render(s.Sim, &aim); nil != err {
			loopErr = err
			return false
		}
		return true
	})

	if err := in.Close(); nil != err {
		s.Log.Warnf("unable to close input: %v", err)
	}
	if err := r.Deinit(); nil != err {
		loopErr = errors.Join(loopErr, err)
	}
	if nil != loopErr {
		return loopErr
	}
	return s.WriteSummary(os.Stdout)
}
