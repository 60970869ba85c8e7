package render

import (
	"testing"
	"time"

	"git.lost.host/meutraa/whipbeat/internal/game"
	"github.com/gdamore/tcell/v2"
)

func TestTcellRender(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	r := &TcellRenderer{Screen: screen}
	if err := r.Init(); nil != err {
		t.Fatal(err)
	}
	screen.SetSize(40, 12)

	w := &fakeWorld{state: game.GameState{Status: game.StatusMenu}}
	if err := r.Render(w, nil); nil != err {
		t.Fatal(err)
	}
	if cols, rows := r.Size(); cols != 40 || rows != 12 {
		t.Logf("expected a 40x12 screen, got %dx%d", cols, rows)
		t.Fail()
	}
	// W H I P B E A T centered on the middle row
	if primary, _, _, _ := screen.GetContent(12, 6); primary != 'W' {
		t.Logf("expected the title at 12,6, got %q", primary)
		t.Fail()
	}

	p := r.Pointer(tcell.NewEventMouse(12, 6, tcell.Button1, tcell.ModNone))
	if p.X != 100 || p.Y != 104 {
		t.Logf("expected the cell center at 100,104, got %v", p)
		t.Fail()
	}

	if err := r.Deinit(); nil != err {
		t.Fatal(err)
	}
	timeout := time.After(time.Second)
	for {
		select {
		case _, ok := <-r.Events():
			if !ok {
				return
			}
		case <-timeout:
			t.Fatal("events were not closed after Deinit")
		}
	}
}
