package render

import (
	"bytes"
	"image/color"
	"strings"
	"testing"

	"git.lost.host/meutraa/whipbeat/internal/game"
)

func TestFillColor(t *testing.T) {
	var out bytes.Buffer
	r := &DefaultRenderer{Out: &out}
	r.FillColor(3, 7, color.RGBA{1, 2, 3, 255}, color.RGBA{4, 5, 6, 255}, "x")
	if err := r.flush(); nil != err {
		t.Fatal(err)
	}
	expected := "\033[3;7H\033[38;2;1;2;3;48;2;4;5;6mx\033[0m"
	if out.String() != expected {
		t.Logf("expected %q, got %q", expected, out.String())
		t.Fail()
	}
}

func TestRenderGridOnlyWritesChanges(t *testing.T) {
	var out bytes.Buffer
	r := &DefaultRenderer{Out: &out}
	g := NewGrid(20, 6)
	w := playing(g)
	w.state.Status = game.StatusMenu

	if err := r.RenderGrid(g, w, nil); nil != err {
		t.Fatal(err)
	}
	first := out.String()
	if !strings.HasPrefix(first, "\033[1;1H\033[38;2;") {
		t.Logf("expected the first cell to be positioned at 1;1, got %q", first[:20])
		t.Fail()
	}
	if n := strings.Count(first, "H\033[38;2;"); n != 20*6 {
		t.Logf("expected every cell on the first frame, got %d", n)
		t.Fail()
	}

	out.Reset()
	if err := r.RenderGrid(g, w, nil); nil != err {
		t.Fatal(err)
	}
	if out.Len() != 0 {
		t.Logf("an unchanged frame should write nothing, got %q", out.String())
		t.Fail()
	}

	w.state.Status = game.StatusPaused
	if err := r.RenderGrid(g, w, nil); nil != err {
		t.Fatal(err)
	}
	if !strings.Contains(out.String(), "P") || out.Len() == 0 {
		t.Logf("expected the pause banner to be written, got %q", out.String())
		t.Fail()
	}
}
