package session

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"git.lost.host/meutraa/whipbeat/internal/config"
	"git.lost.host/meutraa/whipbeat/internal/game"
	"git.lost.host/meutraa/whipbeat/internal/parser"
	"git.lost.host/meutraa/whipbeat/internal/score"
	"git.lost.host/meutraa/whipbeat/internal/testdata"
)

var viewport = game.Viewport{W: 800, H: 600}

func parse(t *testing.T, args ...string) *config.Config {
	t.Helper()
	c, err := config.Parse("whipbeat", append([]string{"--mute", "--seed=1"}, args...))
	if nil != err {
		t.Fatal(err)
	}
	return c
}

func write(t *testing.T, name, content string) string {
	t.Helper()
	file := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(file, []byte(content), 0o644); nil != err {
		t.Fatal(err)
	}
	return file
}

func TestOpenDefaults(t *testing.T) {
	s, err := Open(parse(t), viewport, nil, io.Discard)
	if nil != err {
		t.Fatal(err)
	}
	defer s.Close()

	if nil != s.Player {
		t.Log("a muted session should not open audio")
		t.Fail()
	}
	if n := s.Sim.Levels(); n != len(config.DefaultLevels) {
		t.Logf("expected the default levels, got %d", n)
		t.Fail()
	}
	s.Sim.Start()
	s.Sim.Advance(0.1)
	if status := s.Sim.State().Status; status != game.StatusPlaying {
		t.Logf("expected to be playing, got %v", status)
		t.Fail()
	}

	var out bytes.Buffer
	if err := s.WriteSummary(&out); nil != err {
		t.Fatal(err)
	}
	if out.String() != "No portals judged\n" {
		t.Logf("unexpected summary %q", out.String())
		t.Fail()
	}
}

func TestOpenWithFiles(t *testing.T) {
	levels := write(t, "levels.yaml", testdata.Levels)
	chart := write(t, "song.sm", testdata.SM)
	logFile := filepath.Join(t.TempDir(), "whipbeat.log")

	s, err := Open(parse(t, "--levels", levels, "--chart", chart, "--log-file", logFile), viewport, nil, io.Discard)
	if nil != err {
		t.Fatal(err)
	}
	if n := s.Sim.Levels(); n != 2 {
		t.Logf("expected two levels from the file, got %d", n)
		t.Fail()
	}
	s.Sim.Start()
	s.Sim.Advance(0.1)
	s.Close()

	data, err := os.ReadFile(logFile)
	if nil != err {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "chart Easy with 6 notes") || !strings.Contains(string(data), "playing, level 1") {
		t.Logf("unexpected log %q", data)
		t.Fail()
	}
}

func TestOpenErrors(t *testing.T) {
	dir := t.TempDir()
	tests := []struct {
		name string
		args []string
	}{
		{"missing levels", []string{"--levels", filepath.Join(dir, "missing.yaml")}},
		{"missing chart", []string{"--chart", filepath.Join(dir, "missing.sm")}},
		{"bad difficulty", []string{"--chart", write(t, "song.sm", testdata.SM), "--difficulty", "3"}},
		{"bad log file", []string{"--log-file", dir}},
	}
	for _, test := range tests {
		if s, err := Open(parse(t, test.args...), viewport, nil, io.Discard); nil == err {
			s.Close()
			t.Logf("%s: expected an error", test.name)
			t.Fail()
		}
	}
}

func TestLoadChart(t *testing.T) {
	file := write(t, "song.sm", testdata.SM)
	chart, err := LoadChart(&parser.DefaultParser{}, file, 0)
	if nil != err {
		t.Fatal(err)
	}
	if chart.Name != "Easy" {
		t.Logf("expected the Easy chart, got %q", chart.Name)
		t.Fail()
	}
	if _, err := LoadChart(&parser.DefaultParser{}, file, -1); nil == err {
		t.Log("expected an error for a negative difficulty")
		t.Fail()
	}
}

func TestWriteSummary(t *testing.T) {
	var out bytes.Buffer
	err := WriteSummary(&out, score.Summary{
		Total:   3,
		Score:   2500,
		Counts:  map[game.Quality]int{game.Perfect: 1, game.Good: 1, game.Miss: 1},
		ByClass: map[game.FrequencyClass]int{game.Bass: 2},
		Mean:    12 * time.Millisecond,
		Stdev:   4 * time.Millisecond,
	})
	if nil != err {
		t.Fatal(err)
	}
	expected := []string{
		"      Score:    2500",
		"      Total:       3",
		"       Mean:    12ms",
		"    perfect:       1",
		"       miss:       1",
		"       bass:       2",
		"      snare:       0",
	}
	for _, line := range expected {
		if !strings.Contains(out.String(), line+"\n") {
			t.Logf("missing %q in\n%s", line, out.String())
			t.Fail()
		}
	}
}
