// Package session wires configuration, audio, the journal and the engine
// together for the frontends.
package session

import (
	"fmt"
	"io"
	"math/rand"
	"os"
	"time"

	"git.lost.host/meutraa/whipbeat/internal/audio"
	"git.lost.host/meutraa/whipbeat/internal/config"
	"git.lost.host/meutraa/whipbeat/internal/engine"
	"git.lost.host/meutraa/whipbeat/internal/game"
	"git.lost.host/meutraa/whipbeat/internal/log"
	"git.lost.host/meutraa/whipbeat/internal/parser"
	"git.lost.host/meutraa/whipbeat/internal/score"
)

type Session struct {
	Sim     *engine.Simulation
	Journal *score.Journal
	Player  *audio.Player
	Log     *log.Logger

	logFile *os.File
}

// Open builds a simulation from c. Logs go to the configured log file, or
// to fallback when there is none. The caller must Close the session.
func Open(c *config.Config, v game.Viewport, pointer engine.Pointer, fallback io.Writer) (*Session, error) {
	s := &Session{}
	out := fallback
	if c.LogFile != "" {
		f, err := os.OpenFile(c.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if nil != err {
			return nil, fmt.Errorf("unable to open log file: %w", err)
		}
		s.logFile = f
		out = f
	}
	s.Log = log.New(out, log.LevelFromString(c.LogLevel))

	levels, err := c.LevelData()
	if nil != err {
		s.Close()
		return nil, err
	}

	var chart *game.Chart
	if c.Chart != "" {
		if chart, err = LoadChart(&parser.DefaultParser{}, c.Chart, c.Difficulty); nil != err {
			s.Close()
			return nil, err
		}
		s.Log.Infof("chart %s with %d notes", chart.Name, chart.NoteCount)
	}

	if s.Journal, err = score.OpenJournal(s.Log); nil != err {
		s.Close()
		return nil, err
	}

	var player engine.Audio
	if !c.Mute {
		s.Player = audio.New(c.MusicDir, s.Log)
		if err := s.Player.Init(); nil != err {
			s.Log.Warnf("audio disabled: %v", err)
		}
		player = s.Player
	}

	seed := c.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	s.Log.Debugf("seed %d", seed)

	s.Sim, err = engine.New(engine.Options{
		Levels:       levels,
		Viewport:     v,
		BeatInterval: c.BeatInterval,
		Volume:       c.EffectiveVolume(),
		Chart:        chart,
		LeadTime:     c.LeadTime,
		Rand:         rand.New(rand.NewSource(seed)),
		Audio:        player,
		Pointer:      pointer,
		Listener:     &logListener{log: s.Log},
		Recorder:     s.Journal,
		Log:          s.Log,
	})
	if nil != err {
		s.Close()
		return nil, err
	}
	return s, nil
}

// LoadChart parses file and picks one of its charts.
func LoadChart(p parser.Parser, file string, difficulty int) (*game.Chart, error) {
	charts, err := p.Parse(file)
	if nil != err {
		return nil, err
	}
	if difficulty < 0 || difficulty >= len(charts) {
		return nil, fmt.Errorf("difficulty %d out of range, %s has %d charts", difficulty, file, len(charts))
	}
	return charts[difficulty], nil
}

func (s *Session) Close() {
	if nil != s.Player {
		s.Player.Close()
	}
	if nil != s.Journal {
		if err := s.Journal.Close(); nil != err {
			s.Log.Warnf("unable to close journal: %v", err)
		}
	}
	if nil != s.logFile {
		s.logFile.Close()
	}
}

// WriteSummary prints the judgement breakdown of the whole session.
func (s *Session) WriteSummary(w io.Writer) error {
	sum, err := s.Journal.Summary(-1)
	if nil != err {
		return err
	}
	return WriteSummary(w, sum)
}

func WriteSummary(w io.Writer, sum score.Summary) error {
	if sum.Total == 0 {
		_, err := fmt.Fprintln(w, "No portals judged")
		return err
	}
	if _, err := fmt.Fprintf(w, "      Score:  %6v\n", sum.Score); nil != err {
		return err
	}
	fmt.Fprintf(w, "      Total:  %6v\n", sum.Total)
	fmt.Fprintf(w, "       Mean:  %6v\n", sum.Mean)
	fmt.Fprintf(w, "      Stdev:  %6v\n", sum.Stdev)
	for _, q := range game.Qualities {
		fmt.Fprintf(w, "%11v:  %6v\n", q, sum.Counts[q])
	}
	for _, c := range game.Classes {
		fmt.Fprintf(w, "%11v:  %6v\n", c, sum.ByClass[c])
	}
	return nil
}

// logListener writes status changes to the log.
type logListener struct {
	log *log.Logger
}

func (l *logListener) StateChanged(s game.GameState, changed game.Field) {
	if changed.Has(game.FieldStatus) {
		l.log.Infof("%v, level %d, score %d", s.Status, s.Level+1, s.Score)
	}
	if changed.Has(game.FieldDimension) {
		l.log.Debugf("dimension %d", s.Dimension)
	}
}
