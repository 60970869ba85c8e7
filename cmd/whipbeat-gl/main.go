package main

import (
	"log"
	"os"
	"path/filepath"

	"git.lost.host/meutraa/whipbeat/internal/config"
	"git.lost.host/meutraa/whipbeat/internal/game"
	"git.lost.host/meutraa/whipbeat/internal/input"
	"git.lost.host/meutraa/whipbeat/internal/session"
	"git.lost.host/meutraa/whipbeat/internal/window"
)

func main() {
	if err := run(); nil != err {
		log.Fatalln(err)
	}
}

func run() error {
	c, err := config.Parse(filepath.Base(os.Args[0]), os.Args[1:])
	if nil != err {
		return err
	}

	tracker := &input.Tracker{}
	v := game.Viewport{W: float64(c.Width), H: float64(c.Height)}
	s, err := session.Open(c, v, tracker, os.Stderr)
	if nil != err {
		return err
	}
	defer s.Close()

	g := window.New(s.Sim, window.Options{
		Cursor: input.NewCursor(tracker),
		Assets: c.AssetsDir,
		Log:    s.Log,
	})
	if err := window.Run(g, "whipbeat", c.Width, c.Height); nil != err {
		return err
	}
	return s.WriteSummary(os.Stdout)
}
