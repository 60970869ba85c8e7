package engine

import (
	"git.lost.host/meutraa/whipbeat/internal/game"
	"git.lost.host/meutraa/whipbeat/internal/geom"
)

// Commands are queued by the frontend and applied at the start of the next
// Advance, so every state change happens inside the tick.
type command interface {
	apply(s *Simulation)
}

type fireCommand struct {
	target   geom.Vec
	speed    float64
	velocity geom.Vec
}

type startCommand struct{}
type pauseCommand struct{ paused bool }
type togglePauseCommand struct{}
type restartCommand struct{}
type menuCommand struct{}

func (s *Simulation) enqueue(c command) {
	s.commands = append(s.commands, c)
}

// Fire launches a whip at target (pixels) with the pointer motion measured
// at the moment of the click.
func (s *Simulation) Fire(target geom.Vec, speed float64, velocity geom.Vec) {
	s.enqueue(fireCommand{target: target, speed: speed, velocity: velocity})
}

// FireAt asks the pointer collaborator for the current motion.
func (s *Simulation) FireAt(target geom.Vec) {
	s.Fire(target, s.pointer.Speed(), s.pointer.Velocity())
}

func (s *Simulation) Start()           { s.enqueue(startCommand{}) }
func (s *Simulation) SetPaused(p bool) { s.enqueue(pauseCommand{paused: p}) }
func (s *Simulation) Resume()          { s.enqueue(pauseCommand{paused: false}) }
func (s *Simulation) TogglePause()     { s.enqueue(togglePauseCommand{}) }
func (s *Simulation) Restart()         { s.enqueue(restartCommand{}) }
func (s *Simulation) ReturnToMenu()    { s.enqueue(menuCommand{}) }
func (s *Simulation) Pending() int     { return len(s.commands) }

func (s *Simulation) drain() {
	commands := s.commands
	s.commands = nil
	for _, c := range commands {
		c.apply(s)
	}
}

func (c fireCommand) apply(s *Simulation) {
	if s.state.Status != game.StatusPlaying {
		s.log.Debugf("fire ignored while %v", s.state.Status)
		return
	}
	w := s.entities.Fire(s.viewport.Origin(), c.target, c.speed, c.velocity, s.clock)
	s.log.Debugf("whip %d fired at %.0f,%.0f speed %.0f", w.ID, c.target.X, c.target.Y, c.speed)
	s.audio.PlaySound(SoundWhip, s.volume)
}

func (startCommand) apply(s *Simulation) {
	if s.state.Status != game.StatusMenu {
		s.log.Debugf("start ignored while %v", s.state.Status)
		return
	}
	s.newGame()
}

func (c pauseCommand) apply(s *Simulation) {
	s.setPaused(c.paused)
}

func (togglePauseCommand) apply(s *Simulation) {
	switch s.state.Status {
	case game.StatusPlaying:
		s.setPaused(true)
	case game.StatusPaused:
		s.setPaused(false)
	}
}

func (restartCommand) apply(s *Simulation) {
	s.newGame()
}

func (menuCommand) apply(s *Simulation) {
	s.toMenu()
}
