package engine

import (
	"git.lost.host/meutraa/whipbeat/internal/game"
)

// newGame resets everything and starts the first level. Anything scheduled
// by an earlier game is invalidated. Audio is stopped first, which also
// lifts a pause left by the previous game.
func (s *Simulation) newGame() {
	s.audio.StopAll()
	s.epoch++
	s.events = nil
	s.effects = nil
	s.beats.Reset()
	s.state = game.GameState{
		Health: game.MaxHealth,
		Status: game.StatusPlaying,
	}
	s.mark(game.FieldAll)
	s.log.Infof("new game, %d levels", len(s.levels))
	s.startLevel(0)
}

func (s *Simulation) startLevel(index int) {
	level := s.levels[index]
	s.state.Level = index
	s.state.PortalsHit = 0
	s.state.PortalsTotal = 0
	s.state.Progress = 0
	s.state.Elapsed = 0
	s.state.Status = game.StatusPlaying
	s.state.Song = level.Music
	s.mark(game.FieldLevel | game.FieldCounters | game.FieldProgress | game.FieldStatus | game.FieldSong)

	s.entities.Clear()
	s.spawns.Reset(level.SpawnInterval())
	s.rateSpawns = 0
	s.levelStart = s.clock
	if nil != s.chart {
		s.chart.Rewind()
	}

	s.addEffect(s.viewport.Origin(), bannerDuration, game.LevelBanner{Level: index, Name: level.Name})
	s.audio.PlayMusic(level.Music, s.volume)
	s.log.Infof("level %d (%s) needs %d hits", index+1, level.Name, level.RequiredHits)
}

func (s *Simulation) setPaused(paused bool) {
	switch {
	case paused && s.state.Status == game.StatusPlaying:
		s.state.Status = game.StatusPaused
		s.audio.PauseAll()
	case !paused && s.state.Status == game.StatusPaused:
		s.state.Status = game.StatusPlaying
		s.audio.ResumeAll()
	default:
		return
	}
	s.mark(game.FieldStatus)
	s.log.Debugf("status %v", s.state.Status)
}

func (s *Simulation) completeLevel() {
	s.state.Status = game.StatusLevelComplete
	s.mark(game.FieldStatus)
	s.audio.PlaySound(SoundLevelComplete, s.volume)
	s.schedule(LevelCompleteDelay, eventNextLevel, game.StatusLevelComplete)
	s.log.Infof("level %d complete with %d hits", s.state.Level+1, s.state.PortalsHit)
}

// nextLevel awards the finished level's bonus and moves on, or ends the
// game after the last level.
func (s *Simulation) nextLevel() {
	s.state.Score += s.Level().BonusScore
	s.mark(game.FieldScore)

	next := s.state.Level + 1
	if next >= len(s.levels) {
		s.log.Infof("all %d levels cleared", len(s.levels))
		s.gameOver()
		return
	}
	s.shiftDimension()
	s.startLevel(next)
}

func (s *Simulation) shiftDimension() {
	from := s.state.Dimension
	s.state.Dimension = game.Dimension(s.rng.Intn(game.DimensionCount))
	s.mark(game.FieldDimension)
	s.addEffect(s.viewport.Origin(), shiftDuration, game.DimensionShift{From: from, To: s.state.Dimension})
}

func (s *Simulation) gameOver() {
	if s.state.Status == game.StatusGameOver {
		return
	}
	s.state.Status = game.StatusGameOver
	s.mark(game.FieldStatus)
	s.audio.StopAll()
	s.audio.PlaySound(SoundGameOver, s.volume)
	s.log.Infof("game over: score %d, max combo %d", s.state.Score, s.state.MaxCombo)
}

func (s *Simulation) toMenu() {
	s.epoch++
	s.events = nil
	s.effects = nil
	s.entities.Clear()
	if s.state.Status != game.StatusMenu {
		s.state.Status = game.StatusMenu
		s.mark(game.FieldStatus)
	}
	s.audio.StopAll()
}
