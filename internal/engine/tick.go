package engine

import (
	"math"
	"time"

	"git.lost.host/meutraa/whipbeat/internal/beat"
	"git.lost.host/meutraa/whipbeat/internal/entity"
	"git.lost.host/meutraa/whipbeat/internal/game"
	"git.lost.host/meutraa/whipbeat/internal/score"
)

const (
	pulseDuration  = 200 * time.Millisecond
	burstDuration  = 600 * time.Millisecond
	missDuration   = 500 * time.Millisecond
	comboDuration  = 800 * time.Millisecond
	bannerDuration = LevelCompleteDelay
	shiftDuration  = 1500 * time.Millisecond

	comboFlashEvery = 10

	// progress contributed by elapsed time is weighted down against hits
	timeProgressWeight = 0.7
)

var cueVolume = map[game.FrequencyClass]float64{
	game.Bass:  0.9,
	game.Snare: 0.7,
	game.HiHat: 0.5,
}

// Advance runs one tick of dt seconds. Negative or NaN deltas count as 0.
func (s *Simulation) Advance(dt float64) {
	if dt < 0 || math.IsNaN(dt) || math.IsInf(dt, 0) {
		dt = 0
	}
	s.drain()

	switch s.state.Status {
	case game.StatusPlaying:
		s.step(dt)
	case game.StatusLevelComplete:
		s.settle(dt)
	}
	s.flush()
}

func seconds(dt float64) time.Duration {
	return time.Duration(math.Round(dt * float64(time.Second)))
}

func (s *Simulation) step(dt float64) {
	d := seconds(dt)
	s.clock += d
	s.state.Elapsed += d

	for _, b := range s.beats.Advance(d) {
		s.onBeat(b.Index, b.Category)
	}

	level := s.Level()
	for n := s.spawns.Advance(d); n > 0; n-- {
		class := level.PatternClass(s.rateSpawns)
		s.rateSpawns++
		s.spawned(s.entities.SpawnMoving(class, level.PortalSpeed, s.clock))
	}

	if nil != s.chart {
		for _, note := range s.chart.Due(s.state.Elapsed, s.lead) {
			s.spawned(s.entities.SpawnNote(note, s.lead, s.levelStart, s.clock))
		}
	}

	missed := s.entities.Advance(dt, s.clock)
	for i, p := range missed {
		s.judge(p, s.clock)
		if s.state.Status != game.StatusPlaying {
			// the rest are already off the field, they still go in the journal
			for _, rest := range missed[i+1:] {
				s.record(s.assess(rest, s.clock))
			}
			break
		}
	}

	if s.state.Status == game.StatusPlaying {
		hits := s.entities.Collide(s.viewport)
		for i, c := range hits {
			s.collide(c)
			if s.state.Status != game.StatusPlaying {
				for _, rest := range hits[i+1:] {
					s.record(s.assess(rest.Portal, rest.Whip.CreatedAt))
				}
				break
			}
		}
	}

	if s.state.Status == game.StatusPlaying && s.state.PortalsHit >= level.RequiredHits {
		s.completeLevel()
	}
	s.updateProgress()
	s.expireEffects()
	s.fireEvents()
}

// settle keeps the level complete screen alive: whips finish and effects
// fade, but nothing spawns, collides or is judged.
func (s *Simulation) settle(dt float64) {
	s.clock += seconds(dt)
	s.entities.Advance(dt, s.clock)
	s.expireEffects()
	s.fireEvents()
}

func (s *Simulation) onBeat(index uint64, category game.FrequencyClass) {
	s.audio.PlaySound(category.String(), s.volume*cueVolume[category])
	s.addEffect(s.viewport.Origin(), pulseDuration, game.BeatPulse{Beat: index, Category: category})
	if s.rng.Float64() < beat.SpawnChance(category) {
		s.spawned(s.entities.SpawnBeat(s.clock))
	}
}

func (s *Simulation) spawned(p *game.Portal) {
	s.state.PortalsTotal++
	s.mark(game.FieldCounters)
	s.log.Debugf("portal %d %v lane %d target %v", p.ID, p.Class, p.Lane, p.TargetTime)
}

func (s *Simulation) collide(c entity.Collision) {
	s.judge(c.Portal, c.Whip.CreatedAt)
}

// judge scores an attempt on p made at time at. Timed out chart portals
// come through here too and always land outside every window.
func (s *Simulation) judge(p *game.Portal, at time.Duration) {
	j := s.assess(p, at)
	s.record(j)
	q, points := j.Quality, j.Score

	center := p.Center(s.viewport)
	if q == game.Miss {
		s.addEffect(center, missDuration, game.MissMark{Class: p.Class})
		s.audio.PlaySound(SoundMiss, s.volume)
		s.miss()
		return
	}

	s.state.Score += points
	s.state.Combo++
	if s.state.Combo > s.state.MaxCombo {
		s.state.MaxCombo = s.state.Combo
	}
	s.state.PortalsHit++
	s.mark(game.FieldScore | game.FieldCombo | game.FieldCounters)

	s.addEffect(center, burstDuration, game.HitBurst{Quality: q, Points: points})
	if s.state.Combo%comboFlashEvery == 0 {
		s.addEffect(center, comboDuration, game.ComboFlash{Combo: s.state.Combo})
	}
	s.audio.PlaySound(q.String(), s.volume)

	s.entities.StartTravel(p)
	s.addEffect(center, entity.TravelDuration, game.Travel{Class: p.Class})
	s.audio.PlaySound(SoundTravel, s.volume*0.6)
}

// assess grades an attempt on p without touching the game state.
func (s *Simulation) assess(p *game.Portal, at time.Duration) game.Judgement {
	diff := score.Distance(p.TargetTime, at)
	combo := s.state.Combo
	q, points := s.scorer.Judge(diff, p.BeatMatch, combo)
	if p.State == game.Missed {
		q, points = game.Miss, 0
	}
	p.HitQuality = q
	p.Judged = true
	return game.Judgement{
		Quality:   q,
		Score:     points,
		Diff:      diff,
		BeatMatch: p.BeatMatch,
		Class:     p.Class,
		Level:     s.state.Level,
		Combo:     combo,
	}
}

func (s *Simulation) record(j game.Judgement) {
	if nil != s.recorder {
		s.recorder.Record(j)
	}
}

// miss resets the combo and costs one health point. Running out of health
// ends the game immediately, whatever the status.
func (s *Simulation) miss() {
	if s.state.Combo != 0 {
		s.state.Combo = 0
		s.mark(game.FieldCombo)
	}
	if s.state.Health > 0 {
		s.state.Health--
		s.mark(game.FieldHealth)
	}
	if s.state.Health <= 0 {
		s.gameOver()
	}
}

func (s *Simulation) updateProgress() {
	level := s.Level()
	progress := 0.0
	if level.RequiredHits > 0 {
		progress = float64(s.state.PortalsHit) / float64(level.RequiredHits) * 100
	}
	if level.TimeLimit > 0 {
		byTime := float64(s.state.Elapsed) / float64(level.TimeLimit) * 100 * timeProgressWeight
		progress = math.Max(progress, byTime)
	}
	progress = math.Min(progress, 100)
	if progress != s.state.Progress {
		s.state.Progress = progress
		s.mark(game.FieldProgress)
	}
}

func (s *Simulation) flush() {
	if s.changed == 0 {
		return
	}
	changed := s.changed
	s.changed = 0
	if nil != s.listener {
		s.listener.StateChanged(s.state, changed)
	}
}
