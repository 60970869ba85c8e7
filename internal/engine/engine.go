package engine

import (
	"errors"
	"math/rand"
	"time"

	"git.lost.host/meutraa/whipbeat/internal/beat"
	"git.lost.host/meutraa/whipbeat/internal/entity"
	"git.lost.host/meutraa/whipbeat/internal/game"
	"git.lost.host/meutraa/whipbeat/internal/geom"
	"git.lost.host/meutraa/whipbeat/internal/log"
	"git.lost.host/meutraa/whipbeat/internal/score"
)

// LevelCompleteDelay is how long the level complete screen shows before
// the next level starts.
const LevelCompleteDelay = 2 * time.Second

var ErrNoLevels = errors.New("engine: no levels")

type Options struct {
	Levels       []game.LevelData
	Viewport     game.Viewport
	BeatInterval time.Duration
	Volume       float64

	// Chart, when set, adds stationary portals for every note, LeadTime
	// before the note is due.
	Chart    *game.Chart
	LeadTime time.Duration

	Rand     entity.Rand
	Scorer   score.Scorer
	Audio    Audio
	Pointer  Pointer
	Listener StateListener
	Recorder score.Recorder
	Log      *log.Logger
}

// Simulation is the whole game. It is only mutated from Advance and is not
// safe for concurrent use.
type Simulation struct {
	levels   []game.LevelData
	viewport game.Viewport
	volume   float64
	chart    *game.Chart
	lead     time.Duration

	rng      entity.Rand
	scorer   score.Scorer
	audio    Audio
	pointer  Pointer
	listener StateListener
	recorder score.Recorder
	log      *log.Logger

	state      game.GameState
	changed    game.Field
	clock      time.Duration // advances only while the game runs
	levelStart time.Duration
	rateSpawns int

	beats    *beat.Scheduler
	spawns   beat.Timer
	entities *entity.Manager
	effects  []*game.Effect

	commands []command
	events   []scheduledEvent
	epoch    uint64
}

func New(opts Options) (*Simulation, error) {
	if len(opts.Levels) == 0 {
		return nil, ErrNoLevels
	}
	s := &Simulation{
		levels:   opts.Levels,
		viewport: opts.Viewport,
		volume:   opts.Volume,
		chart:    opts.Chart,
		lead:     opts.LeadTime,
		rng:      opts.Rand,
		scorer:   opts.Scorer,
		audio:    opts.Audio,
		pointer:  opts.Pointer,
		listener: opts.Listener,
		recorder: opts.Recorder,
		log:      opts.Log,
		beats:    beat.NewScheduler(opts.BeatInterval),
	}
	if nil == s.rng {
		s.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if nil == s.scorer {
		s.scorer = &score.DefaultScorer{}
	}
	if nil == s.audio {
		s.audio = nopAudio{}
	}
	if nil == s.pointer {
		s.pointer = stillPointer{}
	}
	if nil == s.log {
		s.log = log.Discard()
	}
	if s.lead <= 0 {
		s.lead = 1500 * time.Millisecond
	}
	s.entities = entity.NewManager(s.rng)
	s.state = game.GameState{
		Status: game.StatusMenu,
		Health: game.MaxHealth,
	}
	return s, nil
}

func (s *Simulation) State() game.GameState {
	return s.state
}

func (s *Simulation) Level() game.LevelData {
	return s.levels[s.state.Level]
}

func (s *Simulation) Levels() int {
	return len(s.levels)
}

func (s *Simulation) Portals() []*game.Portal {
	return s.entities.Portals
}

func (s *Simulation) Whips() []*game.Whip {
	return s.entities.Whips
}

func (s *Simulation) Effects() []*game.Effect {
	return s.effects
}

// Traveling is the portal the player is travelling through, or nil.
func (s *Simulation) Traveling() *game.Portal {
	return s.entities.Traveling
}

// Now is the simulation clock. It stops while paused.
func (s *Simulation) Now() time.Duration {
	return s.clock
}

func (s *Simulation) Beat() uint64 {
	return s.beats.Beat()
}

func (s *Simulation) BeatPhase() float64 {
	return s.beats.Phase()
}

func (s *Simulation) Viewport() game.Viewport {
	return s.viewport
}

// Resize changes the pixel size of the play field. Portals keep their
// normalized positions.
func (s *Simulation) Resize(v game.Viewport) {
	s.viewport = v
}

func (s *Simulation) mark(f game.Field) {
	s.changed |= f
}

func (s *Simulation) addEffect(pos geom.Vec, d time.Duration, payload game.EffectPayload) {
	s.effects = append(s.effects, &game.Effect{
		Pos:      pos,
		Start:    s.clock,
		Duration: d,
		Payload:  payload,
	})
}

func (s *Simulation) expireEffects() {
	live := s.effects[:0]
	for _, e := range s.effects {
		if e.Alive(s.clock) {
			live = append(live, e)
		}
	}
	for i := len(live); i < len(s.effects); i++ {
		s.effects[i] = nil
	}
	s.effects = live
}
