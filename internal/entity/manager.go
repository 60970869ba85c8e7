package entity

import (
	"math"
	"time"

	"git.lost.host/meutraa/whipbeat/internal/game"
	"git.lost.host/meutraa/whipbeat/internal/geom"
)

const (
	SpawnX     = -0.1 // movers enter from off screen left
	OffscreenX = 1.2
	TargetX    = 0.5 // where a mover is meant to be hit
	ActiveMinX = 0.3
	ActiveMaxX = 0.7

	LaneJitter  = 0.03
	SpeedJitter = 0.1

	ExtendRate = 2.0 // whip progress per second
	TrailFade  = 2.0 // trail alpha per second
	MaxTrail   = 48

	// Stationary chart portals are active from ChartWindow before their
	// target until a whip clicked ChartWindow late could still reach them.
	ChartWindow = 200 * time.Millisecond
	WhipReach   = 500 * time.Millisecond // full extension at ExtendRate

	TravelDuration = 1200 * time.Millisecond
)

// Rand is the subset of *rand.Rand the manager draws from.
type Rand interface {
	Float64() float64
	Intn(n int) int
}

// Manager owns the live portals and whips.
type Manager struct {
	Portals   []*game.Portal
	Whips     []*game.Whip
	Traveling *game.Portal // the portal being travelled through, if any

	rng    Rand
	nextID uint64
}

type Collision struct {
	Whip   *game.Whip
	Portal *game.Portal
}

func NewManager(rng Rand) *Manager {
	return &Manager{rng: rng}
}

func (m *Manager) id() uint64 {
	m.nextID++
	return m.nextID
}

// jitter returns a value in [-1,1).
func (m *Manager) jitter() float64 {
	return m.rng.Float64()*2 - 1
}

func (m *Manager) lane() (int, float64) {
	lane := m.rng.Intn(game.LaneCount)
	return lane, game.Lanes[lane] + m.jitter()*LaneJitter
}

// SpawnMoving adds a portal that crosses the screen left to right at
// roughly baseSpeed.
func (m *Manager) SpawnMoving(class game.FrequencyClass, baseSpeed float64, now time.Duration) *game.Portal {
	spec := class.Spec()
	speed := baseSpeed * (1 + m.jitter()*SpeedJitter)
	if speed <= 0 {
		speed = spec.Speed
	}
	lane, y := m.lane()
	travel := time.Duration(math.Round((TargetX - SpawnX) / speed * float64(time.Second)))
	p := &game.Portal{
		ID:         m.id(),
		Class:      class,
		X:          SpawnX,
		Y:          y,
		Z:          spec.Depth,
		Speed:      speed,
		Lane:       lane,
		SpawnTime:  now,
		TargetTime: now + travel,
		State:      game.Approach,
		IsMoving:   true,
	}
	m.Portals = append(m.Portals, p)
	return p
}

// SpawnBeat is the beat triggered path, any class is equally likely.
func (m *Manager) SpawnBeat(now time.Duration) *game.Portal {
	class := game.Classes[m.rng.Intn(len(game.Classes))]
	return m.SpawnMoving(class, class.Spec().Speed, now)
}

// SpawnNote places a stationary portal for a chart note. levelStart is the
// clock value the chart times are relative to.
func (m *Manager) SpawnNote(n *game.Note, lead, levelStart, now time.Duration) *game.Portal {
	class := n.Class()
	spec := class.Spec()
	lane := n.Lane()
	target := levelStart + n.Time
	p := &game.Portal{
		ID:         m.id(),
		Class:      class,
		X:          spec.PresetX,
		Y:          game.Lanes[lane] + m.jitter()*LaneJitter,
		Z:          spec.Depth,
		Lane:       lane,
		SpawnTime:  target - lead,
		TargetTime: target,
		State:      game.Approach,
	}
	m.Portals = append(m.Portals, p)
	m.updateState(p, now)
	return p
}

// Fire launches a whip from start towards target. Sideways pointer motion
// bends the curve.
func (m *Manager) Fire(start, target geom.Vec, speed float64, velocity geom.Vec, now time.Duration) *game.Whip {
	if speed < 0 {
		speed = 0
	}
	dir := target.Sub(start)
	length := dir.Len()
	mid := start.Add(dir.Scale(0.5))
	normal := dir.Norm().Perp()
	bend := (velocity.X*normal.X + velocity.Y*normal.Y) * bendScale
	limit := length * maxBend
	bend = math.Max(-limit, math.Min(limit, bend))

	w := &game.Whip{
		ID:     m.id(),
		Start:  start,
		Target: target,
		Curve: geom.Bezier{
			Start:   start,
			Control: mid.Add(normal.Scale(bend)),
			End:     target,
		},
		Velocity:     math.Max(speed, minVelocity),
		Active:       true,
		Extending:    true,
		HitDetection: true,
		Wave:         m.wave(speed),
		CreatedAt:    now,
		Trail:        []game.TrailPoint{{X: start.X, Y: start.Y, Alpha: 1}},
	}
	m.Whips = append(m.Whips, w)
	return w
}

const (
	bendScale   = 0.15 // seconds of sideways pointer travel
	maxBend     = 0.35 // of the straight length
	minVelocity = 200  // px/s
)

func (m *Manager) wave(speed float64) geom.WavePattern {
	kind := geom.WaveSine
	switch {
	case speed >= 1800:
		kind = geom.WaveSquare
	case speed >= 1000:
		kind = geom.WaveSawtooth
	case speed >= 400:
		kind = geom.WaveCosine
	}
	return geom.WavePattern{
		Amplitude: math.Min(4+speed*0.01, 24),
		Frequency: 12 + math.Min(speed, 3000)*0.005,
		Phase:     m.rng.Float64() * 2 * math.Pi,
		Decay:     1.5,
		Kind:      kind,
	}
}

func (m *Manager) updateState(p *game.Portal, now time.Duration) {
	if p.IsMoving {
		if p.X > ActiveMinX && p.X < ActiveMaxX {
			p.State = game.Active
		} else {
			p.State = game.Approach
		}
	} else {
		switch {
		case now > p.TargetTime+ChartWindow+WhipReach:
			p.State = game.Missed
		case now >= p.TargetTime-ChartWindow:
			p.State = game.Active
		default:
			p.State = game.Approach
		}
	}
	p.BeatMatch = p.State == game.Active
}

// Advance moves everything by dt seconds. Stationary portals that ran out
// of time are removed and returned so the caller can count the miss.
func (m *Manager) Advance(dt float64, now time.Duration) []*game.Portal {
	if dt < 0 {
		dt = 0
	}
	var missed []*game.Portal

	portals := m.Portals[:0]
	for _, p := range m.Portals {
		if p.IsMoving {
			p.X += p.Speed * dt
		}
		m.updateState(p, now)
		switch {
		case p.State == game.Missed:
			missed = append(missed, p)
		case p.X > OffscreenX:
		default:
			portals = append(portals, p)
		}
	}
	clearTail(m.Portals, len(portals))
	m.Portals = portals

	whips := m.Whips[:0]
	for _, w := range m.Whips {
		if !w.Extending || w.Progress >= 1 {
			w.Active = false
			w.Extending = false
			continue
		}
		w.Progress = math.Min(1, w.Progress+dt*ExtendRate)
		if w.Progress >= 1 {
			w.Extending = false
		}
		fadeTrail(w, dt)
		head := w.Head()
		w.Trail = append(w.Trail, game.TrailPoint{X: head.X, Y: head.Y, Alpha: 1})
		if len(w.Trail) > MaxTrail {
			w.Trail = w.Trail[len(w.Trail)-MaxTrail:]
		}
		whips = append(whips, w)
	}
	for i := len(whips); i < len(m.Whips); i++ {
		m.Whips[i] = nil
	}
	m.Whips = whips

	if nil != m.Traveling {
		m.Traveling.TravelProgress += dt / TravelDuration.Seconds()
		if m.Traveling.TravelProgress >= 1 {
			m.Traveling.TravelProgress = 1
			m.Traveling = nil
		}
	}
	return missed
}

func fadeTrail(w *game.Whip, dt float64) {
	trail := w.Trail[:0]
	for _, tp := range w.Trail {
		tp.Alpha -= dt * TrailFade
		if tp.Alpha > 0 {
			trail = append(trail, tp)
		}
	}
	w.Trail = trail
}

func clearTail(s []*game.Portal, from int) {
	for i := from; i < len(s); i++ {
		s[i] = nil
	}
}

// Collide tests every armed whip head against every active portal. A whip
// registers at most one hit, the portal it hit is removed.
func (m *Manager) Collide(v game.Viewport) []Collision {
	var hits []Collision
	for _, w := range m.Whips {
		if !w.Active || !w.HitDetection {
			continue
		}
		head := w.Head()
		for _, p := range m.Portals {
			if p.State != game.Active || p.Judged {
				continue
			}
			if geom.Hit(head, p.Center(v), p.Radius(v)) {
				w.HitDetection = false
				p.Judged = true
				hits = append(hits, Collision{Whip: w, Portal: p})
				break
			}
		}
	}
	if len(hits) == 0 {
		return nil
	}
	portals := m.Portals[:0]
	for _, p := range m.Portals {
		if !p.Judged {
			portals = append(portals, p)
		}
	}
	clearTail(m.Portals, len(portals))
	m.Portals = portals
	return hits
}

func (m *Manager) StartTravel(p *game.Portal) {
	p.Traveling = true
	p.TravelProgress = 0
	m.Traveling = p
}

func (m *Manager) Clear() {
	m.Portals = nil
	m.Whips = nil
	m.Traveling = nil
}
