package engine

import (
	"git.lost.host/meutraa/whipbeat/internal/game"
	"git.lost.host/meutraa/whipbeat/internal/geom"
)

type fixedRand struct {
	f float64
	n int
}

func (r *fixedRand) Float64() float64 { return r.f }
func (r *fixedRand) Intn(n int) int {
	if r.n >= n {
		return n - 1
	}
	return r.n
}

type recordingAudio struct {
	sounds  []string
	music   []string
	paused  int
	resumed int
	stopped int
}

func (a *recordingAudio) PlaySound(name string, _ float64) { a.sounds = append(a.sounds, name) }
func (a *recordingAudio) PlayMusic(name string, _ float64) { a.music = append(a.music, name) }
func (a *recordingAudio) PauseAll()                        { a.paused++ }
func (a *recordingAudio) ResumeAll()                       { a.resumed++ }
func (a *recordingAudio) StopAll()                         { a.stopped++ }

func (a *recordingAudio) played(name string) int {
	n := 0
	for _, s := range a.sounds {
		if s == name {
			n++
		}
	}
	return n
}

type recordingListener struct {
	states  []game.GameState
	changes []game.Field
}

func (l *recordingListener) StateChanged(s game.GameState, changed game.Field) {
	l.states = append(l.states, s)
	l.changes = append(l.changes, changed)
}

func (l *recordingListener) saw(f game.Field) bool {
	for _, c := range l.changes {
		if c.Has(f) {
			return true
		}
	}
	return false
}

type recordingRecorder struct {
	judgements []game.Judgement
}

func (r *recordingRecorder) Record(j game.Judgement) {
	r.judgements = append(r.judgements, j)
}

type fakePointer struct {
	speed    float64
	velocity geom.Vec
}

func (p *fakePointer) Speed() float64     { return p.speed }
func (p *fakePointer) Velocity() geom.Vec { return p.velocity }
