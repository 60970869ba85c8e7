package audio

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"sync"
	"time"

	"git.lost.host/meutraa/whipbeat/internal/log"
	"github.com/faiface/beep"
	"github.com/faiface/beep/effects"
	"github.com/faiface/beep/mp3"
	"github.com/faiface/beep/speaker"
	"github.com/faiface/beep/vorbis"
)

const SampleRate = beep.SampleRate(44100)

var errNoSong = errors.New("no song")

// musicExts are tried in order when a song name has no extension.
var musicExts = [...]string{".ogg", ".mp3"}

// Player mixes synthesized cues and level music. Every call returns
// immediately, the speaker pulls from the mixer on its own goroutine.
type Player struct {
	dir string
	log *log.Logger

	mu    sync.Mutex
	live  bool // the speaker is running and owns the mixer lock
	mixer *beep.Mixer
	ctrl  *beep.Ctrl

	// cut is shared by every sound started since the last StopAll
	cut   *bool
	music *handle
	song  beep.StreamSeekCloser
}

// handle lets a single stream be dropped from the mixer. The mixer removes
// streams once they report they are drained.
type handle struct {
	s   beep.Streamer
	cut *bool
}

func (h *handle) Stream(samples [][2]float64) (int, bool) {
	if *h.cut {
		return 0, false
	}
	return h.s.Stream(samples)
}

func (h *handle) Err() error {
	return h.s.Err()
}

// New prepares a player that looks for music in dir. Nothing is heard
// until Init.
func New(dir string, l *log.Logger) *Player {
	if nil == l {
		l = log.Discard()
	}
	mixer := &beep.Mixer{}
	return &Player{
		dir:   dir,
		log:   l,
		mixer: mixer,
		ctrl:  &beep.Ctrl{Streamer: mixer},
		cut:   new(bool),
	}
}

// Init opens the audio device. Without a device the player keeps working
// silently, so callers may log the error and carry on.
func (p *Player) Init() error {
	if err := speaker.Init(SampleRate, SampleRate.N(time.Second/30)); nil != err {
		return fmt.Errorf("unable to open audio device: %w", err)
	}
	p.mu.Lock()
	p.live = true
	p.mu.Unlock()
	speaker.Play(p.ctrl)
	return nil
}

func (p *Player) lock() {
	p.mu.Lock()
	if p.live {
		speaker.Lock()
	}
}

func (p *Player) unlock() {
	if p.live {
		speaker.Unlock()
	}
	p.mu.Unlock()
}

// volume scales s so that 1 leaves it unchanged and 0 silences it.
func volume(s beep.Streamer, v float64) beep.Streamer {
	if v >= 1 {
		return s
	}
	return &effects.Volume{
		Streamer: s,
		Base:     2,
		Volume:   math.Log2(math.Max(v, 1e-3)),
		Silent:   v <= 0,
	}
}

func (p *Player) PlaySound(name string, v float64) {
	voice, ok := voices[name]
	if !ok {
		p.log.Warnf("no sound named %q", name)
		return
	}
	p.lock()
	defer p.unlock()
	p.mixer.Add(&handle{s: volume(newTone(voice, SampleRate), v), cut: p.cut})
}

// PlayMusic replaces the current song. A song that cannot be loaded is
// logged and played as silence.
func (p *Player) PlayMusic(name string, v float64) {
	s, format, err := p.load(name)
	if nil != err {
		p.log.Warnf("unable to load music %q, playing silence: %v", name, err)
	}

	p.lock()
	defer p.unlock()
	p.stopMusic()
	var stream beep.Streamer = beep.Silence(-1)
	if nil != s {
		p.song = s
		stream = beep.Loop(-1, s)
		if format.SampleRate != SampleRate {
			stream = beep.Resample(4, format.SampleRate, SampleRate, stream)
		}
	}
	p.music = &handle{s: volume(stream, v), cut: new(bool)}
	p.mixer.Add(p.music)
}

// stopMusic must be called with the lock held.
func (p *Player) stopMusic() {
	if nil != p.music {
		*p.music.cut = true
		p.music = nil
	}
	if nil != p.song {
		if err := p.song.Close(); nil != err {
			p.log.Warnf("unable to close music: %v", err)
		}
		p.song = nil
	}
}

func (p *Player) load(name string) (beep.StreamSeekCloser, beep.Format, error) {
	if name == "" {
		return nil, beep.Format{}, errNoSong
	}
	path, err := p.find(name)
	if nil != err {
		return nil, beep.Format{}, err
	}
	f, err := os.Open(path)
	if nil != err {
		return nil, beep.Format{}, err
	}

	var s beep.StreamSeekCloser
	var format beep.Format
	switch filepath.Ext(path) {
	case ".ogg":
		s, format, err = vorbis.Decode(f)
	case ".mp3":
		s, format, err = mp3.Decode(f)
	default:
		err = fmt.Errorf("unsupported format %s", filepath.Ext(path))
	}
	if nil != err {
		f.Close()
		return nil, beep.Format{}, err
	}
	return s, format, nil
}

// find resolves a song name against the music directory.
func (p *Player) find(name string) (string, error) {
	candidates := []string{filepath.Join(p.dir, name)}
	if filepath.Ext(name) == "" {
		candidates = candidates[:0]
		for _, ext := range musicExts {
			candidates = append(candidates, filepath.Join(p.dir, name+ext))
		}
	}
	for _, c := range candidates {
		if info, err := os.Stat(c); nil == err && !info.IsDir() {
			return c, nil
		}
	}
	return "", fmt.Errorf("%s not found in %s", name, p.dir)
}

func (p *Player) PauseAll() {
	p.lock()
	defer p.unlock()
	p.ctrl.Paused = true
}

func (p *Player) ResumeAll() {
	p.lock()
	defer p.unlock()
	p.ctrl.Paused = false
}

func (p *Player) Paused() bool {
	p.lock()
	defer p.unlock()
	return p.ctrl.Paused
}

// StopAll silences everything that is playing, the next sounds start
// fresh.
func (p *Player) StopAll() {
	p.lock()
	defer p.unlock()
	*p.cut = true
	p.cut = new(bool)
	p.stopMusic()
	p.ctrl.Paused = false
}

// Close stops playback. The speaker itself stays open for the process.
func (p *Player) Close() {
	p.StopAll()
	p.lock()
	defer p.unlock()
	p.ctrl.Paused = true
}
