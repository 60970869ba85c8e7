package audio

import (
	"math"
	"time"

	"github.com/faiface/beep"
)

// voice describes a short synthesized sound.
type voice struct {
	from, to float64 // Hz, swept linearly over the length
	length   time.Duration
	noise    float64 // 0 is a pure tone, 1 is pure noise
	square   bool
	decay    float64 // exponential falloff over the length
	gain     float64
}

var voices = map[string]voice{
	"bass":  {from: 90, to: 45, length: 180 * time.Millisecond, decay: 5, gain: 0.5},
	"snare": {from: 190, to: 160, length: 120 * time.Millisecond, noise: 0.6, decay: 6, gain: 0.35},
	"hihat": {from: 6000, to: 6000, length: 50 * time.Millisecond, noise: 0.9, decay: 8, gain: 0.2},

	"whip":           {from: 400, to: 1600, length: 120 * time.Millisecond, noise: 0.3, decay: 2, gain: 0.25},
	"perfect":        {from: 880, to: 1320, length: 150 * time.Millisecond, decay: 3, gain: 0.3},
	"great":          {from: 740, to: 990, length: 150 * time.Millisecond, decay: 3, gain: 0.3},
	"good":           {from: 660, to: 660, length: 150 * time.Millisecond, decay: 3, gain: 0.3},
	"hit":            {from: 520, to: 520, length: 120 * time.Millisecond, decay: 4, gain: 0.25},
	"miss":           {from: 120, to: 100, length: 200 * time.Millisecond, square: true, decay: 2, gain: 0.2},
	"travel":         {from: 1200, to: 200, length: 600 * time.Millisecond, noise: 0.1, decay: 1.5, gain: 0.2},
	"level_complete": {from: 300, to: 900, length: 700 * time.Millisecond, decay: 1, gain: 0.3},
	"gameover":       {from: 400, to: 80, length: time.Second, square: true, decay: 1.5, gain: 0.25},
}

// tone streams a voice once and then drains.
type tone struct {
	v     voice
	sr    beep.SampleRate
	pos   int
	n     int
	phase float64
	seed  uint32
}

func newTone(v voice, sr beep.SampleRate) *tone {
	return &tone{
		v:    v,
		sr:   sr,
		n:    sr.N(v.length),
		seed: 0x9e3779b9,
	}
}

// white returns noise in [-1,1], it is a xorshift so tones are reproducible.
func (t *tone) white() float64 {
	t.seed ^= t.seed << 13
	t.seed ^= t.seed >> 17
	t.seed ^= t.seed << 5
	return float64(t.seed)/float64(math.MaxUint32)*2 - 1
}

func (t *tone) Stream(samples [][2]float64) (n int, ok bool) {
	if t.pos >= t.n {
		return 0, false
	}
	for i := range samples {
		if t.pos >= t.n {
			return i, true
		}
		progress := float64(t.pos) / float64(t.n)
		freq := t.v.from + (t.v.to-t.v.from)*progress
		t.phase += 2 * math.Pi * freq / float64(t.sr)

		s := math.Sin(t.phase)
		if t.v.square {
			s = math.Copysign(1, s)
		}
		if t.v.noise > 0 {
			s = s*(1-t.v.noise) + t.white()*t.v.noise
		}
		// 5ms attack against clicks
		attack := math.Min(float64(t.pos)/float64(t.sr)/0.005, 1)
		s *= t.v.gain * attack * math.Exp(-t.v.decay*progress)

		samples[i][0] = s
		samples[i][1] = s
		t.pos++
	}
	return len(samples), true
}

func (t *tone) Err() error {
	return nil
}
