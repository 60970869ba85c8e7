package geom

import (
	"fmt"
	"math"
)

type Waveform uint8

const (
	WaveSine Waveform = iota
	WaveCosine
	WaveSawtooth
	WaveSquare
)

func (w Waveform) String() string {
	switch w {
	case WaveSine:
		return "sine"
	case WaveCosine:
		return "cosine"
	case WaveSawtooth:
		return "sawtooth"
	case WaveSquare:
		return "square"
	}
	return fmt.Sprintf("waveform(%d)", uint8(w))
}

// Eval samples the waveform at x (radians), the result is in [-1,1].
func (w Waveform) Eval(x float64) float64 {
	switch w {
	case WaveSine:
		return math.Sin(x)
	case WaveCosine:
		return math.Cos(x)
	case WaveSawtooth:
		// ramp from -1 to 1 over each 2π period
		m := math.Mod(x, 2*math.Pi)
		if m < 0 {
			m += 2 * math.Pi
		}
		return m/math.Pi - 1
	case WaveSquare:
		s := math.Sin(x)
		switch {
		case s > 0:
			return 1
		case s < 0:
			return -1
		}
		return 0
	}
	panic(fmt.Sprintf("geom: unknown waveform %d", uint8(w)))
}

type WavePattern struct {
	Amplitude float64 // pixels
	Frequency float64 // radians per second
	Phase     float64
	Decay     float64 // exponential falloff over extension progress
	Kind      Waveform
}

// WaveOffset returns the displacement perpendicular to the straight line
// from startPos to currentPos. It only shapes how the whip looks, the
// head used for hit tests is the undisplaced curve point.
func WaveOffset(progress float64, p WavePattern, elapsed float64, startPos, currentPos Vec) Vec {
	dir := currentPos.Sub(startPos)
	dist := dir.Len()
	if dist == 0 || p.Amplitude == 0 {
		return Vec{}
	}
	magnitude := p.Amplitude *
		math.Exp(-p.Decay*clamp01(progress)) *
		p.Kind.Eval(p.Frequency*(elapsed+dist/1000)+p.Phase)
	return dir.Norm().Perp().Scale(magnitude)
}
