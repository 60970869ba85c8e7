package game

import "fmt"

// FrequencyClass is the frequency band a portal belongs to.
type FrequencyClass uint8

const (
	Bass FrequencyClass = iota
	Snare
	HiHat
)

var Classes = [...]FrequencyClass{Bass, Snare, HiHat}

func (c FrequencyClass) String() string {
	switch c {
	case Bass:
		return "bass"
	case Snare:
		return "snare"
	case HiHat:
		return "hihat"
	}
	return fmt.Sprintf("class(%d)", uint8(c))
}

func ParseFrequencyClass(s string) (FrequencyClass, error) {
	for _, c := range Classes {
		if c.String() == s {
			return c, nil
		}
	}
	return 0, fmt.Errorf("unknown frequency class %q", s)
}

// ClassSpec holds everything a frequency class determines.
type ClassSpec struct {
	Size    float64 // normalized diameter, scaled by the smaller screen side
	Speed   float64 // normalized x per second
	Depth   float64 // z
	PresetX float64 // x used by stationary chart portals
}

var classSpecs = map[FrequencyClass]ClassSpec{
	Bass:  {Size: 0.09, Speed: 0.16, Depth: 0.2, PresetX: 0.38},
	Snare: {Size: 0.07, Speed: 0.21, Depth: 0.5, PresetX: 0.5},
	HiHat: {Size: 0.05, Speed: 0.27, Depth: 0.8, PresetX: 0.62},
}

// Spec panics for classes outside the enumerated set, they can only come
// from a programming error.
func (c FrequencyClass) Spec() ClassSpec {
	spec, ok := classSpecs[c]
	if !ok {
		panic(fmt.Sprintf("game: no spec for frequency class %d", uint8(c)))
	}
	return spec
}
