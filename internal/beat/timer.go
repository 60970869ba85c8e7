package beat

import "time"

// Timer fires at a fixed interval, it drives the continuous spawn path.
// A zero interval never fires.
type Timer struct {
	Interval time.Duration
	acc      time.Duration
}

func (t *Timer) Advance(dt time.Duration) int {
	if dt <= 0 || t.Interval <= 0 {
		return 0
	}
	t.acc += dt
	n := int(t.acc / t.Interval)
	t.acc -= time.Duration(n) * t.Interval
	return n
}

func (t *Timer) Reset(interval time.Duration) {
	t.Interval = interval
	t.acc = 0
}
