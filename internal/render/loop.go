package render

import "time"

// Loop calls frame once per period until it returns false. frame gets the
// time since the previous frame started.
func Loop(period time.Duration, frame func(now time.Time, dt time.Duration) bool) {
	last := time.Now()
	for {
		now := time.Now()
		deadline := now.Add(period)

		if !frame(now, now.Sub(last)) {
			return
		}
		last = now

		time.Sleep(time.Until(deadline))
	}
}
