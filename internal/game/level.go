package game

import "time"

type LevelData struct {
	Name         string
	RequiredHits int
	SpawnRate    float64 // portals per second from the continuous timer
	PortalSpeed  float64 // normalized x per second
	TimeLimit    time.Duration
	BonusScore   int
	Music        string
	Background   string
	Pattern      []FrequencyClass // cycled by the continuous timer
}

// SpawnInterval is zero when the level disables timed spawns.
func (l *LevelData) SpawnInterval() time.Duration {
	if l.SpawnRate <= 0 {
		return 0
	}
	return time.Duration(float64(time.Second) / l.SpawnRate)
}

func (l *LevelData) PatternClass(n int) FrequencyClass {
	if len(l.Pattern) == 0 {
		return Classes[n%len(Classes)]
	}
	return l.Pattern[n%len(l.Pattern)]
}
