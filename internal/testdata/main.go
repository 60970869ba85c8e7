package testdata

import (
	"time"

	"git.lost.host/meutraa/whipbeat/internal/game"
)

// SM is a two measure chart at 120 BPM with a 100ms offset and one
// unsupported chart type that parsers must skip.
const SM = `#TITLE:Whip Test;
#ARTIST:nobody;
#OFFSET:-0.100;
#BPMS:0.000=120.000;
#NOTES:
     pump-single:
     :
     Hard:
     9:
     0,0,0,0,0:
10000
;
#NOTES:
     dance-single:
     :
     Easy:
     1:
     0,0,0,0,0:
1000
0100
0020
0001
,
1001
0000
0300
0000
0000
0000
0000
M000
;
`

// Levels is a small level file with two levels.
const Levels = `levels:
  - name: warmup
    requiredHits: 2
    spawnRate: 0.5
    portalSpeed: 0.2
    timeLimit: 30s
    bonusScore: 500
    music: warmup
    background: grid
    pattern: [bass, snare]
  - name: rush
    requiredHits: 4
    spawnRate: 1
    portalSpeed: 0.3
    timeLimit: 45s
    bonusScore: 1000
    music: rush
`

// Chart returns a hand built chart with notes every half second.
func Chart(n int) *game.Chart {
	notes := make([]*game.Note, n)
	for i := range notes {
		notes[i] = &game.Note{Index: uint8(i % 4), Denom: 4, Time: time.Duration(i+1) * 500 * time.Millisecond}
	}
	return &game.Chart{Name: "fixture", Notes: notes, NoteCount: int64(n)}
}
