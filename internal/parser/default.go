package parser

import (
	"errors"
	"fmt"
	"math"
	"math/big"
	"os"
	"strconv"
	"strings"
	"time"

	"git.lost.host/meutraa/whipbeat/internal/game"
)

var ErrNoCharts = errors.New("no playable charts")

type bpm struct {
	StartingBeat float64
	Value        float64
}

type difficulty struct {
	Name    string
	Section string
	NKeys   uint8
}

var nKeyMap = map[string]uint8{
	"dance-single": 4,
	"dance-solo":   6,
	"dance-double": 8,
}

// DefaultParser reads StepMania .sm files.
type DefaultParser struct{}

func (p *DefaultParser) secondsPerNote(rates []bpm, currentBeat float64, bpn float64) float64 {
	sel := 0.0
	for _, r := range rates {
		if currentBeat >= r.StartingBeat {
			sel = r.Value
		} else {
			break
		}
	}
	if sel <= 0 {
		return 0
	}
	return bpn * 60.0 / sel
}

// 0 – No note
// 1 – Normal note
// 2 – Hold head
// 3 – Hold/Roll tail
// 4 – Roll head
// M – Mine
// Heads count as taps, tails and mines are ignored.
func isTap(ch byte) bool {
	return ch == '1' || ch == '2' || ch == '4'
}

func (p *DefaultParser) Parse(file string) ([]*game.Chart, error) {
	data, err := os.ReadFile(file)
	if nil != err {
		return nil, fmt.Errorf("unable to read chart %s: %w", file, err)
	}
	charts, err := p.ParseBytes(data)
	if nil != err {
		return nil, fmt.Errorf("unable to parse chart %s: %w", file, err)
	}
	return charts, nil
}

func (p *DefaultParser) ParseBytes(data []byte) ([]*game.Chart, error) {
	str := strings.ReplaceAll(string(data), "\r", "")
	sections := strings.Split(str, "#NOTES:")
	meta := sections[0]
	difficulties := []difficulty{}
	for _, section := range sections[1:] {
		lines := strings.SplitN(section, "\n", 7)
		if len(lines) < 7 {
			continue
		}
		chartType := strings.TrimSuffix(strings.TrimSpace(lines[1]), ":")
		nKeys, ok := nKeyMap[chartType]
		if !ok {
			continue
		}
		difficulties = append(difficulties, difficulty{
			Name:    strings.TrimSuffix(strings.TrimSpace(lines[3]), ":"),
			Section: lines[6],
			NKeys:   nKeys,
		})
	}
	if len(difficulties) == 0 {
		return nil, ErrNoCharts
	}

	offset := 0.0
	bpms := []bpm{}

	for _, mdl := range strings.Split(meta, "\n#") {
		mdl = strings.TrimPrefix(strings.TrimSpace(mdl), "#")
		if strings.HasPrefix(mdl, "OFFSET:") {
			mdl = strings.TrimSuffix(strings.TrimPrefix(mdl, "OFFSET:"), ";")
			offs, err := strconv.ParseFloat(strings.TrimSpace(mdl), 64)
			if nil != err {
				return nil, fmt.Errorf("bad offset: %w", err)
			}
			offset = -offs
		} else if strings.HasPrefix(mdl, "BPMS:") {
			mdl = strings.TrimPrefix(mdl, "BPMS:")
			mdl = strings.ReplaceAll(mdl, "\n", "")
			for _, b := range strings.Split(strings.TrimSuffix(mdl, ";"), ",") {
				as := strings.Split(b, "=")
				if len(as) != 2 {
					return nil, fmt.Errorf("bad bpm entry %q", b)
				}
				sb, err := strconv.ParseFloat(strings.TrimSpace(as[0]), 64)
				if nil != err {
					return nil, fmt.Errorf("bad bpm beat: %w", err)
				}
				value, err := strconv.ParseFloat(strings.TrimSpace(as[1]), 64)
				if nil != err {
					return nil, fmt.Errorf("bad bpm value: %w", err)
				}
				bpms = append(bpms, bpm{StartingBeat: sb, Value: value})
			}
		}
	}
	if len(bpms) == 0 {
		return nil, errors.New("chart has no BPMS")
	}

	charts := []*game.Chart{}
	for _, d := range difficulties {
		// Start time of first note
		seconds := offset
		currentBeat := 0.0
		notes := []*game.Note{}

		for _, block := range strings.Split(d.Section, "\n,") {
			lines := []string{}
			for _, l := range strings.Split(block, "\n") {
				if strings.HasPrefix(l, " ") || strings.Contains(l, "-") || strings.HasPrefix(l, "//") {
					continue
				}
				l = strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(l), ";"))
				if len(l) >= int(d.NKeys) {
					lines = append(lines, l)
				}
			}
			if len(lines) == 0 {
				continue
			}

			// Beat count is 4 per block
			lineCount := int64(len(lines))
			beatsPerNote := 4.0 / float64(lineCount) // 1/4, 1/8, 1/16, 1/24 etc

			for i, line := range lines {
				denom := big.NewRat(int64(i*4), lineCount).Denom().Int64()
				for col, c := range []byte(line) {
					if isTap(c) {
						notes = append(notes, &game.Note{
							Index: uint8(col),
							Denom: int(denom),
							Time:  time.Duration(math.Round(seconds * float64(time.Second))),
						})
					}
				}
				seconds += p.secondsPerNote(bpms, currentBeat, beatsPerNote)
				currentBeat += beatsPerNote
			}
		}

		charts = append(charts, &game.Chart{
			Name:      d.Name,
			Notes:     notes,
			NoteCount: int64(len(notes)),
		})
	}

	return charts, nil
}
