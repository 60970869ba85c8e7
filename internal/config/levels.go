package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"git.lost.host/meutraa/whipbeat/internal/game"
	"gopkg.in/yaml.v3"
)

var ErrNoLevels = errors.New("at least one level is required")

// DefaultLevels is used when no level file is given.
var DefaultLevels = []game.LevelData{
	{Name: "first crack", RequiredHits: 10, SpawnRate: 0.5, PortalSpeed: 0.18, TimeLimit: 60 * time.Second, BonusScore: 1000, Music: "level1", Background: "grid", Pattern: []game.FrequencyClass{game.Bass, game.Snare}},
	{Name: "double time", RequiredHits: 15, SpawnRate: 0.7, PortalSpeed: 0.21, TimeLimit: 60 * time.Second, BonusScore: 2000, Music: "level2", Background: "rings", Pattern: []game.FrequencyClass{game.Bass, game.HiHat, game.Snare, game.HiHat}},
	{Name: "lane change", RequiredHits: 20, SpawnRate: 0.9, PortalSpeed: 0.24, TimeLimit: 75 * time.Second, BonusScore: 3000, Music: "level3", Background: "stars", Pattern: []game.FrequencyClass{game.Snare, game.HiHat}},
	{Name: "hihat storm", RequiredHits: 25, SpawnRate: 1.1, PortalSpeed: 0.28, TimeLimit: 75 * time.Second, BonusScore: 4000, Music: "level4", Background: "tunnel", Pattern: []game.FrequencyClass{game.HiHat, game.HiHat, game.Snare}},
	{Name: "the last portal", RequiredHits: 30, SpawnRate: 1.3, PortalSpeed: 0.32, TimeLimit: 90 * time.Second, BonusScore: 6000, Music: "level5", Background: "void"},
}

type levelFile struct {
	Levels []levelEntry `yaml:"levels"`
}

type levelEntry struct {
	Name         string        `yaml:"name"`
	RequiredHits int           `yaml:"requiredHits"`
	SpawnRate    float64       `yaml:"spawnRate"`   // portals per second, 0 disables timed spawns
	PortalSpeed  float64       `yaml:"portalSpeed"` // screen widths per second
	TimeLimit    time.Duration `yaml:"timeLimit"`
	BonusScore   int           `yaml:"bonusScore"`
	Music        string        `yaml:"music"`
	Background   string        `yaml:"background"`
	Pattern      []string      `yaml:"pattern"`
}

// LevelData returns the level table, from the level file when one was given.
func (c *Config) LevelData() ([]game.LevelData, error) {
	if c.Levels == "" {
		levels := make([]game.LevelData, len(DefaultLevels))
		copy(levels, DefaultLevels)
		return levels, nil
	}
	return LoadLevels(c.Levels)
}

func LoadLevels(path string) ([]game.LevelData, error) {
	data, err := os.ReadFile(path)
	if nil != err {
		return nil, fmt.Errorf("failed to read level file %s: %w", path, err)
	}
	levels, err := ParseLevels(data)
	if nil != err {
		return nil, fmt.Errorf("invalid level file %s: %w", path, err)
	}
	return levels, nil
}

func ParseLevels(data []byte) ([]game.LevelData, error) {
	var f levelFile
	if err := yaml.Unmarshal(data, &f); nil != err {
		return nil, fmt.Errorf("failed to parse level YAML: %w", err)
	}
	if len(f.Levels) == 0 {
		return nil, ErrNoLevels
	}
	levels := make([]game.LevelData, 0, len(f.Levels))
	for i := range f.Levels {
		e := &f.Levels[i]
		applyDefaults(i, e)
		l, err := e.toLevel()
		if nil != err {
			return nil, fmt.Errorf("level %d: %w", i+1, err)
		}
		if err := validateLevel(&l); nil != err {
			return nil, fmt.Errorf("level %d (%s): %w", i+1, l.Name, err)
		}
		levels = append(levels, l)
	}
	return levels, nil
}

func applyDefaults(i int, e *levelEntry) {
	if e.Name == "" {
		e.Name = fmt.Sprintf("level %d", i+1)
	}
	if e.PortalSpeed == 0 {
		e.PortalSpeed = 0.2
	}
	if e.TimeLimit == 0 {
		e.TimeLimit = 60 * time.Second
	}
	if e.Music == "" {
		e.Music = fmt.Sprintf("level%d", i+1)
	}
	if e.Background == "" {
		e.Background = "grid"
	}
}

func (e *levelEntry) toLevel() (game.LevelData, error) {
	l := game.LevelData{
		Name:         e.Name,
		RequiredHits: e.RequiredHits,
		SpawnRate:    e.SpawnRate,
		PortalSpeed:  e.PortalSpeed,
		TimeLimit:    e.TimeLimit,
		BonusScore:   e.BonusScore,
		Music:        e.Music,
		Background:   e.Background,
	}
	for _, s := range e.Pattern {
		c, err := game.ParseFrequencyClass(s)
		if nil != err {
			return l, err
		}
		l.Pattern = append(l.Pattern, c)
	}
	return l, nil
}

func validateLevel(l *game.LevelData) error {
	if l.RequiredHits <= 0 {
		return fmt.Errorf("requiredHits must be positive, got %d", l.RequiredHits)
	}
	if l.SpawnRate < 0 {
		return fmt.Errorf("spawnRate must not be negative, got %v", l.SpawnRate)
	}
	if l.PortalSpeed < 0 {
		return fmt.Errorf("portalSpeed must not be negative, got %v", l.PortalSpeed)
	}
	if l.TimeLimit < 0 {
		return fmt.Errorf("timeLimit must not be negative, got %v", l.TimeLimit)
	}
	if l.BonusScore < 0 {
		return fmt.Errorf("bonusScore must not be negative, got %d", l.BonusScore)
	}
	return nil
}
