package config

import (
	"fmt"
	"time"

	"git.lost.host/meutraa/whipbeat/internal/beat"
	"gopkg.in/alecthomas/kingpin.v2"
)

const (
	ScreenANSI  = "ansi"
	ScreenTcell = "tcell"
)

type Config struct {
	Levels     string
	Chart      string
	Difficulty int
	LeadTime   time.Duration
	MusicDir   string
	AssetsDir  string

	Seed         int64
	BeatInterval time.Duration
	Volume       float64
	Mute         bool

	Screen      string
	RefreshRate float64
	Width       int
	Height      int

	LogLevel string
	LogFile  string
}

// Parse reads command line flags. args excludes the program name.
func Parse(name string, args []string) (*Config, error) {
	app := kingpin.New(name, "Crack the whip at portals on the beat")
	app.Version("0.3.0")
	c := &Config{}

	app.Flag("levels", "Level data file (YAML)").Short('l').StringVar(&c.Levels)
	app.Flag("chart", "StepMania chart for chart driven portals").Short('c').StringVar(&c.Chart)
	app.Flag("difficulty", "Chart difficulty index").Default("0").IntVar(&c.Difficulty)
	app.Flag("lead", "How early chart portals appear").Default("1.5s").DurationVar(&c.LeadTime)
	app.Flag("music-dir", "Directory with level music").Short('m').Default("music").StringVar(&c.MusicDir)
	app.Flag("assets-dir", "Directory with background images").Short('a').Default("assets").StringVar(&c.AssetsDir)
	app.Flag("seed", "Random seed, 0 picks one from the clock").Default("0").Int64Var(&c.Seed)
	app.Flag("beat-interval", "Time between beats").Short('b').Default(beat.DefaultInterval.String()).DurationVar(&c.BeatInterval)
	app.Flag("volume", "Master volume, 0 to 1").Short('v').Default("0.8").Float64Var(&c.Volume)
	app.Flag("mute", "Disable audio").BoolVar(&c.Mute)
	app.Flag("screen", "Terminal screen backend").Short('s').Default(ScreenTcell).EnumVar(&c.Screen, ScreenANSI, ScreenTcell)
	app.Flag("refresh-rate", "Frames per second").Short('R').Default("60").Float64Var(&c.RefreshRate)
	app.Flag("width", "Window width").Default("960").IntVar(&c.Width)
	app.Flag("height", "Window height").Default("640").IntVar(&c.Height)
	app.Flag("log-level", "debug, info, warn, error or none").Default("info").StringVar(&c.LogLevel)
	app.Flag("log-file", "Write the log here instead of stderr").StringVar(&c.LogFile)

	if _, err := app.Parse(args); nil != err {
		return nil, err
	}
	if err := c.validate(); nil != err {
		return nil, err
	}
	return c, nil
}

func (c *Config) validate() error {
	if c.BeatInterval <= 0 {
		return fmt.Errorf("beat interval must be positive, got %v", c.BeatInterval)
	}
	if c.Volume < 0 || c.Volume > 1 {
		return fmt.Errorf("volume must be within 0 and 1, got %v", c.Volume)
	}
	if c.RefreshRate <= 0 {
		return fmt.Errorf("refresh rate must be positive, got %v", c.RefreshRate)
	}
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("bad window size %dx%d", c.Width, c.Height)
	}
	if c.LeadTime <= 0 {
		return fmt.Errorf("lead time must be positive, got %v", c.LeadTime)
	}
	return nil
}

// FramePeriod is the time one frame should take.
func (c *Config) FramePeriod() time.Duration {
	return time.Duration(float64(time.Second) / c.RefreshRate)
}

// EffectiveVolume is zero when muted.
func (c *Config) EffectiveVolume() float64 {
	if c.Mute {
		return 0
	}
	return c.Volume
}
