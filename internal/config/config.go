package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

const (
	DefaultInterval   = 3 * time.Second
	DefaultTheme      = "cyberpunk"
	DefaultStartStep  = 1
	DefaultLogLevel   = "info"
	DefaultPlotWidth  = 60
	DefaultPlotHeight = 10
)

var (
	// ErrInvalidInterval indicates a non-positive auto-advance interval.
	ErrInvalidInterval = errors.New("config: interval must be positive")

	// ErrInvalidStartStep indicates a start step below 1.
	ErrInvalidStartStep = errors.New("config: start step must be at least 1")

	// ErrUnknownLogLevel indicates a log level zerolog cannot parse.
	ErrUnknownLogLevel = errors.New("config: unknown log level")

	// ErrInvalidPlotSize indicates a non-positive plot dimension.
	ErrInvalidPlotSize = errors.New("config: plot width and height must be positive")
)

type Config struct {
	Interval  time.Duration `yaml:"interval" env:"ARRAYVIZ_INTERVAL"`
	Theme     string        `yaml:"theme" env:"ARRAYVIZ_THEME"`
	StartStep int           `yaml:"start_step" env:"ARRAYVIZ_START_STEP"`
	LogLevel  string        `yaml:"log_level" env:"ARRAYVIZ_LOG_LEVEL"`
	Plot      PlotConfig    `yaml:"plot"`
}

type PlotConfig struct {
	Width  int `yaml:"width" env:"ARRAYVIZ_PLOT_WIDTH"`
	Height int `yaml:"height" env:"ARRAYVIZ_PLOT_HEIGHT"`
}

func DefaultConfig() *Config {
	return &Config{
		Interval:  DefaultInterval,
		Theme:     DefaultTheme,
		StartStep: DefaultStartStep,
		LogLevel:  DefaultLogLevel,
		Plot: PlotConfig{
			Width:  DefaultPlotWidth,
			Height: DefaultPlotHeight,
		},
	}
}

// Load reads defaults, then the yaml file at path (skipped when path is
// empty), then ARRAYVIZ_* environment overrides.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
	}
	if err := ApplyEnv(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ApplyEnv overrides fields whose environment variable is set.
func ApplyEnv(cfg *Config) error {
	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (c *Config) Validate() error {
	if c.Interval <= 0 {
		return fmt.Errorf("%w: %s", ErrInvalidInterval, c.Interval)
	}
	if c.StartStep < 1 {
		return fmt.Errorf("%w: %d", ErrInvalidStartStep, c.StartStep)
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	if c.Plot.Width <= 0 || c.Plot.Height <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidPlotSize, c.Plot.Width, c.Plot.Height)
	}
	return nil
}

// Level parses LogLevel into a zerolog level.
func (c *Config) Level() (zerolog.Level, error) {
	lvl, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil {
		return zerolog.NoLevel, fmt.Errorf("%w: %q", ErrUnknownLogLevel, c.LogLevel)
	}
	return lvl, nil
}
