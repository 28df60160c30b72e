// Package config loads dashboard settings from an optional YAML file and
// GV_* environment variables. Environment values win over the file; the
// file wins over the built-in defaults.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"regexp"
	"slices"
	"time"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"

	"github.com/econlens/gdp_viewer/pkg/loading"
	"github.com/econlens/gdp_viewer/pkg/scroll"
	"github.com/econlens/gdp_viewer/pkg/viewmodel"
)

// Config holds every tunable the dashboard reads at startup.
type Config struct {
	// Palette is the ordered list of chart colors.
	Palette []string `yaml:"palette" env:"GV_PALETTE" envSeparator:","`

	// Catalog is an optional path to a catalog YAML file replacing the
	// embedded dataset.
	Catalog string `yaml:"catalog" env:"GV_CATALOG"`

	Loading Loading `yaml:"loading"`
	Scroll  Scroll  `yaml:"scroll"`

	LogFile  string `yaml:"log_file" env:"GV_LOG_FILE"`
	LogLevel string `yaml:"log_level" env:"GV_LOG_LEVEL"`
}

// Loading configures the simulated start-up load.
type Loading struct {
	Interval    time.Duration `yaml:"interval" env:"GV_LOADING_INTERVAL"`
	MinStep     int           `yaml:"min_step" env:"GV_LOADING_MIN_STEP"`
	MaxStep     int           `yaml:"max_step" env:"GV_LOADING_MAX_STEP"`
	FinishDelay time.Duration `yaml:"finish_delay" env:"GV_LOADING_FINISH_DELAY"`
}

// Scroll configures scroll tracking and smooth-scroll animation.
type Scroll struct {
	Threshold int           `yaml:"threshold" env:"GV_SCROLL_THRESHOLD"`
	Frame     time.Duration `yaml:"frame" env:"GV_SCROLL_FRAME"`
}

// Default returns the built-in settings.
func Default() Config {
	lo := loading.DefaultOptions()
	return Config{
		Palette: slices.Clone([]string(viewmodel.DefaultPalette)),
		Loading: Loading{
			Interval:    lo.Interval,
			MinStep:     lo.MinStep,
			MaxStep:     lo.MaxStep,
			FinishDelay: lo.FinishDelay,
		},
		Scroll: Scroll{
			Threshold: scroll.DefaultThreshold,
			Frame:     16 * time.Millisecond,
		},
		LogLevel: "info",
	}
}

// Load builds a Config from defaults, the YAML file at path and the
// environment, then validates it. An empty path or a missing file leaves the
// defaults in place.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		if err := cfg.mergeFile(path); err != nil {
			return Config{}, err
		}
	}
	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// ParseEnv overlays GV_* environment variables onto target.
func ParseEnv(target *Config) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

func (c *Config) mergeFile(path string) error {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	return nil
}

var hexColor = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// Validate reports the first invalid setting.
func (c Config) Validate() error {
	if len(c.Palette) == 0 {
		return errors.New("palette must not be empty")
	}
	for _, col := range c.Palette {
		if !hexColor.MatchString(col) {
			return fmt.Errorf("palette color %q is not #rrggbb", col)
		}
	}
	if c.Loading.Interval <= 0 {
		return fmt.Errorf("loading.interval must be positive, got %s", c.Loading.Interval)
	}
	if c.Loading.MinStep < 1 || c.Loading.MinStep > c.Loading.MaxStep || c.Loading.MaxStep > 100 {
		return fmt.Errorf("loading steps must satisfy 1 <= min_step <= max_step <= 100, got %d..%d",
			c.Loading.MinStep, c.Loading.MaxStep)
	}
	if c.Loading.FinishDelay < 0 {
		return fmt.Errorf("loading.finish_delay must not be negative, got %s", c.Loading.FinishDelay)
	}
	if c.Scroll.Threshold < 0 {
		return fmt.Errorf("scroll.threshold must not be negative, got %d", c.Scroll.Threshold)
	}
	if c.Scroll.Frame <= 0 {
		return fmt.Errorf("scroll.frame must be positive, got %s", c.Scroll.Frame)
	}
	return nil
}

// LoadingOptions converts the loading settings for the sequencer.
func (c Config) LoadingOptions() loading.Options {
	return loading.Options{
		Interval:    c.Loading.Interval,
		MinStep:     c.Loading.MinStep,
		MaxStep:     c.Loading.MaxStep,
		FinishDelay: c.Loading.FinishDelay,
	}
}
