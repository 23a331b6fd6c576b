package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/sortviz/internal/trace"
)

const (
	DefaultSize  = 10
	DefaultMin   = 10
	DefaultMax   = 100
	DefaultSpeed = "medium"
	DefaultShape = "random"
	DefaultTheme = "cyberpunk"

	MinSize = 5
	MaxSize = 30
)

type Config struct {
	Algorithm trace.Algorithm `yaml:"algorithm"`
	Size      int             `yaml:"size"`
	Min       int             `yaml:"min"`
	Max       int             `yaml:"max"`
	Seed      int64           `yaml:"seed"`
	Speed     string          `yaml:"speed"`
	Shape     string          `yaml:"shape"`
	Theme     string          `yaml:"theme"`
	// Values, when set, is used as the input instead of a generated array.
	Values []int `yaml:"values,omitempty"`
}

func DefaultConfig() *Config {
	return &Config{
		Algorithm: trace.Bubble,
		Size:      DefaultSize,
		Min:       DefaultMin,
		Max:       DefaultMax,
		Speed:     DefaultSpeed,
		Shape:     DefaultShape,
		Theme:     DefaultTheme,
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (c *Config) Validate() error {
	if !c.Algorithm.Valid() {
		return fmt.Errorf("algorithm: %w: %d", trace.ErrUnknownAlgorithm, int(c.Algorithm))
	}
	if len(c.Values) > 0 {
		return nil
	}
	if c.Size < 0 {
		return fmt.Errorf("size must not be negative, got %d", c.Size)
	}
	if c.Min > c.Max {
		return fmt.Errorf("min (%d) must not exceed max (%d)", c.Min, c.Max)
	}
	if !RangeFits(c.Min, c.Max) {
		return fmt.Errorf("value range [%d, %d] is too wide", c.Min, c.Max)
	}
	if _, ok := Speeds[c.Speed]; !ok {
		return fmt.Errorf("speed: unknown preset %q (available: %v)", c.Speed, ListSpeeds())
	}
	if _, ok := Shapes[c.Shape]; !ok {
		return fmt.Errorf("shape: unknown input shape %q (available: %v)", c.Shape, ListShapes())
	}
	return nil
}

// Delay is the pause between rendered steps for the configured speed.
func (c *Config) Delay() time.Duration {
	if d, ok := Speeds[c.Speed]; ok {
		return d
	}
	return Speeds[DefaultSpeed]
}

// Input returns the explicit values if any, otherwise a generated array.
func (c *Config) Input() []int {
	if len(c.Values) > 0 {
		out := make([]int, len(c.Values))
		copy(out, c.Values)
		return out
	}
	return Generate(c.Shape, c.Size, c.Min, c.Max, c.Seed)
}
