package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Preset is one named board shape.
type Preset struct {
	Height int `yaml:"height"`
	Width  int `yaml:"width"`
	Mines  int `yaml:"mines"`
}

func (p Preset) Validate() error {
	if p.Height <= 0 || p.Width <= 0 {
		return fmt.Errorf("board dimensions must be positive, got %dx%d", p.Height, p.Width)
	}
	if p.Mines <= 0 || p.Mines >= p.Height*p.Width {
		return fmt.Errorf(
			"mine count must be between 1 and %d, got %d",
			p.Height*p.Width-1, p.Mines,
		)
	}
	return nil
}

func (p Preset) String() string {
	return fmt.Sprintf("%dx%d(%d)", p.Height, p.Width, p.Mines)
}

// Config maps preset names to board shapes.
type Config struct {
	Presets map[string]Preset `yaml:"presets"`
}

// Default returns the built-in presets.
func Default() *Config {
	return &Config{Presets: map[string]Preset{
		"beginner":     {Height: 8, Width: 8, Mines: 8},
		"intermediate": {Height: 16, Width: 16, Mines: 40},
		"expert":       {Height: 16, Width: 30, Mines: 99},
	}}
}

// Load reads presets from a YAML file, merged over the defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return cfg, nil
}

// Preset looks up and validates a named preset.
func (c *Config) Preset(name string) (Preset, error) {
	p, ok := c.Presets[name]
	if !ok {
		return Preset{}, fmt.Errorf("unknown preset %q", name)
	}
	if err := p.Validate(); err != nil {
		return Preset{}, fmt.Errorf("preset %q: %w", name, err)
	}
	return p, nil
}
