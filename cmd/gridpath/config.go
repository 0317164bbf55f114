package main

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v2"

	"github.com/katalvlaran/gridpath"
)

var errBadConfig = errors.New("gridpath: invalid config")

// Cell is a map coordinate in the config file.
type Cell struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

// Config drives both the headless and the interactive front end.
type Config struct {
	Width       int    `yaml:"width"`
	Height      int    `yaml:"height"`
	Obstacles   int    `yaml:"obstacles"`
	Seed        int64  `yaml:"seed"`
	Engine      string `yaml:"engine"`
	Diagonal    bool   `yaml:"diagonal"`
	Start       Cell   `yaml:"start"`
	Goal        Cell   `yaml:"goal"`
	MetricsAddr string `yaml:"metrics_addr,omitempty"`
}

// DefaultConfig is a 60×30 map, a quarter of it obstacle placements, searched
// corner to corner with A*.
func DefaultConfig() Config {
	return Config{
		Width:     60,
		Height:    30,
		Obstacles: 450,
		Seed:      1,
		Engine:    gridpath.AStar.String(),
		Start:     Cell{X: 0, Y: 0},
		Goal:      Cell{X: 59, Y: 29},
	}
}

// LoadConfig reads path on top of DefaultConfig.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}

	return cfg, nil
}

// WriteConfig writes cfg as YAML to path.
func WriteConfig(path string, cfg Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}

	return os.WriteFile(path, data, 0o644)
}

// EngineKind resolves the configured engine name.
func (c Config) EngineKind() (gridpath.Engine, error) {
	return gridpath.ParseEngine(c.Engine)
}

// Validate checks dimensions, the engine name and that both endpoints are on the map.
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%w: map must be at least 1×1, got %d×%d", errBadConfig, c.Width, c.Height)
	}
	if c.Obstacles < 0 {
		return fmt.Errorf("%w: obstacles must be non-negative, got %d", errBadConfig, c.Obstacles)
	}
	if _, err := c.EngineKind(); err != nil {
		return fmt.Errorf("%w: %v", errBadConfig, err)
	}
	for name, p := range map[string]Cell{"start": c.Start, "goal": c.Goal} {
		if p.X < 0 || p.Y < 0 || p.X >= c.Width || p.Y >= c.Height {
			return fmt.Errorf("%w: %s (%d,%d) outside %d×%d map", errBadConfig, name, p.X, p.Y, c.Width, c.Height)
		}
	}

	return nil
}
