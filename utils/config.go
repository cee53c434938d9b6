package utils

import (
	"encoding/json"
	"os"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-life/model"
	"github.com/sheikhrachel/go-life/rules"
)

// Config holds the configuration for the game
type Config struct {
	GridPath      string `json:"grid_path"`
	Birth         []int  `json:"birth"`
	Survive       []int  `json:"survive"`
	UseParallel   bool   `json:"use_parallel"`
	Workers       int    `json:"workers"`
	UseMemoryPool bool   `json:"use_memory_pool"`
	Color         bool   `json:"color"`
	LiveGlyph     string `json:"live_glyph"`
	DeadGlyph     string `json:"dead_glyph"`
	HistorySize   int    `json:"history_size"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		GridPath:      model.DefaultGridPath,
		Birth:         []int{3},
		Survive:       []int{2, 3},
		UseParallel:   false,
		Workers:       0, // one per CPU when parallel
		UseMemoryPool: true,
		Color:         false,
		LiveGlyph:     "█",
		DeadGlyph:     "·",
		HistorySize:   model.DefaultHistorySize,
	}
}

// LoadConfig loads configuration from JSON file
func LoadConfig(filename string) (Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to read file: %+v", filename)
	}

	if err = json.Unmarshal(data, &config); err != nil {
		return DefaultConfig(), errors.Wrapf(err, "[LoadConfig] failed to unmarshal data from file: %+v", filename)
	}

	if _, err = config.Rules(); err != nil {
		return DefaultConfig(), errors.Wrapf(err, "[LoadConfig] invalid rules in file: %+v", filename)
	}

	return config, nil
}

// Rules builds the starting rule configuration
func (c Config) Rules() (rules.Configuration, error) {
	return rules.New(c.Birth, c.Survive)
}

// EngineWorkers returns the worker count to hand to model.NewEngine
func (c Config) EngineWorkers() int {
	if !c.UseParallel {
		return 1
	}
	return c.Workers
}

// NewEngine builds the step engine described by the configuration
func (c Config) NewEngine() *model.Engine {
	var pool *model.GridPool
	if c.UseMemoryPool {
		pool = model.NewGridPool()
	}
	return model.NewEngine(c.EngineWorkers(), pool)
}
