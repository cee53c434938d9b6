package main

import (
	"fmt"
	"log"
	"os"

	"github.com/integrii/flaggy"
	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-life/model"
	"github.com/sheikhrachel/go-life/rules"
	"github.com/sheikhrachel/go-life/utils"
)

const defaultConfigPath = "config.json"

// options are the command line overrides applied on top of the config file
type options struct {
	configPath  string
	gridPath    string
	birth       string
	survive     string
	parallel    bool
	workers     int
	color       bool
	generations int
}

func parseFlags() *options {
	o := &options{configPath: defaultConfigPath, generations: -1}

	flaggy.SetName("go-life")
	flaggy.SetDescription("Interactive Game of Life on a wrap-around grid with runtime rule changes")
	flaggy.DefaultParser.ShowHelpOnUnexpected = true
	flaggy.String(&o.configPath, "c", "config", "JSON configuration file")
	flaggy.String(&o.gridPath, "g", "grid", "Comma-separated 0/1 file with the starting grid")
	flaggy.String(&o.birth, "b", "birth", "Birth counts, e.g. '3' or '3 6'")
	flaggy.String(&o.survive, "s", "survive", "Survival counts, e.g. '2 3'")
	flaggy.Bool(&o.parallel, "p", "parallel", "Split each generation across workers")
	flaggy.Int(&o.workers, "w", "workers", "Number of workers when parallel (0 = one per CPU)")
	flaggy.Bool(&o.color, "", "color", "Colour the output")
	flaggy.Int(&o.generations, "n", "generations", "Advance N generations, print the grid and exit")
	flaggy.Parse()

	return o
}

// applyOverrides merges the flags into the config and returns the starting rules
func applyOverrides(config *utils.Config, o *options) (rules.Configuration, error) {
	if o.gridPath != "" {
		config.GridPath = o.gridPath
	}
	if o.parallel {
		config.UseParallel = true
	}
	if o.workers > 0 {
		config.Workers = o.workers
	}
	if o.color {
		config.Color = true
	}

	rc, err := config.Rules()
	if err != nil {
		return rc, err
	}
	if o.birth != "" {
		if rc.Birth, err = rules.ParseRuleSet(o.birth); err != nil {
			return rc, errors.Wrap(err, "[applyOverrides] --birth")
		}
	}
	if o.survive != "" {
		if rc.Survive, err = rules.ParseRuleSet(o.survive); err != nil {
			return rc, errors.Wrap(err, "[applyOverrides] --survive")
		}
	}
	return rc, nil
}

func main() {
	log.SetFlags(0)
	o := parseFlags()

	// Load configuration - fallback to defaults if file doesn't exist
	config, err := utils.LoadConfig(o.configPath)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			log.Fatalf("Failed to load configuration: %v", err)
		}
		fmt.Printf("Using default configuration (%s not found)\n", o.configPath)
		config = utils.DefaultConfig()
	}

	rc, err := applyOverrides(&config, o)
	if err != nil {
		log.Fatalf("Invalid rules: %v", err)
	}

	grid, err := model.LoadGrid(config.GridPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			log.Fatalf("Error: Cannot find '%s'. Please create it as comma-separated 0/1.", config.GridPath)
		}
		log.Fatalf("Failed to load grid: %v", err)
	}

	if o.generations >= 0 {
		runHeadless(config, grid, rc, o.generations, os.Stdout)
		return
	}

	s := newSession(initializeGame(config, grid, rc, os.Stdout), os.Stdin)
	if err := s.run(); err != nil {
		log.Fatalf("Error reading input: %v", err)
	}
}
