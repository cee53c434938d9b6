package main

import (
	"fmt"
	"io"
	"time"

	"github.com/logrusorgru/aurora"

	"github.com/sheikhrachel/go-life/model"
	"github.com/sheikhrachel/go-life/rules"
	"github.com/sheikhrachel/go-life/utils"
)

// game is the state the driver owns: the current grid and rules plus bookkeeping
type game struct {
	grid       *model.Grid
	rules      rules.Configuration
	engine     *model.Engine
	renderer   *model.TerminalRenderer
	history    *model.History
	stats      *utils.Stats
	generation int
	au         aurora.Aurora
	out        io.Writer
}

// initializeGame sets up the initial game state
func initializeGame(config utils.Config, grid *model.Grid, rc rules.Configuration, out io.Writer) *game {
	renderer := model.NewTerminalRenderer(out, config.Color)
	renderer.Live = config.LiveGlyph
	renderer.Dead = config.DeadGlyph

	g := &game{
		grid:     grid,
		rules:    rc,
		engine:   config.NewEngine(),
		renderer: renderer,
		history:  model.NewHistory(config.HistorySize),
		stats:    utils.NewStats(),
		au:       aurora.NewAurora(config.Color),
		out:      out,
	}
	g.history.Observe(grid)
	return g
}

// advance computes n generations one at a time, releasing each discarded grid
func (g *game) advance(n int) {
	start := time.Now()
	for range n {
		next := g.engine.Step(g.grid, g.rules)
		g.engine.Release(g.grid)
		g.grid = next
		g.generation++
		g.history.Observe(g.grid)
	}
	g.stats.Update(g.generation, n, g.grid.CountLivingCells(), time.Since(start))
}

// setRules swaps the rule configuration used by the next step
func (g *game) setRules(rc rules.Configuration) {
	g.rules = rc
	g.history.Reset()
	g.history.Observe(g.grid)
}

func (g *game) display() {
	if err := g.renderer.Display(g.grid); err != nil {
		fmt.Fprintf(g.out, "Error rendering grid: %v\n", err)
	}
}

// updateGameState summarizes the current generation
func (g *game) updateGameState() (livingCells int, density float64, status string) {
	livingCells = g.grid.CountLivingCells()
	density = float64(livingCells) / float64(g.grid.Width()*g.grid.Height()) * 100

	switch period := g.history.Period(); {
	case livingCells == 0:
		status = g.au.Red("Extinct").String()
	case period == 1:
		status = g.au.Blue("Still life").String()
	case period > 1:
		status = g.au.Cyan(fmt.Sprintf("Oscillating (period %d)", period)).String()
	default:
		status = g.au.Green("Active").String()
	}
	return
}

// displayGameStatus shows the current game status
func (g *game) displayGameStatus() {
	livingCells, density, status := g.updateGameState()

	fmt.Fprintf(g.out, "Gen: %d | Living: %d | Density: %.1f%% | Rules: %s | Status: %s\n",
		g.generation, livingCells, density, g.rules, status)
	fmt.Fprintf(g.out, "Performance: %.1f gen/sec | Avg Pop: %.1f | Runtime: %.1fs\n",
		g.stats.GenerationsPerSecond, g.stats.AveragePopulation, g.stats.Runtime().Seconds())
	fmt.Fprintln(g.out)
}

// displayRules prints the current rule sets the way the rules command reports them
func (g *game) displayRules(prefix string) {
	fmt.Fprintf(g.out, "%s: Birth=%s  Survival=%s\n\n", prefix, g.rules.Birth, g.rules.Survive)
}

// runHeadless advances the grid n generations in one go and prints the result
func runHeadless(config utils.Config, grid *model.Grid, rc rules.Configuration, n int, out io.Writer) {
	g := initializeGame(config, grid, rc, out)

	start := time.Now()
	g.grid = g.engine.StepN(g.grid, g.rules, n)
	g.generation = max(n, 0)
	g.history.Observe(g.grid)
	g.stats.Update(g.generation, n, g.grid.CountLivingCells(), time.Since(start))

	fmt.Fprintf(out, "After %d generations:\n", g.generation)
	g.display()
	g.displayGameStatus()
}
