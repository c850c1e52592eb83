package main

import (
	"fmt"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/cellgrid/go-life/model"
	"github.com/cellgrid/go-life/utils"
)

// buildBoard assembles a freshly seeded board from the configured dimensions
func buildBoard(config utils.Config) (*model.Board, error) {
	seed := model.NewSeed(config.Width, config.Height)
	seed.ScatterPatterns(config)
	return seed.Build(config.Wrap)
}

// initializeGame sets up the initial game state
func initializeGame(config utils.Config) (*model.Board, *utils.Stats, *utils.CycleDetector, error) {
	board, err := buildBoard(config)
	if err != nil {
		return nil, nil, nil, errors.Wrap(err, "[initializeGame] failed to build board")
	}

	return board, utils.NewStats(), utils.NewCycleDetector(), nil
}

// updateGameState advances the frame bookkeeping and returns status information
func updateGameState(
	board *model.Board,
	generation int,
	lastFrameTime time.Time,
	stats *utils.Stats,
	detector *utils.CycleDetector,
) (int, float64, string, bool) {
	livingCells := board.Population()
	density := float64(livingCells) / float64(board.GetWidth()*board.GetHeight()) * 100

	frameDuration := time.Since(lastFrameTime)
	stats.Update(generation, livingCells, frameDuration)

	// Check for stagnation
	isStagnant := detector.Observe(board.GetHash())

	return livingCells, density, statusFor(livingCells, isStagnant), isStagnant
}

// statusFor summarizes the board state for reporting
func statusFor(livingCells int, isStagnant bool) string {
	switch {
	case livingCells == 0:
		return "Extinct"
	case isStagnant:
		return "Stagnant"
	default:
		return "Active"
	}
}

// reportStatus logs the current game status
func reportStatus(generation, livingCells int, density float64, status string, stats *utils.Stats, lastRestartGen int) {
	log.WithFields(logrus.Fields{
		"generation":    generation,
		"living":        livingCells,
		"density":       fmt.Sprintf("%.1f%%", density),
		"status":        status,
		"gens_per_sec":  fmt.Sprintf("%.1f", stats.GenerationsPerSecond),
		"avg_pop":       fmt.Sprintf("%.1f", stats.AveragePopulation),
		"since_restart": generation - lastRestartGen,
	}).Info("generation report")
}

// checkRestartConditions determines if the game should restart
func checkRestartConditions(livingCells, stagnantCount, generation int, config utils.Config) (bool, string) {
	if livingCells == 0 {
		return true, "extinction"
	}
	if stagnantCount >= config.StagnationThreshold {
		return true, "stagnation detected"
	}
	if generation > 0 && generation%200 == 0 {
		return true, "periodic refresh"
	}
	return false, ""
}

// restartGame rebuilds the board with fresh patterns and a clean detector
func restartGame(config utils.Config) (*model.Board, *utils.CycleDetector, error) {
	board, err := buildBoard(config)
	if err != nil {
		return nil, nil, errors.Wrap(err, "[restartGame] failed to rebuild board")
	}

	log.Infof("New patterns loaded, living cells: %d", board.Population())
	return board, utils.NewCycleDetector(), nil
}

// injectLife returns a copy of the board with extra random cells added
func injectLife(board *model.Board, count int) (*model.Board, error) {
	seed := model.SeedFrom(board)
	seed.InjectRandomLife(count)
	return seed.Build(board.GetWrap())
}
