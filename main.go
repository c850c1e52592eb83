package main

import (
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/cellgrid/go-life/utils"
)

var log = logrus.New()

// configureLogger applies the configured level and output format
func configureLogger(config utils.Config) {
	level, err := logrus.ParseLevel(config.LogLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	log.SetLevel(level)

	if config.LogJSON {
		log.SetFormatter(&logrus.JSONFormatter{TimestampFormat: time.RFC3339Nano})
	} else {
		log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
}

func main() {
	configPath := os.Getenv("LIFE_CONFIG")
	if configPath == "" {
		configPath = "config.json"
	}

	// Load configuration - fallback to defaults if file doesn't exist
	config, err := utils.LoadConfig(configPath)
	if err != nil {
		log.Warnf("Using default configuration: %v", err)
	}
	config = utils.LoadEnv(config)

	if err := config.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}
	configureLogger(config)

	board, stats, detector, err := initializeGame(config)
	if err != nil {
		log.Fatalf("Failed to initialize game: %v", err)
	}

	log.WithFields(logrus.Fields{
		"width":    board.GetWidth(),
		"height":   board.GetHeight(),
		"wrap":     board.GetWrap(),
		"living":   board.Population(),
		"parallel": config.UseParallel,
	}).Info("game initialized")

	// Handle Ctrl+C gracefully
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	var (
		generation     = 0
		stagnantCount  = 0
		lastRestartGen = 0
		lastFrameTime  = time.Now()
	)

	for {
		select {
		case <-sigChan:
			log.Infof("Shutting down after %d generations in %.1fs, %.1f average population",
				stats.TotalGenerations, stats.Elapsed().Seconds(), stats.AveragePopulation)
			return
		default:
			// Continue with game loop
		}

		frameStart := time.Now()

		livingCells, density, status, isStagnant := updateGameState(board, generation, lastFrameTime, stats, detector)
		lastFrameTime = frameStart

		// Update stagnation counter
		if isStagnant {
			stagnantCount++
		} else {
			stagnantCount = 0
		}

		if generation%config.ReportInterval == 0 {
			reportStatus(generation, livingCells, density, status, stats, lastRestartGen)
		}

		// Check for max generations limit
		if config.MaxGenerations > 0 && generation >= config.MaxGenerations {
			log.Infof("Reached maximum generations limit (%d)", config.MaxGenerations)
			break
		}

		shouldRestart, restartReason := checkRestartConditions(livingCells, stagnantCount, generation, config)
		if shouldRestart && config.AutoRestart {
			log.Infof("Restarting due to %s", restartReason)

			board, detector, err = restartGame(config)
			if err != nil {
				log.Fatalf("Failed to restart game: %v", err)
			}
			lastRestartGen = generation
			stagnantCount = 0
		} else if stagnantCount >= 2 && stagnantCount < config.StagnationThreshold {
			// Inject some life to try to break the stagnation
			injected, err := injectLife(board, config.InjectionCount)
			if err != nil {
				log.Warnf("Failed to inject life: %v", err)
			} else {
				board = injected
			}
		}

		// Calculate next generation
		if config.UseParallel {
			board = board.NextParallel()
		} else {
			board = board.Next()
		}

		generation++

		// Wait before next frame
		time.Sleep(config.FrameRate)
	}

	log.Infof("Final stats: %d generations in %.1fs, %.1f average population, peak %d",
		stats.TotalGenerations, stats.Elapsed().Seconds(), stats.AveragePopulation, stats.PeakPopulation)
}
