package utils

import (
	"encoding/json"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// Config holds the configuration for the game
type Config struct {
	Width               int           `json:"width"`
	Height              int           `json:"height"`
	Wrap                bool          `json:"wrap"`
	FrameRate           time.Duration `json:"frame_rate"`
	AutoRestart         bool          `json:"auto_restart"`
	StagnationThreshold int           `json:"stagnation_threshold"`
	UseParallel         bool          `json:"use_parallel"`
	MaxGenerations      int           `json:"max_generations"`
	RandomDensity       float64       `json:"random_density"`
	InjectionCount      int           `json:"injection_count"`
	ReportInterval      int           `json:"report_interval"`
	LogLevel            string        `json:"log_level"`
	LogJSON             bool          `json:"log_json"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Width:               60,
		Height:              30,
		Wrap:                true, // Toroidal edges unless configured otherwise
		FrameRate:           150 * time.Millisecond,
		AutoRestart:         true,
		StagnationThreshold: 5,
		UseParallel:         true,
		MaxGenerations:      1000,
		RandomDensity:       0.15,
		InjectionCount:      3,
		ReportInterval:      10,
		LogLevel:            "info",
		LogJSON:             false,
	}
}

// LoadConfig loads configuration from JSON file, starting from defaults
func LoadConfig(filename string) (Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to read file: %+v", filename)
	}

	if err = json.Unmarshal(data, &config); err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to unmarshal data from file: %+v", filename)
	}

	return config, nil
}

// LoadEnv overlays LIFE_* environment variables onto the config. A .env file
// in the working directory is read first when present; unparsable values are
// logged and skipped.
func LoadEnv(config Config) Config {
	_ = godotenv.Load() // optional; plain environment variables still apply

	config.Width = envInt("LIFE_WIDTH", config.Width)
	config.Height = envInt("LIFE_HEIGHT", config.Height)
	config.Wrap = envBool("LIFE_WRAP", config.Wrap)
	config.FrameRate = envDuration("LIFE_FRAME_RATE", config.FrameRate)
	config.AutoRestart = envBool("LIFE_AUTO_RESTART", config.AutoRestart)
	config.StagnationThreshold = envInt("LIFE_STAGNATION_THRESHOLD", config.StagnationThreshold)
	config.UseParallel = envBool("LIFE_USE_PARALLEL", config.UseParallel)
	config.MaxGenerations = envInt("LIFE_MAX_GENERATIONS", config.MaxGenerations)
	config.RandomDensity = envFloat("LIFE_RANDOM_DENSITY", config.RandomDensity)
	config.InjectionCount = envInt("LIFE_INJECTION_COUNT", config.InjectionCount)
	config.ReportInterval = envInt("LIFE_REPORT_INTERVAL", config.ReportInterval)
	if v := os.Getenv("LIFE_LOG_LEVEL"); v != "" {
		config.LogLevel = v
	}
	config.LogJSON = envBool("LIFE_LOG_JSON", config.LogJSON)

	return config
}

// Validate rejects configurations the engine cannot run with
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return errors.Errorf("[Validate] grid dimensions must be positive, got %dx%d", c.Width, c.Height)
	}
	if c.RandomDensity < 0 || c.RandomDensity > 1 {
		return errors.Errorf("[Validate] random_density must be within [0, 1], got %g", c.RandomDensity)
	}
	if c.StagnationThreshold < 0 {
		return errors.Errorf("[Validate] stagnation_threshold must not be negative, got %d", c.StagnationThreshold)
	}
	if c.InjectionCount < 0 {
		return errors.Errorf("[Validate] injection_count must not be negative, got %d", c.InjectionCount)
	}
	if c.MaxGenerations < 0 {
		return errors.Errorf("[Validate] max_generations must not be negative, got %d", c.MaxGenerations)
	}
	if c.FrameRate < 0 {
		return errors.Errorf("[Validate] frame_rate must not be negative, got %s", c.FrameRate)
	}
	if c.ReportInterval < 1 {
		return errors.Errorf("[Validate] report_interval must be at least 1, got %d", c.ReportInterval)
	}
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return errors.Wrapf(err, "[Validate] invalid log_level: %+v", c.LogLevel)
	}
	return nil
}

func envInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		logrus.Warnf("Invalid %s '%s', keeping %d", key, v, fallback)
		return fallback
	}
	return n
}

func envBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		logrus.Warnf("Invalid %s '%s', keeping %t", key, v, fallback)
		return fallback
	}
	return b
}

func envFloat(key string, fallback float64) float64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		logrus.Warnf("Invalid %s '%s', keeping %g", key, v, fallback)
		return fallback
	}
	return f
}

func envDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		logrus.Warnf("Invalid %s '%s', keeping %s", key, v, fallback)
		return fallback
	}
	return d
}
