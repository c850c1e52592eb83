package utils_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cellgrid/go-life/utils"
)

func TestDefaultConfig(t *testing.T) {
	config := utils.DefaultConfig()

	assert.Equal(t, 60, config.Width)
	assert.Equal(t, 30, config.Height)
	assert.True(t, config.Wrap)
	assert.Equal(t, 150*time.Millisecond, config.FrameRate)
	assert.True(t, config.AutoRestart)
	assert.Equal(t, 5, config.StagnationThreshold)
	assert.True(t, config.UseParallel)
	assert.Equal(t, 1000, config.MaxGenerations)
	assert.Equal(t, 0.15, config.RandomDensity)
	assert.Equal(t, 3, config.InjectionCount)
	assert.Equal(t, 10, config.ReportInterval)
	assert.Equal(t, "info", config.LogLevel)
	assert.False(t, config.LogJSON)

	assert.NoError(t, config.Validate())
}

func TestLoadConfig_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	data := `{"width": 80, "height": 24, "wrap": false, "log_level": "debug"}`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	config, err := utils.LoadConfig(path)

	require.NoError(t, err)
	assert.Equal(t, 80, config.Width)
	assert.Equal(t, 24, config.Height)
	assert.False(t, config.Wrap)
	assert.Equal(t, "debug", config.LogLevel)

	// Keys absent from the file keep their defaults.
	assert.Equal(t, 150*time.Millisecond, config.FrameRate)
	assert.Equal(t, 0.15, config.RandomDensity)
}

func TestLoadConfig_MissingFile(t *testing.T) {
	config, err := utils.LoadConfig(filepath.Join(t.TempDir(), "missing.json"))

	require.Error(t, err)
	assert.Equal(t, utils.DefaultConfig(), config)
}

func TestLoadConfig_BadJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	config, err := utils.LoadConfig(path)

	require.Error(t, err)
	assert.Equal(t, utils.DefaultConfig(), config)
}

func TestLoadEnv_Overrides(t *testing.T) {
	t.Setenv("LIFE_WIDTH", "100")
	t.Setenv("LIFE_WRAP", "false")
	t.Setenv("LIFE_FRAME_RATE", "50ms")
	t.Setenv("LIFE_RANDOM_DENSITY", "0.4")
	t.Setenv("LIFE_LOG_LEVEL", "warning")
	t.Setenv("LIFE_LOG_JSON", "true")

	config := utils.LoadEnv(utils.DefaultConfig())

	assert.Equal(t, 100, config.Width)
	assert.False(t, config.Wrap)
	assert.Equal(t, 50*time.Millisecond, config.FrameRate)
	assert.Equal(t, 0.4, config.RandomDensity)
	assert.Equal(t, "warning", config.LogLevel)
	assert.True(t, config.LogJSON)

	// Variables that were not set leave their fields alone.
	assert.Equal(t, 30, config.Height)
	assert.Equal(t, 5, config.StagnationThreshold)
}

func TestLoadEnv_InvalidValuesKeepExisting(t *testing.T) {
	t.Setenv("LIFE_WIDTH", "plenty")
	t.Setenv("LIFE_WRAP", "maybe")
	t.Setenv("LIFE_FRAME_RATE", "fast")
	t.Setenv("LIFE_RANDOM_DENSITY", "dense")

	config := utils.LoadEnv(utils.DefaultConfig())

	assert.Equal(t, utils.DefaultConfig(), config)
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*utils.Config)
		ok     bool
	}{
		{"defaults", func(c *utils.Config) {}, true},
		{"zero width", func(c *utils.Config) { c.Width = 0 }, false},
		{"negative height", func(c *utils.Config) { c.Height = -1 }, false},
		{"density above one", func(c *utils.Config) { c.RandomDensity = 1.5 }, false},
		{"negative density", func(c *utils.Config) { c.RandomDensity = -0.1 }, false},
		{"negative stagnation threshold", func(c *utils.Config) { c.StagnationThreshold = -1 }, false},
		{"negative injection count", func(c *utils.Config) { c.InjectionCount = -2 }, false},
		{"negative max generations", func(c *utils.Config) { c.MaxGenerations = -5 }, false},
		{"negative frame rate", func(c *utils.Config) { c.FrameRate = -time.Second }, false},
		{"zero report interval", func(c *utils.Config) { c.ReportInterval = 0 }, false},
		{"unknown log level", func(c *utils.Config) { c.LogLevel = "chatty" }, false},
		{"zero frame rate runs unthrottled", func(c *utils.Config) { c.FrameRate = 0 }, true},
		{"zero max generations runs forever", func(c *utils.Config) { c.MaxGenerations = 0 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := utils.DefaultConfig()
			tt.mutate(&config)

			err := config.Validate()

			if tt.ok {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}
