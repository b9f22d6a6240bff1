package cli

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
)

// Config holds CLI configuration
type Config struct {
	Output   string
	Width    int
	Height   int
	Seed     uint64
	Seeded   bool
	LogLevel string
}

// DefaultConfig returns a Config with default values, overridden by the
// BATTLESHIP_* environment variables
func DefaultConfig() *Config {
	cfg := &Config{
		Output:   getEnvOrDefault("BATTLESHIP_OUTPUT", "text"),
		Width:    getEnvIntOrDefault("BATTLESHIP_BOARD_WIDTH", 10),
		Height:   getEnvIntOrDefault("BATTLESHIP_BOARD_HEIGHT", 10),
		LogLevel: getEnvOrDefault("BATTLESHIP_LOG_LEVEL", "warn"),
	}
	if val := os.Getenv("BATTLESHIP_SEED"); val != "" {
		if seed, err := strconv.ParseUint(val, 10, 64); err == nil {
			cfg.Seed = seed
			cfg.Seeded = true
		}
	}
	return cfg
}

// Validate checks the configuration before any command runs
func (c *Config) Validate() error {
	if c.Output != "text" && c.Output != "json" {
		return fmt.Errorf("invalid output format %q: must be text or json", c.Output)
	}
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("invalid board size %dx%d", c.Width, c.Height)
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

// Level parses LogLevel into a slog level
func (c *Config) Level() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.ToUpper(c.LogLevel))); err != nil {
		return 0, fmt.Errorf("invalid log level %q", c.LogLevel)
	}
	return level, nil
}

func getEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getEnvIntOrDefault(key string, defaultVal int) int {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	n, err := strconv.Atoi(val)
	if err != nil {
		return defaultVal
	}
	return n
}
