package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

const (
	// DefaultPoolSize is the number of questions generated at startup.
	DefaultPoolSize = 200

	// DefaultDisplayCount is the number of questions shown per draw.
	DefaultDisplayCount = 5
)

// Config holds the quiz configuration.
type Config struct {
	// PoolSize is the fixed length of the question pool.
	PoolSize int

	// DisplayCount is the number of questions in each question set.
	// Must not exceed PoolSize.
	DisplayCount int

	// BankPath optionally points at a YAML question bank whose text
	// replaces the placeholder questions.
	BankPath string

	// LogFile receives structured logs. Empty disables logging.
	LogFile string

	// Seed makes draws reproducible when non-zero.
	Seed uint64
}

// DefaultConfig returns a Config with the stock constants.
func DefaultConfig() Config {
	return Config{
		PoolSize:     DefaultPoolSize,
		DisplayCount: DefaultDisplayCount,
	}
}

// FromEnv builds a Config from environment variables, falling back to
// defaults for unset values. A .env file in the working directory is
// loaded first when present.
func FromEnv() (Config, error) {
	_ = godotenv.Load()

	cfg := DefaultConfig()

	if v := os.Getenv("PSYQUIZ_POOL_SIZE"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return cfg, &ConfigurationError{Field: "PSYQUIZ_POOL_SIZE", Message: fmt.Sprintf("not an integer: %q", v), Err: err}
		}
		cfg.PoolSize = n
	}
	if v := os.Getenv("PSYQUIZ_DISPLAY_COUNT"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return cfg, &ConfigurationError{Field: "PSYQUIZ_DISPLAY_COUNT", Message: fmt.Sprintf("not an integer: %q", v), Err: err}
		}
		cfg.DisplayCount = n
	}
	if v := os.Getenv("PSYQUIZ_BANK"); v != "" {
		cfg.BankPath = v
	}
	if v := os.Getenv("PSYQUIZ_LOG_FILE"); v != "" {
		cfg.LogFile = v
	}
	if v := os.Getenv("PSYQUIZ_SEED"); v != "" {
		n, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return cfg, &ConfigurationError{Field: "PSYQUIZ_SEED", Message: fmt.Sprintf("not an unsigned integer: %q", v), Err: err}
		}
		cfg.Seed = n
	}

	return cfg, nil
}

// Validate checks the size constants. The sampler cannot return more
// questions than the pool holds, so that case is caught here at startup.
func (c Config) Validate() error {
	if c.PoolSize <= 0 {
		return &ConfigurationError{Field: "pool size", Message: fmt.Sprintf("must be positive, got %d", c.PoolSize)}
	}
	if c.DisplayCount <= 0 {
		return &ConfigurationError{Field: "display count", Message: fmt.Sprintf("must be positive, got %d", c.DisplayCount)}
	}
	if c.DisplayCount > c.PoolSize {
		return &ConfigurationError{
			Field:   "display count",
			Message: fmt.Sprintf("%d exceeds pool size %d", c.DisplayCount, c.PoolSize),
		}
	}
	return nil
}

// MaxScore returns the highest reachable total for one question set.
func (c Config) MaxScore() int {
	return 3 * c.DisplayCount
}
