package config

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/viant/sqlite-fuzz/fuzz"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if _, err := fuzz.ParseMethod(c.Scoring.Method); err != nil {
		return fmt.Errorf("scoring.method: %w", err)
	}
	if c.Scoring.MinScore < 0 || c.Scoring.MinScore > 1 {
		return fmt.Errorf("scoring.min_score must be within [0, 1], got %v", c.Scoring.MinScore)
	}
	if c.Scoring.Limit < 0 {
		return fmt.Errorf("scoring.limit must be >= 0, got %d", c.Scoring.Limit)
	}
	if c.Batch.Parallelism < 0 {
		return fmt.Errorf("batch.parallelism must be >= 0, got %d", c.Batch.Parallelism)
	}
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format must be console or json, got %q", c.Logging.Format)
	}
	if _, err := zerolog.ParseLevel(c.Logging.Level); err != nil {
		return fmt.Errorf("logging.level: %w", err)
	}
	return nil
}
