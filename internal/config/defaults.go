package config

import "github.com/viant/sqlite-fuzz/fuzz"

const (
	defaultMethod         = fuzz.MethodPartialRatio
	defaultMinScore       = 0.0
	defaultLimit          = 10
	defaultBatchSize      = 1024
	defaultStoreDSN       = "rfuzz.sqlite"
	defaultStoreTable     = "fuzzy_docs"
	defaultLogFormat      = "console"
	defaultLogLevel       = "info"
	defaultConfigFileName = "rfuzz.toml"
)

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		Scoring: Scoring{
			Method:   string(defaultMethod),
			MinScore: defaultMinScore,
			Limit:    defaultLimit,
		},
		Batch: Batch{
			Size: defaultBatchSize,
		},
		Store: Store{
			DSN:   defaultStoreDSN,
			Table: defaultStoreTable,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
