package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/viant/sqlite-fuzz/fuzz"
)

// Scoring contains defaults for score and match commands.
type Scoring struct {
	Method   string  `toml:"method"`
	MinScore float64 `toml:"min_score"`
	Limit    int     `toml:"limit"`
}

// Batch contains settings for column scoring.
type Batch struct {
	Size        int `toml:"size"`
	Parallelism int `toml:"parallelism"` // 0 means GOMAXPROCS
}

// Store contains the SQLite document store location.
type Store struct {
	DSN   string `toml:"dsn"`
	Table string `toml:"table"`
}

// Logging contains log output settings.
type Logging struct {
	Format string `toml:"format"` // console or json
	Level  string `toml:"level"`
}

// Config is the full rfuzz configuration.
type Config struct {
	Scoring Scoring `toml:"scoring"`
	Batch   Batch   `toml:"batch"`
	Store   Store   `toml:"store"`
	Logging Logging `toml:"logging"`
}

// Load reads path, falling back to rfuzz.toml in the working directory when
// path is empty. Only the fallback file is optional; a missing explicit path
// is an error. It returns the config and whether a file was read.
func Load(path string) (*Config, bool, error) {
	cfg := Default()

	optional := path == ""
	if optional {
		path = defaultConfigFileName
	}
	data, err := os.ReadFile(path)
	exists := err == nil
	switch {
	case exists:
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return nil, false, fmt.Errorf("parse config: %w", err)
		}
	case optional && errors.Is(err, fs.ErrNotExist):
	default:
		return nil, false, fmt.Errorf("read config: %w", err)
	}

	cfg.normalize()
	if err := cfg.Validate(); err != nil {
		return nil, false, err
	}
	return &cfg, exists, nil
}

// MethodValue returns the parsed scoring method. Validate guarantees it parses.
func (c *Config) MethodValue() fuzz.Method {
	m, _ := fuzz.ParseMethod(c.Scoring.Method)
	return m
}

// Encode renders the config as TOML.
func (c *Config) Encode() ([]byte, error) {
	return toml.Marshal(c)
}

func (c *Config) normalize() {
	c.Scoring.Method = strings.TrimSpace(c.Scoring.Method)
	if c.Scoring.Method == "" {
		c.Scoring.Method = string(defaultMethod)
	}
	if c.Batch.Size <= 0 {
		c.Batch.Size = defaultBatchSize
	}
	if c.Store.Table == "" {
		c.Store.Table = defaultStoreTable
	}
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}
