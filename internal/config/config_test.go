package config

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/sqlite-fuzz/fuzz"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "rfuzz.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadMissingDefaultFileUsesDefaults(t *testing.T) {
	t.Chdir(t.TempDir())
	cfg, exists, err := Load("")
	require.NoError(t, err)
	assert.False(t, exists)
	assert.Equal(t, Default(), *cfg)
	assert.Equal(t, fuzz.MethodPartialRatio, cfg.MethodValue())
}

func TestLoadDefaultFileFromWorkingDirectory(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "rfuzz.toml"), []byte("[scoring]\nmethod = \"ratio\"\n"), 0o600))
	t.Chdir(dir)
	cfg, exists, err := Load("")
	require.NoError(t, err)
	assert.True(t, exists)
	assert.Equal(t, fuzz.MethodRatio, cfg.MethodValue())
}

func TestLoadMissingExplicitFile(t *testing.T) {
	_, _, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, fs.ErrNotExist)
}

func TestLoadEmptyFileUsesDefaults(t *testing.T) {
	cfg, exists, err := Load(writeConfig(t, ""))
	require.NoError(t, err)
	assert.True(t, exists)
	assert.Equal(t, Default(), *cfg)
}

func TestLoadOverrides(t *testing.T) {
	path := writeConfig(t, `
[scoring]
method = "Gram"
min_score = 0.4
limit = 3

[batch]
size = 64
parallelism = 2

[store]
dsn = "/tmp/names.sqlite"

[logging]
format = "JSON"
level = "debug"
`)
	cfg, exists, err := Load(path)
	require.NoError(t, err)
	assert.True(t, exists)
	assert.Equal(t, fuzz.MethodGram, cfg.MethodValue())
	assert.InDelta(t, 0.4, cfg.Scoring.MinScore, 1e-12)
	assert.Equal(t, 3, cfg.Scoring.Limit)
	assert.Equal(t, 64, cfg.Batch.Size)
	assert.Equal(t, 2, cfg.Batch.Parallelism)
	assert.Equal(t, "/tmp/names.sqlite", cfg.Store.DSN)
	assert.Equal(t, defaultStoreTable, cfg.Store.Table)
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestLoadInvalid(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "unknown method", body: "[scoring]\nmethod = \"soundex\"\n"},
		{name: "min score above one", body: "[scoring]\nmin_score = 1.5\n"},
		{name: "negative limit", body: "[scoring]\nlimit = -1\n"},
		{name: "negative parallelism", body: "[batch]\nparallelism = -2\n"},
		{name: "bad log format", body: "[logging]\nformat = \"xml\"\n"},
		{name: "bad log level", body: "[logging]\nlevel = \"loud\"\n"},
		{name: "malformed toml", body: "[scoring\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := Load(writeConfig(t, tt.body))
			require.Error(t, err)
		})
	}
}

func TestEncodeRoundTrip(t *testing.T) {
	cfg := Default()
	data, err := cfg.Encode()
	require.NoError(t, err)
	loaded, _, err := Load(writeConfig(t, string(data)))
	require.NoError(t, err)
	assert.Equal(t, cfg, *loaded)
}
