// Package config loads rfuzz settings from TOML. A missing file yields the
// defaults; values are normalized and validated before use.
package config
