// Package index defines the in-memory fuzzy text index interface. See
// index/bruteforce for the exhaustive implementation.
package index
