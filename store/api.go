package store

import (
	"context"

	"github.com/viant/sqlite-fuzz/fuzz"
)

// Document is a piece of text stored for fuzzy lookup.
type Document struct {
	// ID is the logical identifier of the document. When empty on insert, the
	// store generates one.
	ID string

	// Text is the string scored against queries.
	Text string

	// Meta is an opaque payload returned with matches.
	Meta string
}

// Match is a single search hit.
type Match struct {
	ID    string
	Text  string
	Meta  string
	Score float64
}

// SearchOptions tunes Search.
type SearchOptions struct {
	// Method selects the SQL scoring function; empty means partial_ratio.
	Method fuzz.Method
	// MinScore drops documents scoring below it.
	MinScore float64
	// Limit caps the number of matches; values <= 0 return all.
	Limit int
}

// Store defines the application-level fuzzy document store API.
type Store interface {
	// AddDocuments upserts documents and returns their IDs in input order.
	AddDocuments(ctx context.Context, docs []Document) ([]string, error)

	// Search scores every document against query and returns matches best
	// first.
	Search(ctx context.Context, query string, opts SearchOptions) ([]Match, error)

	// Remove deletes the document with the given ID.
	Remove(ctx context.Context, id string) error
}
