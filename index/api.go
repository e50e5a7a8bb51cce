package index

// Index defines a generic fuzzy text index with basic lifecycle methods.
// It enables building from (id, text) pairs, top-k queries, and binary
// serialization for persistence.
type Index interface {
	// Build loads the index from the given ids and texts.
	// ids and texts must have the same length.
	Build(ids []string, texts []string) error

	// Query scores every indexed text against query and returns up to k
	// matches as parallel slices of ids and scores, best first. When k <= 0
	// all matches are returned.
	Query(query string, k int) (ids []string, scores []float64, err error)

	// MarshalBinary serializes the indexed ids and texts.
	MarshalBinary() ([]byte, error)

	// UnmarshalBinary reconstructs the index from a serialized byte slice.
	UnmarshalBinary(data []byte) error
}
