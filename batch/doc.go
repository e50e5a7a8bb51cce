// Package batch applies a fuzzy scoring method element-wise over two string
// columns. Missing values (nil entries) propagate to missing results without
// calling the scorer. Independent row batches are scored concurrently; the
// output order always matches the input order.
package batch
