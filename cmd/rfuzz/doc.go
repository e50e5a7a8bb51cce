// Command rfuzz scores strings with character-bigram cosine similarity.
//
// Subcommands score single pairs, score CSV columns of pairs, rank candidate
// texts from a CSV file or a SQLite store, load documents into a store, and
// benchmark the scorers against edit-distance similarities.
package main
