// Package store keeps text documents in SQLite and looks them up by fuzzy
// similarity using the SQL functions registered by the engine package. It
// includes:
//   - Document and Match models and the Store interface
//   - SQLiteStore: durable storage with in-database scoring
//   - Schema helpers to create the documents table
package store
