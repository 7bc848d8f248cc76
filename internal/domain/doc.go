// Package domain contains the core model for ForeCounter.
//
// The domain does no I/O and knows nothing about files, bbolt, SQLite, or the terminal.
// The json tags on HoleScore and Round define the persisted wire layout; adapters
// move those bytes in and out of storage.
package domain
