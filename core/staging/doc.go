// Package staging provides the key-value area where pending menu changes are kept.
//
// An absent key means "no staged changes". Values are opaque bytes; the reconcile
// package stores a JSON array of dish names under a single key.
//
// # Implementations
//
//   - GormStore: persists entries in the staging_entries table through GORM, so the
//     staging area survives restarts (MySQL in production, SQLite for local runs).
//   - MemoryStore: process-local map, used in tests and ephemeral sessions.
package staging
