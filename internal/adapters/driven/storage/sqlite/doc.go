// Package sqlite provides the SQLite-backed run-history store.
//
// This adapter uses modernc.org/sqlite, a pure Go SQLite implementation
// that requires no CGO, enabling easy cross-compilation. It records runs
// and the issues they raised, and doubles as an issue sink so a run's
// issues can be persisted alongside the CSV log.
//
// # Schema
//
// The database schema is managed through versioned migrations embedded
// from the migrations/ directory.
//
// # Data Location
//
// By default, the database is stored at ~/.harmonise/history.db
package sqlite
