// Package sqlite provides a SQLite-backed implementation of the proposal store.
//
// This adapter uses modernc.org/sqlite, a pure Go SQLite implementation that
// requires no CGO, enabling easy cross-compilation. The schema is managed
// through versioned migrations embedded from the migrations/ directory.
//
// By default, the database is stored at ~/.ideaflux/data/ideaflux.db.
//
// All operations are thread-safe. The store relies on database-level locking
// provided by SQLite in WAL mode.
package sqlite
