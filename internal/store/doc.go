// Package store persists fault-tree analysis runs to SQLite.
//
// The core pipeline is pure and stateless; persistence is strictly a
// caller-side convenience for keeping example trees and computed
// results around between CLI invocations. The store never feeds back
// into the pipeline.
//
// SQLite is configured with WAL mode, a single-writer connection pool
// and foreign-key enforcement. Schema changes apply idempotently on
// Open via PRAGMA user_version migrations.
package store
