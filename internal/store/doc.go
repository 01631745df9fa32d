// Package store provides the SQLite-backed preset library.
//
// A library holds named constraint bundles so users can save a combination
// once and roll against it by name later. Rows are keyed by the
// NFC-normalized name; each row also carries a content-addressed ID computed
// from its canonical JSON, so two libraries holding the same preset agree on
// its ID.
//
// # Ordering
//
// Listing uses seq, a logical counter assigned on first save, never a
// timestamp: ORDER BY seq ASC, name COLLATE BINARY ASC. Updating a preset
// keeps its seq.
//
// # Database Configuration
//
//   - WAL mode: Concurrent reads during writes
//   - synchronous=NORMAL: Balance durability/performance
//   - busy_timeout=5000: Wait for locks up to 5 seconds
//   - foreign_keys=ON: Enforce referential integrity
package store
