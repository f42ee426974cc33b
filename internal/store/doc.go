// Package store provides the SQLite run ledger.
//
// Each completed pipeline run is recorded as one row holding its counts,
// termination policy, the four final checksums, and the verification
// verdict. Only final reports are stored; queue contents and worker state
// are never persisted.
//
// Rows are keyed by the run ID (a UUIDv7 in production) and ordered by an
// autoincrement seq, so listing is deterministic even when two runs share a
// start timestamp.
package store
