// Package inventory implements the inventory synchronization feature.
//
// A sync pulls a user's item collection from the Steam community inventory
// endpoint, reconciles every external item against the internal catalog,
// computes aggregate value and atomically replaces the stored snapshot.
// The flow tolerates privacy restrictions, rate limiting and partial
// failures: a failed sync only moves the snapshot's status columns and
// never corrupts or clears previously persisted item rows.
//
// # Components
//
//   - steam.Client (subpackage): resilient paginated fetch with retry,
//     backoff and error classification.
//   - CatalogMatcher: one batched catalog query per inventory; unmatched
//     items are kept without value.
//   - Service: the orchestrator; consent gate, staleness policy, rate-limit
//     cooldown, aggregation and retention computation.
//   - GormSnapshotStore: transactional replace of item rows and aggregate.
//   - Archiver: best-effort raw payload archive in object storage.
//   - Handler: HTTP endpoints for triggering syncs and reading snapshots.
//
// # State machine
//
// A user's snapshot moves between success, private, rate_limited and error
// states. A snapshot younger than the staleness threshold answers sync
// calls from the store (cached), unless the caller forces a refresh.
package inventory
