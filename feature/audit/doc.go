// Package audit provides consistency checks over synced inventory data.
//
// Unlike the 'inventory' package which owns the sync flow, this package only
// reads: it cross-checks the data the sync left behind and reports
// disagreements for an operator to act on.
//
// # Checks Provided
//
//   - Snapshots: Compares each snapshot's aggregates against the item rows
//     beneath it, and flags orphaned rows, missing sync timestamps, consent
//     violations and passed retention deadlines.
//   - Catalog: Reports which owned item names are missing from the catalog
//     (the pricing backlog) and which catalog entries are still unpriced.
//   - Archive: Verifies that every successfully synced user has at least one
//     raw payload object in the archive bucket.
//
// # HTTP Endpoints
//
//   - GET /audit : Runs all checks.
//   - GET /audit/snapshots : Runs the snapshot consistency check.
//   - GET /audit/catalog : Runs the catalog coverage check.
//   - GET /audit/archive : Runs the archive presence check.
package audit
