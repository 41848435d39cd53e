// Package steam implements the resilient fetch client for the Steam
// community inventory endpoint.
//
// The endpoint returns a paginated payload with a split representation:
// an assets array (one entry per owned instance) and a descriptions array
// (shared metadata, joined by classid/instanceid). This package walks the
// pagination cursor sequentially, retries transient failures with jittered
// exponential backoff, and joins assets with descriptions into normalized
// Item values.
//
// # Error Classification
//
//   - 403             -> PRIVATE_INVENTORY (permanent, never retried)
//   - 429             -> RATE_LIMITED (transient)
//   - 5xx / transport -> NETWORK_ERROR (transient)
//   - bad payload     -> INVALID_RESPONSE (not retried)
//   - 200 + success=0 -> EXTERNAL_API_ERROR (not retried)
//
// All failures come back as *Error values; the client never panics across
// its boundary.
package steam
