// Package cache provides a small TTL cache abstraction.
//
// The inventory sync service uses it to remember short-lived operational
// state that does not belong in the database, most importantly the
// per-user rate-limit cooldown marker set after Steam answers 429.
//
// Two implementations are provided:
//   - MemoryCache: in-process map with a background janitor, for
//     development, tests and single-instance deployments.
//   - RedisCache: shared state across instances, for production.
package cache
