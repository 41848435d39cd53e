// Package models defines the persisted data model of the inventory feature:
// users, per-user inventory snapshots and item rows, and the priced item
// catalog.
package models
