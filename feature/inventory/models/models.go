package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Sync status values stored on the snapshot row.
const (
	SyncStatusSuccess     = "success"
	SyncStatusPrivate     = "private"
	SyncStatusRateLimited = "rate_limited"
	SyncStatusError       = "error"
)

// User is an application account linked to an external Steam identity.
type User struct {
	ID             uint      `gorm:"column:id;primaryKey"`
	SteamID        string    `gorm:"column:steam_id;uniqueIndex;size:32"`
	Username       string    `gorm:"column:username;size:64"`
	LastActivityAt time.Time `gorm:"column:last_activity_at"`
	CreatedAt      time.Time `gorm:"column:created_at"`
}

// TableName overrides the table name.
func (User) TableName() string {
	return "users"
}

// UserInventorySnapshot is the per-user aggregate row. It is owned
// exclusively by the sync orchestrator; presentation layers only read it.
//
// A snapshot is created on the first sync, fully replaced on every later
// successful sync, and left untouched by failed ones (only the status
// columns move). ScheduledDeleteAt implements the retention policy: last
// user activity plus the retention window.
type UserInventorySnapshot struct {
	UserID            uint            `gorm:"column:user_id;primaryKey"`
	TotalItems        int             `gorm:"column:total_items"`
	UnmatchedItems    int             `gorm:"column:unmatched_items"`
	TotalValue        decimal.Decimal `gorm:"column:total_value;type:decimal(14,2)"`
	SyncStatus        string          `gorm:"column:sync_status;size:16"`
	Public            bool            `gorm:"column:public"`
	ConsentGiven      bool            `gorm:"column:consent_given"`
	ConsentAt         *time.Time      `gorm:"column:consent_at"`
	LastSyncedAt      *time.Time      `gorm:"column:last_synced_at"`
	ScheduledDeleteAt *time.Time      `gorm:"column:scheduled_delete_at"`
	ErrorMessage      string          `gorm:"column:error_message;size:512"`
	UpdatedAt         time.Time       `gorm:"column:updated_at"`
}

// TableName overrides the table name.
func (UserInventorySnapshot) TableName() string {
	return "user_inventory_snapshots"
}

// InventoryItemRecord is one row per owned item in the latest snapshot.
// CatalogItemID and CurrentValue are nil for items with no catalog match;
// the raw market hash name is always present so unmatched items remain
// visible.
type InventoryItemRecord struct {
	ID               uint             `gorm:"column:id;primaryKey;autoIncrement"`
	UserID           uint             `gorm:"column:user_id;index"`
	CatalogItemID    *uint            `gorm:"column:catalog_item_id;index"`
	AssetID          string           `gorm:"column:asset_id;size:32"`
	MarketHashName   string           `gorm:"column:market_hash_name;size:128"`
	CustomName       string           `gorm:"column:custom_name;size:64"`
	Wear             string           `gorm:"column:wear;size:16"`
	Quality          string           `gorm:"column:quality;size:16"`
	Stickers         string           `gorm:"column:stickers;size:512"` // JSON-encoded list
	TradeLockedUntil *time.Time       `gorm:"column:trade_locked_until"`
	InspectLink      string           `gorm:"column:inspect_link;size:512"`
	CurrentValue     *decimal.Decimal `gorm:"column:current_value;type:decimal(12,2)"`
	CreatedAt        time.Time        `gorm:"column:created_at"`
}

// TableName overrides the table name.
func (InventoryItemRecord) TableName() string {
	return "inventory_item_records"
}

// CatalogItem is an entry in the internal item catalog. CurrentPrice is nil
// for catalog entries that have not been priced yet.
type CatalogItem struct {
	ID             uint             `gorm:"column:id;primaryKey"`
	MarketHashName string           `gorm:"column:market_hash_name;uniqueIndex;size:128"`
	DisplayName    string           `gorm:"column:display_name;size:128"`
	Rarity         string           `gorm:"column:rarity;size:32"`
	CurrentPrice   *decimal.Decimal `gorm:"column:current_price;type:decimal(12,2)"`
	UpdatedAt      time.Time        `gorm:"column:updated_at"`
}

// TableName overrides the table name.
func (CatalogItem) TableName() string {
	return "catalog_items"
}
