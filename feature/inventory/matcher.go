package inventory

import (
	"context"
	"fmt"

	"skinfolio/feature/inventory/models"
	"skinfolio/feature/inventory/steam"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// MatchedItem is the result of looking one normalized item up in the
// catalog. CatalogItemID and Value are nil when the item has no catalog
// entry; such items are kept, not dropped, so the user's item count always
// equals their true inventory size.
type MatchedItem struct {
	Item          steam.Item
	CatalogItemID *uint
	Value         *decimal.Decimal
}

// Matched reports whether the item resolved to a catalog entry.
func (m MatchedItem) Matched() bool {
	return m.CatalogItemID != nil
}

// Matcher maps normalized items onto the internal catalog.
type Matcher interface {
	Match(ctx context.Context, items []steam.Item) ([]MatchedItem, error)
}

// CatalogMatcher resolves items against the catalog_items table with a
// single batched query per inventory.
type CatalogMatcher struct {
	db *gorm.DB
}

// NewCatalogMatcher creates a matcher backed by the given database.
func NewCatalogMatcher(db *gorm.DB) *CatalogMatcher {
	return &CatalogMatcher{db: db}
}

// Match looks all items up by market hash name in one IN query and returns
// one result per input item, preserving input order.
func (m *CatalogMatcher) Match(ctx context.Context, items []steam.Item) ([]MatchedItem, error) {
	results := make([]MatchedItem, 0, len(items))
	if len(items) == 0 {
		return results, nil
	}

	seen := make(map[string]struct{}, len(items))
	names := make([]string, 0, len(items))
	for _, item := range items {
		if _, ok := seen[item.MarketHashName]; ok {
			continue
		}
		seen[item.MarketHashName] = struct{}{}
		names = append(names, item.MarketHashName)
	}

	var entries []models.CatalogItem
	if err := m.db.WithContext(ctx).
		Where("market_hash_name IN ?", names).
		Find(&entries).Error; err != nil {
		return nil, fmt.Errorf("catalog lookup failed: %w", err)
	}

	byName := make(map[string]*models.CatalogItem, len(entries))
	for i := range entries {
		byName[entries[i].MarketHashName] = &entries[i]
	}

	for _, item := range items {
		result := MatchedItem{Item: item}
		if entry, ok := byName[item.MarketHashName]; ok {
			id := entry.ID
			result.CatalogItemID = &id
			result.Value = entry.CurrentPrice
		}
		results = append(results, result)
	}
	return results, nil
}
