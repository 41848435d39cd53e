package checks

import (
	"context"
	"fmt"
	"sort"

	"skinfolio/feature/inventory/models"

	"gorm.io/gorm"
)

// CoverageReport describes how well the catalog covers the item names that
// actually occur in synced inventories. MissingCatalog is the backlog for
// the catalog team; UnpricedCatalog lists entries that exist but cannot
// contribute to portfolio value yet.
type CoverageReport struct {
	TotalNames      int      `json:"total_names"`
	MatchedNames    int      `json:"matched_names"`
	MissingCatalog  []string `json:"missing_catalog"`
	UnpricedCatalog []string `json:"unpriced_catalog"`
}

// CheckCatalogCoverage compares the distinct market hash names held by users
// against the catalog.
func CheckCatalogCoverage(ctx context.Context, db *gorm.DB) (*CoverageReport, error) {
	var names []string
	err := db.WithContext(ctx).
		Model(&models.InventoryItemRecord{}).
		Distinct("market_hash_name").
		Pluck("market_hash_name", &names).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load item names: %w", err)
	}

	var catalog []models.CatalogItem
	err = db.WithContext(ctx).
		Select("market_hash_name", "current_price").
		Find(&catalog).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}

	priced := make(map[string]bool, len(catalog))
	for _, entry := range catalog {
		priced[entry.MarketHashName] = entry.CurrentPrice != nil
	}

	report := &CoverageReport{
		TotalNames:      len(names),
		MissingCatalog:  []string{},
		UnpricedCatalog: []string{},
	}
	for _, name := range names {
		hasPrice, ok := priced[name]
		switch {
		case !ok:
			report.MissingCatalog = append(report.MissingCatalog, name)
		case !hasPrice:
			report.MatchedNames++
			report.UnpricedCatalog = append(report.UnpricedCatalog, name)
		default:
			report.MatchedNames++
		}
	}

	sort.Strings(report.MissingCatalog)
	sort.Strings(report.UnpricedCatalog)
	return report, nil
}
