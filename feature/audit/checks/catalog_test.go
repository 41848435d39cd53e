package checks

import (
	"context"
	"testing"

	"skinfolio/feature/inventory/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckCatalogCoverage(t *testing.T) {
	db := setupTestDB(t, "audit_catalog")

	price := decimal.NewFromFloat(8.67)
	require.NoError(t, db.Create(&[]models.CatalogItem{
		{MarketHashName: "AK-47 | Redline (Field-Tested)", CurrentPrice: &price},
		{MarketHashName: "AWP | Atheris (Minimal Wear)"},
	}).Error)

	require.NoError(t, db.Create(&[]models.InventoryItemRecord{
		{UserID: 1, AssetID: "101", MarketHashName: "AK-47 | Redline (Field-Tested)"},
		{UserID: 2, AssetID: "201", MarketHashName: "AK-47 | Redline (Field-Tested)"},
		{UserID: 1, AssetID: "102", MarketHashName: "AWP | Atheris (Minimal Wear)"},
		{UserID: 1, AssetID: "103", MarketHashName: "Some Community Skin Nobody Catalogued"},
	}).Error)

	report, err := CheckCatalogCoverage(context.Background(), db)
	require.NoError(t, err)

	// Names are deduplicated across users
	assert.Equal(t, 3, report.TotalNames)
	assert.Equal(t, 2, report.MatchedNames)
	assert.Equal(t, []string{"Some Community Skin Nobody Catalogued"}, report.MissingCatalog)
	assert.Equal(t, []string{"AWP | Atheris (Minimal Wear)"}, report.UnpricedCatalog)
}

func TestCheckCatalogCoverageEmpty(t *testing.T) {
	db := setupTestDB(t, "audit_catalog_empty")

	report, err := CheckCatalogCoverage(context.Background(), db)
	require.NoError(t, err)
	assert.Zero(t, report.TotalNames)
	assert.Empty(t, report.MissingCatalog)
	assert.Empty(t, report.UnpricedCatalog)
}
