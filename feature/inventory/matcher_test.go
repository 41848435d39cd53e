package inventory

import (
	"context"
	"fmt"
	"testing"

	"skinfolio/feature/inventory/models"
	"skinfolio/feature/inventory/steam"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// setupTestDB creates an in-memory SQLite DB with the feature's schema.
func setupTestDB(t *testing.T, dbName string) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", dbName)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to connect database: %v", err)
	}

	err = db.AutoMigrate(
		&models.User{},
		&models.CatalogItem{},
		&models.UserInventorySnapshot{},
		&models.InventoryItemRecord{},
	)
	if err != nil {
		t.Fatalf("failed to migrate schema: %v", err)
	}
	return db
}

func decimalPtr(v float64) *decimal.Decimal {
	d := decimal.NewFromFloat(v)
	return &d
}

func TestMatchBatchesAndKeepsUnmatched(t *testing.T) {
	db := setupTestDB(t, "matcher_unmatched")

	seed := []models.CatalogItem{
		{MarketHashName: "AK-47 | Redline (Field-Tested)", DisplayName: "AK-47 | Redline", CurrentPrice: decimalPtr(8.67)},
		{MarketHashName: "AWP | Atheris (Minimal Wear)", DisplayName: "AWP | Atheris", CurrentPrice: nil},
	}
	require.NoError(t, db.Create(&seed).Error)

	matcher := NewCatalogMatcher(db)
	items := []steam.Item{
		{AssetID: "1", MarketHashName: "AK-47 | Redline (Field-Tested)"},
		{AssetID: "2", MarketHashName: "Some Community Skin Nobody Catalogued"},
		{AssetID: "3", MarketHashName: "AWP | Atheris (Minimal Wear)"},
	}

	results, err := matcher.Match(context.Background(), items)
	require.NoError(t, err)
	require.Len(t, results, 3)

	// Input order preserved
	assert.Equal(t, "1", results[0].Item.AssetID)
	assert.Equal(t, "2", results[1].Item.AssetID)
	assert.Equal(t, "3", results[2].Item.AssetID)

	// Matched and priced
	assert.True(t, results[0].Matched())
	require.NotNil(t, results[0].Value)
	assert.True(t, results[0].Value.Equal(decimal.NewFromFloat(8.67)))

	// Unmatched items are kept, not dropped
	assert.False(t, results[1].Matched())
	assert.Nil(t, results[1].CatalogItemID)
	assert.Nil(t, results[1].Value)

	// Matched but unpriced
	assert.True(t, results[2].Matched())
	assert.Nil(t, results[2].Value)
}

func TestMatchDuplicateNamesSingleQuery(t *testing.T) {
	db := setupTestDB(t, "matcher_duplicates")

	seed := models.CatalogItem{MarketHashName: "AK-47 | Redline (Field-Tested)", CurrentPrice: decimalPtr(8.67)}
	require.NoError(t, db.Create(&seed).Error)

	matcher := NewCatalogMatcher(db)
	items := []steam.Item{
		{AssetID: "1", MarketHashName: "AK-47 | Redline (Field-Tested)"},
		{AssetID: "2", MarketHashName: "AK-47 | Redline (Field-Tested)"},
	}

	results, err := matcher.Match(context.Background(), items)
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.True(t, results[0].Matched())
	assert.True(t, results[1].Matched())
}

func TestMatchEmptyInput(t *testing.T) {
	db := setupTestDB(t, "matcher_empty")

	matcher := NewCatalogMatcher(db)
	results, err := matcher.Match(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, results)
}
