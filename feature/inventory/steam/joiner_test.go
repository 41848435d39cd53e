package steam

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizePageJoinsAssetsWithDescriptions(t *testing.T) {
	page := &inventoryPage{
		Assets: []rawAsset{
			{AssetID: "101", ClassID: "1", InstanceID: "0", Amount: "1"},
			{AssetID: "102", ClassID: "1", InstanceID: "0", Amount: "1"},
		},
		Descriptions: []rawDescription{
			{
				ClassID:        "1",
				InstanceID:     "0",
				Name:           "AK-47 | Redline",
				MarketName:     "AK-47 | Redline (Field-Tested)",
				MarketHashName: "AK-47 | Redline (Field-Tested)",
				Tradable:       1,
				Marketable:     1,
			},
		},
	}

	items := normalizePage(page, "76561198000000001")
	require.Len(t, items, 2)

	// Two assets sharing one description both normalize fully.
	for _, item := range items {
		assert.Equal(t, "AK-47 | Redline (Field-Tested)", item.MarketHashName)
		assert.Equal(t, "Field-Tested", item.Wear)
		assert.Equal(t, "Normal", item.Quality)
		assert.True(t, item.Tradable)
		assert.False(t, item.DescriptionMissing)
	}
	assert.Equal(t, "101", items[0].AssetID)
	assert.Equal(t, "102", items[1].AssetID)
}

func TestNormalizePageMissingDescription(t *testing.T) {
	page := &inventoryPage{
		Assets: []rawAsset{
			{AssetID: "101", ClassID: "9", InstanceID: "9", Amount: "1"},
		},
	}

	items := normalizePage(page, "76561198000000001")
	require.Len(t, items, 1)

	// The asset still surfaces in the final count.
	assert.Equal(t, "Unknown Item", items[0].Name)
	assert.Equal(t, "Unknown Item", items[0].MarketHashName)
	assert.True(t, items[0].DescriptionMissing)
}

func TestJoinItemCustomNameFromFraudWarning(t *testing.T) {
	desc := &rawDescription{
		ClassID:        "1",
		InstanceID:     "0",
		Name:           "AK-47 | Redline",
		MarketName:     "AK-47 | Redline (Field-Tested)",
		MarketHashName: "AK-47 | Redline (Field-Tested)",
		FraudWarnings:  []string{"Name Tag: ''my beloved rifle''"},
		Tradable:       1,
	}

	item := joinItem(rawAsset{AssetID: "101", ClassID: "1", InstanceID: "0", Amount: "1"}, desc, "7656")
	assert.Equal(t, "my beloved rifle", item.CustomName)
}

func TestJoinItemStickers(t *testing.T) {
	desc := &rawDescription{
		ClassID:        "1",
		InstanceID:     "0",
		Name:           "M4A4 | Asiimov",
		MarketName:     "M4A4 | Asiimov (Well-Worn)",
		MarketHashName: "M4A4 | Asiimov (Well-Worn)",
		Descriptions: []rawLine{
			{Value: " "},
			{Value: `<br><div id="sticker_info">Sticker: Crown (Foil), iBUYPOWER (Holo)</div>`},
		},
		Tradable: 1,
	}

	item := joinItem(rawAsset{AssetID: "101", ClassID: "1", InstanceID: "0", Amount: "1"}, desc, "7656")
	assert.Equal(t, []string{"Crown (Foil)", "iBUYPOWER (Holo)"}, item.Stickers)
}

func TestJoinItemTradeLock(t *testing.T) {
	future := time.Now().Add(48 * time.Hour).UTC().Truncate(time.Second)
	desc := &rawDescription{
		ClassID:         "1",
		InstanceID:      "0",
		Name:            "Desert Eagle | Blaze",
		MarketName:      "Desert Eagle | Blaze (Factory New)",
		MarketHashName:  "Desert Eagle | Blaze (Factory New)",
		Tradable:        0,
		CacheExpiration: future.Format(time.RFC3339),
	}

	item := joinItem(rawAsset{AssetID: "101", ClassID: "1", InstanceID: "0", Amount: "1"}, desc, "7656")
	require.NotNil(t, item.TradeLockedUntil)
	assert.True(t, item.TradeLockedUntil.Equal(future))
	assert.False(t, item.Tradable)
}

func TestJoinItemTradeLockIgnoredWhenTradable(t *testing.T) {
	future := time.Now().Add(48 * time.Hour).UTC()
	desc := &rawDescription{
		ClassID:         "1",
		InstanceID:      "0",
		MarketHashName:  "AK-47 | Redline (Field-Tested)",
		Tradable:        1,
		CacheExpiration: future.Format(time.RFC3339),
	}

	item := joinItem(rawAsset{AssetID: "101", ClassID: "1", InstanceID: "0", Amount: "1"}, desc, "7656")
	assert.Nil(t, item.TradeLockedUntil)
}

func TestJoinItemInspectLink(t *testing.T) {
	desc := &rawDescription{
		ClassID:        "1",
		InstanceID:     "0",
		MarketHashName: "AK-47 | Redline (Field-Tested)",
		Tradable:       1,
		Actions: []rawAction{
			{
				Name: "Inspect in Game...",
				Link: "steam://rungame/730/76561202255233023/+csgo_econ_action_preview%20S%owner_steamid%A%assetid%D123",
			},
		},
	}

	item := joinItem(rawAsset{AssetID: "101", ClassID: "1", InstanceID: "0", Amount: "1"}, desc, "76561198000000001")
	assert.Contains(t, item.InspectLink, "S76561198000000001")
	assert.Contains(t, item.InspectLink, "A101")
}

func TestParseQuality(t *testing.T) {
	assert.Equal(t, "StatTrak", parseQuality("StatTrak™ AK-47 | Redline (Field-Tested)"))
	assert.Equal(t, "Souvenir", parseQuality("Souvenir AWP | Dragon Lore (Factory New)"))
	assert.Equal(t, "Normal", parseQuality("AK-47 | Redline (Field-Tested)"))
}

func TestParseWearUnknown(t *testing.T) {
	assert.Equal(t, "", parseWear("Sticker | Crown (Foil)"))
}
