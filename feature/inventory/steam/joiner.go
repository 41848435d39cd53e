package steam

import (
	"strings"
	"time"

	"skinfolio/core/utils"
)

// placeholderName is used when an asset references a description that is
// absent from the payload. The asset still surfaces in the final count.
const placeholderName = "Unknown Item"

// wearNames are the five wear tiers Steam appends to market hash names.
var wearNames = []string{
	"Factory New",
	"Minimal Wear",
	"Field-Tested",
	"Well-Worn",
	"Battle-Scarred",
}

// normalizePage joins each asset of a page with its description. Every asset
// yields exactly one Item; missing descriptions degrade to a placeholder
// name instead of dropping the asset.
func normalizePage(page *inventoryPage, ownerSteamID string) []Item {
	lookup := make(map[string]*rawDescription, len(page.Descriptions))
	for i := range page.Descriptions {
		d := &page.Descriptions[i]
		lookup[d.ClassID+"_"+d.InstanceID] = d
	}

	items := make([]Item, 0, len(page.Assets))
	for _, asset := range page.Assets {
		desc := lookup[asset.ClassID+"_"+asset.InstanceID]
		items = append(items, joinItem(asset, desc, ownerSteamID))
	}
	return items
}

// joinItem builds one normalized item from an asset and its (possibly nil)
// description.
func joinItem(asset rawAsset, desc *rawDescription, ownerSteamID string) Item {
	amount := utils.ToInt(asset.Amount)
	if amount <= 0 {
		amount = 1
	}

	item := Item{
		AssetID:    asset.AssetID,
		ClassID:    asset.ClassID,
		InstanceID: asset.InstanceID,
		Amount:     amount,
	}

	if desc == nil {
		item.Name = placeholderName
		item.MarketHashName = placeholderName
		item.DescriptionMissing = true
		return item
	}

	item.Name = desc.Name
	item.MarketHashName = desc.MarketHashName
	item.Tradable = utils.ToBool(desc.Tradable)
	item.Marketable = utils.ToBool(desc.Marketable)
	item.Wear = parseWear(desc.MarketHashName)
	item.Quality = parseQuality(desc.MarketHashName)
	item.CustomName = extractCustomName(desc)
	item.Stickers = extractStickers(desc)
	item.TradeLockedUntil = parseTradeLock(desc)
	item.InspectLink = buildInspectLink(desc, ownerSteamID, asset.AssetID)

	return item
}

// parseWear extracts the wear tier from the "(Field-Tested)"-style suffix.
func parseWear(marketHashName string) string {
	for _, wear := range wearNames {
		if strings.HasSuffix(marketHashName, "("+wear+")") {
			return wear
		}
	}
	return ""
}

// parseQuality classifies the item's quality tier from its name markers.
func parseQuality(marketHashName string) string {
	switch {
	case strings.Contains(marketHashName, "StatTrak™"):
		return "StatTrak"
	case strings.HasPrefix(marketHashName, "Souvenir "):
		return "Souvenir"
	default:
		return "Normal"
	}
}

// extractCustomName pulls a name tag out of the fraud-warning annotation
// Steam attaches to renamed items: Name Tag: ''my rifle''. When no warning
// is present, a display name that differs from the canonical (wear-stripped)
// market name is used as a fallback.
func extractCustomName(desc *rawDescription) string {
	const prefix = "Name Tag: ''"
	for _, warning := range desc.FraudWarnings {
		if !strings.HasPrefix(warning, prefix) {
			continue
		}
		rest := strings.TrimPrefix(warning, prefix)
		if idx := strings.Index(rest, "''"); idx >= 0 {
			return rest[:idx]
		}
	}

	canonical := stripWearSuffix(desc.MarketName)
	if desc.Name != "" && canonical != "" && desc.Name != canonical {
		return desc.Name
	}
	return ""
}

func stripWearSuffix(name string) string {
	for _, wear := range wearNames {
		suffix := " (" + wear + ")"
		if strings.HasSuffix(name, suffix) {
			return strings.TrimSuffix(name, suffix)
		}
	}
	return name
}

// extractStickers collects sticker names from the description's annotation
// lines. Steam renders stickers as an HTML fragment whose text reads
// "Sticker: A, B, C".
func extractStickers(desc *rawDescription) []string {
	const marker = "Sticker: "
	for _, line := range desc.Descriptions {
		idx := strings.Index(line.Value, marker)
		if idx < 0 {
			continue
		}
		text := line.Value[idx+len(marker):]
		if end := strings.IndexByte(text, '<'); end >= 0 {
			text = text[:end]
		}
		var stickers []string
		for _, name := range strings.Split(text, ", ") {
			if name = strings.TrimSpace(name); name != "" {
				stickers = append(stickers, name)
			}
		}
		return stickers
	}
	return nil
}

// parseTradeLock returns the trade-hold expiry. It is only meaningful while
// the item is non-tradable and the unlock date lies in the future.
func parseTradeLock(desc *rawDescription) *time.Time {
	if desc.Tradable != 0 || desc.CacheExpiration == "" {
		return nil
	}
	unlock, err := time.Parse(time.RFC3339, desc.CacheExpiration)
	if err != nil || !unlock.After(time.Now()) {
		return nil
	}
	return &unlock
}

// buildInspectLink resolves the in-game inspect action link, substituting
// the owner and asset placeholders Steam leaves in the template.
func buildInspectLink(desc *rawDescription, ownerSteamID, assetID string) string {
	for _, action := range desc.Actions {
		if !strings.Contains(action.Link, "+csgo_econ_action_preview") {
			continue
		}
		link := strings.ReplaceAll(action.Link, "%owner_steamid%", ownerSteamID)
		link = strings.ReplaceAll(link, "%assetid%", assetID)
		return link
	}
	return ""
}
