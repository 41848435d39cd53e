package steam

import "time"

// rawAsset is one owned instance in the Steam inventory payload. Steam
// encodes all identifiers as strings.
type rawAsset struct {
	AssetID    string `json:"assetid"`
	ClassID    string `json:"classid"`
	InstanceID string `json:"instanceid"`
	Amount     string `json:"amount"`
}

// rawLine is a free-form annotation line inside a description.
type rawLine struct {
	Value string `json:"value"`
}

// rawAction is an action link attached to a description (inspect, wiki, ...).
type rawAction struct {
	Link string `json:"link"`
	Name string `json:"name"`
}

// rawDescription is the shared metadata for a class of items. Many assets
// reference the same description through (classid, instanceid).
type rawDescription struct {
	ClassID         string      `json:"classid"`
	InstanceID      string      `json:"instanceid"`
	Name            string      `json:"name"`
	MarketName      string      `json:"market_name"`
	MarketHashName  string      `json:"market_hash_name"`
	Type            string      `json:"type"`
	Tradable        int         `json:"tradable"`
	Marketable      int         `json:"marketable"`
	CacheExpiration string      `json:"cache_expiration"`
	FraudWarnings   []string    `json:"fraudwarnings"`
	Descriptions    []rawLine   `json:"descriptions"`
	OwnerDescs      []rawLine   `json:"owner_descriptions"`
	Actions         []rawAction `json:"actions"`
}

// inventoryPage is one page of the community inventory endpoint.
type inventoryPage struct {
	Assets              []rawAsset       `json:"assets"`
	Descriptions        []rawDescription `json:"descriptions"`
	MoreItems           int              `json:"more_items"`
	LastAssetID         string           `json:"last_assetid"`
	TotalInventoryCount int              `json:"total_inventory_count"`
	Success             int              `json:"success"`
	Error               string           `json:"error"`
}

// Item is the normalized join of one asset with its description. Every asset
// in the raw payload produces exactly one Item, even when its description is
// missing.
type Item struct {
	AssetID            string
	ClassID            string
	InstanceID         string
	Amount             int
	Name               string
	MarketHashName     string
	CustomName         string
	Wear               string
	Quality            string
	Stickers           []string
	Tradable           bool
	Marketable         bool
	TradeLockedUntil   *time.Time
	InspectLink        string
	DescriptionMissing bool
}

// Inventory is a fully assembled, multi-page fetch result.
type Inventory struct {
	Items []Item
	// TotalCount is Steam's total-count hint from the last page. It may
	// disagree with len(Items) when Steam misreports; callers should trust
	// the normalized item count for aggregates.
	TotalCount int
	// RawPages holds the raw page payloads in fetch order, for archiving.
	RawPages [][]byte
}
