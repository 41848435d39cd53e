package inventory

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"skinfolio/core/cache"
	"skinfolio/feature/inventory/models"
	"skinfolio/feature/inventory/steam"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// SyncErrorCode identifies why a sync failed. The values are stable and
// consumed by presentation layers.
type SyncErrorCode string

const (
	CodeConsentRequired  SyncErrorCode = "CONSENT_REQUIRED"
	CodeUserNotFound     SyncErrorCode = "USER_NOT_FOUND"
	CodePrivateInventory SyncErrorCode = "PRIVATE_INVENTORY"
	CodeRateLimited      SyncErrorCode = "RATE_LIMITED"
	CodeNetworkError     SyncErrorCode = "NETWORK_ERROR"
	CodeInvalidResponse  SyncErrorCode = "INVALID_RESPONSE"
	CodeExternalAPIError SyncErrorCode = "EXTERNAL_API_ERROR"
	CodeDatabaseError    SyncErrorCode = "DATABASE_ERROR"
)

// SyncOptions are the caller-supplied flags for one sync invocation.
type SyncOptions struct {
	// ConsentGiven must be true; syncing without consent fails fast.
	ConsentGiven bool `json:"consent_given"`
	// Force bypasses the staleness check and always fetches.
	Force bool `json:"force"`
}

// SyncResult is the uniform outcome returned to callers. On failure only
// Error and Message are populated; the previously persisted snapshot (if
// any) remains readable through the store.
type SyncResult struct {
	Success        bool            `json:"success"`
	ItemsImported  int             `json:"items_imported"`
	TotalValue     decimal.Decimal `json:"total_value"`
	Cached         bool            `json:"cached"`
	UnmatchedItems int             `json:"unmatched_items"`
	Error          SyncErrorCode   `json:"error,omitempty"`
	Message        string          `json:"message,omitempty"`
}

// Fetcher retrieves a full external inventory for a Steam id.
type Fetcher interface {
	FetchAll(ctx context.Context, steamID string) (*steam.Inventory, error)
}

// Service orchestrates one inventory sync: consent gate, user resolution,
// staleness policy, fetch, matching and the atomic snapshot swap.
type Service struct {
	users    UserResolver
	fetcher  Fetcher
	matcher  Matcher
	store    Store
	archiver *Archiver
	cooldown cache.Cache
	cfg      SyncConfig
	logger   *zap.Logger
	now      func() time.Time
}

// NewService creates the sync orchestrator. Archiver and cooldown cache are
// optional and attached via SetArchiver / SetCooldown.
func NewService(users UserResolver, fetcher Fetcher, matcher Matcher, store Store, cfg SyncConfig, logger *zap.Logger) *Service {
	return &Service{
		users:   users,
		fetcher: fetcher,
		matcher: matcher,
		store:   store,
		cfg:     cfg,
		logger:  logger,
		now:     time.Now,
	}
}

// SetArchiver enables best-effort raw payload archiving.
func (s *Service) SetArchiver(a *Archiver) {
	s.archiver = a
}

// SetCooldown enables the rate-limit cooldown cache.
func (s *Service) SetCooldown(c cache.Cache) {
	s.cooldown = c
}

// Sync runs the full synchronization flow for one user. It never returns an
// error; every outcome, expected or not, is folded into the SyncResult so
// the caller contract stays uniform.
func (s *Service) Sync(ctx context.Context, userID uint, opts SyncOptions) *SyncResult {
	if !opts.ConsentGiven {
		return failure(CodeConsentRequired, "user consent is required before syncing")
	}

	ident, err := s.users.Resolve(ctx, userID)
	if errors.Is(err, ErrUserNotFound) {
		return failure(CodeUserNotFound, "unknown user")
	}
	if err != nil {
		s.logger.Error("Failed to resolve user", zap.Uint("user_id", userID), zap.Error(err))
		return failure(CodeDatabaseError, "failed to resolve user")
	}

	prior, err := s.store.Get(ctx, userID)
	if err != nil {
		s.logger.Error("Failed to load prior snapshot", zap.Uint("user_id", userID), zap.Error(err))
		return failure(CodeDatabaseError, "failed to load snapshot")
	}

	// Staleness policy: a fresh enough snapshot answers without touching
	// the network, unless the caller forces a refresh.
	if prior != nil && !opts.Force && prior.LastSyncedAt != nil &&
		s.now().Sub(*prior.LastSyncedAt) < s.cfg.Staleness() {
		return &SyncResult{
			Success:        true,
			Cached:         true,
			ItemsImported:  prior.TotalItems,
			UnmatchedItems: prior.UnmatchedItems,
			TotalValue:     prior.TotalValue,
		}
	}

	// Rate-limit cooldown: after a 429 the user is parked for a while so
	// repeat calls do not dig the hole deeper. Cache errors are ignored,
	// the cooldown is advisory.
	if s.cooldown != nil {
		if onCooldown, cerr := s.cooldown.Exists(ctx, cooldownKey(userID)); cerr == nil && onCooldown {
			return failure(CodeRateLimited, "rate limit cooldown active, try again later")
		}
	}

	inv, err := s.fetcher.FetchAll(ctx, ident.SteamID)
	if err != nil {
		return s.recordFetchFailure(ctx, userID, err)
	}

	matched, err := s.matcher.Match(ctx, inv.Items)
	if err != nil {
		s.logger.Error("Catalog match failed", zap.Uint("user_id", userID), zap.Error(err))
		s.recordStatus(ctx, userID, models.SyncStatusError, "catalog lookup failed", nil)
		return failure(CodeDatabaseError, "catalog lookup failed")
	}

	totalValue := decimal.Zero
	unmatched := 0
	records := make([]models.InventoryItemRecord, 0, len(matched))
	for _, m := range matched {
		if !m.Matched() {
			unmatched++
		} else if m.Value != nil {
			totalValue = totalValue.Add(*m.Value)
		}
		records = append(records, toRecord(userID, m))
	}

	now := s.now()
	retention := ident.LastActivityAt.Add(s.cfg.Retention())
	consentAt := &now
	if prior != nil && prior.ConsentAt != nil {
		consentAt = prior.ConsentAt
	}

	snapshot := &models.UserInventorySnapshot{
		UserID:            userID,
		TotalItems:        len(inv.Items),
		UnmatchedItems:    unmatched,
		TotalValue:        totalValue,
		SyncStatus:        models.SyncStatusSuccess,
		Public:            true,
		ConsentGiven:      true,
		ConsentAt:         consentAt,
		LastSyncedAt:      &now,
		ScheduledDeleteAt: &retention,
	}

	if err := s.store.Replace(ctx, snapshot, records); err != nil {
		s.logger.Error("Failed to persist snapshot", zap.Uint("user_id", userID), zap.Error(err))
		s.recordStatus(ctx, userID, models.SyncStatusError, "failed to persist snapshot", nil)
		return failure(CodeDatabaseError, "failed to persist snapshot")
	}

	if s.archiver != nil {
		if aerr := s.archiver.Archive(ctx, ident.SteamID, inv.RawPages); aerr != nil {
			s.logger.Warn("Failed to archive raw inventory payload",
				zap.String("steam_id", ident.SteamID), zap.Error(aerr))
		}
	}

	s.logger.Info("Inventory synced",
		zap.Uint("user_id", userID),
		zap.Int("items", len(inv.Items)),
		zap.Int("unmatched", unmatched),
		zap.String("total_value", totalValue.String()))

	return &SyncResult{
		Success:        true,
		ItemsImported:  len(inv.Items),
		UnmatchedItems: unmatched,
		TotalValue:     totalValue,
	}
}

// recordFetchFailure maps a fetch failure 1:1 into the snapshot's status
// columns and the caller result. Prior item rows are never touched: a
// stale-but-present snapshot stays visible rather than disappearing.
func (s *Service) recordFetchFailure(ctx context.Context, userID uint, err error) *SyncResult {
	serr, ok := steam.AsError(err)
	if !ok {
		// Unexpected error types are folded into the uniform contract.
		s.logger.Error("Unexpected fetch error", zap.Uint("user_id", userID), zap.Error(err))
		serr = &steam.Error{Kind: steam.KindNetworkError, Message: "inventory fetch failed"}
	}

	var status string
	var public *bool
	switch serr.Kind {
	case steam.KindPrivateInventory:
		// A previously public inventory that turned private keeps its
		// last-known-good items, annotated as private.
		status = models.SyncStatusPrivate
		flipped := false
		public = &flipped
	case steam.KindRateLimited:
		status = models.SyncStatusRateLimited
		s.startCooldown(ctx, userID)
	default:
		status = models.SyncStatusError
	}

	s.recordStatus(ctx, userID, status, serr.Message, public)
	return failure(SyncErrorCode(serr.Kind), serr.Message)
}

func (s *Service) recordStatus(ctx context.Context, userID uint, status, message string, public *bool) {
	if err := s.store.UpdateStatus(ctx, userID, status, message, public); err != nil {
		s.logger.Error("Failed to record sync status",
			zap.Uint("user_id", userID), zap.String("status", status), zap.Error(err))
	}
}

func (s *Service) startCooldown(ctx context.Context, userID uint) {
	if s.cooldown == nil {
		return
	}
	if err := s.cooldown.Set(ctx, cooldownKey(userID), []byte("1"), s.cfg.Cooldown()); err != nil {
		s.logger.Warn("Failed to set rate limit cooldown", zap.Uint("user_id", userID), zap.Error(err))
	}
}

func cooldownKey(userID uint) string {
	return fmt.Sprintf("sync:cooldown:%d", userID)
}

func failure(code SyncErrorCode, message string) *SyncResult {
	return &SyncResult{Success: false, Error: code, Message: message}
}

// toRecord converts one matched item into its persisted row.
func toRecord(userID uint, m MatchedItem) models.InventoryItemRecord {
	stickers := ""
	if len(m.Item.Stickers) > 0 {
		if b, err := json.Marshal(m.Item.Stickers); err == nil {
			stickers = string(b)
		}
	}

	return models.InventoryItemRecord{
		UserID:           userID,
		CatalogItemID:    m.CatalogItemID,
		AssetID:          m.Item.AssetID,
		MarketHashName:   m.Item.MarketHashName,
		CustomName:       m.Item.CustomName,
		Wear:             m.Item.Wear,
		Quality:          m.Item.Quality,
		Stickers:         stickers,
		TradeLockedUntil: m.Item.TradeLockedUntil,
		InspectLink:      m.Item.InspectLink,
		CurrentValue:     m.Value,
	}
}
