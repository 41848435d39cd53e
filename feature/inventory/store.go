package inventory

import (
	"context"
	"errors"
	"fmt"

	"skinfolio/feature/inventory/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Store is the persistence boundary for snapshots and item rows.
type Store interface {
	// Get returns the user's snapshot, or nil when none exists yet.
	Get(ctx context.Context, userID uint) (*models.UserInventorySnapshot, error)
	// Items returns the item rows of the latest snapshot.
	Items(ctx context.Context, userID uint) ([]models.InventoryItemRecord, error)
	// Replace atomically swaps the user's item set and aggregate row.
	Replace(ctx context.Context, snapshot *models.UserInventorySnapshot, items []models.InventoryItemRecord) error
	// UpdateStatus records a sync outcome on the aggregate row without
	// touching item rows. A nil public pointer leaves the flag unchanged.
	UpdateStatus(ctx context.Context, userID uint, status, message string, public *bool) error
}

// GormSnapshotStore implements Store on a GORM database.
type GormSnapshotStore struct {
	db *gorm.DB
}

// NewSnapshotStore creates a snapshot store.
func NewSnapshotStore(db *gorm.DB) *GormSnapshotStore {
	return &GormSnapshotStore{db: db}
}

// Get returns the snapshot row, or nil when the user has never synced.
func (s *GormSnapshotStore) Get(ctx context.Context, userID uint) (*models.UserInventorySnapshot, error) {
	var snap models.UserInventorySnapshot
	err := s.db.WithContext(ctx).Where("user_id = ?", userID).Take(&snap).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load snapshot: %w", err)
	}
	return &snap, nil
}

// Items returns the stored item rows for the user.
func (s *GormSnapshotStore) Items(ctx context.Context, userID uint) ([]models.InventoryItemRecord, error) {
	var items []models.InventoryItemRecord
	if err := s.db.WithContext(ctx).Where("user_id = ?", userID).Find(&items).Error; err != nil {
		return nil, fmt.Errorf("failed to load item records: %w", err)
	}
	return items, nil
}

// Replace swaps the prior item set and aggregate row in one transaction.
// All matching and valuation happen before this call, so the transaction is
// pure data movement. Any failure rolls the whole swap back, leaving the
// previous snapshot fully intact.
func (s *GormSnapshotStore) Replace(ctx context.Context, snapshot *models.UserInventorySnapshot, items []models.InventoryItemRecord) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", snapshot.UserID).
			Delete(&models.InventoryItemRecord{}).Error; err != nil {
			return fmt.Errorf("failed to delete prior item records: %w", err)
		}

		if len(items) > 0 {
			if err := tx.CreateInBatches(&items, 500).Error; err != nil {
				return fmt.Errorf("failed to insert item records: %w", err)
			}
		}

		if err := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}},
			UpdateAll: true,
		}).Create(snapshot).Error; err != nil {
			return fmt.Errorf("failed to upsert snapshot: %w", err)
		}
		return nil
	})
}

// UpdateStatus records a failed or degraded sync outcome on the aggregate
// row. Item rows are deliberately untouched so the last good snapshot stays
// visible to the presentation layer.
func (s *GormSnapshotStore) UpdateStatus(ctx context.Context, userID uint, status, message string, public *bool) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var snap models.UserInventorySnapshot
		err := tx.Where("user_id = ?", userID).Take(&snap).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// First contact with this user still leaves a status trail.
			snap = models.UserInventorySnapshot{UserID: userID, Public: true}
		} else if err != nil {
			return fmt.Errorf("failed to load snapshot: %w", err)
		}

		snap.SyncStatus = status
		snap.ErrorMessage = message
		if public != nil {
			snap.Public = *public
		}

		if err := tx.Save(&snap).Error; err != nil {
			return fmt.Errorf("failed to update snapshot status: %w", err)
		}
		return nil
	})
}
