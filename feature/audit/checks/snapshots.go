package checks

import (
	"context"
	"fmt"
	"sort"
	"time"

	"skinfolio/feature/inventory/models"

	"gorm.io/gorm"
)

// CheckSnapshots verifies that the per-user snapshot rows agree with the
// item rows beneath them. Each returned string describes one finding.
func CheckSnapshots(ctx context.Context, db *gorm.DB) ([]string, error) {
	var snapshots []models.UserInventorySnapshot
	if err := db.WithContext(ctx).Find(&snapshots).Error; err != nil {
		return nil, fmt.Errorf("failed to load snapshots: %w", err)
	}

	type rowCount struct {
		UserID uint
		N      int
	}
	var counts []rowCount
	err := db.WithContext(ctx).
		Model(&models.InventoryItemRecord{}).
		Select("user_id, count(*) as n").
		Group("user_id").
		Scan(&counts).Error
	if err != nil {
		return nil, fmt.Errorf("failed to count item rows: %w", err)
	}

	countByUser := make(map[uint]int, len(counts))
	for _, c := range counts {
		countByUser[c.UserID] = c.N
	}

	now := time.Now()
	findings := []string{}
	seen := make(map[uint]struct{}, len(snapshots))
	for _, snap := range snapshots {
		seen[snap.UserID] = struct{}{}

		if snap.SyncStatus == models.SyncStatusSuccess {
			if snap.LastSyncedAt == nil {
				findings = append(findings, fmt.Sprintf("user %d: status success but no sync timestamp", snap.UserID))
			}
			if got := countByUser[snap.UserID]; got != snap.TotalItems {
				findings = append(findings, fmt.Sprintf("user %d: snapshot says %d items, %d rows present", snap.UserID, snap.TotalItems, got))
			}
		}
		if !snap.ConsentGiven && countByUser[snap.UserID] > 0 {
			findings = append(findings, fmt.Sprintf("user %d: item rows present without consent", snap.UserID))
		}
		if snap.ScheduledDeleteAt != nil && snap.ScheduledDeleteAt.Before(now) {
			findings = append(findings, fmt.Sprintf("user %d: retention deadline passed at %s", snap.UserID, snap.ScheduledDeleteAt.Format(time.RFC3339)))
		}
	}

	// Item rows without a parent snapshot should not exist; the swap writes
	// both in one transaction.
	for _, c := range counts {
		if _, ok := seen[c.UserID]; !ok {
			findings = append(findings, fmt.Sprintf("user %d: %d orphaned item rows without a snapshot", c.UserID, c.N))
		}
	}

	sort.Strings(findings)
	return findings, nil
}
