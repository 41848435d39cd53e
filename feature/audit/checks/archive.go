package checks

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"skinfolio/core/storage"
	"skinfolio/feature/inventory/models"

	"github.com/minio/minio-go/v7"
	"gorm.io/gorm"
)

// archivePrefix is where the sync archiver writes raw payloads, one folder
// per steam id.
const archivePrefix = "inventories/"

// CheckArchive returns the steam ids of successfully synced users that have
// no raw payload object in the archive bucket.
func CheckArchive(ctx context.Context, db *gorm.DB, client storage.Client, bucket string) ([]string, error) {
	exists, err := client.BucketExists(ctx, bucket)
	if err != nil {
		return nil, fmt.Errorf("failed to check archive bucket: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("archive bucket %s does not exist", bucket)
	}

	type syncedUser struct {
		UserID  uint
		SteamID string
	}
	var synced []syncedUser
	err = db.WithContext(ctx).
		Model(&models.UserInventorySnapshot{}).
		Select("user_inventory_snapshots.user_id, users.steam_id").
		Joins("JOIN users ON users.id = user_inventory_snapshots.user_id").
		Where("user_inventory_snapshots.sync_status = ?", models.SyncStatusSuccess).
		Scan(&synced).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load synced users: %w", err)
	}

	archived := make(map[string]struct{})
	opts := minio.ListObjectsOptions{
		Prefix:    archivePrefix,
		Recursive: true,
	}
	for object := range client.ListObjects(ctx, bucket, opts) {
		if object.Err != nil {
			return nil, fmt.Errorf("failed to list archive objects: %w", object.Err)
		}
		// Object keys look like inventories/<steamid>/<unix>.jsonl
		rest := strings.TrimPrefix(object.Key, archivePrefix)
		if steamID, _, ok := strings.Cut(rest, "/"); ok && steamID != "" {
			archived[steamID] = struct{}{}
		}
	}

	var missing []string
	for _, user := range synced {
		if _, ok := archived[user.SteamID]; !ok {
			missing = append(missing, user.SteamID)
		}
	}

	sort.Strings(missing)
	return missing, nil
}
