package checks

import (
	"context"
	"testing"

	"skinfolio/core/storage/mocks"
	"skinfolio/feature/inventory/models"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func objectStream(keys ...string) <-chan minio.ObjectInfo {
	ch := make(chan minio.ObjectInfo, len(keys))
	for _, key := range keys {
		ch <- minio.ObjectInfo{Key: key}
	}
	close(ch)
	return ch
}

func TestCheckArchiveReportsMissingUsers(t *testing.T) {
	db := setupTestDB(t, "audit_archive_missing")

	require.NoError(t, db.Create(&[]models.User{
		{ID: 1, SteamID: "76561198000000001"},
		{ID: 2, SteamID: "76561198000000002"},
	}).Error)
	require.NoError(t, db.Create(&[]models.UserInventorySnapshot{
		{UserID: 1, SyncStatus: models.SyncStatusSuccess, ConsentGiven: true},
		{UserID: 2, SyncStatus: models.SyncStatusSuccess, ConsentGiven: true},
	}).Error)

	client := &mocks.Client{}
	client.On("BucketExists", mock.Anything, "inventory-archive").Return(true, nil)
	client.On("ListObjects", mock.Anything, "inventory-archive", mock.Anything).
		Return(objectStream("inventories/76561198000000001/1700000000.jsonl"))

	missing, err := CheckArchive(context.Background(), db, client, "inventory-archive")
	require.NoError(t, err)
	assert.Equal(t, []string{"76561198000000002"}, missing)
	client.AssertExpectations(t)
}

func TestCheckArchiveIgnoresFailedSyncs(t *testing.T) {
	db := setupTestDB(t, "audit_archive_failed")

	require.NoError(t, db.Create(&models.User{ID: 1, SteamID: "76561198000000001"}).Error)
	require.NoError(t, db.Create(&models.UserInventorySnapshot{
		UserID: 1, SyncStatus: models.SyncStatusPrivate, ConsentGiven: true,
	}).Error)

	client := &mocks.Client{}
	client.On("BucketExists", mock.Anything, "inventory-archive").Return(true, nil)
	client.On("ListObjects", mock.Anything, "inventory-archive", mock.Anything).
		Return(objectStream())

	missing, err := CheckArchive(context.Background(), db, client, "inventory-archive")
	require.NoError(t, err)
	assert.Empty(t, missing)
}

func TestCheckArchiveMissingBucket(t *testing.T) {
	db := setupTestDB(t, "audit_archive_nobucket")

	client := &mocks.Client{}
	client.On("BucketExists", mock.Anything, "inventory-archive").Return(false, nil)

	_, err := CheckArchive(context.Background(), db, client, "inventory-archive")
	assert.Error(t, err)
}
