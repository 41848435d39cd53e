package inventory

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"skinfolio/core/storage"

	"github.com/minio/minio-go/v7"
)

// Archiver stores raw fetched inventory payloads in object storage for
// audit and debugging. Archiving is best-effort: callers log failures and
// carry on, a missing archive never fails a sync.
type Archiver struct {
	client storage.Client
	bucket string
}

// NewArchiver creates an archiver writing into the given bucket.
func NewArchiver(client storage.Client, bucket string) *Archiver {
	return &Archiver{client: client, bucket: bucket}
}

// EnsureBucket creates the archive bucket if it does not exist yet.
func (a *Archiver) EnsureBucket(ctx context.Context) error {
	exists, err := a.client.BucketExists(ctx, a.bucket)
	if err != nil {
		return fmt.Errorf("failed to check archive bucket: %w", err)
	}
	if exists {
		return nil
	}
	if err := a.client.MakeBucket(ctx, a.bucket, minio.MakeBucketOptions{}); err != nil {
		return fmt.Errorf("failed to create archive bucket: %w", err)
	}
	return nil
}

// Archive uploads the raw pages of one fetch as a single JSON-lines object
// keyed by steam id and fetch time.
func (a *Archiver) Archive(ctx context.Context, steamID string, pages [][]byte) error {
	if len(pages) == 0 {
		return nil
	}

	var buf bytes.Buffer
	for _, page := range pages {
		buf.Write(page)
		buf.WriteByte('\n')
	}

	objectName := fmt.Sprintf("inventories/%s/%d.jsonl", steamID, time.Now().Unix())
	_, err := a.client.PutObject(ctx, a.bucket, objectName, &buf, int64(buf.Len()), minio.PutObjectOptions{
		ContentType: "application/jsonl",
	})
	if err != nil {
		return fmt.Errorf("failed to archive inventory payload: %w", err)
	}
	return nil
}
