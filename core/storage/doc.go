// Package storage provides the object storage client used to archive raw
// inventory payloads.
//
// It wraps the MinIO SDK behind a small Client interface so that the archive
// step can be exercised in tests with the mocks subpackage. Archiving is
// best-effort: a failed upload is logged but never fails a sync.
package storage
