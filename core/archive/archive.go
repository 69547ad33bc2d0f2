package archive

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"campus-sync/core/storage"

	"github.com/minio/minio-go/v7"
)

// Archive persists raw feed payloads and failure records to object storage so
// that a bad run can be triaged after the fact. Every object lives under
// runs/<runID>/.
type Archive struct {
	client storage.Client
	bucket string
}

// New creates an Archive writing to the given bucket.
func New(client storage.Client, bucket string) *Archive {
	return &Archive{client: client, bucket: bucket}
}

// EnsureBucket creates the archive bucket if it does not exist yet.
func (a *Archive) EnsureBucket(ctx context.Context) error {
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

// SaveSnapshot stores the raw JSON payload fetched for a calendar during the
// given run.
func (a *Archive) SaveSnapshot(ctx context.Context, runID, calendar string, payload []byte) error {
	name := fmt.Sprintf("runs/%s/%s.json", runID, calendar)
	_, err := a.client.PutObject(ctx, a.bucket, name, bytes.NewReader(payload), int64(len(payload)), minio.PutObjectOptions{
		ContentType: "application/json",
	})
	if err != nil {
		return fmt.Errorf("failed to archive %s snapshot: %w", calendar, err)
	}
	return nil
}

// SaveError stores a failure record for a calendar during the given run.
func (a *Archive) SaveError(ctx context.Context, runID, calendar string, runErr error) error {
	record := fmt.Sprintf("time: %s\ncalendar: %s\nerror: %v\n",
		time.Now().UTC().Format(time.RFC3339), calendar, runErr)
	name := fmt.Sprintf("runs/%s/%s.error.txt", runID, calendar)
	_, err := a.client.PutObject(ctx, a.bucket, name, bytes.NewReader([]byte(record)), int64(len(record)), minio.PutObjectOptions{
		ContentType: "text/plain",
	})
	if err != nil {
		return fmt.Errorf("failed to archive %s error record: %w", calendar, err)
	}
	return nil
}
