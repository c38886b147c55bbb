package terminals

import (
	"context"
	"encoding/json"
	"fmt"

	"attendance-manager/core/attendance"
	"attendance-manager/core/storage"

	"github.com/minio/minio-go/v7"
)

// StorageSource reads punch dumps a terminal collector drops into the
// object storage bucket, one JSON array per terminal per date under
// punches/<terminal>/<date>.json.
type StorageSource struct {
	id     string
	client storage.Client
	bucket string
}

// NewStorageSource creates a source reading one terminal's dumps.
func NewStorageSource(id string, client storage.Client, bucket string) *StorageSource {
	return &StorageSource{id: id, client: client, bucket: bucket}
}

// ID returns the terminal id.
func (s *StorageSource) ID() string {
	return s.id
}

// ObjectName returns the dump object key for a date.
func (s *StorageSource) ObjectName(date string) string {
	return fmt.Sprintf("punches/%s/%s.json", s.id, date)
}

// Fetch reads and parses the terminal's dump for a date. A missing dump
// means the terminal recorded no punches that day and yields an empty batch,
// not a failure; an unreadable or malformed dump is a failure.
func (s *StorageSource) Fetch(ctx context.Context, date string) ([]attendance.PunchEvent, error) {
	obj, err := s.client.GetObject(ctx, s.bucket, s.ObjectName(date), minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to open punch dump for %s: %w", s.id, err)
	}
	defer obj.Close()

	var events []attendance.PunchEvent
	if err := json.NewDecoder(obj).Decode(&events); err != nil {
		if minio.ToErrorResponse(err).Code == "NoSuchKey" {
			return nil, nil
		}
		return nil, fmt.Errorf("malformed punch dump for %s: %w", s.id, err)
	}
	return events, nil
}
