package manifest

import (
	"bytes"
	"context"
	"fmt"

	"dlc-checker/core/storage"

	"github.com/minio/minio-go/v7"
)

// Mirror keeps a copy of the manifest in an object storage bucket.
type Mirror struct {
	client storage.Client
	bucket string
	object string
}

// NewMirror creates a mirror for object in bucket.
func NewMirror(client storage.Client, bucket, object string) *Mirror {
	return &Mirror{client: client, bucket: bucket, object: object}
}

// Location returns the bucket/object pair for logging.
func (m *Mirror) Location() string {
	return m.bucket + "/" + m.object
}

// Fetch reads the mirrored manifest. Failures wrap ErrNoUpdate.
func (m *Mirror) Fetch(ctx context.Context) ([]byte, error) {
	obj, err := m.client.GetObject(ctx, m.bucket, m.object, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("%w: mirror %s: %v", ErrNoUpdate, m.Location(), err)
	}
	defer obj.Close()

	data, err := readManifest(obj)
	if err != nil {
		return nil, fmt.Errorf("%w: mirror %s: %v", ErrNoUpdate, m.Location(), err)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: mirror %s is empty", ErrNoUpdate, m.Location())
	}

	return data, nil
}

// Publish uploads data as the mirrored manifest.
func (m *Mirror) Publish(ctx context.Context, data []byte) error {
	exists, err := m.client.BucketExists(ctx, m.bucket)
	if err != nil {
		return fmt.Errorf("failed to check bucket existence: %w", err)
	}
	if !exists {
		return fmt.Errorf("bucket %s does not exist", m.bucket)
	}

	_, err = m.client.PutObject(ctx, m.bucket, m.object, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
		ContentType: "text/plain; charset=utf-8",
	})
	if err != nil {
		return fmt.Errorf("failed to upload manifest to %s: %w", m.Location(), err)
	}

	return nil
}
