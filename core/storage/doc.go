// Package storage provides an abstraction layer for object storage services.
//
// It wraps the MinIO Go client so the manifest can be mirrored to, and read
// back from, an S3-compatible bucket when the upstream URL is unreachable.
//
// The Client interface keeps only the operations the mirror needs, which makes
// it easy to mock (see core/storage/mocks).
//
// # Usage
//
//	client, err := storage.NewClient(config)
//	exists, err := client.BucketExists(ctx, "dlc-checker")
package storage
