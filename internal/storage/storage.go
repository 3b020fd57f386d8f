package storage

import "context"

// ObjectStorage keeps uploaded commodity images and hands back the URL they are served from.
type ObjectStorage interface {
	Store(ctx context.Context, data []byte, contentType string) (string, error)
	// Ping reports whether the bucket is reachable with the configured credentials.
	Ping(ctx context.Context) error
}
