package cache

import (
	"context"
	"math"
	"time"

	"github.com/google/uuid"
)

type Cache interface {
	Get(ctx context.Context, key string, value any) (bool, error)
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	// SetIfNewer stores value unless the entry under key already carries a
	// version at least as high. value must encode to a JSON object with a
	// numeric "version" field, which Entry does.
	SetIfNewer(ctx context.Context, key string, value any, version int64, ttl time.Duration) (bool, error)
	Delete(ctx context.Context, keys ...string) error
}

// TombstoneVersion outranks every real version, so nothing can be stored over a tombstone.
const TombstoneVersion int64 = math.MaxInt64

// Entry is a versioned cache record. A nil Value is a tombstone left by a delete.
type Entry[T any] struct {
	Version int64 `json:"version"`
	Value   *T    `json:"value,omitempty"`
}

func NewEntry[T any](value *T, version int64) Entry[T] {
	return Entry[T]{Version: version, Value: value}
}

func Tombstone[T any]() Entry[T] {
	return Entry[T]{Version: TombstoneVersion}
}

func (e Entry[T]) Deleted() bool {
	return e.Value == nil
}

func Key(prefix string, id uuid.UUID) string {
	return prefix + ":" + id.String()
}

const (
	CommodityKeyPrefix = "commodity"
	AccountKeyPrefix   = "account"
)
