// Package store provides the storage backends the view cache selects from.
package store

import "time"

// Value reports its memory footprint for eviction accounting. ByteView and
// every materialized view satisfy it.
type Value interface {
	Len() int
}

// Store is the cache backend interface used by Cache.
type Store interface {
	// Get key
	Get(key string) (Value, bool)

	// Set key-value
	Set(key string, value Value) error

	// SetWithExpiration key-value
	SetWithExpiration(key string, value Value, expiration time.Duration) error

	// Delete key
	Delete(key string) bool

	// Clear
	Clear()

	// Len
	Len() int

	// Close
	Close()
}

// CacheType

type CacheType string

const (
	LRU CacheType = "lru" // LRU(Least Recently Used)
)

// Options

type Options struct {
	MaxBytes        int64
	CleanupInterval time.Duration
	OnEvicted       func(key string, value Value)
}

// NewOptions
func NewOptions() Options {
	return Options{
		MaxBytes:        8192, // 8KB
		CleanupInterval: time.Minute,
		OnEvicted:       nil,
	}
}

// NewStore picks a store implementation by type.
func NewStore(cacheType CacheType, options Options) Store {
	switch cacheType {
	case LRU:
		return newLRUCache(options)
	default:
		return newLRUCache(options)
	}
}
