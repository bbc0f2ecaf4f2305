// Package store provides cache storage implementations
package store

import (
	"testing"
)

// storeTestValue is a simple Value type used to exercise NewStore.
type storeTestValue struct {
	data string
}

func (v storeTestValue) Len() int {
	return len(v.data)
}

func TestNewStore(t *testing.T) {
	lruOptions := NewOptions()
	lruOptions.MaxBytes = 100
	lruCache := NewStore(LRU, lruOptions)
	if lruCache == nil {
		t.Fatal("NewStore should return a valid LRU cache")
	}
	defer lruCache.Close()

	testKey := "test_store_key"
	testValue := storeTestValue{data: "test_store_value"}
	if err := lruCache.Set(testKey, testValue); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	value, ok := lruCache.Get(testKey)
	if !ok {
		t.Fatal("Get failed: key not found")
	}
	if sv, ok := value.(storeTestValue); !ok || sv.data != "test_store_value" {
		t.Errorf("unexpected value: %v", value)
	}
}

func TestNewStoreDefaultsToLRU(t *testing.T) {
	cache := NewStore("unknown", NewOptions())
	if cache == nil {
		t.Fatal("NewStore should fall back to the LRU implementation")
	}
	cache.Close()
}

func TestNewOptionsDefaults(t *testing.T) {
	opts := NewOptions()
	if opts.MaxBytes != 8192 {
		t.Errorf("MaxBytes = %d, want 8192", opts.MaxBytes)
	}
	if opts.CleanupInterval <= 0 {
		t.Error("CleanupInterval should default to a positive duration")
	}
}
