package Array_View

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func TestGroupBuildsOnMiss(t *testing.T) {
	var calls int64
	builder := BuilderFunc(func(ctx context.Context, key string) ([]byte, error) {
		atomic.AddInt64(&calls, 1)
		return []byte("v1"), nil
	})

	g := NewGroup("test_group_miss", 1024, builder)
	defer g.Close()

	v, err := g.Get(context.Background(), "k1")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got := v.String(); got != "v1" {
		t.Fatalf("unexpected value: %s", got)
	}

	v, err = g.Get(context.Background(), "k1")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got := v.String(); got != "v1" {
		t.Fatalf("unexpected value: %s", got)
	}

	if n := atomic.LoadInt64(&calls); n != 1 {
		t.Fatalf("builder calls = %d, want 1", n)
	}
}

func TestGroupSingleflight(t *testing.T) {
	var calls int64
	builder := BuilderFunc(func(ctx context.Context, key string) ([]byte, error) {
		atomic.AddInt64(&calls, 1)
		time.Sleep(50 * time.Millisecond)
		return []byte("v2"), nil
	})

	g := NewGroup("test_group_sf", 1024, builder)
	defer g.Close()

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := g.Get(context.Background(), "k1"); err != nil {
				t.Errorf("Get failed: %v", err)
			}
		}()
	}
	wg.Wait()

	if n := atomic.LoadInt64(&calls); n != 1 {
		t.Fatalf("builder calls = %d, want 1", n)
	}
}

func TestGroupSetBypassesBuilder(t *testing.T) {
	builder := BuilderFunc(func(ctx context.Context, key string) ([]byte, error) {
		t.Error("builder should not run for a directly set key")
		return nil, nil
	})

	g := NewGroup("test_group_set", 1024, builder)
	defer g.Close()

	raw := []byte("direct")
	if err := g.Set(context.Background(), "k1", raw); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	raw[0] = 'X'

	v, err := g.Get(context.Background(), "k1")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got := v.String(); got != "direct" {
		t.Fatalf("cached view observed a write to the caller's buffer: %s", got)
	}
}

func TestGroupValidation(t *testing.T) {
	builder := BuilderFunc(func(ctx context.Context, key string) ([]byte, error) {
		return []byte("x"), nil
	})

	g := NewGroup("test_group_validate", 1024, builder)
	defer g.Close()

	if _, err := g.Get(context.Background(), ""); err != ErrKeyRequired {
		t.Errorf("Get with empty key: got %v, want ErrKeyRequired", err)
	}
	if err := g.Set(context.Background(), "k", nil); err != ErrValueRequired {
		t.Errorf("Set with empty value: got %v, want ErrValueRequired", err)
	}

	g.Close()
	if _, err := g.Get(context.Background(), "k"); err != ErrGroupClosed {
		t.Errorf("Get on closed group: got %v, want ErrGroupClosed", err)
	}
}
