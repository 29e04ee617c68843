package cache

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"
)

func TestStore_GetOrLoad_CachesValue(t *testing.T) {
	store := NewStore(time.Minute)
	ctx := context.Background()

	var loads atomic.Int32
	loader := func(context.Context) (any, error) {
		loads.Add(1)
		return "rows", nil
	}

	for i := 0; i < 3; i++ {
		v, err := store.GetOrLoad(ctx, "lb:teams:global", loader)
		if err != nil {
			t.Fatalf("get or load: %v", err)
		}
		if v != "rows" {
			t.Fatalf("unexpected value: %v", v)
		}
	}

	if got := loads.Load(); got != 1 {
		t.Fatalf("expected one load, got %d", got)
	}
}

func TestStore_GetOrLoad_DoesNotCacheErrors(t *testing.T) {
	store := NewStore(time.Minute)
	ctx := context.Background()

	boom := errors.New("storage down")
	var loads atomic.Int32

	for i := 0; i < 2; i++ {
		_, err := store.GetOrLoad(ctx, "lb:players:global", func(context.Context) (any, error) {
			loads.Add(1)
			return nil, boom
		})
		if !errors.Is(err, boom) {
			t.Fatalf("expected load error, got %v", err)
		}
	}

	if got := loads.Load(); got != 2 {
		t.Fatalf("expected failed loads to retry, got %d loads", got)
	}
}

func TestStore_Get_ExpiresEntries(t *testing.T) {
	store := NewStore(10 * time.Millisecond)
	ctx := context.Background()

	store.Set(ctx, "key", 1)
	if _, ok := store.Get(ctx, "key"); !ok {
		t.Fatalf("expected fresh entry to be present")
	}

	time.Sleep(20 * time.Millisecond)
	if _, ok := store.Get(ctx, "key"); ok {
		t.Fatalf("expected entry to expire")
	}
}

func TestStore_Delete(t *testing.T) {
	store := NewStore(time.Minute)
	ctx := context.Background()

	store.Set(ctx, "key", 1)
	store.Delete(ctx, "key")
	if _, ok := store.Get(ctx, "key"); ok {
		t.Fatalf("expected deleted entry to be absent")
	}
}
