package cache

import (
	"fmt"
	"sync"
	"testing"
)

func TestNewCache(t *testing.T) {
	t.Run("String cache", func(t *testing.T) {
		cache := NewCache[string, string]()
		if cache == nil {
			t.Fatal("Expected non-nil cache")
		}
		if cache.items == nil {
			t.Fatal("Expected items map to be initialized")
		}
	})

	t.Run("Struct pointer cache", func(t *testing.T) {
		type record struct {
			ID   string
			Name string
		}
		cache := NewCache[string, *record]()
		if cache == nil {
			t.Fatal("Expected non-nil cache")
		}
	})
}

func TestCache_BasicOperations(t *testing.T) {
	cache := NewCache[string, string]()

	t.Run("Set and Get", func(t *testing.T) {
		cache.Set("test-key", "test-value")

		got, exists := cache.Get("test-key")
		if !exists {
			t.Error("Expected key to exist")
		}
		if got != "test-value" {
			t.Errorf("Expected %q, got %q", "test-value", got)
		}
	})

	t.Run("Get non-existent key", func(t *testing.T) {
		_, exists := cache.Get("non-existent")
		if exists {
			t.Error("Expected key to not exist")
		}
	})

	t.Run("Overwrite existing key", func(t *testing.T) {
		cache.Set("overwrite-key", "value1")
		cache.Set("overwrite-key", "value2")

		got, exists := cache.Get("overwrite-key")
		if !exists {
			t.Error("Expected key to exist")
		}
		if got != "value2" {
			t.Errorf("Expected %q, got %q", "value2", got)
		}
	})

	t.Run("Delete", func(t *testing.T) {
		cache.Set("delete-key", "value")
		cache.Delete("delete-key")

		if _, exists := cache.Get("delete-key"); exists {
			t.Error("Expected key to be deleted")
		}
	})

	t.Run("Clear", func(t *testing.T) {
		cache.Set("a", "1")
		cache.Set("b", "2")
		cache.Clear()

		if cache.Len() != 0 {
			t.Errorf("Expected empty cache after Clear, got %d items", cache.Len())
		}
	})

	t.Run("SetTo replaces contents", func(t *testing.T) {
		cache.Set("old", "value")
		cache.SetTo(map[string]string{"new": "value"})

		if _, exists := cache.Get("old"); exists {
			t.Error("Expected old key to be gone after SetTo")
		}
		if _, exists := cache.Get("new"); !exists {
			t.Error("Expected new key to exist after SetTo")
		}
	})
}

func TestCache_ConcurrentAccess(t *testing.T) {
	cache := NewCache[string, int]()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			key := fmt.Sprintf("key-%d", n)
			cache.Set(key, n)
			if got, ok := cache.Get(key); !ok || got != n {
				t.Errorf("Expected %d for %s, got %d (ok=%v)", n, key, got, ok)
			}
		}(i)
	}
	wg.Wait()

	if cache.Len() != 50 {
		t.Errorf("Expected 50 items, got %d", cache.Len())
	}
}
