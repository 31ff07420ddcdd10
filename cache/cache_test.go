package cache

import (
	"errors"
	"sort"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// oneShard puts every key in shard 0 so capacity tests are exact.
func oneShard(int) uint64 { return 0 }

func TestNewSharded(t *testing.T) {
	c := NewSharded[string, int](0, StringHasher)
	if c.Capacity() != DefaultCapacity {
		t.Errorf("Capacity() = %d, want %d", c.Capacity(), DefaultCapacity)
	}
	if c.Len() != 0 {
		t.Errorf("Len() = %d, want 0", c.Len())
	}
}

func TestShardedCacheGetSet(t *testing.T) {
	c := NewSharded[string, int](10, StringHasher)
	c.Set("key1", 42)

	if v, ok := c.Get("key1"); !ok || v != 42 {
		t.Errorf("Get(key1) = %d, %v, want 42, true", v, ok)
	}
	if _, ok := c.Get("nonexistent"); ok {
		t.Error("expected nonexistent key to be missing")
	}
}

func TestShardedCacheGetOrCreate(t *testing.T) {
	c := NewSharded[string, int](10, StringHasher)
	calls := 0
	create := func() (int, error) {
		calls++
		return 7, nil
	}

	for range 3 {
		v, err := c.GetOrCreate("k", create)
		if err != nil || v != 7 {
			t.Fatalf("GetOrCreate() = %d, %v", v, err)
		}
	}
	if calls != 1 {
		t.Errorf("create called %d times, want 1", calls)
	}
	if s := c.Stats(); s.Hits != 2 || s.Misses != 1 {
		t.Errorf("stats = %+v, want 2 hits 1 miss", s)
	}
}

func TestShardedCacheGetOrCreateErrorNotCached(t *testing.T) {
	c := NewSharded[string, int](10, StringHasher)
	boom := errors.New("compile failed")

	if _, err := c.GetOrCreate("k", func() (int, error) { return 0, boom }); !errors.Is(err, boom) {
		t.Fatalf("GetOrCreate() error = %v, want %v", err, boom)
	}
	if c.Len() != 0 {
		t.Error("failed create should not be cached")
	}
	v, err := c.GetOrCreate("k", func() (int, error) { return 3, nil })
	if err != nil || v != 3 {
		t.Errorf("retry = %d, %v", v, err)
	}
}

func TestShardedCacheEvictionOrder(t *testing.T) {
	c := NewSharded[int, int](2, oneShard)
	var evicted []int
	c.OnEvict(func(k, _ int) { evicted = append(evicted, k) })

	c.Set(1, 1)
	c.Set(2, 2)
	c.Get(1) // 2 becomes the oldest
	c.Set(3, 3)

	if diff := cmp.Diff([]int{2}, evicted); diff != "" {
		t.Errorf("evicted mismatch (-want +got):\n%s", diff)
	}
	if _, ok := c.Get(2); ok {
		t.Error("2 should have been evicted")
	}
	if s := c.Stats(); s.Evictions != 1 || s.Len != 2 {
		t.Errorf("stats = %+v", s)
	}
}

func TestShardedCacheSetReplaceReleasesOld(t *testing.T) {
	c := NewSharded[int, string](4, oneShard)
	var released []string
	c.OnEvict(func(_ int, v string) { released = append(released, v) })

	c.Set(1, "old")
	c.Set(1, "new")

	if diff := cmp.Diff([]string{"old"}, released); diff != "" {
		t.Errorf("released mismatch (-want +got):\n%s", diff)
	}
	if v, _ := c.Get(1); v != "new" {
		t.Errorf("Get(1) = %q, want new", v)
	}
}

func TestShardedCacheDeleteAndClear(t *testing.T) {
	c := NewSharded[string, int](10, StringHasher)
	var released []string
	c.OnEvict(func(k string, _ int) { released = append(released, k) })

	c.Set("a", 1)
	c.Set("b", 2)
	c.Set("c", 3)

	if !c.Delete("a") || c.Delete("a") {
		t.Error("Delete should report presence once")
	}
	c.Clear()
	if c.Len() != 0 {
		t.Errorf("Len() after Clear = %d", c.Len())
	}

	sort.Strings(released)
	if diff := cmp.Diff([]string{"a", "b", "c"}, released); diff != "" {
		t.Errorf("released mismatch (-want +got):\n%s", diff)
	}
}

func TestShardedCacheResetStats(t *testing.T) {
	c := NewSharded[string, int](10, StringHasher)
	c.Set("key1", 1)
	c.Get("key1")
	c.Get("nonexistent")
	c.ResetStats()

	if s := c.Stats(); s.Hits != 0 || s.Misses != 0 || s.Evictions != 0 || s.HitRate != 0 {
		t.Errorf("stats after reset = %+v", s)
	}
}

func TestShardedCacheConcurrentGetOrCreate(t *testing.T) {
	c := NewSharded[int, int](100, func(i int) uint64 { return uint64(i) })
	var calls atomic.Int32
	var wg sync.WaitGroup

	for range 64 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for k := range 8 {
				_, _ = c.GetOrCreate(k, func() (int, error) {
					calls.Add(1)
					return k * k, nil
				})
			}
		}()
	}
	wg.Wait()

	if got := calls.Load(); got != 8 {
		t.Errorf("create called %d times, want 8", got)
	}
	if c.Len() != 8 {
		t.Errorf("Len() = %d, want 8", c.Len())
	}
}

func TestStringHasher(t *testing.T) {
	if StringHasher("hello") != StringHasher("hello") {
		t.Error("StringHasher not deterministic")
	}
	if StringHasher("hello") == StringHasher("world") {
		t.Error("StringHasher collision for different strings")
	}
}

func TestLRUList(t *testing.T) {
	var l lruList[int]
	a := l.PushFront(1)
	l.PushFront(2)
	l.PushFront(3)
	l.MoveToFront(a)
	l.Remove(nil)

	var got []int
	for {
		k, ok := l.RemoveOldest()
		if !ok {
			break
		}
		got = append(got, k)
	}
	if diff := cmp.Diff([]int{2, 3, 1}, got); diff != "" {
		t.Errorf("eviction order mismatch (-want +got):\n%s", diff)
	}
	if l.Len() != 0 {
		t.Errorf("Len() = %d, want 0", l.Len())
	}
}

func BenchmarkShardedCacheHit(b *testing.B) {
	c := NewSharded[string, int](10, StringHasher)
	c.Set("key", 1)
	b.ReportAllocs()
	for b.Loop() {
		c.Get("key")
	}
}
