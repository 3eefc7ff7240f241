package store

import (
	"sync"
	"testing"

	"github.com/rsms/go-testutil"
)

// Type purity: every command that reads a key typed as one kind rejects a
// key already holding a different, non-null kind with ErrWrongType.
func TestTypePurityAcrossKinds(t *testing.T) {
	assert := testutil.NewAssert(t)
	s := New()

	s.Set("str", "v")
	s.HSet("map", []string{"f", "v"})
	s.RPush("list", []string{"v"})
	s.SAdd("set", []string{"v"})

	_, err := s.HGet("str", "f")
	assert.Eq("hget on string", err, ErrWrongType)

	_, err = s.LRange("map", 0, -1)
	assert.Eq("lrange on map", err, ErrWrongType)

	_, err = s.SCard("list")
	assert.Eq("scard on list", err, ErrWrongType)

	_, err = s.Get("set")
	assert.Eq("get on set", err, ErrWrongType)
}

func TestAutoPruneDeletesKeyEntirely(t *testing.T) {
	assert := testutil.NewAssert(t)
	s := New()

	s.RPush("l", []string{"only"})
	s.LPop("l", 1)
	_, err := s.HSet("l", []string{"f", "v"})
	assert.Ok("key fully freed for reuse as a map", err == nil)
}

func TestDelCountsOnlyExistingKeys(t *testing.T) {
	assert := testutil.NewAssert(t)
	s := New()
	s.Set("a", "1")
	n := s.Del([]string{"a", "missing"})
	assert.Eq("del", n, int64(1))
}

func TestForEachVisitsEveryKey(t *testing.T) {
	assert := testutil.NewAssert(t)
	s := New()
	s.Set("a", "1")
	s.Set("b", "2")
	seen := map[string]bool{}
	s.ForEach(func(key string, v Value) { seen[key] = true })
	assert.Eq("count", len(seen), 2)
	assert.Ok("a seen", seen["a"])
	assert.Ok("b seen", seen["b"])
}

// Concurrency: concurrent Incr calls on the same key must linearize under
// the store's single mutex -- no lost updates.
func TestConcurrentIncrIsLinearizable(t *testing.T) {
	assert := testutil.NewAssert(t)
	s := New()
	const goroutines = 50
	const perGoroutine = 100

	var wg sync.WaitGroup
	wg.Add(goroutines)
	for i := 0; i < goroutines; i++ {
		go func() {
			defer wg.Done()
			for j := 0; j < perGoroutine; j++ {
				s.Incr("counter")
			}
		}()
	}
	wg.Wait()

	v, err := s.Get("counter")
	assert.Ok("err", err == nil)
	assert.Eq("final count", v, BulkString("5000"))
}
