package store

import (
	"testing"

	"github.com/rsms/go-testutil"
)

// rpush/lrange/lindex/ltrim working together.
func TestRPushLRangeLIndexLTrim(t *testing.T) {
	assert := testutil.NewAssert(t)
	s := New()

	n, err := s.RPush("l", []string{"a", "b", "c"})
	assert.Ok("rpush err", err == nil)
	assert.Eq("rpush len", n, Integer(3))

	rng, err := s.LRange("l", 0, -1)
	assert.Ok("lrange err", err == nil)
	assert.Eq("lrange", rng, List([]Value{BulkString("a"), BulkString("b"), BulkString("c")}))

	idx, err := s.LIndex("l", -1)
	assert.Ok("lindex err", err == nil)
	assert.Eq("lindex", idx, BulkString("c"))

	_, err = s.LTrim("l", 0, 1)
	assert.Ok("ltrim err", err == nil)
	rng, err = s.LRange("l", 0, -1)
	assert.Ok("lrange2 err", err == nil)
	assert.Eq("lrange after ltrim", rng, List([]Value{BulkString("a"), BulkString("b")}))
}

func TestLIndexMissingKeyReturnsZero(t *testing.T) {
	assert := testutil.NewAssert(t)
	s := New()
	v, err := s.LIndex("nope", 0)
	assert.Ok("err", err == nil)
	assert.Eq("lindex on missing key", v, Integer(0))
}

func TestLRangeFullListWithNegativeOne(t *testing.T) {
	assert := testutil.NewAssert(t)
	s := New()
	s.RPush("l", []string{"a", "b", "c"})
	v, _ := s.LRange("l", 0, -1)
	assert.Eq("full range", v, List([]Value{BulkString("a"), BulkString("b"), BulkString("c")}))
}

func TestLRangeClampsOutOfBoundsNegativeStart(t *testing.T) {
	assert := testutil.NewAssert(t)
	s := New()
	s.RPush("l", []string{"a", "b", "c"})
	v, _ := s.LRange("l", -100, 100)
	assert.Eq("clamped range", v, List([]Value{BulkString("a"), BulkString("b"), BulkString("c")}))
}

func TestLRangeEmptyWhenStartAfterStop(t *testing.T) {
	assert := testutil.NewAssert(t)
	s := New()
	s.RPush("l", []string{"a", "b", "c"})
	v, _ := s.LRange("l", 2, 1)
	assert.Eq("empty range", v, EmptyList())
}

func TestLRemPositiveCountRemovesFromHead(t *testing.T) {
	assert := testutil.NewAssert(t)
	s := New()
	s.RPush("l", []string{"a", "b", "a", "c", "a"})
	n, err := s.LRem("l", 2, "a")
	assert.Ok("err", err == nil)
	assert.Eq("removed", n, Integer(2))
	v, _ := s.LRange("l", 0, -1)
	assert.Eq("remaining", v, List([]Value{BulkString("b"), BulkString("c"), BulkString("a")}))
}

func TestLRemNegativeCountRemovesFromTail(t *testing.T) {
	assert := testutil.NewAssert(t)
	s := New()
	s.RPush("l", []string{"a", "b", "a", "c", "a"})
	n, err := s.LRem("l", -2, "a")
	assert.Ok("err", err == nil)
	assert.Eq("removed", n, Integer(2))
	v, _ := s.LRange("l", 0, -1)
	assert.Eq("remaining", v, List([]Value{BulkString("a"), BulkString("b"), BulkString("c")}))
}

func TestLRemZeroCountRemovesAll(t *testing.T) {
	assert := testutil.NewAssert(t)
	s := New()
	s.RPush("l", []string{"a", "b", "a", "c", "a"})
	n, err := s.LRem("l", 0, "a")
	assert.Ok("err", err == nil)
	assert.Eq("removed", n, Integer(3))
	v, _ := s.LRange("l", 0, -1)
	assert.Eq("remaining", v, List([]Value{BulkString("b"), BulkString("c")}))
}

func TestLRemAutoPrunesEmptiedList(t *testing.T) {
	assert := testutil.NewAssert(t)
	s := New()
	s.RPush("l", []string{"a", "a"})
	s.LRem("l", 0, "a")
	v, err := s.Get("l")
	assert.Ok("err", err == nil)
	assert.Ok("pruned away", v.IsNull())
}

func TestLPushXNeverCreates(t *testing.T) {
	assert := testutil.NewAssert(t)
	s := New()
	n, err := s.LPushX("missing", []string{"x"})
	assert.Ok("err", err == nil)
	assert.Eq("no-op length", n, Integer(0))
	v, _ := s.LLen("missing")
	assert.Eq("still absent", v, Integer(0))
}

// lpushx/lpush interplay.
func TestLPushXAfterLPushAppendsAtHead(t *testing.T) {
	assert := testutil.NewAssert(t)
	s := New()
	s.LPush("l", []string{"a"})
	n, err := s.LPushX("l", []string{"b"})
	assert.Ok("err", err == nil)
	assert.Eq("len", n, Integer(2))
	v, _ := s.LRange("l", 0, -1)
	assert.Eq("order", v, List([]Value{BulkString("b"), BulkString("a")}))
}
