package store

import (
	"testing"

	"github.com/rsms/go-testutil"
)

// hset/hincrby/hget/hdel working together.
func TestHSetHIncrByHGetHDel(t *testing.T) {
	assert := testutil.NewAssert(t)
	s := New()

	n, err := s.HSet("h", []string{"count", "1", "name", "joe"})
	assert.Ok("hset err", err == nil)
	assert.Eq("hset", n, Integer(2))

	v, err := s.HIncrBy("h", "count", 4)
	assert.Ok("hincrby err", err == nil)
	assert.Eq("hincrby", v, Integer(5))

	got, err := s.HGet("h", "count")
	assert.Ok("hget err", err == nil)
	assert.Eq("hget", got, BulkString("5"))

	d, err := s.HDel("h", []string{"count"})
	assert.Ok("hdel err", err == nil)
	assert.Eq("hdel", d, Integer(1))

	got, err = s.HGet("h", "count")
	assert.Ok("hget after del err", err == nil)
	assert.Ok("field gone", got.IsNull())
}

func TestHIncrByNonNumericFieldIsNotIntegerRange(t *testing.T) {
	assert := testutil.NewAssert(t)
	s := New()
	s.HSet("h", []string{"f", "notanumber"})
	_, err := s.HIncrBy("h", "f", 1)
	assert.Eq("err", err, ErrNotIntegerRange)
}

func TestHIncrByCreatesFieldAndKeyOnMiss(t *testing.T) {
	assert := testutil.NewAssert(t)
	s := New()
	v, err := s.HIncrBy("h", "f", 3)
	assert.Ok("err", err == nil)
	assert.Eq("value", v, Integer(3))
}

func TestHSetNXSkipsExistingFields(t *testing.T) {
	assert := testutil.NewAssert(t)
	s := New()
	s.HSet("h", []string{"f", "orig"})
	n, err := s.HSetNX("h", []string{"f", "new", "g", "val"})
	assert.Ok("err", err == nil)
	assert.Eq("only g inserted", n, Integer(1))
	v, _ := s.HGet("h", "f")
	assert.Eq("unchanged", v, BulkString("orig"))
}

func TestHDelAutoPrunesEmptiedMap(t *testing.T) {
	assert := testutil.NewAssert(t)
	s := New()
	s.HSet("h", []string{"f", "v"})
	s.HDel("h", []string{"f"})
	v, err := s.Get("h")
	assert.Ok("err", err == nil)
	assert.Ok("pruned away", v.IsNull())
}

func TestHGetAllOnWrongTypeIsWrongType(t *testing.T) {
	assert := testutil.NewAssert(t)
	s := New()
	s.Set("k", "str")
	_, err := s.HGetAll("k")
	assert.Eq("err", err, ErrWrongType)
}

func TestHMGetMixesPresentAndMissingFields(t *testing.T) {
	assert := testutil.NewAssert(t)
	s := New()
	s.HSet("h", []string{"a", "1"})
	got, err := s.HMGet("h", []string{"a", "missing"})
	assert.Ok("err", err == nil)
	assert.Eq("hmget", got, List([]Value{BulkString("1"), Null()}))
}
