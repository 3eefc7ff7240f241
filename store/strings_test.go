package store

import (
	"testing"

	"github.com/rsms/go-testutil"
)

// set/get/del round-trip.
func TestSetGetDelRoundTrip(t *testing.T) {
	assert := testutil.NewAssert(t)
	s := New()

	assert.Eq("set", s.Set("foo", "bar"), SimpleString("OK"))

	v, err := s.Get("foo")
	assert.Ok("get err", err == nil)
	assert.Eq("get", v, BulkString("bar"))

	assert.Eq("del", s.Del([]string{"foo"}), int64(1))

	v, err = s.Get("foo")
	assert.Ok("get after del err", err == nil)
	assert.Ok("get after del is null", v.IsNull())
}

// incr/decr sequencing.
func TestIncrDecrSequence(t *testing.T) {
	assert := testutil.NewAssert(t)
	s := New()

	for i, want := range []int64{1, 2, 3} {
		v, err := s.Incr("counter")
		assert.Ok("incr err", err == nil)
		assert.Eq("incr", v, Integer(want))
		_ = i
	}
	v, err := s.Decr("counter")
	assert.Ok("decr err", err == nil)
	assert.Eq("decr", v, Integer(2))

	v, err = s.Get("counter")
	assert.Ok("get err", err == nil)
	assert.Eq("get", v, BulkString("2"))
}

func TestIncrOnWrongTypeIsWrongType(t *testing.T) {
	assert := testutil.NewAssert(t)
	s := New()
	s.LPush("l", []string{"x"})
	_, err := s.Incr("l")
	assert.Eq("err", err, ErrWrongType)
}

func TestIncrByOverflowIsNotIntegerRange(t *testing.T) {
	assert := testutil.NewAssert(t)
	s := New()
	s.Set("k", "9223372036854775807")
	_, err := s.IncrBy("k", 1)
	assert.Eq("err", err, ErrNotIntegerRange)
}

func TestAppendCreatesOnMiss(t *testing.T) {
	assert := testutil.NewAssert(t)
	s := New()
	v, err := s.Append("k", "hello")
	assert.Ok("err", err == nil)
	assert.Eq("len", v, Integer(5))
	v, err = s.Append("k", " world")
	assert.Ok("err", err == nil)
	assert.Eq("len", v, Integer(11))
	got, _ := s.Get("k")
	assert.Eq("value", got, BulkString("hello world"))
}

func TestMSetOddArgsIsErr(t *testing.T) {
	assert := testutil.NewAssert(t)
	s := New()
	_, err := s.MSet([]string{"a", "1", "b"})
	assert.Eq("err", err, ErrOddArgs)
}

func TestMGetMixesPresentAndMissing(t *testing.T) {
	assert := testutil.NewAssert(t)
	s := New()
	s.Set("a", "1")
	got := s.MGet([]string{"a", "missing"})
	assert.Eq("mget", got, List([]Value{BulkString("1"), Null()}))
}
