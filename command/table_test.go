package command

import (
	"testing"

	"github.com/rsms/go-testutil"

	"github.com/shinkou/kyvi/store"
)

func ba(ss ...string) [][]byte {
	out := make([][]byte, len(ss))
	for i, s := range ss {
		out[i] = []byte(s)
	}
	return out
}

func TestDispatchUnknownCommand(t *testing.T) {
	assert := testutil.NewAssert(t)
	st := store.New()
	got := Dispatch(st, "bogus", nil)
	assert.Eq("reply", got, store.SimpleError(`ERR unknown command "bogus"`))
}

func TestDispatchArityMismatch(t *testing.T) {
	assert := testutil.NewAssert(t)
	st := store.New()
	got := Dispatch(st, "get", ba("a", "b"))
	assert.Eq("reply", got, store.SimpleError(`ERR correct syntax: "GET key"`))
}

// set/get/del via Dispatch.
func TestDispatchSetGetDel(t *testing.T) {
	assert := testutil.NewAssert(t)
	st := store.New()

	assert.Eq("set", Dispatch(st, "set", ba("foo", "bar")), store.SimpleString("OK"))
	assert.Eq("get", Dispatch(st, "get", ba("foo")), store.BulkString("bar"))
	assert.Eq("del", Dispatch(st, "del", ba("foo")), store.Integer(1))
	assert.Eq("get after del", Dispatch(st, "get", ba("foo")), store.Null())
}

// incr/decr sequence via Dispatch.
func TestDispatchIncrDecrSequence(t *testing.T) {
	assert := testutil.NewAssert(t)
	st := store.New()

	assert.Eq("incr1", Dispatch(st, "incr", ba("counter")), store.Integer(1))
	assert.Eq("incr2", Dispatch(st, "incr", ba("counter")), store.Integer(2))
	assert.Eq("incr3", Dispatch(st, "incr", ba("counter")), store.Integer(3))
	assert.Eq("decr", Dispatch(st, "decr", ba("counter")), store.Integer(2))
	assert.Eq("get", Dispatch(st, "get", ba("counter")), store.BulkString("2"))
}

func TestDispatchLIndexBadIndexReportsPositionSpecificError(t *testing.T) {
	assert := testutil.NewAssert(t)
	st := store.New()
	st.RPush("l", []string{"a"})
	got := Dispatch(st, "lindex", ba("l", "notanumber"))
	assert.Eq("reply", got, store.SimpleError(store.ErrIndexNotInteger.Error()))
}

func TestDispatchLRangeBadStartVsStopUsesDistinctErrors(t *testing.T) {
	assert := testutil.NewAssert(t)
	st := store.New()
	st.RPush("l", []string{"a"})

	got := Dispatch(st, "lrange", ba("l", "x", "1"))
	assert.Eq("start", got, store.SimpleError(store.ErrStartIndexNotInteger.Error()))

	got = Dispatch(st, "lrange", ba("l", "0", "x"))
	assert.Eq("stop", got, store.SimpleError(store.ErrStopIndexNotInteger.Error()))
}

// SPOP's reply shape is decided here, in the dispatcher: bare value without
// a count, List (even of length 1) with an explicit count.
func TestDispatchSPopWithoutCountReturnsBareValue(t *testing.T) {
	assert := testutil.NewAssert(t)
	st := store.New()
	st.SAdd("s", []string{"only"})

	got := Dispatch(st, "spop", ba("s"))
	assert.Eq("bare bulk string", got, store.BulkString("only"))
}

func TestDispatchSPopWithCountOneStillReturnsList(t *testing.T) {
	assert := testutil.NewAssert(t)
	st := store.New()
	st.SAdd("s", []string{"only"})

	got := Dispatch(st, "spop", ba("s", "1"))
	assert.Eq("list shape", got, store.List([]store.Value{store.BulkString("only")}))
}

func TestDispatchSPopOnMissingKeyWithoutCountReturnsNull(t *testing.T) {
	assert := testutil.NewAssert(t)
	st := store.New()
	got := Dispatch(st, "spop", ba("missing"))
	assert.Eq("null", got, store.Null())
}

func TestDispatchQuitRepliesOK(t *testing.T) {
	assert := testutil.NewAssert(t)
	st := store.New()
	got := Dispatch(st, "quit", nil)
	assert.Eq("reply", got, store.SimpleString("OK"))
	assert.Ok("is quit", IsQuit("quit"))
	assert.Ok("get is not quit", !IsQuit("get"))
}

func TestDispatchHelpListsSortedCommandNames(t *testing.T) {
	assert := testutil.NewAssert(t)
	st := store.New()
	got := Dispatch(st, "help", nil)
	assert.Eq("kind", got.Kind, store.KindList)
	assert.Ok("nonempty", len(got.List) > 1)
	assert.Eq("first entry is alphabetically sorted", got.List[0].Str, "append")
}

func TestDispatchHelpOnUnknownCommandName(t *testing.T) {
	assert := testutil.NewAssert(t)
	st := store.New()
	got := Dispatch(st, "help", ba("bogus"))
	assert.Eq("reply", got, store.SimpleError(`ERR unknown command "bogus"`))
}

// help on a known command renders its behavior-flag count alongside the
// syntax and doc text (the count comes from Flags.Len, go-bits'
// PopcountUint64 under the hood).
func TestDispatchHelpOnKnownCommandRendersFlagCount(t *testing.T) {
	assert := testutil.NewAssert(t)
	st := store.New()

	got := Dispatch(st, "help", ba("set"))
	assert.Eq("set has one flag", got, store.BulkString("SET key value\nSet key to value unconditionally.\n(1 behavior flag(s))"))

	got = Dispatch(st, "help", ba("mget"))
	assert.Eq("mget has two flags", got, store.BulkString("MGET key [key ...]\nGet the string values of all the given keys.\n(2 behavior flag(s))"))
}

func TestDispatchHSetThenHGetAll(t *testing.T) {
	assert := testutil.NewAssert(t)
	st := store.New()
	Dispatch(st, "hset", ba("h", "f", "v"))
	got := Dispatch(st, "hgetall", ba("h"))
	assert.Eq("reply", got, store.List([]store.Value{store.BulkString("f"), store.BulkString("v")}))
}

func TestDispatchLInsertRejectsBadDirection(t *testing.T) {
	assert := testutil.NewAssert(t)
	st := store.New()
	st.RPush("l", []string{"a"})
	got := Dispatch(st, "linsert", ba("l", "sideways", "a", "b"))
	assert.Eq("reply", got, store.SimpleError(store.ErrSyntax.Error()))
}
