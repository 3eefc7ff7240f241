// Package command holds the dispatch table mapping request names to
// store.Store operations: a static table keyed by command name, each entry
// a small struct of function fields wrapping one store operation.
package command

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/rsms/go-bits"

	"github.com/shinkou/kyvi/store"
)

// Handler runs one command's store operation. Args never includes the
// command name itself; Dispatch has already validated argc against the
// command's Shape before a Handler is called.
type Handler func(st *store.Store, args [][]byte) (store.Value, error)

// Shape reports whether argc (the number of arguments after the command
// name) is acceptable for a command.
type Shape func(argc int) bool

// Flags classifies a command along axes a future caller (logging,
// replay filtering) may care about. Unused by Dispatch itself.
type Flags uint32

const (
	FlagReadOnly Flags = 1 << iota
	FlagWrite
	FlagVariadic
)

// Len reports the number of flags set.
func (f Flags) Len() int { return bits.PopcountUint64(uint64(f)) }

// Command is one entry in Table.
type Command struct {
	Name    string
	Handler Handler
	Shape   Shape
	Syntax  string
	Doc     string
	Flags   Flags
}

// IsQuit reports whether name is the quit command, so the connection
// processor (server package) knows to close the connection after replying.
func IsQuit(name string) bool { return name == "quit" }

// Dispatch looks up name in Table, validates args against its Shape, runs
// its Handler, and normalizes any returned error into a SimpleError reply.
// Unknown commands and shape mismatches never reach a Handler.
func Dispatch(st *store.Store, name string, args [][]byte) store.Value {
	cmd, ok := Table[name]
	if !ok {
		return store.SimpleError(fmt.Sprintf("ERR unknown command %q", name))
	}
	if !cmd.Shape(len(args)) {
		return store.SimpleError(fmt.Sprintf("ERR correct syntax: %q", cmd.Syntax))
	}
	v, err := cmd.Handler(st, args)
	if err != nil {
		return store.SimpleError(err.Error())
	}
	return v
}

func exact(n int) Shape { return func(argc int) bool { return argc == n } }
func atLeast(n int) Shape { return func(argc int) bool { return argc >= n } }
func between(lo, hi int) Shape { return func(argc int) bool { return argc >= lo && argc <= hi } }

// evenFrom requires at least n args (n itself even) and an even total,
// for commands like mset that take flat key/value pairs.
func evenFrom(n int) Shape { return func(argc int) bool { return argc >= n && argc%2 == 0 } }

// oddWithLeader requires a leading non-paired arg (e.g. a key) followed
// by one or more even-length pairs, for commands like hset.
func oddWithLeader(n int) Shape { return func(argc int) bool { return argc >= n && (argc-1)%2 == 0 } }

func argStrs(args [][]byte) []string {
	out := make([]string, len(args))
	for i, a := range args {
		out[i] = string(a)
	}
	return out
}

func parseInt(b []byte, onErr error) (int64, error) {
	n, err := strconv.ParseInt(string(b), 10, 64)
	if err != nil {
		return 0, onErr
	}
	return n, nil
}

// parsePositiveCount parses a non-negative count argument, used by lpop,
// rpop and spop: a negative value is as invalid as a non-numeric one.
func parsePositiveCount(b []byte) (int64, error) {
	n, err := strconv.ParseInt(string(b), 10, 64)
	if err != nil || n < 0 {
		return 0, store.ErrNotPositiveInt
	}
	return n, nil
}

// Table is the complete set of recognized commands. Keys are lower-case
// command names; resp.Parser already lower-cases the command name it
// extracts, so lookups never need case-folding here.
var Table = map[string]*Command{
	"set": {
		Name: "set", Shape: exact(2), Syntax: "SET key value",
		Doc:     "Set key to value unconditionally.",
		Flags:   FlagWrite,
		Handler: func(st *store.Store, a [][]byte) (store.Value, error) {
			return st.Set(string(a[0]), string(a[1])), nil
		},
	},
	"get": {
		Name: "get", Shape: exact(1), Syntax: "GET key",
		Doc:     "Get the string value of key.",
		Flags:   FlagReadOnly,
		Handler: func(st *store.Store, a [][]byte) (store.Value, error) {
			return st.Get(string(a[0]))
		},
	},
	"append": {
		Name: "append", Shape: exact(2), Syntax: "APPEND key value",
		Doc:     "Append value to the string at key, creating it if absent.",
		Flags:   FlagWrite,
		Handler: func(st *store.Store, a [][]byte) (store.Value, error) {
			return st.Append(string(a[0]), string(a[1]))
		},
	},
	"mget": {
		Name: "mget", Shape: atLeast(1), Syntax: "MGET key [key ...]",
		Doc:     "Get the string values of all the given keys.",
		Flags:   FlagReadOnly | FlagVariadic,
		Handler: func(st *store.Store, a [][]byte) (store.Value, error) {
			return st.MGet(argStrs(a)), nil
		},
	},
	"mset": {
		Name: "mset", Shape: evenFrom(2), Syntax: "MSET key value [key value ...]",
		Doc:     "Set multiple key/value pairs unconditionally.",
		Flags:   FlagWrite | FlagVariadic,
		Handler: func(st *store.Store, a [][]byte) (store.Value, error) {
			return st.MSet(argStrs(a))
		},
	},
	"getdel": {
		Name: "getdel", Shape: exact(1), Syntax: "GETDEL key",
		Doc:     "Get the string value of key, then delete it.",
		Flags:   FlagWrite,
		Handler: func(st *store.Store, a [][]byte) (store.Value, error) {
			return st.GetDel(string(a[0]))
		},
	},
	"getset": {
		Name: "getset", Shape: exact(2), Syntax: "GETSET key value",
		Doc:     "Set key to value, returning its previous string value.",
		Flags:   FlagWrite,
		Handler: func(st *store.Store, a [][]byte) (store.Value, error) {
			return st.GetSet(string(a[0]), string(a[1]))
		},
	},
	"incr": {
		Name: "incr", Shape: exact(1), Syntax: "INCR key",
		Doc:     "Increment the integer at key by 1 (absent treated as 0).",
		Flags:   FlagWrite,
		Handler: func(st *store.Store, a [][]byte) (store.Value, error) {
			return st.Incr(string(a[0]))
		},
	},
	"decr": {
		Name: "decr", Shape: exact(1), Syntax: "DECR key",
		Doc:     "Decrement the integer at key by 1 (absent treated as 0).",
		Flags:   FlagWrite,
		Handler: func(st *store.Store, a [][]byte) (store.Value, error) {
			return st.Decr(string(a[0]))
		},
	},
	"incrby": {
		Name: "incrby", Shape: exact(2), Syntax: "INCRBY key n",
		Doc:   "Increment the integer at key by n.",
		Flags: FlagWrite,
		Handler: func(st *store.Store, a [][]byte) (store.Value, error) {
			n, err := parseInt(a[1], store.ErrNotInteger)
			if err != nil {
				return store.Value{}, err
			}
			return st.IncrBy(string(a[0]), n)
		},
	},
	"decrby": {
		Name: "decrby", Shape: exact(2), Syntax: "DECRBY key n",
		Doc:   "Decrement the integer at key by n.",
		Flags: FlagWrite,
		Handler: func(st *store.Store, a [][]byte) (store.Value, error) {
			n, err := parseInt(a[1], store.ErrNotInteger)
			if err != nil {
				return store.Value{}, err
			}
			return st.DecrBy(string(a[0]), n)
		},
	},
	"del": {
		Name: "del", Shape: atLeast(1), Syntax: "DEL key [key ...]",
		Doc:     "Delete the given keys, returning the count actually removed.",
		Flags:   FlagWrite | FlagVariadic,
		Handler: func(st *store.Store, a [][]byte) (store.Value, error) {
			return store.Integer(st.Del(argStrs(a))), nil
		},
	},
	"keys": {
		Name: "keys", Shape: exact(1), Syntax: "KEYS pattern",
		Doc:     "List every key whose name matches the regular expression pattern.",
		Flags:   FlagReadOnly,
		Handler: func(st *store.Store, a [][]byte) (store.Value, error) {
			return st.Keys(string(a[0])), nil
		},
	},
	"info": {
		Name: "info", Shape: exact(0), Syntax: "INFO",
		Doc:     "Report the store's total synthetic data size.",
		Flags:   FlagReadOnly,
		Handler: func(st *store.Store, a [][]byte) (store.Value, error) {
			return st.Info(), nil
		},
	},

	"hset": {
		Name: "hset", Shape: oddWithLeader(3), Syntax: "HSET key field value [field value ...]",
		Doc:   "Set the given field/value pairs in the map at key.",
		Flags: FlagWrite | FlagVariadic,
		Handler: func(st *store.Store, a [][]byte) (store.Value, error) {
			return st.HSet(string(a[0]), argStrs(a[1:]))
		},
	},
	"hsetnx": {
		Name: "hsetnx", Shape: oddWithLeader(3), Syntax: "HSETNX key field value [field value ...]",
		Doc:   "Like HSET, but only inserts fields that do not already exist.",
		Flags: FlagWrite | FlagVariadic,
		Handler: func(st *store.Store, a [][]byte) (store.Value, error) {
			return st.HSetNX(string(a[0]), argStrs(a[1:]))
		},
	},
	"hget": {
		Name: "hget", Shape: exact(2), Syntax: "HGET key field",
		Doc:   "Get the value of field in the map at key.",
		Flags: FlagReadOnly,
		Handler: func(st *store.Store, a [][]byte) (store.Value, error) {
			return st.HGet(string(a[0]), string(a[1]))
		},
	},
	"hgetall": {
		Name: "hgetall", Shape: exact(1), Syntax: "HGETALL key",
		Doc:   "Get every field/value pair in the map at key.",
		Flags: FlagReadOnly,
		Handler: func(st *store.Store, a [][]byte) (store.Value, error) {
			return st.HGetAll(string(a[0]))
		},
	},
	"hdel": {
		Name: "hdel", Shape: atLeast(2), Syntax: "HDEL key field [field ...]",
		Doc:   "Remove the given fields from the map at key.",
		Flags: FlagWrite | FlagVariadic,
		Handler: func(st *store.Store, a [][]byte) (store.Value, error) {
			return st.HDel(string(a[0]), argStrs(a[1:]))
		},
	},
	"hexists": {
		Name: "hexists", Shape: exact(2), Syntax: "HEXISTS key field",
		Doc:   "Report whether field exists in the map at key.",
		Flags: FlagReadOnly,
		Handler: func(st *store.Store, a [][]byte) (store.Value, error) {
			return st.HExists(string(a[0]), string(a[1]))
		},
	},
	"hincrby": {
		Name: "hincrby", Shape: exact(3), Syntax: "HINCRBY key field n",
		Doc:   "Increment the integer at field in the map at key by n.",
		Flags: FlagWrite,
		Handler: func(st *store.Store, a [][]byte) (store.Value, error) {
			n, err := parseInt(a[2], store.ErrNotInteger)
			if err != nil {
				return store.Value{}, err
			}
			return st.HIncrBy(string(a[0]), string(a[1]), n)
		},
	},
	"hkeys": {
		Name: "hkeys", Shape: exact(1), Syntax: "HKEYS key",
		Doc:   "List every field in the map at key.",
		Flags: FlagReadOnly,
		Handler: func(st *store.Store, a [][]byte) (store.Value, error) {
			return st.HKeys(string(a[0]))
		},
	},
	"hvals": {
		Name: "hvals", Shape: exact(1), Syntax: "HVALS key",
		Doc:   "List every value in the map at key.",
		Flags: FlagReadOnly,
		Handler: func(st *store.Store, a [][]byte) (store.Value, error) {
			return st.HVals(string(a[0]))
		},
	},
	"hmget": {
		Name: "hmget", Shape: atLeast(2), Syntax: "HMGET key field [field ...]",
		Doc:   "Get the values of the given fields in the map at key.",
		Flags: FlagReadOnly | FlagVariadic,
		Handler: func(st *store.Store, a [][]byte) (store.Value, error) {
			return st.HMGet(string(a[0]), argStrs(a[1:]))
		},
	},
	"hlen": {
		Name: "hlen", Shape: exact(1), Syntax: "HLEN key",
		Doc:   "Report the number of fields in the map at key.",
		Flags: FlagReadOnly,
		Handler: func(st *store.Store, a [][]byte) (store.Value, error) {
			return st.HLen(string(a[0]))
		},
	},

	"lpush": {
		Name: "lpush", Shape: atLeast(2), Syntax: "LPUSH key value [value ...]",
		Doc:   "Prepend the given values to the list at key, creating it on miss.",
		Flags: FlagWrite | FlagVariadic,
		Handler: func(st *store.Store, a [][]byte) (store.Value, error) {
			return st.LPush(string(a[0]), argStrs(a[1:]))
		},
	},
	"rpush": {
		Name: "rpush", Shape: atLeast(2), Syntax: "RPUSH key value [value ...]",
		Doc:   "Append the given values to the list at key, creating it on miss.",
		Flags: FlagWrite | FlagVariadic,
		Handler: func(st *store.Store, a [][]byte) (store.Value, error) {
			return st.RPush(string(a[0]), argStrs(a[1:]))
		},
	},
	"lpushx": {
		Name: "lpushx", Shape: atLeast(2), Syntax: "LPUSHX key value [value ...]",
		Doc:   "Like LPUSH, but never creates the list.",
		Flags: FlagWrite | FlagVariadic,
		Handler: func(st *store.Store, a [][]byte) (store.Value, error) {
			return st.LPushX(string(a[0]), argStrs(a[1:]))
		},
	},
	"rpushx": {
		Name: "rpushx", Shape: atLeast(2), Syntax: "RPUSHX key value [value ...]",
		Doc:   "Like RPUSH, but never creates the list.",
		Flags: FlagWrite | FlagVariadic,
		Handler: func(st *store.Store, a [][]byte) (store.Value, error) {
			return st.RPushX(string(a[0]), argStrs(a[1:]))
		},
	},
	"lpop": {
		Name: "lpop", Shape: between(1, 2), Syntax: "LPOP key [count]",
		Doc:   "Remove and return up to count elements from the head of the list at key.",
		Flags: FlagWrite,
		Handler: func(st *store.Store, a [][]byte) (store.Value, error) {
			n := int64(1)
			if len(a) == 2 {
				var err error
				if n, err = parsePositiveCount(a[1]); err != nil {
					return store.Value{}, err
				}
			}
			return st.LPop(string(a[0]), n)
		},
	},
	"rpop": {
		Name: "rpop", Shape: between(1, 2), Syntax: "RPOP key [count]",
		Doc:   "Remove and return up to count elements from the tail of the list at key.",
		Flags: FlagWrite,
		Handler: func(st *store.Store, a [][]byte) (store.Value, error) {
			n := int64(1)
			if len(a) == 2 {
				var err error
				if n, err = parsePositiveCount(a[1]); err != nil {
					return store.Value{}, err
				}
			}
			return st.RPop(string(a[0]), n)
		},
	},
	"lindex": {
		Name: "lindex", Shape: exact(2), Syntax: "LINDEX key index",
		Doc:   "Get the element at the given signed index in the list at key.",
		Flags: FlagReadOnly,
		Handler: func(st *store.Store, a [][]byte) (store.Value, error) {
			i, err := parseInt(a[1], store.ErrIndexNotInteger)
			if err != nil {
				return store.Value{}, err
			}
			return st.LIndex(string(a[0]), i)
		},
	},
	"lrange": {
		Name: "lrange", Shape: exact(3), Syntax: "LRANGE key start stop",
		Doc:   "Get the inclusive range [start,stop] of the list at key.",
		Flags: FlagReadOnly,
		Handler: func(st *store.Store, a [][]byte) (store.Value, error) {
			i, err := parseInt(a[1], store.ErrStartIndexNotInteger)
			if err != nil {
				return store.Value{}, err
			}
			j, err := parseInt(a[2], store.ErrStopIndexNotInteger)
			if err != nil {
				return store.Value{}, err
			}
			return st.LRange(string(a[0]), i, j)
		},
	},
	"ltrim": {
		Name: "ltrim", Shape: exact(3), Syntax: "LTRIM key start stop",
		Doc:   "Keep only the inclusive range [start,stop] of the list at key.",
		Flags: FlagWrite,
		Handler: func(st *store.Store, a [][]byte) (store.Value, error) {
			i, err := parseInt(a[1], store.ErrStartIndexNotInteger)
			if err != nil {
				return store.Value{}, err
			}
			j, err := parseInt(a[2], store.ErrStopIndexNotInteger)
			if err != nil {
				return store.Value{}, err
			}
			return st.LTrim(string(a[0]), i, j)
		},
	},
	"lset": {
		Name: "lset", Shape: exact(3), Syntax: "LSET key index value",
		Doc:   "Set the element at the given signed index in the list at key.",
		Flags: FlagWrite,
		Handler: func(st *store.Store, a [][]byte) (store.Value, error) {
			i, err := parseInt(a[1], store.ErrIndexNotInteger)
			if err != nil {
				return store.Value{}, err
			}
			return st.LSet(string(a[0]), i, string(a[2]))
		},
	},
	"linsert": {
		Name: "linsert", Shape: exact(4), Syntax: "LINSERT key BEFORE|AFTER pivot value",
		Doc:   "Insert value immediately before or after the first occurrence of pivot.",
		Flags: FlagWrite,
		Handler: func(st *store.Store, a [][]byte) (store.Value, error) {
			var before bool
			switch strings.ToLower(string(a[1])) {
			case "before":
				before = true
			case "after":
				before = false
			default:
				return store.Value{}, store.ErrSyntax
			}
			return st.LInsert(string(a[0]), before, string(a[2]), string(a[3]))
		},
	},
	"lrem": {
		Name: "lrem", Shape: exact(3), Syntax: "LREM key count value",
		Doc:   "Remove up to |count| occurrences of value from the list at key.",
		Flags: FlagWrite,
		Handler: func(st *store.Store, a [][]byte) (store.Value, error) {
			n, err := parseInt(a[1], store.ErrCountNotInteger)
			if err != nil {
				return store.Value{}, err
			}
			return st.LRem(string(a[0]), n, string(a[2]))
		},
	},
	"llen": {
		Name: "llen", Shape: exact(1), Syntax: "LLEN key",
		Doc:   "Report the number of elements in the list at key.",
		Flags: FlagReadOnly,
		Handler: func(st *store.Store, a [][]byte) (store.Value, error) {
			return st.LLen(string(a[0]))
		},
	},

	"sadd": {
		Name: "sadd", Shape: atLeast(2), Syntax: "SADD key member [member ...]",
		Doc:   "Add the given members to the set at key, creating it on miss.",
		Flags: FlagWrite | FlagVariadic,
		Handler: func(st *store.Store, a [][]byte) (store.Value, error) {
			return st.SAdd(string(a[0]), argStrs(a[1:]))
		},
	},
	"scard": {
		Name: "scard", Shape: exact(1), Syntax: "SCARD key",
		Doc:   "Report the cardinality of the set at key.",
		Flags: FlagReadOnly,
		Handler: func(st *store.Store, a [][]byte) (store.Value, error) {
			return st.SCard(string(a[0]))
		},
	},
	"sismember": {
		Name: "sismember", Shape: exact(2), Syntax: "SISMEMBER key member",
		Doc:   "Report whether member is in the set at key.",
		Flags: FlagReadOnly,
		Handler: func(st *store.Store, a [][]byte) (store.Value, error) {
			return st.SIsMember(string(a[0]), string(a[1]))
		},
	},
	"smismember": {
		Name: "smismember", Shape: atLeast(2), Syntax: "SMISMEMBER key member [member ...]",
		Doc:   "Report, for each member, whether it is in the set at key.",
		Flags: FlagReadOnly | FlagVariadic,
		Handler: func(st *store.Store, a [][]byte) (store.Value, error) {
			return st.SMIsMember(string(a[0]), argStrs(a[1:]))
		},
	},
	"smembers": {
		Name: "smembers", Shape: exact(1), Syntax: "SMEMBERS key",
		Doc:   "List every member of the set at key.",
		Flags: FlagReadOnly,
		Handler: func(st *store.Store, a [][]byte) (store.Value, error) {
			return st.SMembers(string(a[0]))
		},
	},
	"srem": {
		Name: "srem", Shape: atLeast(2), Syntax: "SREM key member [member ...]",
		Doc:   "Remove the given members from the set at key.",
		Flags: FlagWrite | FlagVariadic,
		Handler: func(st *store.Store, a [][]byte) (store.Value, error) {
			return st.SRem(string(a[0]), argStrs(a[1:]))
		},
	},
	"spop": {
		Name: "spop", Shape: between(1, 2), Syntax: "SPOP key [count]",
		Doc:   "Remove and return count random members from the set at key.",
		Flags: FlagWrite,
		Handler: spopHandler,
	},
	"srandmember": {
		Name: "srandmember", Shape: exact(2), Syntax: "SRANDMEMBER key count",
		Doc:   "Return up to count random members of the set at key, without removing them.",
		Flags: FlagReadOnly,
		Handler: func(st *store.Store, a [][]byte) (store.Value, error) {
			count, err := parseInt(a[1], store.ErrNumberNotInteger)
			if err != nil {
				return store.Value{}, err
			}
			members, err := st.SRandMember(string(a[0]), count)
			if err != nil {
				return store.Value{}, err
			}
			return store.List(members), nil
		},
	},
	"smove": {
		Name: "smove", Shape: exact(3), Syntax: "SMOVE source destination member",
		Doc:   "Move member from the set at source to the set at destination.",
		Flags: FlagWrite,
		Handler: func(st *store.Store, a [][]byte) (store.Value, error) {
			return st.SMove(string(a[0]), string(a[1]), string(a[2]))
		},
	},
	"sinter": {
		Name: "sinter", Shape: atLeast(1), Syntax: "SINTER key [key ...]",
		Doc:   "Return the intersection of the given sets.",
		Flags: FlagReadOnly | FlagVariadic,
		Handler: func(st *store.Store, a [][]byte) (store.Value, error) {
			return st.SInter(argStrs(a))
		},
	},
	"sunion": {
		Name: "sunion", Shape: atLeast(1), Syntax: "SUNION key [key ...]",
		Doc:   "Return the union of the given sets.",
		Flags: FlagReadOnly | FlagVariadic,
		Handler: func(st *store.Store, a [][]byte) (store.Value, error) {
			return st.SUnion(argStrs(a))
		},
	},
	"sdiff": {
		Name: "sdiff", Shape: atLeast(1), Syntax: "SDIFF key [key ...]",
		Doc:   "Return the first set minus every subsequent set.",
		Flags: FlagReadOnly | FlagVariadic,
		Handler: func(st *store.Store, a [][]byte) (store.Value, error) {
			return st.SDiff(argStrs(a))
		},
	},
	"sinterstore": {
		Name: "sinterstore", Shape: atLeast(2), Syntax: "SINTERSTORE destination key [key ...]",
		Doc:   "Store the intersection of the given sets at destination.",
		Flags: FlagWrite | FlagVariadic,
		Handler: func(st *store.Store, a [][]byte) (store.Value, error) {
			return st.SInterStore(string(a[0]), argStrs(a[1:]))
		},
	},
	"sunionstore": {
		Name: "sunionstore", Shape: atLeast(2), Syntax: "SUNIONSTORE destination key [key ...]",
		Doc:   "Store the union of the given sets at destination.",
		Flags: FlagWrite | FlagVariadic,
		Handler: func(st *store.Store, a [][]byte) (store.Value, error) {
			return st.SUnionStore(string(a[0]), argStrs(a[1:]))
		},
	},
	"sdiffstore": {
		Name: "sdiffstore", Shape: atLeast(2), Syntax: "SDIFFSTORE destination key [key ...]",
		Doc:   "Store the first set minus every subsequent set at destination.",
		Flags: FlagWrite | FlagVariadic,
		Handler: func(st *store.Store, a [][]byte) (store.Value, error) {
			return st.SDiffStore(string(a[0]), argStrs(a[1:]))
		},
	},

	"help": {
		Name: "help", Shape: between(0, 1), Syntax: "HELP [command]",
		Doc:     "List every command, or describe one.",
		Handler: helpHandler,
	},
	"quit": {
		Name: "quit", Shape: exact(0), Syntax: "QUIT",
		Doc:     "Reply OK and close the connection.",
		Handler: func(st *store.Store, a [][]byte) (store.Value, error) {
			return store.SimpleString("OK"), nil
		},
	},
	"client": {
		Name: "client", Shape: atLeast(1), Syntax: "CLIENT subcommand [arg ...]",
		Doc:     "Accept (and ignore) client metadata subcommands such as SETINFO.",
		Handler: func(st *store.Store, a [][]byte) (store.Value, error) {
			return store.SimpleString("OK"), nil
		},
	},
}

// spopHandler decides whether SPOP's reply is a bare BulkString or a List:
// that decision belongs here, one layer above store.Store.SPop, which
// always returns a slice. SPOP key (no count) replies with a single
// BulkString (or Null if the set was empty); SPOP key count always replies
// with a List, even for count 1.
func spopHandler(st *store.Store, a [][]byte) (store.Value, error) {
	key := string(a[0])
	n := int64(1)
	single := true
	if len(a) == 2 {
		single = false
		var err error
		if n, err = parsePositiveCount(a[1]); err != nil {
			return store.Value{}, err
		}
	}
	popped, err := st.SPop(key, n)
	if err != nil {
		return store.Value{}, err
	}
	if single {
		if len(popped) == 0 {
			return store.Null(), nil
		}
		return popped[0], nil
	}
	return store.List(popped), nil
}

func helpHandler(st *store.Store, a [][]byte) (store.Value, error) {
	if len(a) == 0 {
		names := make([]string, 0, len(Table))
		for n := range Table {
			names = append(names, n)
		}
		sort.Strings(names)
		out := make([]store.Value, len(names))
		for i, n := range names {
			out[i] = store.BulkString(n)
		}
		return store.List(out), nil
	}
	name := strings.ToLower(string(a[0]))
	cmd, ok := Table[name]
	if !ok {
		return store.SimpleError(fmt.Sprintf("ERR unknown command %q", name)), nil
	}
	return store.BulkString(fmt.Sprintf("%s\n%s\n(%d behavior flag(s))", cmd.Syntax, cmd.Doc, cmd.Flags.Len())), nil
}
