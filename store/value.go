// Package store implements the polymorphic, in-memory key-value store: a
// single process-wide mapping from key to a tagged-union Value, mutated
// atomically per command under one coarse lock.
package store

import "fmt"

// Kind identifies which variant of the tagged union a Value holds.
type Kind int

const (
	KindNull Kind = iota
	KindSimpleString
	KindSimpleError
	KindBulkString
	KindBulkError
	KindInteger
	KindBigInteger
	KindDouble
	KindBoolean
	KindList
	KindEmptyList // distinct marker from a List of length 0
	KindMap
	KindSet
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindSimpleString:
		return "simple-string"
	case KindSimpleError:
		return "simple-error"
	case KindBulkString:
		return "bulk-string"
	case KindBulkError:
		return "bulk-error"
	case KindInteger:
		return "integer"
	case KindBigInteger:
		return "big-integer"
	case KindDouble:
		return "double"
	case KindBoolean:
		return "boolean"
	case KindList:
		return "list"
	case KindEmptyList:
		return "list"
	case KindMap:
		return "map"
	case KindSet:
		return "set"
	}
	return "unknown"
}

// Value is the tagged union of stored value kinds. Only the field(s)
// relevant to Kind are meaningful at any given time.
type Value struct {
	Kind Kind

	Str   string  // SimpleString, SimpleError, BulkString, BulkError
	Int   int64   // Integer
	Big   string  // BigInteger, stored pre-formatted in base 10 (no native int128 in Go)
	Float float64 // Double
	Bool  bool    // Boolean

	List []Value // List, EmptyList

	// Map holds field->value pairs. In practice only BulkString values are
	// used as Map keys, so the key is stored as a plain string.
	Map map[string]Value
	// MapOrder preserves hset insertion order so that command replies that
	// enumerate a Map (hkeys, hvals, hgetall) are stable across repeated calls
	// for a given process lifetime, even though Map iteration order is
	// otherwise unspecified.
	MapOrder []string

	// Set holds members keyed by their HashKey(). SetOrder preserves
	// insertion order for the same reason as MapOrder.
	Set      map[string]Value
	SetOrder []string
}

// Null is the absence-of-value sentinel.
func Null() Value { return Value{Kind: KindNull} }

func SimpleString(s string) Value { return Value{Kind: KindSimpleString, Str: s} }
func SimpleError(s string) Value  { return Value{Kind: KindSimpleError, Str: s} }
func BulkString(s string) Value   { return Value{Kind: KindBulkString, Str: s} }
func BulkError(s string) Value    { return Value{Kind: KindBulkError, Str: s} }
func Integer(i int64) Value       { return Value{Kind: KindInteger, Int: i} }
func BigInteger(s string) Value   { return Value{Kind: KindBigInteger, Big: s} }
func Double(f float64) Value      { return Value{Kind: KindDouble, Float: f} }
func Boolean(b bool) Value        { return Value{Kind: KindBoolean, Bool: b} }

func List(items []Value) Value {
	if len(items) == 0 {
		return EmptyList()
	}
	return Value{Kind: KindList, List: items}
}

// EmptyList constructs the distinct empty-list marker: wire-identical to a
// List of length zero ("*0\r\n") but distinguishable internally, used by
// commands like hgetall when the key is absent.
func EmptyList() Value { return Value{Kind: KindEmptyList, List: []Value{}} }

func NewMap() Value {
	return Value{Kind: KindMap, Map: make(map[string]Value)}
}

func NewSet() Value {
	return Value{Kind: KindSet, Set: make(map[string]Value)}
}

// IsContainer reports whether v is a List, Map or Set.
func (v Value) IsContainer() bool {
	switch v.Kind {
	case KindList, KindEmptyList, KindMap, KindSet:
		return true
	}
	return false
}

// IsNull reports whether v is the Null sentinel.
func (v Value) IsNull() bool { return v.Kind == KindNull }

// HashKey returns a canonical string encoding of v suitable for use as a Map
// key or Set member. Container values cannot be hashed: encoding one as a
// Map key or Set member is a programmer error, so HashKey returns an error
// instead of asserting, letting callers surface it as a store error.
func (v Value) HashKey() (string, error) {
	switch v.Kind {
	case KindNull:
		return "n", nil
	case KindSimpleString:
		return "s" + v.Str, nil
	case KindSimpleError:
		return "e" + v.Str, nil
	case KindBulkString:
		return "b" + v.Str, nil
	case KindBulkError:
		return "E" + v.Str, nil
	case KindInteger:
		return fmt.Sprintf("i%d", v.Int), nil
	case KindBigInteger:
		return "I" + v.Big, nil
	case KindDouble:
		return fmt.Sprintf("f%v", v.Float), nil
	case KindBoolean:
		if v.Bool {
			return "t", nil
		}
		return "F", nil
	}
	return "", fmt.Errorf("cannot hash container value of kind %s", v.Kind)
}

// Capacity reports the synthetic byte-size the info command sums over every
// key: a byte count for strings, a small fixed constant for scalars, and an
// element count plus recursive capacity for containers.
func (v Value) Capacity() int64 {
	switch v.Kind {
	case KindNull:
		return 0
	case KindSimpleString, KindSimpleError, KindBulkString, KindBulkError:
		return int64(len(v.Str))
	case KindInteger:
		return 8
	case KindBigInteger:
		return int64(len(v.Big))
	case KindDouble:
		return 8
	case KindBoolean:
		return 1
	case KindList, KindEmptyList:
		var n int64
		for _, e := range v.List {
			n += e.Capacity()
		}
		return n + int64(len(v.List))
	case KindMap:
		var n int64
		for k, mv := range v.Map {
			n += int64(len(k)) + mv.Capacity()
		}
		return n + int64(len(v.Map))
	case KindSet:
		var n int64
		for _, sv := range v.Set {
			n += sv.Capacity()
		}
		return n + int64(len(v.Set))
	}
	return 0
}
