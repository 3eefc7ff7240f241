package store

import (
	"errors"
	"sync"
)

// Callers encode these as SimpleError replies. Several otherwise-similar
// messages are deliberately kept distinct (e.g. ErrStartIndexNotInteger vs.
// ErrStopIndexNotInteger vs. ErrIndexNotInteger) since each names a
// different argument position.
var (
	ErrWrongType              = errors.New("WRONGTYPE Operation against a key holding the wrong kind of value")
	ErrNotIntegerRange        = errors.New("ERR Value is not an integer or out of range")
	ErrNotInteger             = errors.New("ERR Value is not an integer")
	ErrNotPositiveInt         = errors.New("ERR Number is not a positive integer")
	ErrNumberNotInteger       = errors.New("ERR Number is not an integer")
	ErrCountNotInteger        = errors.New("ERR Count is not an integer")
	ErrIndexNotInteger        = errors.New("ERR Index is not an integer")
	ErrStartIndexNotInteger   = errors.New("ERR Start index is not an integer")
	ErrStopIndexNotInteger    = errors.New("ERR Stop index is not an integer")
	ErrIndexOutOfRange        = errors.New("ERR Index out of range")
	ErrSyntax                 = errors.New("ERR Syntax error")
	ErrNoSuchKey              = errors.New("ERR No such key")
	ErrOddArgs                = errors.New("ERR Number of elements is not multiple of 2")
)

// Store is the single process-wide mapping from key to Value. It is
// guarded by one coarse mutex: every command handler acquires it for the
// handler's entire duration, keeping critical sections short and avoiding
// any nested-lock deadlock risk.
type Store struct {
	mu sync.Mutex
	m  map[string]Value
}

// New creates an empty Store.
func New() *Store {
	return &Store{m: make(map[string]Value)}
}

// get returns the value at key and whether it was present. Caller must hold mu.
func (s *Store) get(key string) (Value, bool) {
	v, ok := s.m[key]
	return v, ok
}

// getTyped returns the value at key if present and of kind k (or KindNull if
// absent). If present but of a different, non-null kind, it returns
// ErrWrongType. Caller must hold mu.
func (s *Store) getTyped(key string, k Kind) (Value, error) {
	v, ok := s.m[key]
	if !ok {
		return Value{Kind: KindNull}, nil
	}
	if v.Kind != k {
		return Value{}, ErrWrongType
	}
	return v, nil
}

// putOrPrune writes v at key, unless v is an empty container, in which case
// the key is deleted entirely (auto-prune). Caller must hold mu.
func (s *Store) putOrPrune(key string, v Value) {
	if isEmptyContainer(v) {
		delete(s.m, key)
		return
	}
	s.m[key] = v
}

func isEmptyContainer(v Value) bool {
	switch v.Kind {
	case KindList, KindEmptyList:
		return len(v.List) == 0
	case KindMap:
		return len(v.Map) == 0
	case KindSet:
		return len(v.Set) == 0
	}
	return false
}

// Del removes each of the given keys, returning the count actually removed.
func (s *Store) Del(keys []string) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	var n int64
	for _, k := range keys {
		if _, ok := s.m[k]; ok {
			delete(s.m, k)
			n++
		}
	}
	return n
}

// Keys returns every key matching the regular expression pat, or a
// SimpleError value if pat fails to compile.
func (s *Store) Keys(pat string) Value {
	re, err := compileKeyPattern(pat)
	if err != nil {
		return SimpleError("ERR " + err.Error())
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Value, 0, len(s.m))
	for k := range s.m {
		if re.MatchString(k) {
			out = append(out, BulkString(k))
		}
	}
	return List(out)
}

// ForEach calls fn once per key currently in the store, holding the lock for
// the whole scan. fn must not call back into s.
func (s *Store) ForEach(fn func(key string, v Value)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for k, v := range s.m {
		fn(k, v)
	}
}

// memsize reports the store's total synthetic size, used by Info: the sum
// over every key of its byte length plus its value's Capacity. Caller must
// hold mu.
func (s *Store) memsize() int64 {
	var n int64
	for k, v := range s.m {
		n += int64(len(k)) + v.Capacity()
	}
	return n
}
