package store

import "strconv"

// Set unconditionally writes val at key.
func (s *Store) Set(key, val string) Value {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.m[key] = BulkString(val)
	return SimpleString("OK")
}

// Get returns the BulkString at key, Null if absent, or ErrWrongType if the
// key holds a non-string value.
func (s *Store) Get(key string) (Value, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.getTyped(key, KindBulkString)
}

// Append concatenates val onto the string at key, creating it if absent, and
// returns the new length.
func (s *Store) Append(key, val string) (Value, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	cur, err := s.getTyped(key, KindBulkString)
	if err != nil {
		return Value{}, err
	}
	next := cur.Str + val
	s.m[key] = BulkString(next)
	return Integer(int64(len(next))), nil
}

// MGet returns one element per requested key: the BulkString value if the
// key holds a string, else Null (absent or wrong type -- never an error).
func (s *Store) MGet(keys []string) Value {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Value, len(keys))
	for i, k := range keys {
		if v, ok := s.m[k]; ok && v.Kind == KindBulkString {
			out[i] = v
		} else {
			out[i] = Null()
		}
	}
	return List(out)
}

// MSet writes every key/value pair unconditionally. pairs must have even
// length; ErrOddArgs otherwise.
func (s *Store) MSet(pairs []string) (Value, error) {
	if len(pairs)%2 != 0 {
		return Value{}, ErrOddArgs
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := 0; i < len(pairs); i += 2 {
		s.m[pairs[i]] = BulkString(pairs[i+1])
	}
	return SimpleString("OK"), nil
}

// GetDel reads the current string value (or Null), then deletes the key.
func (s *Store) GetDel(key string) (Value, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	cur, err := s.getTyped(key, KindBulkString)
	if err != nil {
		return Value{}, err
	}
	delete(s.m, key)
	return cur, nil
}

// GetSet reads the current string value (or Null), then overwrites it with val.
func (s *Store) GetSet(key, val string) (Value, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	cur, err := s.getTyped(key, KindBulkString)
	if err != nil {
		return Value{}, err
	}
	s.m[key] = BulkString(val)
	return cur, nil
}

// Incr increments the integer stored at key (absent treated as 0) by 1.
func (s *Store) Incr(key string) (Value, error) { return s.incrBy(key, 1) }

// Decr decrements the integer stored at key (absent treated as 0) by 1.
func (s *Store) Decr(key string) (Value, error) { return s.incrBy(key, -1) }

// IncrBy increments the integer stored at key by n.
func (s *Store) IncrBy(key string, n int64) (Value, error) { return s.incrBy(key, n) }

// DecrBy decrements the integer stored at key by n.
func (s *Store) DecrBy(key string, n int64) (Value, error) { return s.incrBy(key, -n) }

func (s *Store) incrBy(key string, delta int64) (Value, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	cur, err := s.getTyped(key, KindBulkString)
	if err != nil {
		return Value{}, err
	}
	var base int64
	if !cur.IsNull() {
		base, err = strconv.ParseInt(cur.Str, 10, 64)
		if err != nil {
			return Value{}, ErrNotIntegerRange
		}
	}
	next := base + delta
	// overflow check: if delta>0 result must be >= base, if delta<0 result must be <= base
	if (delta > 0 && next < base) || (delta < 0 && next > base) {
		return Value{}, ErrNotIntegerRange
	}
	s.m[key] = BulkString(strconv.FormatInt(next, 10))
	return Integer(next), nil
}
