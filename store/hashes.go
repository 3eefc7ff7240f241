package store

import "strconv"

// HSet writes the given field/value pairs into the Map at key (creating it
// on miss), returning the count of pairs applied. pairs must have even length.
func (s *Store) HSet(key string, pairs []string) (Value, error) {
	if len(pairs)%2 != 0 {
		return Value{}, ErrOddArgs
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	m, err := s.getTyped(key, KindMap)
	if err != nil {
		return Value{}, err
	}
	if m.IsNull() {
		m = NewMap()
	}
	var n int64
	for i := 0; i < len(pairs); i += 2 {
		field, val := pairs[i], pairs[i+1]
		if _, exists := m.Map[field]; !exists {
			m.MapOrder = append(m.MapOrder, field)
		}
		m.Map[field] = BulkString(val)
		n++
	}
	s.m[key] = m
	return Integer(n), nil
}

// HSetNX is like HSet, but only inserts fields that do not already exist,
// returning the count of newly inserted fields.
func (s *Store) HSetNX(key string, pairs []string) (Value, error) {
	if len(pairs)%2 != 0 {
		return Value{}, ErrOddArgs
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	m, err := s.getTyped(key, KindMap)
	if err != nil {
		return Value{}, err
	}
	if m.IsNull() {
		m = NewMap()
	}
	var n int64
	for i := 0; i < len(pairs); i += 2 {
		field, val := pairs[i], pairs[i+1]
		if _, exists := m.Map[field]; exists {
			continue
		}
		m.MapOrder = append(m.MapOrder, field)
		m.Map[field] = BulkString(val)
		n++
	}
	s.m[key] = m
	return Integer(n), nil
}

// HGet returns the BulkString at field in the Map at key, or Null if the
// field or key is absent.
func (s *Store) HGet(key, field string) (Value, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	m, err := s.getTyped(key, KindMap)
	if err != nil {
		return Value{}, err
	}
	if m.IsNull() {
		return Null(), nil
	}
	if v, ok := m.Map[field]; ok {
		return v, nil
	}
	return Null(), nil
}

// HGetAll returns the whole Map at key as a flat field,value,... List, the
// EmptyList marker if absent, or ErrWrongType if key holds a non-map value.
func (s *Store) HGetAll(key string) (Value, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	m, err := s.getTyped(key, KindMap)
	if err != nil {
		return Value{}, err
	}
	if m.IsNull() {
		return EmptyList(), nil
	}
	out := make([]Value, 0, len(m.Map)*2)
	for _, f := range m.MapOrder {
		out = append(out, BulkString(f), m.Map[f])
	}
	return List(out), nil
}

// HDel removes the named fields from the Map at key, returning the count
// removed, and auto-pruning the key if the Map becomes empty.
func (s *Store) HDel(key string, fields []string) (Value, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	m, err := s.getTyped(key, KindMap)
	if err != nil {
		return Value{}, err
	}
	if m.IsNull() {
		return Integer(0), nil
	}
	var n int64
	for _, f := range fields {
		if _, ok := m.Map[f]; ok {
			delete(m.Map, f)
			m.MapOrder = removeString(m.MapOrder, f)
			n++
		}
	}
	s.putOrPrune(key, m)
	return Integer(n), nil
}

// HExists reports whether field exists in the Map at key.
func (s *Store) HExists(key, field string) (Value, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	m, err := s.getTyped(key, KindMap)
	if err != nil {
		return Value{}, err
	}
	if m.IsNull() {
		return Integer(0), nil
	}
	if _, ok := m.Map[field]; ok {
		return Integer(1), nil
	}
	return Integer(0), nil
}

// HIncrBy adds n to the integer stored at field in the Map at key (treating
// an absent field as 0, and an absent key as a freshly created Map), and
// returns the new value. A non-numeric existing field is ErrNotIntegerRange,
// the same integer parse path shared with incrby.
func (s *Store) HIncrBy(key, field string, n int64) (Value, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	m, err := s.getTyped(key, KindMap)
	if err != nil {
		return Value{}, err
	}
	if m.IsNull() {
		m = NewMap()
	}
	var base int64
	if cur, ok := m.Map[field]; ok {
		base, err = strconv.ParseInt(cur.Str, 10, 64)
		if err != nil {
			return Value{}, ErrNotIntegerRange
		}
	} else {
		m.MapOrder = append(m.MapOrder, field)
	}
	next := base + n
	if (n > 0 && next < base) || (n < 0 && next > base) {
		return Value{}, ErrNotIntegerRange
	}
	m.Map[field] = BulkString(strconv.FormatInt(next, 10))
	s.m[key] = m
	return Integer(next), nil
}

// HKeys returns every field name in the Map at key.
func (s *Store) HKeys(key string) (Value, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	m, err := s.getTyped(key, KindMap)
	if err != nil {
		return Value{}, err
	}
	if m.IsNull() {
		return EmptyList(), nil
	}
	out := make([]Value, 0, len(m.MapOrder))
	for _, f := range m.MapOrder {
		out = append(out, BulkString(f))
	}
	return List(out), nil
}

// HVals returns every field value in the Map at key.
func (s *Store) HVals(key string) (Value, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	m, err := s.getTyped(key, KindMap)
	if err != nil {
		return Value{}, err
	}
	if m.IsNull() {
		return EmptyList(), nil
	}
	out := make([]Value, 0, len(m.MapOrder))
	for _, f := range m.MapOrder {
		out = append(out, m.Map[f])
	}
	return List(out), nil
}

// HMGet returns one element per requested field: the BulkString value, or
// Null if the field (or the whole key) is absent.
func (s *Store) HMGet(key string, fields []string) (Value, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	m, err := s.getTyped(key, KindMap)
	if err != nil {
		return Value{}, err
	}
	out := make([]Value, len(fields))
	for i, f := range fields {
		if !m.IsNull() {
			if v, ok := m.Map[f]; ok {
				out[i] = v
				continue
			}
		}
		out[i] = Null()
	}
	return List(out), nil
}

// HLen reports the number of fields in the Map at key.
func (s *Store) HLen(key string) (Value, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	m, err := s.getTyped(key, KindMap)
	if err != nil {
		return Value{}, err
	}
	if m.IsNull() {
		return Integer(0), nil
	}
	return Integer(int64(len(m.Map))), nil
}

func removeString(ss []string, target string) []string {
	for i, s := range ss {
		if s == target {
			return append(ss[:i], ss[i+1:]...)
		}
	}
	return ss
}
