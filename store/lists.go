package store

// LPush / RPush prepend/append elements, creating the List at key on miss,
// and return the new length.
func (s *Store) LPush(key string, elems []string) (Value, error) { return s.push(key, elems, true, true) }
func (s *Store) RPush(key string, elems []string) (Value, error) { return s.push(key, elems, false, true) }

// LPushX / RPushX behave like LPush/RPush but never create the List: if the
// key is absent they return 0 without touching the store.
func (s *Store) LPushX(key string, elems []string) (Value, error) { return s.push(key, elems, true, false) }
func (s *Store) RPushX(key string, elems []string) (Value, error) { return s.push(key, elems, false, false) }

func (s *Store) push(key string, elems []string, front, createOnMiss bool) (Value, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	l, err := s.getTyped(key, KindList)
	if err != nil {
		return Value{}, err
	}
	if l.IsNull() {
		if !createOnMiss {
			return Integer(0), nil
		}
		l = List(nil)
		l.Kind = KindList
	}
	vals := make([]Value, len(elems))
	for i, e := range elems {
		vals[i] = BulkString(e)
	}
	if front {
		// each successive element is pushed to the head, so the last arg
		// ends up first -- matches the usual lpush ordering convention.
		l.List = append(reverseValues(vals), l.List...)
	} else {
		l.List = append(l.List, vals...)
	}
	s.m[key] = l
	return Integer(int64(len(l.List))), nil
}

func reverseValues(vs []Value) []Value {
	out := make([]Value, len(vs))
	for i, v := range vs {
		out[len(vs)-1-i] = v
	}
	return out
}

// LPop / RPop remove and return up to n elements from the head/tail as a
// List, auto-pruning the key if it becomes empty. Null if the key is absent.
func (s *Store) LPop(key string, n int64) (Value, error) { return s.pop(key, n, true) }
func (s *Store) RPop(key string, n int64) (Value, error) { return s.pop(key, n, false) }

func (s *Store) pop(key string, n int64, front bool) (Value, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	l, err := s.getTyped(key, KindList)
	if err != nil {
		return Value{}, err
	}
	if l.IsNull() {
		return Null(), nil
	}
	if n > int64(len(l.List)) {
		n = int64(len(l.List))
	}
	var popped []Value
	if front {
		popped = append(popped, l.List[:n]...)
		l.List = l.List[n:]
	} else {
		tail := l.List[len(l.List)-int(n):]
		popped = append(popped, tail...)
		l.List = l.List[:len(l.List)-int(n)]
	}
	s.putOrPrune(key, l)
	return List(popped), nil
}

// LIndex returns the element at signed index i, or Null if out of range. A
// missing key deliberately returns Integer 0 rather than Null.
func (s *Store) LIndex(key string, i int64) (Value, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	l, err := s.getTyped(key, KindList)
	if err != nil {
		return Value{}, err
	}
	if l.IsNull() {
		return Integer(0), nil
	}
	idx := normalizeIndex(i, len(l.List))
	if idx < 0 || idx >= len(l.List) {
		return Null(), nil
	}
	return l.List[idx], nil
}

// LRange returns elements [i..j] with both endpoints signed and j inclusive,
// clamped to the list's bounds.
func (s *Store) LRange(key string, i, j int64) (Value, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	l, err := s.getTyped(key, KindList)
	if err != nil {
		return Value{}, err
	}
	if l.IsNull() {
		return EmptyList(), nil
	}
	start, stop := clampRange(i, j, len(l.List))
	if start > stop {
		return EmptyList(), nil
	}
	out := make([]Value, stop-start+1)
	copy(out, l.List[start:stop+1])
	return List(out), nil
}

// LTrim keeps only elements [i..j] (same clamping rules as LRange),
// auto-pruning the key if nothing remains.
func (s *Store) LTrim(key string, i, j int64) (Value, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	l, err := s.getTyped(key, KindList)
	if err != nil {
		return Value{}, err
	}
	if l.IsNull() {
		return SimpleString("OK"), nil
	}
	start, stop := clampRange(i, j, len(l.List))
	if start > stop {
		l.List = nil
	} else {
		l.List = append([]Value(nil), l.List[start:stop+1]...)
	}
	s.putOrPrune(key, l)
	return SimpleString("OK"), nil
}

// LSet replaces the element at signed index i with e. ErrNoSuchKey if key is
// absent, ErrIndexOutOfRange if i is out of bounds.
func (s *Store) LSet(key string, i int64, e string) (Value, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	l, err := s.getTyped(key, KindList)
	if err != nil {
		return Value{}, err
	}
	if l.IsNull() {
		return Value{}, ErrNoSuchKey
	}
	idx := normalizeIndex(i, len(l.List))
	if idx < 0 || idx >= len(l.List) {
		return Value{}, ErrIndexOutOfRange
	}
	l.List[idx] = BulkString(e)
	s.m[key] = l
	return SimpleString("OK"), nil
}

// LInsert inserts e immediately before or after the first element equal to
// pivot (direction is case-insensitive). Returns the new length, -1 if pivot
// was not found, or 0 if the key is absent.
func (s *Store) LInsert(key string, before bool, pivot, e string) (Value, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	l, err := s.getTyped(key, KindList)
	if err != nil {
		return Value{}, err
	}
	if l.IsNull() {
		return Integer(0), nil
	}
	pos := -1
	for i, v := range l.List {
		if v.Kind == KindBulkString && v.Str == pivot {
			pos = i
			break
		}
	}
	if pos < 0 {
		return Integer(-1), nil
	}
	if !before {
		pos++
	}
	l.List = append(l.List, Value{})
	copy(l.List[pos+1:], l.List[pos:])
	l.List[pos] = BulkString(e)
	s.m[key] = l
	return Integer(int64(len(l.List))), nil
}

// LRem removes up to |count| occurrences of e: from the head if count > 0,
// from the tail if count < 0, or all occurrences if count == 0. Auto-prunes
// the key if it becomes empty. A missing key removes nothing and reports
// Integer 0, the conventional "count removed" reply.
func (s *Store) LRem(key string, count int64, e string) (Value, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	l, err := s.getTyped(key, KindList)
	if err != nil {
		return Value{}, err
	}
	if l.IsNull() {
		return Integer(0), nil
	}
	var removed int64
	out := make([]Value, 0, len(l.List))
	matches := func(v Value) bool { return v.Kind == KindBulkString && v.Str == e }
	switch {
	case count == 0:
		for _, v := range l.List {
			if matches(v) {
				removed++
				continue
			}
			out = append(out, v)
		}
	case count > 0:
		for _, v := range l.List {
			if removed < count && matches(v) {
				removed++
				continue
			}
			out = append(out, v)
		}
	default:
		limit := -count
		for i := len(l.List) - 1; i >= 0; i-- {
			v := l.List[i]
			if removed < limit && matches(v) {
				removed++
				continue
			}
			out = append([]Value{v}, out...)
		}
	}
	l.List = out
	s.putOrPrune(key, l)
	return Integer(removed), nil
}

// LLen reports the number of elements in the List at key.
func (s *Store) LLen(key string) (Value, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	l, err := s.getTyped(key, KindList)
	if err != nil {
		return Value{}, err
	}
	if l.IsNull() {
		return Integer(0), nil
	}
	return Integer(int64(len(l.List))), nil
}

// normalizeIndex resolves a signed index against length n (Python
// convention: negative counts from the tail) without clamping.
func normalizeIndex(i int64, n int) int {
	if i < 0 {
		i += int64(n)
	}
	return int(i)
}

// clampRange resolves and clamps i, j (as in LRange/LTrim) to [0, n-1].
func clampRange(i, j int64, n int) (start, stop int) {
	start = normalizeIndex(i, n)
	stop = normalizeIndex(j, n)
	if start < 0 {
		start = 0
	}
	if stop > n-1 {
		stop = n - 1
	}
	return start, stop
}
