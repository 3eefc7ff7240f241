package store

import "math/rand"

// SAdd inserts the given members into the Set at key (creating it on miss),
// returning the count of members not already present.
func (s *Store) SAdd(key string, members []string) (Value, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	set, err := s.getTyped(key, KindSet)
	if err != nil {
		return Value{}, err
	}
	if set.IsNull() {
		set = NewSet()
	}
	var n int64
	for _, m := range members {
		v := BulkString(m)
		hk, _ := v.HashKey()
		if _, exists := set.Set[hk]; exists {
			continue
		}
		set.Set[hk] = v
		set.SetOrder = append(set.SetOrder, hk)
		n++
	}
	s.m[key] = set
	return Integer(n), nil
}

// SCard reports the cardinality of the Set at key.
func (s *Store) SCard(key string) (Value, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	set, err := s.getTyped(key, KindSet)
	if err != nil {
		return Value{}, err
	}
	if set.IsNull() {
		return Integer(0), nil
	}
	return Integer(int64(len(set.Set))), nil
}

// SIsMember reports whether member is in the Set at key.
func (s *Store) SIsMember(key, member string) (Value, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	set, err := s.getTyped(key, KindSet)
	if err != nil {
		return Value{}, err
	}
	if set.IsNull() {
		return Integer(0), nil
	}
	hk, _ := BulkString(member).HashKey()
	if _, ok := set.Set[hk]; ok {
		return Integer(1), nil
	}
	return Integer(0), nil
}

// SMIsMember reports, for each requested member, whether it is in the Set at key.
func (s *Store) SMIsMember(key string, members []string) (Value, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	set, err := s.getTyped(key, KindSet)
	if err != nil {
		return Value{}, err
	}
	out := make([]Value, len(members))
	for i, m := range members {
		if set.IsNull() {
			out[i] = Integer(0)
			continue
		}
		hk, _ := BulkString(m).HashKey()
		if _, ok := set.Set[hk]; ok {
			out[i] = Integer(1)
		} else {
			out[i] = Integer(0)
		}
	}
	return List(out), nil
}

// SMembers returns every member of the Set at key.
func (s *Store) SMembers(key string) (Value, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	set, err := s.getTyped(key, KindSet)
	if err != nil {
		return Value{}, err
	}
	if set.IsNull() {
		return EmptyList(), nil
	}
	out := make([]Value, 0, len(set.SetOrder))
	for _, hk := range set.SetOrder {
		out = append(out, set.Set[hk])
	}
	return List(out), nil
}

// SRem removes the named members from the Set at key, returning the count
// removed, and auto-pruning the key if it becomes empty.
func (s *Store) SRem(key string, members []string) (Value, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	set, err := s.getTyped(key, KindSet)
	if err != nil {
		return Value{}, err
	}
	if set.IsNull() {
		return Integer(0), nil
	}
	var n int64
	for _, m := range members {
		hk, _ := BulkString(m).HashKey()
		if _, ok := set.Set[hk]; ok {
			delete(set.Set, hk)
			set.SetOrder = removeString(set.SetOrder, hk)
			n++
		}
	}
	s.putOrPrune(key, set)
	return Integer(n), nil
}

// SPop samples up to n distinct members uniformly at random without
// replacement, removes them, and returns them. The caller (command/table.go)
// decides whether the reply is a bare BulkString or a List, depending on
// whether the client's request supplied an explicit count.
func (s *Store) SPop(key string, n int64) ([]Value, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	set, err := s.getTyped(key, KindSet)
	if err != nil {
		return nil, err
	}
	if set.IsNull() || n <= 0 {
		return nil, nil
	}
	if n > int64(len(set.SetOrder)) {
		n = int64(len(set.SetOrder))
	}
	order := append([]string(nil), set.SetOrder...)
	rand.Shuffle(len(order), func(i, j int) { order[i], order[j] = order[j], order[i] })
	picked := order[:n]
	out := make([]Value, len(picked))
	for i, hk := range picked {
		out[i] = set.Set[hk]
		delete(set.Set, hk)
		set.SetOrder = removeString(set.SetOrder, hk)
	}
	s.putOrPrune(key, set)
	return out, nil
}

// SRandMember samples members of the Set at key without removing them. If
// count >= 0 it returns up to count distinct members (all of them if the set
// is smaller); if count < 0 it returns exactly |count| members, possibly
// with duplicates. count == 0 returns an empty List.
func (s *Store) SRandMember(key string, count int64) ([]Value, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	set, err := s.getTyped(key, KindSet)
	if err != nil {
		return nil, err
	}
	if set.IsNull() || count == 0 || len(set.SetOrder) == 0 {
		return nil, nil
	}
	if count > 0 {
		n := count
		if n > int64(len(set.SetOrder)) {
			n = int64(len(set.SetOrder))
		}
		order := append([]string(nil), set.SetOrder...)
		rand.Shuffle(len(order), func(i, j int) { order[i], order[j] = order[j], order[i] })
		out := make([]Value, n)
		for i := int64(0); i < n; i++ {
			out[i] = set.Set[order[i]]
		}
		return out, nil
	}
	n := -count
	out := make([]Value, n)
	for i := int64(0); i < n; i++ {
		hk := set.SetOrder[rand.Intn(len(set.SetOrder))]
		out[i] = set.Set[hk]
	}
	return out, nil
}

// SMove moves member v from src to dst (creating dst if needed), returning 1
// if it was present in src, 0 otherwise. Auto-prunes src if it becomes empty.
func (s *Store) SMove(src, dst, member string) (Value, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	srcSet, err := s.getTyped(src, KindSet)
	if err != nil {
		return Value{}, err
	}
	if srcSet.IsNull() {
		return Integer(0), nil
	}
	hk, _ := BulkString(member).HashKey()
	v, ok := srcSet.Set[hk]
	if !ok {
		return Integer(0), nil
	}
	dstSet, err := s.getTyped(dst, KindSet)
	if err != nil {
		return Value{}, err
	}
	if dstSet.IsNull() {
		dstSet = NewSet()
	}
	delete(srcSet.Set, hk)
	srcSet.SetOrder = removeString(srcSet.SetOrder, hk)
	s.putOrPrune(src, srcSet)

	if _, exists := dstSet.Set[hk]; !exists {
		dstSet.Set[hk] = v
		dstSet.SetOrder = append(dstSet.SetOrder, hk)
	}
	s.m[dst] = dstSet
	return Integer(1), nil
}

// SInter returns the intersection of the named sets. Missing keys are
// treated as empty; a wrong-typed key is ErrWrongType.
func (s *Store) SInter(keys []string) (Value, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sets, err := s.loadSets(keys)
	if err != nil {
		return Value{}, err
	}
	return setToValue(intersectSets(sets)), nil
}

// SUnion returns the union of the named sets.
func (s *Store) SUnion(keys []string) (Value, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sets, err := s.loadSets(keys)
	if err != nil {
		return Value{}, err
	}
	return setToValue(unionSets(sets)), nil
}

// SDiff returns keys[0] minus every subsequent set.
func (s *Store) SDiff(keys []string) (Value, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sets, err := s.loadSets(keys)
	if err != nil {
		return Value{}, err
	}
	return setToValue(diffSets(sets)), nil
}

// SInterStore / SUnionStore / SDiffStore compute the corresponding set
// operation and store the result at dst, returning its cardinality.
func (s *Store) SInterStore(dst string, keys []string) (Value, error) {
	return s.storeSetOp(dst, keys, intersectSets)
}
func (s *Store) SUnionStore(dst string, keys []string) (Value, error) {
	return s.storeSetOp(dst, keys, unionSets)
}
func (s *Store) SDiffStore(dst string, keys []string) (Value, error) {
	return s.storeSetOp(dst, keys, diffSets)
}

func (s *Store) storeSetOp(dst string, keys []string, op func([]map[string]Value) map[string]Value) (Value, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sets, err := s.loadSets(keys)
	if err != nil {
		return Value{}, err
	}
	result := op(sets)
	v := setToValue(result)
	s.putOrPrune(dst, v)
	return Integer(int64(len(result))), nil
}

// loadSets reads each named key as a Set (missing -> empty map). Caller must
// hold mu.
func (s *Store) loadSets(keys []string) ([]map[string]Value, error) {
	sets := make([]map[string]Value, len(keys))
	for i, k := range keys {
		set, err := s.getTyped(k, KindSet)
		if err != nil {
			return nil, err
		}
		if set.IsNull() {
			sets[i] = map[string]Value{}
		} else {
			sets[i] = set.Set
		}
	}
	return sets, nil
}

func intersectSets(sets []map[string]Value) map[string]Value {
	out := map[string]Value{}
	if len(sets) == 0 {
		return out
	}
	for hk, v := range sets[0] {
		in := true
		for _, other := range sets[1:] {
			if _, ok := other[hk]; !ok {
				in = false
				break
			}
		}
		if in {
			out[hk] = v
		}
	}
	return out
}

func unionSets(sets []map[string]Value) map[string]Value {
	out := map[string]Value{}
	for _, set := range sets {
		for hk, v := range set {
			out[hk] = v
		}
	}
	return out
}

func diffSets(sets []map[string]Value) map[string]Value {
	out := map[string]Value{}
	if len(sets) == 0 {
		return out
	}
	for hk, v := range sets[0] {
		out[hk] = v
	}
	for _, set := range sets[1:] {
		for hk := range set {
			delete(out, hk)
		}
	}
	return out
}

func setToValue(members map[string]Value) Value {
	v := NewSet()
	for hk, mv := range members {
		v.Set[hk] = mv
		v.SetOrder = append(v.SetOrder, hk)
	}
	return v
}
