package server

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rsms/go-testutil"

	"github.com/shinkou/kyvi/store"
)

// Snapshot/replay must round-trip to a fixed point: dump, empty, replay the
// dump, dump again -- the two dumps must describe the same store. List
// order must survive; map/set order need not.
func TestSnapshotReplayFixedPoint(t *testing.T) {
	assert := testutil.NewAssert(t)

	st := store.New()
	st.Set("str", "hello")
	st.RPush("list", []string{"a", "b", "c"})
	st.HSet("hash", []string{"f1", "v1", "f2", "v2"})
	st.SAdd("set", []string{"x", "y"})

	path := filepath.Join(t.TempDir(), "snap.resp")

	err := Snapshot(st, path)
	assert.Ok("snapshot err", err == nil)

	loaded := store.New()
	Replay(loaded, path)

	assertStoresEquivalent(t, assert, st, loaded)

	path2 := filepath.Join(t.TempDir(), "snap2.resp")
	err = Snapshot(loaded, path2)
	assert.Ok("snapshot2 err", err == nil)

	reloaded := store.New()
	Replay(reloaded, path2)

	assertStoresEquivalent(t, assert, st, reloaded)
}

func assertStoresEquivalent(t *testing.T, assert *testutil.Assert, a, b *store.Store) {
	var keysA []string
	a.ForEach(func(key string, v store.Value) { keysA = append(keysA, key) })

	for _, key := range keysA {
		var va, vb store.Value
		a.ForEach(func(k string, v store.Value) {
			if k == key {
				va = v
			}
		})
		b.ForEach(func(k string, v store.Value) {
			if k == key {
				vb = v
			}
		})
		switch va.Kind {
		case store.KindList, store.KindEmptyList:
			assert.Eq("list order preserved: "+key, vb.List, va.List)
		case store.KindBulkString:
			assert.Eq("string value: "+key, vb.Str, va.Str)
		case store.KindMap:
			assert.Eq("map size: "+key, len(vb.Map), len(va.Map))
		case store.KindSet:
			assert.Eq("set size: "+key, len(vb.Set), len(va.Set))
		}
	}
}

func TestReplayMissingFileIsNotFatal(t *testing.T) {
	st := store.New()
	Replay(st, filepath.Join(os.TempDir(), "kyvi-does-not-exist-12345.resp"))
	if _, err := st.Get("anything"); err != nil {
		t.Fatalf("replay of missing file should leave an empty, usable store: %v", err)
	}
}
