package server

import (
	"bufio"
	"os"

	"github.com/rsms/go-log"

	"github.com/shinkou/kyvi/resp"
	"github.com/shinkou/kyvi/store"
)

// Snapshot writes every key in st to the file at path as a sequence of RESP
// requests whose replay (see Replay) reconstructs an equivalent store: one
// `set` per string, one `hset` per map, one `rpush` per list (preserving
// element order), one `sadd` per set (member order unspecified). Called on
// shutdown after a termination signal.
func Snapshot(st *store.Store, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	var n int
	var writeErr error
	st.ForEach(func(key string, v store.Value) {
		if writeErr != nil {
			return
		}
		req := requestFor(key, v)
		if req == nil {
			return
		}
		writeErr = resp.EncodeRequest(w, req)
		n++
	})
	if writeErr != nil {
		return writeErr
	}
	if err := w.Flush(); err != nil {
		return err
	}
	log.Info("wrote snapshot of %d key(s) to %q", n, path)
	return nil
}

// requestFor builds the request that recreates key/v, or nil if v is a kind
// that never appears as a stored (as opposed to reply) value.
func requestFor(key string, v store.Value) []string {
	switch v.Kind {
	case store.KindBulkString:
		return []string{"set", key, v.Str}
	case store.KindMap:
		req := make([]string, 0, 2+2*len(v.MapOrder))
		req = append(req, "hset", key)
		for _, f := range v.MapOrder {
			req = append(req, f, v.Map[f].Str)
		}
		return req
	case store.KindList, store.KindEmptyList:
		if len(v.List) == 0 {
			return nil
		}
		req := make([]string, 0, 1+len(v.List))
		req = append(req, "rpush", key)
		for _, e := range v.List {
			req = append(req, e.Str)
		}
		return req
	case store.KindSet:
		if len(v.SetOrder) == 0 {
			return nil
		}
		req := make([]string, 0, 1+len(v.SetOrder))
		req = append(req, "sadd", key)
		for _, hk := range v.SetOrder {
			req = append(req, v.Set[hk].Str)
		}
		return req
	}
	return nil
}
