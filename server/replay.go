package server

import (
	"os"

	"github.com/rsms/go-log"

	"github.com/shinkou/kyvi/command"
	"github.com/shinkou/kyvi/resp"
	"github.com/shinkou/kyvi/store"
)

// Replay runs every request recorded in the file at path against st,
// discarding replies, before the server starts accepting connections. A
// missing file is not an error -- a fresh store has nothing to replay. Any
// other failure is logged, not fatal: startup replay is best-effort, so a
// truncated or hand-edited data file never blocks boot.
//
// It scans the request stream and feeds each request through the same
// command.Dispatch a live connection uses.
func Replay(st *store.Store, path string) {
	f, err := os.Open(path)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Warn("replay %q: %v", path, err)
		}
		return
	}
	defer f.Close()

	parser := resp.NewParser(f)
	var n int
	for {
		req, err := parser.Next()
		if err != nil {
			if err != resp.ErrEOFReached {
				log.Warn("replay %q: stopped early: %v", path, err)
			}
			break
		}
		command.Dispatch(st, req.Command, req.Args)
		n++
	}
	log.Info("replayed %d request(s) from %q", n, path)
}
