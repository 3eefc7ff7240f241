// Package server implements the networked side of the store: the
// per-connection request/reply loop, a fixed-size worker pool to run it
// concurrently, and startup replay / shutdown snapshot against a data file.
package server

import (
	"net"

	"github.com/rsms/go-log"
	"github.com/rsms/go-uuid"

	"github.com/shinkou/kyvi/command"
	"github.com/shinkou/kyvi/resp"
	"github.com/shinkou/kyvi/store"
)

// HandleConn runs the connection's request/reply loop against nc until the
// peer disconnects, a fatal parse error occurs, or a quit command is
// received. It owns nc's read and write buffers; st is shared across every
// connection behind its own lock.
//
// Each connection is tagged with a go-uuid value purely for log
// correlation.
func HandleConn(st *store.Store, nc net.Conn) {
	defer nc.Close()

	id := uuid.MustGen().String()
	log.Debug("%s connection opened (%s)", id, nc.RemoteAddr())

	parser := resp.NewParser(nc)
	enc := resp.NewEncoder(nc)

	for {
		// 1. Flush pending writer.
		if err := enc.Flush(); err != nil {
			log.Warn("%s flush: %v", id, err)
			return
		}

		// 2. Parse one request.
		req, err := parser.Next()
		if err != nil {
			// 3. On parse error: write a SimpleError; close only on
			// EOF/Connection errors, otherwise keep serving this connection.
			enc.Encode(store.SimpleError(err.Error()))
			enc.Flush()
			if err == resp.ErrEOFReached || err == resp.ErrConnection {
				log.Debug("%s closing (%v)", id, err)
				return
			}
			continue
		}

		// 4. Dispatch through the command table.
		reply := command.Dispatch(st, req.Command, req.Args)

		// 5. Encode the reply Value.
		if err := enc.Encode(reply); err != nil {
			log.Warn("%s encode: %v", id, err)
			return
		}

		// 6. If the command name is quit, flush and close.
		if command.IsQuit(req.Command) {
			enc.Flush()
			log.Debug("%s closing on quit", id)
			return
		}
	}
}
