package server

import (
	"net"

	"github.com/rsms/go-log"

	"github.com/shinkou/kyvi/store"
)

// Pool accepts connections on a net.Listener and hands each to one of a
// fixed number of worker goroutines; the shared store's own mutex is the
// only serialization point, not the accept path. A small channel-of-conns
// consumed by N goroutines.
type Pool struct {
	st *store.Store
	ln net.Listener
	ch chan net.Conn
	n  int
}

// NewPool creates a Pool of n workers serving st over ln. n is clamped to at
// least 1.
func NewPool(st *store.Store, ln net.Listener, n int) *Pool {
	if n < 1 {
		n = 1
	}
	return &Pool{st: st, ln: ln, ch: make(chan net.Conn), n: n}
}

// Run starts the worker goroutines and blocks accepting connections until ln
// is closed.
func (p *Pool) Run() {
	for i := 0; i < p.n; i++ {
		go p.worker()
	}
	for {
		nc, err := p.ln.Accept()
		if err != nil {
			log.Debug("accept loop ending: %v", err)
			close(p.ch)
			return
		}
		p.ch <- nc
	}
}

func (p *Pool) worker() {
	for nc := range p.ch {
		HandleConn(p.st, nc)
	}
}
