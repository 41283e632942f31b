// Package latest drops responses that resolve after a newer request has started.
package latest

import "sync/atomic"

type Ticket uint64

// Guard hands out increasing tickets; only the most recent one is current.
type Guard struct {
	seq atomic.Uint64
}

// Begin starts a request and makes every earlier ticket stale.
func (g *Guard) Begin() Ticket {
	return Ticket(g.seq.Add(1))
}

// Invalidate makes every outstanding ticket stale without starting a request.
func (g *Guard) Invalidate() {
	g.seq.Add(1)
}

func (g *Guard) IsLatest(ticket Ticket) bool {
	return uint64(ticket) == g.seq.Load()
}
