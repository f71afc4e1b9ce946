package harness

import "sync"

// Barrier is a reusable synchronization point for a fixed party count.
// All node workers meet here before any channel traffic of a repetition
// is issued, so stale data from a previous trial cannot leak forward.
type Barrier struct {
	mu      sync.Mutex
	cond    *sync.Cond
	parties int
	waiting int
	round   int
}

// NewBarrier creates a barrier for the given number of parties.
// Party counts below one behave as a single-party barrier.
func NewBarrier(parties int) *Barrier {
	if parties < 1 {
		parties = 1
	}
	b := &Barrier{parties: parties}
	b.cond = sync.NewCond(&b.mu)

	return b
}

// Await blocks until all parties of the current round have arrived.
// The last arrival releases everyone and opens the next round.
func (b *Barrier) Await() {
	b.mu.Lock()
	defer b.mu.Unlock()
	round := b.round
	b.waiting++
	if b.waiting == b.parties {
		b.waiting = 0
		b.round++
		b.cond.Broadcast()

		return
	}
	for round == b.round {
		b.cond.Wait()
	}
}
