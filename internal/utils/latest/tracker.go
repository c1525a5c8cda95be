// Package latest implements last-request-wins bookkeeping for requests that share a key.
package latest

import (
	"context"
	"sync"
)

type inflight struct {
	seq    uint64
	cancel context.CancelFunc
}

// Tracker remembers the newest request per key. Starting a request cancels the
// previous in-flight request for the same key.
type Tracker struct {
	mu      sync.Mutex
	seq     uint64
	pending map[string]inflight
}

func NewTracker() *Tracker {
	return &Tracker{pending: make(map[string]inflight)}
}

// Ticket identifies one request registered with a Tracker.
type Ticket struct {
	tracker *Tracker
	key     string
	seq     uint64
	cancel  context.CancelFunc
}

// Begin registers a new request for key and returns a context that is cancelled
// once a newer request for the same key begins. Callers must call Done.
func (t *Tracker) Begin(ctx context.Context, key string) (context.Context, *Ticket) {
	ctx, cancel := context.WithCancel(ctx)

	t.mu.Lock()
	t.seq++
	seq := t.seq
	if prev, ok := t.pending[key]; ok {
		prev.cancel()
	}
	t.pending[key] = inflight{seq: seq, cancel: cancel}
	t.mu.Unlock()

	return ctx, &Ticket{tracker: t, key: key, seq: seq, cancel: cancel}
}

// IsLatest reports whether no newer request for the same key has begun.
func (tk *Ticket) IsLatest() bool {
	tk.tracker.mu.Lock()
	defer tk.tracker.mu.Unlock()
	cur, ok := tk.tracker.pending[tk.key]
	return ok && cur.seq == tk.seq
}

// Done releases the ticket's context and forgets it if it is still the newest.
func (tk *Ticket) Done() {
	tk.tracker.mu.Lock()
	if cur, ok := tk.tracker.pending[tk.key]; ok && cur.seq == tk.seq {
		delete(tk.tracker.pending, tk.key)
	}
	tk.tracker.mu.Unlock()
	tk.cancel()
}

// Len returns the number of keys with an in-flight request.
func (t *Tracker) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.pending)
}
