// Package poll runs fixed-interval background refreshes with explicit
// lifecycle, replacing ad-hoc timer loops in the views that need them.
package poll

import (
	"context"
	"sync"
	"time"
)

// Func is one poll cycle. seq increases by one per tick; slower ticks
// can finish after newer ones, so consumers must gate on seq before
// applying results.
type Func func(ctx context.Context, seq uint64)

// Poller fires fn immediately on Start and then on every interval until
// Stop. In-flight cycles are not cancelled when the next tick fires;
// ordering is the consumer's job via SeqGate.
type Poller struct {
	interval time.Duration
	fn       Func

	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
}

func New(interval time.Duration, fn Func) *Poller {
	return &Poller{interval: interval, fn: fn}
}

// Start launches the poll loop. Calling Start on a running poller is a
// no-op.
func (p *Poller) Start(ctx context.Context) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.cancel != nil {
		return
	}

	ctx, cancel := context.WithCancel(ctx)
	p.cancel = cancel
	p.done = make(chan struct{})

	go p.run(ctx)
}

func (p *Poller) run(ctx context.Context) {
	defer close(p.done)

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	var seq uint64

	// Immediate first cycle, then the ticker takes over.
	go p.fn(ctx, seq)

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			seq++
			go p.fn(ctx, seq)
		}
	}
}

// Stop cancels the loop and waits for it to exit. Cycles already in
// flight keep running against a cancelled context and finish on their
// own. Safe to call more than once.
func (p *Poller) Stop() {
	p.mu.Lock()
	cancel, done := p.cancel, p.done
	p.cancel = nil
	p.mu.Unlock()

	if cancel == nil {
		return
	}
	cancel()
	<-done
}

// SeqGate admits poll results in sequence order, dropping any result
// older than the newest one already applied. This keeps the rendered
// state monotonic even when responses arrive out of order.
type SeqGate struct {
	mu      sync.Mutex
	applied bool
	last    uint64
}

// Admit reports whether a result stamped seq may be applied, and
// records it as the newest when so.
func (g *SeqGate) Admit(seq uint64) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.applied && seq < g.last {
		return false
	}
	g.applied = true
	g.last = seq
	return true
}
