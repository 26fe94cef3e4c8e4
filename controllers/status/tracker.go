package statusController

import (
	"context"
	"log"
	"time"

	"github.com/ujjwalbarange/mesa-pos/backend"
	"github.com/ujjwalbarange/mesa-pos/poll"
)

// PollInterval matches the status page refresh cadence.
const PollInterval = 10 * time.Second

// Tracker follows one order while a customer is watching it. It polls
// the backend immediately and then on every interval, pushing a fresh
// view to onUpdate. Poll failures are swallowed so the last rendered
// state persists until the next good fetch; out-of-order responses are
// dropped by the sequence gate so the progress bar never moves
// backwards under a slow network.
type Tracker struct {
	api      backend.Client
	orderID  string
	onUpdate func(StatusView)

	gate   poll.SeqGate
	poller *poll.Poller
}

func NewTracker(api backend.Client, orderID string, interval time.Duration, onUpdate func(StatusView)) *Tracker {
	t := &Tracker{
		api:      api,
		orderID:  orderID,
		onUpdate: onUpdate,
	}
	t.poller = poll.New(interval, t.fetch)
	return t
}

// Start begins polling. Must be paired with Stop when the viewer goes
// away, or the timer leaks.
func (t *Tracker) Start(ctx context.Context) {
	t.poller.Start(ctx)
}

func (t *Tracker) Stop() {
	t.poller.Stop()
}

func (t *Tracker) fetch(ctx context.Context, seq uint64) {
	order, err := t.api.OrderStatus(ctx, t.orderID)
	if err != nil {
		log.Println("❌ Error fetching status:", err)
		return
	}
	if !t.gate.Admit(seq) {
		return
	}
	t.onUpdate(View(t.orderID, order))
}
