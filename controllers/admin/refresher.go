package adminController

import (
	"context"
	"log"
	"sync"
	"sync/atomic"
	"time"

	"github.com/ujjwalbarange/mesa-pos/backend"
	"github.com/ujjwalbarange/mesa-pos/models"
	"github.com/ujjwalbarange/mesa-pos/poll"
)

// PollInterval matches the dashboard auto-refresh cadence.
const PollInterval = 10 * time.Second

// Snapshot is the dashboard's view of server truth: the plan flags and
// the active order list from the last applied refresh. Fetched is false
// until the first refresh lands.
type Snapshot struct {
	Flags   models.SystemFlags
	Orders  []models.Order
	Fetched bool
}

// Refresher keeps the KDS snapshot current. It polls flags and active
// orders together every interval, and is also refreshed on demand right
// after a status write so the board always reflects the backend rather
// than an optimistic local patch.
//
// Scheduled and forced refreshes draw from one sequence counter, and a
// gate drops any fetch that completes after a newer one has been
// applied.
type Refresher struct {
	api backend.Client
	hub *Hub

	seq    atomic.Uint64
	gate   poll.SeqGate
	poller *poll.Poller

	mu      sync.RWMutex
	flags   models.SystemFlags
	orders  []models.Order
	fetched bool
}

// NewRefresher builds a refresher. hub may be nil when no live feed is
// attached (tests).
func NewRefresher(api backend.Client, interval time.Duration, hub *Hub) *Refresher {
	r := &Refresher{api: api, hub: hub}
	r.poller = poll.New(interval, func(ctx context.Context, _ uint64) {
		if err := r.refresh(ctx); err != nil {
			// Swallowed: the previous snapshot stays up until the
			// next successful poll.
			log.Println("❌ Admin refresh failed:", err)
		}
	})
	return r
}

func (r *Refresher) Start(ctx context.Context) {
	r.poller.Start(ctx)
}

func (r *Refresher) Stop() {
	r.poller.Stop()
}

// ForceRefresh re-fetches immediately, bypassing the schedule. Used
// after every KDS status write.
func (r *Refresher) ForceRefresh(ctx context.Context) error {
	return r.refresh(ctx)
}

func (r *Refresher) refresh(ctx context.Context) error {
	seq := r.seq.Add(1)

	flags, err := r.api.SystemStatus(ctx)
	if err != nil {
		return err
	}
	orders, err := r.api.ActiveOrders(ctx)
	if err != nil {
		return err
	}

	if !r.gate.Admit(seq) {
		return nil
	}

	r.mu.Lock()
	r.flags = flags
	r.orders = orders
	r.fetched = true
	r.mu.Unlock()

	if r.hub != nil {
		r.hub.Broadcast(KDSFeed{Orders: Cards(orders), Flags: flags})
	}
	return nil
}

// Snapshot returns the last applied state.
func (r *Refresher) Snapshot() Snapshot {
	r.mu.RLock()
	defer r.mu.RUnlock()
	orders := make([]models.Order, len(r.orders))
	copy(orders, r.orders)
	return Snapshot{Flags: r.flags, Orders: orders, Fetched: r.fetched}
}
