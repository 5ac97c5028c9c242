package loop

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/playpong/backend/internal/game"
)

// Sink receives every freshly computed snapshot.
type Sink interface {
	PublishState(game.State)
}

// Runner owns the authoritative simulation state and advances it once per
// clock tick. Reads and writes go through the runner; the snapshots it hands
// out are plain values, so holders never race with the next tick.
type Runner struct {
	mu       sync.RWMutex
	state    game.State
	interval time.Duration
	maxDelta float64 // milliseconds; 0 disables the stall guard
	sinks    []Sink
}

// NewRunner creates a runner starting from initial, ticking at interval.
func NewRunner(initial game.State, interval time.Duration, maxDeltaMs float64, sinks ...Sink) *Runner {
	return &Runner{
		state:    initial,
		interval: interval,
		maxDelta: maxDeltaMs,
		sinks:    sinks,
	}
}

// State returns the latest snapshot.
func (r *Runner) State() game.State {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.state
}

// Advance applies one simulation step with the given elapsed milliseconds,
// publishes the new snapshot to every sink, and returns it.
func (r *Runner) Advance(delta float64) game.State {
	r.mu.Lock()
	r.state = game.Step(delta, r.state)
	next := r.state
	r.mu.Unlock()

	for _, s := range r.sinks {
		s.PublishState(next)
	}
	return next
}

// Run drives the simulation from the wall clock until ctx is done. Each
// tick's delta is the real elapsed time since the previous tick in
// milliseconds, capped at maxDelta so a stalled process resumes smoothly
// instead of teleporting the ball. The last snapshot stays readable after
// cancellation.
func (r *Runner) Run(ctx context.Context) {
	log.Printf("[LOOP] Runner started (interval=%s, maxDelta=%.0fms)", r.interval, r.maxDelta)

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	last := time.Now()
	for {
		select {
		case <-ctx.Done():
			log.Println("[LOOP] Runner stopping")
			return
		case now := <-ticker.C:
			delta := float64(now.Sub(last)) / float64(time.Millisecond)
			last = now
			if r.maxDelta > 0 && delta > r.maxDelta {
				delta = r.maxDelta
			}
			r.Advance(delta)
		}
	}
}
