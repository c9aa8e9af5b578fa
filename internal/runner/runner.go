// Package runner steps a Simulator forward on a fixed cadence in the
// background and publishes snapshots for a visualizer: a background
// goroutine driven by a ticker, reporting progress over a channel
// instead of blocking its caller.
package runner

import (
	"context"
	"time"

	"github.com/aochagavia/FastAnts/internal/atomicfloat"
	"github.com/aochagavia/FastAnts/internal/simulator"
	"github.com/aochagavia/FastAnts/server/boardviews"

	channerics "github.com/niceyeti/channerics/channels"
)

// Snapshot is one tick's worth of published state: the converted board
// grid and the outcome counters at that round.
type Snapshot struct {
	Cells   [][]boardviews.BoardCell
	Outcome simulator.Outcome
}

// Runner drives a Simulator forward at a fixed tick interval and
// publishes Snapshots, tracking a smoothed food-collection rate that a
// status endpoint can read concurrently without locking.
type Runner struct {
	foodRate *atomicfloat.AtomicFloat64
	snapshot <-chan Snapshot
}

// New starts a runner ticking sim forward every interval until ctx is
// cancelled, publishing a Snapshot after every tick on the returned
// Runner's Snapshots channel. Once sim reaches MaxRounds, OneRound is a
// no-op and each later tick republishes the final state.
func New(ctx context.Context, sim *simulator.Simulator, interval time.Duration) *Runner {
	r := &Runner{foodRate: atomicfloat.New(0)}

	ticks := channerics.NewTicker(ctx.Done(), interval)
	out := make(chan Snapshot)
	r.snapshot = out

	go func() {
		defer close(out)

		lastFood := sim.PartialOutcome().FoodLeft
		for range channerics.OrDone(ctx.Done(), ticks) {
			sim.OneRound()
			outcome := sim.PartialOutcome()
			r.updateFoodRate(lastFood, outcome.FoodLeft)
			lastFood = outcome.FoodLeft

			snap := Snapshot{
				Cells:   boardviews.Convert(sim.World),
				Outcome: outcome,
			}

			select {
			case out <- snap:
			case <-ctx.Done():
				return
			}
		}
	}()

	return r
}

// Snapshots returns the channel of published Snapshots.
func (r *Runner) Snapshots() <-chan Snapshot {
	return r.snapshot
}

// FoodRate returns the current smoothed food-collected-per-tick estimate.
func (r *Runner) FoodRate() float64 {
	return r.foodRate.Read()
}

// updateFoodRate folds the tick's food delta into an exponential moving
// average, smoothing over the bursty per-round food pickups.
func (r *Runner) updateFoodRate(before, after uint16) {
	const alpha = 0.2
	delta := float64(before) - float64(after)
	if delta < 0 {
		delta = 0
	}
	current := r.foodRate.Read()
	r.foodRate.Set(current + alpha*(delta-current))
}
