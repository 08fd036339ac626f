// Package driver implements the generation orchestration of §4.5: for
// each configured game engine, for each of its difficulties in order,
// a worker pool repeatedly calls engine.Process with fresh seeds until
// the difficulty's target is met, its max_time elapses, or the run is
// interrupted.
package driver

import (
	"context"
	"fmt"
	"math/rand/v2"
	"os"
	"sync"
	"time"

	"github.com/mossforge/game-forge/internal/config"
	"github.com/mossforge/game-forge/internal/csvsink"
	"github.com/mossforge/game-forge/internal/module"
)

const pollInterval = 100 * time.Millisecond

// Driver owns the engine registry and worker count and tracks the
// currently running difficulty's statistics for anything that wants
// to observe progress (a dashboard, a log line) without coupling to
// worker internals.
type Driver struct {
	registry module.Registry
	threads  int

	mu     sync.RWMutex
	active map[string]StatsView
}

// New returns a Driver. threads below 1 is treated as 1.
func New(registry module.Registry, threads int) *Driver {
	if threads < 1 {
		threads = 1
	}
	return &Driver{registry: registry, threads: threads, active: make(map[string]StatsView)}
}

// Snapshot returns a copy of every difficulty's last-known stats,
// keyed "engine/difficulty". Safe to call concurrently with Run.
func (d *Driver) Snapshot() map[string]StatsView {
	d.mu.RLock()
	defer d.mu.RUnlock()
	out := make(map[string]StatsView, len(d.active))
	for k, v := range d.active {
		out[k] = v
	}
	return out
}

func (d *Driver) publish(key string, view StatsView) {
	d.mu.Lock()
	d.active[key] = view
	d.mu.Unlock()
}

// Run processes every engine named in cfg.Games in order, and within
// each engine every difficulty in order (§4.5: difficulties are never
// run concurrently with each other). ctx cancellation is the global
// interrupt flag: workers observe it at their next poll and the
// in-flight difficulty winds down before Run returns.
func (d *Driver) Run(ctx context.Context, cfg *config.Config) {
	threads := d.threads
	if cfg.Threads > 0 {
		threads = cfg.Threads
	}

	for _, game := range cfg.Games {
		engine := d.registry.Lookup(game.Name)
		if engine == nil {
			fmt.Fprintf(os.Stderr, "game-forge: no engine registered for %q, skipping\n", game.Name)
			continue
		}

		sink := csvsink.New(game.Output)
		if err := sink.WriteHeader(engine.CSVHeader(), game.Append); err != nil {
			fmt.Fprintf(os.Stderr, "game-forge: %v, skipping engine %q\n", err, game.Name)
			continue
		}

		for i := range game.Difficulties {
			diff := &game.Difficulties[i]
			if err := d.runDifficulty(ctx, threads, engine, sink, game.Name, diff); err != nil {
				fmt.Fprintf(os.Stderr, "game-forge: %v, skipping difficulty %q\n", err, diff.Name)
			}
			if ctx.Err() != nil {
				return
			}
		}
	}
}

func (d *Driver) runDifficulty(ctx context.Context, threads int, engine module.Engine, sink *csvsink.Sink, engineName string, diff *config.Difficulty) error {
	ectx, err := engine.Init(diff)
	if err != nil {
		return fmt.Errorf("init %q: %w", diff.Name, err)
	}
	defer engine.Cleanup(ectx)

	key := engineName + "/" + diff.Name
	stats := newStats(engineName, diff.Name, diff.Count)
	stats.begin()
	d.publish(key, stats.snapshot())

	var wg sync.WaitGroup
	for w := 0; w < threads; w++ {
		wg.Add(1)
		go d.runWorker(ctx, &wg, w, engine, ectx, sink, diff.Name, stats)
	}

	maxTime := diff.GetInt("max_time", 0)
	var deadline <-chan time.Time
	if maxTime > 0 {
		deadline = time.After(time.Duration(maxTime) * time.Second)
	}

	joined := make(chan struct{})
	go func() {
		wg.Wait()
		close(joined)
	}()

	ticker := time.NewTicker(pollInterval)
	defer ticker.Stop()

poll:
	for {
		select {
		case <-joined:
			break poll
		case <-deadline:
			stats.setStop()
		case <-ctx.Done():
			stats.setStop()
		case <-ticker.C:
			d.publish(key, stats.snapshot())
		}
	}

	stats.finish()
	d.publish(key, stats.snapshot())
	return nil
}

// runWorker is one persistent goroutine of the pool: it polls the
// shared stats record at least once per attempt and, while permitted
// to continue, draws a seed from its private PRNG and calls
// engine.Process.
func (d *Driver) runWorker(ctx context.Context, wg *sync.WaitGroup, id int, engine module.Engine, ectx any, sink *csvsink.Sink, difficulty string, stats *Stats) {
	defer wg.Done()

	seed := uint64(time.Now().UnixNano()) ^ uint64(id)
	rng := rand.New(rand.NewPCG(seed, seed))

	for {
		if stats.shouldStop(ctx.Err() != nil) {
			return
		}

		attemptSeed := rng.Uint32()
		result := engine.Process(ectx, attemptSeed)
		if result.Success {
			if err := sink.WriteRow(difficulty, attemptSeed, result.Score, result.Payload); err != nil {
				fmt.Fprintf(os.Stderr, "game-forge: %v\n", err)
				stats.recordAttempt(false)
				continue
			}
		}
		stats.recordAttempt(result.Success)
	}
}
