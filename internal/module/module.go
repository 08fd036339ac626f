// Package module defines the narrow capability contract that lets the
// driver stay agnostic about which game engine it's feeding. An engine
// registers under a name; the driver looks engines up by the name given
// in configuration.
package module

import "github.com/mossforge/game-forge/internal/config"

// Result is the outcome of one process() call.
type Result struct {
	Success bool
	Score   float64
	// Payload is the game-specific CSV fragment appended after
	// "difficulty,seed,score,"; empty when Success is false.
	Payload string
}

// Engine is the {init, process, cleanup} contract. A single Engine
// value may be init'd once per difficulty and its returned context
// shared read-only across every worker processing that difficulty —
// Process must never mutate ctx.
type Engine interface {
	// Name is the engine's display name. The driver and dashboard label
	// their output with the engine name from configuration, not this.
	Name() string
	// CSVHeader is the game-specific header fragment that follows
	// "difficulty,seed,score," in the sink's first line.
	CSVHeader() string
	// Init binds a difficulty's configuration to an opaque, read-only
	// context reused by every worker for that difficulty.
	Init(diff *config.Difficulty) (ctx any, err error)
	// Process is a pure function of (ctx, seed): identical inputs
	// must yield a byte-identical Result. Safe for concurrent calls
	// sharing the same ctx.
	Process(ctx any, seed uint32) Result
	// Cleanup releases anything Init allocated. Called once the
	// difficulty's worker pool has joined.
	Cleanup(ctx any)
}

// Registry maps engine names (as used in game_forge.yaml) to Engine
// implementations, populated once at startup.
type Registry map[string]Engine

// Lookup returns the engine registered under name, or nil if none is
// registered — an unknown engine name is not a fatal error (§7): the
// caller logs and skips that engine's difficulties.
func (r Registry) Lookup(name string) Engine {
	return r[name]
}
