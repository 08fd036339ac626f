package minesweeper

import (
	"fmt"

	"github.com/mossforge/game-forge/internal/config"
	"github.com/mossforge/game-forge/internal/module"
)

// Default board shape and mine range when a difficulty leaves them
// unset.
const (
	defaultColumns = 9
	defaultRows    = 9
	defaultMines   = 10
)

// Engine is the module.Engine implementation wired to this package's
// generator and solver. It holds no state of its own: every difficulty
// it's init'd with produces an independent, read-only context.
type Engine struct{}

var _ module.Engine = Engine{}

func (Engine) Name() string { return "minesweeper" }

func (Engine) CSVHeader() string { return "width,height,mines,tags,board_string" }

// Init returns the difficulty record itself as the opaque context —
// there is nothing to precompute, and the record is already owned and
// kept alive by the driver for the lifetime of the difficulty.
func (Engine) Init(diff *config.Difficulty) (any, error) {
	return diff, nil
}

func (Engine) Cleanup(any) {}

// Process constructs one board from seed, generates and solves it, and
// reports the outcome. Same ctx + same seed always yields a
// byte-identical Result: every draw comes from a PRNG seeded solely
// from seed, and nothing else in the call reads external state.
func (Engine) Process(ctx any, seed uint32) module.Result {
	diff := ctx.(*config.Difficulty)

	columns := diff.GetInt("columns", defaultColumns)
	rows := diff.GetInt("rows", defaultRows)
	minMines := diff.GetInt("mines.minimum", defaultMines)
	maxMines := diff.GetInt("mines.maximum", defaultMines)
	tags := diff.GetString("tags", "")

	size := columns * rows
	if size <= 0 {
		// No legal board shape; this is a misconfigured difficulty,
		// not a solver failure, but it is reported the same way (§7:
		// the engine never signals failure except via success=false).
		return module.Result{Success: false}
	}

	rng := NewPRNG(seed)
	mines := minMines
	if maxMines > minMines {
		mines = minMines + rng.IntN(maxMines-minMines+1)
	}
	// Generate's precondition (§4.2) is mines < width*height; a
	// misconfigured mines.maximum must not panic a worker goroutine.
	if mines >= size {
		mines = size - 1
	}
	if mines < 0 {
		mines = 0
	}

	board := NewBoard(columns, rows, mines)
	board.Seed = seed
	Generate(board, rng)
	solvable, score := Solve(board)

	if !solvable {
		return module.Result{Success: false}
	}

	return module.Result{
		Success: true,
		Score:   score,
		Payload: fmt.Sprintf("%d,%d,%d,%s,%s", columns, rows, mines, tags, board.String()),
	}
}
