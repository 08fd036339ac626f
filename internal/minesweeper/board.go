// Package minesweeper implements the Minesweeper game module: random
// board generation with a Fisher-Yates mine placement, 8-neighbor clue
// computation, a no-guess deductive solver, and 3BV scoring. It is the
// only engine bound behind the module.Engine contract in this
// repository, but the contract never assumes it's the only one.
package minesweeper

// Mine is the sentinel grid value for a mine cell; clue cells hold
// 0-8.
const Mine = -1

// Board is the mutable working state for one generation attempt: a
// width x height grid of cell values (row-major) plus solver-side
// reveal/flag masks. Invariants (enforced by Generate and relied on by
// Solve):
//
//   - exactly Mines cells hold the Mine sentinel
//   - every non-mine cell's value equals its mine-neighbor count
//   - Revealed and Flagged never overlap
//   - a flagged cell is never marked revealed
type Board struct {
	Width, Height int
	Mines         int
	Difficulty    string
	Seed          uint32
	Score         float64

	Grid     []int8
	Revealed []bool
	Flagged  []bool
}

// NewBoard allocates an empty width x height board with no mines
// placed yet.
func NewBoard(width, height, mines int) *Board {
	size := width * height
	return &Board{
		Width:    width,
		Height:   height,
		Mines:    mines,
		Grid:     make([]int8, size),
		Revealed: make([]bool, size),
		Flagged:  make([]bool, size),
	}
}

func (b *Board) index(x, y int) int { return y*b.Width + x }

func (b *Board) inBounds(x, y int) bool {
	return x >= 0 && x < b.Width && y >= 0 && y < b.Height
}

// neighbors appends the up-to-8 valid neighbor cell indices of (x, y)
// to dst and returns the extended slice, to let callers reuse a
// backing array across calls.
func (b *Board) neighbors(x, y int, dst []int) []int {
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			nx, ny := x+dx, y+dy
			if b.inBounds(nx, ny) {
				dst = append(dst, b.index(nx, ny))
			}
		}
	}
	return dst
}

// String renders the board per spec §3/§6: row-major, '0'..'8' for
// clues, '*' for mines, no separators.
func (b *Board) String() string {
	out := make([]byte, len(b.Grid))
	for i, v := range b.Grid {
		if v == Mine {
			out[i] = '*'
		} else {
			out[i] = byte('0' + v)
		}
	}
	return string(out)
}
