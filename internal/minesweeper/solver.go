package minesweeper

// Solve attempts to fully reveal board using only local, single-cell
// deductions, starting from one seeded opening, and reports whether it
// succeeded. It always computes 3BV into board.Score, independent of
// whether solving succeeds — scoring runs against the true grid, not
// solver-side state.
//
// No subset-exclusion or search-based rules are applied (Tier 2 is out
// of scope): boards that need them are reported unsolvable.
func Solve(board *Board) (bool, float64) {
	size := board.Width * board.Height
	totalSafe := size - board.Mines

	for i := range board.Revealed {
		board.Revealed[i] = false
		board.Flagged[i] = false
	}

	startIdx := -1
	for i := 0; i < size; i++ {
		if board.Grid[i] == 0 {
			startIdx = i
			break
		}
	}
	if startIdx == -1 {
		for i := 0; i < size; i++ {
			if board.Grid[i] != Mine {
				startIdx = i
				break
			}
		}
	}
	if startIdx == -1 {
		board.Score = 0
		return false, board.Score
	}

	revealedCount := 0
	revealWithFlood(board, startIdx, &revealedCount)

	progress := true
	for progress && revealedCount < totalSafe {
		progress = false

		for i := 0; i < size; i++ {
			if !board.Revealed[i] || board.Grid[i] <= 0 {
				continue
			}
			x, y := i%board.Width, i/board.Width
			nb := board.neighbors(x, y, nil)

			flags, hidden := 0, 0
			for _, n := range nb {
				switch {
				case board.Flagged[n]:
					flags++
				case !board.Revealed[n]:
					hidden++
				}
			}
			if hidden == 0 {
				continue
			}
			clue := int(board.Grid[i])

			// All-mines rule.
			if flags+hidden == clue {
				for _, n := range nb {
					if !board.Revealed[n] && !board.Flagged[n] {
						board.Flagged[n] = true
						progress = true
					}
				}
			}

			// All-safe rule, using the flags count computed before
			// the rule above ran (matches a single deduction pass
			// over this cell's pre-pass neighbor state).
			if flags == clue {
				for _, n := range nb {
					if !board.Revealed[n] && !board.Flagged[n] {
						revealWithFlood(board, n, &revealedCount)
						progress = true
					}
				}
			}
		}
	}

	board.Score = score3BV(board)
	return revealedCount == totalSafe, board.Score
}

// revealWithFlood reveals idx and, if it has zero adjacent mines,
// immediately floods its connected zero region — the standard
// chord-on-zero behavior (spec §4.3: an implementation may flood
// immediately instead of waiting for the next deduction pass; the two
// are semantically equivalent, and flooding immediately is what
// actually lets single-cell deduction finish boards with large open
// regions). A cell that's already revealed or flagged is left alone,
// defensively: a consistent board never asks to reveal a flagged cell,
// but if it did, this must not panic (§4.3 edge policy).
func revealWithFlood(board *Board, start int, revealedCount *int) {
	if board.Revealed[start] || board.Flagged[start] {
		return
	}
	board.Revealed[start] = true
	*revealedCount++
	if board.Grid[start] != 0 {
		return
	}

	queue := []int{start}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		x, y := cur%board.Width, cur/board.Width
		nb := board.neighbors(x, y, nil)
		for _, n := range nb {
			if board.Revealed[n] || board.Flagged[n] {
				continue
			}
			board.Revealed[n] = true
			*revealedCount++
			if board.Grid[n] == 0 {
				queue = append(queue, n)
			}
		}
	}
}

// score3BV computes the board's 3BV directly from the true grid:
// one point per opening (a connected component of zero-clue cells
// under 8-connectivity, plus the non-zero cells that border it) and
// one point per remaining non-mine cell.
func score3BV(board *Board) float64 {
	size := board.Width * board.Height
	visited := make([]bool, size)
	tbv := 0

	for i := 0; i < size; i++ {
		if board.Grid[i] != 0 || visited[i] {
			continue
		}
		tbv++
		queue := []int{i}
		visited[i] = true
		for len(queue) > 0 {
			cur := queue[0]
			queue = queue[1:]
			x, y := cur%board.Width, cur/board.Width
			nb := board.neighbors(x, y, nil)
			for _, n := range nb {
				if visited[n] {
					continue
				}
				visited[n] = true
				if board.Grid[n] == 0 {
					queue = append(queue, n)
				}
			}
		}
	}

	for i := 0; i < size; i++ {
		if board.Grid[i] != Mine && !visited[i] {
			tbv++
		}
	}
	return float64(tbv)
}
