package minesweeper

// Generate fills a freshly constructed board with a uniformly random
// placement of board.Mines mines and computes every non-mine cell's
// clue. board.Mines must be less than Width*Height.
//
// The placement is a Fisher-Yates shuffle of the 0..size-1 index
// permutation: for descending position i, draw j uniformly from
// [0, i] and swap. The first board.Mines entries of the shuffled
// permutation become mines — unbiased regardless of mine count.
func Generate(board *Board, rng *PRNG) {
	size := board.Width * board.Height

	indices := make([]int, size)
	for i := range indices {
		indices[i] = i
	}
	for i := size - 1; i > 0; i-- {
		j := rng.IntN(i + 1)
		indices[i], indices[j] = indices[j], indices[i]
	}

	for i := 0; i < board.Mines; i++ {
		board.Grid[indices[i]] = Mine
	}

	neighborBuf := make([]int, 0, 8)
	for y := 0; y < board.Height; y++ {
		for x := 0; x < board.Width; x++ {
			idx := board.index(x, y)
			if board.Grid[idx] == Mine {
				continue
			}
			neighborBuf = neighborBuf[:0]
			neighborBuf = board.neighbors(x, y, neighborBuf)
			var count int8
			for _, n := range neighborBuf {
				if board.Grid[n] == Mine {
					count++
				}
			}
			board.Grid[idx] = count
		}
	}
}
