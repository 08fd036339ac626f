package minesweeper

import "testing"

func TestGeneratePlacesExactMineCount(t *testing.T) {
	tests := []struct {
		name          string
		width, height int
		mines         int
	}{
		{"no mines", 3, 3, 0},
		{"classic 9x9", 9, 9, 10},
		{"dense", 4, 4, 15},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board := NewBoard(tt.width, tt.height, tt.mines)
			Generate(board, NewPRNG(1))

			count := 0
			for _, v := range board.Grid {
				if v == Mine {
					count++
				}
			}
			if count != tt.mines {
				t.Errorf("mine count = %d, want %d", count, tt.mines)
			}
		})
	}
}

func TestGenerateCluesMatchMineNeighbors(t *testing.T) {
	board := NewBoard(9, 9, 10)
	Generate(board, NewPRNG(42))

	for y := 0; y < board.Height; y++ {
		for x := 0; x < board.Width; x++ {
			idx := board.index(x, y)
			if board.Grid[idx] == Mine {
				continue
			}
			want := int8(0)
			for _, n := range board.neighbors(x, y, nil) {
				if board.Grid[n] == Mine {
					want++
				}
			}
			if board.Grid[idx] != want {
				t.Errorf("clue at (%d,%d) = %d, want %d", x, y, board.Grid[idx], want)
			}
		}
	}
}

func TestGenerateIsDeterministicForSameSeed(t *testing.T) {
	a := NewBoard(9, 9, 10)
	Generate(a, NewPRNG(7))

	b := NewBoard(9, 9, 10)
	Generate(b, NewPRNG(7))

	if a.String() != b.String() {
		t.Fatalf("same seed produced different boards:\n%s\n%s", a.String(), b.String())
	}
}

func TestGenerateDiffersAcrossSeeds(t *testing.T) {
	a := NewBoard(9, 9, 10)
	Generate(a, NewPRNG(1))

	b := NewBoard(9, 9, 10)
	Generate(b, NewPRNG(2))

	if a.String() == b.String() {
		t.Fatal("distinct seeds produced identical boards")
	}
}

func TestGenerateZeroMinesLeavesAllCluesZero(t *testing.T) {
	board := NewBoard(3, 3, 0)
	Generate(board, NewPRNG(5))

	for _, v := range board.Grid {
		if v != 0 {
			t.Fatalf("expected all-zero board, got %q", board.String())
		}
	}
}
