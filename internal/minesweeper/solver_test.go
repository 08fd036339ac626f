package minesweeper

import "testing"

func TestSolveAllSafeBoardScoresOneOpening(t *testing.T) {
	board := NewBoard(3, 3, 0)
	Generate(board, NewPRNG(1))

	solvable, score := Solve(board)
	if !solvable {
		t.Fatal("all-safe board should be solvable")
	}
	if score != 1.0 {
		t.Errorf("score = %v, want 1.0", score)
	}
	if board.String() != "000000000" {
		t.Errorf("board_string = %q, want all zeros", board.String())
	}
}

func TestSolveSingleCornerMineFullyFloods(t *testing.T) {
	board := NewBoard(3, 3, 1)
	board.Grid = []int8{Mine, 1, 0, 1, 1, 0, 0, 0, 0}

	solvable, score := Solve(board)
	if !solvable {
		t.Fatal("corner-mine board should be solvable by a single flood")
	}
	if score != 1.0 {
		t.Errorf("score = %v, want 1.0", score)
	}
	if board.String() != "*10110000" {
		t.Errorf("board_string = %q, want *10110000", board.String())
	}
}

func TestSolveDeducesFlagThenClearsRemainder(t *testing.T) {
	// 4x3 board, mines at (3,0) and (3,1): the initial flood opens
	// everything but the rightmost column, a "2" clue pins down both
	// mines via the all-mines rule, and the freshly flagged mines let
	// a neighboring "2" clue clear the last hidden cell via all-safe.
	board := NewBoard(4, 3, 2)
	board.Grid = []int8{
		0, 0, 2, Mine,
		0, 0, 2, Mine,
		0, 0, 1, 1,
	}

	solvable, _ := Solve(board)
	if !solvable {
		t.Fatal("expected solvable board")
	}
	for i, v := range board.Grid {
		if v == Mine {
			if board.Revealed[i] {
				t.Errorf("mine at %d must never be revealed", i)
			}
			if !board.Flagged[i] {
				t.Errorf("mine at %d should have been flagged", i)
			}
			continue
		}
		if !board.Revealed[i] {
			t.Errorf("non-mine cell %d should have been revealed", i)
		}
	}
}

func TestSolveIsolatedRegionIsUnsolvable(t *testing.T) {
	// width=4, height=1: 0,1,M,1 — the last cell is cut off from the
	// seeded opening by the mine and can only be reached by a guess.
	board := NewBoard(4, 1, 1)
	board.Grid = []int8{0, 1, Mine, 1}

	solvable, _ := Solve(board)
	if solvable {
		t.Fatal("isolated region beyond a single clue must not be solvable without guessing")
	}
}

func TestSolveReportsUnsolvableWhenNoStartingCellExists(t *testing.T) {
	board := NewBoard(2, 1, 2)
	board.Grid = []int8{Mine, Mine}

	solvable, score := Solve(board)
	if solvable {
		t.Fatal("an all-mine board has no legal opening and cannot be solved")
	}
	if score != 0 {
		t.Errorf("score = %v, want 0", score)
	}
}

func TestSolveIsDeterministic(t *testing.T) {
	board := NewBoard(9, 9, 10)
	Generate(board, NewPRNG(99))

	a, scoreA := Solve(board)
	b, scoreB := Solve(board)

	if a != b || scoreA != scoreB {
		t.Fatalf("Solve is not idempotent on repeated runs: (%v,%v) vs (%v,%v)", a, scoreA, b, scoreB)
	}
}
