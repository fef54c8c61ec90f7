package solver_test

import (
	"testing"

	"github.com/katalvlaran/queens/board"
)

//----------------------------------------------------------------------------//
// Shared fixtures
//----------------------------------------------------------------------------//

// trivialBoard is the 1×1 instance: one cell, one region. Solution {0}.
func trivialBoard(t *testing.T) *board.Board {
	t.Helper()
	b, err := board.New(1, 1, []board.Color{0})
	if err != nil {
		t.Fatalf("New(1,1) error: %v", err)
	}

	return b
}

// unsolvable2x2 pairs the two diagonals into regions: cells 0 and 3 share
// region 0, cells 1 and 2 share region 1. Any placement covering both
// regions collides on rows, columns, or diagonal adjacency.
func unsolvable2x2(t *testing.T) *board.Board {
	t.Helper()
	b, err := board.New(2, 2, []board.Color{0, 1, 1, 0})
	if err != nil {
		t.Fatalf("New(2,2) error: %v", err)
	}

	return b
}

// unique4x4 has exactly one valid placement: cells {2, 4, 11, 13}.
// Region layout (A=0, B=1, C=2, D=3):
//
//	A A A A
//	B B C A
//	B D C C
//	B D D D
//
// Geometrically only two non-touching row/column placements exist on 4×4;
// the region shapes rule one of them out.
func unique4x4(t *testing.T) *board.Board {
	t.Helper()
	b, err := board.FromGrid([][]board.Color{
		{0, 0, 0, 0},
		{1, 1, 2, 0},
		{1, 3, 2, 2},
		{1, 3, 3, 3},
	})
	if err != nil {
		t.Fatalf("FromGrid(4x4) error: %v", err)
	}

	return b
}

// bandBoard colors each row as its own region (size n×n). The region
// constraint collapses into the row constraint, leaving the pure
// no-diagonal-touch placement problem: solvable for n=1 and n≥4,
// unsolvable for n=2 and n=3.
func bandBoard(t *testing.T, n int) *board.Board {
	t.Helper()
	cells := make([]board.Color, n*n)
	for idx := range cells {
		cells[idx] = board.Color(idx / n)
	}
	b, err := board.New(n, n, cells)
	if err != nil {
		t.Fatalf("New(%d,%d) error: %v", n, n, err)
	}

	return b
}

// stripeBoard colors cell (r,c) with (r+c) mod n — diagonal stripes.
func stripeBoard(t *testing.T, n int) *board.Board {
	t.Helper()
	cells := make([]board.Color, n*n)
	for idx := range cells {
		cells[idx] = board.Color((idx/n + idx%n) % n)
	}
	b, err := board.New(n, n, cells)
	if err != nil {
		t.Fatalf("New(%d,%d) error: %v", n, n, err)
	}

	return b
}

// corpus returns named small boards mixing solvable and unsolvable
// instances, used by the pruning-soundness and oracle tests.
func corpus(t *testing.T) map[string]*board.Board {
	t.Helper()

	return map[string]*board.Board{
		"Trivial1x1":    trivialBoard(t),
		"Unsolvable2x2": unsolvable2x2(t),
		"Band3x3":       bandBoard(t, 3),
		"Unique4x4":     unique4x4(t),
		"Band5x5":       bandBoard(t, 5),
		"Stripe5x5":     stripeBoard(t, 5),
		"Band6x6":       bandBoard(t, 6),
		"OneRegion2x2":  mustBoard(t, 2, 2, []board.Color{0, 0, 0, 0}),
	}
}

func mustBoard(t *testing.T, rows, cols int, cells []board.Color) *board.Board {
	t.Helper()
	b, err := board.New(rows, cols, cells)
	if err != nil {
		t.Fatalf("New(%d,%d) error: %v", rows, cols, err)
	}

	return b
}

//----------------------------------------------------------------------------//
// Brute-force oracle
//----------------------------------------------------------------------------//

// bruteForceSolvable exhaustively enumerates one-marker-per-row column
// permutations of a square board and reports whether any satisfies the
// column, region, and diagonal constraints. Exponential; call only on
// boards up to ~6×6.
func bruteForceSolvable(t *testing.T, b *board.Board) bool {
	t.Helper()
	if b.Rows() != b.Cols() {
		t.Fatalf("oracle requires a square board, got %dx%d", b.Rows(), b.Cols())
	}
	n := b.Rows()
	colOf := make([]int, n) // colOf[row] = chosen column, -1 while unset
	for i := range colOf {
		colOf[i] = -1
	}
	colTaken := make([]bool, n)

	var rec func(row int) bool
	rec = func(row int) bool {
		if row == n {
			return placementValid(t, b, colOf)
		}
		for col := 0; col < n; col++ {
			if colTaken[col] {
				continue
			}
			colTaken[col] = true
			colOf[row] = col
			if rec(row + 1) {
				return true
			}
			colOf[row] = -1
			colTaken[col] = false
		}

		return false
	}

	return rec(0)
}

// placementValid checks region distinctness and diagonal adjacency for a
// complete one-column-per-row assignment.
func placementValid(t *testing.T, b *board.Board, colOf []int) bool {
	t.Helper()
	seen := make(map[board.Color]bool, len(colOf))
	for row, col := range colOf {
		c, err := b.ColorOf(b.Index(row, col))
		if err != nil {
			t.Fatalf("ColorOf error: %v", err)
		}
		if seen[c] {
			return false
		}
		seen[c] = true
		if row > 0 {
			d := colOf[row] - colOf[row-1]
			if d == 1 || d == -1 {
				return false
			}
		}
	}

	return true
}

//----------------------------------------------------------------------------//
// Solution validity checker
//----------------------------------------------------------------------------//

// assertValidSolution fails the test unless cells is a complete, valid
// placement on b: exactly Rows() cells, full row/column/region coverage,
// and no two cells diagonally adjacent.
func assertValidSolution(t *testing.T, b *board.Board, cells []int) {
	t.Helper()
	if len(cells) != b.Rows() {
		t.Fatalf("solution has %d cells; want %d", len(cells), b.Rows())
	}

	rowSeen := make(map[int]bool, len(cells))
	colSeen := make(map[int]bool, len(cells))
	colorSeen := make(map[board.Color]bool, len(cells))
	for _, idx := range cells {
		row, col := b.Coordinate(idx)
		if rowSeen[row] {
			t.Fatalf("row %d used twice in %v", row, cells)
		}
		if colSeen[col] {
			t.Fatalf("col %d used twice in %v", col, cells)
		}
		c, err := b.ColorOf(idx)
		if err != nil {
			t.Fatalf("ColorOf(%d) error: %v", idx, err)
		}
		if colorSeen[c] {
			t.Fatalf("region %d used twice in %v", c, cells)
		}
		rowSeen[row], colSeen[col], colorSeen[c] = true, true, true
	}

	for i, a := range cells {
		ar, ac := b.Coordinate(a)
		for _, o := range cells[i+1:] {
			or, oc := b.Coordinate(o)
			dr, dc := ar-or, ac-oc
			if (dr == 1 || dr == -1) && (dc == 1 || dc == -1) {
				t.Fatalf("cells %d and %d are diagonally adjacent in %v", a, o, cells)
			}
		}
	}
}
