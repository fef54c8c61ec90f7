// Package solver - depth-first backtracking search for the Queens puzzle.
//
// This file holds the canonical entry point Solve and the per-call search
// state. Candidate generation, forward checking, and ordering live in
// candidates.go; the no-goods cache lives in nogoods.go.
//
// Design principles:
//   - Strict sentinels: only errors from types.go cross the API boundary.
//   - Symmetric mutation: every place has an exact unplace on the failure
//     path; nothing is undone on the success path.
//   - Derived state discipline: pressure[idx] always equals the number of
//     currently placed markers diagonally adjacent to idx — established
//     once at entry (all zeros, no markers) and maintained only by
//     place/unplace.
package solver

import (
	"github.com/katalvlaran/queens/board"
)

// maskWidth caps rows, cols, and distinct colors: used-set tracking packs
// each dimension into a single uint64.
const maskWidth = 64

// diagonalOffsets enumerates the four diagonal neighbor directions.
var diagonalOffsets = [4][2]int{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}}

// searcher encapsulates all mutable state of one solve call.
type searcher struct {
	opts SolveOptions

	rows, cols int
	colorCount int

	// slots[idx] is the dense color slot of cell idx, prefetched from the
	// board to keep the candidate sweep free of method calls.
	slots []int

	// adj[idx] lists the on-board diagonal neighbors of cell idx.
	adj [][]int

	// pressure[idx] counts placed markers diagonally adjacent to idx.
	// A cell is eligible only while its counter is zero.
	pressure []int

	// Used-set bitmasks: bit r of rowUsed is set while row r holds a marker;
	// colUsed and colorUsed are analogous. The all* masks mark completion.
	rowUsed, colUsed, colorUsed uint64
	allRows, allCols, allColors uint64

	// partial holds chosen cell indices in placement order; its length is
	// the current search depth.
	partial []int

	nogoods *nogoodTrie
	res     *Result
}

// Solve searches board b for a placement of exactly one marker per row,
// column, and color region with no two markers diagonally adjacent.
//
// On success the returned Result holds exactly b.Rows() cell indices in
// placement order (map an index back to coordinates via b.Coordinate).
// When the search space is exhausted, Solve returns the Result (with its
// diagnostics populated and Cells nil) together with ErrNoSolution.
//
// Solve is a pure function of the board: repeated calls agree on
// found/not-found, though the specific solution among several valid ones
// may vary with candidate tie-breaking.
func Solve(b *board.Board, opts ...Option) (*Result, error) {
	// 1. Validate input board
	if b == nil {
		return nil, ErrNilBoard
	}

	// 2. Apply options
	sopts := DefaultOptions()
	var fn Option
	for _, fn = range opts {
		fn(&sopts)
	}

	// 3. Reject boards wider than the bitmask word
	if b.Rows() > maskWidth || b.Cols() > maskWidth || b.ColorCount() > maskWidth {
		return nil, ErrBoardTooLarge
	}

	// 4. Build per-call search state
	s := newSearcher(b, sopts)

	// 5. Run the recursion to completion
	if !s.search() {
		return s.res, ErrNoSolution
	}

	// 6. Success: hand the accumulated placement to the caller
	s.res.Cells = s.partial

	return s.res, nil
}

// newSearcher precomputes the diagonal-neighbor table and color slots and
// zeroes all per-call counters. Complexity: O(rows×cols).
func newSearcher(b *board.Board, opts SolveOptions) *searcher {
	rows, cols := b.Rows(), b.Cols()
	cells := b.CellCount()

	slots := make([]int, cells)
	for idx := 0; idx < cells; idx++ {
		slots[idx] = b.ColorSlot(idx)
	}

	adj := make([][]int, cells)
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			idx := b.Index(row, col)
			nbs := make([]int, 0, 4)
			for _, d := range diagonalOffsets {
				nr, nc := row+d[0], col+d[1]
				if !b.InBounds(nr, nc) {
					continue
				}
				nbs = append(nbs, b.Index(nr, nc))
			}
			adj[idx] = nbs
		}
	}

	return &searcher{
		opts:       opts,
		rows:       rows,
		cols:       cols,
		colorCount: b.ColorCount(),
		slots:      slots,
		adj:        adj,
		pressure:   make([]int, cells),
		allRows:    allMask(rows),
		allCols:    allMask(cols),
		allColors:  allMask(b.ColorCount()),
		partial:    make([]int, 0, rows),
		nogoods:    newNogoodTrie(),
		res:        &Result{},
	}
}

// allMask returns a mask with the low n bits set. n ≤ 64 is established
// at Solve entry; n == 64 must not shift out of range.
func allMask(n int) uint64 {
	if n == maskWidth {
		return ^uint64(0)
	}

	return (uint64(1) << uint(n)) - 1
}

// search is one node of the recursion. It returns true as soon as every
// row, column, and region holds a marker, leaving the winning placement
// in s.partial; it returns false once all candidate extensions of the
// current partial placement are exhausted.
func (s *searcher) search() bool {
	s.res.Expanded++

	// 1. Terminal success: all three used-sets complete
	if s.solved() {
		return true
	}

	// 2. Candidate sweep with forward check and ordering
	cands := s.candidates()

	// 3. Place / recurse / unplace, exactly symmetric on failure
	var idx int
	for _, idx = range cands {
		// Reject extensions known to be futile before paying for recursion.
		if s.opts.NoGoods && s.nogoods.futile(s.partial, idx) {
			s.res.NoGoodHits++
			continue
		}

		s.place(idx)
		if s.search() {
			// Keep the placement: it is part of the returned solution.
			return true
		}
		s.unplace(idx)
	}

	// 4. Every extension failed: remember this dead end
	if s.opts.NoGoods {
		s.nogoods.insert(s.partial)
	}

	return false
}

// solved reports whether every row, column, and region holds a marker.
func (s *searcher) solved() bool {
	return s.rowUsed == s.allRows &&
		s.colUsed == s.allCols &&
		s.colorUsed == s.allColors
}

// used reports whether the row, column, or region of a cell is committed.
func (s *searcher) used(row, col, slot int) bool {
	return (s.rowUsed>>uint(row))&1 == 1 ||
		(s.colUsed>>uint(col))&1 == 1 ||
		(s.colorUsed>>uint(slot))&1 == 1
}

// place marks the cell's row, column, and region used, raises pressure on
// its diagonal neighbors, and appends it to the partial placement.
func (s *searcher) place(idx int) {
	row, col := idx/s.cols, idx%s.cols
	s.rowUsed |= 1 << uint(row)
	s.colUsed |= 1 << uint(col)
	s.colorUsed |= 1 << uint(s.slots[idx])
	for _, n := range s.adj[idx] {
		s.pressure[n]++
	}
	s.partial = append(s.partial, idx)
}

// unplace is the exact inverse of place.
func (s *searcher) unplace(idx int) {
	row, col := idx/s.cols, idx%s.cols
	s.rowUsed &^= 1 << uint(row)
	s.colUsed &^= 1 << uint(col)
	s.colorUsed &^= 1 << uint(s.slots[idx])
	for _, n := range s.adj[idx] {
		s.pressure[n]--
	}
	s.partial = s.partial[:len(s.partial)-1]
}
