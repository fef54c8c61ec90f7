package solver

import (
	"sort"
)

// candidates computes the eligible cells at the current depth: row, column,
// and region all unused, and zero adjacency pressure. While sweeping it
// tallies, for each unused row/column/region, how many eligible cells
// remain; those spot counts feed both the forward check and the ordering
// heuristic.
//
// Returns nil when the forward check proves the current partial placement
// cannot be extended (some unused row, column, or region has zero spots).
// Complexity: O(rows×cols) sweep plus O(k log k) for k candidates.
func (s *searcher) candidates() []int {
	rowSpots := make([]int, s.rows)
	colSpots := make([]int, s.cols)
	colorSpots := make([]int, s.colorCount)

	cands := make([]int, 0, s.rows*s.cols)
	cells := len(s.slots)
	var idx, row, col, slot int
	for idx = 0; idx < cells; idx++ {
		row, col = idx/s.cols, idx%s.cols
		slot = s.slots[idx]
		if s.used(row, col, slot) || s.pressure[idx] != 0 {
			continue
		}
		rowSpots[row]++
		colSpots[col]++
		colorSpots[slot]++
		cands = append(cands, idx)
	}

	// Forward checking optimization.
	if s.opts.ForwardCheck && s.forwardCheckFails(rowSpots, colSpots, colorSpots) {
		s.res.Pruned++

		return nil
	}

	// Variable ordering heuristic: most constrained cell first.
	// The sort is unstable; ties may resolve either way without affecting
	// whether a solution is found.
	if s.opts.OrderCandidates {
		sort.Slice(cands, func(i, j int) bool {
			return s.tightness(cands[i], rowSpots, colSpots, colorSpots) <
				s.tightness(cands[j], rowSpots, colSpots, colorSpots)
		})
	}

	return cands
}

// tightness scores a candidate by the scarcest of its row, column, and
// region spot counts; lower means more constrained.
func (s *searcher) tightness(idx int, rowSpots, colSpots, colorSpots []int) int {
	return min3(rowSpots[idx/s.cols], colSpots[idx%s.cols], colorSpots[s.slots[idx]])
}

// forwardCheckFails reports whether some unused row, column, or region has
// zero eligible cells remaining — a cheap necessary-condition check, not
// full arc consistency: subtler dead ends can still slip through.
func (s *searcher) forwardCheckFails(rowSpots, colSpots, colorSpots []int) bool {
	var i int
	for i = 0; i < s.rows; i++ {
		if (s.rowUsed>>uint(i))&1 == 0 && rowSpots[i] == 0 {
			return true
		}
	}
	for i = 0; i < s.cols; i++ {
		if (s.colUsed>>uint(i))&1 == 0 && colSpots[i] == 0 {
			return true
		}
	}
	for i = 0; i < s.colorCount; i++ {
		if (s.colorUsed>>uint(i))&1 == 0 && colorSpots[i] == 0 {
			return true
		}
	}

	return false
}

// min3 returns the minimum of three ints.
func min3(a, b, c int) int {
	if a < b {
		if a < c {
			return a
		}

		return c
	}
	if b < c {
		return b
	}

	return c
}
