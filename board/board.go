package board

import (
	"sort"
)

// New constructs a Board from row-major per-cell color tokens.
// It deep-copies cellColors to ensure immutability.
// Returns ErrBadDimensions if rows or cols is not positive,
// ErrCellCount if len(cellColors) != rows*cols.
// Complexity: O(rows×cols) time and memory.
func New(rows, cols int, cellColors []Color) (*Board, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrBadDimensions
	}
	if len(cellColors) != rows*cols {
		return nil, ErrCellCount
	}
	// Deep copy to prevent external mutation
	cells := make([]Color, len(cellColors))
	copy(cells, cellColors)

	// Derive the distinct token set in ascending order.
	seen := make(map[Color]struct{}, rows)
	for _, c := range cells {
		seen[c] = struct{}{}
	}
	colors := make([]Color, 0, len(seen))
	for c := range seen {
		colors = append(colors, c)
	}
	sort.Slice(colors, func(i, j int) bool { return colors[i] < colors[j] })

	// Dense slot per cell: position of its token within colors.
	index := make(map[Color]int, len(colors))
	for i, c := range colors {
		index[c] = i
	}
	slots := make([]int, len(cells))
	for i, c := range cells {
		slots[i] = index[c]
	}

	b := &Board{
		rows:       rows,
		cols:       cols,
		cellColors: cells,
		colors:     colors,
		slots:      slots,
	}

	return b, nil
}

// FromGrid constructs a Board from a non-empty, rectangular 2D slice of
// color tokens, grid[row][col].
// Returns ErrBadDimensions if grid has no rows or no columns,
// ErrNonRectangular if any row length differs.
// Complexity: O(rows×cols) time and memory.
func FromGrid(grid [][]Color) (*Board, error) {
	if len(grid) == 0 || len(grid[0]) == 0 {
		return nil, ErrBadDimensions
	}
	rows, cols := len(grid), len(grid[0])
	cells := make([]Color, 0, rows*cols)
	for _, row := range grid {
		if len(row) != cols {
			return nil, ErrNonRectangular
		}
		cells = append(cells, row...)
	}

	return New(rows, cols, cells)
}

// Rows returns the number of board rows.
func (b *Board) Rows() int { return b.rows }

// Cols returns the number of board columns.
func (b *Board) Cols() int { return b.cols }

// CellCount returns rows*cols, the number of cells on the board.
func (b *Board) CellCount() int { return len(b.cellColors) }

// InBounds reports whether (row, col) lies within the board boundaries.
// Complexity: O(1).
func (b *Board) InBounds(row, col int) bool {
	return row >= 0 && row < b.rows && col >= 0 && col < b.cols
}

// Index maps (row, col) to a row-major index: row*Cols + col.
// Complexity: O(1).
func (b *Board) Index(row, col int) int {
	return row*b.cols + col
}

// Coordinate converts a row-major index back to (row, col).
// Complexity: O(1).
func (b *Board) Coordinate(idx int) (row, col int) {
	return idx / b.cols, idx % b.cols
}

// ColorOf returns the region token of the cell at idx,
// or ErrCellIndex if idx is out of range.
func (b *Board) ColorOf(idx int) (Color, error) {
	if idx < 0 || idx >= len(b.cellColors) {
		return 0, ErrCellIndex
	}

	return b.cellColors[idx], nil
}

// ColorSlot returns the dense slot (position within Colors()) of the cell
// at idx. The caller must supply a valid index; used in solver hot paths
// where bounds are established once at entry.
func (b *Board) ColorSlot(idx int) int {
	return b.slots[idx]
}

// Colors returns a copy of the distinct region tokens in ascending order.
func (b *Board) Colors() []Color {
	out := make([]Color, len(b.colors))
	copy(out, b.colors)

	return out
}

// ColorCount returns the number of distinct region tokens on the board.
func (b *Board) ColorCount() int { return len(b.colors) }
