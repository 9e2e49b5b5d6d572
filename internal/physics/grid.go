package physics

import (
	"math"
	"sort"

	"github.com/tomz197/warpteroids/internal/vector"
)

// SpatialGrid is a uniform grid for broad-phase collision detection on a
// wrapping board. Objects are inserted by position and index, then nearby
// objects are found through a 3x3 cell neighborhood lookup.
//
// Cell size must be >= the largest center distance at which two objects can
// still touch, otherwise pairs are missed.
type SpatialGrid struct {
	origin      vector.Vector
	invCellSize float64
	cols        int
	rows        int
	cells       []gridCell

	// seen[i] == stamp marks index i as already reported for the current query
	seen  []uint32
	stamp uint32
}

// gridCell stores the indices of objects that fall within a grid cell.
// The slice is reused between frames (reset to [:0]) to avoid allocations.
type gridCell struct {
	items []int
}

// NewSpatialGrid creates a grid covering b with square cells of cellSize.
func NewSpatialGrid(b Bounds, cellSize float64) *SpatialGrid {
	cols := int(math.Ceil(b.Width() / cellSize))
	rows := int(math.Ceil(b.Height() / cellSize))
	if cols < 1 {
		cols = 1
	}
	if rows < 1 {
		rows = 1
	}

	return &SpatialGrid{
		origin:      vector.New(b.Left, b.Top),
		invCellSize: 1.0 / cellSize,
		cols:        cols,
		rows:        rows,
		cells:       make([]gridCell, cols*rows),
	}
}

// Clear removes all items from the grid without deallocating cell memory.
func (g *SpatialGrid) Clear() {
	for i := range g.cells {
		g.cells[i].items = g.cells[i].items[:0]
	}
}

// Insert adds an item (identified by index) at the given board position.
func (g *SpatialGrid) Insert(p vector.Vector, index int) {
	col, row := g.posToCell(p)
	idx := row*g.cols + col
	g.cells[idx].items = append(g.cells[idx].items, index)
	if index >= len(g.seen) {
		g.seen = append(g.seen, make([]uint32, index+1-len(g.seen))...)
	}
}

// Move relocates index from the cell of from to the cell of to. Positions
// changed by a collision response must be moved before the next lookup.
func (g *SpatialGrid) Move(from, to vector.Vector, index int) {
	fc, fr := g.posToCell(from)
	tc, tr := g.posToCell(to)
	if fc == tc && fr == tr {
		return
	}
	src := &g.cells[fr*g.cols+fc]
	for k, idx := range src.items {
		if idx == index {
			last := len(src.items) - 1
			src.items[k] = src.items[last]
			src.items = src.items[:last]
			break
		}
	}
	dst := &g.cells[tr*g.cols+tc]
	dst.items = append(dst.items, index)
}

// Candidates appends to dst, in ascending order and without duplicates, the
// indices stored in the 3x3 neighborhood around p that are greater than after.
// Neighborhoods wrap at the board edges.
func (g *SpatialGrid) Candidates(p vector.Vector, after int, dst []int) []int {
	g.stamp++
	if g.stamp == 0 {
		clear(g.seen)
		g.stamp = 1
	}

	start := len(dst)
	col, row := g.posToCell(p)
	for dr := -1; dr <= 1; dr++ {
		r := wrapIndex(row+dr, g.rows)
		for dc := -1; dc <= 1; dc++ {
			c := wrapIndex(col+dc, g.cols)
			for _, idx := range g.cells[r*g.cols+c].items {
				if idx <= after || g.seen[idx] == g.stamp {
					continue
				}
				g.seen[idx] = g.stamp
				dst = append(dst, idx)
			}
		}
	}
	sort.Ints(dst[start:])
	return dst
}

func wrapIndex(i, n int) int {
	if i < 0 {
		return i + n
	}
	if i >= n {
		return i - n
	}
	return i
}

// posToCell converts board coordinates to grid cell coordinates.
// Clamps to valid range for objects slightly outside the board.
func (g *SpatialGrid) posToCell(p vector.Vector) (col, row int) {
	col = int((p.X - g.origin.X) * g.invCellSize)
	if col < 0 {
		col = 0
	} else if col >= g.cols {
		col = g.cols - 1
	}

	row = int((p.Y - g.origin.Y) * g.invCellSize)
	if row < 0 {
		row = 0
	} else if row >= g.rows {
		row = g.rows - 1
	}

	return col, row
}
