package engine

// DefaultBoardSize is the side length of the standard board.
const DefaultBoardSize = 10

// Cell is one board cell: either empty or filled with a color.
type Cell struct {
	Filled bool
	Color  Color // Valid only when Filled is true
}

// Board is an N×N grid of cells stored in row-major order: index = y*N + x.
// Cells become filled only through Place and empty only through ClearRow,
// ClearCol or Reset; there is no partial rollback state here.
type Board struct {
	N     int
	Cells []Cell
}

// NewBoard creates an empty n×n board.
func NewBoard(n int) *Board {
	return &Board{
		N:     n,
		Cells: make([]Cell, n*n),
	}
}

// index converts a coordinate to a flat array index.
func (b *Board) index(c Coord) int {
	return c.Y*b.N + c.X
}

// InBounds returns true if the coordinate is within the board.
func (b *Board) InBounds(c Coord) bool {
	return c.X >= 0 && c.X < b.N && c.Y >= 0 && c.Y < b.N
}

// At returns the cell at the given coordinate.
// Returns an empty cell if out of bounds.
func (b *Board) At(c Coord) Cell {
	if !b.InBounds(c) {
		return Cell{}
	}
	return b.Cells[b.index(c)]
}

// setCell writes a cell value; out-of-bounds writes are ignored.
func (b *Board) setCell(c Coord, cell Cell) {
	if b.InBounds(c) {
		b.Cells[b.index(c)] = cell
	}
}

// CanPlace returns true iff every cell of the shape translated by anchor is
// inside the board and currently empty. No side effects.
func (b *Board) CanPlace(shape *Shape, anchor Coord) bool {
	for _, off := range shape.Offsets {
		c := anchor.AddCoord(off)
		if !b.InBounds(c) || b.Cells[b.index(c)].Filled {
			return false
		}
	}
	return true
}

// Place writes the block's color into every covered cell.
// Precondition: CanPlace(block.Shape, anchor) is true.
func (b *Board) Place(block Block, anchor Coord) {
	for _, off := range block.Shape.Offsets {
		b.setCell(anchor.AddCoord(off), Cell{Filled: true, Color: block.Color})
	}
}

// IsRowFull returns true if every cell in row y is filled.
func (b *Board) IsRowFull(y int) bool {
	for x := 0; x < b.N; x++ {
		if !b.Cells[y*b.N+x].Filled {
			return false
		}
	}
	return true
}

// IsColFull returns true if every cell in column x is filled.
func (b *Board) IsColFull(x int) bool {
	for y := 0; y < b.N; y++ {
		if !b.Cells[y*b.N+x].Filled {
			return false
		}
	}
	return true
}

// ClearRow empties every cell in row y.
func (b *Board) ClearRow(y int) {
	for x := 0; x < b.N; x++ {
		b.Cells[y*b.N+x] = Cell{}
	}
}

// ClearCol empties every cell in column x.
func (b *Board) ClearCol(x int) {
	for y := 0; y < b.N; y++ {
		b.Cells[y*b.N+x] = Cell{}
	}
}

// IsEmpty returns true if every cell is empty.
func (b *Board) IsEmpty() bool {
	for _, cell := range b.Cells {
		if cell.Filled {
			return false
		}
	}
	return true
}

// FilledCount returns the number of filled cells.
func (b *Board) FilledCount() int {
	count := 0
	for _, cell := range b.Cells {
		if cell.Filled {
			count++
		}
	}
	return count
}

// FillPercent returns the filled fraction of the board in [0, 100].
func (b *Board) FillPercent() float64 {
	if len(b.Cells) == 0 {
		return 0
	}
	return float64(b.FilledCount()) * 100 / float64(len(b.Cells))
}

// Reset empties the whole board.
func (b *Board) Reset() {
	for i := range b.Cells {
		b.Cells[i] = Cell{}
	}
}

// Clone returns a deep copy of the board.
func (b *Board) Clone() *Board {
	cells := make([]Cell, len(b.Cells))
	copy(cells, b.Cells)
	return &Board{N: b.N, Cells: cells}
}

// Equal returns true if two boards have the same size and contents.
func (b *Board) Equal(other *Board) bool {
	if b.N != other.N {
		return false
	}
	for i, cell := range b.Cells {
		if cell != other.Cells[i] {
			return false
		}
	}
	return true
}
