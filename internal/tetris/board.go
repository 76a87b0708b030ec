package tetris

const (
	BoardWidth  = 10
	BoardHeight = 20
)

// Cell is either Empty or the kind of the piece that locked there.
type Cell uint8

const Empty Cell = 0

func cellOf(kind Kind) Cell {
	return Cell(kind) + 1
}

func (c Cell) Kind() (Kind, bool) {
	if c == Empty {
		return 0, false
	}
	return Kind(c - 1), true
}

func (c Cell) Filled() bool {
	return c != Empty
}

type Row [BoardWidth]Cell

type Grid [BoardHeight]Row

type Board struct {
	cells Grid
}

func NewBoard() Board {
	return Board{}
}

func inColumns(x int) bool {
	return x >= 0 && x < BoardWidth
}

func inRows(y int) bool {
	return y >= 0 && y < BoardHeight
}

// Fits reports whether every block of p lands inside the walls, above the
// floor and on an empty cell. Blocks above the top row are allowed and never
// checked for occupancy.
func (b *Board) Fits(p Piece) bool {
	for _, block := range p.Blocks() {
		if !inColumns(block.X) {
			return false
		}
		if block.Y >= BoardHeight {
			return false
		}
		if block.Y < 0 {
			continue
		}
		if b.cells[block.Y][block.X].Filled() {
			return false
		}
	}
	return true
}

// Lock writes p into the grid. Blocks outside the grid, including those above
// the top row, are dropped.
func (b *Board) Lock(p Piece) {
	for _, block := range p.Blocks() {
		if !inRows(block.Y) || !inColumns(block.X) {
			continue
		}
		b.cells[block.Y][block.X] = cellOf(p.Kind)
	}
}

func rowFull(row Row) bool {
	for _, cell := range row {
		if !cell.Filled() {
			return false
		}
	}
	return true
}

// ClearFullLines removes every full row, slides the rows above down and
// returns how many rows were removed.
func (b *Board) ClearFullLines() int {
	var compacted Grid
	cleared := 0
	write := BoardHeight
	for y := BoardHeight - 1; y >= 0; y-- {
		if rowFull(b.cells[y]) {
			cleared++
			continue
		}
		write--
		compacted[write] = b.cells[y]
	}
	b.cells = compacted
	return cleared
}

// MergedWithPiece returns a copy of the grid with p drawn on top.
func (b *Board) MergedWithPiece(p Piece) Grid {
	merged := b.cells
	for _, block := range p.Blocks() {
		if !inRows(block.Y) || !inColumns(block.X) {
			continue
		}
		merged[block.Y][block.X] = cellOf(p.Kind)
	}
	return merged
}

func (b *Board) Grid() Grid {
	return b.cells
}

func (b *Board) Cell(x, y int) Cell {
	if !inRows(y) || !inColumns(x) {
		return Empty
	}
	return b.cells[y][x]
}

// DropDistance is how many rows p can fall before it would stop fitting.
func (b *Board) DropDistance(p Piece) int {
	distance := 0
	for b.Fits(p.Shifted(0, distance+1)) {
		distance++
	}
	return distance
}
