// Package tetris is the falling-block game core: the shape table, the board
// and the command state machine. It has no terminal or rendering imports.
package tetris

const (
	SpawnX    = 3
	SpawnY    = 0
	rotations = 4
)

type Kind uint8

const (
	I Kind = iota
	O
	T
	S
	Z
	J
	L
)

var AllKinds = [...]Kind{I, O, T, S, Z, J, L}

func (k Kind) String() string {
	if int(k) < len(AllKinds) {
		return "IOTSZJL"[k : k+1]
	}
	return "?"
}

type Offset struct {
	X int
	Y int
}

// Randomizer is the piece source. *rand.Rand satisfies it.
type Randomizer interface {
	Intn(n int) int
}

var shapes = [len(AllKinds)][rotations][4]Offset{
	// I
	{
		{{0, 1}, {1, 1}, {2, 1}, {3, 1}},
		{{2, 0}, {2, 1}, {2, 2}, {2, 3}},
		{{0, 2}, {1, 2}, {2, 2}, {3, 2}},
		{{1, 0}, {1, 1}, {1, 2}, {1, 3}},
	},
	// O
	{
		{{1, 0}, {2, 0}, {1, 1}, {2, 1}},
		{{1, 0}, {2, 0}, {1, 1}, {2, 1}},
		{{1, 0}, {2, 0}, {1, 1}, {2, 1}},
		{{1, 0}, {2, 0}, {1, 1}, {2, 1}},
	},
	// T
	{
		{{1, 0}, {0, 1}, {1, 1}, {2, 1}},
		{{1, 0}, {1, 1}, {2, 1}, {1, 2}},
		{{0, 1}, {1, 1}, {2, 1}, {1, 2}},
		{{1, 0}, {0, 1}, {1, 1}, {1, 2}},
	},
	// S
	{
		{{1, 0}, {2, 0}, {0, 1}, {1, 1}},
		{{1, 0}, {1, 1}, {2, 1}, {2, 2}},
		{{1, 1}, {2, 1}, {0, 2}, {1, 2}},
		{{0, 0}, {0, 1}, {1, 1}, {1, 2}},
	},
	// Z
	{
		{{0, 0}, {1, 0}, {1, 1}, {2, 1}},
		{{2, 0}, {1, 1}, {2, 1}, {1, 2}},
		{{0, 1}, {1, 1}, {1, 2}, {2, 2}},
		{{1, 0}, {0, 1}, {1, 1}, {0, 2}},
	},
	// J
	{
		{{0, 0}, {0, 1}, {1, 1}, {2, 1}},
		{{1, 0}, {2, 0}, {1, 1}, {1, 2}},
		{{0, 1}, {1, 1}, {2, 1}, {2, 2}},
		{{1, 0}, {1, 1}, {1, 2}, {0, 2}},
	},
	// L
	{
		{{2, 0}, {0, 1}, {1, 1}, {2, 1}},
		{{1, 0}, {1, 1}, {1, 2}, {2, 2}},
		{{0, 1}, {1, 1}, {2, 1}, {0, 2}},
		{{0, 0}, {1, 0}, {1, 1}, {1, 2}},
	},
}

// Piece is a tetromino placed on the grid. Moves and rotations produce new
// values; the state commits them only when the board accepts them.
type Piece struct {
	Kind     Kind
	Rotation int
	X        int
	Y        int
}

func NewPiece(kind Kind) Piece {
	return Piece{Kind: kind, X: SpawnX, Y: SpawnY}
}

func RandomPiece(r Randomizer) Piece {
	return NewPiece(AllKinds[r.Intn(len(AllKinds))])
}

func (p Piece) Offsets() [4]Offset {
	return shapes[p.Kind%Kind(len(AllKinds))][(p.Rotation%rotations+rotations)%rotations]
}

// Blocks returns the absolute cells covered by the piece.
func (p Piece) Blocks() [4]Offset {
	blocks := p.Offsets()
	for i := range blocks {
		blocks[i].X += p.X
		blocks[i].Y += p.Y
	}
	return blocks
}

func (p Piece) Rotated() Piece {
	p.Rotation = (p.Rotation + 1) % rotations
	return p
}

func (p Piece) Shifted(dx, dy int) Piece {
	p.X += dx
	p.Y += dy
	return p
}

func (p *Piece) ResetPosition() {
	p.X = SpawnX
	p.Y = SpawnY
	p.Rotation = 0
}

// Bounds returns the inclusive min and max offsets of the current rotation.
func (p Piece) Bounds() (Offset, Offset) {
	offsets := p.Offsets()
	lo, hi := offsets[0], offsets[0]
	for _, o := range offsets[1:] {
		lo.X = min(lo.X, o.X)
		lo.Y = min(lo.Y, o.Y)
		hi.X = max(hi.X, o.X)
		hi.Y = max(hi.Y, o.Y)
	}
	return lo, hi
}
