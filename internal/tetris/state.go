package tetris

import "math"

type Phase uint8

const (
	Playing Phase = iota
	Paused
	GameOver
)

func (p Phase) String() string {
	switch p {
	case Playing:
		return "Playing"
	case Paused:
		return "Paused"
	case GameOver:
		return "Game Over"
	default:
		return "Unknown"
	}
}

var rotationKicks = [...]int{0, -1, 1, -2, 2}

// LockResult describes what happened when a command ended with the current
// piece locking into the board.
type LockResult struct {
	Locked     bool
	Cleared    int
	Distance   int
	ScoreDelta uint32
}

// State is the whole game: board, falling piece, queued piece, counters and
// phase. Every mutation of the board goes through its methods.
type State struct {
	board   Board
	current Piece
	next    Piece
	score   uint32
	lines   uint32
	phase   Phase
	rng     Randomizer
}

func New(rng Randomizer) *State {
	s := &State{
		board:   NewBoard(),
		current: RandomPiece(rng),
		next:    RandomPiece(rng),
		phase:   Playing,
		rng:     rng,
	}
	if !s.board.Fits(s.current) {
		s.phase = GameOver
	}
	return s
}

func (s *State) Board() *Board { return &s.board }
func (s *State) Current() Piece { return s.current }
func (s *State) Next() Piece { return s.next }
func (s *State) Score() uint32 { return s.score }
func (s *State) Lines() uint32 { return s.lines }
func (s *State) Phase() Phase { return s.phase }
func (s *State) Paused() bool { return s.phase == Paused }
func (s *State) GameOver() bool { return s.phase == GameOver }
func (s *State) Merged() Grid { return s.board.MergedWithPiece(s.current) }
func (s *State) playing() bool { return s.phase == Playing }

// Ghost is the current piece moved down to where a hard drop would land it.
func (s *State) Ghost() Piece {
	return s.current.Shifted(0, s.board.DropDistance(s.current))
}

func (s *State) Reset() {
	*s = *New(s.rng)
}

func (s *State) Tick() LockResult {
	if !s.playing() {
		return LockResult{}
	}
	if s.tryShift(0, 1) {
		return LockResult{}
	}
	return s.lockCurrent()
}

func (s *State) TogglePause() {
	switch s.phase {
	case Playing:
		s.phase = Paused
	case Paused:
		s.phase = Playing
	}
}

func (s *State) MoveHorizontal(delta int) bool {
	if !s.playing() {
		return false
	}
	return s.tryShift(delta, 0)
}

// SoftDrop moves the piece one row down for one point. A blocked soft drop
// does not lock the piece.
func (s *State) SoftDrop() bool {
	if !s.playing() {
		return false
	}
	if !s.tryShift(0, 1) {
		return false
	}
	s.score = saturatingAdd(s.score, 1)
	return true
}

func (s *State) HardDrop() LockResult {
	if !s.playing() {
		return LockResult{}
	}
	distance := 0
	for s.tryShift(0, 1) {
		distance++
	}
	bonus := saturatingMul(uint32(distance), 2)
	s.score = saturatingAdd(s.score, bonus)
	result := s.lockCurrent()
	result.Distance = distance
	result.ScoreDelta = saturatingAdd(result.ScoreDelta, bonus)
	return result
}

// Rotate turns the piece clockwise, trying horizontal kicks in order. When no
// kick fits the piece is left as it was.
func (s *State) Rotate() bool {
	if !s.playing() {
		return false
	}
	rotated := s.current.Rotated()
	for _, dx := range rotationKicks {
		candidate := rotated.Shifted(dx, 0)
		if s.board.Fits(candidate) {
			s.current = candidate
			return true
		}
	}
	return false
}

func (s *State) tryShift(dx, dy int) bool {
	candidate := s.current.Shifted(dx, dy)
	if !s.board.Fits(candidate) {
		return false
	}
	s.current = candidate
	return true
}

func (s *State) lockCurrent() LockResult {
	s.board.Lock(s.current)
	cleared := s.board.ClearFullLines()
	reward := lineReward(cleared)
	s.score = saturatingAdd(s.score, reward)
	s.lines = saturatingAdd(s.lines, uint32(cleared))
	s.spawnNext()
	return LockResult{Locked: true, Cleared: cleared, ScoreDelta: reward}
}

func (s *State) spawnNext() {
	s.current = s.next
	s.current.ResetPosition()
	s.next = RandomPiece(s.rng)
	if !s.board.Fits(s.current) {
		s.phase = GameOver
	}
}

func lineReward(cleared int) uint32 {
	switch {
	case cleared <= 0:
		return 0
	case cleared == 1:
		return 100
	case cleared == 2:
		return 250
	case cleared == 3:
		return 500
	case cleared == 4:
		return 800
	default:
		return saturatingMul(uint32(cleared), 200)
	}
}

func saturatingAdd(a, b uint32) uint32 {
	if a > math.MaxUint32-b {
		return math.MaxUint32
	}
	return a + b
}

func saturatingMul(a, b uint32) uint32 {
	product := uint64(a) * uint64(b)
	if product > math.MaxUint32 {
		return math.MaxUint32
	}
	return uint32(product)
}
