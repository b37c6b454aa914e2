package domain

// Side identifies a player. Noughts move first and minimize, crosses maximize.
type Side int8

const (
	Noughts Side = -1
	NoSide  Side = 0
	Crosses Side = 1
)

// Opponent returns the other side. NoSide has no opponent.
func (s Side) Opponent() Side { return -s }

// Win returns the search value of a win for s.
func (s Side) Win() Value { return Value(s) }

func (s Side) String() string {
	switch s {
	case Noughts:
		return "noughts"
	case Crosses:
		return "crosses"
	default:
		return "none"
	}
}

// Symbol is the single-letter board mark for the side.
func (s Side) Symbol() string {
	switch s {
	case Noughts:
		return "O"
	case Crosses:
		return "X"
	default:
		return " "
	}
}

// Value is a game-theoretic result on a single axis: noughts' win is the
// minimum, crosses' win the maximum.
type Value int8

const (
	WinNoughts Value = -1
	Draw       Value = 0
	WinCrosses Value = 1
)

// Outcome classifies a position for the session layer.
type Outcome uint8

const (
	InProgress Outcome = iota
	NoughtsWon
	CrossesWon
	Drawn
)

func (o Outcome) String() string {
	switch o {
	case NoughtsWon:
		return "noughts win"
	case CrossesWon:
		return "crosses win"
	case Drawn:
		return "draw"
	default:
		return "in progress"
	}
}

// Over reports whether the game has ended.
func (o Outcome) Over() bool { return o != InProgress }

// Position is the complete game state. It is small and copied by value.
// Noughts and Crosses are disjoint 9-bit occupancy sets.
type Position struct {
	Noughts uint16
	Crosses uint16
	ToMove  Side
}

// New returns the empty board with noughts to move.
func New() Position {
	return Position{ToMove: Noughts}
}

// Apply places the mover's piece on m and passes the turn. The cell must be
// empty; Apply does not check.
func (p *Position) Apply(m Move) {
	if p.ToMove == Noughts {
		p.Noughts |= m.Mask
		p.ToMove = Crosses
	} else {
		p.Crosses |= m.Mask
		p.ToMove = Noughts
	}
}

// Undo reverses the Apply of m made immediately before.
func (p *Position) Undo(m Move) {
	if p.ToMove == Noughts {
		p.Crosses &^= m.Mask
		p.ToMove = Crosses
	} else {
		p.Noughts &^= m.Mask
		p.ToMove = Noughts
	}
}

// Occupancy is the set of filled cells.
func (p Position) Occupancy() uint16 { return p.Noughts | p.Crosses }

// Available is the set of cells held by neither side.
func (p Position) Available() uint16 { return FullBoard &^ p.Occupancy() }

// IsLegal reports whether m names an empty cell.
func (p Position) IsLegal(m Move) bool {
	return m.Mask != 0 && p.Available()&m.Mask == m.Mask
}

// Occupied returns the occupancy set of side s.
func (p Position) Occupied(s Side) uint16 {
	switch s {
	case Noughts:
		return p.Noughts
	case Crosses:
		return p.Crosses
	default:
		return 0
	}
}

// PieceAt returns the side holding cell i, or NoSide.
func (p Position) PieceAt(i int) Side {
	mask := uint16(1) << uint(i)
	switch {
	case p.Noughts&mask != 0:
		return Noughts
	case p.Crosses&mask != 0:
		return Crosses
	default:
		return NoSide
	}
}

// Mirror swaps the roles of the two sides.
func (p Position) Mirror() Position {
	return Position{Noughts: p.Crosses, Crosses: p.Noughts, ToMove: p.ToMove.Opponent()}
}

// Outcome reports whether either side has a line or the board is full.
func (p Position) Outcome() Outcome {
	switch {
	case IsWon(p.Noughts):
		return NoughtsWon
	case IsWon(p.Crosses):
		return CrossesWon
	case p.Occupancy() == FullBoard:
		return Drawn
	default:
		return InProgress
	}
}
