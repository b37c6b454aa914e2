package engine

import (
	"fmt"

	"github.com/jaminalder/noughts/internal/domain"
)

// Score returns the value of p under perfect play by both sides. The search
// is exhaustive and works on its own copy of p.
func Score(p domain.Position) domain.Value {
	return score(&p)
}

// BestMove returns the first move, in ascending cell order, that reaches the
// best value for the side to move. p must have at least one empty cell.
func BestMove(p domain.Position) domain.Move {
	moves := domain.ListMoves(p.Available())
	if len(moves) == 0 {
		panic(fmt.Sprintf("engine: BestMove on full board %09b/%09b", p.Noughts, p.Crosses))
	}
	stm := p.ToMove
	eval := stm.Opponent().Win()
	best := moves[0]
	for _, mv := range moves {
		p.Apply(mv)
		v := score(&p)
		p.Undo(mv)
		if improves(stm, v, eval) {
			eval = v
			best = mv
		}
	}
	return best
}

// PrincipalVariation plays BestMove for both sides from p until the game ends.
func PrincipalVariation(p domain.Position) []domain.Move {
	var line []domain.Move
	for !p.Outcome().Over() {
		mv := BestMove(p)
		p.Apply(mv)
		line = append(line, mv)
	}
	return line
}

// score mutates p through Apply/Undo pairs and leaves it as it found it.
func score(p *domain.Position) domain.Value {
	stm := p.ToMove
	opp := stm.Opponent()
	// the side that just moved is the only one that can have completed a line
	if domain.IsWon(p.Occupied(opp)) {
		return opp.Win()
	}
	occ := p.Occupancy()
	if occ == domain.FullBoard {
		return domain.Draw
	}

	eval := opp.Win()
	for _, mv := range domain.ListMoves(domain.FullBoard &^ occ) {
		p.Apply(mv)
		v := score(p)
		p.Undo(mv)
		if v == stm.Win() {
			return v
		}
		if improves(stm, v, eval) {
			eval = v
		}
	}
	return eval
}

// improves reports whether v is strictly better than cur for side s.
func improves(s domain.Side, v, cur domain.Value) bool {
	if s == domain.Noughts {
		return v < cur
	}
	return v > cur
}
