package board

// CandidateMoves returns the full 132-move candidate set (4 token moves
// then the 128 wall anchors, in the canonical order used for tie-breaks
// and enumeration — see LegalMoves), independent of legality. It's
// exported for agents, such as MCTS, that need the raw candidate set to
// apply their own cheaper legality filter.
func CandidateMoves() []Move {
	moves := make([]Move, 0, 4+2*wallGrid*wallGrid)
	for _, d := range allDirections {
		moves = append(moves, NewTokenMove(d))
	}
	moves = append(moves, allWallMoves()...)
	return moves
}

// IsProbablyLegal is IsLegal without the exit-invariant reachability
// proof: it checks bounds, wall budget, and the overlap rules, but does
// not run the two BFS passes that IsLegal uses to prove both players
// still have a path to their goal row.
//
// This is the cheap hedge MCTS rollouts use: a move this approves
// might still trap a player, in which
// case the caller is expected to detect that after applying it (the
// dirty-state sentinel) rather than pay for the BFS on every candidate.
// Token moves have no reachability component, so this is identical to
// IsLegal for MoveKindToken.
func (b Board) IsProbablyLegal(p Player, m Move) bool {
	if m.Kind == MoveKindToken {
		return b.IsLegal(p, m)
	}
	if !inAnchorBounds(m.X, m.Y) {
		return false
	}
	if b.AvailableWalls(p) == 0 {
		return false
	}
	return !b.wallOverlap(m.Orientation, m.X, m.Y)
}
