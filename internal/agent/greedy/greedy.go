// Package greedy implements the one-ply greedy heuristic agent:
// enumerate legal moves, score each by applying it and evaluating the
// heuristic, and play the argmax.
package greedy

import (
	"fmt"

	"github.com/hailam/quoridor/internal/agent"
	"github.com/hailam/quoridor/internal/board"
)

// Agent is a stateful greedy facade: it owns an internal board and a
// turn cursor, and plays as Me.
type Agent struct {
	Board board.Board
	Me    board.Player
	Turn  board.Player
}

// New returns a greedy agent at the canonical start, playing as me.
func New(me board.Player) *Agent {
	return &Agent{Board: board.Empty(), Me: me, Turn: board.Player1}
}

var _ agent.Facade = (*Agent)(nil)

// Send applies the move belonging to whoever's turn it currently is
// (normally the opponent) to the internal board.
func (a *Agent) Send(m board.Move) error {
	if !a.Board.IsLegal(a.Turn, m) {
		return fmt.Errorf("greedy: %w: %s by %s", board.ErrIllegalMove, m, a.Turn)
	}
	if err := a.Board.ApplyMove(m, a.Turn); err != nil {
		return err
	}
	a.Turn = a.Turn.Opponent()
	return nil
}

// Receive picks the argmax move (ties broken by enumeration order:
// directions before walls, walls in lexicographic (orientation, y, x)
// order), applies it, and returns it.
func (a *Agent) Receive() (board.Move, error) {
	best, err := BestMove(a.Board, a.Turn)
	if err != nil {
		return board.Move{}, err
	}
	if err := a.Board.ApplyMove(best, a.Turn); err != nil {
		return board.Move{}, err
	}
	a.Turn = a.Turn.Opponent()
	return best, nil
}

// BestMove enumerates b.LegalMoves(p), clones b and applies each, scores
// the result with agent.Evaluate from p's perspective, and returns the
// first move achieving the maximum score (enumeration order is the tie
// break).
func BestMove(b board.Board, p board.Player) (board.Move, error) {
	moves := b.LegalMoves(p)
	if len(moves) == 0 {
		return board.Move{}, fmt.Errorf("greedy: no legal moves for %s", p)
	}

	bestScore := -1 << 31
	var best board.Move
	for _, m := range moves {
		candidate := b
		if err := candidate.ApplyMove(m, p); err != nil {
			continue
		}
		score := agent.Evaluate(candidate, p)
		if score > bestScore {
			bestScore = score
			best = m
		}
	}
	return best, nil
}
