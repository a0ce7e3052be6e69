// Package alphabeta implements the bounded negamax/alpha-beta agent.
// Search iteratively deepens under a wall-clock budget (or a fixed
// depth, or both), the way the Rust original's "rubot" alpha-beta does,
// and falls back to the greedy agent's move whenever it can't complete
// even a single ply in time.
package alphabeta

import (
	"fmt"
	"time"

	"github.com/hailam/quoridor/internal/agent"
	"github.com/hailam/quoridor/internal/agent/greedy"
	"github.com/hailam/quoridor/internal/board"
)

const infinity = 1 << 30

// Config bounds a search: MaxDepth <= 0 means "no depth cap" (bounded
// only by TimeBudget); TimeBudget <= 0 means "no deadline" (bounded only
// by MaxDepth). At least one should be set or the search runs to
// MaxDepth's internal ceiling.
type Config struct {
	MaxDepth   int
	TimeBudget time.Duration
}

// DefaultConfig matches the budget the source's rubot agent defaults to:
// a short per-move time box, deep enough to matter, never blocking
// indefinitely.
var DefaultConfig = Config{MaxDepth: 0, TimeBudget: 500 * time.Millisecond}

// Agent is a stateful alpha-beta facade.
type Agent struct {
	Board  board.Board
	Me     board.Player
	Turn   board.Player
	Config Config
}

// New returns an alpha-beta agent at the canonical start, playing as me.
func New(me board.Player, cfg Config) *Agent {
	return &Agent{Board: board.Empty(), Me: me, Turn: board.Player1, Config: cfg}
}

var _ agent.Facade = (*Agent)(nil)

// Send applies the move belonging to whoever's turn it currently is.
func (a *Agent) Send(m board.Move) error {
	if !a.Board.IsLegal(a.Turn, m) {
		return fmt.Errorf("alphabeta: %w: %s by %s", board.ErrIllegalMove, m, a.Turn)
	}
	if err := a.Board.ApplyMove(m, a.Turn); err != nil {
		return err
	}
	a.Turn = a.Turn.Opponent()
	return nil
}

// Receive runs the bounded search, applies the chosen move, and returns
// it. If the search yields no move at all (NoProgress), it silently
// falls back to the greedy agent's choice.
func (a *Agent) Receive() (board.Move, error) {
	best, ok := Search(a.Board, a.Turn, a.Config)
	if !ok {
		fallback, err := greedy.BestMove(a.Board, a.Turn)
		if err != nil {
			return board.Move{}, err
		}
		best = fallback
	}
	if err := a.Board.ApplyMove(best, a.Turn); err != nil {
		return board.Move{}, err
	}
	a.Turn = a.Turn.Opponent()
	return best, nil
}

// Search iteratively deepens a negamax/alpha-beta search for player p
// from board b, stopping at cfg.MaxDepth plies or cfg.TimeBudget,
// whichever binds first. It returns the best move found at the deepest
// FULLY completed ply, and false if even depth 1 couldn't complete
// (NoProgress) or there are no legal moves.
func Search(b board.Board, p board.Player, cfg Config) (board.Move, bool) {
	moves := b.LegalMoves(p)
	if len(moves) == 0 {
		return board.Move{}, false
	}

	maxDepth := cfg.MaxDepth
	if maxDepth <= 0 {
		maxDepth = 64
	}
	var deadline time.Time
	if cfg.TimeBudget > 0 {
		deadline = time.Now().Add(cfg.TimeBudget)
	}

	var best board.Move
	found := false

	for depth := 1; depth <= maxDepth; depth++ {
		if !deadline.IsZero() && time.Now().After(deadline) {
			break
		}
		depthBest, depthScore, ok := searchRoot(b, p, moves, depth, deadline)
		if !ok {
			break
		}
		best, found = depthBest, true
		_ = depthScore
	}
	return best, found
}

func searchRoot(b board.Board, p board.Player, moves []board.Move, depth int, deadline time.Time) (board.Move, int, bool) {
	alpha, beta := -infinity, infinity
	bestScore := -infinity
	var bestMove board.Move

	for _, m := range moves {
		child := b
		if err := child.ApplyMove(m, p); err != nil {
			continue
		}
		val, ok := negamax(child, p.Opponent(), depth-1, -beta, -alpha, deadline)
		if !ok {
			return board.Move{}, 0, false
		}
		val = -val
		if val > bestScore {
			bestScore = val
			bestMove = m
		}
		if bestScore > alpha {
			alpha = bestScore
		}
	}
	return bestMove, bestScore, true
}

// negamax returns ok=false if the time budget expired mid-search; the
// caller must discard the (stale) score in that case.
func negamax(b board.Board, p board.Player, depth int, alpha, beta int, deadline time.Time) (int, bool) {
	if !deadline.IsZero() && time.Now().After(deadline) {
		return 0, false
	}
	if score, terminal := agent.TerminalScore(b, p); terminal {
		return score, true
	}
	if depth <= 0 {
		return agent.Evaluate(b, p), true
	}

	moves := b.LegalMoves(p)
	if len(moves) == 0 {
		return agent.Evaluate(b, p), true
	}

	best := -infinity
	for _, m := range moves {
		child := b
		if err := child.ApplyMove(m, p); err != nil {
			continue
		}
		val, ok := negamax(child, p.Opponent(), depth-1, -beta, -alpha, deadline)
		if !ok {
			return 0, false
		}
		val = -val
		if val > best {
			best = val
		}
		if best > alpha {
			alpha = best
		}
		if alpha >= beta {
			break
		}
	}
	return best, true
}
