// Package mcts implements the UCT Monte Carlo tree search agent: a node
// arena addressed by integer index, lazy expansion, a direct-addressed
// approximate transposition table, an exit-invariant "dirty state"
// sentinel in place of eager reachability proofs on every wall
// candidate, and a worker pool of goroutines running playouts against
// one shared, coarse-locked Tree.
package mcts

import (
	"context"
	"fmt"
	"log"
	"sync/atomic"
	"time"

	"github.com/dustin/go-humanize"
	"golang.org/x/sync/errgroup"

	"github.com/hailam/quoridor/internal/agent"
	"github.com/hailam/quoridor/internal/agent/greedy"
	"github.com/hailam/quoridor/internal/board"
)

// Config controls one search. Playouts is the total number of select-
// expand-evaluate-backprop cycles to run, split across Workers
// goroutines sharing one Tree. TableSize is clamped to [1024, 4096] by
// newTranspositionTable. Exploration is the UCT constant c.
type Config struct {
	Playouts    int
	Workers     int
	TableSize   int
	Exploration float64
}

// DefaultConfig runs a few thousand playouts, spread across a worker
// pool, against a table sized at the top of its allowed range.
var DefaultConfig = Config{
	Playouts:    2000,
	Workers:     16,
	TableSize:   4096,
	Exploration: 0.2,
}

// Agent is a stateful MCTS facade.
type Agent struct {
	Board  board.Board
	Me     board.Player
	Turn   board.Player
	Config Config
}

// New returns an MCTS agent at the canonical start, playing as me.
func New(me board.Player, cfg Config) *Agent {
	return &Agent{Board: board.Empty(), Me: me, Turn: board.Player1, Config: cfg}
}

var _ agent.Facade = (*Agent)(nil)

// Send applies the move belonging to whoever's turn it currently is.
func (a *Agent) Send(m board.Move) error {
	if !a.Board.IsLegal(a.Turn, m) {
		return fmt.Errorf("mcts: %w: %s by %s", board.ErrIllegalMove, m, a.Turn)
	}
	if err := a.Board.ApplyMove(m, a.Turn); err != nil {
		return err
	}
	a.Turn = a.Turn.Opponent()
	return nil
}

// Receive runs the configured search, applies the chosen move, and
// returns it. Falls back to the greedy agent's move on NoProgress (an
// empty root candidate set, or zero configured playouts).
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

// Search builds a fresh Tree rooted at b with p to move, runs
// cfg.Playouts playouts split across cfg.Workers goroutines pulling
// from a shared atomic counter, and returns the root's most-visited
// child move. Returns false (NoProgress) if p has no legal moves at all,
// or if no playout ran and so the root has no expanded child.
func Search(b board.Board, p board.Player, cfg Config) (board.Move, bool) {
	rootMoves := b.LegalMoves(p)
	if len(rootMoves) == 0 {
		return board.Move{}, false
	}

	workers := cfg.Workers
	if workers <= 0 {
		workers = 1
	}
	playouts := cfg.Playouts

	tree := newTree(b, p, rootMoves, cfg)

	if playouts > 0 {
		var done int64
		g, _ := errgroup.WithContext(context.Background())
		for w := 0; w < workers; w++ {
			g.Go(func() error {
				for atomic.AddInt64(&done, 1) <= int64(playouts) {
					tree.playout()
				}
				return nil
			})
		}
		start := time.Now()
		_ = g.Wait()
		elapsed := time.Since(start)
		logSearchStats(playouts, elapsed)
	}

	return tree.bestRootMove()
}

// logSearchStats reports search throughput, the same kind of diagnostic
// line any search agent worth tuning logs after a timed run.
func logSearchStats(playouts int, elapsed time.Duration) {
	if elapsed <= 0 {
		return
	}
	rate := float64(playouts) / elapsed.Seconds()
	log.Printf("mcts: %s playouts in %s (%s/s)",
		humanize.Comma(int64(playouts)), elapsed.Round(time.Millisecond), humanize.Comma(int64(rate)))
}
