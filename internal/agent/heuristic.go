// Package agent holds the pieces shared by every move-selecting agent:
// the heuristic evaluator and the common facade contract that external
// collaborators drive.
package agent

import "github.com/hailam/quoridor/internal/board"

// unreachablePenalty stands in for "no path to goal" when scoring a
// position the exit invariant should never actually allow to occur
// post-move; it's large enough to dominate any reachable-distance
// comparison without overflowing the alpha-beta clamp arithmetic.
const unreachablePenalty = 81

// Evaluate scores board b from player p's perspective as
// opponent_distance - own_distance: positive favors p.
func Evaluate(b board.Board, p board.Player) int {
	return goalDistance(b, p.Opponent()) - goalDistance(b, p)
}

func goalDistance(b board.Board, p board.Player) int {
	d, ok := b.DistanceToGoal(p)
	if !ok {
		return unreachablePenalty
	}
	return d
}

// TerminalScore reports whether b is terminal for p (either token already
// sits on its goal row) and, if so, the clamped ±100 score from p's
// perspective.
func TerminalScore(b board.Board, p board.Player) (score int, terminal bool) {
	if d, ok := b.DistanceToGoal(p); ok && d == 0 {
		return 100, true
	}
	if d, ok := b.DistanceToGoal(p.Opponent()); ok && d == 0 {
		return -100, true
	}
	return 0, false
}
