package agent

import "github.com/hailam/quoridor/internal/board"

// Facade is the uniform contract every agent exposes.
// It is stateful: exactly one Receive may occur per turn, alternating
// with Send from the peer. Implementations are not clone-safe and not
// reentrant, matching the source's single-owner agent objects.
type Facade interface {
	// Send applies the opponent's (or an external caller's) move to the
	// agent's internal board. It returns board.ErrIllegalMove, wrapped,
	// if the move fails IsLegal; the session is expected to end there.
	Send(m board.Move) error

	// Receive chooses a move for the agent's own player, applies it to
	// the internal board, and returns it.
	Receive() (board.Move, error)
}
