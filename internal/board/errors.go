package board

import "errors"

// Mutating-operation errors. IsLegal never returns one of these; it
// collapses all of them (plus the exit-invariant check) into a bool.
var (
	// ErrWallOverlap is returned when a wall would share an intersection
	// or a collinear span with a wall already on the board.
	ErrWallOverlap = errors.New("board: wall overlaps an existing wall")

	// ErrNoWallsLeft is returned when the player has no walls remaining.
	ErrNoWallsLeft = errors.New("board: player has no walls remaining")

	// ErrOutOfBounds is returned when a wall anchor falls outside [0,8)x[0,8).
	ErrOutOfBounds = errors.New("board: wall anchor out of bounds")

	// ErrBlockedOrOffBoard is returned by MoveToken when the destination
	// cell does not exist, the edge to it is blocked by a wall, or the
	// opponent's token occupies it.
	ErrBlockedOrOffBoard = errors.New("board: token move blocked or off board")

	// ErrIllegalMove is the facade-level error surfaced when an opponent's
	// (or caller's) move fails IsLegal. It terminates the current session.
	ErrIllegalMove = errors.New("board: illegal move")

	// ErrMalformedRepr is returned by Parse when a repr_string cannot be
	// decoded into a Board.
	ErrMalformedRepr = errors.New("board: malformed repr string")
)
