package board

import "fmt"

// MoveKind tags the Move sum type.
type MoveKind uint8

const (
	MoveKindToken MoveKind = iota
	MoveKindWall
)

// Move is the tagged move value: either a token step in one of the four
// relative directions, or a wall placement anchored at (X, Y).
//
// Only the fields relevant to Kind are meaningful; NewTokenMove and
// NewWallMove are the only supported constructors so a Move is always
// well-formed.
type Move struct {
	Kind        MoveKind
	Direction   Direction
	Orientation Orientation
	X, Y        int
}

// NewTokenMove builds a relative token move.
func NewTokenMove(d Direction) Move {
	return Move{Kind: MoveKindToken, Direction: d}
}

// NewWallMove builds a wall placement anchored at (x, y).
func NewWallMove(o Orientation, x, y int) Move {
	return Move{Kind: MoveKindWall, Orientation: o, X: x, Y: y}
}

func (m Move) String() string {
	if m.Kind == MoveKindToken {
		return fmt.Sprintf("MoveToken(%s)", m.Direction)
	}
	return fmt.Sprintf("AddWall(%s,(%d,%d))", m.Orientation, m.X, m.Y)
}

// allWallMoves enumerates every (orientation, y, x) anchor in lexicographic
// (orientation, y, x) order, matching the tie-break rule used by the greedy
// agent and by LegalMoves' candidate enumeration.
func allWallMoves() []Move {
	moves := make([]Move, 0, 2*wallGrid*wallGrid)
	for _, o := range [2]Orientation{Horizontal, Vertical} {
		for y := 0; y < wallGrid; y++ {
			for x := 0; x < wallGrid; x++ {
				moves = append(moves, NewWallMove(o, x, y))
			}
		}
	}
	return moves
}
