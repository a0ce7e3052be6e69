package board

import (
	"fmt"
	"strconv"
	"strings"
)

// ReprString encodes the board as
// "<horizontal> <vertical> <p1_pos> <p2_pos> <p1_walls> <p2_walls>" with
// both bitsets as decimal u64 and both positions as a 1-based index over
// the 81 cells. This is the only persisted artifact the core
// exposes; it is for debugging/replay, not a rendering surface.
func (b Board) ReprString() string {
	return fmt.Sprintf("%d %d %d %d %d %d",
		b.HorizontalWalls, b.VerticalWalls,
		int(b.P1Pos)+1, int(b.P2Pos)+1,
		b.P1Walls, b.P2Walls)
}

// Parse decodes a ReprString back into a Board: the reverse direction
// is what makes the debug format useful beyond display, for scripted
// replay of a captured game.
func Parse(s string) (Board, error) {
	fields := strings.Fields(s)
	if len(fields) != 6 {
		return Board{}, fmt.Errorf("%w: expected 6 fields, got %d", ErrMalformedRepr, len(fields))
	}

	h, err1 := strconv.ParseUint(fields[0], 10, 64)
	v, err2 := strconv.ParseUint(fields[1], 10, 64)
	p1, err3 := strconv.ParseUint(fields[2], 10, 8)
	p2, err4 := strconv.ParseUint(fields[3], 10, 8)
	w1, err5 := strconv.ParseUint(fields[4], 10, 8)
	w2, err6 := strconv.ParseUint(fields[5], 10, 8)
	for _, err := range []error{err1, err2, err3, err4, err5, err6} {
		if err != nil {
			return Board{}, fmt.Errorf("%w: %v", ErrMalformedRepr, err)
		}
	}
	if p1 < 1 || p1 > boardSize*boardSize || p2 < 1 || p2 > boardSize*boardSize {
		return Board{}, fmt.Errorf("%w: position out of range", ErrMalformedRepr)
	}

	return Board{
		HorizontalWalls: h,
		VerticalWalls:   v,
		P1Pos:           uint8(p1 - 1),
		P2Pos:           uint8(p2 - 1),
		P1Walls:         uint8(w1),
		P2Walls:         uint8(w2),
	}, nil
}

// String renders a human-readable ASCII grid with wall glyphs. It is a
// debug/test helper, not a rendering engine — terminal rendering is an
// external collaborator's concern.
func (b Board) String() string {
	var sb strings.Builder
	p1x, p1y := b.PlayerLocation(Player1)
	p2x, p2y := b.PlayerLocation(Player2)

	for y := boardSize - 1; y >= 0; y-- {
		for x := 0; x < boardSize; x++ {
			switch {
			case x == p1x && y == p1y:
				sb.WriteByte('1')
			case x == p2x && y == p2y:
				sb.WriteByte('2')
			default:
				sb.WriteByte('.')
			}
			if x < boardSize-1 {
				if x < wallGrid && (b.GetWallState(x, y) == WallVertical || (y-1 >= 0 && b.GetWallState(x, y-1) == WallVertical)) {
					sb.WriteByte('|')
				} else {
					sb.WriteByte(' ')
				}
			}
		}
		sb.WriteByte('\n')
		if y > 0 {
			for x := 0; x < boardSize; x++ {
				if x < wallGrid && (b.GetWallState(x, y-1) == WallHorizontal || (x-1 >= 0 && b.GetWallState(x-1, y-1) == WallHorizontal)) {
					sb.WriteByte('-')
				} else {
					sb.WriteByte(' ')
				}
				if x < boardSize-1 {
					sb.WriteByte(' ')
				}
			}
			sb.WriteByte('\n')
		}
	}
	sb.WriteString(fmt.Sprintf("p1 walls=%d p2 walls=%d\n", b.P1Walls, b.P2Walls))
	return sb.String()
}
