package board

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
)

// Hash returns a deterministic hash over both wall bitsets, both player
// positions, and both wall budgets. One source hash variant wrote
// player2_walls twice instead of player1_walls; this implementation
// always includes both.
//
// xxhash is fast and non-cryptographic, a good fit for a table probed
// millions of times per search.
func (b Board) Hash() uint64 {
	var buf [20]byte
	binary.LittleEndian.PutUint64(buf[0:8], b.HorizontalWalls)
	binary.LittleEndian.PutUint64(buf[8:16], b.VerticalWalls)
	buf[16] = b.P1Pos
	buf[17] = b.P2Pos
	buf[18] = b.P1Walls
	buf[19] = b.P2Walls
	return xxhash.Sum64(buf[:])
}
