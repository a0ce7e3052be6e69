// Package board implements the Quoridor board: a compact bit-packed 9x9
// grid with two 64-bit wall bitsets, wall-legality checking under the
// exit invariant, shortest-path-to-goal queries, and a deterministic hash
// suitable for transposition tables.
package board

const (
	boardSize    = 9 // cells along one edge, 0..8
	wallGrid     = 8 // intersections along one edge, 0..7
	startWalls   = 10
	player1Start = 4 // (4, 0)
	player2Start = 4 // (4, 8)
)

// Board is the canonical game state. Bit index x*8+y addresses
// intersection (x, y) in both wall bitsets; player positions are packed
// as a single 0..80 cell index (y*9+x) so the whole struct is a handful
// of machine words and copies (agent-internal clones) are cheap.
type Board struct {
	HorizontalWalls uint64
	VerticalWalls   uint64
	P1Pos           uint8
	P2Pos           uint8
	P1Walls         uint8
	P2Walls         uint8
}

// Empty returns the canonical start state.
func Empty() Board {
	return Board{
		P1Pos:   uint8(posIndex(player1Start, 0)),
		P2Pos:   uint8(posIndex(player2Start, boardSize-1)),
		P1Walls: startWalls,
		P2Walls: startWalls,
	}
}

func posIndex(x, y int) int   { return y*boardSize + x }
func posX(idx int) int        { return idx % boardSize }
func posY(idx int) int        { return idx / boardSize }
func wallBit(x, y int) uint64 { return uint64(1) << uint(x*wallGrid+y) }

func inCellBounds(x, y int) bool {
	return x >= 0 && x < boardSize && y >= 0 && y < boardSize
}

func inAnchorBounds(x, y int) bool {
	return x >= 0 && x < wallGrid && y >= 0 && y < wallGrid
}

// AvailableWalls returns the walls remaining for player.
func (b Board) AvailableWalls(p Player) uint8 {
	if p == Player1 {
		return b.P1Walls
	}
	return b.P2Walls
}

// PlayerLocation returns the (x, y) cell the player's token occupies.
func (b Board) PlayerLocation(p Player) (x, y int) {
	idx := b.P1Pos
	if p == Player2 {
		idx = b.P2Pos
	}
	return posX(int(idx)), posY(int(idx))
}

func (b Board) otherPos(p Player) int {
	if p == Player1 {
		return int(b.P2Pos)
	}
	return int(b.P1Pos)
}

func (b *Board) setPos(p Player, idx int) {
	if p == Player1 {
		b.P1Pos = uint8(idx)
	} else {
		b.P2Pos = uint8(idx)
	}
}

// IsPassable reports whether the edge leaving cell (x, y) in direction d
// exists on the grid and is not blocked by a wall. Each direction reduces
// to a single bitset AND-with-mask test against at most two candidate
// wall anchors.
func (b Board) IsPassable(x, y int, d Direction) bool {
	dx, dy := d.delta()
	nx, ny := x+dx, y+dy
	if !inCellBounds(nx, ny) {
		return false
	}

	switch d {
	case Up: // edge (x,y)-(x,y+1): horizontal wall at ax in {x-1,x}, ay=y
		var mask uint64
		if inAnchorBounds(x, y) {
			mask |= wallBit(x, y)
		}
		if inAnchorBounds(x-1, y) {
			mask |= wallBit(x-1, y)
		}
		return b.HorizontalWalls&mask == 0
	case Down: // edge (x,y-1)-(x,y): horizontal wall at ax in {x-1,x}, ay=y-1
		var mask uint64
		if inAnchorBounds(x, y-1) {
			mask |= wallBit(x, y-1)
		}
		if inAnchorBounds(x-1, y-1) {
			mask |= wallBit(x-1, y-1)
		}
		return b.HorizontalWalls&mask == 0
	case Right: // edge (x,y)-(x+1,y): vertical wall at ax=x, ay in {y-1,y}
		var mask uint64
		if inAnchorBounds(x, y) {
			mask |= wallBit(x, y)
		}
		if inAnchorBounds(x, y-1) {
			mask |= wallBit(x, y-1)
		}
		return b.VerticalWalls&mask == 0
	case Left: // edge (x-1,y)-(x,y): vertical wall at ax=x-1, ay in {y-1,y}
		var mask uint64
		if inAnchorBounds(x-1, y) {
			mask |= wallBit(x-1, y)
		}
		if inAnchorBounds(x-1, y-1) {
			mask |= wallBit(x-1, y-1)
		}
		return b.VerticalWalls&mask == 0
	default:
		return false
	}
}

// GetWallState reports what, if anything, is anchored at intersection (x,y).
func (b Board) GetWallState(x, y int) WallState {
	if !inAnchorBounds(x, y) {
		return WallNone
	}
	bit := wallBit(x, y)
	switch {
	case b.HorizontalWalls&bit != 0:
		return WallHorizontal
	case b.VerticalWalls&bit != 0:
		return WallVertical
	default:
		return WallNone
	}
}

// WallState is the result of GetWallState: None, Horizontal, or Vertical.
type WallState uint8

const (
	WallNone WallState = iota
	WallHorizontal
	WallVertical
)

// wallOverlap reports whether placing a wall of orientation o at (x,y)
// would violate either overlap rule:
// a same-axis collinear conflict, or an anchor already holding a wall of
// the other orientation.
func (b Board) wallOverlap(o Orientation, x, y int) bool {
	if existing := b.GetWallState(x, y); existing != WallNone && existing != WallState(o)+WallHorizontal {
		return true // anchor already holds a wall of the opposite orientation
	}
	switch o {
	case Horizontal:
		mask := wallBit(x, y)
		if x-1 >= 0 {
			mask |= wallBit(x-1, y)
		}
		if x+1 < wallGrid {
			mask |= wallBit(x+1, y)
		}
		return b.HorizontalWalls&mask != 0
	default: // Vertical
		mask := wallBit(x, y)
		if y-1 >= 0 {
			mask |= wallBit(x, y-1)
		}
		if y+1 < wallGrid {
			mask |= wallBit(x, y+1)
		}
		return b.VerticalWalls&mask != 0
	}
}

// anchorOrientation is only meaningful when the anchor holds a wall.
func (b Board) anchorOrientation(x, y int) Orientation {
	if b.VerticalWalls&wallBit(x, y) != 0 {
		return Vertical
	}
	return Horizontal
}

// AddWall places a wall, decrementing the player's budget. It enforces
// bounds, the wall budget, and the two overlap rules, but NOT the exit
// invariant — that is IsLegal's concern.
func (b *Board) AddWall(p Player, o Orientation, x, y int) error {
	if !inAnchorBounds(x, y) {
		return ErrOutOfBounds
	}
	if b.AvailableWalls(p) == 0 {
		return ErrNoWallsLeft
	}
	if b.wallOverlap(o, x, y) {
		return ErrWallOverlap
	}
	if o == Horizontal {
		b.HorizontalWalls |= wallBit(x, y)
	} else {
		b.VerticalWalls |= wallBit(x, y)
	}
	if p == Player1 {
		b.P1Walls--
	} else {
		b.P2Walls--
	}
	return nil
}

// MoveToken moves the player's token one cell in direction d. It checks
// the edge is passable AND that the destination isn't the opponent's
// cell: there is no jump-over-opponent rule, so an opponent-occupied
// cell is simply impassable.
func (b *Board) MoveToken(p Player, d Direction) error {
	x, y := b.PlayerLocation(p)
	if !b.IsPassable(x, y, d) {
		return ErrBlockedOrOffBoard
	}
	dx, dy := d.delta()
	dest := posIndex(x+dx, y+dy)
	if dest == b.otherPos(p) {
		return ErrBlockedOrOffBoard
	}
	b.setPos(p, dest)
	return nil
}

// ApplyMove dispatches to AddWall or MoveToken.
func (b *Board) ApplyMove(m Move, p Player) error {
	if m.Kind == MoveKindWall {
		return b.AddWall(p, m.Orientation, m.X, m.Y)
	}
	return b.MoveToken(p, m.Direction)
}

// IsLegal reports whether ApplyMove(m, p) would succeed and leave both
// players with a path to their goal row. It never fails: illegality is
// just "false".
func (b Board) IsLegal(p Player, m Move) bool {
	if m.Kind == MoveKindToken {
		x, y := b.PlayerLocation(p)
		if !b.IsPassable(x, y, m.Direction) {
			return false
		}
		dx, dy := m.Direction.delta()
		return posIndex(x+dx, y+dy) != b.otherPos(p)
	}

	if !inAnchorBounds(m.X, m.Y) {
		return false
	}
	if b.AvailableWalls(p) == 0 {
		return false
	}
	if b.wallOverlap(m.Orientation, m.X, m.Y) {
		return false
	}

	hypothetical := b
	if hypothetical.AddWall(p, m.Orientation, m.X, m.Y) != nil {
		return false
	}
	if _, ok := hypothetical.DistanceToGoal(Player1); !ok {
		return false
	}
	if _, ok := hypothetical.DistanceToGoal(Player2); !ok {
		return false
	}
	return true
}

// DistanceToGoal returns the shortest-path distance, in edges traversed,
// from the player's token to any cell in its goal row via BFS over
// IsPassable edges. It uses only fixed 81-entry scratch arrays (no heap
// allocation) and short-circuits as soon as a goal-row cell is reached.
func (b Board) DistanceToGoal(p Player) (int, bool) {
	start := posIndex(b.PlayerLocation(p))
	goalRow := p.GoalRow()
	if posY(start) == goalRow {
		return 0, true
	}

	var visited [boardSize * boardSize]bool
	var dist [boardSize * boardSize]int
	var queue [boardSize * boardSize]int
	head, tail := 0, 0

	visited[start] = true
	queue[tail] = start
	tail++

	for head < tail {
		cur := queue[head]
		head++
		cx, cy := posX(cur), posY(cur)
		for _, d := range allDirections {
			if !b.IsPassable(cx, cy, d) {
				continue
			}
			dx, dy := d.delta()
			ni := posIndex(cx+dx, cy+dy)
			if visited[ni] {
				continue
			}
			visited[ni] = true
			dist[ni] = dist[cur] + 1
			if posY(ni) == goalRow {
				return dist[ni], true
			}
			queue[tail] = ni
			tail++
		}
	}
	return 0, false
}

// LegalMoves enumerates the candidate set (4 token moves + 128 wall
// anchors, directions before walls, walls in lexicographic
// (orientation, y, x) order) filtered by IsLegal.
func (b Board) LegalMoves(p Player) []Move {
	moves := make([]Move, 0, 4+2*wallGrid*wallGrid)
	for _, d := range allDirections {
		m := NewTokenMove(d)
		if b.IsLegal(p, m) {
			moves = append(moves, m)
		}
	}
	for _, m := range allWallMoves() {
		if b.IsLegal(p, m) {
			moves = append(moves, m)
		}
	}
	return moves
}
