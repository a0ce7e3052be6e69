package board

import "testing"

func TestEmptyBoardDistances(t *testing.T) {
	b := Empty()
	d1, ok1 := b.DistanceToGoal(Player1)
	d2, ok2 := b.DistanceToGoal(Player2)
	if !ok1 || d1 != 8 {
		t.Fatalf("player1 distance = %d,%v want 8,true", d1, ok1)
	}
	if !ok2 || d2 != 8 {
		t.Fatalf("player2 distance = %d,%v want 8,true", d2, ok2)
	}
}

func TestWallLengthensPath(t *testing.T) {
	b := Empty()
	if err := b.AddWall(Player1, Horizontal, 3, 7); err != nil {
		t.Fatalf("AddWall: %v", err)
	}
	d1, ok1 := b.DistanceToGoal(Player1)
	d2, ok2 := b.DistanceToGoal(Player2)
	if !ok1 || d1 != 9 {
		t.Fatalf("player1 distance = %d,%v want 9,true", d1, ok1)
	}
	if !ok2 || d2 != 9 {
		t.Fatalf("player2 distance = %d,%v want 9,true", d2, ok2)
	}
}

func TestOverlapRejection(t *testing.T) {
	b := Empty()
	if err := b.AddWall(Player1, Horizontal, 5, 5); err != nil {
		t.Fatalf("AddWall: %v", err)
	}
	if b.IsLegal(Player2, NewWallMove(Horizontal, 5, 5)) {
		t.Fatal("expected horizontal overlap to be illegal")
	}
	if b.IsLegal(Player2, NewWallMove(Vertical, 5, 5)) {
		t.Fatal("expected vertical-over-horizontal overlap to be illegal")
	}
	if err := b.AddWall(Player2, Vertical, 5, 5); err != ErrWallOverlap {
		t.Fatalf("AddWall over existing wall = %v, want ErrWallOverlap", err)
	}
}

func TestTrapRejection(t *testing.T) {
	// Pen player2 into the top-right 2-cell pocket {(8,7),(8,8)}: a
	// vertical wall at (7,7) seals the left edge of both rows, a
	// horizontal wall at (7,6) then seals the only remaining exit
	// (down from (8,7)). Neither wall overlaps or goes out of bounds;
	// the second one must still be rejected because it would strand
	// player2 with no path to its goal row (y=0).
	b := Empty()
	b.P2Pos = uint8(posIndex(8, 8))

	if err := b.AddWall(Player1, Vertical, 7, 7); err != nil {
		t.Fatalf("setup AddWall: %v", err)
	}
	if _, ok := b.DistanceToGoal(Player2); !ok {
		t.Fatal("sanity check failed: pocket should still have an exit before the second wall")
	}

	if err := b.AddWall(Player1, Horizontal, 7, 6); err != nil {
		t.Fatalf("setup AddWall: %v", err)
	}
	if _, ok := b.DistanceToGoal(Player2); ok {
		t.Fatal("sanity check failed: player2 should be unreachable from its goal after both walls")
	}

	// Rebuild the board with only the first wall, and confirm IsLegal
	// rejects the trapping second wall before it's ever placed.
	b = Empty()
	b.P2Pos = uint8(posIndex(8, 8))
	if err := b.AddWall(Player1, Vertical, 7, 7); err != nil {
		t.Fatalf("setup AddWall: %v", err)
	}
	if b.IsLegal(Player2, NewWallMove(Horizontal, 7, 6)) {
		t.Fatal("trapping wall should be illegal despite no overlap or bounds violation")
	}
}

func TestPassabilityAfterVerticalWall(t *testing.T) {
	b := Empty()
	if err := b.AddWall(Player1, Vertical, 1, 2); err != nil {
		t.Fatalf("AddWall: %v", err)
	}
	cases := []struct {
		x, y int
		d    Direction
		want bool
	}{
		{1, 2, Right, false},
		{1, 3, Right, false},
		{1, 1, Right, true},
		{1, 4, Right, true},
		{2, 2, Right, true},
	}
	for _, c := range cases {
		if got := b.IsPassable(c.x, c.y, c.d); got != c.want {
			t.Errorf("IsPassable(%d,%d,%v) = %v, want %v", c.x, c.y, c.d, got, c.want)
		}
	}
}

func TestWallAnchorOutOfBounds(t *testing.T) {
	b := Empty()
	if b.IsLegal(Player1, NewWallMove(Horizontal, 8, 0)) {
		t.Fatal("x=8 anchor should be illegal")
	}
	if b.IsLegal(Player1, NewWallMove(Horizontal, 0, 8)) {
		t.Fatal("y=8 anchor should be illegal")
	}
	if err := b.AddWall(Player1, Horizontal, 8, 0); err != ErrOutOfBounds {
		t.Fatalf("AddWall out of bounds = %v, want ErrOutOfBounds", err)
	}
}

func TestNoWallsLeftIsIllegalEverywhere(t *testing.T) {
	b := Empty()
	b.P1Walls = 0
	for _, m := range allWallMoves() {
		if b.IsLegal(Player1, m) {
			t.Fatalf("with 0 walls remaining, %v should be illegal", m)
		}
	}
}

func TestDistanceZeroOnGoalRow(t *testing.T) {
	b := Empty()
	b.P1Pos = uint8(posIndex(4, 8))
	d, ok := b.DistanceToGoal(Player1)
	if !ok || d != 0 {
		t.Fatalf("distance = %d,%v want 0,true", d, ok)
	}
	b2 := Empty()
	b2.P2Pos = uint8(posIndex(4, 0))
	d2, ok2 := b2.DistanceToGoal(Player2)
	if !ok2 || d2 != 0 {
		t.Fatalf("distance = %d,%v want 0,true", d2, ok2)
	}
}

func TestLegalMovesSubsetOfCandidatesAndAllLegal(t *testing.T) {
	b := Empty()
	moves := b.LegalMoves(Player1)
	if len(moves) == 0 {
		t.Fatal("expected some legal moves from the start position")
	}
	for _, m := range moves {
		if !b.IsLegal(Player1, m) {
			t.Fatalf("LegalMoves returned a move that fails IsLegal: %v", m)
		}
	}
	if len(moves) > 4+2*wallGrid*wallGrid {
		t.Fatalf("too many legal moves: %d", len(moves))
	}
	if got := len(CandidateMoves()); got != 132 {
		t.Fatalf("CandidateMoves() returned %d moves, want 4+128=132", got)
	}
}

func TestAllWallMovesCount(t *testing.T) {
	if got := len(allWallMoves()); got != 128 {
		t.Fatalf("allWallMoves() returned %d moves, want 128 (8x8 anchors x 2 orientations)", got)
	}
}

func TestHashStability(t *testing.T) {
	b1 := Empty()
	b2 := Empty()
	if b1.Hash() != b2.Hash() {
		t.Fatal("identical boards hashed differently")
	}
	b2.P1Walls--
	b2.P1Walls++
	if b1.Hash() != b2.Hash() {
		t.Fatal("hash should be stable across no-op mutation")
	}
	_ = b2.AddWall(Player1, Horizontal, 0, 0)
	if b1.Hash() == b2.Hash() {
		t.Fatal("expected different boards to hash differently (not guaranteed but should hold here)")
	}
}

func TestReprStringRoundTrip(t *testing.T) {
	b := Empty()
	_ = b.AddWall(Player1, Horizontal, 3, 7)
	_ = b.MoveToken(Player1, Up)

	s := b.ReprString()
	got, err := Parse(s)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if got != b {
		t.Fatalf("round trip mismatch: got %+v want %+v", got, b)
	}
}

func TestApplyMoveDispatches(t *testing.T) {
	b := Empty()
	x, y := b.PlayerLocation(Player1)
	if err := b.ApplyMove(NewTokenMove(Up), Player1); err != nil {
		t.Fatalf("ApplyMove token: %v", err)
	}
	nx, ny := b.PlayerLocation(Player1)
	if nx != x || ny != y+1 {
		t.Fatalf("token move landed at (%d,%d), want (%d,%d)", nx, ny, x, y+1)
	}

	if err := b.ApplyMove(NewWallMove(Vertical, 0, 0), Player2); err != nil {
		t.Fatalf("ApplyMove wall: %v", err)
	}
	if b.GetWallState(0, 0) != WallVertical {
		t.Fatal("expected vertical wall at (0,0)")
	}
}

func TestMoveTokenOntoOpponentBlocked(t *testing.T) {
	b := Empty()
	// Place player2 directly above player1 and try to step onto it.
	x, _ := b.PlayerLocation(Player1)
	b.P2Pos = uint8(posIndex(x, 1))
	if b.IsLegal(Player1, NewTokenMove(Up)) {
		t.Fatal("stepping onto the opponent's cell should be illegal")
	}
	if err := b.MoveToken(Player1, Up); err != ErrBlockedOrOffBoard {
		t.Fatalf("MoveToken onto opponent = %v, want ErrBlockedOrOffBoard", err)
	}
}
