package greedy

import (
	"testing"

	"github.com/hailam/quoridor/internal/agent"
	"github.com/hailam/quoridor/internal/board"
)

func TestBestMoveIsLegal(t *testing.T) {
	b := board.Empty()
	move, err := BestMove(b, board.Player1)
	if err != nil {
		t.Fatalf("BestMove: %v", err)
	}
	if !b.IsLegal(board.Player1, move) {
		t.Fatalf("BestMove returned illegal move %s", move)
	}
}

func TestBestMoveIsTheArgmax(t *testing.T) {
	b := board.Empty()
	move, err := BestMove(b, board.Player1)
	if err != nil {
		t.Fatalf("BestMove: %v", err)
	}

	bestScore := -1 << 31
	for _, m := range b.LegalMoves(board.Player1) {
		candidate := b
		if err := candidate.ApplyMove(m, board.Player1); err != nil {
			t.Fatalf("ApplyMove(%s): %v", m, err)
		}
		if score := agent.Evaluate(candidate, board.Player1); score > bestScore {
			bestScore = score
		}
	}

	chosen := b
	if err := chosen.ApplyMove(move, board.Player1); err != nil {
		t.Fatalf("ApplyMove(%s): %v", move, err)
	}
	if got := agent.Evaluate(chosen, board.Player1); got != bestScore {
		t.Fatalf("BestMove chose score %d, want the max %d", got, bestScore)
	}
}

func TestAgentSendRejectsOutOfBoundsWallMove(t *testing.T) {
	a := New(board.Player1)
	bad := board.NewWallMove(board.Horizontal, 50, 50)
	if err := a.Send(bad); err == nil {
		t.Fatal("expected an error for an out-of-bounds wall anchor")
	}
}

func TestAgentReceiveAppliesAndAdvancesTurn(t *testing.T) {
	a := New(board.Player1)
	before := a.Turn
	move, err := a.Receive()
	if err != nil {
		t.Fatalf("Receive: %v", err)
	}
	if a.Turn == before {
		t.Fatal("turn did not advance")
	}
	if move.Kind != board.MoveKindToken {
		t.Fatalf("expected a token move at the opening, got %s", move)
	}
}
