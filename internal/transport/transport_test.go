package transport

import (
	"net"
	"sync"
	"testing"

	"github.com/hailam/quoridor/internal/board"
)

func TestEncodeDecodeTokenMove(t *testing.T) {
	m := board.NewTokenMove(board.Up)
	line, err := EncodeMove(m)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if got := string(line); got != `{"MoveToken":"Up"}`+"\n" {
		t.Fatalf("unexpected wire form: %q", got)
	}
	got, err := DecodeMove(line[:len(line)-1])
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got != m {
		t.Fatalf("round trip mismatch: %+v != %+v", got, m)
	}
}

func TestEncodeDecodeWallMove(t *testing.T) {
	m := board.NewWallMove(board.Vertical, 5, 5)
	line, err := EncodeMove(m)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	want := `{"AddWall":{"orientation":"Vertical","location":[5,5]}}` + "\n"
	if got := string(line); got != want {
		t.Fatalf("unexpected wire form: %q, want %q", got, want)
	}
	got, err := DecodeMove(line[:len(line)-1])
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got != m {
		t.Fatalf("round trip mismatch: %+v != %+v", got, m)
	}
}

func TestDecodeMalformedRecordIsError(t *testing.T) {
	if _, err := DecodeMove([]byte(`{}`)); err == nil {
		t.Fatal("expected an error for a record with neither field set")
	}
}

func TestSessionDialSendReceiveRoundTrip(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	defer ln.Close()

	var wg sync.WaitGroup
	wg.Add(1)

	var server *Session
	var serverErr error
	go func() {
		defer wg.Done()
		conn, err := ln.Accept()
		if err != nil {
			serverErr = err
			return
		}
		server = newSession(conn)
	}()

	client, err := Dial(ln.Addr().String())
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer client.Close()
	wg.Wait()
	if serverErr != nil {
		t.Fatalf("accept: %v", serverErr)
	}
	defer server.Close()

	move := board.NewWallMove(board.Horizontal, 2, 3)
	if err := client.Send(move); err != nil {
		t.Fatalf("send: %v", err)
	}
	got, err := server.Receive()
	if err != nil {
		t.Fatalf("receive: %v", err)
	}
	if got != move {
		t.Fatalf("got %+v, want %+v", got, move)
	}
}
