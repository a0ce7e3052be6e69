package transport

import (
	"bufio"
	"errors"
	"fmt"
	"net"

	"github.com/hailam/quoridor/internal/board"
)

// ErrTransport is the single failure sentinel for this package: every
// I/O or decode failure on the remote move channel is wrapped in this
// one error rather than distinguished by kind, since to the facade a
// broken connection and a malformed record are equally fatal to the
// session.
var ErrTransport = errors.New("transport error")

// Session is one line-delimited move channel over a TCP connection: one
// side Listens and Accepts, the other Dials, and from then on both sides
// alternate Send/Receive, each record carrying the move just played.
type Session struct {
	conn   net.Conn
	reader *bufio.Scanner
}

// Listen blocks until one peer connects to addr and returns a Session
// wrapping that connection. The listener is closed once a peer accepts;
// this is a single-session transport, not a server.
func Listen(addr string) (*Session, error) {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("%w: listen: %v", ErrTransport, err)
	}
	defer ln.Close()

	conn, err := ln.Accept()
	if err != nil {
		return nil, fmt.Errorf("%w: accept: %v", ErrTransport, err)
	}
	return newSession(conn), nil
}

// Dial connects to a peer already Listening at addr.
func Dial(addr string) (*Session, error) {
	conn, err := net.Dial("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("%w: dial: %v", ErrTransport, err)
	}
	return newSession(conn), nil
}

func newSession(conn net.Conn) *Session {
	return &Session{conn: conn, reader: bufio.NewScanner(conn)}
}

// Send writes m as one newline-terminated JSON record.
func (s *Session) Send(m board.Move) error {
	line, err := EncodeMove(m)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrTransport, err)
	}
	if _, err := s.conn.Write(line); err != nil {
		return fmt.Errorf("%w: write: %v", ErrTransport, err)
	}
	return nil
}

// Receive blocks for the next newline-terminated record and decodes it.
// Both a closed connection and a malformed record surface as
// ErrTransport.
func (s *Session) Receive() (board.Move, error) {
	if !s.reader.Scan() {
		if err := s.reader.Err(); err != nil {
			return board.Move{}, fmt.Errorf("%w: read: %v", ErrTransport, err)
		}
		return board.Move{}, fmt.Errorf("%w: connection closed", ErrTransport)
	}
	m, err := DecodeMove(s.reader.Bytes())
	if err != nil {
		return board.Move{}, fmt.Errorf("%w: %v", ErrTransport, err)
	}
	return m, nil
}

// Close closes the underlying connection.
func (s *Session) Close() error {
	return s.conn.Close()
}
