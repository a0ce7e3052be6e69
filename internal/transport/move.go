// Package transport implements the line-delimited remote-play move
// channel: each record is one JSON object terminated by a
// newline, carrying either a wall placement or a token move. It is
// deliberately the only place board.Move touches encoding/json — the
// core engine has no serialization concerns of its own.
package transport

import (
	"encoding/json"
	"fmt"

	"github.com/hailam/quoridor/internal/board"
)

// wireMove mirrors the two record shapes this channel exchanges:
//
//	{"AddWall":{"orientation":"Horizontal"|"Vertical","location":[x,y]}}
//	{"MoveToken":"Up"|"Down"|"Left"|"Right"}
//
// Exactly one of AddWall/MoveToken is ever populated.
type wireMove struct {
	AddWall   *wireWall `json:"AddWall,omitempty"`
	MoveToken *string   `json:"MoveToken,omitempty"`
}

type wireWall struct {
	Orientation string `json:"orientation"`
	Location    [2]int `json:"location"`
}

// EncodeMove renders m as one line-delimited JSON record, including the
// trailing newline.
func EncodeMove(m board.Move) ([]byte, error) {
	w, err := toWire(m)
	if err != nil {
		return nil, err
	}
	line, err := json.Marshal(w)
	if err != nil {
		return nil, fmt.Errorf("transport: encode: %w", err)
	}
	return append(line, '\n'), nil
}

// DecodeMove parses one JSON record (without its trailing newline) into
// a board.Move.
func DecodeMove(line []byte) (board.Move, error) {
	var w wireMove
	if err := json.Unmarshal(line, &w); err != nil {
		return board.Move{}, fmt.Errorf("transport: decode: %w", err)
	}
	return fromWire(w)
}

func toWire(m board.Move) (wireMove, error) {
	if m.Kind == board.MoveKindToken {
		d := m.Direction.String()
		return wireMove{MoveToken: &d}, nil
	}
	return wireMove{AddWall: &wireWall{
		Orientation: m.Orientation.String(),
		Location:    [2]int{m.X, m.Y},
	}}, nil
}

func fromWire(w wireMove) (board.Move, error) {
	switch {
	case w.MoveToken != nil:
		d, err := parseDirection(*w.MoveToken)
		if err != nil {
			return board.Move{}, err
		}
		return board.NewTokenMove(d), nil
	case w.AddWall != nil:
		o, err := parseOrientation(w.AddWall.Orientation)
		if err != nil {
			return board.Move{}, err
		}
		loc := w.AddWall.Location
		return board.NewWallMove(o, loc[0], loc[1]), nil
	default:
		return board.Move{}, fmt.Errorf("transport: decode: record has neither AddWall nor MoveToken")
	}
}

func parseDirection(s string) (board.Direction, error) {
	switch s {
	case "Up":
		return board.Up, nil
	case "Down":
		return board.Down, nil
	case "Left":
		return board.Left, nil
	case "Right":
		return board.Right, nil
	default:
		return 0, fmt.Errorf("transport: decode: unknown direction %q", s)
	}
}

func parseOrientation(s string) (board.Orientation, error) {
	switch s {
	case "Horizontal":
		return board.Horizontal, nil
	case "Vertical":
		return board.Vertical, nil
	default:
		return 0, fmt.Errorf("transport: decode: unknown orientation %q", s)
	}
}
