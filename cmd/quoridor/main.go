// Command quoridor is a thin remote-play shell around the engine: it
// wires one agent type to a transport.Session and alternates
// Send/Receive until the connection ends. The CLI surface itself is
// deliberately minimal; argument parsing, rendering, and game-history
// persistence are all out of the core's scope.
package main

import (
	"errors"
	"flag"
	"fmt"
	"log"

	"github.com/hailam/quoridor/internal/agent"
	"github.com/hailam/quoridor/internal/agent/alphabeta"
	"github.com/hailam/quoridor/internal/agent/greedy"
	"github.com/hailam/quoridor/internal/agent/mcts"
	"github.com/hailam/quoridor/internal/board"
	"github.com/hailam/quoridor/internal/transport"
)

var (
	agentKind = flag.String("agent", "mcts", "agent to play as: greedy, alphabeta, or mcts")
	listen    = flag.String("listen", "", "listen address (e.g. :7777); mutually exclusive with -dial")
	dial      = flag.String("dial", "", "peer address to dial; mutually exclusive with -listen")
	asPlayer  = flag.String("player", "1", "which player this side plays: 1 or 2")
)

func main() {
	flag.Parse()

	me, err := parsePlayer(*asPlayer)
	if err != nil {
		log.Fatal(err)
	}
	facade, err := newAgent(*agentKind, me)
	if err != nil {
		log.Fatal(err)
	}

	sess, err := newSession()
	if err != nil {
		log.Fatal(err)
	}
	defer sess.Close()

	if err := run(facade, sess, me); err != nil {
		log.Fatal(err)
	}
}

func newAgent(kind string, me board.Player) (agent.Facade, error) {
	switch kind {
	case "greedy":
		return greedy.New(me), nil
	case "alphabeta":
		return alphabeta.New(me, alphabeta.DefaultConfig), nil
	case "mcts":
		return mcts.New(me, mcts.DefaultConfig), nil
	default:
		return nil, fmt.Errorf("unknown agent %q (want greedy, alphabeta, or mcts)", kind)
	}
}

func newSession() (*transport.Session, error) {
	switch {
	case *listen != "" && *dial != "":
		return nil, errors.New("specify exactly one of -listen or -dial")
	case *listen != "":
		log.Printf("listening on %s", *listen)
		return transport.Listen(*listen)
	case *dial != "":
		log.Printf("dialing %s", *dial)
		return transport.Dial(*dial)
	default:
		return nil, errors.New("specify exactly one of -listen or -dial")
	}
}

func parsePlayer(s string) (board.Player, error) {
	switch s {
	case "1":
		return board.Player1, nil
	case "2":
		return board.Player2, nil
	default:
		return 0, fmt.Errorf("unknown player %q (want 1 or 2)", s)
	}
}

// run alternates: this side's facade produces a move, it's sent over
// the wire, then the peer's reply is received and applied to the
// facade's internal board. Player1 moves first.
func run(facade agent.Facade, sess *transport.Session, me board.Player) error {
	turn := board.Player1
	for {
		if turn == me {
			move, err := facade.Receive()
			if err != nil {
				return fmt.Errorf("agent: %w", err)
			}
			if err := sess.Send(move); err != nil {
				return err
			}
			log.Printf("played %s", move)
		} else {
			move, err := sess.Receive()
			if err != nil {
				return err
			}
			if err := facade.Send(move); err != nil {
				return fmt.Errorf("opponent: %w", err)
			}
			log.Printf("opponent played %s", move)
		}
		turn = turn.Opponent()
	}
}
