package mcts

import (
	"math"
	"math/rand"
	"sync"

	"github.com/hailam/quoridor/internal/agent"
	"github.com/hailam/quoridor/internal/board"
)

// nodeID indexes into Tree.nodes. -1 means "no parent" (the root).
type nodeID int32

const noParent nodeID = -1

// treeNode is one arena slot: a board state reached by one move from its
// parent, lazily-expanded children, and the UCT statistics for the edge
// leading into it. Nodes live in a slice (the arena design notes call
// for), addressed by integer index rather than pointer.
type treeNode struct {
	state    board.Board
	toMove   board.Player // whose turn it is AT this node
	parentID nodeID
	move     board.Move // the move that produced this node from its parent
	children []nodeID
	untried  []board.Move

	visits   int64
	valueSum float64 // accumulated value for the perspective of this node's MOVER (toMove.Opponent())

	// dirty is the state wrapper's sentinel: set when
	// the move that produced this node was only cheaply ("probably")
	// legal and turned out to break the exit invariant. dirtyLoser is
	// the player who made that illegal move; the node is scored as a
	// terminal loss for them and is never expanded further.
	dirty      bool
	dirtyLoser board.Player

	// capped marks a node whose state hash matches an ancestor's (a
	// cycle under token movement): rather than ever descending into it,
	// its evaluation is used as-is and it is never expanded.
	capped bool

	hash uint64
}

// Tree is one MCTS search: a root board, an arena of expanded nodes, and
// the shared approximate transposition table. A single coarse mutex
// guards every playout's select/expand/evaluate/backprop cycle — since
// there is no rollout-to-terminal phase (leaf evaluation is one
// heuristic call), each critical section is one descent of the tree plus
// a single expansion and evaluation, never a simulated game, so a coarse
// lock is a simpler, equally-eventually-consistent substitute for
// per-edge atomics.
type Tree struct {
	mu          sync.Mutex
	nodes       []*treeNode
	tt          *transpositionTable
	exploration float64
	rng         *rand.Rand
}

func newTree(root board.Board, rootPlayer board.Player, rootMoves []board.Move, cfg Config) *Tree {
	t := &Tree{
		tt:          newTranspositionTable(cfg.TableSize),
		exploration: cfg.Exploration,
		rng:         rand.New(rand.NewSource(rootSeed(root))),
	}
	t.nodes = []*treeNode{{
		state:    root,
		toMove:   rootPlayer,
		parentID: noParent,
		untried:  append([]board.Move(nil), rootMoves...),
		hash:     root.Hash(),
	}}
	return t
}

// rootSeed derives a deterministic-per-position RNG seed from the root
// hash; playout outcomes still vary run to run only insofar as goroutine
// scheduling interleaves them differently, which is expected for a
// concurrent search.
func rootSeed(b board.Board) int64 {
	return int64(b.Hash())
}

// playout runs one select -> expand -> evaluate -> backprop cycle.
func (t *Tree) playout() {
	t.mu.Lock()
	defer t.mu.Unlock()

	path := []nodeID{0}
	cur := nodeID(0)

	for {
		n := t.nodes[cur]
		if n.dirty || n.capped {
			break
		}
		if len(n.untried) > 0 {
			idx := t.rng.Intn(len(n.untried))
			mv := n.untried[idx]
			n.untried = append(n.untried[:idx], n.untried[idx+1:]...)
			child := t.expand(cur, n, mv)
			path = append(path, child)
			cur = child
			break
		}
		if len(n.children) == 0 {
			break // no legal moves from here; treat as a leaf
		}
		cur = t.selectChild(cur)
		path = append(path, cur)
	}

	value := t.evaluate(cur)
	t.backprop(path, value)
}

// expand applies mv (already known to be cheaply/"probably" legal) to
// parent's state, appends the resulting node to the arena, and checks
// both the dirty-state and ancestor-cycle conditions.
func (t *Tree) expand(parentID nodeID, parent *treeNode, mv board.Move) nodeID {
	child := parent.state
	mover := parent.toMove
	_ = child.ApplyMove(mv, mover) // IsProbablyLegal guarantees the mechanical apply succeeds

	dirty := false
	var loser board.Player
	if mv.Kind == board.MoveKindWall {
		if _, ok := child.DistanceToGoal(board.Player1); !ok {
			dirty, loser = true, mover
		} else if _, ok := child.DistanceToGoal(board.Player2); !ok {
			dirty, loser = true, mover
		}
	}

	hash := child.Hash()
	n := &treeNode{
		state:      child,
		toMove:     mover.Opponent(),
		parentID:   parentID,
		move:       mv,
		hash:       hash,
		dirty:      dirty,
		dirtyLoser: loser,
	}
	if !dirty && t.isAncestorHash(parentID, hash) {
		n.capped = true
	}
	if !n.dirty && !n.capped {
		n.untried = t.candidateMovesFor(child, n.toMove)
	}

	t.nodes = append(t.nodes, n)
	id := nodeID(len(t.nodes) - 1)
	parent.children = append(parent.children, id)
	return id
}

// candidateMovesFor filters the full candidate set by the cheap
// "probably legal" check for non-root nodes.
func (t *Tree) candidateMovesFor(b board.Board, p board.Player) []board.Move {
	all := board.CandidateMoves()
	moves := make([]board.Move, 0, len(all))
	for _, m := range all {
		if b.IsProbablyLegal(p, m) {
			moves = append(moves, m)
		}
	}
	return moves
}

func (t *Tree) isAncestorHash(from nodeID, hash uint64) bool {
	for id := from; id != noParent; id = t.nodes[id].parentID {
		if t.nodes[id].hash == hash {
			return true
		}
	}
	return false
}

// selectChild applies UCT with exploration constant t.exploration,
// preferring any never-visited child outright.
func (t *Tree) selectChild(id nodeID) nodeID {
	n := t.nodes[id]
	logParent := math.Log(float64(n.visits) + 1)

	best := n.children[0]
	bestScore := math.Inf(-1)
	for _, c := range n.children {
		child := t.nodes[c]
		var score float64
		if child.visits == 0 {
			score = math.Inf(1)
		} else {
			mean := child.valueSum / float64(child.visits)
			score = mean + t.exploration*math.Sqrt(logParent/float64(child.visits))
		}
		if score > bestScore {
			bestScore = score
			best = c
		}
	}
	return best
}

// evaluate returns the canonical (Player1-perspective) value of node id:
// -100/+100 for a dirty sentinel, the cached transposition-table value
// if this hash has been scored before, or else a fresh heuristic/
// terminal evaluation.
func (t *Tree) evaluate(id nodeID) float64 {
	n := t.nodes[id]
	if n.dirty {
		if n.dirtyLoser == board.Player1 {
			return -100
		}
		return 100
	}
	if v, ok := t.tt.probe(n.hash); ok {
		return v
	}
	v := evaluateCanonical(n.state)
	t.tt.store(n.hash, v)
	return v
}

func evaluateCanonical(b board.Board) float64 {
	if score, terminal := agent.TerminalScore(b, board.Player1); terminal {
		return float64(score)
	}
	return float64(agent.Evaluate(b, board.Player1))
}

// backprop attributes canonical (value) to each node on path in the
// perspective of that node's mover (toMove.Opponent()), and increments
// every node's visit count, including the root (whose visit count is
// only ever used as the parent-visits term in child UCT scores).
func (t *Tree) backprop(path []nodeID, canonical float64) {
	for i, id := range path {
		n := t.nodes[id]
		n.visits++
		if i == 0 {
			continue
		}
		mover := n.toMove.Opponent()
		if mover == board.Player1 {
			n.valueSum += canonical
		} else {
			n.valueSum -= canonical
		}
	}
}

// bestRootMove returns the root child with the most visits, and false
// if the root was never expanded at all.
func (t *Tree) bestRootMove() (board.Move, bool) {
	root := t.nodes[0]
	if len(root.children) == 0 {
		return board.Move{}, false
	}
	bestVisits := int64(-1)
	var best board.Move
	for _, c := range root.children {
		child := t.nodes[c]
		if child.visits > bestVisits {
			bestVisits = child.visits
			best = child.move
		}
	}
	return best, true
}
