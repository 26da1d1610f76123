package searcher

import (
	"loa/game"
)

type nodeKind uint8

const (
	frontier nodeKind = iota // reachable by a legal move, board not yet computed
	internal
	terminal
)

const rootIndex = 0

// node lives in a tree arena and refers to its children by index. The
// children of an internal node occupy nodes[first : first+count].
type node struct {
	move      game.Move
	kind      nodeKind
	win       bool // terminal outcome for the side to move
	exhausted bool // every child has been handed out once
	cursor    int32
	first     int32
	count     int32
	board     game.Board
	wins      float32
	visits    float32
}

func (n *node) expanded() bool {
	return n.kind != frontier
}

type tree struct {
	nodes []node
	moves []game.Move // scratch buffer for move generation
}

func newTree(board game.Board) *tree {
	t := &tree{nodes: make([]node, 1, 1024)}
	t.nodes[rootIndex].move = game.NoMove
	t.fill(rootIndex, board)
	return t
}

// fill classifies board and stores it in node i, listing every legal move as
// a frontier child when the position is not terminal.
func (t *tree) fill(i int32, board game.Board) {
	if win, ok := board.Terminal(); ok {
		n := &t.nodes[i]
		n.kind = terminal
		n.win = win
		return
	}

	t.moves = game.AppendMoves(t.moves[:0], board)
	first := int32(len(t.nodes))
	for _, m := range t.moves {
		t.nodes = append(t.nodes, node{move: m})
	}

	n := &t.nodes[i]
	n.kind = internal
	n.board = board
	n.first = first
	n.count = int32(len(t.moves))
	n.exhausted = n.count == 0
}

// selectPath descends from the root. While a node still has children that
// were never handed out it returns the next one in generation order;
// otherwise it follows the best scoring child. It stops at a frontier or
// terminal node. board is the position the returned node is reached from.
// ok is false when an exhausted node has no child worth following.
func (t *tree) selectPath(root game.Board, c float64, path []int32) (target int32, board game.Board, ok bool, _ []int32) {
	i := int32(rootIndex)
	board = root
	for {
		path = append(path, i)
		n := &t.nodes[i]
		if n.kind != internal {
			return i, board, true, path
		}

		if !n.exhausted {
			child := n.first + n.cursor
			n.cursor++
			if n.cursor == n.count {
				n.exhausted = true
				n.cursor = 0
			}
			return child, n.board, true, append(path, child)
		}

		board = n.board
		best, found := t.bestChild(i, c)
		if !found {
			return -1, board, false, path
		}
		i = best
	}
}

// bestChild returns the expanded child of i with the highest positive score.
func (t *tree) bestChild(i int32, c float64) (int32, bool) {
	n := &t.nodes[i]
	if n.kind != internal || n.visits == 0 {
		return -1, false
	}

	u := newUCT(c, float64(n.visits))
	best, maxScore := int32(-1), 0.0
	for j := n.first; j < n.first+n.count; j++ {
		child := &t.nodes[j]
		if !child.expanded() {
			continue
		}
		if score := u.evaluate(float64(child.wins), float64(child.visits)); score > maxScore {
			best, maxScore = j, score
		}
	}
	return best, best >= 0
}

// expand computes the board of a frontier node from its parent's board.
// It reports whether the node is terminal.
func (t *tree) expand(i int32, parent game.Board) bool {
	if t.nodes[i].kind == frontier {
		t.fill(i, parent.Apply(t.nodes[i].move))
	}
	return t.nodes[i].kind == terminal
}

// simulate plays out from node i with the rollout policy. ok is false when
// maxSteps plies pass without reaching a terminal position.
func (t *tree) simulate(i int32, rng *byteStream, maxSteps int) (win bool, ok bool, depth int) {
	n := &t.nodes[i]
	if n.kind == terminal {
		return n.win, true, 0
	}

	board := n.board
	for step := 0; step < maxSteps; step++ {
		if win, ok := board.Terminal(); ok {
			// Terminal status is seen by the side to move at this ply.
			return win != (step&1 == 1), true, step
		}
		board = board.Apply(rolloutMove(board, rng))
	}
	return false, false, maxSteps
}

// rolloutMove takes the first legal move found scanning the side to move's
// pieces from a random square.
func rolloutMove(board game.Board, rng *byteStream) game.Move {
	start := int(rng.next() & 0x3f)
	m, _ := game.FirstMoveFrom(board, start)
	return m
}

// backup credits a pass to every node on path, flipping the outcome at each
// level as the side to move alternates.
func (t *tree) backup(path []int32, win bool) {
	for k := len(path) - 1; k >= 0; k-- {
		n := &t.nodes[path[k]]
		n.visits++
		if win {
			n.wins++
		}
		win = !win
	}
}
