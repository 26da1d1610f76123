package searcher

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/OneOfOne/xxhash"
)

// Snapshot is a JSON view of a searched tree. Frontier children are left out.
type Snapshot struct {
	Move     string     `json:"move"`
	Value    string     `json:"value"`
	Terminal *bool      `json:"terminal,omitempty"`
	Children []Snapshot `json:"children,omitempty"`
}

// Snapshot exports the last searched tree, or nil before the first search.
func (m *MCTS) Snapshot() *Snapshot {
	if m.tree == nil {
		return nil
	}
	s := m.tree.snapshot(rootIndex)
	return &s
}

func (t *tree) snapshot(i int32) Snapshot {
	n := &t.nodes[i]
	s := Snapshot{
		Move:  n.move.String(),
		Value: fmt.Sprintf("%g / %g = %g", n.wins, n.visits, ratio(n.wins, n.visits)),
	}
	switch n.kind {
	case terminal:
		win := n.win
		s.Terminal = &win
	case internal:
		for j := n.first; j < n.first+n.count; j++ {
			if t.nodes[j].expanded() {
				s.Children = append(s.Children, t.snapshot(j))
			}
		}
	}
	return s
}

func ratio(wins, visits float32) float32 {
	if visits == 0 {
		return 0
	}
	return wins / visits
}

// Digest fingerprints the shape and statistics of the last searched tree.
// Two searches that made identical decisions produce identical digests.
func (m *MCTS) Digest() uint64 {
	if m.tree == nil {
		return 0
	}
	h := xxhash.New64()
	var buf [16]byte
	for i := range m.tree.nodes {
		n := &m.tree.nodes[i]
		buf[0] = byte(n.move.Src)
		buf[1] = byte(n.move.Dst)
		buf[2] = byte(n.kind)
		buf[3] = 0
		if n.win {
			buf[3] = 1
		}
		binary.LittleEndian.PutUint32(buf[4:8], uint32(n.count))
		binary.LittleEndian.PutUint32(buf[8:12], math.Float32bits(n.wins))
		binary.LittleEndian.PutUint32(buf[12:16], math.Float32bits(n.visits))
		h.Write(buf[:])
	}
	return h.Sum64()
}
