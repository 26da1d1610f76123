package searcher

import (
	"encoding/binary"
	"fmt"
	"math/rand"

	"github.com/bszcz/mt19937_64"
	"lukechampine.com/frand"
)

// Source supplies raw 64-bit draws to a search.
type Source interface {
	Uint64() uint64
}

const (
	SourceEntropy = "entropy"
	SourceTable   = "table"
	SourceMT      = "mt"
)

// NewSource builds a named source. seed is the table cursor for "table" and
// the generator seed for "mt"; a zero seed on "table" picks a random cursor.
func NewSource(kind string, seed int64) (Source, error) {
	switch kind {
	case SourceEntropy, "":
		return NewEntropySource(), nil
	case SourceTable:
		if seed == 0 {
			return NewRandomTableSource(), nil
		}
		return NewTableSource(int(seed)), nil
	case SourceMT:
		return NewMTSource(seed), nil
	}
	return nil, fmt.Errorf("unknown source %q", kind)
}

type entropySource struct{}

func NewEntropySource() Source {
	return entropySource{}
}

func (entropySource) Uint64() uint64 {
	var buf [8]byte
	frand.Read(buf[:])
	return binary.LittleEndian.Uint64(buf[:])
}

const tableLen = 1 << 8

// TableSource replays a fixed pool of draws from a cursor. The cursor is
// advanced before each read.
type TableSource struct {
	cursor int
}

func NewTableSource(cursor int) *TableSource {
	return &TableSource{cursor: cursor & (tableLen - 1)}
}

func NewRandomTableSource() *TableSource {
	return NewTableSource(int(frand.Uint64n(tableLen)))
}

func (t *TableSource) Uint64() uint64 {
	t.cursor = (t.cursor + 1) & (tableLen - 1)
	return rolloutTable[t.cursor]
}

// NewMTSource returns a seeded 64-bit Mersenne Twister.
func NewMTSource(seed int64) Source {
	r := rand.New(mt19937_64.New())
	r.Seed(seed)
	return r
}

const (
	rngPhase = 8
	rngShamt = 8
	rngMask  = 1<<rngShamt - 1
)

// byteStream hands out a source's draws one byte at a time, lowest byte
// first, pulling a fresh draw every rngPhase reads.
type byteStream struct {
	src   Source
	curr  uint64
	phase uint32
}

func newByteStream(src Source) *byteStream {
	return &byteStream{src: src}
}

func (s *byteStream) next() uint32 {
	if s.phase == 0 {
		s.curr = s.src.Uint64()
	}
	s.phase = (s.phase + 1) & (rngPhase - 1)
	v := uint32(s.curr) & rngMask
	s.curr >>= rngShamt
	return v
}
