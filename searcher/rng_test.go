package searcher

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type fixedSource struct {
	values []uint64
	reads  int
}

func (f *fixedSource) Uint64() uint64 {
	v := f.values[f.reads%len(f.values)]
	f.reads++
	return v
}

func TestByteStream(t *testing.T) {
	src := &fixedSource{values: []uint64{0x0807060504030201, 0x00000000000000ff}}
	s := newByteStream(src)

	for want := uint32(1); want <= 8; want++ {
		require.Equal(t, want, s.next(), "Should hand out bytes lowest first")
	}
	require.Equal(t, 1, src.reads, "Should read one draw per eight bytes")
	require.Equal(t, uint32(0xff), s.next(), "Should pull a fresh draw after eight bytes")
	require.Equal(t, 2, src.reads)
}

func TestTableSource(t *testing.T) {
	t.Run("advances before reading", func(t *testing.T) {
		s := NewTableSource(0)
		require.Equal(t, uint64(2939895356340538458), s.Uint64())
	})

	t.Run("wraps around", func(t *testing.T) {
		s := NewTableSource(255)
		require.Equal(t, uint64(1676761424638520202), s.Uint64(), "Cursor should wrap to the first entry")
		require.Equal(t, 44, NewTableSource(300).cursor, "Cursor should be masked into the table")
	})

	t.Run("same cursor replays the same draws", func(t *testing.T) {
		a, b := NewTableSource(17), NewTableSource(17)
		for i := 0; i < 600; i++ {
			require.Equal(t, a.Uint64(), b.Uint64())
		}
	})
}

func TestNewSource(t *testing.T) {
	t.Run("seeded twister is reproducible", func(t *testing.T) {
		a, err := NewSource(SourceMT, 5)
		require.NoError(t, err)
		b, err := NewSource(SourceMT, 5)
		require.NoError(t, err)

		for i := 0; i < 10; i++ {
			require.Equal(t, a.Uint64(), b.Uint64())
		}
	})

	t.Run("table seed is the cursor", func(t *testing.T) {
		s, err := NewSource(SourceTable, 3)
		require.NoError(t, err)
		require.Equal(t, NewTableSource(3), s)
	})

	t.Run("entropy by default", func(t *testing.T) {
		s, err := NewSource("", 0)
		require.NoError(t, err)
		require.IsType(t, entropySource{}, s)
	})

	t.Run("unknown source", func(t *testing.T) {
		_, err := NewSource("dice", 0)
		require.Error(t, err)
	})
}
