package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	t.Run("full rows", func(t *testing.T) {
		b, err := Parse("147179814\n786565452")
		require.NoError(t, err)
		require.Len(t, b, 18)
		assert.Equal(t, Cell(1), b[0])
		assert.Equal(t, Cell(4), b[1])
		assert.Equal(t, Cell(2), b[17])
		assert.Equal(t, 18, b.RemainingCount())
	})

	t.Run("cleared cells and short rows", func(t *testing.T) {
		b, err := Parse("78.565452\n.1656")
		require.NoError(t, err)
		require.Len(t, b, 18)
		assert.Equal(t, Cleared, b[2])
		assert.Equal(t, Cleared, b[9])
		assert.Equal(t, Cell(6), b[13])
		for i := 14; i < 18; i++ {
			assert.Equal(t, NoCell, b[i], "index %d should be padding", i)
		}
	})

	t.Run("blank lines dropped", func(t *testing.T) {
		b, err := Parse("\n\n91\n\n")
		require.NoError(t, err)
		require.Len(t, b, RowSize)
		assert.Equal(t, Cell(9), b[0])
		assert.Equal(t, Cell(1), b[1])
	})

	t.Run("no rows", func(t *testing.T) {
		_, err := Parse("   \n\n")
		require.ErrorIs(t, err, ErrInvalidBoard)
	})

	t.Run("row too long", func(t *testing.T) {
		_, err := Parse("1234567891")
		require.ErrorIs(t, err, ErrInvalidBoard)
	})
}

func TestStringRoundTrip(t *testing.T) {
	in := "78.565452\n.1656"
	b, err := Parse(in)
	require.NoError(t, err)
	out := b.String()
	assert.Equal(t, "78.565452\n.1656", out)

	again, err := Parse(out)
	require.NoError(t, err)
	assert.Equal(t, b, again)
}

func TestKeyDistinguishesPaddingFromCleared(t *testing.T) {
	a, err := Parse("91.")
	require.NoError(t, err)
	b, err := Parse("91")
	require.NoError(t, err)
	// Same active tiles, but a cleared third cell vs padding.
	assert.Equal(t, a.RemainingCount(), b.RemainingCount())
	assert.NotEqual(t, a.Key(), b.Key())
}

func TestKeyStable(t *testing.T) {
	b, err := Parse("147179814\n786565452")
	require.NoError(t, err)
	assert.Equal(t, b.Key(), b.Clone().Key())
}

func TestRowColIndex(t *testing.T) {
	r, c := RowCol(13)
	assert.Equal(t, 1, r)
	assert.Equal(t, 4, c)
	assert.Equal(t, 13, Index(r, c))
}

func TestFormatMove(t *testing.T) {
	b, err := Parse("91")
	require.NoError(t, err)
	assert.Equal(t, "(0,0)=9 <-> (0,1)=1", FormatMove(b, Move{I: 0, J: 1}))
}
