package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"svw.info/numbermatch/internal/domain"
)

func TestApplyClearsPair(t *testing.T) {
	b := mustParse(t, "915\n555")
	out, err := Apply(b, domain.Move{I: 0, J: 1})
	require.NoError(t, err)
	assert.Equal(t, b.RemainingCount()-2, out.RemainingCount())
	assert.Equal(t, domain.Cleared, out[0])
	assert.Equal(t, domain.Cleared, out[1])
	assert.Len(t, out, len(b), "no row became empty")
	assert.Zero(t, len(out)%domain.RowSize)
}

func TestApplyRemovesEmptyRow(t *testing.T) {
	b := mustParse(t, "91\n555")
	out, err := Apply(b, domain.Move{I: 0, J: 1})
	require.NoError(t, err)
	require.Len(t, out, domain.RowSize)
	assert.Equal(t, domain.Cell(5), out[0], "second row compacted up")
}

func TestApplyCanEmptyWholeBoard(t *testing.T) {
	b := mustParse(t, "91")
	out, err := Apply(b, domain.Move{I: 0, J: 1})
	require.NoError(t, err)
	assert.Empty(t, out)
	assert.Zero(t, out.RemainingCount())
}

func TestApplyDoesNotMutateInput(t *testing.T) {
	b := mustParse(t, "915\n555")
	want := b.Clone()
	_, err := Apply(b, domain.Move{I: 0, J: 1})
	require.NoError(t, err)
	assert.Equal(t, want, b)
}

func TestApplyRejectsBadMoves(t *testing.T) {
	b := mustParse(t, "91.")
	for name, m := range map[string]domain.Move{
		"out of range": {I: 0, J: 42},
		"reversed":     {I: 1, J: 0},
		"cleared cell": {I: 1, J: 2},
		"padding cell": {I: 0, J: 5},
	} {
		t.Run(name, func(t *testing.T) {
			_, err := Apply(b, m)
			require.ErrorIs(t, err, domain.ErrInvalidMove)
		})
	}
}

func TestCausesRowRemoval(t *testing.T) {
	b := mustParse(t, "91\n555")
	assert.True(t, CausesRowRemoval(b, domain.Move{I: 0, J: 1}))
	assert.False(t, CausesRowRemoval(b, domain.Move{I: 9, J: 10}))
}

func TestRemovedRows(t *testing.T) {
	// Clearing the vertical 5-pair empties both rows at once.
	b := mustParse(t, "5........\n5........")
	assert.Equal(t, []int{0, 1}, RemovedRows(b, domain.Move{I: 0, J: 9}))

	b = mustParse(t, "91\n555")
	assert.Equal(t, []int{0}, RemovedRows(b, domain.Move{I: 0, J: 1}))
	assert.Empty(t, RemovedRows(b, domain.Move{I: 9, J: 10}))
}

func TestExtendAppendsRemainingTiles(t *testing.T) {
	// One leftover tile followed by cleared cells: the deal appends it
	// right after the last real content, sentinel-padded to a full row.
	b := mustParse(t, "7..")
	out := Extend(b)
	want := mustParse(t, "7..7")
	assert.Equal(t, want, out)
}

func TestExtendStripsTrailingPadding(t *testing.T) {
	b := mustParse(t, "786565452\n.1656")
	out := Extend(b)
	require.Zero(t, len(out)%domain.RowSize)
	// Prefix up to the last real cell is preserved verbatim.
	assert.Equal(t, b[:14], out[:14])
	// The incoming deal repeats every active tile in order.
	var incoming domain.Board
	for _, v := range b {
		if v > 0 {
			incoming = append(incoming, v)
		}
	}
	assert.Equal(t, incoming, out[14:14+len(incoming)])
	for _, v := range out[14+len(incoming):] {
		assert.Equal(t, domain.NoCell, v)
	}
}

func TestExtendNeverDropsTiles(t *testing.T) {
	b := mustParse(t, "147179814\n78.565452")
	out := Extend(b)
	assert.Equal(t, 2*b.RemainingCount(), out.RemainingCount())
	assert.Zero(t, len(out)%domain.RowSize)
}

func TestScore(t *testing.T) {
	// Two pairs, the second emptying the single remaining row:
	// 2 pair points + 5 row points.
	b := mustParse(t, "5555")
	score, err := Score(b, []domain.Move{{I: 0, J: 1}, {I: 2, J: 3}})
	require.NoError(t, err)
	assert.Equal(t, 7, score)
}

func TestScoreRejectsBadSequence(t *testing.T) {
	b := mustParse(t, "5555")
	_, err := Score(b, []domain.Move{{I: 0, J: 1}, {I: 0, J: 1}})
	require.ErrorIs(t, err, domain.ErrInvalidMove)
}
