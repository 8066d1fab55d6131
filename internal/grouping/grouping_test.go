package grouping

import (
	"context"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"svw.info/numbermatch/internal/domain"
	"svw.info/numbermatch/internal/rules"
	"svw.info/numbermatch/internal/solver"
)

func mustParse(t *testing.T, text string) domain.Board {
	t.Helper()
	b, err := domain.Parse(text)
	require.NoError(t, err)
	return b
}

func flatten(steps []domain.Step) []domain.Move {
	var out []domain.Move
	for _, st := range steps {
		out = append(out, st.Moves...)
	}
	return out
}

func sortedCopy(moves []domain.Move) []domain.Move {
	out := append([]domain.Move(nil), moves...)
	sort.Slice(out, func(i, j int) bool {
		if out[i].I != out[j].I {
			return out[i].I < out[j].I
		}
		return out[i].J < out[j].J
	})
	return out
}

func TestGroupMergesRowRemovalIntoPrecedingStep(t *testing.T) {
	// (0,1) keeps the row alive, (2,3) then empties it; both are legal on
	// the starting board and nothing diagonal crosses the removed row, so
	// they share one step.
	b := mustParse(t, "5555")
	seq := []domain.Move{{I: 0, J: 1}, {I: 2, J: 3}}
	steps, err := New(nil).Group(b, seq)
	require.NoError(t, err)
	require.Len(t, steps, 1)
	assert.Equal(t, seq, steps[0].Moves)
	assert.Equal(t, 1, steps[0].RowRemoval)
}

func TestGroupIsolatesIllegalRowRemoval(t *testing.T) {
	// The 5-5 pair is blocked by 3 and 7 until they clear, so the
	// row-removing move cannot share the first step's board.
	b := mustParse(t, "5375")
	seq := []domain.Move{{I: 1, J: 2}, {I: 0, J: 3}}
	steps, err := New(nil).Group(b, seq)
	require.NoError(t, err)
	require.Len(t, steps, 2)
	assert.Equal(t, []domain.Move{{I: 1, J: 2}}, steps[0].Moves)
	assert.Equal(t, -1, steps[0].RowRemoval)
	assert.Equal(t, []domain.Move{{I: 0, J: 3}}, steps[1].Moves)
	assert.Equal(t, 0, steps[1].RowRemoval)
}

func TestGroupDiagonalCrossingBlocksMerge(t *testing.T) {
	// The diagonal 5-5 move spans rows 0 and 2; merging the move that
	// removes row 1 into its step would redraw the diagonal wrongly, so
	// the removal stands alone even though it is legal on that board.
	b := mustParse(t, "5.......3\n9.1......\n..5.....7")
	diag := domain.Move{I: 0, J: 20}
	removal := domain.Move{I: 9, J: 11}
	require.True(t, rules.MoveLegal(b, diag))
	require.True(t, rules.MoveLegal(b, removal))

	steps, err := New(nil).Group(b, []domain.Move{diag, removal})
	require.NoError(t, err)
	require.Len(t, steps, 2)
	assert.Equal(t, []domain.Move{diag}, steps[0].Moves)
	assert.Equal(t, []domain.Move{removal}, steps[1].Moves)
	assert.Equal(t, 0, steps[1].RowRemoval)
}

func TestGroupDefersDependentMoves(t *testing.T) {
	// The 9-1 pair is blocked by the 5s until they clear, so it lands in
	// a second step against the updated board.
	b := mustParse(t, "9551....2")
	seq := []domain.Move{{I: 1, J: 2}, {I: 0, J: 3}}
	steps, err := New(nil).Group(b, seq)
	require.NoError(t, err)
	require.Len(t, steps, 2)
	assert.Equal(t, []domain.Move{{I: 1, J: 2}}, steps[0].Moves)
	assert.Equal(t, []domain.Move{{I: 0, J: 3}}, steps[1].Moves)
}

func TestGroupForcedAdmitKeepsSequenceMoving(t *testing.T) {
	// A hand-written sequence whose only move is blocked: the grouper
	// force-admits it instead of stalling, and replay still works since
	// both cells are active.
	b := mustParse(t, "515")
	seq := []domain.Move{{I: 0, J: 2}}
	steps, err := New(nil).Group(b, seq)
	require.NoError(t, err)
	require.Len(t, steps, 1)
	assert.Equal(t, seq, steps[0].Moves)
}

func TestGroupCompletenessOnSolvedBoard(t *testing.T) {
	b := mustParse(t, "147179814\n786565452")
	res, _, err := solver.NewDFSSolver().Solve(context.Background(), b, 1)
	require.NoError(t, err)
	require.NotEmpty(t, res)
	seq := res[0].Moves

	steps, err := New(nil).Group(b, seq)
	require.NoError(t, err)

	// Every move appears exactly once.
	assert.Equal(t, sortedCopy(seq), sortedCopy(flatten(steps)))

	// Each step's moves are all legal against that step's board.
	for _, st := range steps {
		for _, m := range st.Moves {
			assert.True(t, rules.MoveLegal(st.Board, m), "move %v illegal in its step", m)
		}
	}
}

func TestGroupEmptySequence(t *testing.T) {
	b := mustParse(t, "123456789")
	steps, err := New(nil).Group(b, nil)
	require.NoError(t, err)
	assert.Empty(t, steps)
}
