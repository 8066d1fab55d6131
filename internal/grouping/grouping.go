// Package grouping rebuilds a flat solver sequence into display steps: a
// viewer can play each step's moves simultaneously against its starting
// board, and row removals are either isolated or safely co-located with
// moves the removal cannot disturb.
package grouping

import (
	"fmt"
	"log/slog"

	"svw.info/numbermatch/internal/domain"
	"svw.info/numbermatch/internal/rules"
)

// Grouper converts move sequences into steps. The logger, when set,
// surfaces the forced-admit fallback so an illegal sequence shows up in
// logs instead of passing silently.
type Grouper struct {
	log *slog.Logger
}

func New(log *slog.Logger) *Grouper { return &Grouper{log: log} }

// macro is a maximal run of moves ending at a row removal (or at the end
// of the sequence). Board coordinates are stable inside a macro because
// the board only shrinks on its final move.
type macro struct {
	board       domain.Board
	moves       []domain.Move
	removal     bool
	removedRows []int // rows dropped by the final move, pre-removal coords
}

// Group splits moves at row-removal boundaries, sub-groups each run by
// mutual independence, and attaches each closing row-removal move either
// to the preceding step (when legal there and no diagonal in that step
// crosses the removed row) or to a step of its own.
func (g *Grouper) Group(start domain.Board, moves []domain.Move) ([]domain.Step, error) {
	macros, err := splitMacros(start, moves)
	if err != nil {
		return nil, err
	}

	var steps []domain.Step
	for _, mg := range macros {
		inner := mg.moves
		var closing domain.Move
		if mg.removal {
			closing = inner[len(inner)-1]
			inner = inner[:len(inner)-1]
		}

		first := len(steps)
		cur := mg.board
		remaining := inner
		for len(remaining) > 0 {
			var sub, deferred []domain.Move
			for _, m := range remaining {
				if rules.MoveLegal(cur, m) {
					sub = append(sub, m)
				} else {
					deferred = append(deferred, m)
				}
			}
			if len(sub) == 0 {
				// A deferred move can only become legal after a sibling
				// fires; if none is legal now the sequence is suspect.
				// Force-admit the first one rather than stalling.
				if g.log != nil {
					g.log.Warn("grouping: no legal move in round, force-admitting",
						"move", fmt.Sprintf("%+v", deferred[0]))
				}
				sub = deferred[:1]
				deferred = deferred[1:]
			}

			next := cur
			for _, m := range sub {
				next, err = rules.Apply(next, m)
				if err != nil {
					return nil, fmt.Errorf("grouping replay: %w", err)
				}
			}
			steps = append(steps, domain.Step{Board: cur, Moves: sub, RowRemoval: -1})
			cur = next
			remaining = deferred
		}

		if mg.removal {
			merged := false
			if len(steps) > first {
				last := &steps[len(steps)-1]
				if rules.MoveLegal(last.Board, closing) && !anyDiagonalCrosses(last.Moves, mg.removedRows) {
					last.Moves = append(last.Moves, closing)
					last.RowRemoval = len(last.Moves) - 1
					merged = true
				}
			}
			if !merged {
				steps = append(steps, domain.Step{Board: cur, Moves: []domain.Move{closing}, RowRemoval: 0})
			}
		}
	}
	return steps, nil
}

// splitMacros replays the sequence once, tagging each row-removal move
// with the rows it drops and cutting a macro group there.
func splitMacros(start domain.Board, moves []domain.Move) ([]macro, error) {
	var macros []macro
	cur := start
	macroStart := start
	var run []domain.Move

	for _, m := range moves {
		removed := rules.RemovedRows(cur, m)
		next, err := rules.Apply(cur, m)
		if err != nil {
			return nil, fmt.Errorf("grouping replay: %w", err)
		}
		run = append(run, m)
		if len(removed) > 0 {
			macros = append(macros, macro{board: macroStart, moves: run, removal: true, removedRows: removed})
			macroStart = next
			run = nil
		}
		cur = next
	}
	if len(run) > 0 {
		macros = append(macros, macro{board: macroStart, moves: run})
	}
	return macros, nil
}

// anyDiagonalCrosses reports whether any diagonal move has its endpoints
// on strictly opposite sides of one of the given rows.
func anyDiagonalCrosses(moves []domain.Move, rows []int) bool {
	for _, m := range moves {
		ri, ci := domain.RowCol(m.I)
		rj, cj := domain.RowCol(m.J)
		if ci == cj || abs(rj-ri) != abs(cj-ci) {
			continue
		}
		lo, hi := ri, rj
		if lo > hi {
			lo, hi = hi, lo
		}
		for _, row := range rows {
			if lo < row && row < hi {
				return true
			}
		}
	}
	return false
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
