package rules

import (
	"fmt"

	"svw.info/numbermatch/internal/domain"
)

// Apply clears the two positions of m and drops every row that no longer
// holds an active tile, compacting the remaining rows in order. It is the
// only operation that shrinks a board. The input is not modified.
func Apply(b domain.Board, m domain.Move) (domain.Board, error) {
	if m.I < 0 || m.J <= m.I || m.J >= len(b) {
		return nil, fmt.Errorf("%w: positions (%d,%d) out of range for %d cells", domain.ErrInvalidMove, m.I, m.J, len(b))
	}
	if b[m.I] <= 0 || b[m.J] <= 0 {
		return nil, fmt.Errorf("%w: positions (%d,%d) are not both active", domain.ErrInvalidMove, m.I, m.J)
	}

	kept := make(domain.Board, 0, len(b))
	for r := 0; r < b.Rows(); r++ {
		start := r * domain.RowSize
		row := b[start : start+domain.RowSize]
		if rowLive(row, start, m) {
			kept = append(kept, row...)
			ki := len(kept) - domain.RowSize
			for c := 0; c < domain.RowSize; c++ {
				if start+c == m.I || start+c == m.J {
					kept[ki+c] = domain.Cleared
				}
			}
		}
	}
	return kept, nil
}

// rowLive reports whether the row starting at flat index start still has
// an active tile once m's positions are cleared.
func rowLive(row domain.Board, start int, m domain.Move) bool {
	for c, v := range row {
		if v > 0 && start+c != m.I && start+c != m.J {
			return true
		}
	}
	return false
}

// CausesRowRemoval reports whether applying m would drop at least one row.
func CausesRowRemoval(b domain.Board, m domain.Move) bool {
	for r := 0; r < b.Rows(); r++ {
		start := r * domain.RowSize
		if !rowLive(b[start:start+domain.RowSize], start, m) {
			return true
		}
	}
	return false
}

// RemovedRows lists the row indices (in b's coordinates) that applying m
// would drop.
func RemovedRows(b domain.Board, m domain.Move) []int {
	var removed []int
	for r := 0; r < b.Rows(); r++ {
		start := r * domain.RowSize
		if !rowLive(b[start:start+domain.RowSize], start, m) {
			removed = append(removed, r)
		}
	}
	return removed
}
