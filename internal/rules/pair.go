// Package rules implements the game mechanics: pairing and visibility
// checks, move enumeration, move application with row compaction, and the
// board extension that simulates a new deal. Everything here is a pure
// function over board values.
package rules

import "svw.info/numbermatch/internal/domain"

// ValidPair reports whether two cell values may be matched: both active
// and either equal or summing to ten.
func ValidPair(a, b domain.Cell) bool {
	if a <= 0 || b <= 0 {
		return false
	}
	return a == b || a+b == 10
}

// ClearPath reports whether nothing active sits strictly between i and j
// along a permitted direction: the flattened sequence (which wraps across
// row ends), a shared column, or a diagonal.
func ClearPath(b domain.Board, i, j int) bool {
	if i == j {
		return false
	}
	if i > j {
		i, j = j, i
	}

	linear := true
	for k := i + 1; k < j; k++ {
		if b[k] > 0 {
			linear = false
			break
		}
	}
	if linear {
		return true
	}

	ri, ci := domain.RowCol(i)
	rj, cj := domain.RowCol(j)

	if ci == cj {
		for r := ri + 1; r < rj; r++ {
			if b[domain.Index(r, ci)] > 0 {
				return false
			}
		}
		return true
	}

	if abs(rj-ri) == abs(cj-ci) {
		step := 1
		if cj < ci {
			step = -1
		}
		c := ci
		for r := ri + 1; r < rj; r++ {
			c += step
			if c < 0 || c >= domain.RowSize {
				return false
			}
			if b[domain.Index(r, c)] > 0 {
				return false
			}
		}
		return true
	}

	return false
}

// MoveLegal reports whether m could fire on b right now: positions in
// range, values pairable, path clear.
func MoveLegal(b domain.Board, m domain.Move) bool {
	if m.I < 0 || m.I >= len(b) || m.J < 0 || m.J >= len(b) {
		return false
	}
	return ValidPair(b[m.I], b[m.J]) && ClearPath(b, m.I, m.J)
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
