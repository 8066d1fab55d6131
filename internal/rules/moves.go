package rules

import "svw.info/numbermatch/internal/domain"

var downDirs = [...]struct{ dr, dc int }{
	{1, 0},  // vertical
	{1, 1},  // diagonal down-right
	{1, -1}, // diagonal down-left
}

// FindAllMoves enumerates every legal pairing on the board. For each
// active cell, four direction candidates are tried in fixed order: the
// nearest active cell later in the flattened sequence (which lets a match
// wrap past a row boundary), then the nearest active cell below along the
// column and the two down diagonals. Only the nearest candidate in each
// direction is ever tested; a non-pairing neighbor blocks that direction.
//
// The same pair can be reported twice when two directions find it (e.g.
// linear and vertical coincide across an empty row). That matches the
// game's original enumeration and keeps move order deterministic; the
// solver's visited set absorbs the duplicate branch.
func FindAllMoves(b domain.Board) []domain.Move {
	n := len(b)
	rows := n / domain.RowSize
	var moves []domain.Move

	for i := 0; i < n; i++ {
		if b[i] <= 0 {
			continue
		}

		for k := i + 1; k < n; k++ {
			if b[k] > 0 {
				if ValidPair(b[i], b[k]) {
					moves = append(moves, domain.Move{I: i, J: k})
				}
				break
			}
		}

		ri, ci := domain.RowCol(i)
		for _, d := range downDirs {
			j := nextInDirection(b, ri, ci, d.dr, d.dc, rows)
			if j > i && ValidPair(b[i], b[j]) {
				moves = append(moves, domain.Move{I: i, J: j})
			}
		}
	}
	return moves
}

// nextInDirection walks from (row,col) in steps of (dr,dc), skipping
// cleared cells, and returns the first active index or -1.
func nextInDirection(b domain.Board, row, col, dr, dc, rows int) int {
	r, c := row+dr, col+dc
	for r >= 0 && r < rows && c >= 0 && c < domain.RowSize {
		idx := domain.Index(r, c)
		if b[idx] > 0 {
			return idx
		}
		r += dr
		c += dc
	}
	return -1
}
