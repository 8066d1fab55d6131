package rules

import "svw.info/numbermatch/internal/domain"

// Extend simulates a new deal: every active tile, in board order, is
// appended again after the last real content. Trailing NoCell padding is
// stripped first, cleared cells before the last real content are kept as
// they are, and the result is padded with NoCell up to a whole row.
func Extend(b domain.Board) domain.Board {
	var incoming []domain.Cell
	for _, v := range b {
		if v > 0 {
			incoming = append(incoming, v)
		}
	}

	last := -1
	for i := len(b) - 1; i >= 0; i-- {
		if b[i] != domain.NoCell {
			last = i
			break
		}
	}

	out := make(domain.Board, 0, last+1+len(incoming)+domain.RowSize)
	if last >= 0 {
		out = append(out, b[:last+1]...)
	}
	out = append(out, incoming...)
	for len(out)%domain.RowSize != 0 {
		out = append(out, domain.NoCell)
	}
	return out
}
