package rules

import "svw.info/numbermatch/internal/domain"

const (
	pairPoints = 1
	rowPoints  = 5
)

// Score replays moves from start and returns the game score: one point
// per cleared pair, five per removed row.
func Score(start domain.Board, moves []domain.Move) (int, error) {
	score := 0
	b := start
	for _, m := range moves {
		next, err := Apply(b, m)
		if err != nil {
			return 0, err
		}
		score += pairPoints
		score += rowPoints * (len(b) - len(next)) / domain.RowSize
		b = next
	}
	return score, nil
}
