package solver

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"svw.info/numbermatch/internal/domain"
	"svw.info/numbermatch/internal/ports"
	"svw.info/numbermatch/internal/rules"
)

// frame is one partially-explored board on the explicit DFS stack.
type frame struct {
	board    domain.Board
	moves    []domain.Move
	next     int
	incoming bool // a move in seq led into this frame
}

// Solve explores every board state reachable from b, deduplicating on the
// exact cell sequence, and returns up to topK terminal results ranked by
// (remaining tiles, sequence length) ascending. The first terminal with
// zero tiles remaining ends the search immediately; it is a valid clear
// but not necessarily the shortest one.
func (s *DFSSolver) Solve(ctx context.Context, b domain.Board, topK int) ([]domain.SearchResult, ports.Stats, error) {
	start := time.Now()
	if len(b)%domain.RowSize != 0 {
		return nil, ports.Stats{}, fmt.Errorf("%w: length %d not a multiple of %d", domain.ErrInvalidBoard, len(b), domain.RowSize)
	}
	if topK <= 0 {
		topK = DefaultTopK
	}

	visited := make(map[string]struct{})
	var results []domain.SearchResult
	explored, skipped := 0, 0
	solved := false

	var seq []domain.Move
	var stack []*frame
	lastReport := start

	// push visits a board: dedup, count, then either record a terminal or
	// open a frame. Reports whether a frame was opened.
	push := func(board domain.Board, incoming bool) bool {
		key := board.Key()
		if _, seen := visited[key]; seen {
			skipped++
			return false
		}
		visited[key] = struct{}{}
		explored++

		moves := orderMoves(board, rules.FindAllMoves(board))
		if len(moves) == 0 {
			if rem, ok := admit(&results, topK, board, seq); ok && rem == 0 {
				solved = true
			}
			return false
		}
		stack = append(stack, &frame{board: board, moves: moves, incoming: incoming})
		return true
	}

	push(b, false)

	for len(stack) > 0 && !solved {
		if ctx.Err() != nil {
			stats := ports.Stats{Explored: explored, Skipped: skipped, Duration: time.Since(start)}
			return results, stats, ctx.Err()
		}
		if s.maxStates > 0 && explored >= s.maxStates {
			break
		}
		if s.progress != nil && time.Since(lastReport) >= s.progressInterval {
			s.progress(status(results, explored, skipped, seq, stack))
			lastReport = time.Now()
		}

		f := stack[len(stack)-1]
		if f.next >= len(f.moves) {
			stack = stack[:len(stack)-1]
			if f.incoming {
				seq = seq[:len(seq)-1]
			}
			continue
		}
		m := f.moves[f.next]
		f.next++

		child, err := rules.Apply(f.board, m)
		if err != nil {
			// Enumerated moves are always applicable; guard anyway.
			continue
		}
		seq = append(seq, m)
		if !push(child, true) {
			seq = seq[:len(seq)-1]
		}
	}

	stats := ports.Stats{Explored: explored, Skipped: skipped, Duration: time.Since(start)}
	return results, stats, nil
}

// orderMoves stably partitions moves so that those keeping every row
// alive come before those removing one, biasing the walk toward fuller
// clears without dropping any branch.
func orderMoves(b domain.Board, moves []domain.Move) []domain.Move {
	if len(moves) < 2 {
		return moves
	}
	ordered := make([]domain.Move, 0, len(moves))
	var removing []domain.Move
	for _, m := range moves {
		if rules.CausesRowRemoval(b, m) {
			removing = append(removing, m)
		} else {
			ordered = append(ordered, m)
		}
	}
	return append(ordered, removing...)
}

// admit records a terminal board if it beats the worst kept result,
// keeping the list sorted by (remaining, moves) ascending and capped at
// topK. It returns the terminal's remaining count and whether it was kept.
func admit(results *[]domain.SearchResult, topK int, b domain.Board, seq []domain.Move) (int, bool) {
	rem := b.RemainingCount()
	if len(*results) >= topK {
		worst := (*results)[len(*results)-1]
		if rem > worst.Remaining || (rem == worst.Remaining && len(seq) >= len(worst.Moves)) {
			return rem, false
		}
	}
	*results = append(*results, domain.SearchResult{
		Final:     b.Clone(),
		Moves:     append([]domain.Move(nil), seq...),
		Remaining: rem,
	})
	rs := *results
	sort.SliceStable(rs, func(i, j int) bool {
		if rs[i].Remaining != rs[j].Remaining {
			return rs[i].Remaining < rs[j].Remaining
		}
		return len(rs[i].Moves) < len(rs[j].Moves)
	})
	if len(rs) > topK {
		rs = rs[:topK]
	}
	*results = rs
	return rem, true
}

// status formats one progress line with branch positions per depth.
func status(results []domain.SearchResult, explored, skipped int, seq []domain.Move, stack []*frame) string {
	best := -1
	if len(results) > 0 {
		best = results[0].Remaining
	}
	var branches strings.Builder
	for d, f := range stack {
		if d > 0 {
			branches.WriteByte(' ')
		}
		fmt.Fprintf(&branches, "%d/%d", f.next, len(f.moves))
	}
	return fmt.Sprintf("explored=%d skipped=%d best=%d depth=%d branches=[%s]",
		explored, skipped, best, len(seq), branches.String())
}
