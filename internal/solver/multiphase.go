package solver

import (
	"context"
	"log/slog"
	"sort"
	"time"

	"svw.info/numbermatch/internal/domain"
	"svw.info/numbermatch/internal/ports"
	"svw.info/numbermatch/internal/rules"
)

// DefaultCandidateBound is how many finalists are extended into the next
// phase when the caller does not choose.
const DefaultCandidateBound = 5

// MultiPhase chains solver passes across board extensions, merging and
// re-ranking the terminals of every phase.
type MultiPhase struct {
	engine     ports.Solver
	candidates int
	log        *slog.Logger
}

type MultiPhaseOption func(*MultiPhase)

// WithCandidateBound caps how many top boards are extended per phase.
func WithCandidateBound(n int) MultiPhaseOption {
	return func(o *MultiPhase) {
		if n > 0 {
			o.candidates = n
		}
	}
}

// WithLogger installs a logger for per-phase reporting.
func WithLogger(l *slog.Logger) MultiPhaseOption {
	return func(o *MultiPhase) { o.log = l }
}

func NewMultiPhase(engine ports.Solver, opts ...MultiPhaseOption) *MultiPhase {
	o := &MultiPhase{engine: engine, candidates: DefaultCandidateBound}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// lineage is one finalist's full history: the board each phase started
// from and the moves played in it.
type lineage struct {
	boards    []domain.Board
	seqs      [][]domain.Move
	final     domain.Board
	remaining int
	moves     int // total across phases
}

func (l lineage) extended(ext domain.Board, r domain.SearchResult) lineage {
	boards := make([]domain.Board, len(l.boards), len(l.boards)+1)
	copy(boards, l.boards)
	seqs := make([][]domain.Move, len(l.seqs), len(l.seqs)+1)
	copy(seqs, l.seqs)
	return lineage{
		boards:    append(boards, ext),
		seqs:      append(seqs, r.Moves),
		final:     r.Final,
		remaining: r.Remaining,
		moves:     l.moves + len(r.Moves),
	}
}

func (l lineage) beats(other lineage) bool {
	if l.remaining != other.remaining {
		return l.remaining < other.remaining
	}
	return l.moves < other.moves
}

// SolveMultiPhase runs up to maxPhases passes. Phase 1 searches the given
// board; each later phase extends the current finalists and searches
// again, ranking all terminals by (remaining, total moves). It stops
// early on a full clear, on a phase with no results, and from phase 3 on
// when the best remaining count stops improving.
func (o *MultiPhase) SolveMultiPhase(ctx context.Context, board domain.Board, maxPhases, topK int) (*domain.BestSolution, []domain.PhaseRecord, ports.Stats, error) {
	start := time.Now()
	if maxPhases <= 0 {
		maxPhases = 1
	}
	if topK <= 0 {
		topK = DefaultTopK
	}

	var total ports.Stats
	var records []domain.PhaseRecord

	res, st, err := o.engine.Solve(ctx, board, topK)
	total.Explored += st.Explored
	total.Skipped += st.Skipped
	records = append(records, domain.PhaseRecord{Phase: 1, Results: res, StatesExplored: st.Explored, StatesSkipped: st.Skipped})
	if err != nil {
		total.Duration = time.Since(start)
		return nil, records, total, err
	}
	if len(res) == 0 {
		total.Duration = time.Since(start)
		return nil, records, total, nil
	}

	lineages := make([]lineage, 0, len(res))
	for _, r := range res {
		lineages = append(lineages, lineage{
			boards:    []domain.Board{board},
			seqs:      [][]domain.Move{r.Moves},
			final:     r.Final,
			remaining: r.Remaining,
			moves:     len(r.Moves),
		})
	}
	best := lineages[0]
	prevBest := best.remaining
	o.logPhase(1, lineages, st)

	for p := 2; p <= maxPhases && best.remaining > 0; p++ {
		bound := o.candidates
		if bound > len(lineages) {
			bound = len(lineages)
		}

		var next []lineage
		var phase ports.Stats
		for _, cand := range lineages[:bound] {
			ext := rules.Extend(cand.final)
			res, st, err := o.engine.Solve(ctx, ext, topK)
			phase.Explored += st.Explored
			phase.Skipped += st.Skipped
			total.Explored += st.Explored
			total.Skipped += st.Skipped
			if err != nil {
				total.Duration = time.Since(start)
				return o.buildBest(best), records, total, err
			}
			for _, r := range res {
				next = append(next, cand.extended(ext, r))
			}
		}

		sort.SliceStable(next, func(i, j int) bool { return next[i].beats(next[j]) })
		if len(next) > topK {
			next = next[:topK]
		}
		records = append(records, domain.PhaseRecord{
			Phase:          p,
			Results:        resultsOf(next),
			StatesExplored: phase.Explored,
			StatesSkipped:  phase.Skipped,
		})
		if len(next) == 0 {
			break
		}
		lineages = next
		o.logPhase(p, lineages, phase)

		phaseBest := lineages[0]
		if phaseBest.beats(best) {
			best = phaseBest
		}
		if phaseBest.remaining == 0 {
			break
		}
		if p >= 3 && phaseBest.remaining >= prevBest {
			break
		}
		prevBest = phaseBest.remaining
	}

	total.Duration = time.Since(start)
	return o.buildBest(best), records, total, nil
}

func resultsOf(ls []lineage) []domain.SearchResult {
	out := make([]domain.SearchResult, 0, len(ls))
	for _, l := range ls {
		out = append(out, domain.SearchResult{
			Final:     l.final,
			Moves:     l.seqs[len(l.seqs)-1],
			Remaining: l.remaining,
		})
	}
	return out
}

func (o *MultiPhase) buildBest(l lineage) *domain.BestSolution {
	score := 0
	for i := range l.seqs {
		if s, err := rules.Score(l.boards[i], l.seqs[i]); err == nil {
			score += s
		}
	}
	return &domain.BestSolution{
		Remaining:   l.remaining,
		TotalMoves:  l.moves,
		Score:       score,
		PhaseBoards: l.boards,
		PhaseMoves:  l.seqs,
		Final:       l.final,
	}
}

func (o *MultiPhase) logPhase(p int, ls []lineage, st ports.Stats) {
	if o.log == nil || len(ls) == 0 {
		return
	}
	o.log.Info("phase done",
		"phase", p,
		"results", len(ls),
		"bestRemaining", ls[0].remaining,
		"bestMoves", ls[0].moves,
		"explored", st.Explored,
		"skipped", st.Skipped,
	)
}
