package ports

import (
	"context"
	"time"

	"svw.info/numbermatch/internal/domain"
)

// Stats captures performance characteristics of a search.
type Stats struct {
	Explored int
	Skipped  int
	Duration time.Duration
}

// Progress receives formatted status lines at a bounded rate while a
// search runs. It must only observe; it can never alter the outcome.
type Progress func(status string)

// Solver runs one exhaustive search over a board.
type Solver interface {
	Solve(ctx context.Context, b domain.Board, topK int) ([]domain.SearchResult, Stats, error)
}

// Orchestrator chains solver passes across board extensions.
type Orchestrator interface {
	SolveMultiPhase(ctx context.Context, b domain.Board, maxPhases, topK int) (*domain.BestSolution, []domain.PhaseRecord, Stats, error)
}

// Grouper rebuilds a flat move sequence into display steps.
type Grouper interface {
	Group(start domain.Board, moves []domain.Move) ([]domain.Step, error)
}

// Storage persists and retrieves games as JSON.
type Storage interface {
	Save(ctx context.Context, g *domain.SavedGame) error
	Load(ctx context.Context, id string) (*domain.SavedGame, error)
	List(ctx context.Context) ([]domain.GameMeta, error)
}
