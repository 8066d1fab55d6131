package usecase

import (
	"context"
	"errors"

	"svw.info/numbermatch/internal/domain"
	"svw.info/numbermatch/internal/ports"
	"svw.info/numbermatch/internal/rules"
)

// Service wires the solver stack behind one front door for the adapters.
type Service struct {
	Solver       ports.Solver
	Orchestrator ports.Orchestrator
	Grouper      ports.Grouper
	Storage      ports.Storage
}

func NewService(s ports.Solver, o ports.Orchestrator, g ports.Grouper, st ports.Storage) *Service {
	return &Service{Solver: s, Orchestrator: o, Grouper: g, Storage: st}
}

var errNotConfigured = errors.New("usecase dependency not configured")

func (u *Service) Solve(ctx context.Context, b domain.Board, topK int) ([]domain.SearchResult, ports.Stats, error) {
	if u.Solver == nil {
		return nil, ports.Stats{}, errNotConfigured
	}
	return u.Solver.Solve(ctx, b, topK)
}

func (u *Service) SolveMultiPhase(ctx context.Context, b domain.Board, maxPhases, topK int) (*domain.BestSolution, []domain.PhaseRecord, ports.Stats, error) {
	if u.Orchestrator == nil {
		return nil, nil, ports.Stats{}, errNotConfigured
	}
	return u.Orchestrator.SolveMultiPhase(ctx, b, maxPhases, topK)
}

func (u *Service) Group(b domain.Board, moves []domain.Move) ([]domain.Step, error) {
	if u.Grouper == nil {
		return nil, errNotConfigured
	}
	return u.Grouper.Group(b, moves)
}

// FindMoves and Extend are pure board mechanics; no port needed.

func (u *Service) FindMoves(b domain.Board) []domain.Move {
	return rules.FindAllMoves(b)
}

func (u *Service) Extend(b domain.Board) domain.Board {
	return rules.Extend(b)
}

// Persistence
func (u *Service) Save(ctx context.Context, g *domain.SavedGame) error {
	if u.Storage == nil {
		return errNotConfigured
	}
	return u.Storage.Save(ctx, g)
}

func (u *Service) Load(ctx context.Context, id string) (*domain.SavedGame, error) {
	if u.Storage == nil {
		return nil, errNotConfigured
	}
	return u.Storage.Load(ctx, id)
}

func (u *Service) List(ctx context.Context) ([]domain.GameMeta, error) {
	if u.Storage == nil {
		return nil, errNotConfigured
	}
	return u.Storage.List(ctx)
}
