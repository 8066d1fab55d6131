// Package storage persists games as JSON files, one per game, split into
// cleared/ and partial/ subdirectories by outcome.
package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"svw.info/numbermatch/internal/domain"
)

type FS struct{ dir string }

func NewFS(dir string) *FS { return &FS{dir: dir} }

func outcomeDir(g *domain.SavedGame) string {
	if g.Solution != nil && g.Solution.Remaining == 0 {
		return "cleared"
	}
	return "partial"
}

func (s *FS) pathFor(id, sub string) string {
	return filepath.Join(s.dir, sub, strings.TrimSpace(id)+".json")
}

// Save writes the game, assigning a fresh ID and timestamp when missing.
func (s *FS) Save(ctx context.Context, g *domain.SavedGame) error {
	if g == nil {
		return errors.New("invalid game: nil")
	}
	if g.ID == "" {
		g.ID = uuid.NewString()
	}
	if g.CreatedAt == 0 {
		g.CreatedAt = time.Now().Unix()
	}
	target := s.pathFor(g.ID, outcomeDir(g))
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return err
	}
	f, err := os.Create(target)
	if err != nil {
		return err
	}
	defer f.Close()
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(g)
}

// Load finds a game by ID in either outcome directory, with a fallback to
// a flat layout for files dropped in by hand.
func (s *FS) Load(ctx context.Context, id string) (*domain.SavedGame, error) {
	candidates := []string{
		s.pathFor(id, "cleared"),
		s.pathFor(id, "partial"),
		filepath.Join(s.dir, strings.TrimSpace(id)+".json"),
	}
	for _, path := range candidates {
		data, err := os.ReadFile(path)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return nil, err
		}
		var g domain.SavedGame
		if err := json.Unmarshal(data, &g); err != nil {
			return nil, fmt.Errorf("decode %s: %w", path, err)
		}
		if g.ID == "" {
			g.ID = id
		}
		return &g, nil
	}
	return nil, fmt.Errorf("game %q not found", id)
}

// List returns metadata for every stored game, newest first.
func (s *FS) List(ctx context.Context) ([]domain.GameMeta, error) {
	var metas []domain.GameMeta
	for _, sub := range []string{"cleared", "partial", "."} {
		entries, err := os.ReadDir(filepath.Join(s.dir, sub))
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return nil, err
		}
		for _, e := range entries {
			if e.IsDir() || !strings.HasSuffix(e.Name(), ".json") {
				continue
			}
			data, err := os.ReadFile(filepath.Join(s.dir, sub, e.Name()))
			if err != nil {
				continue
			}
			var g domain.SavedGame
			if err := json.Unmarshal(data, &g); err != nil {
				continue
			}
			remaining := g.Board.RemainingCount()
			if g.Solution != nil {
				remaining = g.Solution.Remaining
			}
			id := g.ID
			if id == "" {
				id = strings.TrimSuffix(e.Name(), ".json")
			}
			metas = append(metas, domain.GameMeta{
				ID:        id,
				Name:      g.Name,
				Remaining: remaining,
				CreatedAt: g.CreatedAt,
			})
		}
	}
	sort.Slice(metas, func(i, j int) bool { return metas[i].CreatedAt > metas[j].CreatedAt })
	return metas, nil
}
