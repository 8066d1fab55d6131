package httpadapter

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"svw.info/numbermatch/internal/domain"
	"svw.info/numbermatch/internal/render"
	"svw.info/numbermatch/internal/usecase"
)

type Handler struct {
	UC *usecase.Service
}

func New(uc *usecase.Service) *Handler { return &Handler{UC: uc} }

func (h *Handler) Register(mux *http.ServeMux) {
	mux.HandleFunc("/api/solve", h.handleSolve)
	mux.HandleFunc("/api/moves", h.handleMoves)
	mux.HandleFunc("/api/extend", h.handleExtend)
	mux.HandleFunc("/api/save", h.handleSave)
	mux.HandleFunc("/api/load", h.handleLoad)
	mux.HandleFunc("/api/list", h.handleList)
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func decode(r *http.Request, v any) error {
	err := json.NewDecoder(r.Body).Decode(v)
	if err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

// ---- Solve ----

type solveReq struct {
	Board       string `json:"board"`
	TopK        int    `json:"topK,omitempty"`
	MaxPhases   int    `json:"maxPhases,omitempty"`
	IncludeHTML bool   `json:"includeHtml,omitempty"`
}

type solveResp struct {
	Best           *domain.BestSolution `json:"best,omitempty"`
	Steps          [][]domain.Step      `json:"steps,omitempty"` // per phase
	StatesExplored int                  `json:"statesExplored,omitempty"`
	StatesSkipped  int                  `json:"statesSkipped,omitempty"`
	DurationMs     int64                `json:"durationMs,omitempty"`
	HTML           string               `json:"html,omitempty"`
	Error          string               `json:"error,omitempty"`
}

func (h *Handler) handleSolve(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeJSON(w, http.StatusMethodNotAllowed, solveResp{Error: "method not allowed"})
		return
	}
	var req solveReq
	if err := decode(r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, solveResp{Error: "invalid JSON: " + err.Error()})
		return
	}
	board, err := domain.Parse(req.Board)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, solveResp{Error: err.Error()})
		return
	}

	best, _, stats, err := h.UC.SolveMultiPhase(r.Context(), board, req.MaxPhases, req.TopK)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, solveResp{Error: err.Error()})
		return
	}
	resp := solveResp{
		Best:           best,
		StatesExplored: stats.Explored,
		StatesSkipped:  stats.Skipped,
		DurationMs:     stats.Duration.Milliseconds(),
	}
	if best != nil {
		var phases []render.Phase
		for i := range best.PhaseMoves {
			steps, err := h.UC.Group(best.PhaseBoards[i], best.PhaseMoves[i])
			if err != nil {
				writeJSON(w, http.StatusInternalServerError, solveResp{Error: err.Error()})
				return
			}
			resp.Steps = append(resp.Steps, steps)
			phases = append(phases, render.Phase{
				Label:    phaseLabel(i),
				Extended: i > 0,
				Board:    best.PhaseBoards[i],
				Steps:    steps,
			})
		}
		if req.IncludeHTML {
			html, err := render.Solution(phases)
			if err != nil {
				writeJSON(w, http.StatusInternalServerError, solveResp{Error: err.Error()})
				return
			}
			resp.HTML = html
		}
	}
	writeJSON(w, http.StatusOK, resp)
}

func phaseLabel(i int) string {
	return fmt.Sprintf("Phase %d", i+1)
}

// ---- Moves ----

type boardReq struct {
	Board string `json:"board"`
}

type movesResp struct {
	Moves []domain.Move `json:"moves"`
	Descs []string      `json:"descs,omitempty"`
	Error string        `json:"error,omitempty"`
}

func (h *Handler) handleMoves(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeJSON(w, http.StatusMethodNotAllowed, movesResp{Error: "method not allowed"})
		return
	}
	var req boardReq
	if err := decode(r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, movesResp{Error: "invalid JSON: " + err.Error()})
		return
	}
	board, err := domain.Parse(req.Board)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, movesResp{Error: err.Error()})
		return
	}
	moves := h.UC.FindMoves(board)
	resp := movesResp{Moves: moves}
	for _, m := range moves {
		resp.Descs = append(resp.Descs, domain.FormatMove(board, m))
	}
	writeJSON(w, http.StatusOK, resp)
}

// ---- Extend ----

type extendResp struct {
	Board string `json:"board"`
	Error string `json:"error,omitempty"`
}

func (h *Handler) handleExtend(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeJSON(w, http.StatusMethodNotAllowed, extendResp{Error: "method not allowed"})
		return
	}
	var req boardReq
	if err := decode(r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, extendResp{Error: "invalid JSON: " + err.Error()})
		return
	}
	board, err := domain.Parse(req.Board)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, extendResp{Error: err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, extendResp{Board: h.UC.Extend(board).String()})
}

// ---- Persistence ----

type saveReq struct {
	Name     string               `json:"name,omitempty"`
	Board    string               `json:"board"`
	Solution *domain.BestSolution `json:"solution,omitempty"`
	Notes    string               `json:"notes,omitempty"`
}

type saveResp struct {
	ID    string `json:"id,omitempty"`
	Error string `json:"error,omitempty"`
}

func (h *Handler) handleSave(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeJSON(w, http.StatusMethodNotAllowed, saveResp{Error: "method not allowed"})
		return
	}
	var req saveReq
	if err := decode(r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, saveResp{Error: "invalid JSON: " + err.Error()})
		return
	}
	board, err := domain.Parse(req.Board)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, saveResp{Error: err.Error()})
		return
	}
	game := &domain.SavedGame{
		Name:     strings.TrimSpace(req.Name),
		Board:    board,
		Solution: req.Solution,
		Notes:    req.Notes,
	}
	if err := h.UC.Save(r.Context(), game); err != nil {
		writeJSON(w, http.StatusInternalServerError, saveResp{Error: err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, saveResp{ID: game.ID})
}

func (h *Handler) handleLoad(w http.ResponseWriter, r *http.Request) {
	id := strings.TrimSpace(r.URL.Query().Get("id"))
	if id == "" {
		writeJSON(w, http.StatusBadRequest, saveResp{Error: "missing id"})
		return
	}
	game, err := h.UC.Load(r.Context(), id)
	if err != nil {
		writeJSON(w, http.StatusNotFound, saveResp{Error: err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, game)
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	metas, err := h.UC.List(r.Context())
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, saveResp{Error: err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, metas)
}
