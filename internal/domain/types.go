package domain

import "fmt"

// Move pairs two board positions, I < J; both must hold active tiles at
// the moment the move fires.
type Move struct {
	I int `json:"i"`
	J int `json:"j"`
}

// SearchResult is one terminal board together with the move sequence that
// produced it from the start board of its search.
type SearchResult struct {
	Final     Board  `json:"final"`
	Moves     []Move `json:"moves"`
	Remaining int    `json:"remaining"`
}

// PhaseRecord captures one solver pass inside a multi-phase run: its
// ranked results and the state counts it burned through.
type PhaseRecord struct {
	Phase          int            `json:"phase"`
	Results        []SearchResult `json:"results"`
	StatesExplored int            `json:"statesExplored"`
	StatesSkipped  int            `json:"statesSkipped"`
}

// BestSolution is the best lineage seen across all phases: the board each
// phase started from plus the moves played in it, enough to replay or
// display the whole game.
type BestSolution struct {
	Remaining   int      `json:"remaining"`
	TotalMoves  int      `json:"totalMoves"`
	Score       int      `json:"score"`
	PhaseBoards []Board  `json:"phaseBoards"`
	PhaseMoves  [][]Move `json:"phaseMoves"`
	Final       Board    `json:"final"`
}

// Step is one display group: moves that are all legal against Board, at
// most one of which removes a row.
type Step struct {
	Board      Board  `json:"board"`
	Moves      []Move `json:"moves"`
	RowRemoval int    `json:"rowRemoval"` // index into Moves, -1 when none
}

// SavedGame is a persisted board with its solution, if any.
type SavedGame struct {
	ID        string        `json:"id,omitempty"`
	Name      string        `json:"name,omitempty"`
	CreatedAt int64         `json:"createdAt,omitempty"`
	Board     Board         `json:"board"`
	Solution  *BestSolution `json:"solution,omitempty"`
	Notes     string        `json:"notes,omitempty"`
}

// GameMeta is a lightweight listing entry.
type GameMeta struct {
	ID        string `json:"id"`
	Name      string `json:"name,omitempty"`
	Remaining int    `json:"remaining"`
	CreatedAt int64  `json:"createdAt"`
}

// FormatMove renders a move with board coordinates and values, e.g.
// "(0,3)=7 <-> (1,3)=3".
func FormatMove(b Board, m Move) string {
	ri, ci := RowCol(m.I)
	rj, cj := RowCol(m.J)
	var vi, vj Cell
	if m.I >= 0 && m.I < len(b) {
		vi = b[m.I]
	}
	if m.J >= 0 && m.J < len(b) {
		vj = b[m.J]
	}
	return fmt.Sprintf("(%d,%d)=%d <-> (%d,%d)=%d", ri, ci, vi, rj, cj, vj)
}
