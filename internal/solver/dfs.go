// Package solver holds the search engine and the multi-phase
// orchestrator built on top of it.
package solver

import (
	"time"

	"svw.info/numbermatch/internal/ports"
)

// DefaultTopK is the result list capacity used when the caller passes a
// non-positive topK.
const DefaultTopK = 5

const defaultProgressInterval = 2 * time.Second

// DFSSolver explores the move graph depth-first with memoized visited
// states. All search state lives in one Solve call; the solver value
// itself only carries configuration and is safe to reuse.
type DFSSolver struct {
	maxStates        int
	progress         ports.Progress
	progressInterval time.Duration
}

// Option configures a DFSSolver.
type Option func(*DFSSolver)

// WithMaxStates caps how many unique states one Solve call may explore.
// Zero means unbounded.
func WithMaxStates(n int) Option {
	return func(s *DFSSolver) { s.maxStates = n }
}

// WithProgress installs a status sink invoked at most once per interval.
func WithProgress(fn ports.Progress, interval time.Duration) Option {
	return func(s *DFSSolver) {
		s.progress = fn
		if interval > 0 {
			s.progressInterval = interval
		}
	}
}

func NewDFSSolver(opts ...Option) *DFSSolver {
	s := &DFSSolver{progressInterval: defaultProgressInterval}
	for _, o := range opts {
		o(s)
	}
	return s
}
