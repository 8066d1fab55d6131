package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"svw.info/numbermatch/internal/domain"
	"svw.info/numbermatch/internal/grouping"
	"svw.info/numbermatch/internal/render"
	"svw.info/numbermatch/internal/solver"
)

var (
	solveTopK      int
	solvePhases    int
	solveMaxStates int
	solveHTMLOut   string
	solveQuiet     bool
)

var solveCmd = &cobra.Command{
	Use:   "solve [board-file]",
	Short: "Solve a board read from a file or stdin",
	Long: `Reads a board (one row per line, digits 1-9 for tiles, '.' for cleared
cells) from the given file or stdin, searches it across extensions, and
prints the best step-by-step solution found.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSolve,
}

func init() {
	solveCmd.Flags().IntVar(&solveTopK, "topk", 0, "result list capacity per phase (0 = config default)")
	solveCmd.Flags().IntVar(&solvePhases, "phases", 0, "maximum number of deal-extension phases (0 = config default)")
	solveCmd.Flags().IntVar(&solveMaxStates, "max-states", 0, "cap on explored states per search, 0 = unbounded")
	solveCmd.Flags().StringVar(&solveHTMLOut, "html", "", "write an HTML visualization to this file")
	solveCmd.Flags().BoolVar(&solveQuiet, "quiet", false, "suppress progress reporting")
}

func runSolve(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	log := newLogger()

	var text []byte
	if len(args) == 1 {
		text, err = os.ReadFile(args[0])
	} else {
		text, err = io.ReadAll(cmd.InOrStdin())
	}
	if err != nil {
		return fmt.Errorf("read board: %w", err)
	}
	board, err := domain.Parse(string(text))
	if err != nil {
		return err
	}

	topK := cfg.Solver.TopK
	if solveTopK > 0 {
		topK = solveTopK
	}
	phases := cfg.Solver.MaxPhases
	if solvePhases > 0 {
		phases = solvePhases
	}
	maxStates := cfg.Solver.MaxStates
	if cmd.Flags().Changed("max-states") {
		maxStates = solveMaxStates
	}

	opts := []solver.Option{solver.WithMaxStates(maxStates)}
	if !solveQuiet {
		opts = append(opts, solver.WithProgress(func(status string) {
			log.Info("searching", "status", status)
		}, cfg.Solver.ProgressInterval.Std()))
	}
	engine := solver.NewDFSSolver(opts...)
	orch := solver.NewMultiPhase(engine,
		solver.WithCandidateBound(cfg.Solver.Candidates),
		solver.WithLogger(log),
	)

	fmt.Fprintln(cmd.OutOrStdout(), renderBoard(board))
	fmt.Fprintln(cmd.OutOrStdout())

	best, records, stats, err := orch.SolveMultiPhase(cmd.Context(), board, phases, topK)
	if err != nil {
		return err
	}
	if best == nil {
		fmt.Fprintln(cmd.OutOrStdout(), "No moves available on this board.")
		return nil
	}

	grouper := grouping.New(log)
	var phaseViews []render.Phase
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s\n", headerStyle.Render(fmt.Sprintf(
		"Best: %d remaining, %d moves, score %d (%d states explored, %v)",
		best.Remaining, best.TotalMoves, best.Score, stats.Explored, stats.Duration.Round(timeUnit))))

	for i := range best.PhaseMoves {
		steps, err := grouper.Group(best.PhaseBoards[i], best.PhaseMoves[i])
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "\n%s\n", phaseStyle.Render(fmt.Sprintf("Phase %d (%d moves)", i+1, len(best.PhaseMoves[i]))))
		if i > 0 {
			fmt.Fprintln(out, extendStyle.Render("board extended: remaining tiles dealt again"))
			fmt.Fprintln(out, renderBoard(best.PhaseBoards[i]))
		}
		printSteps(out, steps)
		phaseViews = append(phaseViews, render.Phase{
			Label:    fmt.Sprintf("Phase %d", i+1),
			Extended: i > 0,
			Board:    best.PhaseBoards[i],
			Steps:    steps,
		})
	}

	fmt.Fprintf(out, "\n%s\n", headerStyle.Render("Final board"))
	fmt.Fprintln(out, renderBoard(best.Final))
	for _, rec := range records {
		log.Debug("phase record", "phase", rec.Phase, "results", len(rec.Results),
			"explored", rec.StatesExplored, "skipped", rec.StatesSkipped)
	}

	if solveHTMLOut != "" {
		html, err := render.Solution(phaseViews)
		if err != nil {
			return err
		}
		if err := os.WriteFile(solveHTMLOut, []byte(html), 0o644); err != nil {
			return fmt.Errorf("write %s: %w", solveHTMLOut, err)
		}
		fmt.Fprintf(out, "\nSolution visualization saved to %s\n", solveHTMLOut)
	}
	return nil
}
