package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/gocube_solver/internal/storage"
)

var historyLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recorded solves",
	Long:  `Display recent solves recorded with 'solve --save', newest first.`,
	RunE:  runHistory,
}

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.Flags().IntVar(&historyLimit, "limit", 20, "Maximum number of solves to display")
}

func runHistory(cmd *cobra.Command, args []string) error {
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	repo := storage.NewSolveRepository(db)
	solves, err := repo.List(historyLimit)
	if err != nil {
		return err
	}

	if len(solves) == 0 {
		fmt.Println("No solves recorded yet. Use 'gocube-solver solve --save'.")
		return nil
	}

	fmt.Printf("%-36s  %-20s  %8s  %8s  %8s\n", "ID", "Date", "Scramble", "Solution", "Time")
	for _, s := range solves {
		note := ""
		if s.UsedFallback {
			note = " *"
		}
		fmt.Printf("%-36s  %-20s  %8d  %8d  %6dms%s\n",
			s.SolveID,
			s.CreatedAt.Local().Format("2006-01-02 15:04:05"),
			s.ScrambleMoves,
			s.SolutionMoves,
			s.DurationMs,
			note)

		if verbose {
			fmt.Printf("    scramble: %s\n", s.Scramble)
			fmt.Printf("    solution: %s\n", s.Solution)
		}
	}
	fmt.Println("\n(* = scramble inverse fallback)")

	return nil
}
