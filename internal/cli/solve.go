package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/gocube_solver"
	"github.com/SeamusWaldron/gocube_solver/internal/storage"
)

var (
	solveScramble string
	solveLength   int
	solveDepth    int
	solveSave     bool
)

var solveCmd = &cobra.Command{
	Use:   "solve",
	Short: "Scramble a cube and solve it",
	Long: `Scramble a virtual cube and search for a solution.

By default a random scramble is generated; pass --scramble to solve a
specific sequence instead. The solver runs a bounded iterative-deepening
search; if the scramble is deeper than the search limit it falls back to
undoing the scramble move by move.`,
	RunE: runSolve,
}

func init() {
	rootCmd.AddCommand(solveCmd)
	solveCmd.Flags().StringVar(&solveScramble, "scramble", "", "Scramble sequence to solve (default: random)")
	solveCmd.Flags().IntVar(&solveLength, "length", 20, "Random scramble length when --scramble is not given")
	solveCmd.Flags().IntVar(&solveDepth, "depth", gocube.DefaultMaxDepth, "Maximum search depth")
	solveCmd.Flags().BoolVar(&solveSave, "save", false, "Record the solve in the history database")
}

func runSolve(cmd *cobra.Command, args []string) error {
	scramble := solveScramble
	if scramble == "" {
		scramble = gocube.GenerateScramble(solveLength)
	}

	cube := gocube.NewCube()
	cube.ApplyNotation(scramble)

	fmt.Printf("Scramble: %s\n\n", scramble)
	fmt.Println(renderCube(cube))

	solver := gocube.NewSolver(gocube.WithMaxDepth(solveDepth))

	start := time.Now()
	result := solver.SolveWithSteps(cube)
	elapsed := time.Since(start)

	if result.Moves == "" {
		fmt.Println("No solution found.")
		return nil
	}

	usedFallback := result.Moves == gocube.InverseNotation(scramble)

	check := cube.Clone()
	check.ApplyNotation(result.Moves)
	if !check.IsSolved() {
		return fmt.Errorf("internal error: solution %q does not solve the cube", result.Moves)
	}

	fmt.Printf("Solution: %s\n", result.Moves)
	fmt.Printf("Moves:    %d", result.MoveCount)
	if usedFallback {
		fmt.Printf(" (scramble inverse fallback)")
	}
	fmt.Println()
	fmt.Printf("Time:     %s\n", elapsed.Round(time.Millisecond))

	if verbose {
		scrambleMoves := len(gocube.ParseMoves(scramble))
		if scrambleMoves > 0 {
			fmt.Printf("Ratio:    %.2f solution moves per scramble move\n",
				float64(result.MoveCount)/float64(scrambleMoves))
		}
		fmt.Printf("Facelets: %s\n", cube.FaceletString())
	}

	if solveSave {
		if err := saveSolve(scramble, result, elapsed, usedFallback); err != nil {
			return err
		}
	}

	return nil
}

func saveSolve(scramble string, result gocube.Solution, elapsed time.Duration, usedFallback bool) error {
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	repo := storage.NewSolveRepository(db)
	id, err := repo.Create(storage.Solve{
		Scramble:      scramble,
		Solution:      result.Moves,
		ScrambleMoves: len(gocube.ParseMoves(scramble)),
		SolutionMoves: result.MoveCount,
		DurationMs:    elapsed.Milliseconds(),
		UsedFallback:  usedFallback,
	})
	if err != nil {
		return err
	}

	fmt.Printf("Saved:    %s\n", id)
	return nil
}
