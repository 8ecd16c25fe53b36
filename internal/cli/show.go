package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/gocube_solver"
)

var showCmd = &cobra.Command{
	Use:   "show [moves...]",
	Short: "Apply moves to a solved cube and display the result",
	Long: `Apply a move sequence to a solved cube and display the resulting state.

Moves use standard notation (R, U', F2, ...) and may be given as separate
arguments or a single quoted string. Unrecognized tokens are skipped.

Example:
  gocube-solver show "R U R' U'"`,
	RunE: runShow,
}

func init() {
	rootCmd.AddCommand(showCmd)
}

func runShow(cmd *cobra.Command, args []string) error {
	notation := strings.Join(args, " ")

	cube := gocube.NewCube()
	cube.ApplyNotation(notation)

	if len(cube.History) > 0 {
		fmt.Printf("Applied:  %s\n\n", gocube.FormatMoves(cube.History))
	}
	fmt.Println(renderCube(cube))
	fmt.Printf("Solved:   %v\n", cube.IsSolved())
	fmt.Printf("Facelets: %s\n", cube.FaceletString())

	return nil
}
