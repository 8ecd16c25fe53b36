package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/gocube_solver"
)

var (
	scrambleLength int
	scrambleShow   bool
)

var scrambleCmd = &cobra.Command{
	Use:   "scramble",
	Short: "Generate a scramble sequence",
	Long: `Generate a random scramble sequence in standard notation.

Consecutive moves never repeat a face, and trivially redundant
opposite-face patterns (like R L R') are avoided.`,
	RunE: runScramble,
}

func init() {
	rootCmd.AddCommand(scrambleCmd)
	scrambleCmd.Flags().IntVar(&scrambleLength, "length", 20, "Number of moves")
	scrambleCmd.Flags().BoolVar(&scrambleShow, "show", false, "Render the scrambled cube")
}

func runScramble(cmd *cobra.Command, args []string) error {
	scramble := gocube.GenerateScramble(scrambleLength)
	fmt.Println(scramble)

	if scrambleShow {
		cube := gocube.NewCube()
		cube.ApplyNotation(scramble)
		fmt.Println()
		fmt.Println(renderCube(cube))
	}

	return nil
}
