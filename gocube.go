// Package gocube provides a 3x3 Rubik's cube model, scramble generation,
// and a bounded iterative-deepening solver.
//
// # Features
//
//   - Full facelet-level cube state with move history
//   - Standard notation parsing and formatting (R, U', F2, ...)
//   - Scramble generation with adjacency constraints
//   - Iterative deepening solver with pruning and history fallback
//   - Solution post-processing (merging and cancelling adjacent moves)
//
// # Quick Start
//
// Scramble a cube and solve it:
//
//	cube := gocube.NewCube()
//	scramble := gocube.GenerateScramble(20)
//	cube.ApplyNotation(scramble)
//
//	solution := gocube.Solve(cube)
//	fmt.Println("Solution:", solution)
//
// # Applying Moves
//
// Moves can be applied from predefined constants or from notation:
//
//	cube := gocube.NewCube()
//	cube.Apply(gocube.R, gocube.U, gocube.RPrime, gocube.UPrime)
//	cube.ApplyNotation("F B2 L' D")
//	fmt.Println("Solved:", cube.IsSolved())
//
// # Solving
//
// The solver performs a depth-bounded search over cloned states; the input
// cube is never mutated. It is best-effort: scrambles deeper than the depth
// limit fall back to inverting the cube's recorded move history, and a cube
// with no history and no solution within the limit yields an empty string.
//
//	solver := gocube.NewSolver(gocube.WithMaxDepth(12))
//	result := solver.SolveWithSteps(cube)
//	fmt.Println(result.MoveCount, "moves:", result.Moves)
//
// # Interop
//
// FaceletString exports the cube as the 54-character facelet string
// (face order U, R, F, D, L, B) consumed by external solving tools.
package gocube
