package gocube

import (
	"math/rand"
	"testing"
)

func TestSolveAlreadySolved(t *testing.T) {
	c := NewCube()
	if got := NewSolver().Solve(c); got != "" {
		t.Errorf("Solving a solved cube should return empty string, got %q", got)
	}
}

func TestSolveSingleMoveScramble(t *testing.T) {
	for _, scramble := range []string{"R", "U'", "F2", "B", "L'", "D2"} {
		c := NewCube()
		c.ApplyNotation(scramble)

		solution := NewSolver().Solve(c)
		if solution == "" {
			t.Errorf("No solution found for scramble %q", scramble)
			continue
		}

		check := c.Clone()
		check.ApplyNotation(solution)
		if !check.IsSolved() {
			t.Errorf("Solution %q does not solve scramble %q", solution, scramble)
			t.Log(check.String())
		}
	}
}

func TestSolveShortScrambles(t *testing.T) {
	scrambles := []string{
		"R U",
		"F' D2",
		"R U F",
		"L2 B D'",
		"U R U' R'",
	}

	solver := NewSolver()
	for _, scramble := range scrambles {
		c := NewCube()
		c.ApplyNotation(scramble)

		solution := solver.Solve(c)
		check := c.Clone()
		check.ApplyNotation(solution)
		if !check.IsSolved() {
			t.Errorf("Solution %q does not solve scramble %q", solution, scramble)
		}
	}
}

func TestSolveDoesNotMutateInput(t *testing.T) {
	c := NewCube()
	c.ApplyNotation("R U F")
	before := c.Facelets
	historyLen := len(c.History)

	NewSolver().Solve(c)

	if c.Facelets != before {
		t.Error("Solve should not mutate the input cube")
	}
	if len(c.History) != historyLen {
		t.Error("Solve should not touch the input cube's history")
	}
}

func TestSolveFallbackToHistoryInverse(t *testing.T) {
	// A 20-move scramble is far beyond a depth-2 search, so the solver
	// must fall back to inverting the recorded history. The fallback is
	// exact, so the result always solves the cube.
	rnd := rand.New(rand.NewSource(7))
	scramble := NewScramblerWithRand(rnd).Notation(20)

	c := NewCube()
	c.ApplyNotation(scramble)

	solution := NewSolver(WithMaxDepth(2)).Solve(c)
	if solution == "" {
		t.Fatal("Fallback should produce a solution when history exists")
	}
	if solution != InverseNotation(scramble) {
		t.Errorf("Fallback solution %q should be the inverse of scramble %q", solution, scramble)
	}

	check := c.Clone()
	check.ApplyNotation(solution)
	if !check.IsSolved() {
		t.Error("Fallback solution does not solve the cube")
	}
}

func TestSolveNoHistoryNoSolution(t *testing.T) {
	// Scramble without recording history, so the fallback has nothing to
	// invert and the solver reports not-found as an empty string.
	c := NewCube()
	for _, m := range ParseMoves("R U F' D2 L B R' U2 F D") {
		c.MoveFace(moveFaceToCubeFace(m.Face), int(m.Turn))
	}

	if got := NewSolver(WithMaxDepth(2)).Solve(c); got != "" {
		t.Errorf("No solution and no history should return empty string, got %q", got)
	}
}

func TestSolveOutputIsOptimized(t *testing.T) {
	scrambles := []string{"R U", "F' D2", "R U F"}
	solver := NewSolver()
	for _, scramble := range scrambles {
		c := NewCube()
		c.ApplyNotation(scramble)
		solution := solver.Solve(c)
		if Optimize(solution) != solution {
			t.Errorf("Solution %q for %q is not in optimized form", solution, scramble)
		}
	}
}

func TestSolveWithSteps(t *testing.T) {
	c := NewCube()
	c.ApplyNotation("R U")

	result := NewSolver().SolveWithSteps(c)
	if result.MoveCount != len(result.Steps) {
		t.Errorf("MoveCount %d should equal len(Steps) %d", result.MoveCount, len(result.Steps))
	}
	if FormatMoves(ParseMoves(result.Moves)) != result.Moves {
		t.Errorf("Moves %q should round-trip through the parser", result.Moves)
	}

	check := c.Clone()
	check.ApplyNotation(result.Moves)
	if !check.IsSolved() {
		t.Errorf("Solution %q does not solve the cube", result.Moves)
	}
}

func TestSolveWithStepsSolvedCube(t *testing.T) {
	result := NewSolver().SolveWithSteps(NewCube())
	if result.Moves != "" || result.MoveCount != 0 || len(result.Steps) != 0 {
		t.Errorf("Solved cube should yield an empty solution, got %+v", result)
	}
}

func TestRedundantSkipsSameFace(t *testing.T) {
	if !redundant(R, R2) {
		t.Error("Same-face successor should be redundant")
	}
	if redundant(R, U) {
		t.Error("Unrelated faces should not be redundant")
	}
	if redundant(Move{}, R) {
		t.Error("Root node has no last move; nothing is redundant")
	}
}

func TestRedundantOppositeFaceOrdering(t *testing.T) {
	// Opposite-face moves commute, so only one ordering is explored:
	// the candidate is skipped when its letter sorts after the last one.
	if !redundant(L, R) { // R > L, opposite pair
		t.Error("R after L should be redundant")
	}
	if redundant(R, L) { // L < R, the canonical ordering
		t.Error("L after R should be allowed")
	}
	if redundant(F, UPrime) {
		t.Error("U' after F is not an opposite pair and should be allowed")
	}
}

func TestWrongFaceletsSolvedIsZero(t *testing.T) {
	if n := wrongFacelets(NewCube()); n != 0 {
		t.Errorf("Solved cube should have 0 wrong facelets, got %d", n)
	}
}

func TestWrongFaceletsCountsAgainstStandardColors(t *testing.T) {
	// The heuristic compares against the fixed solved colors, unlike
	// IsSolved's uniformity test. A uniform but color-swapped cube is
	// "solved" yet has every swapped facelet wrong.
	c := NewCube()
	c.Facelets[CubeFaceU], c.Facelets[CubeFaceD] = c.Facelets[CubeFaceD], c.Facelets[CubeFaceU]

	if !c.IsSolved() {
		t.Fatal("Swapped-uniform cube should report solved")
	}
	if n := wrongFacelets(c); n != 18 {
		t.Errorf("Expected 18 wrong facelets after U/D color swap, got %d", n)
	}
}
