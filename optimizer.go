package gocube

// Optimize canonicalizes a move sequence: consecutive moves on the same
// face are merged (R R' disappears, U U2 becomes U') until no adjacent pair
// can be combined. The result is equivalent to the input and never longer.
// Optimize is idempotent: optimizing an already-optimized sequence returns
// it unchanged.
func Optimize(s string) string {
	return FormatMoves(OptimizeMoves(ParseMoves(s)))
}

// OptimizeMoves is Optimize on a parsed move slice.
func OptimizeMoves(moves []Move) []Move {
	out := make([]Move, len(moves))
	copy(out, moves)

	// Merging a pair can expose a new combinable adjacency on either side,
	// so restart the scan after every merge. Each pass shortens or keeps
	// the sequence, so this terminates.
	changed := true
	for changed {
		changed = false
		for i := 0; i+1 < len(out); i++ {
			if out[i].Face != out[i+1].Face {
				continue
			}
			merged := mergeMoves(out[i], out[i+1])
			if merged == nil {
				// Exact cancellation: drop both moves.
				out = append(out[:i], out[i+2:]...)
			} else {
				out[i] = *merged
				out = append(out[:i+1], out[i+2:]...)
			}
			changed = true
			break
		}
	}
	return out
}

// mergeMoves merges two same-face moves into one.
// Returns nil if they cancel out (e.g., R + R' = nothing).
// Assumes m1 and m2 have the same face.
func mergeMoves(m1, m2 Move) *Move {
	// Sum the turns: CW=1, CCW=-1, Double=2
	totalTurn := int(m1.Turn) + int(m2.Turn)

	// Normalize to [-1, 2]
	totalTurn = ((totalTurn % 4) + 4) % 4
	if totalTurn == 3 {
		totalTurn = -1 // 3 quarter turns = 1 CCW
	}

	// 0 means full cancellation
	if totalTurn == 0 {
		return nil
	}

	return &Move{Face: m1.Face, Turn: Turn(totalTurn)}
}
