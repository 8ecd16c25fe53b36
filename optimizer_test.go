package gocube

import "testing"

func TestOptimizeCancellations(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"R R R R", ""},
		{"U U2", "U'"},
		{"R R'", ""},
		{"R2 R2", ""},
		{"R R", "R2"},
		{"U' U'", "U2"},
		{"R L R'", "R L R'"}, // Different face between: no adjacent merge
		{"R U U' R'", ""},    // Cascading cancellation
		{"F2 B F2", "F2 B F2"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := Optimize(tt.in); got != tt.want {
			t.Errorf("Optimize(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestOptimizeIsIdempotent(t *testing.T) {
	inputs := []string{
		"R R R R",
		"U U2 F F' D2 D2 L",
		"R U R' U' R U R' U'",
		"B2 B F F2",
	}
	for _, in := range inputs {
		once := Optimize(in)
		twice := Optimize(once)
		if once != twice {
			t.Errorf("Optimize not idempotent for %q: %q then %q", in, once, twice)
		}
	}
}

func TestOptimizePreservesEquivalence(t *testing.T) {
	inputs := []string{
		"R R U U2 F' F",
		"D D D",
		"L2 L' U B B'",
	}
	for _, in := range inputs {
		raw := NewCube()
		raw.ApplyNotation(in)

		opt := NewCube()
		opt.ApplyNotation(Optimize(in))

		if raw.Facelets != opt.Facelets {
			t.Errorf("Optimize(%q) = %q changed the resulting state", in, Optimize(in))
		}
	}
}

func TestOptimizeNeverLonger(t *testing.T) {
	inputs := []string{
		"R U F' D2 L B",
		"R R' U U'",
		"F2 F2 F2 F2",
	}
	for _, in := range inputs {
		if got := Optimize(in); len(ParseMoves(got)) > len(ParseMoves(in)) {
			t.Errorf("Optimize(%q) = %q is longer than input", in, got)
		}
	}
}
