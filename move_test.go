package gocube

import "testing"

func TestParseMove(t *testing.T) {
	tests := []struct {
		in   string
		face Face
		turn Turn
	}{
		{"R", FaceR, CW},
		{"R'", FaceR, CCW},
		{"R2", FaceR, Double},
		{"u", FaceU, CW},
		{"f'", FaceF, CCW},
		{" B2 ", FaceB, Double},
		{"L2'", FaceL, Double},
	}

	for _, tt := range tests {
		m, err := ParseMove(tt.in)
		if err != nil {
			t.Errorf("ParseMove(%q) error: %v", tt.in, err)
			continue
		}
		if m.Face != tt.face || m.Turn != tt.turn {
			t.Errorf("ParseMove(%q) = %v/%v, want %v/%v", tt.in, m.Face, m.Turn, tt.face, tt.turn)
		}
	}
}

func TestParseMoveInvalid(t *testing.T) {
	for _, in := range []string{"", "X", "R3", "2R", "RR"} {
		if _, err := ParseMove(in); err == nil {
			t.Errorf("ParseMove(%q) should fail", in)
		}
	}
}

func TestParseMovesSkipsInvalid(t *testing.T) {
	moves := ParseMoves("R  X U' bogus F2")
	if len(moves) != 3 {
		t.Fatalf("Expected 3 valid moves, got %d", len(moves))
	}
	if got := FormatMoves(moves); got != "R U' F2" {
		t.Errorf("FormatMoves = %q, want %q", got, "R U' F2")
	}
}

func TestMoveInverse(t *testing.T) {
	tests := []struct {
		in, want Move
	}{
		{R, RPrime},
		{RPrime, R},
		{U2, U2},
	}
	for _, tt := range tests {
		if got := tt.in.Inverse(); got != tt.want {
			t.Errorf("%v.Inverse() = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestQuarterTurns(t *testing.T) {
	if CW.QuarterTurns() != 1 {
		t.Error("CW should be 1 quarter turn")
	}
	if CCW.QuarterTurns() != 3 {
		t.Error("CCW should be 3 quarter turns")
	}
	if Double.QuarterTurns() != 2 {
		t.Error("Double should be 2 quarter turns")
	}
}

func TestInverseNotation(t *testing.T) {
	if got := InverseNotation("R U2 F'"); got != "F U2 R'" {
		t.Errorf("InverseNotation = %q, want %q", got, "F U2 R'")
	}
	if got := InverseNotation(""); got != "" {
		t.Errorf("InverseNotation of empty = %q, want empty", got)
	}
}

func TestFaceOpposite(t *testing.T) {
	pairs := map[Face]Face{
		FaceU: FaceD,
		FaceD: FaceU,
		FaceF: FaceB,
		FaceB: FaceF,
		FaceR: FaceL,
		FaceL: FaceR,
	}
	for f, want := range pairs {
		if got := f.Opposite(); got != want {
			t.Errorf("%v.Opposite() = %v, want %v", f, got, want)
		}
	}
}
