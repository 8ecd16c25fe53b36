package gocube

import "strings"

// Color represents a face color.
type Color byte

const (
	White  Color = 0 // Up face when solved
	Yellow Color = 1 // Down face when solved
	Green  Color = 2 // Front face when solved
	Blue   Color = 3 // Back face when solved
	Red    Color = 4 // Right face when solved
	Orange Color = 5 // Left face when solved
)

func (c Color) String() string {
	switch c {
	case White:
		return "W"
	case Yellow:
		return "Y"
	case Green:
		return "G"
	case Blue:
		return "B"
	case Red:
		return "R"
	case Orange:
		return "O"
	default:
		return "?"
	}
}

// CubeFace represents a cube face for the cube model.
// This is distinct from Face which is used for move notation.
type CubeFace int

const (
	CubeFaceU CubeFace = 0 // Up (White)
	CubeFaceD CubeFace = 1 // Down (Yellow)
	CubeFaceF CubeFace = 2 // Front (Green)
	CubeFaceB CubeFace = 3 // Back (Blue)
	CubeFaceR CubeFace = 4 // Right (Red)
	CubeFaceL CubeFace = 5 // Left (Orange)
)

func (f CubeFace) String() string {
	switch f {
	case CubeFaceU:
		return "U"
	case CubeFaceD:
		return "D"
	case CubeFaceF:
		return "F"
	case CubeFaceB:
		return "B"
	case CubeFaceR:
		return "R"
	case CubeFaceL:
		return "L"
	default:
		return "?"
	}
}

// Cube represents a 3x3 Rubik's cube.
// Each face has 9 facelets indexed as:
//
//	0 1 2
//	3 4 5
//	6 7 8
//
// The center (index 4) defines the face color and never moves.
// Moves applied through ApplyMove and friends are recorded in History;
// MoveFace applies without recording, which is what the solver uses
// when exploring cloned states.
type Cube struct {
	// Facelets[face][position] = color
	Facelets [6][9]Color

	// History holds every recorded move in application order.
	History []Move
}

// NewCube creates a solved cube with standard orientation:
// White on top, Green in front.
func NewCube() *Cube {
	c := &Cube{}
	// Initialize each face with its solved color
	for face := CubeFace(0); face < 6; face++ {
		color := faceToSolvedColor(face)
		for i := 0; i < 9; i++ {
			c.Facelets[face][i] = color
		}
	}
	return c
}

// faceToSolvedColor returns the color of a face when solved.
func faceToSolvedColor(f CubeFace) Color {
	switch f {
	case CubeFaceU:
		return White
	case CubeFaceD:
		return Yellow
	case CubeFaceF:
		return Green
	case CubeFaceB:
		return Blue
	case CubeFaceR:
		return Red
	case CubeFaceL:
		return Orange
	default:
		return White
	}
}

// moveFaceToCubeFace converts Face to CubeFace.
func moveFaceToCubeFace(f Face) CubeFace {
	switch f {
	case FaceU:
		return CubeFaceU
	case FaceD:
		return CubeFaceD
	case FaceF:
		return CubeFaceF
	case FaceB:
		return CubeFaceB
	case FaceR:
		return CubeFaceR
	case FaceL:
		return CubeFaceL
	default:
		return CubeFaceU
	}
}

// Clone creates a deep copy of the cube, including its move history.
func (c *Cube) Clone() *Cube {
	clone := &Cube{Facelets: c.Facelets}
	if len(c.History) > 0 {
		clone.History = make([]Move, len(c.History))
		copy(clone.History, c.History)
	}
	return clone
}

// Reset returns the cube to the solved state and clears the history.
func (c *Cube) Reset() {
	for face := CubeFace(0); face < 6; face++ {
		color := faceToSolvedColor(face)
		for i := 0; i < 9; i++ {
			c.Facelets[face][i] = color
		}
	}
	c.History = nil
}

// IsSolved returns true if every face is a single uniform color.
// Note this is a per-face uniformity test, not a comparison against the
// standard color assignment: a cube whose faces are uniform but whose
// colors have been permuted wholesale still counts as solved.
func (c *Cube) IsSolved() bool {
	for face := CubeFace(0); face < 6; face++ {
		first := c.Facelets[face][0]
		for i := 1; i < 9; i++ {
			if c.Facelets[face][i] != first {
				return false
			}
		}
	}
	return true
}

// MoveFace applies a move to the cube using CubeFace.
// turn: 1 = CW, -1 = CCW, 2 = 180 degrees.
// The turn is decomposed into clockwise quarter turns (CCW = 3 of them),
// so a single quarter-turn primitive covers every case.
// MoveFace does not record history.
func (c *Cube) MoveFace(face CubeFace, turn int) {
	times := Turn(turn).QuarterTurns()
	for i := 0; i < times; i++ {
		c.moveCW(face)
	}
}

// ApplyMove applies a move to the cube and records it in the history.
func (c *Cube) ApplyMove(m Move) {
	c.MoveFace(moveFaceToCubeFace(m.Face), int(m.Turn))
	c.History = append(c.History, m)
}

// ApplyMoves applies a sequence of moves, recording each.
func (c *Cube) ApplyMoves(moves []Move) {
	for _, m := range moves {
		c.ApplyMove(m)
	}
}

// Apply applies moves given as arguments, recording each.
//
// Example:
//
//	cube.Apply(gocube.R, gocube.U, gocube.RPrime, gocube.UPrime)
func (c *Cube) Apply(moves ...Move) {
	c.ApplyMoves(moves)
}

// ApplyNotation parses a space-separated move sequence and applies it.
// Malformed tokens are silently skipped, matching ParseMoves.
func (c *Cube) ApplyNotation(s string) {
	c.ApplyMoves(ParseMoves(s))
}

// moveCW applies a single clockwise quarter turn.
func (c *Cube) moveCW(face CubeFace) {
	c.rotateFaceCW(face)
	c.cycleEdgesCW(face)
}

// rotateFaceCW rotates a face 90 degrees clockwise.
func (c *Cube) rotateFaceCW(face CubeFace) {
	f := &c.Facelets[face]
	// Corner rotation: 0->2->8->6->0
	// Edge rotation: 1->5->7->3->1
	temp := f[0]
	f[0] = f[6]
	f[6] = f[8]
	f[8] = f[2]
	f[2] = temp

	temp = f[1]
	f[1] = f[3]
	f[3] = f[7]
	f[7] = f[5]
	f[5] = temp
}

// cycleEdgesCW cycles the edge facelets around a face (clockwise).
func (c *Cube) cycleEdgesCW(face CubeFace) {
	// Each face affects 4 adjacent faces' edges
	// The indices depend on which face is being rotated
	switch face {
	case CubeFaceU:
		// U affects F, L, B, R top rows
		c.cycle4Edge(
			int(CubeFaceF), []int{0, 1, 2},
			int(CubeFaceL), []int{0, 1, 2},
			int(CubeFaceB), []int{0, 1, 2},
			int(CubeFaceR), []int{0, 1, 2},
		)
	case CubeFaceD:
		// D affects F, R, B, L bottom rows (opposite direction)
		c.cycle4Edge(
			int(CubeFaceF), []int{6, 7, 8},
			int(CubeFaceR), []int{6, 7, 8},
			int(CubeFaceB), []int{6, 7, 8},
			int(CubeFaceL), []int{6, 7, 8},
		)
	case CubeFaceF:
		// F affects U bottom, R left, D top, L right
		c.cycle4Edge(
			int(CubeFaceU), []int{6, 7, 8},
			int(CubeFaceR), []int{0, 3, 6},
			int(CubeFaceD), []int{2, 1, 0},
			int(CubeFaceL), []int{8, 5, 2},
		)
	case CubeFaceB:
		// B affects U top, L left, D bottom, R right
		c.cycle4Edge(
			int(CubeFaceU), []int{2, 1, 0},
			int(CubeFaceL), []int{0, 3, 6},
			int(CubeFaceD), []int{6, 7, 8},
			int(CubeFaceR), []int{8, 5, 2},
		)
	case CubeFaceR:
		// R affects U right, B left, D right, F right
		c.cycle4Edge(
			int(CubeFaceU), []int{2, 5, 8},
			int(CubeFaceB), []int{6, 3, 0},
			int(CubeFaceD), []int{2, 5, 8},
			int(CubeFaceF), []int{2, 5, 8},
		)
	case CubeFaceL:
		// L affects U left, F left, D left, B right
		c.cycle4Edge(
			int(CubeFaceU), []int{0, 3, 6},
			int(CubeFaceF), []int{0, 3, 6},
			int(CubeFaceD), []int{0, 3, 6},
			int(CubeFaceB), []int{8, 5, 2},
		)
	}
}

// cycle4Edge cycles 4 groups of 3 facelets with arbitrary indices.
func (c *Cube) cycle4Edge(f1 int, i1 []int, f2 int, i2 []int, f3 int, i3 []int, f4 int, i4 []int) {
	// Save first edge
	t := [3]Color{
		c.Facelets[f1][i1[0]],
		c.Facelets[f1][i1[1]],
		c.Facelets[f1][i1[2]],
	}

	// 1 <- 4
	c.Facelets[f1][i1[0]] = c.Facelets[f4][i4[0]]
	c.Facelets[f1][i1[1]] = c.Facelets[f4][i4[1]]
	c.Facelets[f1][i1[2]] = c.Facelets[f4][i4[2]]

	// 4 <- 3
	c.Facelets[f4][i4[0]] = c.Facelets[f3][i3[0]]
	c.Facelets[f4][i4[1]] = c.Facelets[f3][i3[1]]
	c.Facelets[f4][i4[2]] = c.Facelets[f3][i3[2]]

	// 3 <- 2
	c.Facelets[f3][i3[0]] = c.Facelets[f2][i2[0]]
	c.Facelets[f3][i3[1]] = c.Facelets[f2][i2[1]]
	c.Facelets[f3][i3[2]] = c.Facelets[f2][i2[2]]

	// 2 <- 1 (saved)
	c.Facelets[f2][i2[0]] = t[0]
	c.Facelets[f2][i2[1]] = t[1]
	c.Facelets[f2][i2[2]] = t[2]
}

// FaceletString returns the 54-character facelet serialization used for
// interop with external solving tools: faces in the order U, R, F, D, L, B,
// 9 color codes per face (W, Y, G, B, O, R).
func (c *Cube) FaceletString() string {
	var sb strings.Builder
	sb.Grow(54)
	for _, face := range []CubeFace{CubeFaceU, CubeFaceR, CubeFaceF, CubeFaceD, CubeFaceL, CubeFaceB} {
		for i := 0; i < 9; i++ {
			sb.WriteString(c.Facelets[face][i].String())
		}
	}
	return sb.String()
}

// String returns a text representation of the cube as an unfolded net.
func (c *Cube) String() string {
	result := ""

	// U face (indented)
	for row := 0; row < 3; row++ {
		result += "      "
		for col := 0; col < 3; col++ {
			result += c.Facelets[CubeFaceU][row*3+col].String() + " "
		}
		result += "\n"
	}

	// L, F, R, B faces (side by side)
	for row := 0; row < 3; row++ {
		for _, face := range []CubeFace{CubeFaceL, CubeFaceF, CubeFaceR, CubeFaceB} {
			for col := 0; col < 3; col++ {
				result += c.Facelets[face][row*3+col].String() + " "
			}
		}
		result += "\n"
	}

	// D face (indented)
	for row := 0; row < 3; row++ {
		result += "      "
		for col := 0; col < 3; col++ {
			result += c.Facelets[CubeFaceD][row*3+col].String() + " "
		}
		result += "\n"
	}

	return result
}
