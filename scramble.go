package gocube

import (
	"math/rand"
	"time"
)

// scrambleFaces is the face pool scrambles draw from, in declared order.
var scrambleFaces = []Face{FaceU, FaceD, FaceF, FaceB, FaceR, FaceL}

// scrambleTurns is the modifier pool, each equally likely.
var scrambleTurns = []Turn{CW, CCW, Double}

// Scrambler generates pseudo-random scramble sequences.
// The zero value is not usable; construct with NewScrambler, or
// NewScramblerWithRand when tests need a deterministic source.
type Scrambler struct {
	rnd *rand.Rand
}

// NewScrambler creates a scrambler seeded from the current time.
func NewScrambler() *Scrambler {
	return NewScramblerWithRand(rand.New(rand.NewSource(time.Now().UnixNano())))
}

// NewScramblerWithRand creates a scrambler using the given random source.
func NewScramblerWithRand(rnd *rand.Rand) *Scrambler {
	return &Scrambler{rnd: rnd}
}

// Generate produces a scramble of length moves.
//
// Two adjacency constraints keep the sequence from containing trivially
// redundant runs: a move never repeats the previous move's face, and it
// never repeats the face from two moves back when that face is opposite
// the previous one (ruling out patterns like R L R').
func (s *Scrambler) Generate(length int) []Move {
	moves := make([]Move, 0, length)

	for len(moves) < length {
		face := scrambleFaces[s.rnd.Intn(len(scrambleFaces))]

		if n := len(moves); n > 0 {
			prev := moves[n-1].Face
			if face == prev {
				continue
			}
			if n > 1 {
				twoBack := moves[n-2].Face
				if face == twoBack && twoBack.Opposite() == prev {
					continue
				}
			}
		}

		turn := scrambleTurns[s.rnd.Intn(len(scrambleTurns))]
		moves = append(moves, Move{Face: face, Turn: turn})
	}

	return moves
}

// Notation produces a scramble of length moves as a notation string.
func (s *Scrambler) Notation(length int) string {
	return FormatMoves(s.Generate(length))
}

// GenerateScramble produces a scramble notation string of length moves
// using a time-seeded scrambler. Use a Scrambler directly for a
// deterministic source.
func GenerateScramble(length int) string {
	return NewScrambler().Notation(length)
}
