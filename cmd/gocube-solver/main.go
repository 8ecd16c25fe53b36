// Rubik's Cube scrambler and solver - CLI entry point.
package main

import (
	"github.com/SeamusWaldron/gocube_solver/internal/cli"
)

func main() {
	cli.Execute()
}
