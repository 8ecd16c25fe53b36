package cli

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/SeamusWaldron/gocube_solver"
)

// Sticker styles, one per face color.
var stickerStyles = map[gocube.Color]lipgloss.Style{
	gocube.White:  lipgloss.NewStyle().Background(lipgloss.Color("255")).Foreground(lipgloss.Color("236")),
	gocube.Yellow: lipgloss.NewStyle().Background(lipgloss.Color("226")).Foreground(lipgloss.Color("236")),
	gocube.Green:  lipgloss.NewStyle().Background(lipgloss.Color("40")).Foreground(lipgloss.Color("236")),
	gocube.Blue:   lipgloss.NewStyle().Background(lipgloss.Color("27")).Foreground(lipgloss.Color("255")),
	gocube.Red:    lipgloss.NewStyle().Background(lipgloss.Color("196")).Foreground(lipgloss.Color("255")),
	gocube.Orange: lipgloss.NewStyle().Background(lipgloss.Color("208")).Foreground(lipgloss.Color("236")),
}

// sticker renders a single colored sticker cell.
func sticker(c gocube.Color) string {
	style, ok := stickerStyles[c]
	if !ok {
		return " ? "
	}
	return style.Render(" " + c.String() + " ")
}

// faceRow renders one row of three stickers from a face.
func faceRow(c *gocube.Cube, face gocube.CubeFace, row int) string {
	var sb strings.Builder
	for col := 0; col < 3; col++ {
		sb.WriteString(sticker(c.Facelets[face][row*3+col]))
	}
	return sb.String()
}

// renderCube renders the cube as a colored unfolded net:
//
//	    U
//	L F R B
//	    D
func renderCube(c *gocube.Cube) string {
	var sb strings.Builder
	pad := strings.Repeat(" ", 9)

	for row := 0; row < 3; row++ {
		sb.WriteString(pad)
		sb.WriteString(faceRow(c, gocube.CubeFaceU, row))
		sb.WriteString("\n")
	}
	for row := 0; row < 3; row++ {
		for _, face := range []gocube.CubeFace{gocube.CubeFaceL, gocube.CubeFaceF, gocube.CubeFaceR, gocube.CubeFaceB} {
			sb.WriteString(faceRow(c, face, row))
		}
		sb.WriteString("\n")
	}
	for row := 0; row < 3; row++ {
		sb.WriteString(pad)
		sb.WriteString(faceRow(c, gocube.CubeFaceD, row))
		sb.WriteString("\n")
	}

	return sb.String()
}
