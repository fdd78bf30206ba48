// Package render draws a cube as an unfolded net for terminals.
package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/SeamusWaldron/twisty"
)

// sticker colors, ANSI 256 palette
var palette = map[twisty.Color]lipgloss.Color{
	twisty.White:  lipgloss.Color("255"),
	twisty.Yellow: lipgloss.Color("226"),
	twisty.Green:  lipgloss.Color("34"),
	twisty.Blue:   lipgloss.Color("27"),
	twisty.Red:    lipgloss.Color("196"),
	twisty.Orange: lipgloss.Color("208"),
}

var (
	stickerStyles = func() map[twisty.Color]lipgloss.Style {
		m := make(map[twisty.Color]lipgloss.Style, len(palette))
		for c, bg := range palette {
			m[c] = lipgloss.NewStyle().Background(bg).Foreground(lipgloss.Color("0"))
		}
		return m
	}()

	highlightStyle = lipgloss.NewStyle().Bold(true)
)

// Options controls how a net is drawn.
type Options struct {
	// Plain draws color letters without ANSI styling.
	Plain bool
	// Highlight marks facelet slots, e.g. those a move just changed.
	Highlight []twisty.Position
}

// Net draws the cube as
//
//	  U
//	L F R B
//	  D
func Net(c *twisty.Cube, opts Options) string {
	marked := make(map[twisty.Position]bool, len(opts.Highlight))
	for _, p := range opts.Highlight {
		marked[p] = true
	}

	blocks := make(map[twisty.Face]string, 6)
	for _, face := range twisty.Faces {
		blocks[face] = faceBlock(c, face, marked, opts.Plain)
	}

	middle := lipgloss.JoinHorizontal(lipgloss.Top,
		blocks[twisty.L], " ", blocks[twisty.F], " ", blocks[twisty.R], " ", blocks[twisty.B])
	indent := lipgloss.NewStyle().PaddingLeft(lipgloss.Width(blocks[twisty.L]) + 1)

	return lipgloss.JoinVertical(lipgloss.Left,
		indent.Render(blocks[twisty.U]),
		middle,
		indent.Render(blocks[twisty.D]),
	)
}

// Face draws a single face grid.
func Face(c *twisty.Cube, face twisty.Face, plain bool) string {
	return faceBlock(c, face, nil, plain)
}

func faceBlock(c *twisty.Cube, face twisty.Face, marked map[twisty.Position]bool, plain bool) string {
	n := c.Size()
	rows := make([]string, n)
	for row := 0; row < n; row++ {
		var b strings.Builder
		for col := 0; col < n; col++ {
			color := c.At(face, row, col)
			cell := sticker(color, marked[twisty.Position{Face: face, Row: row, Col: col}], plain)
			b.WriteString(cell)
		}
		rows[row] = b.String()
	}
	return strings.Join(rows, "\n")
}

func sticker(color twisty.Color, marked, plain bool) string {
	text := color.String() + " "
	if plain {
		if marked {
			return strings.ToLower(color.String()) + " "
		}
		return text
	}
	if marked {
		text = color.String() + "*"
	}
	style := stickerStyles[color]
	if marked {
		style = style.Inherit(highlightStyle)
	}
	return style.Render(text)
}
