// Package boarddump renders a World to a console, the ASCII analogue of
// the board view: a per-cell character grid printed last row first,
// plus a one-line scoreboard.
package boarddump

import (
	"fmt"
	"io"

	"github.com/aochagavia/FastAnts/internal/antworld"
	"github.com/aochagavia/FastAnts/internal/simulator"
)

// rev returns the indices length-1 down to 0, for printing rows in
// reverse order.
func rev(length int) []int {
	indices := make([]int, length)
	for i := 0; i < length; i++ {
		indices[i] = length - i - 1
	}
	return indices
}

// cellGlyph returns the single character representing a cell: '#' rocky,
// 'r'/'b' an anthill cell (red/black), 'R'/'B' an ant of that color, a
// digit 1-9 the food count (capped for display), '.' empty.
func cellGlyph(c *antworld.Cell) rune {
	switch {
	case c.Ant != nil && c.Ant.Color == antworld.Red:
		return 'R'
	case c.Ant != nil:
		return 'B'
	case c.Rocky:
		return '#'
	case c.Food > 0:
		if c.Food > 9 {
			return '9'
		}
		return rune('0' + c.Food)
	case c.HasAnthill && c.Anthill == antworld.Red:
		return 'r'
	case c.HasAnthill:
		return 'b'
	default:
		return '.'
	}
}

// ShowGrid prints the board's cell glyphs, one row per line, starting
// with row Height-1 and ending with row 0 (the first row of the world
// file).
func ShowGrid(w io.Writer, world *antworld.World) {
	for _, y := range rev(world.Height) {
		for x := 0; x < world.Width; x++ {
			cell := &world.Cells[world.CoordsToIndex(x, y)]
			fmt.Fprintf(w, "%c ", cellGlyph(cell))
		}
		fmt.Fprintln(w)
	}
}

// ShowOutcome prints a one-line scoreboard summary.
func ShowOutcome(w io.Writer, o simulator.Outcome) {
	fmt.Fprintf(w,
		"round %d: red %d/%d alive, black %d/%d alive, food left %d\n",
		o.Round, o.RedScore, o.RedAlive, o.BlackScore, o.BlackAlive, o.FoodLeft)
}
