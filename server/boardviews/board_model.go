// Package boardviews converts antworld.World snapshots into the view
// models the live board renders, and the views themselves: the board grid
// (replacing cell_views' state-value grid) and a small scoreboard.
package boardviews

import (
	"github.com/aochagavia/FastAnts/internal/antworld"
)

// BoardCell is a flat, display-ready projection of one board cell, with
// Y already flipped into svg coordinates (0 at the top).
type BoardCell struct {
	X, Y       int
	Rocky      bool
	HasAnthill bool
	AnthillRed bool
	Food       uint16
	HasAnt     bool
	AntRed     bool
	AntDir     string
	OddRow     bool
}

// Convert transforms a World snapshot into the [][]BoardCell grid a
// BoardGridView renders.
func Convert(w *antworld.World) [][]BoardCell {
	cells := make([][]BoardCell, w.Width)
	for x := range cells {
		cells[x] = make([]BoardCell, w.Height)
	}

	for i := range w.Cells {
		x, y := w.IndexToCoords(i)
		cell := &w.Cells[i]

		bc := BoardCell{
			X:          x,
			Y:          w.Height - y - 1,
			Rocky:      cell.Rocky,
			HasAnthill: cell.HasAnthill,
			AnthillRed: cell.Anthill == antworld.Red,
			Food:       cell.Food,
			OddRow:     y%2 != 0,
		}
		if cell.Ant != nil {
			bc.HasAnt = true
			bc.AntRed = cell.Ant.Color == antworld.Red
			bc.AntDir = cell.Ant.Direction.String()
		}

		cells[x][bc.Y] = bc
	}

	return cells
}
