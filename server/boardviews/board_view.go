package boardviews

import (
	"fmt"
	"html/template"
	"strings"

	"github.com/aochagavia/FastAnts/server/fastview"
	channerics "github.com/niceyeti/channerics/channels"
)

// BoardGridView renders the hex board as a rect-per-cell SVG grid: each
// cell shows its food count and, if occupied, a fill color for the ant.
// Cells are placed two cell widths apart and odd rows are shifted by one
// cell width (half that spacing), gesturing at the real hex offset
// without needing true hexagon geometry.
type BoardGridView struct {
	id      string
	updates <-chan []fastview.EleUpdate
}

// NewBoardGridView builds a view fed by a stream of converted board
// snapshots.
func NewBoardGridView(done <-chan struct{}, cells <-chan [][]BoardCell) *BoardGridView {
	id := "boardgrid"
	if strings.Contains(id, "-") {
		fmt.Println("WARNING: names with hyphens interfere with html/template parsing of the `template` directive")
	}

	bg := &BoardGridView{id: template.HTMLEscapeString(id)}
	bg.updates = channerics.Convert(done, cells, bg.update)
	return bg
}

// Updates returns the view's ele-update channel.
func (bg *BoardGridView) Updates() <-chan []fastview.EleUpdate {
	return bg.updates
}

// Parse defines the board's template under the view's id and adds it to
// the parent template.
func (bg *BoardGridView) Parse(t *template.Template) (name string, err error) {
	name = bg.id
	addedMap := template.FuncMap{
		"shiftx": func(x, cellWidth int, odd bool) int {
			v := x * 2 * cellWidth
			if odd {
				v += cellWidth
			}
			return v
		},
	}
	_, err = t.Funcs(addedMap).Parse(
		`{{ define "` + name + `" }}
		<div id="board">
			{{ $x_cells := len . }}
			{{ $y_cells := len (index . 0) }}
			{{ $cell_width := 40 }}
			{{ $cell_height := $cell_width }}
			{{ $width := mult $cell_width $x_cells }}
			{{ $height := mult $cell_height $y_cells }}
			<svg id="` + bg.id + `"
				width="{{ add (mult $width 2) $cell_width }}px"
				height="{{ add $height 1 }}px"
				style="shape-rendering: crispEdges;">
				{{ range $row := . }}
					{{ range $cell := $row }}
					<g>
						<rect id="{{$cell.X}}-{{$cell.Y}}-fill"
							x="{{ shiftx $cell.X $cell_width $cell.OddRow }}"
							y="{{ mult $cell.Y $cell_height }}"
							width="{{ $cell_width }}"
							height="{{ $cell_height }}"
							fill="{{ if $cell.Rocky }}dimgray{{ else if $cell.HasAnt }}{{ if $cell.AntRed }}salmon{{ else }}slategray{{ end }}{{ else if $cell.HasAnthill }}{{ if $cell.AnthillRed }}mistyrose{{ else }}lightsteelblue{{ end }}{{ else }}white{{ end }}"
							stroke="black"
							stroke-width="1"/>
						<text id="{{$cell.X}}-{{$cell.Y}}-food-text"
							x="{{ add (shiftx $cell.X $cell_width $cell.OddRow) (div $cell_width 2) }}"
							y="{{ add (mult $cell.Y $cell_height) (div $cell_height 2) }}"
							dominant-baseline="middle" text-anchor="middle"
							>{{ if $cell.Food }}{{ $cell.Food }}{{ end }}</text>
					</g>
					{{ end }}
				{{ end }}
			</svg>
		</div>
		{{ end }}`)
	return
}

func (bg *BoardGridView) update(cells [][]BoardCell) (ops []fastview.EleUpdate) {
	for _, row := range cells {
		for _, cell := range row {
			fill := "white"
			switch {
			case cell.Rocky:
				fill = "dimgray"
			case cell.HasAnt && cell.AntRed:
				fill = "salmon"
			case cell.HasAnt:
				fill = "slategray"
			case cell.HasAnthill && cell.AnthillRed:
				fill = "mistyrose"
			case cell.HasAnthill:
				fill = "lightsteelblue"
			}

			ops = append(ops, fastview.EleUpdate{
				EleId: fmt.Sprintf("%d-%d-fill", cell.X, cell.Y),
				Ops: []fastview.Op{
					{Key: "fill", Value: fill},
				},
			})

			foodText := ""
			if cell.Food > 0 {
				foodText = fmt.Sprintf("%d", cell.Food)
			}
			ops = append(ops, fastview.EleUpdate{
				EleId: fmt.Sprintf("%d-%d-food-text", cell.X, cell.Y),
				Ops: []fastview.Op{
					{Key: "textContent", Value: foodText},
				},
			})
		}
	}
	return
}
