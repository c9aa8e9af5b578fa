package boardviews

import (
	"fmt"
	"html/template"

	"github.com/aochagavia/FastAnts/internal/simulator"
	"github.com/aochagavia/FastAnts/server/fastview"
	channerics "github.com/niceyeti/channerics/channels"
)

// OutcomeView is a small scoreboard component: red/black score and alive
// counts, food remaining, and the current round. Built from the same
// ViewComponent/channel-driven shape as BoardGridView.
type OutcomeView struct {
	id      string
	updates <-chan []fastview.EleUpdate
}

// NewOutcomeView builds a scoreboard fed by a stream of Outcome snapshots.
func NewOutcomeView(done <-chan struct{}, outcomes <-chan simulator.Outcome) *OutcomeView {
	ov := &OutcomeView{id: "outcome"}
	ov.updates = channerics.Convert(done, outcomes, ov.update)
	return ov
}

func (ov *OutcomeView) Updates() <-chan []fastview.EleUpdate {
	return ov.updates
}

func (ov *OutcomeView) Parse(t *template.Template) (name string, err error) {
	name = ov.id
	_, err = t.Parse(
		`{{ define "` + name + `" }}
		<div id="outcome">
			<table>
				<tr><th></th><th>red</th><th>black</th></tr>
				<tr><td>score</td><td id="red-score">{{ .RedScore }}</td><td id="black-score">{{ .BlackScore }}</td></tr>
				<tr><td>alive</td><td id="red-alive">{{ .RedAlive }}</td><td id="black-alive">{{ .BlackAlive }}</td></tr>
			</table>
			<p>round <span id="round">{{ .Round }}</span>, food left <span id="food-left">{{ .FoodLeft }}</span></p>
		</div>
		{{ end }}`)
	return
}

func (ov *OutcomeView) update(o simulator.Outcome) (ops []fastview.EleUpdate) {
	set := func(id string, val interface{}) fastview.EleUpdate {
		return fastview.EleUpdate{
			EleId: id,
			Ops:   []fastview.Op{{Key: "textContent", Value: fmt.Sprintf("%v", val)}},
		}
	}
	return []fastview.EleUpdate{
		set("red-score", o.RedScore),
		set("black-score", o.BlackScore),
		set("red-alive", o.RedAlive),
		set("black-alive", o.BlackAlive),
		set("round", o.Round),
		set("food-left", o.FoodLeft),
	}
}
