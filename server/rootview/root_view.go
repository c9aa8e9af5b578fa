// Package rootview assembles the board grid and the scoreboard into the
// single page the server serves.
package rootview

import (
	"context"
	"html/template"
	"time"

	"github.com/aochagavia/FastAnts/internal/simulator"
	"github.com/aochagavia/FastAnts/server/boardviews"
	"github.com/aochagavia/FastAnts/server/fastview"

	channerics "github.com/niceyeti/channerics/channels"
)

// PageData is the template data for the main page: one field per child
// view, since BoardGridView and OutcomeView consume different model types.
type PageData struct {
	Board   [][]boardviews.BoardCell
	Outcome simulator.Outcome
}

// RootView is the main page's index.html: the container for the board
// grid and scoreboard views, and the wiring for their channels.
type RootView struct {
	board   fastview.ViewComponent
	outcome fastview.ViewComponent
	updates <-chan []fastview.EleUpdate
}

// NewRootView builds the board grid and scoreboard views and fans their
// ele-update channels into one.
func NewRootView(
	ctx context.Context,
	cellUpdates <-chan [][]boardviews.BoardCell,
	outcomeUpdates <-chan simulator.Outcome,
) *RootView {
	done := ctx.Done()
	board := boardviews.NewBoardGridView(done, cellUpdates)
	outcome := boardviews.NewOutcomeView(done, outcomeUpdates)

	updates := fanIn(done, []fastview.ViewComponent{board, outcome})

	return &RootView{
		board:   board,
		outcome: outcome,
		updates: updates,
	}
}

// Updates returns the main ele-update channel for all the views.
func (rv *RootView) Updates() <-chan []fastview.EleUpdate {
	return rv.updates
}

// Parse builds the main page's template, with websocket bootstrap code.
func (rv *RootView) Parse(parent *template.Template) (name string, err error) {
	rt := parent.Funcs(
		template.FuncMap{
			"add":  func(i, j int) int { return i + j },
			"sub":  func(i, j int) int { return i - j },
			"mult": func(i, j int) int { return i * j },
			"div":  func(i, j int) int { return i / j },
			"max": func(i, j int) int {
				if i > j {
					return i
				}
				return j
			},
		})

	boardName, err := rv.board.Parse(rt)
	if err != nil {
		return "", err
	}
	outcomeName, err := rv.outcome.Parse(rt)
	if err != nil {
		return "", err
	}

	// BoardGridView and OutcomeView consume different model types, so each
	// is handed its own field of PageData rather than the bare `.`.
	bodySpec := `{{ template "` + boardName + `" .Board }}` +
		`{{ template "` + outcomeName + `" .Outcome }}`

	name = "mainpage"
	indexTemplate := `
	{{ define "` + name + `" }}
	<!DOCTYPE html>
	<html>
		<head>
			<link rel="icon" href="data:,">
			<script>
				const ws = new WebSocket("ws://" + window.location.host + "/ws");
				ws.onopen = function (event) {
					console.log("Web socket opened")
				};
				ws.onerror = function (event) {
					console.log('WebSocket error: ', event);
				};
				ws.onmessage = function (event) {
					items = JSON.parse(event.data)
					for (const update of items) {
						const ele = document.getElementById(update.EleId)
						if (!ele) { continue; }
						for (const op of update.Ops) {
							if (op.Key === "textContent") {
								ele.textContent = op.Value;
							} else {
								ele.setAttribute(op.Key, op.Value)
							}
						}
					}
				}
			</script>
		</head>
		<body>
		` + bodySpec + `
		</body></html>
	{{ end }}
	`

	_, err = rt.Parse(indexTemplate)
	return
}

// fanIn aggregates the views' ele-update channels into a single channel
// and throttles its output.
func fanIn(done <-chan struct{}, views []fastview.ViewComponent) <-chan []fastview.EleUpdate {
	inputs := make([]<-chan []fastview.EleUpdate, len(views))
	for i, view := range views {
		inputs[i] = view.Updates()
	}
	return batchify(done, channerics.Merge(done, inputs...), time.Millisecond*20)
}

// batchify batches within rate before sending, overwriting previously
// received values for the same ele-id so redundant updates collapse into
// the latest one.
func batchify(
	done <-chan struct{},
	source <-chan []fastview.EleUpdate,
	rate time.Duration,
) <-chan []fastview.EleUpdate {
	output := make(chan []fastview.EleUpdate)

	go func() {
		defer close(output)

		data := map[string]fastview.EleUpdate{}
		last := time.Now()
		for updates := range channerics.OrDone(done, source) {
			for _, update := range updates {
				data[update.EleId] = update
			}

			if time.Since(last) > rate && len(updates) > 0 {
				select {
				case output <- slicedVals(data):
					data = map[string]fastview.EleUpdate{}
					last = time.Now()
				case <-done:
					return
				}
			}
		}
	}()

	return output
}

func slicedVals[T1 comparable, T2 any](mp map[T1]T2) (sliced []T2) {
	for _, v := range mp {
		sliced = append(sliced, v)
	}
	return
}
