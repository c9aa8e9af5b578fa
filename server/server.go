package server

import (
	"context"
	"encoding/json"
	"fmt"
	"html/template"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/aochagavia/FastAnts/internal/runner"
	"github.com/aochagavia/FastAnts/internal/simulator"
	"github.com/aochagavia/FastAnts/server/boardviews"
	"github.com/aochagavia/FastAnts/server/fastview"
	"github.com/aochagavia/FastAnts/server/rootview"

	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"
	channerics "github.com/niceyeti/channerics/channels"
)

var upgrader = websocket.Upgrader{}

const (
	// Time allowed to write a message to the peer.
	writeWait = 1 * time.Second
	// pongWait and pingPeriod are not used by publishEleUpdates, which
	// pings every 500ms and drops a client after 1s without a pong.
	pongWait = 60 * time.Second
	// See pongWait.
	pingPeriod = (pongWait * 9) / 10
	// Time to wait before force close on connection.
	closeGracePeriod = 10 * time.Second
)

// Server serves the live match: a single page showing the board and
// scoreboard, pushed to clients over websocket, plus a small JSON status
// endpoint. Every websocket connection shares the same underlying update
// stream; this is fine for the single spectator this is built for.
type Server struct {
	addr     string
	lastPage rootview.PageData
	rootView *rootview.RootView
	run      *runner.Runner
}

// NewServer wires a RootView to the runner's snapshot stream and returns
// a server ready to Serve.
func NewServer(
	ctx context.Context,
	addr string,
	run *runner.Runner,
	initial runner.Snapshot,
) *Server {
	cellUpdates := make(chan [][]boardviews.BoardCell)
	outcomeUpdates := make(chan simulator.Outcome)

	go func() {
		defer close(cellUpdates)
		defer close(outcomeUpdates)
		for snap := range run.Snapshots() {
			select {
			case cellUpdates <- snap.Cells:
			case <-ctx.Done():
				return
			}
			select {
			case outcomeUpdates <- snap.Outcome:
			case <-ctx.Done():
				return
			}
		}
	}()

	rv := rootview.NewRootView(ctx, cellUpdates, outcomeUpdates)

	return &Server{
		addr: addr,
		lastPage: rootview.PageData{
			Board:   initial.Cells,
			Outcome: initial.Outcome,
		},
		rootView: rv,
		run:      run,
	}
}

// Serve starts the http server, blocking until it exits.
func (server *Server) Serve() (err error) {
	r := mux.NewRouter()
	r.HandleFunc("/", server.serveIndex).Methods(http.MethodGet)
	r.HandleFunc("/ws", server.serveWebsocket)
	r.HandleFunc("/api/outcome", server.serveOutcome).Methods(http.MethodGet)

	if err = http.ListenAndServe(server.addr, r); err != nil {
		err = fmt.Errorf("serve: %w", err)
	}

	return
}

// serveOutcome reports the most recent scoreboard as JSON, for a status
// check or external scraper that doesn't want to open a websocket.
func (server *Server) serveOutcome(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	outcome := server.lastPage.Outcome
	if err := json.NewEncoder(w).Encode(outcome); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// serveWebsocket publishes view updates to the client via websocket.
// This assumes a single spectator; the ele-update stream is shared by
// whoever connects.
func (server *Server) serveWebsocket(w http.ResponseWriter, r *http.Request) {
	ws, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		log.Println("upgrade:", err)
		return
	}

	defer server.closeWebsocket(ws)
	server.publishEleUpdates(r.Context(), ws)
}

// publishEleUpdates forwards view updates to the client, with a
// ping/pong health check, throttled to at most one publish per
// pubResolution.
func (server *Server) publishEleUpdates(ctx context.Context, ws *websocket.Conn) {
	last := time.Now()
	pubResolution := time.Millisecond * 100
	pingResolution := time.Millisecond * 500
	pubCtx, cancelPub := context.WithCancel(ctx)
	defer cancelPub()
	pinger := channerics.NewTicker(pubCtx.Done(), pingResolution)
	lastPong := time.Now()

	pong := make(chan struct{})
	defer close(pong)
	ws.SetPongHandler(func(appData string) error {
		pong <- struct{}{}
		return nil
	})

	// A read must be pumped for the gorilla websocket lib to dispatch
	// ping/pong control frames; errors here are permanent.
	go func() {
		for {
			select {
			case <-pubCtx.Done():
				return
			default:
				if _, _, err := ws.ReadMessage(); err != nil {
					cancelPub()
					if isClosure(err) {
						return
					}
					fmt.Println("read pump: ", err)
					return
				}
			}
		}
	}()

	for {
		select {
		case <-pubCtx.Done():
			return
		case <-pinger:
			if time.Since(lastPong) > pingResolution*2 {
				return
			}
			if err := ws.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeWait)); err != nil {
				if isError(err) {
					fmt.Printf("ping failed: %T %v", err, err)
				}
				return
			}
		case <-pong:
			lastPong = time.Now()
		case updates, ok := <-server.rootView.Updates():
			if !ok {
				return
			}
			if time.Since(last) < pubResolution {
				break
			}

			last = time.Now()
			if err := ws.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
				fmt.Printf("failed to set deadline: %T %v", err, err)
				return
			}
			if err := ws.WriteJSON(updates); err != nil {
				if isError(err) {
					fmt.Printf("publish failed: %T %v", err, err)
				}
				return
			}
		}
	}
}

func isError(err error) bool {
	return err != nil && websocket.IsUnexpectedCloseError(
		err,
		websocket.CloseNormalClosure,
		websocket.CloseGoingAway)
}

func isClosure(err error) bool {
	return err != nil && websocket.IsCloseError(
		err,
		websocket.CloseNormalClosure,
		websocket.CloseGoingAway)
}

func (server *Server) closeWebsocket(ws *websocket.Conn) {
	_ = ws.SetWriteDeadline(time.Now().Add(writeWait))
	_ = ws.WriteMessage(
		websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
	time.Sleep(closeGracePeriod)
	ws.Close()
}

// serveIndex serves the main page.
func (server *Server) serveIndex(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html")
	if err := renderTemplate(w, server.rootView, server.lastPage); err != nil {
		_, _ = w.Write([]byte(err.Error()))
	}
}

func renderTemplate(
	w io.Writer,
	vc fastview.ViewComponent,
	data interface{},
) (err error) {
	t := template.New("index.html")
	var tname string
	if tname, err = vc.Parse(t); err != nil {
		return
	}
	if _, err = t.Parse(`{{ template "` + tname + `" . }}`); err != nil {
		return
	}

	err = t.Execute(w, data)
	return
}
