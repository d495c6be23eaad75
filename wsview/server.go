package wsview

import (
	"context"
	"errors"
	"fmt"
	"html/template"
	"log"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/tilewave/wfc/backtrack"
	"github.com/tilewave/wfc/grid"
	"github.com/tilewave/wfc/wfc"
)

var upgrader = websocket.Upgrader{}

const (
	// writeWait is the time allowed to write a frame to the peer.
	writeWait = 1 * time.Second
	// pongWait and pingPeriod are keepalive timings, with pingPeriod below
	// pongWait; nothing in this package sends pings or reads pongs.
	pongWait   = 60 * time.Second
	pingPeriod = (pongWait * 9) / 10
	// closeGracePeriod is the time to wait before force-closing a
	// connection after sending a close message.
	closeGracePeriod = 10 * time.Second
)

// View serves a live websocket feed of a Grid2D being solved by an
// Engine2D. Serve handles every browser tab that connects; the solve runs
// once per "/ws" connection, from the grid's current state, and all
// connections share the same grid and engine.
type View struct {
	addr          string
	grid          *grid.Grid2D
	engine        *wfc.Engine2D
	backtracker   backtrack.Backtracker2D
	maxIterations int
	tickInterval  time.Duration
	index         *template.Template
}

// NewView wires a grid and its engine into a servable view. tickInterval
// paces how often frames are published, independent of how fast the
// engine can actually tick, so a browser isn't flooded.
func NewView(addr string, g *grid.Grid2D, e *wfc.Engine2D, bt backtrack.Backtracker2D, maxIterations int, tickInterval time.Duration) (*View, error) {
	t, err := template.New("index").Parse(indexHTML)
	if err != nil {
		return nil, fmt.Errorf("wsview: parse index template: %w", err)
	}
	return &View{
		addr:          addr,
		grid:          g,
		engine:        e,
		backtracker:   bt,
		maxIterations: maxIterations,
		tickInterval:  tickInterval,
		index:         t,
	}, nil
}

// Serve blocks, handling "/" (the viewer page) and "/ws" (the live
// frame feed) until the process is killed or ListenAndServe errors.
func (v *View) Serve() error {
	mux := http.NewServeMux()
	mux.HandleFunc("/", v.serveIndex)
	mux.HandleFunc("/ws", v.serveWebsocket)

	if err := http.ListenAndServe(v.addr, mux); err != nil {
		return fmt.Errorf("wsview: serve: %w", err)
	}
	return nil
}

func (v *View) serveIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.Error(w, "not found", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "text/html")
	if err := v.index.Execute(w, struct{ Width, Height int }{v.grid.Width(), v.grid.Height()}); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (v *View) serveWebsocket(w http.ResponseWriter, r *http.Request) {
	ws, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Println("wsview: upgrade:", err)
		return
	}
	defer closeWebsocket(ws)

	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()
	v.runAndPublish(ctx, ws)
}

// runAndPublish ticks the engine and pushes one Frame per tick, handing
// contradictions to the configured backtracker as wfc.Engine2D.Run does
// and surfacing every intermediate state to the client instead of only
// the final one. Unlike Run, only ticks count against maxIterations, and
// a backtracker that raises a fresh contradiction ends the feed instead
// of being invoked again.
func (v *View) runAndPublish(ctx context.Context, ws *websocket.Conn) {
	ticker := time.NewTicker(v.tickInterval)
	defer ticker.Stop()

	sequence := 0
	iterations := 0
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}

		if iterations >= v.maxIterations {
			v.publish(ws, buildFrame(v.grid, v.engine, sequence, true))
			return
		}

		finished, tickErr := v.engine.Tick()
		iterations++
		sequence++

		if tickErr != nil {
			var ce *grid.ContradictionError
			if !errors.As(tickErr, &ce) || v.backtracker == nil {
				v.publish(ws, buildFrame(v.grid, v.engine, sequence, true))
				return
			}
			btFinished, err := v.backtracker.HandleContradiction(v.grid, ce.Position)
			if err != nil {
				v.publish(ws, buildFrame(v.grid, v.engine, sequence, true))
				return
			}
			if btFinished {
				finished = true
			}
		}

		if !v.publish(ws, buildFrame(v.grid, v.engine, sequence, finished)) {
			return
		}
		if finished {
			return
		}
	}
}

// publish writes frame to ws and reports whether the write succeeded.
func (v *View) publish(ws *websocket.Conn, frame Frame) bool {
	if err := ws.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
		return false
	}
	if err := ws.WriteJSON(frame); err != nil {
		return false
	}
	return true
}

func closeWebsocket(ws *websocket.Conn) {
	_ = ws.SetWriteDeadline(time.Now().Add(writeWait))
	_ = ws.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
	time.Sleep(closeGracePeriod)
	ws.Close()
}

const indexHTML = `<!DOCTYPE html>
<html>
<head><title>wfc live view</title></head>
<body>
<canvas id="grid" width="{{.Width}}0" height="{{.Height}}0"></canvas>
<script>
const canvas = document.getElementById("grid");
const ctx = canvas.getContext("2d");
const cellSize = 10;
const ws = new WebSocket("ws://" + location.host + "/ws");
ws.onmessage = (event) => {
  const frame = JSON.parse(event.data);
  ctx.clearRect(0, 0, canvas.width, canvas.height);
  for (const cell of frame.cells) {
    ctx.fillStyle = cell.collapsed ? "#222" : "#ccc";
    ctx.fillRect(cell.x * cellSize, cell.y * cellSize, cellSize - 1, cellSize - 1);
  }
};
</script>
</body>
</html>
`
