package visual

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"sync/atomic"

	"github.com/gorilla/websocket"

	"github.com/katalvlaran/tilesearch/logging"
)

// ErrHubClosed is returned by Show once the hub loop has stopped.
var ErrHubClosed = errors.New("visual: hub closed")

// Hub fans frames out to websocket clients. Every write to a connection
// happens on the Run goroutine. A client that connects late first receives
// the most recent frame.
type Hub struct {
	upgrader  websocket.Upgrader
	logger    logging.Logger
	clients   map[*websocket.Conn]bool
	register  chan *websocket.Conn
	remove    chan *websocket.Conn
	broadcast chan []byte
	done      chan struct{}
	latest    []byte
	count     atomic.Int64
}

// NewHub returns a hub; call Run to start delivering frames.
// A nil logger discards diagnostics.
func NewHub(logger logging.Logger) *Hub {
	if logger == nil {
		logger = logging.NoOpLogger{}
	}

	return &Hub{
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
		logger:    logger,
		clients:   make(map[*websocket.Conn]bool),
		register:  make(chan *websocket.Conn),
		remove:    make(chan *websocket.Conn),
		broadcast: make(chan []byte, 16),
		done:      make(chan struct{}),
	}
}

// Run delivers frames until ctx is done, then closes every client.
func (h *Hub) Run(ctx context.Context) {
	defer func() {
		for conn := range h.clients {
			_ = conn.Close()
			delete(h.clients, conn)
		}
		h.count.Store(0)
		close(h.done)
	}()

	for {
		select {
		case <-ctx.Done():
			return
		case conn := <-h.register:
			h.clients[conn] = true
			h.count.Store(int64(len(h.clients)))
			if h.latest != nil {
				h.send(conn, h.latest)
			}
		case conn := <-h.remove:
			h.drop(conn)
		case msg := <-h.broadcast:
			h.latest = msg
			for conn := range h.clients {
				h.send(conn, msg)
			}
		}
	}
}

func (h *Hub) send(conn *websocket.Conn, msg []byte) {
	if err := conn.WriteMessage(websocket.TextMessage, msg); err != nil {
		h.logger.Warn("websocket send failed", "remote", conn.RemoteAddr().String(), "error", err)
		h.drop(conn)
	}
}

func (h *Hub) drop(conn *websocket.Conn) {
	if _, ok := h.clients[conn]; ok {
		delete(h.clients, conn)
		_ = conn.Close()
		h.count.Store(int64(len(h.clients)))
	}
}

// Clients returns the number of connected clients.
func (h *Hub) Clients() int { return int(h.count.Load()) }

// Show queues f for every client. It implements Sink.
func (h *Hub) Show(f Frame) error {
	data, err := json.Marshal(f)
	if err != nil {
		return err
	}
	select {
	case <-h.done:
		return ErrHubClosed
	default:
	}
	select {
	case h.broadcast <- data:
		return nil
	case <-h.done:
		return ErrHubClosed
	}
}

// ServeHTTP upgrades the request and registers the connection. Messages from
// the client are read and discarded so close frames are noticed.
func (h *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Error("websocket upgrade failed", "error", err)
		return
	}

	select {
	case h.register <- conn:
	case <-h.done:
		_ = conn.Close()
		return
	}
	h.logger.Debug("websocket client connected", "remote", conn.RemoteAddr().String())

	go func() {
		defer func() {
			select {
			case h.remove <- conn:
			case <-h.done:
			}
		}()
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
					h.logger.Warn("websocket read failed", "error", err)
				}
				return
			}
		}
	}()
}

// Handler serves the viewer page at "/" and the hub at "/ws".
func Handler(h *Hub) http.Handler {
	mux := http.NewServeMux()
	mux.Handle("/ws", h)
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write([]byte(page))
	})

	return mux
}

const page = `<!DOCTYPE html>
<html>
<head><meta charset="utf-8"><title>tilesearch</title>
<style>
body { font-family: monospace; background: #111; color: #eee; }
table { border-collapse: collapse; margin: 1em 0; }
td { width: 3em; height: 3em; text-align: center; font-size: 1.5em; border: 1px solid #555; }
td.blank { background: #333; }
</style>
</head>
<body>
<div id="status">connecting</div>
<table id="board"></table>
<script>
const status = document.getElementById("status");
const board = document.getElementById("board");
const ws = new WebSocket((location.protocol === "https:" ? "wss://" : "ws://") + location.host + "/ws");
ws.onopen = () => { status.textContent = "waiting for frames"; };
ws.onclose = () => { status.textContent = "disconnected"; };
ws.onmessage = (ev) => {
  const f = JSON.parse(ev.data);
  status.textContent = "step " + f.step + "/" + f.total + (f.move ? " move " + f.move : "");
  board.innerHTML = "";
  for (const row of f.rows) {
    const tr = board.insertRow();
    for (const v of row) {
      const td = tr.insertCell();
      if (v === 0) { td.className = "blank"; } else { td.textContent = v; }
    }
  }
};
</script>
</body>
</html>
`
