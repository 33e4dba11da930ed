package feed

import (
	"encoding/json"
	"log/slog"
	"time"

	"github.com/gorilla/websocket"

	"github.com/mergington/activities/internal/metrics"
)

const writeTimeout = 5 * time.Second

// --- Command types ---

type hubCmd interface{ hubCmd() }

type cmdRegister struct {
	conn  *websocket.Conn
	errCh chan error
}

func (cmdRegister) hubCmd() {}

type cmdUnregister struct {
	conn *websocket.Conn
}

func (cmdUnregister) hubCmd() {}

type cmdPublish struct {
	data []byte
}

func (cmdPublish) hubCmd() {}

type cmdClientCount struct {
	replyCh chan int
}

func (cmdClientCount) hubCmd() {}

type cmdStop struct{}

func (cmdStop) hubCmd() {}

// --- Per-connection writer ---

type clientWriter struct {
	conn   *websocket.Conn
	sendCh chan []byte
	done   chan struct{}
}

func newClientWriter(conn *websocket.Conn) *clientWriter {
	cw := &clientWriter{
		conn:   conn,
		sendCh: make(chan []byte, 16),
		done:   make(chan struct{}),
	}
	go cw.run()
	return cw
}

func (cw *clientWriter) run() {
	for {
		select {
		case msg, ok := <-cw.sendCh:
			if !ok {
				return
			}
			_ = cw.conn.SetWriteDeadline(time.Now().Add(writeTimeout))
			if err := cw.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				return
			}
		case <-cw.done:
			return
		}
	}
}

func (cw *clientWriter) stop() {
	close(cw.done)
	_ = cw.conn.Close()
}

// --- Hub ---

// Hub fans roster events out to websocket clients. All state is owned by the
// run goroutine; external callers interact only through the command channel.
type Hub struct {
	cmdCh      chan hubCmd
	clients    map[*websocket.Conn]*clientWriter
	maxClients int
	stopped    chan struct{}
}

func NewHub(maxClients int) *Hub {
	hub := &Hub{
		cmdCh:      make(chan hubCmd, 256),
		clients:    make(map[*websocket.Conn]*clientWriter),
		maxClients: maxClients,
		stopped:    make(chan struct{}),
	}
	go hub.run()
	return hub
}

func (h *Hub) run() {
	for cmd := range h.cmdCh {
		switch c := cmd.(type) {
		case cmdRegister:
			h.handleRegister(c)
		case cmdUnregister:
			h.handleUnregister(c.conn)
		case cmdPublish:
			h.handlePublish(c.data)
		case cmdClientCount:
			c.replyCh <- len(h.clients)
		case cmdStop:
			h.handleStop()
			return
		}
	}
}

func (h *Hub) handleRegister(c cmdRegister) {
	if len(h.clients) >= h.maxClients {
		slog.Warn("Rejecting feed client: max clients reached", "max_clients", h.maxClients)
		metrics.FeedClientsRejected.Inc()
		_ = c.conn.Close()
		c.errCh <- ErrHubFull
		return
	}
	h.clients[c.conn] = newClientWriter(c.conn)
	metrics.FeedClientsCurrent.Set(float64(len(h.clients)))
	slog.Debug("Feed client registered", "clients", len(h.clients))
	c.errCh <- nil
}

func (h *Hub) handleUnregister(conn *websocket.Conn) {
	cw, ok := h.clients[conn]
	if !ok {
		return
	}
	cw.stop()
	delete(h.clients, conn)
	metrics.FeedClientsCurrent.Set(float64(len(h.clients)))
	slog.Debug("Feed client unregistered", "clients", len(h.clients))
}

func (h *Hub) handlePublish(data []byte) {
	metrics.FeedEventsTotal.Inc()
	for conn, cw := range h.clients {
		select {
		case cw.sendCh <- data:
		default:
			// Client buffer full: evict rather than block the hub.
			slog.Warn("Evicting slow feed client")
			metrics.FeedSlowClientsEvicted.Inc()
			cw.stop()
			delete(h.clients, conn)
		}
	}
	metrics.FeedClientsCurrent.Set(float64(len(h.clients)))
}

func (h *Hub) handleStop() {
	for conn, cw := range h.clients {
		cw.stop()
		delete(h.clients, conn)
	}
	metrics.FeedClientsCurrent.Set(0)
	close(h.stopped)
}

// Register adds a websocket connection to the hub. Returns ErrHubFull when
// the client cap is reached; the connection is closed in that case.
func (h *Hub) Register(conn *websocket.Conn) error {
	errCh := make(chan error, 1)
	select {
	case h.cmdCh <- cmdRegister{conn: conn, errCh: errCh}:
		select {
		case err := <-errCh:
			return err
		case <-h.stopped:
			_ = conn.Close()
			return ErrHubStopped
		}
	case <-h.stopped:
		_ = conn.Close()
		return ErrHubStopped
	}
}

// Unregister removes a websocket connection and stops its writer.
func (h *Hub) Unregister(conn *websocket.Conn) {
	select {
	case h.cmdCh <- cmdUnregister{conn: conn}:
	case <-h.stopped:
	}
}

// Publish broadcasts an event to every connected client.
// Drops the event silently once the hub is stopped.
func (h *Hub) Publish(ev Event) {
	data, err := json.Marshal(ev)
	if err != nil {
		slog.Error("Failed to marshal feed event", "error", err)
		return
	}
	select {
	case h.cmdCh <- cmdPublish{data: data}:
	case <-h.stopped:
	}
}

// ClientCount reports the number of connected clients.
func (h *Hub) ClientCount() int {
	replyCh := make(chan int, 1)
	select {
	case h.cmdCh <- cmdClientCount{replyCh: replyCh}:
		select {
		case n := <-replyCh:
			return n
		case <-h.stopped:
			return 0
		}
	case <-h.stopped:
		return 0
	}
}

// Stop disconnects all clients and shuts the hub down.
func (h *Hub) Stop() {
	select {
	case h.cmdCh <- cmdStop{}:
		<-h.stopped
	case <-h.stopped:
	}
}
