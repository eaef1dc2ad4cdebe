package server

import (
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

// ReloadMessage is the text frame sent to pages when specs change.
const ReloadMessage = "reload"

// DefaultWriteWait bounds each reload write to a client.
const DefaultWriteWait = 2 * time.Second

// ReloadHub manages live reload websocket connections.
type ReloadHub struct {
	mu       sync.Mutex
	clients  map[*websocket.Conn]bool
	upgrader websocket.Upgrader

	// sendMu serializes broadcasts; a connection allows one writer.
	sendMu    sync.Mutex
	writeWait time.Duration
}

// NewReloadHub creates an empty hub.
func NewReloadHub() *ReloadHub {
	return &ReloadHub{
		clients:   make(map[*websocket.Conn]bool),
		writeWait: DefaultWriteWait,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				return true // preview server, any origin
			},
		},
	}
}

// ServeHTTP upgrades the connection and holds it until the client leaves.
func (h *ReloadHub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}

	h.mu.Lock()
	h.clients[conn] = true
	h.mu.Unlock()

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}

	h.mu.Lock()
	delete(h.clients, conn)
	h.mu.Unlock()
	conn.Close()
}

// Broadcast sends a reload message to every client. Clients that fail to
// receive it within the write wait are dropped.
func (h *ReloadHub) Broadcast() {
	h.sendMu.Lock()
	defer h.sendMu.Unlock()

	h.mu.Lock()
	conns := make([]*websocket.Conn, 0, len(h.clients))
	for conn := range h.clients {
		conns = append(conns, conn)
	}
	h.mu.Unlock()

	for _, conn := range conns {
		conn.SetWriteDeadline(time.Now().Add(h.writeWait))
		if err := conn.WriteMessage(websocket.TextMessage, []byte(ReloadMessage)); err != nil {
			h.mu.Lock()
			delete(h.clients, conn)
			h.mu.Unlock()
			conn.Close()
		}
	}
}

// ClientCount returns the number of connected clients.
func (h *ReloadHub) ClientCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

// Close disconnects every client.
func (h *ReloadHub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for conn := range h.clients {
		conn.Close()
		delete(h.clients, conn)
	}
}
