package services

import (
	"encoding/json"
	"sync"

	"backend/models"

	"github.com/gorilla/websocket"
)

// Notification is the wire payload pushed to a user's open connections.
type Notification struct {
	Kind    string               `json:"kind"`
	Message *models.AdminMessage `json:"message,omitempty"`
}

// WSClient is one user's open websocket connection. All frames go out through
// write: gorilla/websocket allows at most one concurrent writer, and the
// keep-alive pings would otherwise race message pushes on the same conn.
type WSClient struct {
	UserID uint

	mu   sync.Mutex
	conn *websocket.Conn
}

func NewWSClient(userID uint, conn *websocket.Conn) *WSClient {
	return &WSClient{UserID: userID, conn: conn}
}

func (c *WSClient) write(messageType int, data []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.conn.WriteMessage(messageType, data)
}

// Ping sends a keep-alive frame, serialized with notification pushes.
func (c *WSClient) Ping() error {
	return c.write(websocket.PingMessage, nil)
}

// NotificationHub fans admin messages out to whichever connections the
// recipient currently has open. Users who aren't connected simply pick the
// message up from their inbox on the next dashboard load.
type NotificationHub struct {
	mu      sync.RWMutex
	clients map[uint]map[*WSClient]struct{}
}

func NewNotificationHub() *NotificationHub {
	return &NotificationHub{clients: make(map[uint]map[*WSClient]struct{})}
}

func (h *NotificationHub) Register(c *WSClient) {
	h.mu.Lock()
	if h.clients[c.UserID] == nil {
		h.clients[c.UserID] = make(map[*WSClient]struct{})
	}
	h.clients[c.UserID][c] = struct{}{}
	h.mu.Unlock()
}

func (h *NotificationHub) Unregister(c *WSClient) {
	h.mu.Lock()
	if set := h.clients[c.UserID]; set != nil {
		delete(set, c)
		if len(set) == 0 {
			delete(h.clients, c.UserID)
		}
	}
	h.mu.Unlock()
	_ = c.conn.Close()
}

// Notify pushes n to every open connection of one user. The client set is
// snapshotted so slow writes never hold the hub lock; write errors are left
// for the read loop, which notices the dead connection and unregisters it.
func (h *NotificationHub) Notify(userID uint, n Notification) {
	payload, err := json.Marshal(n)
	if err != nil {
		return
	}

	h.mu.RLock()
	targets := make([]*WSClient, 0, len(h.clients[userID]))
	for c := range h.clients[userID] {
		targets = append(targets, c)
	}
	h.mu.RUnlock()

	for _, c := range targets {
		_ = c.write(websocket.TextMessage, payload)
	}
}
