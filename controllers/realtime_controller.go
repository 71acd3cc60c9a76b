package controllers

import (
	"net/http"
	"time"

	"backend/middlewares"
	"backend/services"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

const (
	pingInterval = 25 * time.Second
	pongWait     = 60 * time.Second
)

type RealtimeController struct {
	Hub *services.NotificationHub
}

func NewRealtimeController(hub *services.NotificationHub) *RealtimeController {
	return &RealtimeController{Hub: hub}
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true }, // tighten behind a proxy if needed
}

// MessagesWS upgrades to a websocket on which newly sent admin messages are
// pushed to the authenticated user. The connection lives until the client
// closes it or stops answering pings.
func (rc *RealtimeController) MessagesWS(c *gin.Context) {
	userID := middlewares.SubjectID(c)

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		return
	}
	client := services.NewWSClient(userID, conn)
	rc.Hub.Register(client)

	_ = conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	// Keep-alive pings so idle connections survive proxies. A failed ping
	// means the peer is gone; the read loop sees the same error and cleans up.
	done := make(chan struct{})
	go func() {
		t := time.NewTicker(pingInterval)
		defer t.Stop()
		for {
			select {
			case <-done:
				return
			case <-t.C:
				if err := client.Ping(); err != nil {
					return
				}
			}
		}
	}()

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			close(done)
			rc.Hub.Unregister(client)
			return
		}
	}
}
