package websocket

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"PokerAssist/internal/utils"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// GET /ws
// The JWT middleware, when enabled, puts the wallet address in the context.
// Anonymous connections get a random id.
func ServeWS(hub *Hub) gin.HandlerFunc {
	return func(c *gin.Context) {
		addr := c.GetString("address")
		if addr == "" {
			addr = uuid.NewString()
		}

		conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			utils.Log.Warn("websocket upgrade failed", "err", err)
			return
		}

		client := &Client{
			Address: addr,
			Conn:    conn,
			Send:    make(chan OutgoingMessage, sendBuffer),
			Hub:     hub,
		}
		hub.writers.Add(1)
		if !hub.doRegister(client) {
			hub.writers.Done()
			_ = conn.Close()
			return
		}

		go func() {
			defer hub.writers.Done()
			client.writePump()
		}()
		go client.readPump()
	}
}
