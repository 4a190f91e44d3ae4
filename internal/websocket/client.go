package websocket

import (
	"encoding/json"
	"time"

	"github.com/gorilla/websocket"

	"PokerAssist/internal/utils"
)

type Client struct {
	Address string
	Conn    *websocket.Conn
	Send    chan OutgoingMessage
	Hub     *Hub
}

const (
	writeWait      = 10 * time.Second    // 单次写超时
	pongWait       = 60 * time.Second    // 读超时
	pingPeriod     = (pongWait * 9) / 10 // 心跳发送周期
	maxMessageSize = 1024 * 4
	sendBuffer     = 32
)

// write sets the deadline for one frame. A nil v sends a control frame of
// type mt with an empty payload.
func (c *Client) write(mt int, v any) error {
	_ = c.Conn.SetWriteDeadline(time.Now().Add(writeWait))
	if v == nil {
		return c.Conn.WriteMessage(mt, nil)
	}
	return c.Conn.WriteJSON(v)
}

// writePump owns every write on the connection.
func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = c.Conn.Close()
	}()

	for {
		select {
		case msg, ok := <-c.Send:
			if !ok {
				// hub 已关闭或被新连接替换
				_ = c.write(websocket.CloseMessage, nil)
				return
			}
			if err := c.write(websocket.TextMessage, msg); err != nil {
				utils.Log.Debug("websocket write failed", "address", c.Address, "err", err)
				return
			}
		case <-ticker.C:
			if err := c.write(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// readPump forwards well-formed frames to the hub. Frames that are not a
// JSON envelope are dropped without closing the connection.
func (c *Client) readPump() {
	defer func() {
		c.Hub.doUnregister(c)
		_ = c.Conn.Close()
	}()

	c.Conn.SetReadLimit(maxMessageSize)
	_ = c.Conn.SetReadDeadline(time.Now().Add(pongWait))
	c.Conn.SetPongHandler(func(string) error {
		return c.Conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		_, frame, err := c.Conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				utils.Log.Debug("websocket closed", "address", c.Address, "err", err)
			}
			return
		}

		var msg IncomingMessage
		if err := json.Unmarshal(frame, &msg); err != nil {
			utils.Log.Debug("websocket frame dropped", "address", c.Address, "err", err)
			continue
		}
		msg.From = c.Address
		if !c.Hub.deliver(msg) {
			return
		}
	}
}
