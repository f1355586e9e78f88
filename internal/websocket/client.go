package websocket

import (
	"context"
	"encoding/json"
	"time"

	"restobot-be/internal/constant"
	"restobot-be/internal/dto"
	"restobot-be/internal/pkg/logger"
	"restobot-be/internal/service"

	"github.com/gofiber/websocket/v2"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 4096
	turnTimeout    = 30 * time.Second
)

// wsError is sent back on a frame the server could not process.
type wsError struct {
	Error string `json:"error"`
}

// Client is one live chat connection. Every inbound text frame is a
// dto.ChatRequest; every turn answers with a dto.ChatResponse frame.
type Client struct {
	Hub *Hub

	Conn *websocket.Conn

	ConversationID string

	// Buffered channel of outbound frames.
	Send chan []byte

	chat service.IChatService
	log  logger.ILogger
}

// readPump reads chat frames and runs them through the chat service.
func (c *Client) readPump() {
	defer func() {
		c.Hub.unregister <- c
		c.Conn.Close()
	}()
	c.Conn.SetReadLimit(maxMessageSize)
	c.Conn.SetReadDeadline(time.Now().Add(pongWait))
	c.Conn.SetPongHandler(func(string) error {
		c.Conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		_, raw, err := c.Conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				c.log.Warn(constant.ModuleWebsocket, "unexpected close", map[string]interface{}{
					"conversation_id": c.ConversationID,
					"error":           err.Error(),
				})
			}
			break
		}
		c.handleFrame(raw)
	}
}

func (c *Client) handleFrame(raw []byte) {
	var req dto.ChatRequest
	if err := json.Unmarshal(raw, &req); err != nil {
		c.sendJSON(wsError{Error: "invalid message format"})
		return
	}
	if req.Message == "" {
		c.sendJSON(wsError{Error: "message is required"})
		return
	}
	// The socket is pinned to one conversation at upgrade time.
	req.ConversationID = c.ConversationID

	ctx, cancel := context.WithTimeout(context.Background(), turnTimeout)
	defer cancel()

	res, err := c.chat.HandleMessage(ctx, &req)
	if err != nil {
		c.log.Error(constant.ModuleWebsocket, "turn failed", map[string]interface{}{
			"conversation_id": c.ConversationID,
			"error":           err.Error(),
		})
		c.sendJSON(wsError{Error: "something went wrong, please try again"})
		return
	}
	c.sendJSON(res)
}

func (c *Client) sendJSON(v interface{}) {
	data, err := json.Marshal(v)
	if err != nil {
		return
	}
	select {
	case c.Send <- data:
	default:
		// Slow consumer. Drop the frame rather than block the read loop.
		c.log.Warn(constant.ModuleWebsocket, "send buffer full, dropping frame", map[string]interface{}{
			"conversation_id": c.ConversationID,
		})
	}
}

// writePump pumps outbound frames to the websocket connection.
func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.Conn.Close()
	}()

	for {
		select {
		case frame, ok := <-c.Send:
			c.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				c.Conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.Conn.WriteMessage(websocket.TextMessage, frame); err != nil {
				return
			}
		case <-ticker.C:
			c.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.Conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
