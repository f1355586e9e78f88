package websocket

import (
	"restobot-be/internal/pkg/logger"
	"restobot-be/internal/service"

	"github.com/gofiber/websocket/v2"
	"github.com/google/uuid"
)

// ServeChat handles one chat websocket connection. The conversation ID comes
// from the ?conversation_id query parameter; a fresh one is minted when the
// client does not supply one.
func ServeChat(hub *Hub, c *websocket.Conn, chat service.IChatService, log logger.ILogger) {
	conversationID := c.Query("conversation_id")
	if _, err := uuid.Parse(conversationID); err != nil {
		conversationID = uuid.NewString()
	}

	client := &Client{
		Hub:            hub,
		Conn:           c,
		ConversationID: conversationID,
		Send:           make(chan []byte, 256),
		chat:           chat,
		log:            log,
	}
	client.Hub.register <- client

	go client.writePump()
	// Tell the client which conversation it is pinned to.
	client.sendJSON(map[string]string{"conversation_id": conversationID})
	client.readPump()
}
