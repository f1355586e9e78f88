package websocket

import (
	"sync"

	"restobot-be/internal/constant"
	"restobot-be/internal/pkg/logger"
)

// Hub tracks live chat connections keyed by conversation ID. A conversation
// may be open on several devices at once.
type Hub struct {
	clients map[string][]*Client

	register   chan *Client
	unregister chan *Client
	shutdown   chan struct{}

	mu sync.RWMutex

	logger logger.ILogger
}

func NewHub(log logger.ILogger) *Hub {
	return &Hub{
		register:   make(chan *Client),
		unregister: make(chan *Client),
		shutdown:   make(chan struct{}),
		clients:    make(map[string][]*Client),
		logger:     log,
	}
}

func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			h.clients[client.ConversationID] = append(h.clients[client.ConversationID], client)
			h.mu.Unlock()
			h.logger.Info(constant.ModuleWebsocket, "client registered", map[string]interface{}{
				"conversation_id": client.ConversationID,
			})

		case client := <-h.unregister:
			h.mu.Lock()
			clients := h.clients[client.ConversationID]
			for i, c := range clients {
				if c == client {
					h.clients[client.ConversationID] = append(clients[:i], clients[i+1:]...)
					break
				}
			}
			if len(h.clients[client.ConversationID]) == 0 {
				delete(h.clients, client.ConversationID)
			}
			h.mu.Unlock()
			close(client.Send)
			h.logger.Info(constant.ModuleWebsocket, "client unregistered", map[string]interface{}{
				"conversation_id": client.ConversationID,
			})

		case <-h.shutdown:
			h.mu.Lock()
			for _, clients := range h.clients {
				for _, c := range clients {
					c.Conn.Close()
				}
			}
			h.clients = make(map[string][]*Client)
			h.mu.Unlock()
			return
		}
	}
}

// ActiveConversations reports how many conversations currently have at
// least one open connection.
func (h *Hub) ActiveConversations() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// Shutdown closes every open connection and stops Run.
func (h *Hub) Shutdown() {
	close(h.shutdown)
}
