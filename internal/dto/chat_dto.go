package dto

// ChatRequest is one user turn, over REST or websocket.
type ChatRequest struct {
	ConversationID string `json:"conversation_id" validate:"omitempty,uuid4"`
	Message        string `json:"message" validate:"required,min=1,max=2000"`
}

// ChatReply mirrors bot.Reply for the wire.
type ChatReply struct {
	Type   string   `json:"type"`
	Title  string   `json:"title,omitempty"`
	Text   string   `json:"text"`
	Images []string `json:"images,omitempty"`
}

type ChatResponse struct {
	ConversationID string      `json:"conversation_id"`
	Replies        []ChatReply `json:"replies"`
}
