package types

import (
	"time"

	"github.com/google/uuid"
)

type MessageRole string

const (
	RoleUser   MessageRole = "user"
	RoleModel  MessageRole = "model"
	RoleSystem MessageRole = "system"
)

// ChatTurn is a single conversational turn in the wire format the agent
// backend expects. Only user and model turns are ever sent.
type ChatTurn struct {
	Role  MessageRole `json:"role"`
	Parts string      `json:"parts"`
}

// Message is one entry in a chat session's transcript. Messages are
// append-only and never mutated after creation; system messages are
// local-only notices and are excluded from the wire history.
type Message struct {
	ID        uuid.UUID   `json:"id"`
	Role      MessageRole `json:"role"`
	Content   string      `json:"content"`
	Sources   []Citation  `json:"sources,omitempty"`
	CreatedAt time.Time   `json:"created_at"`
}

// Citation is a review excerpt the agent grounded its reply on.
type Citation struct {
	LocationName string  `json:"location_name"`
	ReviewText   string  `json:"review_text"`
	Author       *string `json:"author"`
}

// ChatRequest is the body for POST /vibes/agent/chat.
type ChatRequest struct {
	Query       string     `json:"query"`
	City        string     `json:"city"`
	ChatHistory []ChatTurn `json:"chat_history"`
}

// AgentResponse is the reply shape shared by the chat and tour endpoints.
type AgentResponse struct {
	Reply   string     `json:"reply"`
	Sources []Citation `json:"sources"`
}
