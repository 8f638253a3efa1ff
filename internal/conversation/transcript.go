package conversation

import (
	"time"

	"github.com/google/uuid"

	"github.com/FACorreiaa/go-vibe-navigator/internal/types"
)

// DefaultGreeting is the local-only notice seeding a fresh transcript.
const DefaultGreeting = "Hi! I'm your Vibe AI Assistant. Ask me to find a cozy cafe, plan a day out, or discover spots that match your mood!"

// Transcript is the ordered, append-only history of a chat session.
type Transcript []types.Message

// NewTranscript returns a transcript seeded with the system greeting.
func NewTranscript() Transcript {
	return Transcript{NewMessage(types.RoleSystem, DefaultGreeting)}
}

// NewMessage builds an immutable transcript entry with a fresh ID.
func NewMessage(role types.MessageRole, content string) types.Message {
	return types.Message{
		ID:        uuid.New(),
		Role:      role,
		Content:   content,
		CreatedAt: time.Now(),
	}
}

// Append returns a new transcript with msg appended. The receiver is not
// mutated; prior entries keep their order.
func (t Transcript) Append(msg types.Message) Transcript {
	out := make(Transcript, len(t), len(t)+1)
	copy(out, t)
	return append(out, msg)
}

// WireHistory converts the transcript into the chat_history wire format:
// system notices are dropped, user and model turns map to {role, parts}
// in their original order.
func (t Transcript) WireHistory() []types.ChatTurn {
	turns := make([]types.ChatTurn, 0, len(t))
	for _, msg := range t {
		if msg.Role != types.RoleUser && msg.Role != types.RoleModel {
			continue
		}
		turns = append(turns, types.ChatTurn{Role: msg.Role, Parts: msg.Content})
	}
	return turns
}
