package session

import (
	"context"
	"log/slog"
	"strings"
	"sync"

	"github.com/FACorreiaa/go-vibe-navigator/internal/client"
	"github.com/FACorreiaa/go-vibe-navigator/internal/conversation"
	"github.com/FACorreiaa/go-vibe-navigator/internal/types"
)

// FallbackReply is appended as a model message when the agent call fails.
const FallbackReply = "Oops! Something went wrong. I'm having a bit of trouble connecting right now. Please try again in a moment."

// ChatSession is the chat interaction surface: it owns the transcript,
// gates one outstanding request at a time, and applies the city policy
// before every agent call. A pending request always settles; results that
// arrive after a Reset are discarded by generation counter.
type ChatSession struct {
	mu       sync.Mutex
	inFlight bool
	gen      uint64

	transcript conversation.Transcript
	policy     conversation.CityPolicy
	agent      client.AgentClient
	logger     *slog.Logger
}

func NewChatSession(agent client.AgentClient, policy conversation.CityPolicy, logger *slog.Logger) *ChatSession {
	return &ChatSession{
		transcript: conversation.NewTranscript(),
		policy:     policy,
		agent:      agent,
		logger:     logger,
	}
}

// Send submits one user message. The wire history sent to the agent is
// the transcript as it stood before this message, matching the reference
// behavior. On success the model reply (with sources) is appended and
// returned; on failure a fallback model message is appended and the
// underlying error is returned alongside it.
func (s *ChatSession) Send(ctx context.Context, text string) (types.Message, error) {
	if strings.TrimSpace(text) == "" {
		return types.Message{}, ErrEmptyMessage
	}

	s.mu.Lock()
	if s.inFlight {
		s.mu.Unlock()
		return types.Message{}, ErrRequestInFlight
	}
	s.inFlight = true
	gen := s.gen
	history := s.transcript.WireHistory()
	s.transcript = s.transcript.Append(conversation.NewMessage(types.RoleUser, text))
	s.mu.Unlock()

	city := s.policy.Resolve(text)
	resp, err := s.agent.Chat(ctx, text, city, history)

	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.gen {
		return types.Message{}, ErrSuperseded
	}
	s.inFlight = false

	if err != nil {
		s.logger.ErrorContext(ctx, "Failed to get response from agent",
			slog.String("city", city),
			slog.Any("error", err),
		)
		fallback := conversation.NewMessage(types.RoleModel, FallbackReply)
		s.transcript = s.transcript.Append(fallback)
		return fallback, err
	}

	reply := conversation.NewMessage(types.RoleModel, resp.Reply)
	reply.Sources = resp.Sources
	s.transcript = s.transcript.Append(reply)
	return reply, nil
}

// Messages returns a snapshot of the transcript.
func (s *ChatSession) Messages() []types.Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]types.Message, len(s.transcript))
	copy(out, s.transcript)
	return out
}

// Busy reports whether a request is pending on this surface.
func (s *ChatSession) Busy() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inFlight
}

// Reset starts a fresh transcript. A request still in flight keeps
// running but its completion is dropped.
func (s *ChatSession) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.gen++
	s.inFlight = false
	s.transcript = conversation.NewTranscript()
}
