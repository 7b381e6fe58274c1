package contract

import "phongthuy-chatbot-be/pkg/chat/state"

// SessionRepository stores conversation contexts keyed by session id.
// Implementations may expire idle sessions.
type SessionRepository interface {
	Save(ctx *state.ChatContext)
	Get(sessionID string) (*state.ChatContext, bool)
	Delete(sessionID string)
}
