package memory

import (
	"time"

	"phongthuy-chatbot-be/pkg/chat/state"

	"github.com/patrickmn/go-cache"
)

type SessionRepository struct {
	cache *cache.Cache
}

func NewSessionRepository() *SessionRepository {
	// Create a cache with a default expiration time of 1 hour, and which
	// purges expired items every 10 minutes
	c := cache.New(1*time.Hour, 10*time.Minute)
	return &SessionRepository{
		cache: c,
	}
}

func (r *SessionRepository) Save(ctx *state.ChatContext) {
	r.cache.Set(ctx.SessionID, ctx, cache.DefaultExpiration)
}

func (r *SessionRepository) Get(sessionID string) (*state.ChatContext, bool) {
	if x, found := r.cache.Get(sessionID); found {
		return x.(*state.ChatContext), true
	}
	return nil, false
}

func (r *SessionRepository) Delete(sessionID string) {
	r.cache.Delete(sessionID)
}
