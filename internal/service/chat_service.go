package service

import (
	"context"
	"fmt"

	"phongthuy-chatbot-be/internal/dto"
	"phongthuy-chatbot-be/internal/pkg/logger"
	"phongthuy-chatbot-be/internal/pkg/serverutils"
	"phongthuy-chatbot-be/internal/repository/contract"
	"phongthuy-chatbot-be/pkg/chat/response"
	"phongthuy-chatbot-be/pkg/chat/state"

	"github.com/google/uuid"
)

// Classifier resolves one message into an intent and its entities.
type Classifier interface {
	Classify(ctx context.Context, message string) (state.Intent, state.ExtractedEntities, error)
}

// Engine runs the lookup workflow for a resolved context.
type Engine interface {
	Run(ctx context.Context, cc *state.ChatContext) error
}

// Synthesizer produces the final reply text.
type Synthesizer interface {
	Respond(ctx context.Context, cc *state.ChatContext, userMessage string) string
}

type IChatService interface {
	CreateSession(ctx context.Context) (*dto.CreateSessionResponse, error)
	SendChat(ctx context.Context, req *dto.ChatRequest) (*dto.ChatResponse, error)
	DeleteSession(ctx context.Context, sessionID string) error
}

type chatService struct {
	sessions    contract.SessionRepository
	classifier  Classifier
	tracker     *state.Tracker
	engine      Engine
	synthesizer Synthesizer
	logger      logger.ILogger
}

func NewChatService(
	sessions contract.SessionRepository,
	classifier Classifier,
	tracker *state.Tracker,
	engine Engine,
	synthesizer Synthesizer,
	log logger.ILogger,
) IChatService {
	return &chatService{
		sessions:    sessions,
		classifier:  classifier,
		tracker:     tracker,
		engine:      engine,
		synthesizer: synthesizer,
		logger:      log,
	}
}

func (s *chatService) CreateSession(ctx context.Context) (*dto.CreateSessionResponse, error) {
	sessionID := uuid.NewString()
	s.sessions.Save(state.NewChatContext(sessionID))

	s.logger.Info("ChatService", "session created", map[string]interface{}{
		"session_id": sessionID,
	})
	return &dto.CreateSessionResponse{SessionID: sessionID}, nil
}

func (s *chatService) SendChat(ctx context.Context, req *dto.ChatRequest) (res *dto.ChatResponse, err error) {
	cc, found := s.sessions.Get(req.SessionID)
	if !found {
		return nil, fmt.Errorf("session %s: %w", req.SessionID, serverutils.ErrNotFound)
	}

	// A panic anywhere below means the session state can no longer be
	// trusted: drop it and apologize instead of taking the server down.
	defer func() {
		if r := recover(); r != nil {
			s.logger.Error("ChatService", "panic during chat turn, dropping session", map[string]interface{}{
				"session_id": req.SessionID,
				"panic":      fmt.Sprintf("%v", r),
			})
			s.sessions.Delete(req.SessionID)
			res = &dto.ChatResponse{
				SessionID: req.SessionID,
				Intent:    string(state.IntentError),
				Reply:     response.FallbackResponse,
			}
			err = nil
		}
	}()

	detected, entities, classifyErr := s.classifier.Classify(ctx, req.Message)
	if detected == state.IntentError {
		// The model is unreachable. Leave the session untouched so the
		// user can retry the same turn later.
		s.logger.Error("ChatService", "classification unavailable", map[string]interface{}{
			"session_id": req.SessionID,
			"error":      classifyErr,
		})
		return &dto.ChatResponse{
			SessionID: req.SessionID,
			Intent:    string(state.IntentError),
			Reply:     response.FallbackResponse,
		}, nil
	}

	s.tracker.Resolve(cc, detected, entities)

	if runErr := s.engine.Run(ctx, cc); runErr != nil {
		// The workflow bailed partway, so the context may hold a half
		// written turn. Drop the session like the panic path does.
		s.logger.Error("ChatService", "workflow failed, dropping session", map[string]interface{}{
			"session_id": req.SessionID,
			"error":      runErr,
		})
		s.sessions.Delete(req.SessionID)
		return &dto.ChatResponse{
			SessionID: req.SessionID,
			Intent:    string(state.IntentError),
			Reply:     response.FallbackResponse,
		}, nil
	}

	reply := s.synthesizer.Respond(ctx, cc, req.Message)
	s.sessions.Save(cc)

	s.logger.Info("ChatService", "chat turn completed", map[string]interface{}{
		"session_id":   req.SessionID,
		"intent":       string(cc.Intent),
		"missing_info": cc.MissingInfo,
		"tool_calls":   len(cc.ToolCalls),
	})

	return buildChatResponse(cc, reply), nil
}

func (s *chatService) DeleteSession(ctx context.Context, sessionID string) error {
	if _, found := s.sessions.Get(sessionID); !found {
		return fmt.Errorf("session %s: %w", sessionID, serverutils.ErrNotFound)
	}
	s.sessions.Delete(sessionID)

	s.logger.Info("ChatService", "session deleted", map[string]interface{}{
		"session_id": sessionID,
	})
	return nil
}

func buildChatResponse(cc *state.ChatContext, reply string) *dto.ChatResponse {
	toolCalls := make([]dto.ToolCallResponse, len(cc.ToolCalls))
	for i, tc := range cc.ToolCalls {
		toolCalls[i] = dto.ToolCallResponse{
			Tool:       tc.Tool,
			Status:     string(tc.Status),
			Detail:     tc.Detail,
			DurationMs: tc.Duration.Milliseconds(),
		}
	}
	return &dto.ChatResponse{
		SessionID:   cc.SessionID,
		Intent:      string(cc.Intent),
		Reply:       reply,
		MissingInfo: cc.MissingInfo,
		ToolCalls:   toolCalls,
	}
}
