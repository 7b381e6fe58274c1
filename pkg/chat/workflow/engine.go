package workflow

import (
	"context"
	"fmt"
	"log"

	"phongthuy-chatbot-be/pkg/chat/state"
)

// Engine dispatches a resolved chat context to its intent's workflow.
// Workflows only run when every required entity is present; otherwise
// the synthesizer turns MissingInfo into a clarification question.
type Engine struct {
	tools  *Tools
	logger *log.Logger
}

func NewEngine(tools *Tools, logger *log.Logger) *Engine {
	if logger == nil {
		logger = log.Default()
	}
	return &Engine{tools: tools, logger: logger}
}

func (e *Engine) Run(ctx context.Context, cc *state.ChatContext) error {
	if len(cc.MissingInfo) > 0 || len(cc.YearCandidates) > 0 {
		// Nothing to look up yet; this turn becomes a question back to the user.
		return nil
	}

	switch cc.Intent {
	case state.IntentAnalyzeHouse:
		return e.analyzeHouse(ctx, cc)
	case state.IntentComparePeople:
		return e.comparePeople(ctx, cc)
	case state.IntentLookupItem:
		return e.lookupItem(ctx, cc)
	case state.IntentLookupDirection:
		return e.lookupDirection(ctx, cc)
	case state.IntentLookupNamSinh:
		return e.lookupNamSinh(ctx, cc)
	case state.IntentLookupLoanDau:
		return e.lookupLoanDau(ctx, cc)
	case state.IntentGreeting, state.IntentUnknown, state.IntentError:
		return nil
	default:
		return fmt.Errorf("no workflow for intent %q", cc.Intent)
	}
}
