package state

import (
	"fmt"
	"log"

	"phongthuy-chatbot-be/pkg/canchi"
)

// Tracker merges a new turn's classification into the session context.
// It decides whether the turn continues a pending question or starts a
// fresh request, and resolves birth-year aliases into concrete years.
type Tracker struct {
	resolver *canchi.Resolver
	logger   *log.Logger
}

func NewTracker(resolver *canchi.Resolver, logger *log.Logger) *Tracker {
	if logger == nil {
		logger = log.Default()
	}
	return &Tracker{resolver: resolver, logger: logger}
}

// Resolve applies one classified turn to the session context in place.
// The context's MissingInfo is recomputed afterwards.
func (t *Tracker) Resolve(ctx *ChatContext, detected Intent, entities ExtractedEntities) {
	ctx.ResetTurn()

	t.resolveYearAliases(ctx, &entities)

	if t.isContinuation(ctx, detected) {
		// Follow-up answer to a clarification question: keep the pending
		// intent and overlay the new entities on what we already have.
		t.logger.Printf("[Tracker] continuation of intent %s for session %s", ctx.Intent, ctx.SessionID)
		ctx.Entities = ctx.Entities.Merge(entities)
	} else {
		ctx.Intent = detected
		ctx.Entities = entities
	}

	ctx.ComputeMissing()
}

// isContinuation reports whether this turn answers a pending clarification.
// The newly detected intent is irrelevant here: a bare answer like "nam"
// classifies poorly, yet it is exactly what the open question asked for.
// Only the pending intent must be a real workflow.
func (t *Tracker) isContinuation(ctx *ChatContext, detected Intent) bool {
	if len(ctx.MissingInfo) == 0 {
		return false
	}
	switch ctx.Intent {
	case "", IntentUnknown, IntentGreeting:
		return false
	}
	return true
}

// resolveYearAliases turns can-chi designations, zodiac names and two-digit
// shorthands into concrete years before the merge.
func (t *Tracker) resolveYearAliases(ctx *ChatContext, e *ExtractedEntities) {
	// The standalone alias from LOOKUP_NAMSINH feeds the first person slot.
	if e.NamSinhAlias != nil && e.NamSinhAlias1 == nil && e.NamSinh1 == nil {
		e.NamSinhAlias1 = e.NamSinhAlias
	}

	e.NamSinh1 = t.resolveSlot(ctx, e.NamSinh1, e.NamSinhAlias1, KeyNamSinh1)
	e.NamSinh2 = t.resolveSlot(ctx, e.NamSinh2, e.NamSinhAlias2, KeyNamSinh2)
}

func (t *Tracker) resolveSlot(ctx *ChatContext, year *int, alias *string, key string) *int {
	// Two-digit years like "sinh năm 91" come through as literal numbers.
	if year != nil && *year < 100 {
		if resolved, ok := t.resolver.ResolveToYear(fmt.Sprintf("%02d", *year)); ok {
			t.logger.Printf("[Tracker] resolved shorthand year %d -> %d", *year, resolved)
			return &resolved
		}
		return nil
	}
	if year != nil || alias == nil {
		return year
	}

	if resolved, ok := t.resolver.ResolveToYear(*alias); ok {
		t.logger.Printf("[Tracker] resolved alias %q -> %d", *alias, resolved)
		return &resolved
	}

	// A bare zodiac name matches one year per 12 in the supported window.
	// Surface the candidates so the caller can ask which one is meant.
	if candidates := t.resolver.ResolveToYearList(*alias); len(candidates) > 0 {
		t.logger.Printf("[Tracker] alias %q is ambiguous, %d candidates", *alias, len(candidates))
		ctx.YearCandidates = candidates
		ctx.CandidateField = key
	}
	return nil
}
