package workflow

import (
	"context"

	"phongthuy-chatbot-be/pkg/chat/search"
	"phongthuy-chatbot-be/pkg/chat/state"
)

// lookupLoanDau maps a free-text description of the house's surroundings
// onto a known landform via semantic search, then fetches the full record
// from whichever table the match came from.
func (e *Engine) lookupLoanDau(ctx context.Context, cc *state.ChatContext) error {
	query := *cc.Entities.KeywordLoanDau

	candidate := e.tools.SearchLoanDau(ctx, cc, query)
	if candidate == nil {
		return nil
	}
	cc.SetResult(state.ResultSearchMatch, candidate)

	switch candidate.Category {
	case search.CategorySatKhi:
		if satKhi := e.tools.GetSatKhi(ctx, cc, candidate.Name); satKhi != nil {
			cc.SetResult(state.ResultSatKhi, satKhi)
		}
	case search.CategoryTheDat:
		if catTuong := e.tools.GetCatTuong(ctx, cc, candidate.Name); catTuong != nil {
			cc.SetResult(state.ResultCatTuong, catTuong)
		}
	}
	return nil
}
