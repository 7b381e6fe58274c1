package workflow

import (
	"context"

	"phongthuy-chatbot-be/pkg/chat/state"
)

// lookupItem fetches a feng-shui item. Exact name match first; when the
// user's wording doesn't match a row, semantic search plus rerank maps
// it onto the closest known item.
func (e *Engine) lookupItem(ctx context.Context, cc *state.ChatContext) error {
	query := *cc.Entities.VatPham

	vatPham := e.tools.GetVatPham(ctx, cc, query)
	if vatPham == nil {
		candidate := e.tools.SearchVatPham(ctx, cc, query)
		if candidate == nil {
			return nil
		}
		cc.SetResult(state.ResultSearchMatch, candidate)
		vatPham = e.tools.GetVatPham(ctx, cc, candidate.Name)
	}

	if vatPham != nil {
		cc.SetResult(state.ResultVatPham, vatPham)
	}
	return nil
}
