package workflow

import (
	"context"

	"phongthuy-chatbot-be/pkg/chat/state"
)

// lookupDirection fetches a direction's element plus this year's
// flying-star sectors so the answer can mention whether the direction
// is currently favorable.
func (e *Engine) lookupDirection(ctx context.Context, cc *state.ChatContext) error {
	huongNha := *cc.Entities.HuongNha

	if huong := e.tools.GetHuong(ctx, cc, huongNha); huong != nil {
		cc.SetResult(state.ResultHuong, huong)
	}

	if phiTinh := e.tools.GetPhiTinh(ctx, cc, e.tools.CurrentYear()); phiTinh != nil {
		cc.SetResult(state.ResultPhiTinh, phiTinh)
	}
	return nil
}
