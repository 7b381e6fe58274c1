package workflow

import (
	"context"

	"phongthuy-chatbot-be/pkg/chat/state"
)

// lookupNamSinh resolves everything a birth year alone can tell us.
// The element detail comes from the nạp âm's element. Cung mệnh depends
// on gender, so it is only looked up when the user provided one; the
// digest notes its absence otherwise.
func (e *Engine) lookupNamSinh(ctx context.Context, cc *state.ChatContext) error {
	namSinh := *cc.Entities.NamSinh1

	if napAm := e.tools.GetNapAm(ctx, cc, namSinh); napAm != nil {
		cc.SetResult(state.ResultNapAm1, napAm)

		if menh := e.tools.GetMenh(ctx, cc, napAm.Hanhnguhanh); menh != nil {
			cc.SetResult(state.ResultMenh1, menh)
		}
	}

	if cc.Entities.GioiTinh1 != nil {
		if cungMenh := e.tools.GetCungMenh(ctx, cc, namSinh, *cc.Entities.GioiTinh1); cungMenh != nil {
			cc.SetResult(state.ResultCungMenh1, cungMenh)
		}
	}
	return nil
}
