package workflow

import (
	"context"

	"phongthuy-chatbot-be/pkg/chat/state"
)

// analyzeHouse runs the full house-direction analysis for one occupant:
// their Bát Trạch palace, their nạp âm and its element detail, the
// verdicts of both rule systems for the requested direction, and this
// year's flying-star sectors.
func (e *Engine) analyzeHouse(ctx context.Context, cc *state.ChatContext) error {
	namSinh := *cc.Entities.NamSinh1
	gioiTinh := *cc.Entities.GioiTinh1
	huongNha := *cc.Entities.HuongNha

	cungMenh := e.tools.GetCungMenh(ctx, cc, namSinh, gioiTinh)
	if cungMenh != nil {
		cc.SetResult(state.ResultCungMenh1, cungMenh)

		rule := e.tools.GetBatTrachRule(ctx, cc, cungMenh.Cungmenh, huongNha)
		if rule != nil {
			cc.SetResult(state.ResultBatTrachRule, rule)

			if detail := e.tools.GetCungViDetail(ctx, cc, rule.TencungviTaothanh); detail != nil {
				cc.SetResult(state.ResultCungViDetail, detail)
			}
		}
	}

	// The destiny element and its interaction rule both hang off the nạp âm.
	napAm := e.tools.GetNapAm(ctx, cc, namSinh)
	if napAm != nil {
		cc.SetResult(state.ResultNapAm1, napAm)

		if menh := e.tools.GetMenh(ctx, cc, napAm.Hanhnguhanh); menh != nil {
			cc.SetResult(state.ResultMenh1, menh)
		}
		if mh := e.tools.GetMenhHuong(ctx, cc, napAm.Hanhnguhanh, huongNha); mh != nil {
			cc.SetResult(state.ResultMenhHuongRule, mh)
		}
	}

	if huong := e.tools.GetHuong(ctx, cc, huongNha); huong != nil {
		cc.SetResult(state.ResultHuong, huong)
	}

	if phiTinh := e.tools.GetPhiTinh(ctx, cc, e.tools.CurrentYear()); phiTinh != nil {
		cc.SetResult(state.ResultPhiTinh, phiTinh)
	}

	return nil
}
