package workflow

import (
	"context"

	"phongthuy-chatbot-be/internal/model"
	"phongthuy-chatbot-be/pkg/chat/state"

	"golang.org/x/sync/errgroup"
)

// comparePeople resolves both people's nạp âm and cung mệnh concurrently,
// then looks up the compatibility rule for the pair. Both years and both
// genders are required before this runs.
func (e *Engine) comparePeople(ctx context.Context, cc *state.ChatContext) error {
	namSinh1 := *cc.Entities.NamSinh1
	gioiTinh1 := *cc.Entities.GioiTinh1
	namSinh2 := *cc.Entities.NamSinh2
	gioiTinh2 := *cc.Entities.GioiTinh2

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		if napAm := e.tools.GetNapAm(gctx, cc, namSinh1); napAm != nil {
			cc.SetResult(state.ResultNapAm1, napAm)
		}
		if cm := e.tools.GetCungMenh(gctx, cc, namSinh1, gioiTinh1); cm != nil {
			cc.SetResult(state.ResultCungMenh1, cm)
		}
		return nil
	})

	g.Go(func() error {
		if napAm := e.tools.GetNapAm(gctx, cc, namSinh2); napAm != nil {
			cc.SetResult(state.ResultNapAm2, napAm)
		}
		if cm := e.tools.GetCungMenh(gctx, cc, namSinh2, gioiTinh2); cm != nil {
			cc.SetResult(state.ResultCungMenh2, cm)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}

	v1, ok1 := cc.Result(state.ResultNapAm1)
	v2, ok2 := cc.Result(state.ResultNapAm2)
	if !ok1 || !ok2 {
		return nil
	}
	napAm1 := v1.(*model.NapAm)
	napAm2 := v2.(*model.NapAm)

	if rule := e.tools.GetMenhMenh(ctx, cc, napAm1.Tennapam, napAm2.Tennapam); rule != nil {
		cc.SetResult(state.ResultMenhMenhRule, rule)
	}
	return nil
}
