package workflow

import (
	"context"
	"fmt"
	"log"
	"time"

	"phongthuy-chatbot-be/internal/model"
	"phongthuy-chatbot-be/internal/repository/contract"
	"phongthuy-chatbot-be/pkg/chat/search"
	"phongthuy-chatbot-be/pkg/chat/state"
)

const defaultToolTimeout = 10 * time.Second

// Searcher is the slice of the search orchestrator the workflows need.
type Searcher interface {
	FindLoanDau(ctx context.Context, query string) (*search.Candidate, error)
	FindVatPham(ctx context.Context, query string) (*search.Candidate, error)
}

// Tools wraps every lookup a workflow may perform. Each call is recorded
// on the chat context with its outcome, a failing tool never aborts the
// workflow, and every call runs under its own timeout.
type Tools struct {
	banMenh  contract.BanMenhRepository
	batTrach contract.BatTrachRepository
	tuongTac contract.TuongTacRepository
	traCuu   contract.TraCuuRepository
	loanDau  contract.LoanDauRepository
	searcher Searcher
	timeout  time.Duration
	logger   *log.Logger
	now      func() time.Time
}

func NewTools(
	banMenh contract.BanMenhRepository,
	batTrach contract.BatTrachRepository,
	tuongTac contract.TuongTacRepository,
	traCuu contract.TraCuuRepository,
	loanDau contract.LoanDauRepository,
	searcher Searcher,
	timeout time.Duration,
	logger *log.Logger,
) *Tools {
	if timeout <= 0 {
		timeout = defaultToolTimeout
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Tools{
		banMenh:  banMenh,
		batTrach: batTrach,
		tuongTac: tuongTac,
		traCuu:   traCuu,
		loanDau:  loanDau,
		searcher: searcher,
		timeout:  timeout,
		logger:   logger,
		now:      time.Now,
	}
}

// call runs one lookup, records its outcome and swallows failures.
// A nil result with no error means the tables simply have no row.
func call[T any](t *Tools, ctx context.Context, cc *state.ChatContext, name string, fn func(context.Context) (*T, error)) *T {
	callCtx, cancel := context.WithTimeout(ctx, t.timeout)
	defer cancel()

	start := time.Now()
	result, err := func() (out *T, callErr error) {
		defer func() {
			if r := recover(); r != nil {
				out = nil
				callErr = fmt.Errorf("panic: %v", r)
			}
		}()
		return fn(callCtx)
	}()
	elapsed := time.Since(start)

	switch {
	case err != nil:
		t.logger.Printf("[Tool] %s failed: %v", name, err)
		cc.RecordTool(name, state.ToolFailedException, err.Error(), elapsed)
		return nil
	case result == nil:
		cc.RecordTool(name, state.ToolFailedNoData, "", elapsed)
		return nil
	default:
		cc.RecordTool(name, state.ToolSuccess, "", elapsed)
		return result
	}
}

func (t *Tools) GetCungMenh(ctx context.Context, cc *state.ChatContext, namSinh int, gioiTinh string) *model.CungMenhLookup {
	return call(t, ctx, cc, "get_cung_menh", func(ctx context.Context) (*model.CungMenhLookup, error) {
		return t.banMenh.FindCungMenh(ctx, namSinh, gioiTinh)
	})
}

func (t *Tools) GetMenh(ctx context.Context, cc *state.ChatContext, tenMenh string) *model.Menh {
	return call(t, ctx, cc, "get_menh", func(ctx context.Context) (*model.Menh, error) {
		return t.banMenh.FindMenh(ctx, tenMenh)
	})
}

func (t *Tools) GetNapAm(ctx context.Context, cc *state.ChatContext, namSinh int) *model.NapAm {
	return call(t, ctx, cc, "get_nap_am", func(ctx context.Context) (*model.NapAm, error) {
		return t.banMenh.FindNapAm(ctx, namSinh)
	})
}

func (t *Tools) GetBatTrachRule(ctx context.Context, cc *state.ChatContext, cungMenh, huongNha string) *model.CungMenhHuongRule {
	return call(t, ctx, cc, "get_bat_trach_rule", func(ctx context.Context) (*model.CungMenhHuongRule, error) {
		return t.batTrach.FindRule(ctx, cungMenh, huongNha)
	})
}

func (t *Tools) GetCungViDetail(ctx context.Context, cc *state.ChatContext, tenCung string) *model.BatTrachCungVi {
	return call(t, ctx, cc, "get_cung_vi_detail", func(ctx context.Context) (*model.BatTrachCungVi, error) {
		return t.batTrach.FindCungViDetail(ctx, tenCung)
	})
}

func (t *Tools) GetMenhHuong(ctx context.Context, cc *state.ChatContext, menh, huongNha string) *model.MenhHuongRule {
	return call(t, ctx, cc, "get_menh_huong", func(ctx context.Context) (*model.MenhHuongRule, error) {
		return t.tuongTac.FindMenhHuong(ctx, menh, huongNha)
	})
}

func (t *Tools) GetMenhMenh(ctx context.Context, cc *state.ChatContext, napAm1, napAm2 string) *model.MenhMenhRule {
	return call(t, ctx, cc, "get_menh_menh", func(ctx context.Context) (*model.MenhMenhRule, error) {
		return t.tuongTac.FindMenhMenh(ctx, napAm1, napAm2)
	})
}

func (t *Tools) GetHuong(ctx context.Context, cc *state.ChatContext, tenHuong string) *model.Huong {
	return call(t, ctx, cc, "get_huong", func(ctx context.Context) (*model.Huong, error) {
		return t.traCuu.FindHuong(ctx, tenHuong)
	})
}

func (t *Tools) GetVatPham(ctx context.Context, cc *state.ChatContext, tenVatPham string) *model.VatPhamPhongThuy {
	return call(t, ctx, cc, "get_vat_pham", func(ctx context.Context) (*model.VatPhamPhongThuy, error) {
		return t.traCuu.FindVatPham(ctx, tenVatPham)
	})
}

func (t *Tools) GetPhiTinh(ctx context.Context, cc *state.ChatContext, namDuongLich int) *model.PhiTinhLuuNien {
	return call(t, ctx, cc, "get_phi_tinh", func(ctx context.Context) (*model.PhiTinhLuuNien, error) {
		return t.traCuu.FindPhiTinh(ctx, namDuongLich)
	})
}

func (t *Tools) GetSatKhi(ctx context.Context, cc *state.ChatContext, tenSatKhi string) *model.NgoaiCanhSatKhi {
	return call(t, ctx, cc, "get_sat_khi", func(ctx context.Context) (*model.NgoaiCanhSatKhi, error) {
		return t.loanDau.FindSatKhi(ctx, tenSatKhi)
	})
}

func (t *Tools) GetCatTuong(ctx context.Context, cc *state.ChatContext, tenTheDat string) *model.LoanDauCatTuong {
	return call(t, ctx, cc, "get_cat_tuong", func(ctx context.Context) (*model.LoanDauCatTuong, error) {
		return t.loanDau.FindCatTuong(ctx, tenTheDat)
	})
}

func (t *Tools) SearchLoanDau(ctx context.Context, cc *state.ChatContext, query string) *search.Candidate {
	return call(t, ctx, cc, "search_loan_dau", func(ctx context.Context) (*search.Candidate, error) {
		return t.searcher.FindLoanDau(ctx, query)
	})
}

func (t *Tools) SearchVatPham(ctx context.Context, cc *state.ChatContext, query string) *search.Candidate {
	return call(t, ctx, cc, "search_vat_pham", func(ctx context.Context) (*search.Candidate, error) {
		return t.searcher.FindVatPham(ctx, query)
	})
}

// CurrentYear is the solar year used for flying-star lookups.
func (t *Tools) CurrentYear() int {
	return t.now().Year()
}
