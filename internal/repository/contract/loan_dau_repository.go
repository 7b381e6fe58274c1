package contract

import (
	"context"

	"phongthuy-chatbot-be/internal/model"
)

// LoanDauRepository serves the external-landform tables, hostile and auspicious.
type LoanDauRepository interface {
	FindSatKhi(ctx context.Context, tenSatKhi string) (*model.NgoaiCanhSatKhi, error)
	FindCatTuong(ctx context.Context, tenTheDat string) (*model.LoanDauCatTuong, error)
	ListSatKhi(ctx context.Context) ([]*model.NgoaiCanhSatKhi, error)
	ListCatTuong(ctx context.Context) ([]*model.LoanDauCatTuong, error)
}
