package contract

import (
	"context"

	"phongthuy-chatbot-be/internal/model"
)

// TraCuuRepository serves the simple reference tables: directions,
// feng-shui items and yearly flying stars.
type TraCuuRepository interface {
	FindHuong(ctx context.Context, tenHuong string) (*model.Huong, error)
	FindVatPham(ctx context.Context, tenVatPham string) (*model.VatPhamPhongThuy, error)
	ListVatPham(ctx context.Context) ([]*model.VatPhamPhongThuy, error)
	FindPhiTinh(ctx context.Context, namDuongLich int) (*model.PhiTinhLuuNien, error)
}
