package contract

import (
	"context"

	"phongthuy-chatbot-be/internal/model"
)

// BanMenhRepository resolves a person's destiny attributes from their birth year.
type BanMenhRepository interface {
	// FindCungMenh looks up the Bát Trạch cung mệnh by lunar birth year and gender ("nam"/"nữ").
	FindCungMenh(ctx context.Context, namSinh int, gioiTinh string) (*model.CungMenhLookup, error)
	// FindMenh looks up the elemental detail by element name ("Kim", "Thổ", ...).
	FindMenh(ctx context.Context, tenMenh string) (*model.Menh, error)
	// FindNapAm finds the nạp âm whose example-years column mentions the birth year.
	FindNapAm(ctx context.Context, namSinh int) (*model.NapAm, error)
}
