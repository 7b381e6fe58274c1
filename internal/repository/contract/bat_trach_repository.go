package contract

import (
	"context"

	"phongthuy-chatbot-be/internal/model"
)

// BatTrachRepository serves the eight-mansion rule tables.
type BatTrachRepository interface {
	FindRule(ctx context.Context, cungMenh string, huongNha string) (*model.CungMenhHuongRule, error)
	FindCungViDetail(ctx context.Context, tenCung string) (*model.BatTrachCungVi, error)
}
