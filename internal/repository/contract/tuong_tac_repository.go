package contract

import (
	"context"

	"phongthuy-chatbot-be/internal/model"
)

// TuongTacRepository serves five-element interaction rules between
// destinies and directions, and between two destinies.
type TuongTacRepository interface {
	FindMenhHuong(ctx context.Context, menhGiaChu string, huongNha string) (*model.MenhHuongRule, error)
	// FindMenhMenh matches the pair in either stored order.
	FindMenhMenh(ctx context.Context, napAm1 string, napAm2 string) (*model.MenhMenhRule, error)
}
