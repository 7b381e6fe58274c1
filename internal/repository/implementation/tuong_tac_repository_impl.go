package implementation

import (
	"context"
	"errors"

	"phongthuy-chatbot-be/internal/model"
	"phongthuy-chatbot-be/internal/repository/contract"

	"gorm.io/gorm"
)

type TuongTacRepositoryImpl struct {
	db *gorm.DB
}

func NewTuongTacRepository(db *gorm.DB) contract.TuongTacRepository {
	return &TuongTacRepositoryImpl{db: db}
}

func (r *TuongTacRepositoryImpl) FindMenhHuong(ctx context.Context, menhGiaChu string, huongNha string) (*model.MenhHuongRule, error) {
	var m model.MenhHuongRule
	err := r.db.WithContext(ctx).
		Where("menhgiachu = ? AND huongnha = ?", menhGiaChu, huongNha).
		First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &m, nil
}

func (r *TuongTacRepositoryImpl) FindMenhMenh(ctx context.Context, napAm1 string, napAm2 string) (*model.MenhMenhRule, error) {
	var m model.MenhMenhRule
	// Rules are stored in a single order, so check both orderings.
	err := r.db.WithContext(ctx).
		Where("(napam1 = ? AND napam2 = ?) OR (napam1 = ? AND napam2 = ?)",
			napAm1, napAm2, napAm2, napAm1).
		First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &m, nil
}
