package implementation

import (
	"context"
	"errors"

	"phongthuy-chatbot-be/internal/model"
	"phongthuy-chatbot-be/internal/repository/contract"

	"gorm.io/gorm"
)

type BatTrachRepositoryImpl struct {
	db *gorm.DB
}

func NewBatTrachRepository(db *gorm.DB) contract.BatTrachRepository {
	return &BatTrachRepositoryImpl{db: db}
}

func (r *BatTrachRepositoryImpl) FindRule(ctx context.Context, cungMenh string, huongNha string) (*model.CungMenhHuongRule, error) {
	var m model.CungMenhHuongRule
	err := r.db.WithContext(ctx).
		Where("cungmenh_giachu = ? AND huongnha = ?", cungMenh, huongNha).
		First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &m, nil
}

func (r *BatTrachRepositoryImpl) FindCungViDetail(ctx context.Context, tenCung string) (*model.BatTrachCungVi, error) {
	var m model.BatTrachCungVi
	err := r.db.WithContext(ctx).
		Where("tencung = ?", tenCung).
		First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &m, nil
}
