package implementation

import (
	"context"
	"errors"

	"phongthuy-chatbot-be/internal/model"
	"phongthuy-chatbot-be/internal/repository/contract"

	"gorm.io/gorm"
)

type LoanDauRepositoryImpl struct {
	db *gorm.DB
}

func NewLoanDauRepository(db *gorm.DB) contract.LoanDauRepository {
	return &LoanDauRepositoryImpl{db: db}
}

func (r *LoanDauRepositoryImpl) FindSatKhi(ctx context.Context, tenSatKhi string) (*model.NgoaiCanhSatKhi, error) {
	var m model.NgoaiCanhSatKhi
	err := r.db.WithContext(ctx).
		Where("tensatkhi = ?", tenSatKhi).
		First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &m, nil
}

func (r *LoanDauRepositoryImpl) ListSatKhi(ctx context.Context) ([]*model.NgoaiCanhSatKhi, error) {
	var models []*model.NgoaiCanhSatKhi
	if err := r.db.WithContext(ctx).Find(&models).Error; err != nil {
		return nil, err
	}
	return models, nil
}

func (r *LoanDauRepositoryImpl) ListCatTuong(ctx context.Context) ([]*model.LoanDauCatTuong, error) {
	var models []*model.LoanDauCatTuong
	if err := r.db.WithContext(ctx).Find(&models).Error; err != nil {
		return nil, err
	}
	return models, nil
}

func (r *LoanDauRepositoryImpl) FindCatTuong(ctx context.Context, tenTheDat string) (*model.LoanDauCatTuong, error) {
	var m model.LoanDauCatTuong
	err := r.db.WithContext(ctx).
		Where("tenthedat = ?", tenTheDat).
		First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &m, nil
}
