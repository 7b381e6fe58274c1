package implementation

import (
	"context"
	"errors"
	"fmt"

	"phongthuy-chatbot-be/internal/model"
	"phongthuy-chatbot-be/internal/repository/contract"

	"gorm.io/gorm"
)

type BanMenhRepositoryImpl struct {
	db *gorm.DB
}

func NewBanMenhRepository(db *gorm.DB) contract.BanMenhRepository {
	return &BanMenhRepositoryImpl{db: db}
}

func (r *BanMenhRepositoryImpl) FindCungMenh(ctx context.Context, namSinh int, gioiTinh string) (*model.CungMenhLookup, error) {
	var m model.CungMenhLookup
	err := r.db.WithContext(ctx).
		Where("namsinh_amlich = ? AND gioitinh = ?", namSinh, gioiTinh).
		First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &m, nil
}

func (r *BanMenhRepositoryImpl) FindMenh(ctx context.Context, tenMenh string) (*model.Menh, error) {
	var m model.Menh
	err := r.db.WithContext(ctx).
		Where("tenmenh = ?", tenMenh).
		First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &m, nil
}

func (r *BanMenhRepositoryImpl) FindNapAm(ctx context.Context, namSinh int) (*model.NapAm, error) {
	var m model.NapAm
	// The example-years column holds a comma-separated list, so match by substring.
	err := r.db.WithContext(ctx).
		Where("cacnamsinh_vidu LIKE ?", fmt.Sprintf("%%%d%%", namSinh)).
		First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &m, nil
}
