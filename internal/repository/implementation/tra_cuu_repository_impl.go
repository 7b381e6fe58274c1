package implementation

import (
	"context"
	"errors"

	"phongthuy-chatbot-be/internal/model"
	"phongthuy-chatbot-be/internal/repository/contract"

	"gorm.io/gorm"
)

type TraCuuRepositoryImpl struct {
	db *gorm.DB
}

func NewTraCuuRepository(db *gorm.DB) contract.TraCuuRepository {
	return &TraCuuRepositoryImpl{db: db}
}

func (r *TraCuuRepositoryImpl) FindHuong(ctx context.Context, tenHuong string) (*model.Huong, error) {
	var m model.Huong
	err := r.db.WithContext(ctx).
		Where("tenhuong = ?", tenHuong).
		First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &m, nil
}

func (r *TraCuuRepositoryImpl) FindVatPham(ctx context.Context, tenVatPham string) (*model.VatPhamPhongThuy, error) {
	var m model.VatPhamPhongThuy
	err := r.db.WithContext(ctx).
		Where("tenvatpham = ?", tenVatPham).
		First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &m, nil
}

func (r *TraCuuRepositoryImpl) ListVatPham(ctx context.Context) ([]*model.VatPhamPhongThuy, error) {
	var models []*model.VatPhamPhongThuy
	if err := r.db.WithContext(ctx).Find(&models).Error; err != nil {
		return nil, err
	}
	return models, nil
}

func (r *TraCuuRepositoryImpl) FindPhiTinh(ctx context.Context, namDuongLich int) (*model.PhiTinhLuuNien, error) {
	var m model.PhiTinhLuuNien
	err := r.db.WithContext(ctx).
		Where("nam_duonglich = ?", namDuongLich).
		First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &m, nil
}
