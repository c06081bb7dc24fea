package repository

import (
	"context"
	"errors"

	"storefront/internal/domain/model"
	repo "storefront/internal/repository"

	"gorm.io/gorm"
)

type ShippingOptionGormRepository struct {
	db *gorm.DB
}

func NewShippingOptionGormRepository(db *gorm.DB) *ShippingOptionGormRepository {
	return &ShippingOptionGormRepository{db: db}
}

func (r *ShippingOptionGormRepository) List(ctx context.Context) ([]model.ShippingOption, error) {
	var options []model.ShippingOption
	if err := r.db.WithContext(ctx).Order("id asc").Find(&options).Error; err != nil {
		return []model.ShippingOption{}, err
	}
	return options, nil
}

func (r *ShippingOptionGormRepository) FindByID(ctx context.Context, id int64) (model.ShippingOption, error) {
	var o model.ShippingOption
	err := r.db.WithContext(ctx).First(&o, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.ShippingOption{}, repo.ErrNotFound
	}
	if err != nil {
		return model.ShippingOption{}, err
	}
	return o, nil
}

func (r *ShippingOptionGormRepository) Count(ctx context.Context) (int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&model.ShippingOption{}).Count(&total).Error; err != nil {
		return 0, err
	}
	return total, nil
}

func (r *ShippingOptionGormRepository) CreateBulk(ctx context.Context, options []model.ShippingOption) error {
	if len(options) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&options).Error
}
