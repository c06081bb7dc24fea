package repository

import (
	"context"

	"storefront/internal/domain/model"

	"gorm.io/gorm"
)

type ViewLogGormRepository struct {
	db *gorm.DB
}

func NewViewLogGormRepository(db *gorm.DB) *ViewLogGormRepository {
	return &ViewLogGormRepository{db: db}
}

func (r *ViewLogGormRepository) Create(ctx context.Context, log model.ProductViewLog) error {
	return r.db.WithContext(ctx).Create(&log).Error
}

// 商品ごとに最新の閲覧時刻でまとめ、新しい順にproduct_idを返す
func (r *ViewLogGormRepository) ListRecentlyViewedProductIDs(ctx context.Context, userID int64, limit int) ([]int64, error) {
	var ids []int64

	err := r.db.WithContext(ctx).
		Model(&model.ProductViewLog{}).
		Select("product_id").
		Where("user_id = ?", userID).
		Group("product_id").
		Order("MAX(viewed_at) desc").
		Limit(limit).
		Pluck("product_id", &ids).Error

	if err != nil {
		return []int64{}, err
	}
	return ids, nil
}
