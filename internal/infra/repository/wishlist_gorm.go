package repository

import (
	"context"
	"errors"

	"storefront/internal/domain/model"
	repo "storefront/internal/repository"

	"gorm.io/gorm"
)

type WishlistGormRepository struct {
	db *gorm.DB
}

func NewWishlistGormRepository(db *gorm.DB) *WishlistGormRepository {
	return &WishlistGormRepository{db: db}
}

func (r *WishlistGormRepository) Create(ctx context.Context, entry model.Wishlist) (model.Wishlist, error) {
	if err := r.db.WithContext(ctx).Create(&entry).Error; err != nil {
		return model.Wishlist{}, err
	}
	return entry, nil
}

func (r *WishlistGormRepository) FindByUserAndProduct(ctx context.Context, userID int64, productID int64) (model.Wishlist, error) {
	var w model.Wishlist
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND product_id = ?", userID, productID).
		First(&w).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Wishlist{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Wishlist{}, err
	}
	return w, nil
}

// 追加が新しい順
func (r *WishlistGormRepository) ListByUserID(ctx context.Context, userID int64) ([]model.Wishlist, error) {
	var entries []model.Wishlist
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("added_at desc").Order("id desc").
		Find(&entries).Error
	if err != nil {
		return []model.Wishlist{}, err
	}
	return entries, nil
}

func (r *WishlistGormRepository) DeleteByUserAndProduct(ctx context.Context, userID int64, productID int64) error {
	res := r.db.WithContext(ctx).
		Where("user_id = ? AND product_id = ?", userID, productID).
		Delete(&model.Wishlist{})

	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

func (r *WishlistGormRepository) CountByUserID(ctx context.Context, userID int64) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.Wishlist{}).
		Where("user_id = ?", userID).
		Count(&count).Error
	if err != nil {
		return 0, err
	}
	return count, nil
}
