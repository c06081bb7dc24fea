package repository

import (
	"context"
	"errors"

	"storefront/internal/domain/model"
	repo "storefront/internal/repository"

	"gorm.io/gorm"
)

type ReviewGormRepository struct {
	db *gorm.DB
}

func NewReviewGormRepository(db *gorm.DB) *ReviewGormRepository {
	return &ReviewGormRepository{db: db}
}

func (r *ReviewGormRepository) Create(ctx context.Context, review model.ProductReview) (model.ProductReview, error) {
	if err := r.db.WithContext(ctx).Create(&review).Error; err != nil {
		return model.ProductReview{}, err
	}
	return review, nil
}

func (r *ReviewGormRepository) Update(ctx context.Context, review model.ProductReview) error {
	res := r.db.WithContext(ctx).Model(&model.ProductReview{}).Where("id = ?", review.ID).Updates(map[string]interface{}{
		"rating":  review.Rating,
		"comment": review.Comment,
	})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

func (r *ReviewGormRepository) Delete(ctx context.Context, reviewID int64) error {
	res := r.db.WithContext(ctx).Delete(&model.ProductReview{}, reviewID)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

func (r *ReviewGormRepository) FindByID(ctx context.Context, reviewID int64) (model.ProductReview, error) {
	var rv model.ProductReview
	err := r.db.WithContext(ctx).First(&rv, reviewID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.ProductReview{}, repo.ErrNotFound
	}
	if err != nil {
		return model.ProductReview{}, err
	}
	return rv, nil
}

func (r *ReviewGormRepository) FindByUserAndProduct(ctx context.Context, userID int64, productID int64) (model.ProductReview, error) {
	var rv model.ProductReview
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND product_id = ?", userID, productID).
		First(&rv).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.ProductReview{}, repo.ErrNotFound
	}
	if err != nil {
		return model.ProductReview{}, err
	}
	return rv, nil
}

func (r *ReviewGormRepository) ListByProductID(ctx context.Context, productID int64) ([]model.ProductReview, error) {
	var reviews []model.ProductReview
	err := r.db.WithContext(ctx).
		Where("product_id = ?", productID).
		Order("created_at desc").Order("id desc").
		Find(&reviews).Error
	if err != nil {
		return []model.ProductReview{}, err
	}
	return reviews, nil
}

func (r *ReviewGormRepository) ListByProductIDAndRating(ctx context.Context, productID int64, rating int) ([]model.ProductReview, error) {
	var reviews []model.ProductReview
	err := r.db.WithContext(ctx).
		Where("product_id = ? AND rating = ?", productID, rating).
		Order("created_at desc").Order("id desc").
		Find(&reviews).Error
	if err != nil {
		return []model.ProductReview{}, err
	}
	return reviews, nil
}

func (r *ReviewGormRepository) ListVerifiedByProductID(ctx context.Context, productID int64) ([]model.ProductReview, error) {
	var reviews []model.ProductReview
	err := r.db.WithContext(ctx).
		Where("product_id = ? AND verified_purchase = ?", productID, true).
		Order("created_at desc").Order("id desc").
		Find(&reviews).Error
	if err != nil {
		return []model.ProductReview{}, err
	}
	return reviews, nil
}

func (r *ReviewGormRepository) ListByUserID(ctx context.Context, userID int64) ([]model.ProductReview, error) {
	var reviews []model.ProductReview
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at desc").Order("id desc").
		Find(&reviews).Error
	if err != nil {
		return []model.ProductReview{}, err
	}
	return reviews, nil
}

// 平均・件数・評価ごとの分布をまとめて返す
func (r *ReviewGormRepository) GetRatingStats(ctx context.Context, productID int64) (repo.RatingStats, error) {
	stats := repo.RatingStats{Distribution: map[int]int64{}}

	type row struct {
		Rating int
		Count  int64
	}
	var rows []row

	err := r.db.WithContext(ctx).
		Model(&model.ProductReview{}).
		Select("rating, count(*) as count").
		Where("product_id = ?", productID).
		Group("rating").
		Scan(&rows).Error
	if err != nil {
		return repo.RatingStats{}, err
	}

	var sum int64
	for _, rw := range rows {
		stats.Distribution[rw.Rating] = rw.Count
		stats.ReviewCount += rw.Count
		sum += int64(rw.Rating) * rw.Count
	}
	if stats.ReviewCount > 0 {
		stats.AverageRating = float64(sum) / float64(stats.ReviewCount)
	}

	return stats, nil
}

func (r *ReviewGormRepository) IncrementHelpfulCount(ctx context.Context, reviewID int64) error {
	res := r.db.WithContext(ctx).
		Model(&model.ProductReview{}).
		Where("id = ?", reviewID).
		Update("helpful_count", gorm.Expr("helpful_count + 1"))

	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}
