package repository

import (
	"context"

	"storefront/internal/domain/model"
)

// 商品ごとの評価集計
type RatingStats struct {
	AverageRating float64
	ReviewCount   int64
	Distribution  map[int]int64
}

type ReviewRepository interface {
	Create(ctx context.Context, review model.ProductReview) (model.ProductReview, error)
	Update(ctx context.Context, review model.ProductReview) error
	Delete(ctx context.Context, reviewID int64) error
	FindByID(ctx context.Context, reviewID int64) (model.ProductReview, error)
	FindByUserAndProduct(ctx context.Context, userID int64, productID int64) (model.ProductReview, error)

	ListByProductID(ctx context.Context, productID int64) ([]model.ProductReview, error)
	ListByProductIDAndRating(ctx context.Context, productID int64, rating int) ([]model.ProductReview, error)
	ListVerifiedByProductID(ctx context.Context, productID int64) ([]model.ProductReview, error)
	ListByUserID(ctx context.Context, userID int64) ([]model.ProductReview, error)

	GetRatingStats(ctx context.Context, productID int64) (RatingStats, error)
	IncrementHelpfulCount(ctx context.Context, reviewID int64) error
}
