package repository

import (
	"context"

	"storefront/internal/domain/model"
)

type WishlistRepository interface {
	Create(ctx context.Context, entry model.Wishlist) (model.Wishlist, error)
	FindByUserAndProduct(ctx context.Context, userID int64, productID int64) (model.Wishlist, error)
	ListByUserID(ctx context.Context, userID int64) ([]model.Wishlist, error)
	DeleteByUserAndProduct(ctx context.Context, userID int64, productID int64) error
	CountByUserID(ctx context.Context, userID int64) (int64, error)
}
