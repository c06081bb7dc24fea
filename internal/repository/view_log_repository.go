package repository

import (
	"context"

	"storefront/internal/domain/model"
)

// 閲覧ログの保存と「最近見た商品」の射影
type ViewLogRepository interface {
	Create(ctx context.Context, log model.ProductViewLog) error

	// 商品ごとに最新の閲覧だけを残し、新しい順にlimit件のproduct_idを返す
	ListRecentlyViewedProductIDs(ctx context.Context, userID int64, limit int) ([]int64, error)
}
