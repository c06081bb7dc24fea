package repository

import (
	"context"

	"storefront/internal/domain/model"
)

// 配送方法マスタの取得窓口
type ShippingOptionRepository interface {
	List(ctx context.Context) ([]model.ShippingOption, error)
	FindByID(ctx context.Context, id int64) (model.ShippingOption, error)
	Count(ctx context.Context) (int64, error)
	CreateBulk(ctx context.Context, options []model.ShippingOption) error
}
