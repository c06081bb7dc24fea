package usecase

import (
	"context"
	"errors"
	"net/http"
	"time"

	"storefront/internal/domain/model"
	"storefront/internal/infra/cache"
	repo "storefront/internal/repository"
)

// 最近見た商品は最大8件
const recentlyViewedLimit = 8

type AnalyticsUsecase struct {
	viewLogRepo repo.ViewLogRepository
	productRepo repo.ProductRepository
	rvCache     *cache.RecentlyViewedCache
}

func NewAnalyticsUsecase(
	viewLogRepo repo.ViewLogRepository,
	productRepo repo.ProductRepository,
	rvCache *cache.RecentlyViewedCache,
) *AnalyticsUsecase {
	return &AnalyticsUsecase{
		viewLogRepo: viewLogRepo,
		productRepo: productRepo,
		rvCache:     rvCache,
	}
}

type LogViewInput struct {
	ProductID       int64
	DurationSeconds int
}

// LogView は閲覧イベントを記録する。userIDはゲストの場合nil。
func (u *AnalyticsUsecase) LogView(ctx context.Context, userID *int64, in LogViewInput) error {
	if in.ProductID <= 0 {
		return NewHTTPError(http.StatusBadRequest, "invalid product_id")
	}
	if in.DurationSeconds < 0 {
		return NewHTTPError(http.StatusBadRequest, "invalid duration_seconds")
	}

	if err := u.viewLogRepo.Create(ctx, model.ProductViewLog{
		ProductID:       in.ProductID,
		UserID:          userID,
		ViewedAt:        time.Now(),
		DurationSeconds: in.DurationSeconds,
	}); err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}

	//射影が変わるのでキャッシュを消す。失敗しても記録自体は成功扱い。
	if userID != nil {
		if err := u.rvCache.Invalidate(ctx, *userID); err != nil {
			logger.Warn().Err(err).Int64("user_id", *userID).Msg("recently-viewed cache invalidation failed")
		}
	}
	return nil
}

// RecentlyViewed は直近に見た商品を新しい順に最大8件返す。
// 既に消えた商品のIDは黙って落とす。
func (u *AnalyticsUsecase) RecentlyViewed(ctx context.Context, userID int64) ([]model.Product, error) {
	if userID <= 0 {
		//未ログインには空を返す
		return []model.Product{}, nil
	}

	ids, hit, err := u.rvCache.Get(ctx, userID)
	if err != nil {
		logger.Warn().Err(err).Int64("user_id", userID).Msg("recently-viewed cache read failed")
		hit = false
	}

	if !hit {
		ids, err = u.viewLogRepo.ListRecentlyViewedProductIDs(ctx, userID, recentlyViewedLimit)
		if err != nil {
			return nil, NewHTTPError(http.StatusInternalServerError, "db error")
		}
		if cacheErr := u.rvCache.Set(ctx, userID, ids); cacheErr != nil {
			logger.Warn().Err(cacheErr).Int64("user_id", userID).Msg("recently-viewed cache write failed")
		}
	}

	products := make([]model.Product, 0, len(ids))
	for _, id := range ids {
		p, err := u.productRepo.FindByID(ctx, id)
		if errors.Is(err, repo.ErrNotFound) {
			continue
		}
		if err != nil {
			return nil, NewHTTPError(http.StatusInternalServerError, "db error")
		}
		products = append(products, p)
	}
	return products, nil
}
