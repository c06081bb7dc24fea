package usecase_test

import (
	"context"
	"net/http"
	"testing"

	"storefront/internal/domain/model"
	"storefront/internal/infra/cache"
	repo "storefront/internal/repository"
	"storefront/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newAnalyticsUsecase() (*usecase.AnalyticsUsecase, *ViewLogRepoMock, *ProductRepoMock) {
	viewLogRepo := new(ViewLogRepoMock)
	productRepo := new(ProductRepoMock)
	// Redisなしのキャッシュは常にミス
	uc := usecase.NewAnalyticsUsecase(viewLogRepo, productRepo, cache.NewRecentlyViewedCache(nil, 0))
	return uc, viewLogRepo, productRepo
}

func TestAnalyticsUsecase_LogView_Guest(t *testing.T) {
	uc, viewLogRepo, _ := newAnalyticsUsecase()

	viewLogRepo.On("Create", mock.Anything, mock.MatchedBy(func(log model.ProductViewLog) bool {
		return log.ProductID == 5 && log.UserID == nil && log.DurationSeconds == 30
	})).Return(nil)

	err := uc.LogView(context.Background(), nil, usecase.LogViewInput{ProductID: 5, DurationSeconds: 30})
	assert.NoError(t, err)
	viewLogRepo.AssertExpectations(t)
}

func TestAnalyticsUsecase_LogView_WithUser(t *testing.T) {
	uc, viewLogRepo, _ := newAnalyticsUsecase()

	userID := int64(1)
	viewLogRepo.On("Create", mock.Anything, mock.MatchedBy(func(log model.ProductViewLog) bool {
		return log.UserID != nil && *log.UserID == 1
	})).Return(nil)

	err := uc.LogView(context.Background(), &userID, usecase.LogViewInput{ProductID: 5})
	assert.NoError(t, err)
}

func TestAnalyticsUsecase_LogView_InvalidProduct(t *testing.T) {
	uc, viewLogRepo, _ := newAnalyticsUsecase()

	err := uc.LogView(context.Background(), nil, usecase.LogViewInput{ProductID: 0})
	assertHTTPStatus(t, err, http.StatusBadRequest)
	viewLogRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestAnalyticsUsecase_RecentlyViewed_GuestGetsEmptyList(t *testing.T) {
	uc, viewLogRepo, _ := newAnalyticsUsecase()

	out, err := uc.RecentlyViewed(context.Background(), 0)
	assert.NoError(t, err)
	assert.Empty(t, out)
	viewLogRepo.AssertNotCalled(t, "ListRecentlyViewedProductIDs", mock.Anything, mock.Anything, mock.Anything)
}

func TestAnalyticsUsecase_RecentlyViewed_HydratesAndDropsMissing(t *testing.T) {
	uc, viewLogRepo, productRepo := newAnalyticsUsecase()

	viewLogRepo.On("ListRecentlyViewedProductIDs", mock.Anything, int64(1), 8).Return([]int64{5, 6, 7}, nil)
	productRepo.On("FindByID", mock.Anything, int64(5)).Return(model.Product{ID: 5, Name: "Headphones"}, nil)
	productRepo.On("FindByID", mock.Anything, int64(6)).Return(model.Product{}, repo.ErrNotFound)
	productRepo.On("FindByID", mock.Anything, int64(7)).Return(model.Product{ID: 7, Name: "Book"}, nil)

	out, err := uc.RecentlyViewed(context.Background(), 1)
	assert.NoError(t, err)

	// 消えた商品6は黙って落ちる、順序は維持
	assert.Len(t, out, 2)
	assert.Equal(t, int64(5), out[0].ID)
	assert.Equal(t, int64(7), out[1].ID)
}
