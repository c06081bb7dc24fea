package usecase_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"storefront/internal/domain/model"
	repo "storefront/internal/repository"
	"storefront/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newWishlistUsecase() (*usecase.WishlistUsecase, *WishlistRepoMock, *ProductRepoMock) {
	wishlistRepo := new(WishlistRepoMock)
	productRepo := new(ProductRepoMock)
	uc := usecase.NewWishlistUsecase(wishlistRepo, productRepo)
	return uc, wishlistRepo, productRepo
}

func TestWishlistUsecase_Add_Idempotent(t *testing.T) {
	ctx := context.Background()
	uc, wishlistRepo, productRepo := newWishlistUsecase()

	productRepo.On("FindByID", mock.Anything, int64(5)).Return(model.Product{ID: 5}, nil)
	wishlistRepo.On("FindByUserAndProduct", mock.Anything, int64(1), int64(5)).Return(model.Wishlist{ID: 3, UserID: 1, ProductID: 5}, nil)

	out, err := uc.Add(ctx, 1, 5)
	assert.NoError(t, err)
	assert.Equal(t, int64(3), out.ID)

	//既にあるなら作らない
	wishlistRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestWishlistUsecase_Add_ProductNotFound(t *testing.T) {
	uc, _, productRepo := newWishlistUsecase()

	productRepo.On("FindByID", mock.Anything, int64(404)).Return(model.Product{}, repo.ErrNotFound)

	_, err := uc.Add(context.Background(), 1, 404)
	assertHTTPStatus(t, err, http.StatusNotFound)
}

func TestWishlistUsecase_Toggle_AddsWhenMissing(t *testing.T) {
	ctx := context.Background()
	uc, wishlistRepo, productRepo := newWishlistUsecase()

	wishlistRepo.On("FindByUserAndProduct", mock.Anything, int64(1), int64(5)).Return(model.Wishlist{}, repo.ErrNotFound)
	productRepo.On("FindByID", mock.Anything, int64(5)).Return(model.Product{ID: 5}, nil)
	wishlistRepo.On("Create", mock.Anything, mock.Anything).Return(model.Wishlist{ID: 3, UserID: 1, ProductID: 5}, nil)

	out, err := uc.Toggle(ctx, 1, 5)
	assert.NoError(t, err)
	assert.True(t, out.Added)
}

func TestWishlistUsecase_Toggle_RemovesWhenPresent(t *testing.T) {
	ctx := context.Background()
	uc, wishlistRepo, _ := newWishlistUsecase()

	wishlistRepo.On("FindByUserAndProduct", mock.Anything, int64(1), int64(5)).Return(model.Wishlist{ID: 3}, nil)
	wishlistRepo.On("DeleteByUserAndProduct", mock.Anything, int64(1), int64(5)).Return(nil)

	out, err := uc.Toggle(ctx, 1, 5)
	assert.NoError(t, err)
	assert.False(t, out.Added)
	wishlistRepo.AssertExpectations(t)
}

func TestWishlistUsecase_Remove_NotInWishlist(t *testing.T) {
	uc, wishlistRepo, _ := newWishlistUsecase()

	wishlistRepo.On("DeleteByUserAndProduct", mock.Anything, int64(1), int64(5)).Return(repo.ErrNotFound)

	err := uc.Remove(context.Background(), 1, 5)
	assertHTTPStatus(t, err, http.StatusNotFound)
}

func TestWishlistUsecase_List_DropsVanishedProducts(t *testing.T) {
	ctx := context.Background()
	uc, wishlistRepo, productRepo := newWishlistUsecase()

	addedAt := time.Now()
	wishlistRepo.On("ListByUserID", mock.Anything, int64(1)).Return([]model.Wishlist{
		{ID: 1, UserID: 1, ProductID: 5, AddedAt: addedAt},
		{ID: 2, UserID: 1, ProductID: 6, AddedAt: addedAt},
	}, nil)
	productRepo.On("FindByID", mock.Anything, int64(5)).Return(model.Product{ID: 5, Name: "Headphones", Price: 14999, OnSale: true}, nil)
	productRepo.On("FindByID", mock.Anything, int64(6)).Return(model.Product{}, repo.ErrNotFound)

	items, err := uc.List(ctx, 1)
	assert.NoError(t, err)
	assert.Len(t, items, 1)
	assert.Equal(t, "Headphones", items[0].Name)
}

func TestWishlistUsecase_ContainsAndCount(t *testing.T) {
	ctx := context.Background()
	uc, wishlistRepo, _ := newWishlistUsecase()

	wishlistRepo.On("FindByUserAndProduct", mock.Anything, int64(1), int64(5)).Return(model.Wishlist{ID: 3}, nil)
	wishlistRepo.On("CountByUserID", mock.Anything, int64(1)).Return(int64(4), nil)

	contains, err := uc.Contains(ctx, 1, 5)
	assert.NoError(t, err)
	assert.True(t, contains)

	count, err := uc.Count(ctx, 1)
	assert.NoError(t, err)
	assert.Equal(t, int64(4), count)
}
