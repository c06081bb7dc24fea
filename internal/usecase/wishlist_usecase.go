package usecase

import (
	"context"
	"errors"
	"net/http"
	"time"

	"storefront/internal/domain/model"
	repo "storefront/internal/repository"
)

type WishlistUsecase struct {
	wishlistRepo repo.WishlistRepository
	productRepo  repo.ProductRepository
}

func NewWishlistUsecase(
	wishlistRepo repo.WishlistRepository,
	productRepo repo.ProductRepository,
) *WishlistUsecase {
	return &WishlistUsecase{
		wishlistRepo: wishlistRepo,
		productRepo:  productRepo,
	}
}

type WishlistItemResponse struct {
	ProductID     int64     `json:"product_id"`
	Name          string    `json:"name"`
	Price         int64     `json:"price"`
	OriginalPrice int64     `json:"original_price"`
	ImageURL      string    `json:"image_url"`
	OnSale        bool      `json:"on_sale"`
	AddedAt       time.Time `json:"added_at"`
}

type ToggleWishlistOutput struct {
	Added bool `json:"added"`
}

// 追加は冪等。既にあればそれを返す。
func (u *WishlistUsecase) Add(ctx context.Context, userID int64, productID int64) (model.Wishlist, error) {
	if userID <= 0 {
		return model.Wishlist{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if productID <= 0 {
		return model.Wishlist{}, NewHTTPError(http.StatusBadRequest, "invalid product id")
	}

	if _, err := u.productRepo.FindByID(ctx, productID); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return model.Wishlist{}, NewHTTPError(http.StatusNotFound, "product not found")
		}
		return model.Wishlist{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	existing, err := u.wishlistRepo.FindByUserAndProduct(ctx, userID, productID)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, repo.ErrNotFound) {
		return model.Wishlist{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	created, err := u.wishlistRepo.Create(ctx, model.Wishlist{
		UserID:    userID,
		ProductID: productID,
		AddedAt:   time.Now(),
	})
	if err != nil {
		//同時追加はunique indexに弾かれるが、結果としては「入っている」
		existing, findErr := u.wishlistRepo.FindByUserAndProduct(ctx, userID, productID)
		if findErr == nil {
			return existing, nil
		}
		return model.Wishlist{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return created, nil
}

func (u *WishlistUsecase) Remove(ctx context.Context, userID int64, productID int64) error {
	if userID <= 0 {
		return NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if productID <= 0 {
		return NewHTTPError(http.StatusBadRequest, "invalid product id")
	}

	if err := u.wishlistRepo.DeleteByUserAndProduct(ctx, userID, productID); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return NewHTTPError(http.StatusNotFound, "not in wishlist")
		}
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return nil
}

// あったら消す、無かったら足す
func (u *WishlistUsecase) Toggle(ctx context.Context, userID int64, productID int64) (ToggleWishlistOutput, error) {
	if userID <= 0 {
		return ToggleWishlistOutput{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if productID <= 0 {
		return ToggleWishlistOutput{}, NewHTTPError(http.StatusBadRequest, "invalid product id")
	}

	_, err := u.wishlistRepo.FindByUserAndProduct(ctx, userID, productID)
	if err == nil {
		if delErr := u.wishlistRepo.DeleteByUserAndProduct(ctx, userID, productID); delErr != nil && !errors.Is(delErr, repo.ErrNotFound) {
			return ToggleWishlistOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
		}
		return ToggleWishlistOutput{Added: false}, nil
	}
	if !errors.Is(err, repo.ErrNotFound) {
		return ToggleWishlistOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	if _, addErr := u.Add(ctx, userID, productID); addErr != nil {
		return ToggleWishlistOutput{}, addErr
	}
	return ToggleWishlistOutput{Added: true}, nil
}

// 追加が新しい順で、商品情報を付けて返す
func (u *WishlistUsecase) List(ctx context.Context, userID int64) ([]WishlistItemResponse, error) {
	if userID <= 0 {
		return nil, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	entries, err := u.wishlistRepo.ListByUserID(ctx, userID)
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	items := make([]WishlistItemResponse, 0, len(entries))
	for _, e := range entries {
		p, err := u.productRepo.FindByID(ctx, e.ProductID)
		if err != nil {
			//消えた商品は表示から落とす
			continue
		}
		items = append(items, WishlistItemResponse{
			ProductID:     p.ID,
			Name:          p.Name,
			Price:         p.Price,
			OriginalPrice: p.OriginalPrice,
			ImageURL:      p.ImageURL,
			OnSale:        p.OnSale,
			AddedAt:       e.AddedAt,
		})
	}
	return items, nil
}

func (u *WishlistUsecase) Contains(ctx context.Context, userID int64, productID int64) (bool, error) {
	if userID <= 0 {
		return false, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if productID <= 0 {
		return false, NewHTTPError(http.StatusBadRequest, "invalid product id")
	}

	_, err := u.wishlistRepo.FindByUserAndProduct(ctx, userID, productID)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, repo.ErrNotFound) {
		return false, nil
	}
	return false, NewHTTPError(http.StatusInternalServerError, "db error")
}

func (u *WishlistUsecase) Count(ctx context.Context, userID int64) (int64, error) {
	if userID <= 0 {
		return 0, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	count, err := u.wishlistRepo.CountByUserID(ctx, userID)
	if err != nil {
		return 0, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return count, nil
}
