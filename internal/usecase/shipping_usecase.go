package usecase

import (
	"context"
	"errors"
	"net/http"

	"storefront/internal/domain/model"
	repo "storefront/internal/repository"
)

// 配送方法マスタの読み取りだけ
type ShippingUsecase struct {
	shippingRepo repo.ShippingOptionRepository
}

func NewShippingUsecase(shippingRepo repo.ShippingOptionRepository) *ShippingUsecase {
	return &ShippingUsecase{shippingRepo: shippingRepo}
}

func (u *ShippingUsecase) ListOptions(ctx context.Context) ([]model.ShippingOption, error) {
	options, err := u.shippingRepo.List(ctx)
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return options, nil
}

func (u *ShippingUsecase) GetOption(ctx context.Context, id int64) (model.ShippingOption, error) {
	if id <= 0 {
		return model.ShippingOption{}, NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	o, err := u.shippingRepo.FindByID(ctx, id)
	if errors.Is(err, repo.ErrNotFound) {
		return model.ShippingOption{}, NewHTTPError(http.StatusNotFound, "shipping option not found")
	}
	if err != nil {
		return model.ShippingOption{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return o, nil
}
