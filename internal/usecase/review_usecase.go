package usecase

import (
	"context"
	"errors"
	"math"
	"net/http"

	"storefront/internal/domain/model"
	repo "storefront/internal/repository"
)

type ReviewUsecase struct {
	reviewRepo  repo.ReviewRepository
	userRepo    repo.UserRepository
	productRepo repo.ProductRepository
	orderRepo   repo.OrderRepository
}

func NewReviewUsecase(
	reviewRepo repo.ReviewRepository,
	userRepo repo.UserRepository,
	productRepo repo.ProductRepository,
	orderRepo repo.OrderRepository,
) *ReviewUsecase {
	return &ReviewUsecase{
		reviewRepo:  reviewRepo,
		userRepo:    userRepo,
		productRepo: productRepo,
		orderRepo:   orderRepo,
	}
}

type ReviewInput struct {
	Rating  int
	Comment string
}

type RatingStatsOutput struct {
	AverageRating float64       `json:"average_rating"`
	ReviewCount   int64         `json:"review_count"`
	Distribution  map[int]int64 `json:"rating_distribution"`
}

// AddReview はレビューを作成する。
// verified_purchaseは作成時に一度だけ注文履歴から判定し、以後は再評価しない。
func (u *ReviewUsecase) AddReview(ctx context.Context, userID int64, productID int64, in ReviewInput) (model.ProductReview, error) {
	if userID <= 0 {
		return model.ProductReview{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if productID <= 0 {
		return model.ProductReview{}, NewHTTPError(http.StatusBadRequest, "invalid product id")
	}

	if _, err := u.userRepo.FindByID(ctx, userID); err != nil {
		if errors.Is(err, repo.ErrUserNotFound) {
			return model.ProductReview{}, NewHTTPError(http.StatusNotFound, "user not found")
		}
		return model.ProductReview{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	if _, err := u.productRepo.FindByID(ctx, productID); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return model.ProductReview{}, NewHTTPError(http.StatusNotFound, "product not found")
		}
		return model.ProductReview{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	// 1ユーザー1商品1レビュー
	_, err := u.reviewRepo.FindByUserAndProduct(ctx, userID, productID)
	if err == nil {
		return model.ProductReview{}, NewHTTPError(http.StatusConflict, "you have already reviewed this product")
	}
	if !errors.Is(err, repo.ErrNotFound) {
		return model.ProductReview{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	hasPurchased, err := u.orderRepo.HasUserPurchasedProduct(ctx, userID, productID)
	if err != nil {
		return model.ProductReview{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	created, err := u.reviewRepo.Create(ctx, model.ProductReview{
		UserID:           userID,
		ProductID:        productID,
		Rating:           model.ClampRating(in.Rating),
		Comment:          in.Comment,
		VerifiedPurchase: hasPurchased,
	})
	if err != nil {
		//同時投稿はunique indexに弾かれる
		return model.ProductReview{}, NewHTTPError(http.StatusConflict, "you have already reviewed this product")
	}
	return created, nil
}

// 自分のレビューだけ更新できる
func (u *ReviewUsecase) UpdateReview(ctx context.Context, reviewID int64, userID int64, in ReviewInput) (model.ProductReview, error) {
	rv, err := u.findOwnedReview(ctx, reviewID, userID)
	if err != nil {
		return model.ProductReview{}, err
	}

	rv.Rating = model.ClampRating(in.Rating)
	rv.Comment = in.Comment

	if err := u.reviewRepo.Update(ctx, rv); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return model.ProductReview{}, NewHTTPError(http.StatusNotFound, "review not found")
		}
		return model.ProductReview{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return rv, nil
}

// 自分のレビューだけ削除できる
func (u *ReviewUsecase) DeleteReview(ctx context.Context, reviewID int64, userID int64) error {
	rv, err := u.findOwnedReview(ctx, reviewID, userID)
	if err != nil {
		return err
	}

	if err := u.reviewRepo.Delete(ctx, rv.ID); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return NewHTTPError(http.StatusNotFound, "review not found")
		}
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return nil
}

func (u *ReviewUsecase) ListProductReviews(ctx context.Context, productID int64) ([]model.ProductReview, error) {
	if productID <= 0 {
		return nil, NewHTTPError(http.StatusBadRequest, "invalid product id")
	}
	reviews, err := u.reviewRepo.ListByProductID(ctx, productID)
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return reviews, nil
}

func (u *ReviewUsecase) ListProductReviewsByRating(ctx context.Context, productID int64, rating int) ([]model.ProductReview, error) {
	if productID <= 0 {
		return nil, NewHTTPError(http.StatusBadRequest, "invalid product id")
	}
	if rating < 1 || rating > 5 {
		return nil, NewHTTPError(http.StatusBadRequest, "rating must be between 1 and 5")
	}
	reviews, err := u.reviewRepo.ListByProductIDAndRating(ctx, productID, rating)
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return reviews, nil
}

func (u *ReviewUsecase) ListVerifiedReviews(ctx context.Context, productID int64) ([]model.ProductReview, error) {
	if productID <= 0 {
		return nil, NewHTTPError(http.StatusBadRequest, "invalid product id")
	}
	reviews, err := u.reviewRepo.ListVerifiedByProductID(ctx, productID)
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return reviews, nil
}

// 平均は小数第1位に丸める
func (u *ReviewUsecase) GetRatingStats(ctx context.Context, productID int64) (RatingStatsOutput, error) {
	if productID <= 0 {
		return RatingStatsOutput{}, NewHTTPError(http.StatusBadRequest, "invalid product id")
	}

	stats, err := u.reviewRepo.GetRatingStats(ctx, productID)
	if err != nil {
		return RatingStatsOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return RatingStatsOutput{
		AverageRating: math.Round(stats.AverageRating*10) / 10,
		ReviewCount:   stats.ReviewCount,
		Distribution:  stats.Distribution,
	}, nil
}

func (u *ReviewUsecase) MarkHelpful(ctx context.Context, reviewID int64) (model.ProductReview, error) {
	if reviewID <= 0 {
		return model.ProductReview{}, NewHTTPError(http.StatusBadRequest, "invalid review id")
	}

	if err := u.reviewRepo.IncrementHelpfulCount(ctx, reviewID); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return model.ProductReview{}, NewHTTPError(http.StatusNotFound, "review not found")
		}
		return model.ProductReview{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	rv, err := u.reviewRepo.FindByID(ctx, reviewID)
	if err != nil {
		return model.ProductReview{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return rv, nil
}

func (u *ReviewUsecase) ListUserReviews(ctx context.Context, userID int64) ([]model.ProductReview, error) {
	if userID <= 0 {
		return nil, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	reviews, err := u.reviewRepo.ListByUserID(ctx, userID)
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return reviews, nil
}

// まだレビューしていない商品だけレビューできる
func (u *ReviewUsecase) CanUserReview(ctx context.Context, userID int64, productID int64) (bool, error) {
	if userID <= 0 {
		return false, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if productID <= 0 {
		return false, NewHTTPError(http.StatusBadRequest, "invalid product id")
	}

	_, err := u.reviewRepo.FindByUserAndProduct(ctx, userID, productID)
	if errors.Is(err, repo.ErrNotFound) {
		return true, nil
	}
	if err != nil {
		return false, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return false, nil
}

func (u *ReviewUsecase) findOwnedReview(ctx context.Context, reviewID int64, userID int64) (model.ProductReview, error) {
	if userID <= 0 {
		return model.ProductReview{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if reviewID <= 0 {
		return model.ProductReview{}, NewHTTPError(http.StatusBadRequest, "invalid review id")
	}

	rv, err := u.reviewRepo.FindByID(ctx, reviewID)
	if errors.Is(err, repo.ErrNotFound) {
		return model.ProductReview{}, NewHTTPError(http.StatusNotFound, "review not found")
	}
	if err != nil {
		return model.ProductReview{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	//他人のレビューは操作できない
	if rv.UserID != userID {
		return model.ProductReview{}, NewHTTPError(http.StatusForbidden, "you can only modify your own reviews")
	}
	return rv, nil
}
