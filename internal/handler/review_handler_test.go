package handler_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"storefront/internal/config"
	"storefront/internal/domain/model"
	"storefront/internal/handler"
	repo "storefront/internal/repository"
	"storefront/internal/usecase"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

const testSecret = "handler-test-secret"

func signTestToken(t *testing.T, userID int64, role string) string {
	t.Helper()
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":  userID,
		"role": role,
		"iat":  now.Unix(),
		"exp":  now.Add(time.Hour).Unix(),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	assert.NoError(t, err)
	return signed
}

type ReviewRepoMock struct{ mock.Mock }

func (m *ReviewRepoMock) Create(ctx context.Context, review model.ProductReview) (model.ProductReview, error) {
	args := m.Called(ctx, review)
	created, _ := args.Get(0).(model.ProductReview)
	return created, args.Error(1)
}

func (m *ReviewRepoMock) Update(ctx context.Context, review model.ProductReview) error {
	args := m.Called(ctx, review)
	return args.Error(0)
}

func (m *ReviewRepoMock) Delete(ctx context.Context, reviewID int64) error {
	args := m.Called(ctx, reviewID)
	return args.Error(0)
}

func (m *ReviewRepoMock) FindByID(ctx context.Context, reviewID int64) (model.ProductReview, error) {
	args := m.Called(ctx, reviewID)
	rv, _ := args.Get(0).(model.ProductReview)
	return rv, args.Error(1)
}

func (m *ReviewRepoMock) FindByUserAndProduct(ctx context.Context, userID int64, productID int64) (model.ProductReview, error) {
	args := m.Called(ctx, userID, productID)
	rv, _ := args.Get(0).(model.ProductReview)
	return rv, args.Error(1)
}

func (m *ReviewRepoMock) ListByProductID(ctx context.Context, productID int64) ([]model.ProductReview, error) {
	args := m.Called(ctx, productID)
	reviews, _ := args.Get(0).([]model.ProductReview)
	return reviews, args.Error(1)
}

func (m *ReviewRepoMock) ListByProductIDAndRating(ctx context.Context, productID int64, rating int) ([]model.ProductReview, error) {
	args := m.Called(ctx, productID, rating)
	reviews, _ := args.Get(0).([]model.ProductReview)
	return reviews, args.Error(1)
}

func (m *ReviewRepoMock) ListVerifiedByProductID(ctx context.Context, productID int64) ([]model.ProductReview, error) {
	args := m.Called(ctx, productID)
	reviews, _ := args.Get(0).([]model.ProductReview)
	return reviews, args.Error(1)
}

func (m *ReviewRepoMock) ListByUserID(ctx context.Context, userID int64) ([]model.ProductReview, error) {
	args := m.Called(ctx, userID)
	reviews, _ := args.Get(0).([]model.ProductReview)
	return reviews, args.Error(1)
}

func (m *ReviewRepoMock) GetRatingStats(ctx context.Context, productID int64) (repo.RatingStats, error) {
	args := m.Called(ctx, productID)
	stats, _ := args.Get(0).(repo.RatingStats)
	return stats, args.Error(1)
}

func (m *ReviewRepoMock) IncrementHelpfulCount(ctx context.Context, reviewID int64) error {
	args := m.Called(ctx, reviewID)
	return args.Error(0)
}

// 以下はReviewUsecaseの組み立てに必要なだけの素通しスタブ
type userRepoStub struct{}

func (userRepoStub) Create(ctx context.Context, user *model.User) error { return nil }
func (userRepoStub) FindByID(ctx context.Context, userID int64) (*model.User, error) {
	return &model.User{ID: userID}, nil
}
func (userRepoStub) FindByUsername(ctx context.Context, username string) (*model.User, error) {
	return nil, repo.ErrUserNotFound
}
func (userRepoStub) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	return nil, repo.ErrUserNotFound
}
func (userRepoStub) FindAll(ctx context.Context) ([]model.User, error) { return nil, nil }
func (userRepoStub) Update(ctx context.Context, user *model.User) error { return nil }
func (userRepoStub) Delete(ctx context.Context, userID int64) error     { return nil }

type productRepoStub struct{}

func (productRepoStub) List(ctx context.Context, q repo.ProductListQuery) ([]model.Product, error) {
	return nil, nil
}
func (productRepoStub) FindByID(ctx context.Context, id int64) (model.Product, error) {
	return model.Product{ID: id}, nil
}
func (productRepoStub) Create(ctx context.Context, p model.Product) (model.Product, error) {
	return p, nil
}
func (productRepoStub) Update(ctx context.Context, p model.Product) error { return nil }
func (productRepoStub) Delete(ctx context.Context, id int64) error        { return nil }
func (productRepoStub) Count(ctx context.Context) (int64, error)          { return 0, nil }

type orderRepoStub struct{}

func (orderRepoStub) FindByID(ctx context.Context, orderID int64) (model.Order, error) {
	return model.Order{}, repo.ErrNotFound
}
func (orderRepoStub) ListByUserID(ctx context.Context, userID int64) ([]model.Order, error) {
	return nil, nil
}
func (orderRepoStub) Create(ctx context.Context, order model.Order) (int64, error) { return 0, nil }
func (orderRepoStub) UpdateStatus(ctx context.Context, orderID int64, status model.OrderStatus) error {
	return nil
}
func (orderRepoStub) HasUserPurchasedProduct(ctx context.Context, userID int64, productID int64) (bool, error) {
	return false, nil
}

func newReviewServer(reviewRepo *ReviewRepoMock) *echo.Echo {
	e := echo.New()
	uc := usecase.NewReviewUsecase(reviewRepo, userRepoStub{}, productRepoStub{}, orderRepoStub{})
	h := handler.NewReviewHandler(uc)
	h.RegisterRoutes(e, config.Config{JWTSecret: testSecret})
	return e
}

func TestReviewRoutes_MarkHelpful_Unauthenticated(t *testing.T) {
	reviewRepo := new(ReviewRepoMock)
	e := newReviewServer(reviewRepo)

	req := httptest.NewRequest(http.MethodPost, "/api/reviews/7/helpful", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	// 未ログインではカウンタは触れない
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	reviewRepo.AssertNotCalled(t, "IncrementHelpfulCount", mock.Anything, mock.Anything)
}

func TestReviewRoutes_MarkHelpful_Authenticated(t *testing.T) {
	reviewRepo := new(ReviewRepoMock)
	e := newReviewServer(reviewRepo)

	reviewRepo.On("IncrementHelpfulCount", mock.Anything, int64(7)).Return(nil)
	reviewRepo.On("FindByID", mock.Anything, int64(7)).Return(model.ProductReview{ID: 7, HelpfulCount: 4}, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/reviews/7/helpful", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+signTestToken(t, 1, "USER"))
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	reviewRepo.AssertCalled(t, "IncrementHelpfulCount", mock.Anything, int64(7))
}
