package usecase_test

import (
	"context"
	"testing"

	"storefront/internal/domain/model"
	repo "storefront/internal/repository"
	"storefront/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// =====================
// Mocks（repository interface用）
// =====================

type UserRepoMock struct{ mock.Mock }

func (m *UserRepoMock) Create(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *UserRepoMock) FindByID(ctx context.Context, userID int64) (*model.User, error) {
	args := m.Called(ctx, userID)
	u, _ := args.Get(0).(*model.User)
	return u, args.Error(1)
}

func (m *UserRepoMock) FindByUsername(ctx context.Context, username string) (*model.User, error) {
	args := m.Called(ctx, username)
	u, _ := args.Get(0).(*model.User)
	return u, args.Error(1)
}

func (m *UserRepoMock) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	args := m.Called(ctx, email)
	u, _ := args.Get(0).(*model.User)
	return u, args.Error(1)
}

func (m *UserRepoMock) FindAll(ctx context.Context) ([]model.User, error) {
	args := m.Called(ctx)
	users, _ := args.Get(0).([]model.User)
	return users, args.Error(1)
}

func (m *UserRepoMock) Update(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *UserRepoMock) Delete(ctx context.Context, userID int64) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

type ProductRepoMock struct{ mock.Mock }

func (m *ProductRepoMock) List(ctx context.Context, q repo.ProductListQuery) ([]model.Product, error) {
	args := m.Called(ctx, q)
	items, _ := args.Get(0).([]model.Product)
	return items, args.Error(1)
}

func (m *ProductRepoMock) FindByID(ctx context.Context, id int64) (model.Product, error) {
	args := m.Called(ctx, id)
	p, _ := args.Get(0).(model.Product)
	return p, args.Error(1)
}

func (m *ProductRepoMock) Create(ctx context.Context, p model.Product) (model.Product, error) {
	args := m.Called(ctx, p)
	created, _ := args.Get(0).(model.Product)
	return created, args.Error(1)
}

func (m *ProductRepoMock) Update(ctx context.Context, p model.Product) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *ProductRepoMock) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *ProductRepoMock) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

type CartRepoMock struct{ mock.Mock }

func (m *CartRepoMock) GetOrCreateByUserID(ctx context.Context, userID int64) (model.Cart, error) {
	args := m.Called(ctx, userID)
	c, _ := args.Get(0).(model.Cart)
	return c, args.Error(1)
}

func (m *CartRepoMock) FindByUserID(ctx context.Context, userID int64) (model.Cart, error) {
	args := m.Called(ctx, userID)
	c, _ := args.Get(0).(model.Cart)
	return c, args.Error(1)
}

func (m *CartRepoMock) Clear(ctx context.Context, cartID int64) error {
	args := m.Called(ctx, cartID)
	return args.Error(0)
}

type CartItemRepoMock struct{ mock.Mock }

func (m *CartItemRepoMock) ListByCartID(ctx context.Context, cartID int64) ([]model.CartItem, error) {
	args := m.Called(ctx, cartID)
	items, _ := args.Get(0).([]model.CartItem)
	return items, args.Error(1)
}

func (m *CartItemRepoMock) FindByCartAndProduct(ctx context.Context, cartID int64, productID int64) (model.CartItem, error) {
	args := m.Called(ctx, cartID, productID)
	it, _ := args.Get(0).(model.CartItem)
	return it, args.Error(1)
}

func (m *CartItemRepoMock) Create(ctx context.Context, item model.CartItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *CartItemRepoMock) UpdateQuantity(ctx context.Context, cartItemID int64, qty int64) error {
	args := m.Called(ctx, cartItemID, qty)
	return args.Error(0)
}

func (m *CartItemRepoMock) DeleteByID(ctx context.Context, cartItemID int64) error {
	args := m.Called(ctx, cartItemID)
	return args.Error(0)
}

func (m *CartItemRepoMock) DeleteByCartAndProduct(ctx context.Context, cartID int64, productID int64) error {
	args := m.Called(ctx, cartID, productID)
	return args.Error(0)
}

type InventoryRepoMock struct{ mock.Mock }

func (m *InventoryRepoMock) SetStock(ctx context.Context, productID int64, newStock int64) error {
	args := m.Called(ctx, productID, newStock)
	return args.Error(0)
}

func (m *InventoryRepoMock) DecreaseStockIfEnough(ctx context.Context, productID int64, qty int64) (bool, error) {
	args := m.Called(ctx, productID, qty)
	return args.Bool(0), args.Error(1)
}

func (m *InventoryRepoMock) IncreaseStock(ctx context.Context, productID int64, qty int64) error {
	args := m.Called(ctx, productID, qty)
	return args.Error(0)
}

type OrderRepoMock struct{ mock.Mock }

func (m *OrderRepoMock) FindByID(ctx context.Context, orderID int64) (model.Order, error) {
	args := m.Called(ctx, orderID)
	o, _ := args.Get(0).(model.Order)
	return o, args.Error(1)
}

func (m *OrderRepoMock) ListByUserID(ctx context.Context, userID int64) ([]model.Order, error) {
	args := m.Called(ctx, userID)
	orders, _ := args.Get(0).([]model.Order)
	return orders, args.Error(1)
}

func (m *OrderRepoMock) Create(ctx context.Context, order model.Order) (int64, error) {
	args := m.Called(ctx, order)
	return args.Get(0).(int64), args.Error(1)
}

func (m *OrderRepoMock) UpdateStatus(ctx context.Context, orderID int64, status model.OrderStatus) error {
	args := m.Called(ctx, orderID, status)
	return args.Error(0)
}

func (m *OrderRepoMock) HasUserPurchasedProduct(ctx context.Context, userID int64, productID int64) (bool, error) {
	args := m.Called(ctx, userID, productID)
	return args.Bool(0), args.Error(1)
}

type OrderItemRepoMock struct{ mock.Mock }

func (m *OrderItemRepoMock) CreateBulk(ctx context.Context, orderID int64, items []model.OrderItem) error {
	args := m.Called(ctx, orderID, items)
	return args.Error(0)
}

func (m *OrderItemRepoMock) ListByOrderID(ctx context.Context, orderID int64) ([]model.OrderItem, error) {
	args := m.Called(ctx, orderID)
	items, _ := args.Get(0).([]model.OrderItem)
	return items, args.Error(1)
}

type ShippingRepoMock struct{ mock.Mock }

func (m *ShippingRepoMock) List(ctx context.Context) ([]model.ShippingOption, error) {
	args := m.Called(ctx)
	options, _ := args.Get(0).([]model.ShippingOption)
	return options, args.Error(1)
}

func (m *ShippingRepoMock) FindByID(ctx context.Context, id int64) (model.ShippingOption, error) {
	args := m.Called(ctx, id)
	o, _ := args.Get(0).(model.ShippingOption)
	return o, args.Error(1)
}

func (m *ShippingRepoMock) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *ShippingRepoMock) CreateBulk(ctx context.Context, options []model.ShippingOption) error {
	args := m.Called(ctx, options)
	return args.Error(0)
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

type WishlistRepoMock struct{ mock.Mock }

func (m *WishlistRepoMock) Create(ctx context.Context, entry model.Wishlist) (model.Wishlist, error) {
	args := m.Called(ctx, entry)
	created, _ := args.Get(0).(model.Wishlist)
	return created, args.Error(1)
}

func (m *WishlistRepoMock) FindByUserAndProduct(ctx context.Context, userID int64, productID int64) (model.Wishlist, error) {
	args := m.Called(ctx, userID, productID)
	e, _ := args.Get(0).(model.Wishlist)
	return e, args.Error(1)
}

func (m *WishlistRepoMock) ListByUserID(ctx context.Context, userID int64) ([]model.Wishlist, error) {
	args := m.Called(ctx, userID)
	entries, _ := args.Get(0).([]model.Wishlist)
	return entries, args.Error(1)
}

func (m *WishlistRepoMock) DeleteByUserAndProduct(ctx context.Context, userID int64, productID int64) error {
	args := m.Called(ctx, userID, productID)
	return args.Error(0)
}

func (m *WishlistRepoMock) CountByUserID(ctx context.Context, userID int64) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}

type ViewLogRepoMock struct{ mock.Mock }

func (m *ViewLogRepoMock) Create(ctx context.Context, log model.ProductViewLog) error {
	args := m.Called(ctx, log)
	return args.Error(0)
}

func (m *ViewLogRepoMock) ListRecentlyViewedProductIDs(ctx context.Context, userID int64, limit int) ([]int64, error) {
	args := m.Called(ctx, userID, limit)
	ids, _ := args.Get(0).([]int64)
	return ids, args.Error(1)
}

// =====================
// TransactionManager（Txを貼らずにそのまま実行する）
// =====================

type txReposStub struct {
	orders     *OrderRepoMock
	orderItems *OrderItemRepoMock
	carts      *CartRepoMock
	cartItems  *CartItemRepoMock
	inventory  *InventoryRepoMock
	products   *ProductRepoMock
	shipping   *ShippingRepoMock
}

func (s *txReposStub) Orders() repo.OrderRepository                   { return s.orders }
func (s *txReposStub) OrderItems() repo.OrderItemRepository           { return s.orderItems }
func (s *txReposStub) Carts() repo.CartRepository                     { return s.carts }
func (s *txReposStub) CartItems() repo.CartItemRepository             { return s.cartItems }
func (s *txReposStub) Inventory() repo.InventoryRepository            { return s.inventory }
func (s *txReposStub) Products() repo.ProductRepository               { return s.products }
func (s *txReposStub) ShippingOptions() repo.ShippingOptionRepository { return s.shipping }

type txManagerStub struct {
	repos *txReposStub
}

func (t *txManagerStub) WithinTx(ctx context.Context, fn func(r repo.TxRepos) error) error {
	return fn(t.repos)
}

func newTxReposStub() *txReposStub {
	return &txReposStub{
		orders:     new(OrderRepoMock),
		orderItems: new(OrderItemRepoMock),
		carts:      new(CartRepoMock),
		cartItems:  new(CartItemRepoMock),
		inventory:  new(InventoryRepoMock),
		products:   new(ProductRepoMock),
		shipping:   new(ShippingRepoMock),
	}
}

// =====================
// Helpers
// =====================

func assertHTTPStatus(t *testing.T, err error, status int) {
	t.Helper()
	he, ok := usecase.AsHTTPError(err)
	if assert.True(t, ok, "expected HTTPError, got %v", err) {
		assert.Equal(t, status, he.Status)
	}
}
