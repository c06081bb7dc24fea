package usecase

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	"storefront/internal/domain/model"
	repo "storefront/internal/repository"

	"github.com/rs/zerolog"
)

var logger = zerolog.New(os.Stdout).With().Timestamp().Logger()

type OrderUsecase struct {
	tx       repo.TransactionManager
	userRepo repo.UserRepository
}

func NewOrderUsecase(tx repo.TransactionManager, userRepo repo.UserRepository) *OrderUsecase {
	return &OrderUsecase{tx: tx, userRepo: userRepo}
}

type PlaceOrderInput struct {
	ShippingOptionID int64
}

type OrderItemOutput struct {
	ProductID int64  `json:"product_id"`
	Name      string `json:"name"`
	Price     int64  `json:"price"`
	Quantity  int64  `json:"quantity"`
}

type OrderOutput struct {
	ID           int64             `json:"id"`
	UserID       int64             `json:"user_id"`
	Status       string            `json:"status"`
	Subtotal     int64             `json:"subtotal"`
	ShippingCost int64             `json:"shipping_cost"`
	Total        int64             `json:"total"`
	CreatedAt    time.Time         `json:"created_at"`
	Items        []OrderItemOutput `json:"items"`
}

// PlaceOrder はカートを注文に確定する。
// 在庫の再チェック・減算・注文作成・カートクリアまで1トランザクション。
func (u *OrderUsecase) PlaceOrder(ctx context.Context, userID int64, in PlaceOrderInput) (OrderOutput, error) {
	if userID <= 0 {
		return OrderOutput{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if in.ShippingOptionID <= 0 {
		return OrderOutput{}, NewHTTPError(http.StatusBadRequest, "invalid shipping_option_id")
	}

	//ユーザーの存在確認
	if _, err := u.userRepo.FindByID(ctx, userID); err != nil {
		if errors.Is(err, repo.ErrUserNotFound) {
			return OrderOutput{}, NewHTTPError(http.StatusNotFound, "user not found")
		}
		return OrderOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	var out OrderOutput

	//注文処理はトランザクション
	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		shipping, err := r.ShippingOptions().FindByID(ctx, in.ShippingOptionID)
		if errors.Is(err, repo.ErrNotFound) {
			return NewHTTPError(http.StatusNotFound, "shipping option not found")
		}
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		cart, err := r.Carts().FindByUserID(ctx, userID)
		if errors.Is(err, repo.ErrNotFound) {
			return NewHTTPError(http.StatusNotFound, "cart not found")
		}
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		cartItems, err := r.CartItems().ListByCartID(ctx, cart.ID)
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}
		if len(cartItems) == 0 {
			return NewHTTPError(http.StatusBadRequest, "cart is empty")
		}

		//在庫を確定時に再チェックして減らす。
		//価格もここで読んだ現在値をスナップショットする。
		orderItems := make([]model.OrderItem, 0, len(cartItems))
		var subtotal int64 = 0

		for _, ci := range cartItems {
			p, err := r.Products().FindByID(ctx, ci.ProductID)
			if errors.Is(err, repo.ErrNotFound) {
				return NewHTTPError(http.StatusNotFound, "product not found")
			}
			if err != nil {
				return NewHTTPError(http.StatusInternalServerError, "db error")
			}

			//条件付きUPDATEで減算。足りなければfalseが返り、ロールバックされる。
			ok, err := r.Inventory().DecreaseStockIfEnough(ctx, ci.ProductID, ci.Quantity)
			if err != nil {
				return NewHTTPError(http.StatusInternalServerError, "db error")
			}
			if !ok {
				return NewHTTPError(http.StatusConflict, fmt.Sprintf(
					"insufficient stock for %q: requested %d, available %d",
					p.Name, ci.Quantity, p.Stock))
			}

			now := time.Now()
			orderItems = append(orderItems, model.OrderItem{
				ProductID:           ci.ProductID,
				ProductNameSnapshot: p.Name,
				PriceAtPurchase:     p.Price,
				Quantity:            ci.Quantity,
				CreatedAt:           now,
			})

			subtotal += p.Price * ci.Quantity
		}

		total := subtotal + shipping.Cost

		now := time.Now()
		orderID, err := r.Orders().Create(ctx, model.Order{
			UserID:           userID,
			ShippingOptionID: in.ShippingOptionID,
			Status:           model.OrderStatusConfirmed,
			Subtotal:         subtotal,
			ShippingCost:     shipping.Cost,
			Total:            total,
			CreatedAt:        now,
			UpdatedAt:        now,
		})
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		if err := r.OrderItems().CreateBulk(ctx, orderID, orderItems); err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		//カートの明細をクリア（同じカートでの再注文防止）
		if err := r.Carts().Clear(ctx, cart.ID); err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		created := model.Order{
			ID:               orderID,
			UserID:           userID,
			ShippingOptionID: in.ShippingOptionID,
			Status:           model.OrderStatusConfirmed,
			Subtotal:         subtotal,
			ShippingCost:     shipping.Cost,
			Total:            total,
			CreatedAt:        now,
		}
		out = toOrderOutput(created, orderItems)
		return nil
	})

	if err != nil {
		logger.Warn().Err(err).Int64("user_id", userID).Msg("order placement rejected")
		return OrderOutput{}, err
	}

	logger.Info().Int64("order_id", out.ID).Int64("user_id", userID).Int64("total", out.Total).Msg("order placed")
	return out, nil
}

// CancelOrder は本人の注文をキャンセルして在庫を戻す。
// CONFIRMEDのうちだけキャンセルできる。
func (u *OrderUsecase) CancelOrder(ctx context.Context, userID int64, orderID int64) (OrderOutput, error) {
	if userID <= 0 {
		return OrderOutput{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if orderID <= 0 {
		return OrderOutput{}, NewHTTPError(http.StatusBadRequest, "invalid order id")
	}

	var out OrderOutput

	//在庫戻しとステータス変更は1トランザクション
	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		o, err := r.Orders().FindByID(ctx, orderID)
		if errors.Is(err, repo.ErrNotFound) {
			return NewHTTPError(http.StatusNotFound, "order not found")
		}
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		//他人の注文はキャンセルできない
		if o.UserID != userID {
			return NewHTTPError(http.StatusForbidden, "you can only cancel your own orders")
		}

		if o.Status == model.OrderStatusCanceled {
			return NewHTTPError(http.StatusBadRequest, "order already canceled")
		}
		if o.Status != model.OrderStatusConfirmed {
			return NewHTTPError(http.StatusBadRequest, "order can no longer be canceled")
		}

		items, err := r.OrderItems().ListByOrderID(ctx, orderID)
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		//引き当てた在庫を明細ぶん戻す
		for _, it := range items {
			if err := r.Inventory().IncreaseStock(ctx, it.ProductID, it.Quantity); err != nil {
				return NewHTTPError(http.StatusInternalServerError, "db error")
			}
		}

		if err := r.Orders().UpdateStatus(ctx, orderID, model.OrderStatusCanceled); err != nil {
			if errors.Is(err, repo.ErrNotFound) {
				return NewHTTPError(http.StatusNotFound, "order not found")
			}
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		o.Status = model.OrderStatusCanceled
		out = toOrderOutput(o, items)
		return nil
	})

	if err != nil {
		logger.Warn().Err(err).Int64("order_id", orderID).Int64("user_id", userID).Msg("order cancel rejected")
		return OrderOutput{}, err
	}

	logger.Info().Int64("order_id", orderID).Int64("user_id", userID).Msg("order canceled")
	return out, nil
}

func (u *OrderUsecase) ListMyOrders(ctx context.Context, userID int64) ([]OrderOutput, error) {
	if userID <= 0 {
		return []OrderOutput{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	var outs []OrderOutput

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		orders, err := r.Orders().ListByUserID(ctx, userID)
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		outs = make([]OrderOutput, 0, len(orders))
		for _, o := range orders {
			items, err := r.OrderItems().ListByOrderID(ctx, o.ID)
			if err != nil {
				return NewHTTPError(http.StatusInternalServerError, "db error")
			}
			outs = append(outs, toOrderOutput(o, items))
		}
		return nil
	})

	if err != nil {
		return []OrderOutput{}, err
	}
	return outs, nil
}

func toOrderOutput(o model.Order, items []model.OrderItem) OrderOutput {
	outItems := make([]OrderItemOutput, 0, len(items))
	for _, it := range items {
		outItems = append(outItems, OrderItemOutput{
			ProductID: it.ProductID,
			Name:      it.ProductNameSnapshot,
			Price:     it.PriceAtPurchase,
			Quantity:  it.Quantity,
		})
	}

	return OrderOutput{
		ID:           o.ID,
		UserID:       o.UserID,
		Status:       string(o.Status),
		Subtotal:     o.Subtotal,
		ShippingCost: o.ShippingCost,
		Total:        o.Total,
		CreatedAt:    o.CreatedAt,
		Items:        outItems,
	}
}
