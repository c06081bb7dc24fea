package model

import "time"

// カートの明細。
// 価格はここでは持たず、注文確定時の商品価格を使う。
type CartItem struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	CartID    int64     `gorm:"not null;index:idx_cart_product,unique" json:"cart_id"`
	ProductID int64     `gorm:"not null;index:idx_cart_product,unique" json:"product_id"`
	Quantity  int64     `gorm:"not null" json:"quantity"`
	CreatedAt time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;autoUpdateTime" json:"updated_at"`
}
