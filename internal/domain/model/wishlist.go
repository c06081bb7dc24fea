package model

import "time"

// 存在すること自体が状態。1ユーザー1商品につき1件。
type Wishlist struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID    int64     `gorm:"not null;index:idx_wishlist_user_product,unique" json:"user_id"`
	ProductID int64     `gorm:"not null;index:idx_wishlist_user_product,unique" json:"product_id"`
	AddedAt   time.Time `gorm:"not null;autoCreateTime" json:"added_at"`
}
