package model

import "time"

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "PENDING"
	OrderStatusConfirmed OrderStatus = "CONFIRMED"
	OrderStatusShipped   OrderStatus = "SHIPPED"
	OrderStatusDelivered OrderStatus = "DELIVERED"
	OrderStatusCanceled  OrderStatus = "CANCELED"
)

// 確定後は変更しないスナップショット
type Order struct {
	ID               int64       `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID           int64       `gorm:"not null;index" json:"user_id"`
	ShippingOptionID int64       `gorm:"not null" json:"shipping_option_id"`
	Status           OrderStatus `gorm:"type:varchar(20);not null;index" json:"status"`
	Subtotal         int64       `gorm:"not null" json:"subtotal"`
	ShippingCost     int64       `gorm:"not null" json:"shipping_cost"`
	Total            int64       `gorm:"not null" json:"total"`
	CreatedAt        time.Time   `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt        time.Time   `gorm:"not null;autoUpdateTime" json:"updated_at"`
}
