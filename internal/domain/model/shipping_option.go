package model

// 配送方法のマスタデータ（読み取り専用）
type ShippingOption struct {
	ID                int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	Name              string `gorm:"type:varchar(100);not null" json:"name"`
	Cost              int64  `gorm:"not null" json:"cost"`
	EstimatedDelivery string `gorm:"type:varchar(100)" json:"estimated_delivery"`
}
