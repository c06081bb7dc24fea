package model

import "time"

// 価格は最小通貨単位（セント）で保持する
type Product struct {
	ID            int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Name          string    `gorm:"type:varchar(255);not null" json:"name"`
	Description   string    `gorm:"type:text" json:"description"`
	Price         int64     `gorm:"not null" json:"price"`
	OriginalPrice int64     `gorm:"not null;default:0" json:"original_price"`
	Category      string    `gorm:"type:varchar(100);index" json:"category"`
	ImageURL      string    `gorm:"type:varchar(512)" json:"image_url"`
	OnSale        bool      `gorm:"not null;default:false;index" json:"on_sale"`
	Stock         int64     `gorm:"not null" json:"stock"`
	CreatedAt     time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time `gorm:"not null;autoUpdateTime" json:"updated_at"`
}
