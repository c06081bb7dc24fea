package model

import "time"

// 閲覧イベント（追記専用）。ゲストの場合UserIDはnil。
type ProductViewLog struct {
	ID              int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	ProductID       int64     `gorm:"not null;index" json:"product_id"`
	UserID          *int64    `gorm:"index" json:"user_id"`
	ViewedAt        time.Time `gorm:"not null;index" json:"viewed_at"`
	DurationSeconds int       `gorm:"not null;default:0" json:"duration_seconds"`
}
