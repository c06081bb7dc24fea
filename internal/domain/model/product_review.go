package model

import "time"

// 1ユーザー1商品につきレビューは1件
type ProductReview struct {
	ID        int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID    int64  `gorm:"not null;index:idx_review_user_product,unique" json:"user_id"`
	ProductID int64  `gorm:"not null;index:idx_review_user_product,unique" json:"product_id"`
	Rating    int    `gorm:"not null" json:"rating"`
	Comment   string `gorm:"type:text" json:"comment"`

	// 作成時に注文履歴から一度だけ判定する
	VerifiedPurchase bool `gorm:"not null;default:false" json:"verified_purchase"`

	HelpfulCount int       `gorm:"not null;default:0" json:"helpful_count"`
	CreatedAt    time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time `gorm:"not null;autoUpdateTime" json:"updated_at"`
}

// 1〜5に収める
func ClampRating(rating int) int {
	if rating < 1 {
		return 1
	}
	if rating > 5 {
		return 5
	}
	return rating
}
