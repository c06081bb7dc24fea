package repository

import (
	"context"
	"errors"

	"storefront/internal/domain/model"
)

// ユーザーが見つかりませんを統一
var ErrUserNotFound = errors.New("user not found")

// 保存・取得を約束
type UserRepository interface {
	//新規ユーザー作成
	Create(ctx context.Context, user *model.User) error
	// IDからユーザーを1件取得する。
	FindByID(ctx context.Context, userID int64) (*model.User, error)
	//ユーザー名から1件取得する。
	FindByUsername(ctx context.Context, username string) (*model.User, error)
	//メールから1件取得する。
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	//全ユーザー取得（管理画面用）
	FindAll(ctx context.Context) ([]model.User, error)
	// ユーザー情報の更新
	Update(ctx context.Context, user *model.User) error
	//削除
	Delete(ctx context.Context, userID int64) error
}
