package usecase

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"storefront/internal/domain/model"
	repo "storefront/internal/repository"
	"storefront/internal/usecase/auth"
)

// プロフィール参照・更新・削除。登録とログインはauthパッケージ。
type UserUsecase struct {
	userRepo repo.UserRepository
	hasher   auth.PasswordHasher
}

func NewUserUsecase(userRepo repo.UserRepository, hasher auth.PasswordHasher) *UserUsecase {
	return &UserUsecase{userRepo: userRepo, hasher: hasher}
}

type UpdateUserInput struct {
	Username string
	Email    string
	Password string // 空なら変更しない
}

func (u *UserUsecase) GetUser(ctx context.Context, userID int64) (model.User, error) {
	if userID <= 0 {
		return model.User{}, NewHTTPError(http.StatusBadRequest, "invalid user id")
	}

	user, err := u.userRepo.FindByID(ctx, userID)
	if errors.Is(err, repo.ErrUserNotFound) {
		return model.User{}, NewHTTPError(http.StatusNotFound, "user not found")
	}
	if err != nil {
		return model.User{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return *user, nil
}

// 全ユーザー一覧。ルート側でADMINに限定する。
func (u *UserUsecase) ListUsers(ctx context.Context) ([]model.User, error) {
	users, err := u.userRepo.FindAll(ctx)
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return users, nil
}

// 本人か管理者だけ更新できる
func (u *UserUsecase) UpdateUser(ctx context.Context, callerID int64, callerRole model.Role, userID int64, in UpdateUserInput) (model.User, error) {
	if callerID != userID && callerRole != model.RoleAdmin {
		return model.User{}, NewHTTPError(http.StatusForbidden, "forbidden")
	}

	user, err := u.userRepo.FindByID(ctx, userID)
	if errors.Is(err, repo.ErrUserNotFound) {
		return model.User{}, NewHTTPError(http.StatusNotFound, "user not found")
	}
	if err != nil {
		return model.User{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	if username := strings.TrimSpace(in.Username); username != "" {
		//別ユーザーが使っていないか
		existing, err := u.userRepo.FindByUsername(ctx, username)
		if err == nil && existing.ID != userID {
			return model.User{}, NewHTTPError(http.StatusConflict, "username already exists")
		}
		if err != nil && !errors.Is(err, repo.ErrUserNotFound) {
			return model.User{}, NewHTTPError(http.StatusInternalServerError, "db error")
		}
		user.Username = username
	}

	if email := strings.TrimSpace(in.Email); email != "" {
		existing, err := u.userRepo.FindByEmail(ctx, email)
		if err == nil && existing.ID != userID {
			return model.User{}, NewHTTPError(http.StatusConflict, "email already exists")
		}
		if err != nil && !errors.Is(err, repo.ErrUserNotFound) {
			return model.User{}, NewHTTPError(http.StatusInternalServerError, "db error")
		}
		user.Email = email
	}

	if in.Password != "" {
		if len(in.Password) < 8 {
			return model.User{}, NewHTTPError(http.StatusBadRequest, "password too short")
		}
		hashed, err := u.hasher.Hash(in.Password)
		if err != nil {
			return model.User{}, NewHTTPError(http.StatusInternalServerError, "hash error")
		}
		user.PasswordHash = hashed
	}

	if err := u.userRepo.Update(ctx, user); err != nil {
		if errors.Is(err, repo.ErrUserNotFound) {
			return model.User{}, NewHTTPError(http.StatusNotFound, "user not found")
		}
		return model.User{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return *user, nil
}

// 本人か管理者だけ削除できる
func (u *UserUsecase) DeleteUser(ctx context.Context, callerID int64, callerRole model.Role, userID int64) error {
	if callerID != userID && callerRole != model.RoleAdmin {
		return NewHTTPError(http.StatusForbidden, "forbidden")
	}

	if err := u.userRepo.Delete(ctx, userID); err != nil {
		if errors.Is(err, repo.ErrUserNotFound) {
			return NewHTTPError(http.StatusNotFound, "user not found")
		}
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return nil
}
