package auth_test

import (
	"context"
	"testing"
	"time"

	"storefront/internal/domain/model"
	"storefront/internal/repository"
	auth "storefront/internal/usecase/auth"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type stubIssuer struct {
	token string
	ttl   time.Duration
}

func (i *stubIssuer) Issue(userID int64, role model.Role, now time.Time) (string, time.Time, error) {
	return i.token, now.Add(i.ttl), nil
}

func newLoginUsecase(userRepo *AuthUserRepoMock) *auth.LoginUsecase {
	return auth.NewLoginUsecase(
		userRepo,
		auth.NewBcryptPasswordVerifier(),
		&stubIssuer{token: "signed-token", ttl: time.Hour},
		&fixedClock{now: time.Now()},
	)
}

func hashFor(t *testing.T, plain string) string {
	t.Helper()
	h, err := auth.NewBcryptPasswordHasher(4).Hash(plain)
	assert.NoError(t, err)
	return h
}

func TestLogin_Success(t *testing.T) {
	ctx := context.Background()
	userRepo := new(AuthUserRepoMock)
	uc := newLoginUsecase(userRepo)

	userRepo.On("FindByUsername", mock.Anything, "alice").Return(&model.User{
		ID:           1,
		Username:     "alice",
		PasswordHash: hashFor(t, "password123"),
		Role:         model.RoleUser,
	}, nil)

	out, err := uc.Execute(ctx, auth.LoginInput{Username: "alice", Password: "password123"})
	assert.NoError(t, err)
	assert.Equal(t, "signed-token", out.AccessToken)
	assert.Equal(t, 3600, out.ExpiresIn)
	assert.Equal(t, int64(1), out.User.ID)
}

func TestLogin_WrongPassword(t *testing.T) {
	userRepo := new(AuthUserRepoMock)
	uc := newLoginUsecase(userRepo)

	userRepo.On("FindByUsername", mock.Anything, "alice").Return(&model.User{
		ID:           1,
		PasswordHash: hashFor(t, "password123"),
	}, nil)

	_, err := uc.Execute(context.Background(), auth.LoginInput{Username: "alice", Password: "wrong"})
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestLogin_UnknownUser(t *testing.T) {
	userRepo := new(AuthUserRepoMock)
	uc := newLoginUsecase(userRepo)

	userRepo.On("FindByUsername", mock.Anything, "ghost").Return(nil, repository.ErrUserNotFound)

	//不在もパスワード違いと同じエラー
	_, err := uc.Execute(context.Background(), auth.LoginInput{Username: "ghost", Password: "whatever"})
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestLogin_EmptyInput(t *testing.T) {
	uc := newLoginUsecase(new(AuthUserRepoMock))

	_, err := uc.Execute(context.Background(), auth.LoginInput{Username: "", Password: ""})
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}
