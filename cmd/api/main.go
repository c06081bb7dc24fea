package main

import (
	"context"
	"os"
	"time"

	"storefront/internal/config"
	"storefront/internal/domain/model"
	"storefront/internal/handler"
	"storefront/internal/infra/cache"
	"storefront/internal/infra/db"
	infraRepo "storefront/internal/infra/repository"
	"storefront/internal/server"
	"storefront/internal/usecase"
	auth "storefront/internal/usecase/auth"

	"github.com/go-redis/redis/v8"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
)

var logger = zerolog.New(os.Stdout).With().Timestamp().Logger()

type realClock struct{}

func (c *realClock) Now() time.Time {
	return time.Now()
}

type jwtIssuer struct {
	secret    []byte
	accessTTL time.Duration
}

func (i *jwtIssuer) Issue(userID int64, role model.Role, now time.Time) (string, time.Time, error) {
	expiresAt := now.Add(i.accessTTL)

	claims := jwt.MapClaims{
		"sub":  userID,
		"role": string(role),
		"jti":  uuid.NewString(),
		"iat":  now.Unix(),
		"exp":  expiresAt.Unix(),
	}

	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := tok.SignedString(i.secret)
	if err != nil {
		return "", time.Time{}, err
	}

	return signed, expiresAt, nil
}

func main() {
	//.envは無くても動く（本番は環境変数で渡す）
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal().Err(err).Msg("config load failed")
	}

	//DB接続
	gormDB, err := db.Connect()
	if err != nil {
		logger.Fatal().Err(err).Msg("db connect failed")
	}

	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Product{},
		&model.Cart{},
		&model.CartItem{},
		&model.Order{},
		&model.OrderItem{},
		&model.ShippingOption{},
		&model.ProductReview{},
		&model.Wishlist{},
		&model.ProductViewLog{},
	); err != nil {
		logger.Fatal().Err(err).Msg("migrate failed")
	}

	//Repository（GORM実装）生成
	userRepo := infraRepo.NewUserGormRepository(gormDB)
	productRepo := infraRepo.NewProductGormRepository(gormDB)
	cartRepo := infraRepo.NewCartGormRepository(gormDB)
	orderRepo := infraRepo.NewOrderGormRepository(gormDB)
	inventoryRepo := infraRepo.NewInventoryGormRepository(gormDB)
	shippingRepo := infraRepo.NewShippingOptionGormRepository(gormDB)
	reviewRepo := infraRepo.NewReviewGormRepository(gormDB)
	wishlistRepo := infraRepo.NewWishlistGormRepository(gormDB)
	viewLogRepo := infraRepo.NewViewLogGormRepository(gormDB)
	txManager := infraRepo.NewTxManagerGorm(gormDB)

	//bcrypt（会員登録：Hash / ログイン：Verify）
	hasher := auth.NewBcryptPasswordHasher(12)
	verifier := auth.NewBcryptPasswordVerifier()
	clock := &realClock{}

	//初期データ投入
	if err := db.Seed(context.Background(), userRepo, productRepo, shippingRepo, hasher.Hash); err != nil {
		logger.Fatal().Err(err).Msg("seed failed")
	}

	//Redis（REDIS_ADDRが空ならキャッシュなしで動く）
	var rdb *redis.Client
	if cfg.RedisAddr != "" {
		rdb = redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
	}
	rvCache := cache.NewRecentlyViewedCache(rdb, 10*time.Minute)

	//JWT issuer
	issuer := &jwtIssuer{
		secret:    []byte(cfg.JWTSecret),
		accessTTL: 24 * time.Hour,
	}

	//Usecase生成
	registerUC := auth.NewRegisterUserUsecase(userRepo, hasher, clock)
	loginUC := auth.NewLoginUsecase(userRepo, verifier, issuer, clock)
	userUC := usecase.NewUserUsecase(userRepo, hasher)
	productUC := usecase.NewProductUsecase(productRepo, inventoryRepo)
	shippingUC := usecase.NewShippingUsecase(shippingRepo)
	cartUC := usecase.NewCartUsecase(cartRepo, cartRepo, productRepo, userRepo)
	orderUC := usecase.NewOrderUsecase(txManager, userRepo)
	reviewUC := usecase.NewReviewUsecase(reviewRepo, userRepo, productRepo, orderRepo)
	wishlistUC := usecase.NewWishlistUsecase(wishlistRepo, productRepo)
	analyticsUC := usecase.NewAnalyticsUsecase(viewLogRepo, productRepo, rvCache)

	//Handler生成
	handlers := server.Handlers{
		Product:   handler.NewProductHandler(productUC),
		Shipping:  handler.NewShippingHandler(shippingUC),
		Cart:      handler.NewCartHandler(cartUC),
		Order:     handler.NewOrderHandler(orderUC),
		User:      handler.NewUserHandler(registerUC, loginUC, userUC, cfg.CookieSecure),
		Review:    handler.NewReviewHandler(reviewUC),
		Wishlist:  handler.NewWishlistHandler(wishlistUC),
		Analytics: handler.NewAnalyticsHandler(analyticsUC),
	}

	//Server起動
	logger.Info().Str("port", cfg.Port).Str("env", cfg.GoEnv).Msg("starting server")
	if err := server.Start(cfg, handlers); err != nil {
		logger.Fatal().Err(err).Msg("server stopped")
	}
}
