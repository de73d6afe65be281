package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/educonnect-booking/internal/audit"
	"github.com/BruksfildServices01/educonnect-booking/internal/auth"
	"github.com/BruksfildServices01/educonnect-booking/internal/cache"
	"github.com/BruksfildServices01/educonnect-booking/internal/config"
	dbpkg "github.com/BruksfildServices01/educonnect-booking/internal/db"
	domain "github.com/BruksfildServices01/educonnect-booking/internal/domain/counseling"
	"github.com/BruksfildServices01/educonnect-booking/internal/infra/payment"
	infraRepo "github.com/BruksfildServices01/educonnect-booking/internal/infra/repository"
	"github.com/BruksfildServices01/educonnect-booking/internal/logger"
	"github.com/BruksfildServices01/educonnect-booking/internal/middleware"
	"github.com/BruksfildServices01/educonnect-booking/internal/routes"
	"github.com/BruksfildServices01/educonnect-booking/internal/session"
	"github.com/BruksfildServices01/educonnect-booking/internal/validators"
)

func main() {
	cfg := config.Load()

	log, err := logger.New(cfg)
	if err != nil {
		panic(err)
	}
	defer func() { _ = log.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db := dbpkg.NewDB(cfg, log)

	rdb, err := cache.NewRedis(ctx, cfg)
	if err != nil {
		log.Fatal("redis unavailable", zap.String("addr", cfg.RedisAddr), zap.Error(err))
	}
	defer rdb.Close()

	catalog := buildCatalog(ctx, cfg, db, log)
	seedDemoUsers(ctx, cfg, db, log)

	formatter, err := domain.NewPriceFormatter(cfg.CurrencyLocale, cfg.CurrencyCode)
	if err != nil {
		log.Fatal("invalid currency settings",
			zap.String("locale", cfg.CurrencyLocale),
			zap.String("code", cfg.CurrencyCode),
			zap.Error(err),
		)
	}

	if cfg.StripeSecretKey == "" {
		log.Warn("STRIPE_SECRET_KEY is empty, checkout will fail")
	}
	gateway := payment.NewStripeGateway(payment.StripeConfig{
		SecretKey:  cfg.StripeSecretKey,
		Timeout:    cfg.PaymentTimeout,
		MaxRetries: 2,
	}, log)

	auditDispatcher := audit.NewDispatcher(audit.New(db), log)

	if err := validators.RegisterGin(); err != nil {
		log.Fatal("failed to register validators", zap.Error(err))
	}

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	limiter := middleware.NewIPRateLimiter(cfg.MaxRequestsPerMin)
	go limiter.RunSweeper(ctx, time.Minute, 10*time.Minute)

	r := gin.New()
	r.Use(
		middleware.Recovery(log),
		middleware.RequestLogger(log),
		middleware.CORSMiddleware(cfg.AllowedOrigins),
		middleware.RateLimitMiddleware(limiter, log),
	)

	routes.RegisterRoutes(r, routes.Deps{
		DB:               db,
		Log:              log,
		Catalog:          catalog,
		Gateway:          gateway,
		Formatter:        formatter,
		Sessions:         session.NewRedisStore(rdb, cfg.SessionTTL),
		Tokens:           auth.NewTokenIssuer(cfg.JWTSecret, cfg.SessionTTL),
		Audit:            auditDispatcher,
		Clock:            time.Now,
		HoldTTL:          cfg.HoldTTL,
		EmailDomainCheck: validators.NewEmailDomainChecker(nil, 3*time.Second).Valid,
	})

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info("server running", zap.String("addr", cfg.Addr()), zap.String("env", cfg.Env))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("failed to start server", zap.Error(err))
		}
	}()

	<-ctx.Done()
	log.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("server shutdown", zap.Error(err))
	}
	if err := auditDispatcher.Close(shutdownCtx); err != nil {
		log.Error("audit queue not drained", zap.Error(err))
	}
}

func buildCatalog(ctx context.Context, cfg *config.Config, db *gorm.DB, log *zap.Logger) domain.Catalog {
	if cfg.CatalogSource == config.CatalogStatic {
		fixtures := infraRepo.CounselorFixtures()
		if err := infraRepo.ValidateCounselors(fixtures); err != nil {
			log.Fatal("invalid counselor catalog", zap.Error(err))
		}
		log.Info("serving the built-in counselor catalog")
		return infraRepo.NewStaticCatalog(fixtures)
	}

	n, err := infraRepo.SeedCounselors(ctx, db, infraRepo.CounselorFixtures())
	if err != nil {
		log.Fatal("failed to seed counselors", zap.Error(err))
	}
	if n > 0 {
		log.Info("seeded counselors", zap.Int("count", n))
	}
	return infraRepo.NewCounselorGormRepository(db)
}

func seedDemoUsers(ctx context.Context, cfg *config.Config, db *gorm.DB, log *zap.Logger) {
	if cfg.IsProduction() {
		return
	}
	n, err := infraRepo.SeedUsers(ctx, db, infraRepo.DemoUsers())
	if err != nil {
		log.Fatal("failed to seed demo users", zap.Error(err))
	}
	if n > 0 {
		log.Info("seeded demo users", zap.Int("count", n))
	}
}
