package app

import (
	"context"
	"fmt"
	"time"

	"github.com/Latha-Maheswari/modern-buy-easy/configs"
	"github.com/Latha-Maheswari/modern-buy-easy/internal/cloudinary"
	"github.com/Latha-Maheswari/modern-buy-easy/internal/email"
	"github.com/Latha-Maheswari/modern-buy-easy/internal/middleware"
	"github.com/Latha-Maheswari/modern-buy-easy/internal/payment"
	"github.com/Latha-Maheswari/modern-buy-easy/internal/shared/cache"
	"github.com/Latha-Maheswari/modern-buy-easy/internal/shared/storage"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// BuildApp wires infrastructure, modules and routes onto a gin engine. The
// returned cleanup closes infrastructure connections.
func BuildApp(cfg configs.Config, isProd bool, logger *zap.Logger) (*gin.Engine, func(), error) {
	// 1. Setup Infrastructure
	store, err := buildStore(cfg)
	if err != nil {
		return nil, nil, err
	}

	appCache, cleanup, err := buildCache(cfg, logger)
	if err != nil {
		return nil, nil, err
	}

	// 2. Setup Third Party Services
	uploader := cloudinary.NewDisabledService()
	if cfg.Cloudinary.CloudName != "" {
		uploader, err = cloudinary.NewService(
			cfg.Cloudinary.CloudName,
			cfg.Cloudinary.APIKey,
			cfg.Cloudinary.APISecret,
			cfg.Cloudinary.Folder,
		)
		if err != nil {
			cleanup()
			return nil, nil, err
		}
	}

	emailSvc := email.NewNoopService()
	if cfg.Email.ResendAPIKey != "" {
		emailSvc, err = email.NewResendService(cfg.Email.ResendAPIKey, cfg.Email.FromEmail)
		if err != nil {
			cleanup()
			return nil, nil, err
		}
	}

	var gateway payment.Gateway
	if cfg.Payment.MidtransServerKey != "" {
		gateway = payment.NewMidtransGateway(cfg.Payment.MidtransServerKey, cfg.Payment.MidtransIsProduction)
	} else {
		gateway = payment.NewSimulatedGateway(cfg.Payment.SimulatedDelay)
	}

	// 3. Register Modules & Routes
	if isProd {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(
		gin.Recovery(),
		middleware.RequestID(),
		middleware.HTTPLogger(logger),
		middleware.MetricsMiddleware(),
	)

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	authService := registerModules(router, moduleDeps{
		Cfg:      cfg,
		Store:    store,
		Cache:    appCache,
		Gateway:  gateway,
		Uploader: uploader,
		Email:    emailSvc,
		Logger:   logger,
		IsProd:   isProd,
	})

	// 4. Seed the seller account
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := authService.EnsureSeller(ctx, cfg.Seller.Email, cfg.Seller.Password, cfg.Seller.Name); err != nil {
		cleanup()
		return nil, nil, fmt.Errorf("seed seller account: %w", err)
	}

	return router, cleanup, nil
}

func buildStore(cfg configs.Config) (storage.Store, error) {
	switch cfg.Storage.Backend {
	case "file":
		return storage.NewFileStore(cfg.Storage.DataDir)
	case "", "memory":
		return storage.NewMemoryStore(), nil
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.Storage.Backend)
	}
}

func buildCache(cfg configs.Config, logger *zap.Logger) (cache.Cache, func(), error) {
	if cfg.Redis.Addr == "" {
		return cache.NewMemoryCache(), func() {}, nil
	}

	rdb, err := connectRedisWithRetry(cfg.Redis.Addr, cfg.Redis.Password, 5, logger)
	if err != nil {
		return nil, nil, err
	}
	return cache.NewRedisCache(rdb), func() { _ = rdb.Close() }, nil
}
