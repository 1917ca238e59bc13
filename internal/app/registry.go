package app

import (
	"github.com/Latha-Maheswari/modern-buy-easy/configs"
	"github.com/Latha-Maheswari/modern-buy-easy/internal/address"
	"github.com/Latha-Maheswari/modern-buy-easy/internal/auth"
	"github.com/Latha-Maheswari/modern-buy-easy/internal/cart"
	"github.com/Latha-Maheswari/modern-buy-easy/internal/catalog"
	"github.com/Latha-Maheswari/modern-buy-easy/internal/cloudinary"
	"github.com/Latha-Maheswari/modern-buy-easy/internal/customer"
	"github.com/Latha-Maheswari/modern-buy-easy/internal/email"
	"github.com/Latha-Maheswari/modern-buy-easy/internal/order"
	"github.com/Latha-Maheswari/modern-buy-easy/internal/outbox"
	"github.com/Latha-Maheswari/modern-buy-easy/internal/payment"
	"github.com/Latha-Maheswari/modern-buy-easy/internal/seller"
	"github.com/Latha-Maheswari/modern-buy-easy/internal/shared/cache"
	"github.com/Latha-Maheswari/modern-buy-easy/internal/shared/storage"
	"github.com/Latha-Maheswari/modern-buy-easy/internal/wishlist"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type moduleDeps struct {
	Cfg      configs.Config
	Store    storage.Store
	Cache    cache.Cache
	Gateway  payment.Gateway
	Uploader cloudinary.Service
	Email    email.Service
	Logger   *zap.Logger
	IsProd   bool
}

func registerModules(router *gin.Engine, d moduleDeps) *auth.Service {
	// --- Repositories ---
	authRepo := auth.NewRepository(d.Store)
	cartRepo := cart.NewRepository(d.Store)
	wishlistRepo := wishlist.NewRepository(d.Store)
	addressRepo := address.NewRepository(d.Store)
	paymentRepo := payment.NewRepository(d.Store)
	orderRepo := order.NewRepository(d.Store)
	outboxRepo := outbox.NewRepository(d.Store)
	sellerRepo := seller.NewRepository(d.Store)

	// --- Services ---
	authService := auth.NewService(authRepo, d.Email, auth.Config{
		JWTSecret:    d.Cfg.Security.JWTSecret,
		AccessTTL:    d.Cfg.Security.AccessTTL,
		RefreshTTL:   d.Cfg.Security.RefreshTTL,
		ResetBaseURL: d.Cfg.Security.ResetBaseURL,
	})
	customerService := customer.NewService(authRepo)
	catalogService := catalog.NewService(d.Cache)
	cartService := cart.NewService(cartRepo, catalogService)
	wishlistService := wishlist.NewService(wishlistRepo, catalogService)
	addressService := address.NewService(addressRepo)
	paymentService := payment.NewService(paymentRepo)
	sellerService := seller.NewService(sellerRepo, d.Uploader)
	orderService := order.NewService(order.Deps{
		Repo:       orderRepo,
		OutboxRepo: outboxRepo,
		CartSvc:    cartService,
		AddressSvc: addressService,
		PaymentSvc: paymentService,
		Gateway:    d.Gateway,
		Users:      authRepo,
		Logger:     d.Logger,
	})

	// --- Handlers ---
	authHandler := auth.NewHandler(authService, d.IsProd, d.Logger)
	customerHandler := customer.NewHandler(customerService)
	catalogHandler := catalog.NewHandler(catalogService)
	cartHandler := cart.NewHandler(cartService)
	wishlistHandler := wishlist.NewHandler(wishlistService)
	addressHandler := address.NewHandler(addressService)
	paymentHandler := payment.NewHandler(paymentService)
	orderHandler := order.NewHandler(orderService)
	sellerHandler := seller.NewHandler(sellerService)

	// --- Routes Registration ---
	secret := d.Cfg.Security.JWTSecret
	api := router.Group("/api/v1")
	{
		auth.RegisterRoutes(api, authHandler, secret)
		customer.RegisterRoutes(api, customerHandler, secret)
		catalog.RegisterRoutes(api, catalogHandler)
		cart.RegisterRoutes(api, cartHandler, secret)
		wishlist.RegisterRoutes(api, wishlistHandler, secret)
		address.RegisterRoutes(api, addressHandler, secret)
		payment.RegisterRoutes(api, paymentHandler, secret)
		order.RegisterRoutes(api, orderHandler, secret, d.Cache)
		seller.RegisterRoutes(api, sellerHandler, secret)
	}

	return authService
}
