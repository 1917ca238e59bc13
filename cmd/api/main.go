package main

import (
	"log"
	"os"

	"github.com/Latha-Maheswari/modern-buy-easy/configs"
	"github.com/Latha-Maheswari/modern-buy-easy/internal/app"
	"github.com/Latha-Maheswari/modern-buy-easy/internal/bootstrap"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	_ = godotenv.Load()

	envName := os.Getenv("SHOPEASE_ENV")
	if envName == "" {
		envName = "development"
	}
	isProd := envName == "production"

	cfg, err := configs.Load("./configs", envName)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger, err := buildLogger(isProd)
	if err != nil {
		log.Fatalf("build logger: %v", err)
	}
	defer logger.Sync()

	router, cleanup, err := app.BuildApp(cfg, isProd, logger)
	if err != nil {
		logger.Fatal("build app", zap.Error(err))
	}
	defer cleanup()

	err = bootstrap.StartHTTPServer(
		router,
		bootstrap.ServerConfig{
			Addr:         cfg.App.HTTPAddr,
			ReadTimeout:  cfg.HTTP.ReadTimeout,
			WriteTimeout: cfg.HTTP.WriteTimeout,
			IdleTimeout:  cfg.HTTP.IdleTimeout,
		},
		logger,
	)
	if err != nil {
		logger.Fatal("http server", zap.Error(err))
	}
}

func buildLogger(isProd bool) (*zap.Logger, error) {
	if isProd {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}
