package main

import (
	"log"
	"os"

	"github.com/Latha-Maheswari/modern-buy-easy/configs"
	"github.com/Latha-Maheswari/modern-buy-easy/internal/app"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	_ = godotenv.Load()

	envName := os.Getenv("SHOPEASE_ENV")
	if envName == "" {
		envName = "development"
	}

	cfg, err := configs.Load("./configs", envName)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("build logger: %v", err)
	}
	defer logger.Sync()

	if err := app.RunConsumer(cfg, logger); err != nil {
		logger.Fatal("notification consumer", zap.Error(err))
	}
}
