package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/txproof/txproof-api/internal/config"
	"github.com/txproof/txproof-api/internal/logger"
	"github.com/txproof/txproof-api/internal/server"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found: %v\n", err)
	}

	cfg, err := config.Load()
	if err != nil {
		logger.InitLogger("local")
		logger.Fatal("Failed to load configuration", zap.Error(err))
	}

	logger.InitLogger(cfg.Stage)
	defer logger.Sync()

	srv, err := server.New(cfg)
	if err != nil {
		logger.Fatal("Failed to initialize server", zap.Error(err))
	}
	defer srv.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := srv.Run(ctx); err != nil {
		logger.Fatal("Server exited with error", zap.Error(err))
	}
}
