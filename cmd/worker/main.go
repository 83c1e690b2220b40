package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/txproof/txproof-api/internal/chain"
	"github.com/txproof/txproof-api/internal/config"
	"github.com/txproof/txproof-api/internal/db"
	"github.com/txproof/txproof-api/internal/jobs"
	"github.com/txproof/txproof-api/internal/logger"
	"github.com/txproof/txproof-api/internal/pricing"
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

	poolConfig, err := pgxpool.ParseConfig(cfg.DatabaseURL)
	if err != nil {
		logger.Fatal("Unable to parse database connection string", zap.Error(err))
	}
	poolConfig.MaxConns = 10
	poolConfig.MinConns = 2
	poolConfig.MaxConnLifetime = time.Hour
	poolConfig.MaxConnIdleTime = time.Minute * 30

	pool, err := pgxpool.NewWithConfig(context.Background(), poolConfig)
	if err != nil {
		logger.Fatal("Unable to create connection pool", zap.Error(err))
	}
	defer pool.Close()

	queries := db.New(pool)
	store := jobs.NewStore(queries)

	chainClient, err := chain.NewClient(cfg.RPCEndpoints)
	if err != nil {
		logger.Fatal("Unable to connect to any RPC endpoint", zap.Error(err))
	}
	defer chainClient.Close()

	// Each source carries its own fixed rank, so leaving CoinMarketCap out
	// on deployments without an API key does not promote the others.
	var sources []pricing.Source
	if cfg.CoinMarketCapAPIKey != "" {
		sources = append(sources, pricing.NewCoinMarketCapSource(cfg.CoinMarketCapAPIKey))
	}
	sources = append(sources, pricing.NewCoinGeckoSource(cfg.CoinGeckoBaseURL))
	sources = append(sources, pricing.NewStablePegSource())
	resolver := pricing.NewResolver(queries, sources...)

	processor := jobs.NewProcessor(store, chainClient, resolver, jobs.ProcessorConfig{
		WorkerCount:  cfg.WorkerCount,
		PollInterval: cfg.PollInterval,
		JobTimeout:   cfg.JobTimeout,
		MaxAttempts:  cfg.MaxAttempts,
	})
	processor.Start()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()

	processor.Stop()
}
