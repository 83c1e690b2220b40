// Command keygen provisions an API credential and prints the key once.
// The full key is never stored; only its bcrypt hash and lookup prefix are.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"

	"github.com/txproof/txproof-api/internal/config"
	"github.com/txproof/txproof-api/internal/db"
	"github.com/txproof/txproof-api/internal/guard"
)

func main() {
	name := flag.String("name", "", "credential name (required)")
	ratePerSec := flag.Int("rate", 5, "sustained requests per second")
	burst := flag.Int("burst", 10, "token bucket capacity")
	monthlyLimit := flag.Int("monthly-limit", 10000, "receipts per calendar month")
	flag.Parse()

	if *name == "" {
		log.Fatal("-name is required")
	}

	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found: %v\n", err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx := context.Background()
	pool, err := pgxpool.New(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Unable to connect to database: %v", err)
	}
	defer pool.Close()

	fullKey, keyPrefix, err := guard.GenerateAPIKey()
	if err != nil {
		log.Fatalf("Failed to generate API key: %v", err)
	}
	keyHash, err := guard.HashAPIKey(fullKey)
	if err != nil {
		log.Fatalf("Failed to hash API key: %v", err)
	}

	queries := db.New(pool)
	credential, err := queries.CreateCredential(ctx, db.CreateCredentialParams{
		ID:           uuid.New(),
		Name:         *name,
		KeyPrefix:    keyPrefix,
		KeyHash:      keyHash,
		RatePerSec:   int32(*ratePerSec),
		Burst:        int32(*burst),
		MonthlyLimit: int32(*monthlyLimit),
		PeriodStart:  time.Now().UTC(),
	})
	if err != nil {
		log.Fatalf("Failed to create credential: %v", err)
	}

	fmt.Printf("credential id: %s\n", credential.ID)
	fmt.Printf("api key:       %s\n", fullKey)
	fmt.Println("store this key now; it cannot be recovered")
}
