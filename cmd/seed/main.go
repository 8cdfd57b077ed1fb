package main

import (
	"context"
	"time"

	"github.com/joho/godotenv"

	"github.com/oksasatya/go-ddd-blog/config"
	"github.com/oksasatya/go-ddd-blog/internal/fixtures"
	pginfra "github.com/oksasatya/go-ddd-blog/internal/infrastructure/postgres"
	"github.com/oksasatya/go-ddd-blog/pkg/helpers"
)

const seed = 20240501

func main() {
	_ = godotenv.Load()
	cfg := config.Load()
	logger := helpers.NewLogger(cfg.AppName+"-seed", cfg.Env)

	if cfg.UseMemoryStorage() {
		logger.Fatal("seed needs STORAGE_DRIVER=postgres")
	}

	dsn := cfg.PostgresDSN()
	if err := pginfra.RunMigrations(dsn, cfg.MigrationsDir, logger); err != nil {
		logger.Fatalf("migrations failed: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()
	pool, err := pginfra.NewPool(ctx, dsn, 4, 1, 30*time.Minute)
	if err != nil {
		logger.Fatalf("failed to connect postgres: %v", err)
	}
	defer pool.Close()

	loader := fixtures.NewLoader(pginfra.NewRepositories(pool), helpers.BcryptHasher{}, logger, seed)
	if _, err := loader.Load(ctx); err != nil {
		logger.Fatalf("failed to load fixtures: %v", err)
	}
	logger.Infof("admin: %s / %s", fixtures.AdminEmail, fixtures.Password)
}
