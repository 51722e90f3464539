// Command admin seeds or rotates the dashboard admin account:
//
//	go run ./cmd/admin -username admin -password secret123
//
// Creates the account if it does not exist, otherwise replaces its
// password hash.
package main

import (
	"context"
	"flag"
	"os"
	"time"

	_ "go.uber.org/automaxprocs"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"donation-api/internal/core/config"
	"donation-api/internal/core/database"
	"donation-api/internal/core/logger"
	"donation-api/internal/domain"
	"donation-api/internal/repo"
	"donation-api/pkg/utils"
)

func main() {
	var (
		username = flag.String("username", "admin", "admin username")
		password = flag.String("password", "", "new admin password (min 6 chars)")
	)
	flag.Parse()

	_ = godotenv.Load()
	cfg := config.Load(os.Getenv("CONFIG_PATH"))
	log, cleanup := logger.New(cfg.Log.Level, cfg.Log.JSON)
	defer cleanup()

	if len(*password) < 6 {
		log.Fatal("password must be at least 6 characters")
	}

	db, err := database.NewGorm(database.Opts{
		Driver:             cfg.DB.Driver,
		DSN:                cfg.DB.DSN,
		MaxOpenConns:       cfg.DB.MaxOpenConns,
		MaxIdleConns:       cfg.DB.MaxIdleConns,
		ConnMaxLifetimeMin: cfg.DB.ConnMaxLifetimeMin,
		LogLevel:           cfg.DB.LogLevel,
	})
	if err != nil {
		log.Fatal("db open", zap.Error(err))
	}
	if err := db.AutoMigrate(&domain.Admin{}); err != nil {
		log.Fatal("automigrate failed", zap.Error(err))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	admins := repo.NewAdminRepo(db)
	a, err := admins.FindByUsername(ctx, *username)
	if err != nil {
		log.Fatal("find admin", zap.Error(err))
	}

	hash := utils.HashPassword(*password)
	if a == nil {
		if err := admins.Create(ctx, &domain.Admin{Username: *username, PasswordHash: hash}); err != nil {
			log.Fatal("create admin", zap.Error(err))
		}
		log.Info("admin created", zap.String("username", *username))
		return
	}
	if err := admins.UpdatePassword(ctx, a.ID, hash); err != nil {
		log.Fatal("rotate password", zap.Error(err))
	}
	log.Info("admin password rotated", zap.String("username", *username))
}
