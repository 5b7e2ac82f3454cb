// Command seedadmin creates (or recreates) the bootstrap admin account.
// Registration always assigns the "user" role, so the first admin has to be
// provisioned out of band with this tool.
package main

import (
	"context"
	"flag"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/sellhub/marketplace-api/internal/core/domain"
	"github.com/sellhub/marketplace-api/internal/infrastructure/config"
	mongodb "github.com/sellhub/marketplace-api/internal/infrastructure/db/mongo"
	"github.com/sellhub/marketplace-api/pkg/logger"
)

func main() {
	name := flag.String("name", "Admin User", "display name for the admin account")
	email := flag.String("email", "admin@example.com", "login email for the admin account")
	password := flag.String("password", "", "password for the admin account (required)")
	flag.Parse()

	cfg := config.Load()
	log := logger.Init(logger.Options{Level: cfg.LogLevel, Pretty: true})

	if *password == "" {
		log.Fatal().Msg("-password is required")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	client, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to mongodb")
	}
	defer func() { _ = client.Disconnect(ctx) }()

	repo := mongodb.NewUserRepository(db)
	if err := repo.EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("failed to create user indexes")
	}

	normalized := domain.NormalizeEmail(*email)

	// Drop any existing account with this email so the password hash is fresh.
	if existing, err := repo.FindByEmail(ctx, normalized); err == nil {
		if err := repo.Delete(ctx, existing.ID); err != nil {
			log.Fatal().Err(err).Msg("failed to remove existing account")
		}
		log.Info().Str("email", normalized).Msg("replaced existing account")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(*password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to hash password")
	}

	now := time.Now().UTC()
	admin, err := repo.Create(ctx, &domain.User{
		Name:         *name,
		Email:        normalized,
		PasswordHash: string(hash),
		Role:         domain.RoleAdmin,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create admin account")
	}

	log.Info().
		Str("user_id", admin.ID).
		Str("email", admin.Email).
		Str("role", string(admin.Role)).
		Msg("admin account created")
}
