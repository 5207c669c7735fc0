package main

import (
	"context"
	"log"

	"golang.org/x/crypto/bcrypt"

	"renova/internal/config"
	"renova/internal/domain"
	"renova/internal/repository/postgres"
)

// Seeds the back-office admin account. Accounts are only ever created here;
// the API has no registration endpoint. Re-running updates the password.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	if cfg.Seed.AdminPassword == "" {
		log.Fatal("RENOVA_SEED_ADMIN_PASSWORD must be set")
	}

	db, err := postgres.NewDB(&cfg.DB)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	defer db.Close()

	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.Seed.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("failed to hash password: %v", err)
	}

	user := &domain.User{
		Username:     cfg.Seed.AdminUsername,
		PasswordHash: string(hash),
		Role:         domain.RoleAdmin,
	}
	if err := postgres.NewUserRepo(db).Create(context.Background(), user); err != nil {
		log.Fatalf("failed to seed admin user: %v", err)
	}

	log.Printf("admin user %q ready (id=%d)", user.Username, user.ID)
}
