package main

import (
	"context"
	"log"

	"machinery-rental-admin-api/config"
	"machinery-rental-admin-api/internal/auth"
	"machinery-rental-admin-api/internal/database"

	"github.com/joho/godotenv"
)

// One-shot bootstrap: creates the dashboard admin account and exits. The API
// server seeds the same account on startup; this exists for provisioning a
// database before the server ever runs.
func main() {
	_ = godotenv.Load()

	cfg, err := config.LoadConfig("./config")
	if err != nil {
		log.Fatalf("Could not load config: %v", err)
	}

	auth.JwtSecret = []byte(cfg.JWT.Secret)

	client, db, err := database.Connect(cfg.Mongo)
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer client.Disconnect(context.Background())

	if err := database.SeedAdmin(db, cfg); err != nil {
		log.Fatalf("Failed to create admin account: %v", err)
	}

	email := cfg.Admin.Email
	if email == "" {
		email = "admin@heavyrent.com"
	}
	log.Printf("Admin account ready. Email: %s", email)
	log.Println("Use the configured ADMIN_PASSWORD to log in (change it after first login).")
}
