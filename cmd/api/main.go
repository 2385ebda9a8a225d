package main

import (
	"context"
	"log"

	"machinery-rental-admin-api/config"
	"machinery-rental-admin-api/internal/api/routes"
	"machinery-rental-admin-api/internal/auth"
	"machinery-rental-admin-api/internal/database"
	"machinery-rental-admin-api/internal/notify"
	"machinery-rental-admin-api/internal/s3"
	"machinery-rental-admin-api/internal/socket"

	"github.com/joho/godotenv"
)

func main() {
	// A missing .env is fine; config falls back to real environment variables.
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
		log.Fatalf("Failed to seed admin account: %v", err)
	}

	s3Uploader, err := s3.NewUploader(cfg.S3)
	if err != nil {
		log.Fatalf("Failed to initialize S3 uploader: %v", err)
	}

	wsHub := socket.NewHub()
	bookkeeper := &notify.Bookkeeper{DB: db}
	notifier := &notify.Notifier{DB: db}

	// Live unread-count pushes ride on a change stream for the lifetime of
	// the process.
	watcherCtx, stopWatcher := context.WithCancel(context.Background())
	defer stopWatcher()
	watcher := &notify.Watcher{Bookkeeper: bookkeeper, Hub: wsHub}
	go func() {
		if err := watcher.Run(watcherCtx); err != nil && watcherCtx.Err() == nil {
			log.Printf("Notification watcher stopped: %v", err)
		}
	}()

	router := routes.SetupRouter(cfg, db, s3Uploader, wsHub, bookkeeper, notifier, watcher)

	log.Printf("Starting API server on port %s", cfg.Server.Port)
	if err := router.Run(":" + cfg.Server.Port); err != nil {
		log.Fatalf("Failed to run server: %v", err)
	}
}
